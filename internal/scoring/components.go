package scoring

import (
	"errors"
	"strings"

	"github.com/daniel/course-recommender/internal/embedding"
	"github.com/daniel/course-recommender/internal/taxonomy"
	"github.com/daniel/course-recommender/internal/types"
)

// Profile-alignment constants. Alignment starts neutral and gains for a
// difficulty match against the user's year and for interest mentions.
const (
	profileBaseScore     = 0.5
	difficultyMatchBonus = 0.3
	interestMatchBonus   = 0.2
	juniorYearThreshold  = 2
)

// computeSemanticScore returns the cosine similarity between the user's
// course vector and the candidate's title+description vector, clamped to
// [0,1]. Negative similarity means "dissimilar", which contributes nothing
// rather than dragging the composite below zero.
func computeSemanticScore(courseVec, candidateVec []float64) float64 {
	return clamp01(embedding.CosineSimilarity(courseVec, candidateVec))
}

// computeGraphScore scores a candidate title against the extracted keywords
// using the taxonomy graph. A keyword appearing literally in the title counts
// 1.0; otherwise, if the keyword is a known node, every taxonomy node that
// appears in the title and is reachable from the keyword contributes
// 1/(path_length+1). The sum is normalized by the keyword count and clamped
// to [0,1].
func computeGraphScore(graph *taxonomy.Graph, title string, kws []string) float64 {
	if title == "" {
		return 0
	}
	titleLower := strings.ToLower(title)
	total := 0.0

	for _, kw := range kws {
		if strings.Contains(titleLower, kw) {
			total += 1.0
			continue
		}
		if !graph.Contains(kw) {
			continue
		}
		for _, node := range graph.Nodes() {
			if !strings.Contains(titleLower, node) {
				continue
			}
			score, err := graph.PathScore(kw, node)
			if err != nil {
				if errors.Is(err, taxonomy.ErrNotFound) {
					continue
				}
				continue
			}
			total += score
		}
	}

	return clamp01(total / float64(max(len(kws), 1)))
}

// computeKeywordScore is the fraction of keywords appearing literally in the
// candidate title.
func computeKeywordScore(title string, kws []string) float64 {
	if title == "" || len(kws) == 0 {
		return 0
	}
	titleLower := strings.ToLower(title)
	matches := 0
	for _, kw := range kws {
		if strings.Contains(titleLower, kw) {
			matches++
		}
	}
	return float64(matches) / float64(max(len(kws), 1))
}

// computeProfileScore measures how well the candidate aligns with the user.
// Students in their first two years are nudged towards introductory material,
// later years towards advanced material, and stated interests appearing in
// the title add a further bonus.
func computeProfileScore(title string, profile types.UserProfile) float64 {
	if title == "" {
		return 0
	}
	titleLower := strings.ToLower(title)
	score := profileBaseScore

	year := profile.CurrentYear
	if year <= 0 {
		year = juniorYearThreshold
	}
	if year <= juniorYearThreshold {
		if strings.Contains(titleLower, "beginner") || strings.Contains(titleLower, "introduction") {
			score += difficultyMatchBonus
		}
	} else {
		if strings.Contains(titleLower, "advanced") || strings.Contains(titleLower, "expert") {
			score += difficultyMatchBonus
		}
	}

	for _, interest := range profile.Interests {
		if interest == "" {
			continue
		}
		if strings.Contains(titleLower, strings.ToLower(interest)) {
			score += interestMatchBonus
			break
		}
	}

	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
