package scoring

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/daniel/course-recommender/internal/embedding"
	"github.com/daniel/course-recommender/internal/keywords"
	"github.com/daniel/course-recommender/internal/taxonomy"
	"github.com/daniel/course-recommender/internal/types"
)

// Scorer ranks candidates against courses and a user profile. It holds only
// immutable, shared dependencies, so a single Scorer is safe for concurrent
// ranking requests.
type Scorer struct {
	graph   *taxonomy.Graph
	encoder embedding.Encoder
	weights Weights
}

// NewScorer creates a Scorer. Weights are normalized to sum to 1.0.
func NewScorer(graph *taxonomy.Graph, encoder embedding.Encoder, weights Weights) (*Scorer, error) {
	if graph == nil {
		return nil, fmt.Errorf("taxonomy graph is required")
	}
	if encoder == nil {
		return nil, fmt.Errorf("embedding encoder is required")
	}
	return &Scorer{
		graph:   graph,
		encoder: encoder,
		weights: weights.Normalized(),
	}, nil
}

// Weights returns the normalized weight configuration in use.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Rank scores every candidate and returns them ordered by descending
// composite relevance. The sort is stable: equal scores keep their input
// order. Per-candidate failures (missing title, encoder errors) zero-score
// that candidate instead of aborting the batch.
func (s *Scorer) Rank(
	ctx context.Context,
	candidates []types.CandidateOpportunity,
	courses []types.CourseRecord,
	profile types.UserProfile,
) ([]types.RankedResult, error) {
	if len(candidates) == 0 {
		return []types.RankedResult{}, nil
	}

	kws := keywords.Extract(courses)

	courseVec, err := s.encodeCourses(ctx, courses)
	if err != nil {
		// Semantic signal degrades to zero for the whole batch; the other
		// components still rank.
		log.Printf("scoring: course embedding failed, semantic score disabled: %v", err)
		courseVec = nil
	}

	results := make([]types.RankedResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, s.scoreCandidate(ctx, candidate, courseVec, kws, profile))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	return results, nil
}

// scoreCandidate computes all four component scores plus the composite for a
// single candidate.
func (s *Scorer) scoreCandidate(
	ctx context.Context,
	candidate types.CandidateOpportunity,
	courseVec []float64,
	kws []string,
	profile types.UserProfile,
) types.RankedResult {
	result := types.RankedResult{CandidateOpportunity: candidate}

	// A candidate without a title is malformed; it stays in the output with
	// zero scores so partial results are always possible.
	if strings.TrimSpace(candidate.Title) == "" {
		return result
	}

	if len(courseVec) > 0 {
		candidateVec, err := s.encoder.Encode(ctx, candidateText(candidate))
		if err != nil {
			log.Printf("scoring: candidate embedding failed for %q: %v", candidate.Title, err)
		} else {
			result.SemanticScore = computeSemanticScore(courseVec, candidateVec)
		}
	}

	result.GraphScore = computeGraphScore(s.graph, candidate.Title, kws)
	result.KeywordScore = computeKeywordScore(candidate.Title, kws)
	result.ProfileScore = computeProfileScore(candidate.Title, profile)

	composite := s.weights.Semantic*result.SemanticScore +
		s.weights.Graph*result.GraphScore +
		s.weights.Keyword*result.KeywordScore +
		s.weights.Profile*result.ProfileScore
	result.RelevanceScore = clamp01(composite)

	return result
}

// encodeCourses embeds the concatenation of all course names into one vector.
// An empty course list yields a nil vector and no semantic signal.
func (s *Scorer) encodeCourses(ctx context.Context, courses []types.CourseRecord) ([]float64, error) {
	names := make([]string, 0, len(courses))
	for _, course := range courses {
		if course.Name != "" {
			names = append(names, course.Name)
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	return s.encoder.Encode(ctx, strings.Join(names, " "))
}

func candidateText(c types.CandidateOpportunity) string {
	if c.Description == "" {
		return c.Title
	}
	return c.Title + " " + c.Description
}
