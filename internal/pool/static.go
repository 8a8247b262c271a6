package pool

import (
	"context"
	"sort"
	"strings"

	"github.com/daniel/course-recommender/internal/types"
)

// StaticSource serves candidates from an in-memory catalog keyed by topic.
// Matching is keyword-against-category with a title-substring fallback; when
// nothing matches, one course per category is returned so the scorer always
// has material to rank.
type StaticSource struct {
	name    string
	catalog map[string][]types.CandidateOpportunity
}

// NewStaticSource creates a StaticSource over a topic-keyed catalog.
func NewStaticSource(name string, catalog map[string][]types.CandidateOpportunity) *StaticSource {
	return &StaticSource{name: name, catalog: catalog}
}

// NewCourseCatalog returns the built-in curated course catalog.
func NewCourseCatalog() *StaticSource {
	return NewStaticSource("curated-courses", courseCatalog)
}

// NewCertificationCatalog returns the built-in certification catalog.
func NewCertificationCatalog() *StaticSource {
	return NewStaticSource("certifications", certificationCatalog)
}

// Name identifies the source.
func (s *StaticSource) Name() string { return s.name }

// Fetch selects catalog entries relevant to the keywords. Results are
// deduplicated by URL and returned in deterministic category order.
func (s *StaticSource) Fetch(_ context.Context, keywords []string) ([]types.CandidateOpportunity, error) {
	categories := s.sortedCategories()

	var selected []types.CandidateOpportunity
	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)

		for _, category := range categories {
			if strings.Contains(category, kwLower) || strings.Contains(kwLower, category) {
				selected = append(selected, s.catalog[category]...)
			}
		}
		for _, category := range categories {
			for _, candidate := range s.catalog[category] {
				if strings.Contains(strings.ToLower(candidate.Title), kwLower) {
					selected = append(selected, candidate)
				}
			}
		}
	}

	// Nothing matched: fall back to one entry per category.
	if len(selected) == 0 {
		for _, category := range categories {
			if entries := s.catalog[category]; len(entries) > 0 {
				selected = append(selected, entries[0])
			}
		}
	}

	return dedupeByURL(selected), nil
}

func (s *StaticSource) sortedCategories() []string {
	categories := make([]string, 0, len(s.catalog))
	for category := range s.catalog {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func dedupeByURL(candidates []types.CandidateOpportunity) []types.CandidateOpportunity {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]types.CandidateOpportunity, 0, len(candidates))
	for _, candidate := range candidates {
		key := candidate.URL
		if key == "" {
			key = candidate.Title
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, candidate)
	}
	return out
}
