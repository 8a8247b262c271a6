// Package pool supplies candidate opportunity records to be scored. Sources
// may be static curated catalogs or externally supplied files; the ranking
// engine treats the pooled list as an opaque input.
package pool

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/daniel/course-recommender/internal/types"
)

// DefaultLimit caps the candidate list handed to the scorer. Scoring cost is
// linear in candidates, so the cap bounds request latency.
const DefaultLimit = 30

// Source produces candidate opportunities for a keyword set.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Fetch returns candidates relevant to the keywords. An empty result is
	// a normal outcome.
	Fetch(ctx context.Context, keywords []string) ([]types.CandidateOpportunity, error)
}

// Provider fans out to its sources concurrently and merges their results
// into one deduplicated, capped candidate list.
type Provider struct {
	sources []Source
	limit   int
}

// NewProvider creates a Provider over the given sources. A non-positive
// limit uses DefaultLimit.
func NewProvider(limit int, sources ...Source) *Provider {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Provider{sources: sources, limit: limit}
}

// Candidates fetches from every source concurrently, preserves source order
// in the merged output, deduplicates by URL, and caps the result at the
// provider limit. A failing source fails the whole fetch; candidate fetching
// happens strictly before scoring, so the caller can still choose to rank a
// partial list it obtained elsewhere.
func (p *Provider) Candidates(ctx context.Context, keywords []string) ([]types.CandidateOpportunity, error) {
	results := make([][]types.CandidateOpportunity, len(p.sources))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range p.sources {
		g.Go(func() error {
			candidates, err := src.Fetch(gctx, keywords)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			mu.Lock()
			results[i] = candidates
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]types.CandidateOpportunity, 0, p.limit)
	seen := make(map[string]struct{})
	for _, batch := range results {
		for _, candidate := range batch {
			key := candidate.URL
			if key == "" {
				key = candidate.Title
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, candidate)
			if len(merged) >= p.limit {
				return merged, nil
			}
		}
	}
	return merged, nil
}
