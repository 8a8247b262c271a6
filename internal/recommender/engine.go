// Package recommender wires the taxonomy graph, embedding encoder, scorer,
// and learning-path resolver into one engine exposing the core recommendation
// operations. The engine is built once at process start and is immutable
// afterwards, so concurrent requests share it safely.
package recommender

import (
	"context"
	"fmt"

	"github.com/daniel/course-recommender/internal/embedding"
	"github.com/daniel/course-recommender/internal/keywords"
	"github.com/daniel/course-recommender/internal/pathfinding"
	"github.com/daniel/course-recommender/internal/pool"
	"github.com/daniel/course-recommender/internal/scoring"
	"github.com/daniel/course-recommender/internal/taxonomy"
	"github.com/daniel/course-recommender/internal/types"
)

// Engine exposes the recommendation core to the service layer.
type Engine struct {
	graph    *taxonomy.Graph
	scorer   *scoring.Scorer
	resolver *pathfinding.Resolver
	provider *pool.Provider
}

// Options configures engine construction. Zero values select the defaults:
// the built-in taxonomy, the local encoder, the standard weights, and the
// curated catalogs.
type Options struct {
	Graph    *taxonomy.Graph
	Encoder  embedding.Encoder
	Weights  scoring.Weights
	Provider *pool.Provider
}

// New builds an Engine. Encoder problems are surfaced here so the process
// fails fast at startup instead of per-request.
func New(ctx context.Context, opts Options) (*Engine, error) {
	graph := opts.Graph
	if graph == nil {
		graph = taxonomy.Default()
	}

	encoder := opts.Encoder
	if encoder == nil {
		encoder = embedding.NewLocalEncoder()
	}
	// Probe the encoder once; a model that cannot embed anything must never
	// reach serving.
	if _, err := encoder.Encode(ctx, "startup probe"); err != nil {
		return nil, fmt.Errorf("%w: %v", embedding.ErrModelUnavailable, err)
	}

	scorer, err := scoring.NewScorer(graph, encoder, opts.Weights)
	if err != nil {
		return nil, fmt.Errorf("failed to create scorer: %w", err)
	}

	provider := opts.Provider
	if provider == nil {
		provider = pool.NewProvider(0, pool.NewCourseCatalog(), pool.NewCertificationCatalog())
	}

	return &Engine{
		graph:    graph,
		scorer:   scorer,
		resolver: pathfinding.NewResolver(graph),
		provider: provider,
	}, nil
}

// ExtractKeywords derives the normalized keyword set for a course list.
func (e *Engine) ExtractKeywords(courses []types.CourseRecord) []string {
	return keywords.Extract(courses)
}

// Rank scores candidates against the courses and profile and returns them in
// descending relevance order.
func (e *Engine) Rank(
	ctx context.Context,
	candidates []types.CandidateOpportunity,
	courses []types.CourseRecord,
	profile types.UserProfile,
) ([]types.RankedResult, error) {
	return e.scorer.Rank(ctx, candidates, courses, profile)
}

// Recommend fetches candidates from the pool using keywords extracted from
// the courses, then ranks them. Used when the caller supplies no candidate
// list of its own.
func (e *Engine) Recommend(
	ctx context.Context,
	courses []types.CourseRecord,
	profile types.UserProfile,
) ([]types.RankedResult, error) {
	candidates, err := e.provider.Candidates(ctx, keywords.Extract(courses))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}
	return e.scorer.Rank(ctx, candidates, courses, profile)
}

// LearningPath computes the suggested progression from the current courses
// to the target career. An empty path is a normal outcome.
func (e *Engine) LearningPath(currentCourses []string, target string) []string {
	return e.resolver.LearningPath(currentCourses, target)
}

// Weights reports the normalized scoring weights in effect.
func (e *Engine) Weights() scoring.Weights {
	return e.scorer.Weights()
}
