// Package pathfinding computes suggested learning progressions through the
// taxonomy graph from a user's current courses towards a target career.
package pathfinding

import (
	"errors"

	"github.com/daniel/course-recommender/internal/taxonomy"
)

// Resolver answers learning-path queries against an immutable taxonomy graph.
type Resolver struct {
	graph *taxonomy.Graph
}

// NewResolver creates a Resolver over the given graph.
func NewResolver(graph *taxonomy.Graph) *Resolver {
	return &Resolver{graph: graph}
}

// LearningPath returns an ordered progression of taxonomy nodes from the
// user's current courses towards the target career. For each course with a
// directed path to the target, the path minus its starting course is appended;
// the concatenation is deduplicated preserving first-seen order. An empty
// result means no course connects to the target, which is a normal outcome.
func (r *Resolver) LearningPath(currentCourses []string, target string) []string {
	target = taxonomy.NormalizeKey(target)
	if target == "" || !r.graph.Contains(target) {
		return []string{}
	}

	seen := make(map[string]struct{})
	progression := []string{}

	for _, course := range currentCourses {
		course = taxonomy.NormalizeKey(course)
		if !r.graph.Contains(course) {
			continue
		}

		path, err := r.graph.ShortestPath(course, target)
		if err != nil {
			if errors.Is(err, taxonomy.ErrNotFound) {
				continue
			}
			continue
		}

		// Skip the starting course itself.
		for _, node := range path[1:] {
			if _, ok := seen[node]; ok {
				continue
			}
			seen[node] = struct{}{}
			progression = append(progression, node)
		}
	}

	return progression
}
