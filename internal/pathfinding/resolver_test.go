package pathfinding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/course-recommender/internal/taxonomy"
)

func testGraph() *taxonomy.Graph {
	return taxonomy.Build(map[string]taxonomy.CourseEntry{
		"data structures": {LeadsTo: []string{"algorithms"}},
		"algorithms":      {LeadsTo: []string{"ml engineer"}},
		"statistics":      {LeadsTo: []string{"ml engineer"}},
	})
}

func TestLearningPath_SkipsStartingCourse(t *testing.T) {
	r := NewResolver(testGraph())

	path := r.LearningPath([]string{"data structures"}, "ml engineer")

	assert.Equal(t, []string{"algorithms", "ml engineer"}, path)
}

func TestLearningPath_DeduplicatesPreservingFirstSeenOrder(t *testing.T) {
	r := NewResolver(testGraph())

	path := r.LearningPath([]string{"data structures", "statistics"}, "ml engineer")

	// The statistics path would contribute "ml engineer" again; only the
	// first occurrence survives.
	assert.Equal(t, []string{"algorithms", "ml engineer"}, path)
}

func TestLearningPath_UnknownTargetReturnsEmpty(t *testing.T) {
	r := NewResolver(testGraph())

	path := r.LearningPath([]string{"data structures"}, "astronaut")

	require.NotNil(t, path)
	assert.Empty(t, path)
}

func TestLearningPath_IgnoresUnknownCourses(t *testing.T) {
	r := NewResolver(testGraph())

	path := r.LearningPath([]string{"basket weaving", "data structures"}, "ml engineer")

	assert.Equal(t, []string{"algorithms", "ml engineer"}, path)
}

func TestLearningPath_NoConnectionReturnsEmpty(t *testing.T) {
	g := taxonomy.Build(map[string]taxonomy.CourseEntry{
		"data structures": {},
		"art history":     {LeadsTo: []string{"curator"}},
	})
	r := NewResolver(g)

	path := r.LearningPath([]string{"data structures"}, "curator")

	require.NotNil(t, path)
	assert.Empty(t, path)
}

func TestLearningPath_NormalizesInputs(t *testing.T) {
	r := NewResolver(testGraph())

	path := r.LearningPath([]string{"  Data  Structures "}, "ML Engineer")

	assert.Equal(t, []string{"algorithms", "ml engineer"}, path)
}
