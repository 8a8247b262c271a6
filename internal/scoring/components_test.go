package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/course-recommender/internal/taxonomy"
	"github.com/daniel/course-recommender/internal/types"
)

func componentGraph() *taxonomy.Graph {
	return taxonomy.Build(map[string]taxonomy.CourseEntry{
		"machine learning": {Technologies: []string{"pytorch"}},
	})
}

func TestComputeGraphScore_LiteralKeywordMatch(t *testing.T) {
	score := computeGraphScore(componentGraph(), "Machine Learning Bootcamp", []string{"machine learning"})

	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestComputeGraphScore_RelatedNodeInTitle(t *testing.T) {
	// "pytorch" is one hop from "machine learning", so the keyword earns
	// 1/(1+1) through the graph even though it never appears in the title.
	score := computeGraphScore(componentGraph(), "PyTorch Bootcamp", []string{"machine learning"})

	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestComputeGraphScore_UnknownKeyword(t *testing.T) {
	score := computeGraphScore(componentGraph(), "PyTorch Bootcamp", []string{"quantum"})

	assert.Zero(t, score)
}

func TestComputeGraphScore_NormalizedByKeywordCount(t *testing.T) {
	score := computeGraphScore(componentGraph(), "Machine Learning Bootcamp",
		[]string{"machine learning", "quantum"})

	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestComputeGraphScore_EmptyInputs(t *testing.T) {
	g := componentGraph()
	assert.Zero(t, computeGraphScore(g, "", []string{"machine learning"}))
	assert.Zero(t, computeGraphScore(g, "Some Title", nil))
}

func TestComputeGraphScore_RepeatableAccumulation(t *testing.T) {
	g := taxonomy.Default()
	// Several graph nodes appear in the title, so the score is a sum of
	// multiple path contributions; its value must not depend on the order
	// the node set is walked in.
	title := "PyTorch and Pandas Workshop"
	kws := []string{"machine learning", "quantum"}

	first := computeGraphScore(g, title, kws)
	require.Greater(t, first, 0.0)
	require.Less(t, first, 1.0)

	for i := 0; i < 100; i++ {
		assert.Equal(t, first, computeGraphScore(g, title, kws))
	}
}

func TestComputeKeywordScore_Fraction(t *testing.T) {
	kws := []string{"machine learning", "machine", "learning", "python"}

	score := computeKeywordScore("Machine Learning Specialization", kws)

	assert.InDelta(t, 0.75, score, 1e-9)
}

func TestComputeKeywordScore_NoMatches(t *testing.T) {
	assert.Zero(t, computeKeywordScore("Italian Cooking", []string{"python"}))
	assert.Zero(t, computeKeywordScore("", []string{"python"}))
	assert.Zero(t, computeKeywordScore("Italian Cooking", nil))
}

func TestComputeProfileScore_JuniorPrefersIntroductory(t *testing.T) {
	junior := types.UserProfile{CurrentYear: 1}

	assert.InDelta(t, 0.8, computeProfileScore("Introduction to Programming", junior), 1e-9)
	assert.InDelta(t, 0.5, computeProfileScore("Advanced Programming", junior), 1e-9)
}

func TestComputeProfileScore_SeniorPrefersAdvanced(t *testing.T) {
	senior := types.UserProfile{CurrentYear: 4}

	assert.InDelta(t, 0.8, computeProfileScore("Advanced Algorithms", senior), 1e-9)
	assert.InDelta(t, 0.5, computeProfileScore("Introduction to Algorithms", senior), 1e-9)
}

func TestComputeProfileScore_UnsetYearTreatedAsJunior(t *testing.T) {
	score := computeProfileScore("Beginner Python", types.UserProfile{})

	assert.InDelta(t, 0.8, score, 1e-9)
}

func TestComputeProfileScore_InterestBonusAppliedOnce(t *testing.T) {
	profile := types.UserProfile{
		CurrentYear: 3,
		Interests:   []string{"python", "machine learning"},
	}

	// Both interests appear; the bonus is granted once.
	score := computeProfileScore("Python for Machine Learning", profile)

	assert.InDelta(t, 0.7, score, 1e-9)
}

func TestComputeProfileScore_ClampedAtOne(t *testing.T) {
	profile := types.UserProfile{CurrentYear: 1, Interests: []string{"python"}}

	score := computeProfileScore("Introduction to Python", profile)

	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestComputeProfileScore_EmptyTitle(t *testing.T) {
	assert.Zero(t, computeProfileScore("", types.UserProfile{CurrentYear: 1}))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 0.25, clamp01(0.25))
	assert.Equal(t, 1.0, clamp01(1.5))
}
