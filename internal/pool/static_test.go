package pool

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/course-recommender/internal/types"
)

func TestStaticSource_CategoryMatch(t *testing.T) {
	src := NewCourseCatalog()

	candidates, err := src.Fetch(context.Background(), []string{"machine learning"})
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	for _, c := range candidates {
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.URL)
	}
}

func TestStaticSource_TitleSubstringMatch(t *testing.T) {
	catalog := map[string][]types.CandidateOpportunity{
		"misc": {
			{Title: "Rust Fundamentals", URL: "https://example.com/rust"},
			{Title: "Go Fundamentals", URL: "https://example.com/go"},
		},
	}
	src := NewStaticSource("test", catalog)

	candidates, err := src.Fetch(context.Background(), []string{"rust"})
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "Rust Fundamentals", candidates[0].Title)
}

func TestStaticSource_FallbackOnePerCategory(t *testing.T) {
	catalog := map[string][]types.CandidateOpportunity{
		"alpha": {
			{Title: "Alpha One", URL: "https://example.com/a1"},
			{Title: "Alpha Two", URL: "https://example.com/a2"},
		},
		"beta": {
			{Title: "Beta One", URL: "https://example.com/b1"},
		},
	}
	src := NewStaticSource("test", catalog)

	candidates, err := src.Fetch(context.Background(), []string{"zzz no match"})
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	// Categories are visited in sorted order, taking the first entry of each.
	assert.Equal(t, "Alpha One", candidates[0].Title)
	assert.Equal(t, "Beta One", candidates[1].Title)
}

func TestStaticSource_DeduplicatesAcrossKeywords(t *testing.T) {
	src := NewCourseCatalog()

	candidates, err := src.Fetch(context.Background(),
		[]string{"machine learning", "machine", "learning"})
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, c := range candidates {
		key := c.URL
		if key == "" {
			key = c.Title
		}
		assert.False(t, seen[key], "duplicate candidate %q", c.Title)
		seen[key] = true
	}
}

func TestStaticSource_Deterministic(t *testing.T) {
	src := NewCertificationCatalog()

	first, err := src.Fetch(context.Background(), []string{"cloud"})
	require.NoError(t, err)
	second, err := src.Fetch(context.Background(), []string{"cloud"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCuratedCatalogs_WellFormed(t *testing.T) {
	for _, src := range []*StaticSource{NewCourseCatalog(), NewCertificationCatalog()} {
		for category, entries := range src.catalog {
			assert.Equal(t, strings.ToLower(category), category)
			for _, entry := range entries {
				assert.NotEmpty(t, entry.Title, "category %q", category)
				assert.NotEmpty(t, entry.Platform, "category %q entry %q", category, entry.Title)
			}
		}
	}
}
