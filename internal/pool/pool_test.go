package pool

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/course-recommender/internal/types"
)

type stubSource struct {
	name       string
	candidates []types.CandidateOpportunity
	err        error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(_ context.Context, _ []string) ([]types.CandidateOpportunity, error) {
	return s.candidates, s.err
}

func TestProvider_MergesPreservingSourceOrder(t *testing.T) {
	first := &stubSource{name: "first", candidates: []types.CandidateOpportunity{
		{Title: "A", URL: "https://example.com/a"},
		{Title: "B", URL: "https://example.com/b"},
	}}
	second := &stubSource{name: "second", candidates: []types.CandidateOpportunity{
		{Title: "C", URL: "https://example.com/c"},
	}}

	p := NewProvider(0, first, second)
	merged, err := p.Candidates(context.Background(), []string{"anything"})
	require.NoError(t, err)

	titles := make([]string, 0, len(merged))
	for _, c := range merged {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"A", "B", "C"}, titles)
}

func TestProvider_DeduplicatesByURL(t *testing.T) {
	first := &stubSource{name: "first", candidates: []types.CandidateOpportunity{
		{Title: "A", URL: "https://example.com/shared"},
	}}
	second := &stubSource{name: "second", candidates: []types.CandidateOpportunity{
		{Title: "A again", URL: "https://example.com/shared"},
		{Title: "B", URL: "https://example.com/b"},
	}}

	p := NewProvider(0, first, second)
	merged, err := p.Candidates(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, merged, 2)
	assert.Equal(t, "A", merged[0].Title)
	assert.Equal(t, "B", merged[1].Title)
}

func TestProvider_DeduplicatesByTitleWithoutURL(t *testing.T) {
	src := &stubSource{name: "src", candidates: []types.CandidateOpportunity{
		{Title: "Same Course"},
		{Title: "Same Course"},
	}}

	p := NewProvider(0, src)
	merged, err := p.Candidates(context.Background(), nil)
	require.NoError(t, err)

	assert.Len(t, merged, 1)
}

func TestProvider_CapsAtLimit(t *testing.T) {
	var candidates []types.CandidateOpportunity
	for i := 0; i < 10; i++ {
		candidates = append(candidates, types.CandidateOpportunity{
			Title: fmt.Sprintf("Course %d", i),
			URL:   fmt.Sprintf("https://example.com/%d", i),
		})
	}
	src := &stubSource{name: "src", candidates: candidates}

	p := NewProvider(3, src)
	merged, err := p.Candidates(context.Background(), nil)
	require.NoError(t, err)

	assert.Len(t, merged, 3)
	assert.Equal(t, "Course 0", merged[0].Title)
}

func TestProvider_DefaultLimit(t *testing.T) {
	var candidates []types.CandidateOpportunity
	for i := 0; i < DefaultLimit+10; i++ {
		candidates = append(candidates, types.CandidateOpportunity{
			Title: fmt.Sprintf("Course %d", i),
			URL:   fmt.Sprintf("https://example.com/%d", i),
		})
	}
	src := &stubSource{name: "src", candidates: candidates}

	p := NewProvider(0, src)
	merged, err := p.Candidates(context.Background(), nil)
	require.NoError(t, err)

	assert.Len(t, merged, DefaultLimit)
}

func TestProvider_SourceFailureNamesSource(t *testing.T) {
	boom := errors.New("boom")
	failing := &stubSource{name: "flaky", err: boom}
	ok := &stubSource{name: "ok", candidates: []types.CandidateOpportunity{{Title: "A"}}}

	p := NewProvider(0, ok, failing)
	_, err := p.Candidates(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "flaky")
}

func TestProvider_NoSources(t *testing.T) {
	p := NewProvider(0)

	merged, err := p.Candidates(context.Background(), []string{"python"})
	require.NoError(t, err)
	assert.Empty(t, merged)
}
