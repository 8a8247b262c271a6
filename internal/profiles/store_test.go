package profiles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/course-recommender/internal/types"
)

func TestMemoryStore_PutAndGet(t *testing.T) {
	store := NewMemoryStore()
	profile := types.UserProfile{
		Interests:       []string{"machine learning"},
		ExperienceLevel: types.LevelIntermediate,
		CurrentYear:     3,
		TargetCareer:    "ml engineer",
	}

	store.Put("user-1", profile)

	got, err := store.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestMemoryStore_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestMemoryStore_Overwrite(t *testing.T) {
	store := NewMemoryStore()
	store.Put("user-1", types.UserProfile{CurrentYear: 1})
	store.Put("user-1", types.UserProfile{CurrentYear: 2})

	got, err := store.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentYear)
}
