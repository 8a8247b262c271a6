// Package profiles provides read access to stored user profiles. The ranking
// core only ever consumes the returned values; profile persistence itself
// lives outside the engine.
package profiles

import (
	"context"
	"errors"
	"sync"

	"github.com/daniel/course-recommender/internal/types"
)

// ErrProfileNotFound indicates no profile exists for the user id.
var ErrProfileNotFound = errors.New("profile not found")

// Store returns user profiles by id.
type Store interface {
	GetProfile(ctx context.Context, userID string) (types.UserProfile, error)
}

// MemoryStore is an in-memory Store used for tests and single-process setups.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]types.UserProfile
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]types.UserProfile)}
}

// Put stores a profile under the user id.
func (s *MemoryStore) Put(userID string, profile types.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = profile
}

// GetProfile returns the stored profile or ErrProfileNotFound.
func (s *MemoryStore) GetProfile(_ context.Context, userID string) (types.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return types.UserProfile{}, ErrProfileNotFound
	}
	return profile, nil
}
