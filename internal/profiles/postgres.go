package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daniel/course-recommender/internal/types"
)

// PostgresStore reads user profiles from PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies connectivity.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// GetProfile fetches one user profile row. Missing users map to
// ErrProfileNotFound.
func (s *PostgresStore) GetProfile(ctx context.Context, userID string) (types.UserProfile, error) {
	var profile types.UserProfile
	var level string

	err := s.pool.QueryRow(ctx,
		`SELECT skills, interests, experience_level, current_year, COALESCE(target_career, '')
		 FROM user_profiles WHERE user_id = $1`,
		userID,
	).Scan(&profile.Skills, &profile.Interests, &level, &profile.CurrentYear, &profile.TargetCareer)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.UserProfile{}, ErrProfileNotFound
		}
		return types.UserProfile{}, fmt.Errorf("failed to load profile %s: %w", userID, err)
	}

	profile.ExperienceLevel = types.ExperienceLevel(level)
	if !profile.ExperienceLevel.Valid() {
		profile.ExperienceLevel = types.LevelBeginner
	}
	return profile, nil
}
