// Package types provides type definitions for structured data used throughout the course-recommender system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CourseRecord represents one enrolled course as produced by the upstream
// timetable extraction. Records are immutable once constructed.
type CourseRecord struct {
	Name    string `json:"name" validate:"required,min=1"`
	Code    string `json:"code,omitempty"`
	RawText string `json:"raw_text,omitempty"`
}

// ExperienceLevel describes a user's self-reported experience tier.
type ExperienceLevel string

// Valid experience levels.
const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

// Valid reports whether the level is one of the known tiers.
func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// UserProfile is the read-only scoring input describing the user.
// The core never mutates a profile.
type UserProfile struct {
	Skills          []string        `json:"skills,omitempty"`
	Interests       []string        `json:"interests,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty"`
	CurrentYear     int             `json:"current_year,omitempty"`
	TargetCareer    string          `json:"target_career,omitempty"`
}

// CandidateOpportunity is the canonical shape every candidate source must
// adapt to before scoring. Score fields are filled in by the scorer and are
// zero until then.
type CandidateOpportunity struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Platform    string   `json:"platform,omitempty"`
	Provider    string   `json:"provider,omitempty"`
	URL         string   `json:"url,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Level       string   `json:"level,omitempty"`
	Price       string   `json:"price,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
}

// RankedResult is a candidate enriched with its component scores and the
// composite relevance score. Owned by the caller for the duration of one
// ranking request; nothing is persisted by the core.
type RankedResult struct {
	CandidateOpportunity

	SemanticScore  float64 `json:"semantic_score"`
	GraphScore     float64 `json:"graph_score"`
	KeywordScore   float64 `json:"keyword_score"`
	ProfileScore   float64 `json:"profile_score"`
	RelevanceScore float64 `json:"relevance_score"`
}
