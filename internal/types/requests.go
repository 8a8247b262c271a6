package types

import (
	"github.com/go-playground/validator/v10"
)

// RecommendationRequest is the request body for POST /recommendations.
type RecommendationRequest struct {
	Courses    []CourseRecord         `json:"courses" validate:"required,min=1,dive"`
	Profile    UserProfile            `json:"profile"`
	Candidates []CandidateOpportunity `json:"candidates,omitempty"`
	Limit      int                    `json:"limit,omitempty" validate:"gte=0"`
}

// KeywordRequest is the request body for POST /keywords.
type KeywordRequest struct {
	Courses []CourseRecord `json:"courses" validate:"required,dive"`
}

// LearningPathRequest is the request body for POST /learning-path.
type LearningPathRequest struct {
	CurrentCourses []string `json:"current_courses" validate:"required,min=1,dive,min=1"`
	TargetCareer   string   `json:"target_career" validate:"required,min=1"`
}

// Validate validates the RecommendationRequest using the validator.
func (r *RecommendationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the KeywordRequest using the validator.
func (r *KeywordRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LearningPathRequest using the validator.
func (r *LearningPathRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
