package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/daniel/course-recommender/internal/profiles"
	"github.com/daniel/course-recommender/internal/types"
)

// RecommendationResponse is the response for POST /recommendations.
type RecommendationResponse struct {
	RequestID string               `json:"request_id"`
	Keywords  []string             `json:"keywords"`
	Results   []types.RankedResult `json:"results"`
	Total     int                  `json:"total"`
}

// KeywordResponse is the response for POST /keywords.
type KeywordResponse struct {
	Keywords []string `json:"keywords"`
	Total    int      `json:"total"`
}

// LearningPathResponse is the response for POST /learning-path.
type LearningPathResponse struct {
	TargetCareer string   `json:"target_career"`
	Path         []string `json:"path"`
}

// recommendationRequest extends the shared DTO with an optional stored
// profile reference.
type recommendationRequest struct {
	types.RecommendationRequest
	UserID string `json:"user_id,omitempty"`
}

// handleRecommendations ranks candidates for the submitted courses and
// profile. Without an explicit candidate list the engine's candidate pool is
// used; with a user_id and a configured profile store, the stored profile
// overrides the inline one.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile := req.Profile
	if req.UserID != "" && s.profiles != nil {
		stored, err := s.profiles.GetProfile(r.Context(), req.UserID)
		switch {
		case errors.Is(err, profiles.ErrProfileNotFound):
			s.errorResponse(w, http.StatusNotFound, "User profile not found")
			return
		case err != nil:
			s.errorResponse(w, http.StatusInternalServerError, "Profile store error: "+err.Error())
			return
		default:
			profile = stored
		}
	}

	var (
		results []types.RankedResult
		err     error
	)
	if len(req.Candidates) > 0 {
		results, err = s.engine.Rank(r.Context(), req.Candidates, req.Courses, profile)
	} else {
		results, err = s.engine.Recommend(r.Context(), req.Courses, profile)
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Ranking failed: "+err.Error())
		return
	}

	if req.Limit > 0 && len(results) > req.Limit {
		results = results[:req.Limit]
	}

	s.writeJSON(w, http.StatusOK, RecommendationResponse{
		RequestID: uuid.NewString(),
		Keywords:  s.engine.ExtractKeywords(req.Courses),
		Results:   results,
		Total:     len(results),
	})
}

// handleKeywords extracts the keyword set for a course list.
func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req types.KeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	kws := s.engine.ExtractKeywords(req.Courses)
	s.writeJSON(w, http.StatusOK, KeywordResponse{Keywords: kws, Total: len(kws)})
}

// handleLearningPath computes the progression towards a target career. An
// empty path is a valid answer, not an error.
func (s *Server) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	var req types.LearningPathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	path := s.engine.LearningPath(req.CurrentCourses, req.TargetCareer)
	s.writeJSON(w, http.StatusOK, LearningPathResponse{
		TargetCareer: req.TargetCareer,
		Path:         path,
	})
}

// writeJSON writes a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// errorResponse writes a JSON error body with the given status.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
