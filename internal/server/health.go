package server

import "net/http"

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status  string             `json:"status"`
	Weights map[string]float64 `json:"weights"`
}

// handleHealth reports liveness plus the scoring weights in effect, which
// makes weight configuration visible to operators.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	weights := s.engine.Weights()
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Weights: map[string]float64{
			"semantic": weights.Semantic,
			"graph":    weights.Graph,
			"keyword":  weights.Keyword,
			"profile":  weights.Profile,
		},
	})
}
