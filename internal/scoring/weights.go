// Package scoring ranks candidate opportunities against a user's enrolled
// courses and profile using a weighted composite of semantic, graph, keyword,
// and profile-alignment signals.
package scoring

// Default weights for the composite relevance score. These are tunable
// defaults, not derived optima; callers may override them via configuration.
const (
	defaultSemanticWeight = 0.35
	defaultGraphWeight    = 0.30
	defaultKeywordWeight  = 0.20
	defaultProfileWeight  = 0.15
)

// Weights configures the contribution of each component to the composite
// relevance score.
type Weights struct {
	Semantic float64 `json:"semantic"`
	Graph    float64 `json:"graph"`
	Keyword  float64 `json:"keyword"`
	Profile  float64 `json:"profile"`
}

// DefaultWeights returns the standard weight configuration.
func DefaultWeights() Weights {
	return Weights{
		Semantic: defaultSemanticWeight,
		Graph:    defaultGraphWeight,
		Keyword:  defaultKeywordWeight,
		Profile:  defaultProfileWeight,
	}
}

// Normalized returns a copy of the weights scaled to sum to 1.0, which keeps
// the composite score inside [0,1] when every component is. Non-positive
// configurations fall back to the defaults.
func (w Weights) Normalized() Weights {
	sum := w.Semantic + w.Graph + w.Keyword + w.Profile
	if sum <= 0 {
		return DefaultWeights()
	}
	return Weights{
		Semantic: w.Semantic / sum,
		Graph:    w.Graph / sum,
		Keyword:  w.Keyword / sum,
		Profile:  w.Profile / sum,
	}
}
