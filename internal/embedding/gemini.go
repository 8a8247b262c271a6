package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultEmbeddingModel is the Gemini embedding model used when none is
// configured.
const defaultEmbeddingModel = "text-embedding-004"

// GeminiEncoder produces embeddings from the Gemini embedding API. It is the
// production analog of the local encoder; per the model contract the same
// input text yields the same vector.
type GeminiEncoder struct {
	client *genai.Client
	model  string
}

// NewGeminiEncoder creates a Gemini-backed encoder. An empty model name
// selects the default embedding model. Initialization failures wrap
// ErrModelUnavailable so callers can fail fast at startup.
func NewGeminiEncoder(ctx context.Context, apiKey, model string) (*GeminiEncoder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrModelUnavailable)
	}
	if model == "" {
		model = defaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", ErrModelUnavailable, err)
	}

	return &GeminiEncoder{client: client, model: model}, nil
}

// Encode embeds text via the Gemini embedding API.
func (e *GeminiEncoder) Encode(ctx context.Context, text string) ([]float64, error) {
	em := e.client.EmbeddingModel(e.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding response for model %s", e.model)
	}

	vec := make([]float64, len(resp.Embedding.Values))
	for i, v := range resp.Embedding.Values {
		vec[i] = float64(v)
	}
	return vec, nil
}

// Close releases the underlying API client.
func (e *GeminiEncoder) Close() error {
	return e.client.Close()
}
