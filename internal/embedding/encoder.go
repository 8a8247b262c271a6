// Package embedding provides text-embedding encoders and vector similarity
// helpers for semantic scoring. Encoders are loaded once at startup and
// treated as read-only shared state; the same input text always yields the
// same vector.
package embedding

import (
	"context"
	"errors"
	"math"
)

// ErrModelUnavailable indicates the embedding model could not be initialized.
// This is fatal at startup; the engine refuses to serve without an encoder.
var ErrModelUnavailable = errors.New("embedding: model unavailable")

// Encoder converts text into a fixed-dimension embedding vector.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float64, error)
}

// CosineSimilarity returns the cosine of the angle between two vectors, in
// [-1,1]. Mismatched dimensions or zero vectors yield 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
