package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
)

// defaultDimension is the vector size of the local encoder. Large enough to
// keep hash collisions rare for short course titles.
const defaultDimension = 256

// LocalEncoder is a deterministic hashed bag-of-words encoder. Each token is
// hashed into a fixed-dimension vector with a signed contribution, then the
// vector is L2-normalized. It needs no model files or network access, which
// makes it the default encoder and the one used in tests.
type LocalEncoder struct {
	dimension int
}

// NewLocalEncoder returns a LocalEncoder with the default dimension.
func NewLocalEncoder() *LocalEncoder {
	return &LocalEncoder{dimension: defaultDimension}
}

// Encode converts text into an L2-normalized vector. Empty or whitespace-only
// text yields a zero vector.
func (e *LocalEncoder) Encode(_ context.Context, text string) ([]float64, error) {
	vec := make([]float64, e.dimension)

	for _, token := range strings.Fields(strings.ToLower(text)) {
		bucket, sign := e.hashToken(token)
		vec[bucket] += sign
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

// hashToken maps a token to a bucket index and a +1/-1 sign. The sign bit
// comes from the hash itself so unrelated tokens cancel rather than pile up.
func (e *LocalEncoder) hashToken(token string) (int, float64) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(token))
	sum := h.Sum64()

	bucket := int(sum % uint64(e.dimension))
	sign := 1.0
	if sum&(1<<63) != 0 {
		sign = -1.0
	}
	return bucket, sign
}
