package domain

import (
	"math"
	"strings"
)

// EmbeddingDimension is the output dimension of the embedding model. The
// fallback encoder produces vectors of the same dimension so the two are
// interchangeable to downstream consumers.
const EmbeddingDimension = 384

// EmbedResult is a semantic vector plus token accounting and a flag marking
// whether the deterministic fallback encoder produced it.
type EmbedResult struct {
	Vector       []float64
	TotalTokens  int
	UsedFallback bool
}

// FallbackEmbedding derives a deterministic pseudo-embedding from raw text by
// character hashing. It is a degraded-quality substitute for the embedding
// model, not a cryptographic hash: collisions are acceptable.
func FallbackEmbedding(text string) []float64 {
	words := strings.Fields(strings.ToLower(text))
	embedding := make([]float64, EmbeddingDimension)

	for i, word := range words {
		for j, r := range []rune(word) {
			charCode := float64(r)
			index := (int(r) + i*37 + j*13) % EmbeddingDimension
			embedding[index] += (charCode / 255) * 0.1
		}
	}

	var sumSquares float64
	for _, v := range embedding {
		sumSquares += v * v
	}
	magnitude := math.Sqrt(sumSquares)
	if magnitude > 0 {
		for i := range embedding {
			embedding[i] /= magnitude
		}
	}

	return embedding
}
