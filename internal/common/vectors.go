package common

import (
	"fmt"
	"math"
)

// DimensionMismatchErr is returned when two vectors of unequal length are
// compared. Vectors from different model/fallback origins must never be
// scored against each other without a length check.
type DimensionMismatchErr struct {
	LenA, LenB int
}

// Error returns the error message.
func (e *DimensionMismatchErr) Error() string {
	return fmt.Sprintf("vector dimension mismatch: %d != %d", e.LenA, e.LenB)
}

// CosineSimilarity calculates the cosine similarity between two equal-length
// vectors. A zero-norm vector on either side yields 0: an all-zero embedding
// carries no signal and is maximally dissimilar to everything.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &DimensionMismatchErr{LenA: len(a), LenB: len(b)}
	}

	var dotProduct float64
	var normA float64
	var normB float64

	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
