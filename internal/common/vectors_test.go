package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := map[string]struct {
		vectorA   []float64
		vectorB   []float64
		wantScore float64
		wantErr   bool
	}{
		"identical-vectors-return-1.0": {
			vectorA:   []float64{1.0, 2.0, 3.0},
			vectorB:   []float64{1.0, 2.0, 3.0},
			wantScore: 1.0,
		},
		"opposite-vectors-return-negative-1.0": {
			vectorA:   []float64{1.0, 2.0, 3.0},
			vectorB:   []float64{-1.0, -2.0, -3.0},
			wantScore: -1.0,
		},
		"orthogonal-vectors-return-0.0": {
			vectorA:   []float64{1.0, 0.0},
			vectorB:   []float64{0.0, 1.0},
			wantScore: 0.0,
		},
		"scaled-vectors-return-1.0": {
			vectorA:   []float64{1.0, 2.0, 3.0},
			vectorB:   []float64{2.0, 4.0, 6.0},
			wantScore: 1.0,
		},
		"partially-similar-vectors": {
			vectorA:   []float64{1.0, 1.0, 0.0},
			vectorB:   []float64{1.0, 0.0, 1.0},
			wantScore: 0.5,
		},
		"different-length-vectors-return-error": {
			vectorA: []float64{1.0, 2.0},
			vectorB: []float64{1.0, 2.0, 3.0},
			wantErr: true,
		},
		"empty-against-non-empty-returns-error": {
			vectorA: []float64{},
			vectorB: []float64{1.0, 2.0, 3.0},
			wantErr: true,
		},
		"zero-vector-first-returns-0": {
			vectorA:   []float64{0.0, 0.0, 0.0},
			vectorB:   []float64{1.0, 2.0, 3.0},
			wantScore: 0,
		},
		"zero-vector-second-returns-0": {
			vectorA:   []float64{1.0, 2.0, 3.0},
			vectorB:   []float64{0.0, 0.0, 0.0},
			wantScore: 0,
		},
		"both-zero-vectors-return-0": {
			vectorA:   []float64{0.0, 0.0},
			vectorB:   []float64{0.0, 0.0},
			wantScore: 0,
		},
		"both-vectors-empty-return-0": {
			vectorA:   []float64{},
			vectorB:   []float64{},
			wantScore: 0,
		},
		"single-element-vectors": {
			vectorA:   []float64{5.0},
			vectorB:   []float64{3.0},
			wantScore: 1.0,
		},
		"negative-values": {
			vectorA:   []float64{-1.0, -2.0, -3.0},
			vectorB:   []float64{-2.0, -4.0, -6.0},
			wantScore: 1.0,
		},
		"mixed-positive-and-negative": {
			vectorA:   []float64{1.0, -1.0, 2.0},
			vectorB:   []float64{-1.0, 1.0, -2.0},
			wantScore: -1.0,
		},
		"very-small-values": {
			vectorA:   []float64{0.0001, 0.0002, 0.0003},
			vectorB:   []float64{0.0001, 0.0002, 0.0003},
			wantScore: 1.0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			score, err := CosineSimilarity(tt.vectorA, tt.vectorB)

			if tt.wantErr {
				var mismatchErr *DimensionMismatchErr
				assert.ErrorAs(t, err, &mismatchErr)
				assert.Equal(t, 0.0, score)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.wantScore, score, 0.0001)
		})
	}
}

func TestDimensionMismatchErr_Error(t *testing.T) {
	err := &DimensionMismatchErr{LenA: 384, LenB: 3}
	assert.Equal(t, "vector dimension mismatch: 384 != 3", err.Error())
}
