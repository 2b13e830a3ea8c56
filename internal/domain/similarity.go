package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// SimilarityThreshold is the minimum cosine similarity a task must score
	// against the query to be surfaced.
	SimilarityThreshold = 0.70
	// MaxSearchResults bounds the result set of a similarity search.
	MaxSearchResults = 5
)

// SimilarityResult is a task projection plus its cosine similarity to the
// search query, in [-1, 1].
type SimilarityResult struct {
	TaskID     uuid.UUID
	Title      string
	Priority   TaskPriority
	Status     TaskStatus
	CreatedAt  time.Time
	Similarity float64
}
