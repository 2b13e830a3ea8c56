package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskPriority represents the priority of a task.
type TaskPriority string

const (
	// TaskPriority_LOW indicates a low-priority task.
	TaskPriority_LOW TaskPriority = "LOW"
	// TaskPriority_MEDIUM indicates a medium-priority task.
	TaskPriority_MEDIUM TaskPriority = "MEDIUM"
	// TaskPriority_HIGH indicates a high-priority task.
	TaskPriority_HIGH TaskPriority = "HIGH"
)

// TaskStatus represents the status of a task.
type TaskStatus string

const (
	// TaskStatus_PENDING indicates that the task has not been started.
	TaskStatus_PENDING TaskStatus = "PENDING"
	// TaskStatus_IN_PROGRESS indicates that the task is being worked on.
	TaskStatus_IN_PROGRESS TaskStatus = "IN_PROGRESS"
	// TaskStatus_DONE indicates that the task has been completed.
	TaskStatus_DONE TaskStatus = "DONE"
)

// Task represents a task in the system. The embedding, when present, always
// corresponds to the current title: any title mutation refreshes it.
type Task struct {
	ID        uuid.UUID
	Title     string
	Priority  TaskPriority
	Status    TaskStatus
	OwnerID   uuid.UUID
	Embedding []float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Task) Validate() error {
	if t.Title == "" {
		return NewValidationErr("title cannot be empty")
	}
	if len(t.Title) < 3 || len(t.Title) > 200 {
		return NewValidationErr("title must be between 3 and 200 characters")
	}
	if t.OwnerID == uuid.Nil {
		return NewValidationErr("owner_id cannot be empty")
	}
	if t.Priority != TaskPriority_LOW && t.Priority != TaskPriority_MEDIUM && t.Priority != TaskPriority_HIGH {
		return NewValidationErr("priority must be LOW, MEDIUM or HIGH")
	}
	if t.Status != TaskStatus_PENDING && t.Status != TaskStatus_IN_PROGRESS && t.Status != TaskStatus_DONE {
		return NewValidationErr("status must be PENDING, IN_PROGRESS or DONE")
	}

	return nil
}

// HasEmbedding reports whether the task carries a stored embedding.
func (t Task) HasEmbedding() bool {
	return len(t.Embedding) > 0
}

// ListTasksParams represents the parameters for listing tasks.
type ListTasksParams struct {
	Status *TaskStatus
}

// ListTaskOption defines a function type for modifying ListTasksParams.
type ListTaskOption func(*ListTasksParams)

// WithStatus is a ListTaskOption that filters tasks by their status.
func WithStatus(status TaskStatus) ListTaskOption {
	return func(params *ListTasksParams) {
		params.Status = &status
	}
}

// TaskRepository defines the interface for interacting with tasks in the data store.
type TaskRepository interface {
	// ListTasks retrieves the tasks owned by ownerID, newest first.
	ListTasks(ctx context.Context, ownerID uuid.UUID, opts ...ListTaskOption) ([]Task, error)

	// ListTasksMissingEmbedding retrieves up to limit tasks across all owners
	// that have no stored embedding, oldest first.
	ListTasksMissingEmbedding(ctx context.Context, limit int) ([]Task, error)

	// CreateTask creates a new task.
	CreateTask(ctx context.Context, task Task) error

	// UpdateTask updates an existing task in a single write, embedding included.
	UpdateTask(ctx context.Context, task Task) error

	// DeleteTask removes a task identified by id from the data store.
	DeleteTask(ctx context.Context, id uuid.UUID) error

	// GetTask retrieves a task by its unique identifier.
	GetTask(ctx context.Context, id uuid.UUID) (Task, bool, error)

	// SearchByEmbedding ranks the owner's tasks by cosine similarity to the
	// given vector server-side, keeping only scores above minSimilarity and
	// returning at most limit results, best first.
	SearchByEmbedding(ctx context.Context, ownerID uuid.UUID, embedding []float64, minSimilarity float64, limit int) ([]SimilarityResult, error)
}
