package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Subtask represents a step belonging to a parent task. A subtask references
// its parent but does not own it, and carries no embedding.
type Subtask struct {
	ID           uuid.UUID
	Title        string
	ParentTaskID uuid.UUID
	Priority     TaskPriority
	Status       TaskStatus
	OwnerID      uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s Subtask) Validate() error {
	if s.Title == "" {
		return NewValidationErr("title cannot be empty")
	}
	if len(s.Title) < 3 || len(s.Title) > 200 {
		return NewValidationErr("title must be between 3 and 200 characters")
	}
	if s.ParentTaskID == uuid.Nil {
		return NewValidationErr("parent_task_id cannot be empty")
	}
	if s.OwnerID == uuid.Nil {
		return NewValidationErr("owner_id cannot be empty")
	}
	if s.Priority != TaskPriority_LOW && s.Priority != TaskPriority_MEDIUM && s.Priority != TaskPriority_HIGH {
		return NewValidationErr("priority must be LOW, MEDIUM or HIGH")
	}
	if s.Status != TaskStatus_PENDING && s.Status != TaskStatus_IN_PROGRESS && s.Status != TaskStatus_DONE {
		return NewValidationErr("status must be PENDING, IN_PROGRESS or DONE")
	}

	return nil
}

// SubtaskRepository defines the interface for interacting with subtasks in the data store.
type SubtaskRepository interface {
	// ListSubtasks retrieves the subtasks of the given parent task, newest first.
	ListSubtasks(ctx context.Context, parentTaskID uuid.UUID) ([]Subtask, error)

	// CreateSubtask creates a new subtask.
	CreateSubtask(ctx context.Context, subtask Subtask) error

	// UpdateSubtask updates an existing subtask.
	UpdateSubtask(ctx context.Context, subtask Subtask) error

	// DeleteSubtask removes a subtask identified by id from the data store.
	DeleteSubtask(ctx context.Context, id uuid.UUID) error

	// GetSubtask retrieves a subtask by its unique identifier.
	GetSubtask(ctx context.Context, id uuid.UUID) (Subtask, bool, error)
}
