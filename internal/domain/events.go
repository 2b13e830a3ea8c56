package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_TASK_CREATED represents the event when a task is created.
	EventType_TASK_CREATED EventType = "TASK.CREATED"
	// EventType_TASK_UPDATED represents the event when a task is updated.
	EventType_TASK_UPDATED EventType = "TASK.UPDATED"
	// EventType_TASK_DELETED represents the event when a task is deleted.
	EventType_TASK_DELETED EventType = "TASK.DELETED"
	// EventType_SUBTASK_CREATED represents the event when a subtask is created.
	EventType_SUBTASK_CREATED EventType = "SUBTASK.CREATED"
	// EventType_SUBTASK_UPDATED represents the event when a subtask is updated.
	EventType_SUBTASK_UPDATED EventType = "SUBTASK.UPDATED"
	// EventType_SUBTASK_DELETED represents the event when a subtask is deleted.
	EventType_SUBTASK_DELETED EventType = "SUBTASK.DELETED"
)

// TaskEvent represents a task domain event in the system.
type TaskEvent struct {
	Type      EventType
	TaskID    uuid.UUID
	OwnerID   uuid.UUID
	CreatedAt time.Time
}

// SubtaskEvent represents a subtask domain event. Subtask events share the
// task topic so consumers see one ordered stream per owner.
type SubtaskEvent struct {
	Type         EventType
	SubtaskID    uuid.UUID
	ParentTaskID uuid.UUID
	OwnerID      uuid.UUID
	CreatedAt    time.Time
}

// TaskEventPublisher defines the interface for publishing task events.
type TaskEventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
