package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus represents the processing lifecycle status of an outbox event.
type OutboxStatus string

const (
	// OutboxStatus_Pending indicates the event is ready to be processed.
	OutboxStatus_Pending OutboxStatus = "PENDING"
	// OutboxStatus_Failed indicates the event exceeded retries and stopped processing.
	OutboxStatus_Failed OutboxStatus = "FAILED"
)

// OutboxTopic identifies the broker topic used for publishing outbox events.
type OutboxTopic string

const (
	// OutboxTopic_Task is the topic for task events.
	OutboxTopic_Task OutboxTopic = "TaskEvents"
)

// OutboxEvent represents an event stored in the outbox.
type OutboxEvent struct {
	ID         uuid.UUID
	EntityType string
	EntityID   uuid.UUID
	Topic      OutboxTopic
	EventType  EventType
	Payload    []byte
	Status     OutboxStatus
	RetryCount int
	MaxRetries int
	LastError  *string
	CreatedAt  time.Time
}

// OutboxRepository defines the interface for managing outbox events.
type OutboxRepository interface {
	// CreateTaskEvent records a new task event in the outbox.
	CreateTaskEvent(ctx context.Context, event TaskEvent) error
	// CreateSubtaskEvent records a new subtask event in the outbox.
	CreateSubtaskEvent(ctx context.Context, event SubtaskEvent) error
	// FetchPendingEvents retrieves a batch of pending outbox events.
	FetchPendingEvents(ctx context.Context, limit int) ([]OutboxEvent, error)
	// UpdateEvent updates the status, retry count, and last error of an outbox event.
	UpdateEvent(ctx context.Context, eventID uuid.UUID, status OutboxStatus, retryCount int, lastError string) error
	// DeleteEvent deletes an event from the outbox.
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
}
