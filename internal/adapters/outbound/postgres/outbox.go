package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/google/uuid"
)

var (
	outboxEventFields = []string{
		"id",
		"entity_type",
		"entity_id",
		"topic",
		"event_type",
		"payload",
		"retry_count",
		"max_retries",
		"last_error",
		"created_at",
	}
)

type OutboxRepository struct {
	sb squirrel.StatementBuilderType
}

func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateTaskEvent records a new task event in the outbox.
func (op OutboxRepository) CreateTaskEvent(ctx context.Context, event domain.TaskEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	payloadJSON, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	_, err = op.sb.Insert("outbox_events").
		Columns(
			outboxEventFields...,
		).
		Values(
			uuid.New(),
			"Task",
			event.TaskID,
			domain.OutboxTopic_Task,
			string(event.Type),
			payloadJSON,
			0,
			5,
			nil,
			event.CreatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	return nil
}

// CreateSubtaskEvent records a new subtask event in the outbox. Subtask
// events go out on the task topic, keyed by the subtask ID.
func (op OutboxRepository) CreateSubtaskEvent(ctx context.Context, event domain.SubtaskEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	payloadJSON, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	_, err = op.sb.Insert("outbox_events").
		Columns(
			outboxEventFields...,
		).
		Values(
			uuid.New(),
			"Subtask",
			event.SubtaskID,
			domain.OutboxTopic_Task,
			string(event.Type),
			payloadJSON,
			0,
			5,
			nil,
			event.CreatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	return nil
}

// FetchPendingEvents retrieves a batch of pending outbox events from the database.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	rows, err := op.sb.
		Select(
			outboxEventFields...,
		).
		From("outbox_events").
		Where(squirrel.Eq{"status": domain.OutboxStatus_Pending}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(ctx)

	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var oe domain.OutboxEvent
		err := rows.Scan(
			&oe.ID,
			&oe.EntityType,
			&oe.EntityID,
			&oe.Topic,
			&oe.EventType,
			&oe.Payload,
			&oe.RetryCount,
			&oe.MaxRetries,
			&oe.LastError,
			&oe.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		events = append(events, oe)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// UpdateEvent updates the status, retry count, and last error of an outbox event.
func (op OutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	_, err := op.sb.
		Update("outbox_events").
		Set("status", status).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}

// DeleteEvent deletes an outbox event from the database.
func (op OutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	_, err := op.sb.
		Delete("outbox_events").
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}
