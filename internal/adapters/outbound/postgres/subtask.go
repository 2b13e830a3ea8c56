package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	subtaskFields = []string{
		"id",
		"title",
		"parent_task_id",
		"priority",
		"status",
		"owner_id",
		"created_at",
		"updated_at",
	}
)

// SubtaskRepository implements the domain.SubtaskRepository interface using PostgreSQL as the storage backend.
type SubtaskRepository struct {
	sb squirrel.StatementBuilderType
}

// NewSubtaskRepository creates a new instance of SubtaskRepository.
func NewSubtaskRepository(br squirrel.BaseRunner) SubtaskRepository {
	return SubtaskRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListSubtasks lists the subtasks of the given parent task, newest first.
func (sr SubtaskRepository) ListSubtasks(ctx context.Context, parentTaskID uuid.UUID) ([]domain.Subtask, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("parent_task_id", parentTaskID.String()),
	))
	defer span.End()

	rows, err := sr.sb.
		Select(
			subtaskFields...,
		).From("subtasks").
		Where(squirrel.Eq{"parent_task_id": parentTaskID}).
		OrderBy("created_at DESC").
		QueryContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var subtasks []domain.Subtask
	for rows.Next() {
		var subtask domain.Subtask
		err := rows.Scan(
			&subtask.ID,
			&subtask.Title,
			&subtask.ParentTaskID,
			&subtask.Priority,
			&subtask.Status,
			&subtask.OwnerID,
			&subtask.CreatedAt,
			&subtask.UpdatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		subtasks = append(subtasks, subtask)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return subtasks, nil
}

// CreateSubtask creates a new subtask.
func (sr SubtaskRepository) CreateSubtask(ctx context.Context, subtask domain.Subtask) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := sr.sb.
		Insert("subtasks").
		Columns(
			subtaskFields...,
		).
		Values(
			subtask.ID,
			subtask.Title,
			subtask.ParentTaskID,
			subtask.Priority,
			subtask.Status,
			subtask.OwnerID,
			subtask.CreatedAt,
			subtask.UpdatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// UpdateSubtask updates an existing subtask.
func (sr SubtaskRepository) UpdateSubtask(ctx context.Context, subtask domain.Subtask) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := sr.sb.
		Update("subtasks").
		Set("title", subtask.Title).
		Set("priority", subtask.Priority).
		Set("status", subtask.Status).
		Set("updated_at", subtask.UpdatedAt).
		Where(squirrel.Eq{"id": subtask.ID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteSubtask deletes a subtask by its ID.
func (sr SubtaskRepository) DeleteSubtask(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := sr.sb.
		Delete("subtasks").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// GetSubtask retrieves a subtask by its ID.
func (sr SubtaskRepository) GetSubtask(ctx context.Context, id uuid.UUID) (domain.Subtask, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var subtask domain.Subtask
	err := sr.sb.
		Select(
			subtaskFields...,
		).
		From("subtasks").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx).
		Scan(
			&subtask.ID,
			&subtask.Title,
			&subtask.ParentTaskID,
			&subtask.Priority,
			&subtask.Status,
			&subtask.OwnerID,
			&subtask.CreatedAt,
			&subtask.UpdatedAt,
		)

	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Subtask{}, false, nil
		}
		return domain.Subtask{}, false, err
	}

	return subtask, true, nil
}

// InitSubtaskRepository is a Symbiont initializer for SubtaskRepository.
type InitSubtaskRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the SubtaskRepository in the dependency container.
func (sr InitSubtaskRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SubtaskRepository](NewSubtaskRepository(sr.DB))
	return ctx, nil
}
