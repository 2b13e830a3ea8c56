package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	taskFields = []string{
		"id",
		"title",
		"priority",
		"status",
		"owner_id",
		"embedding",
		"created_at",
		"updated_at",
	}
)

// TaskRepository implements the domain.TaskRepository interface using PostgreSQL as the storage backend.
type TaskRepository struct {
	sb squirrel.StatementBuilderType
}

// NewTaskRepository creates a new instance of TaskRepository.
func NewTaskRepository(br squirrel.BaseRunner) TaskRepository {
	return TaskRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListTasks lists the tasks owned by ownerID, newest first.
func (tr TaskRepository) ListTasks(ctx context.Context, ownerID uuid.UUID, opts ...domain.ListTaskOption) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("owner_id", ownerID.String()),
	))
	defer span.End()

	qry := tr.sb.
		Select(
			taskFields...,
		).From("tasks").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC")

	params := &domain.ListTasksParams{}
	for _, opt := range opts {
		opt(params)
	}

	if params.Status != nil {
		qry = qry.Where(squirrel.Eq{"status": *params.Status})
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	tasks, err := scanTasks(rows)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return tasks, nil
}

// ListTasksMissingEmbedding lists up to limit tasks without a stored
// embedding, oldest first, across all owners.
func (tr TaskRepository) ListTasksMissingEmbedding(ctx context.Context, limit int) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	rows, err := tr.sb.
		Select(
			taskFields...,
		).From("tasks").
		Where("embedding IS NULL").
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		QueryContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	tasks, err := scanTasks(rows)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return tasks, nil
}

// CreateTask creates a new task.
func (tr TaskRepository) CreateTask(ctx context.Context, task domain.Task) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	embedding, err := vectorValue(task.Embedding)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err = tr.sb.
		Insert("tasks").
		Columns(
			taskFields...,
		).
		Values(
			task.ID,
			task.Title,
			task.Priority,
			task.Status,
			task.OwnerID,
			embedding,
			task.CreatedAt,
			task.UpdatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// UpdateTask updates an existing task in a single write, embedding included.
func (tr TaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	embedding, err := vectorValue(task.Embedding)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err = tr.sb.
		Update("tasks").
		Set("title", task.Title).
		Set("priority", task.Priority).
		Set("status", task.Status).
		Set("embedding", embedding).
		Set("updated_at", task.UpdatedAt).
		Where(squirrel.Eq{"id": task.ID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteTask deletes a task by its ID.
func (tr TaskRepository) DeleteTask(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := tr.sb.
		Delete("tasks").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// GetTask retrieves a task by its ID.
func (tr TaskRepository) GetTask(ctx context.Context, id uuid.UUID) (domain.Task, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var task domain.Task
	var embedding sql.Null[pgvector.Vector]
	err := tr.sb.
		Select(
			taskFields...,
		).
		From("tasks").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx).
		Scan(
			&task.ID,
			&task.Title,
			&task.Priority,
			&task.Status,
			&task.OwnerID,
			&embedding,
			&task.CreatedAt,
			&task.UpdatedAt,
		)

	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Task{}, false, nil
		}
		return domain.Task{}, false, err
	}

	if embedding.Valid {
		task.Embedding = toFloat64(embedding.V.Slice())
	}

	return task, true, nil
}

// SearchByEmbedding ranks the owner's tasks by cosine similarity to the given
// vector, keeping only scores above minSimilarity. Tasks without a stored
// embedding never participate in the ranking.
func (tr TaskRepository) SearchByEmbedding(ctx context.Context, ownerID uuid.UUID, embedding []float64, minSimilarity float64, limit int) ([]domain.SimilarityResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("owner_id", ownerID.String()),
		attribute.Int("limit", limit),
	))
	defer span.End()

	f32, err := toVector(embedding)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	queryVector := pgvector.NewVector(f32)

	rows, err := tr.sb.
		Select(
			"id",
			"title",
			"priority",
			"status",
			"created_at",
		).
		Column(squirrel.Expr("1 - (embedding <=> ?) AS similarity", queryVector)).
		From("tasks").
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where("embedding IS NOT NULL").
		Where(squirrel.Expr("1 - (embedding <=> ?) > ?", queryVector, minSimilarity)).
		OrderBy("similarity DESC", "created_at DESC").
		Limit(uint64(limit)).
		QueryContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var results []domain.SimilarityResult
	for rows.Next() {
		var result domain.SimilarityResult
		err := rows.Scan(
			&result.TaskID,
			&result.Title,
			&result.Priority,
			&result.Status,
			&result.CreatedAt,
			&result.Similarity,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return results, nil
}

// scanTasks reads task rows including the nullable embedding column.
func scanTasks(rows *sql.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		var task domain.Task
		var embedding sql.Null[pgvector.Vector]
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Priority,
			&task.Status,
			&task.OwnerID,
			&embedding,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if embedding.Valid {
			task.Embedding = toFloat64(embedding.V.Slice())
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// InitTaskRepository is a Symbiont initializer for TaskRepository.
type InitTaskRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the TaskRepository in the dependency container.
func (tr InitTaskRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TaskRepository](NewTaskRepository(tr.DB))
	return ctx, nil
}

// vectorValue maps an empty embedding to SQL NULL instead of a zero-length
// vector. Vectors wider than the column are rejected, never truncated.
func vectorValue(input []float64) (any, error) {
	if len(input) == 0 {
		return nil, nil
	}
	f32, err := toVector(input)
	if err != nil {
		return nil, err
	}
	return pgvector.NewVector(f32), nil
}

func toVector(input []float64) ([]float32, error) {
	if len(input) > domain.EmbeddingDimension {
		return nil, fmt.Errorf("embedding has %d dimensions, column holds %d", len(input), domain.EmbeddingDimension)
	}
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32, nil
}

func toFloat64(input []float32) []float64 {
	f64 := make([]float64, len(input))
	for i, v := range input {
		f64[i] = float64(v)
	}
	return f64
}
