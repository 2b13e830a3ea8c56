package http

import (
	"context"
	"io"
	"log"

	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/usecases"
	"github.com/google/uuid"
)

// Hand-rolled use case stubs with function fields. Unset fields panic,
// surfacing any handler interaction the test did not expect.

type stubListTasks struct {
	execute func(ctx context.Context, ownerID uuid.UUID, status *domain.TaskStatus) ([]domain.Task, error)
}

func (s stubListTasks) Execute(ctx context.Context, ownerID uuid.UUID, status *domain.TaskStatus) ([]domain.Task, error) {
	return s.execute(ctx, ownerID, status)
}

type stubGetTask struct {
	execute func(ctx context.Context, ownerID, id uuid.UUID) (domain.Task, error)
}

func (s stubGetTask) Execute(ctx context.Context, ownerID, id uuid.UUID) (domain.Task, error) {
	return s.execute(ctx, ownerID, id)
}

type stubCreateTask struct {
	execute func(ctx context.Context, params usecases.CreateTaskParams) (domain.Task, error)
}

func (s stubCreateTask) Execute(ctx context.Context, params usecases.CreateTaskParams) (domain.Task, error) {
	return s.execute(ctx, params)
}

type stubUpdateTask struct {
	execute func(ctx context.Context, ownerID, id uuid.UUID, title *string, priority *domain.TaskPriority, status *domain.TaskStatus) (domain.Task, error)
}

func (s stubUpdateTask) Execute(ctx context.Context, ownerID, id uuid.UUID, title *string, priority *domain.TaskPriority, status *domain.TaskStatus) (domain.Task, error) {
	return s.execute(ctx, ownerID, id, title, priority, status)
}

type stubDeleteTask struct {
	execute func(ctx context.Context, ownerID, id uuid.UUID) error
}

func (s stubDeleteTask) Execute(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.execute(ctx, ownerID, id)
}

type stubSearchTasks struct {
	execute func(ctx context.Context, ownerID uuid.UUID, query string) ([]domain.SimilarityResult, error)
}

func (s stubSearchTasks) Execute(ctx context.Context, ownerID uuid.UUID, query string) ([]domain.SimilarityResult, error) {
	return s.execute(ctx, ownerID, query)
}

type stubSuggestSubtasks struct {
	execute func(ctx context.Context, parentTitle string) ([]string, error)
}

func (s stubSuggestSubtasks) Execute(ctx context.Context, parentTitle string) ([]string, error) {
	return s.execute(ctx, parentTitle)
}

type stubListSubtasks struct {
	execute func(ctx context.Context, parentTaskID uuid.UUID) ([]domain.Subtask, error)
}

func (s stubListSubtasks) Execute(ctx context.Context, parentTaskID uuid.UUID) ([]domain.Subtask, error) {
	return s.execute(ctx, parentTaskID)
}

type stubCreateSubtask struct {
	execute func(ctx context.Context, params usecases.CreateSubtaskParams) (domain.Subtask, error)
}

func (s stubCreateSubtask) Execute(ctx context.Context, params usecases.CreateSubtaskParams) (domain.Subtask, error) {
	return s.execute(ctx, params)
}

type stubUpdateSubtask struct {
	execute func(ctx context.Context, ownerID, id uuid.UUID, title *string, priority *domain.TaskPriority, status *domain.TaskStatus) (domain.Subtask, error)
}

func (s stubUpdateSubtask) Execute(ctx context.Context, ownerID, id uuid.UUID, title *string, priority *domain.TaskPriority, status *domain.TaskStatus) (domain.Subtask, error) {
	return s.execute(ctx, ownerID, id, title, priority, status)
}

type stubDeleteSubtask struct {
	execute func(ctx context.Context, ownerID, id uuid.UUID) error
}

func (s stubDeleteSubtask) Execute(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.execute(ctx, ownerID, id)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
