package usecases

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/google/uuid"
)

// Hand-rolled stubs for the domain interfaces. Unset function fields panic
// on call, which surfaces unexpected interactions as test failures.

type stubTaskRepository struct {
	listTasks                 func(ctx context.Context, ownerID uuid.UUID, opts ...domain.ListTaskOption) ([]domain.Task, error)
	listTasksMissingEmbedding func(ctx context.Context, limit int) ([]domain.Task, error)
	createTask                func(ctx context.Context, task domain.Task) error
	updateTask                func(ctx context.Context, task domain.Task) error
	deleteTask                func(ctx context.Context, id uuid.UUID) error
	getTask                   func(ctx context.Context, id uuid.UUID) (domain.Task, bool, error)
	searchByEmbedding         func(ctx context.Context, ownerID uuid.UUID, embedding []float64, minSimilarity float64, limit int) ([]domain.SimilarityResult, error)
}

func (s *stubTaskRepository) ListTasks(ctx context.Context, ownerID uuid.UUID, opts ...domain.ListTaskOption) ([]domain.Task, error) {
	return s.listTasks(ctx, ownerID, opts...)
}

func (s *stubTaskRepository) ListTasksMissingEmbedding(ctx context.Context, limit int) ([]domain.Task, error) {
	return s.listTasksMissingEmbedding(ctx, limit)
}

func (s *stubTaskRepository) CreateTask(ctx context.Context, task domain.Task) error {
	return s.createTask(ctx, task)
}

func (s *stubTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	return s.updateTask(ctx, task)
}

func (s *stubTaskRepository) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return s.deleteTask(ctx, id)
}

func (s *stubTaskRepository) GetTask(ctx context.Context, id uuid.UUID) (domain.Task, bool, error) {
	return s.getTask(ctx, id)
}

func (s *stubTaskRepository) SearchByEmbedding(ctx context.Context, ownerID uuid.UUID, embedding []float64, minSimilarity float64, limit int) ([]domain.SimilarityResult, error) {
	return s.searchByEmbedding(ctx, ownerID, embedding, minSimilarity, limit)
}

type stubSubtaskRepository struct {
	listSubtasks  func(ctx context.Context, parentTaskID uuid.UUID) ([]domain.Subtask, error)
	createSubtask func(ctx context.Context, subtask domain.Subtask) error
	updateSubtask func(ctx context.Context, subtask domain.Subtask) error
	deleteSubtask func(ctx context.Context, id uuid.UUID) error
	getSubtask    func(ctx context.Context, id uuid.UUID) (domain.Subtask, bool, error)
}

func (s *stubSubtaskRepository) ListSubtasks(ctx context.Context, parentTaskID uuid.UUID) ([]domain.Subtask, error) {
	return s.listSubtasks(ctx, parentTaskID)
}

func (s *stubSubtaskRepository) CreateSubtask(ctx context.Context, subtask domain.Subtask) error {
	return s.createSubtask(ctx, subtask)
}

func (s *stubSubtaskRepository) UpdateSubtask(ctx context.Context, subtask domain.Subtask) error {
	return s.updateSubtask(ctx, subtask)
}

func (s *stubSubtaskRepository) DeleteSubtask(ctx context.Context, id uuid.UUID) error {
	return s.deleteSubtask(ctx, id)
}

func (s *stubSubtaskRepository) GetSubtask(ctx context.Context, id uuid.UUID) (domain.Subtask, bool, error) {
	return s.getSubtask(ctx, id)
}

type stubOutboxRepository struct {
	createTaskEvent    func(ctx context.Context, event domain.TaskEvent) error
	createSubtaskEvent func(ctx context.Context, event domain.SubtaskEvent) error
	fetchPendingEvents func(ctx context.Context, limit int) ([]domain.OutboxEvent, error)
	updateEvent        func(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error
	deleteEvent        func(ctx context.Context, eventID uuid.UUID) error
}

func (s *stubOutboxRepository) CreateTaskEvent(ctx context.Context, event domain.TaskEvent) error {
	return s.createTaskEvent(ctx, event)
}

func (s *stubOutboxRepository) CreateSubtaskEvent(ctx context.Context, event domain.SubtaskEvent) error {
	return s.createSubtaskEvent(ctx, event)
}

func (s *stubOutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	return s.fetchPendingEvents(ctx, limit)
}

func (s *stubOutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	return s.updateEvent(ctx, eventID, status, retryCount, lastError)
}

func (s *stubOutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	return s.deleteEvent(ctx, eventID)
}

type stubUnitOfWork struct {
	task       *stubTaskRepository
	subtask    *stubSubtaskRepository
	outbox     *stubOutboxRepository
	executeErr error
}

func (s *stubUnitOfWork) Task() domain.TaskRepository       { return s.task }
func (s *stubUnitOfWork) Subtask() domain.SubtaskRepository { return s.subtask }
func (s *stubUnitOfWork) Outbox() domain.OutboxRepository   { return s.outbox }

func (s *stubUnitOfWork) Execute(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
	if s.executeErr != nil {
		return s.executeErr
	}
	return fn(s)
}

type stubTimeProvider struct {
	now time.Time
}

func (s stubTimeProvider) Now() time.Time { return s.now }

type stubLLMClient struct {
	chat  func(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error)
	embed func(ctx context.Context, model, input string) (domain.EmbedResponse, error)
}

func (s *stubLLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	return s.chat(ctx, req)
}

func (s *stubLLMClient) Embed(ctx context.Context, model, input string) (domain.EmbedResponse, error) {
	return s.embed(ctx, model, input)
}

type stubEmbedText struct {
	execute func(ctx context.Context, text string) (domain.EmbedResult, error)
}

func (s *stubEmbedText) Execute(ctx context.Context, text string) (domain.EmbedResult, error) {
	return s.execute(ctx, text)
}

type stubPublisher struct {
	publishEvent func(ctx context.Context, event domain.OutboxEvent) error
}

func (s *stubPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	return s.publishEvent(ctx, event)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
