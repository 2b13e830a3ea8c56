package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/google/uuid"
)

// CreateTaskParams carries the caller-supplied fields for a new task.
type CreateTaskParams struct {
	Title    string
	Priority domain.TaskPriority
	Status   domain.TaskStatus
	OwnerID  uuid.UUID
}

// CreateTask defines the interface for the CreateTask use case.
type CreateTask interface {
	Execute(ctx context.Context, params CreateTaskParams) (domain.Task, error)
}

// CreateTaskImpl is the implementation of the CreateTask use case. Embedding
// generation is best effort: a task is never rejected because its vector
// could not be computed.
type CreateTaskImpl struct {
	uow          domain.UnitOfWork
	embedText    EmbedText
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	createUUID   func() uuid.UUID
}

// NewCreateTaskImpl creates a new instance of CreateTaskImpl.
func NewCreateTaskImpl(
	uow domain.UnitOfWork,
	embedText EmbedText,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) CreateTaskImpl {
	return CreateTaskImpl{
		uow:          uow,
		embedText:    embedText,
		timeProvider: timeProvider,
		logger:       logger,
		createUUID:   uuid.New,
	}
}

// Execute creates a new task and records its creation event.
func (ct CreateTaskImpl) Execute(ctx context.Context, params CreateTaskParams) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := ct.timeProvider.Now()
	task := domain.Task{
		ID:        ct.createUUID(),
		Title:     params.Title,
		Priority:  params.Priority,
		Status:    params.Status,
		OwnerID:   params.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriority_MEDIUM
	}
	if task.Status == "" {
		task.Status = domain.TaskStatus_PENDING
	}

	if err := task.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	if result, err := ct.embedText.Execute(spanCtx, task.Title); err != nil {
		ct.logger.Printf("skipping embedding for task %s: %v", task.ID, err)
	} else {
		task.Embedding = result.Vector
	}

	if err := ct.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		err := uow.Task().CreateTask(spanCtx, task)
		if err != nil {
			return err
		}

		return uow.Outbox().CreateTaskEvent(spanCtx, domain.TaskEvent{
			Type:      domain.EventType_TASK_CREATED,
			TaskID:    task.ID,
			OwnerID:   task.OwnerID,
			CreatedAt: now,
		})
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	return task, nil
}

// InitCreateTask initializes the CreateTask use case and registers it in the dependency container.
type InitCreateTask struct {
	Uow         domain.UnitOfWork          `resolve:""`
	EmbedText   EmbedText                  `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
	Logger      *log.Logger                `resolve:""`
}

// Initialize initializes the CreateTaskImpl use case and registers it in the dependency container.
func (ict InitCreateTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateTask](NewCreateTaskImpl(ict.Uow, ict.EmbedText, ict.TimeService, ict.Logger))
	return ctx, nil
}
