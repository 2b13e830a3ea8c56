package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/google/uuid"
)

// UpdateTask defines the interface for the UpdateTask use case.
type UpdateTask interface {
	Execute(ctx context.Context, ownerID, id uuid.UUID, title *string, priority *domain.TaskPriority, status *domain.TaskStatus) (domain.Task, error)
}

// UpdateTaskImpl is the implementation of the UpdateTask use case. A changed
// title invalidates the stored embedding, so it is recomputed before the
// single persisting write. Status and priority changes leave the vector
// untouched.
type UpdateTaskImpl struct {
	uow          domain.UnitOfWork
	embedText    EmbedText
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewUpdateTaskImpl creates a new instance of UpdateTaskImpl.
func NewUpdateTaskImpl(
	uow domain.UnitOfWork,
	embedText EmbedText,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) UpdateTaskImpl {
	return UpdateTaskImpl{
		uow:          uow,
		embedText:    embedText,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute updates the owner's task identified by id with the provided fields.
// A task owned by someone else is reported as not found.
func (ut UpdateTaskImpl) Execute(ctx context.Context, ownerID, id uuid.UUID, title *string, priority *domain.TaskPriority, status *domain.TaskStatus) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := ut.timeProvider.Now()

	task, found, err := ut.uow.Task().GetTask(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}
	if !found || task.OwnerID != ownerID {
		err := domain.NewNotFoundErr("task not found")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Task{}, err
	}

	titleChanged := title != nil && *title != task.Title

	if title != nil {
		task.Title = *title
	}
	if priority != nil {
		task.Priority = *priority
	}
	if status != nil {
		task.Status = *status
	}
	task.UpdatedAt = now

	if err := task.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	// Model call happens outside the transaction.
	if titleChanged {
		if result, err := ut.embedText.Execute(spanCtx, task.Title); err != nil {
			ut.logger.Printf("dropping embedding for task %s: %v", task.ID, err)
			task.Embedding = nil
		} else {
			task.Embedding = result.Vector
		}
	}

	if err := ut.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Task().UpdateTask(spanCtx, task); err != nil {
			return err
		}

		return uow.Outbox().CreateTaskEvent(spanCtx, domain.TaskEvent{
			Type:      domain.EventType_TASK_UPDATED,
			TaskID:    task.ID,
			OwnerID:   task.OwnerID,
			CreatedAt: now,
		})
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	return task, nil
}

// InitUpdateTask initializes the UpdateTask use case and registers it in the dependency container.
type InitUpdateTask struct {
	Uow         domain.UnitOfWork          `resolve:""`
	EmbedText   EmbedText                  `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
	Logger      *log.Logger                `resolve:""`
}

// Initialize initializes the UpdateTaskImpl use case.
func (iut InitUpdateTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateTask](NewUpdateTaskImpl(iut.Uow, iut.EmbedText, iut.TimeService, iut.Logger))
	return ctx, nil
}
