package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/google/uuid"
)

// DeleteTask defines the interface for the DeleteTask use case.
type DeleteTask interface {
	Execute(ctx context.Context, ownerID, id uuid.UUID) error
}

// DeleteTaskImpl is the implementation of the DeleteTask use case.
type DeleteTaskImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewDeleteTaskImpl creates a new instance of DeleteTaskImpl.
func NewDeleteTaskImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) DeleteTaskImpl {
	return DeleteTaskImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute deletes the owner's task identified by id and records its deletion
// event. A task owned by someone else is reported as not found. Subtasks are
// removed by the database cascade.
func (dt DeleteTaskImpl) Execute(ctx context.Context, ownerID, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	task, found, err := dt.uow.Task().GetTask(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !found || task.OwnerID != ownerID {
		err := domain.NewNotFoundErr("task not found")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	if err := dt.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Task().DeleteTask(spanCtx, id); err != nil {
			return err
		}

		return uow.Outbox().CreateTaskEvent(spanCtx, domain.TaskEvent{
			Type:      domain.EventType_TASK_DELETED,
			TaskID:    task.ID,
			OwnerID:   task.OwnerID,
			CreatedAt: dt.timeProvider.Now(),
		})
	}); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// InitDeleteTask initializes the DeleteTask use case and registers it in the dependency container.
type InitDeleteTask struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the DeleteTaskImpl use case.
func (idt InitDeleteTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteTask](NewDeleteTaskImpl(idt.Uow, idt.TimeService))
	return ctx, nil
}
