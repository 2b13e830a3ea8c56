package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/google/uuid"
)

// GetTask defines the interface for the GetTask use case.
type GetTask interface {
	Execute(ctx context.Context, ownerID, id uuid.UUID) (domain.Task, error)
}

// GetTaskImpl is the implementation of the GetTask use case.
type GetTaskImpl struct {
	uow domain.UnitOfWork
}

// NewGetTaskImpl creates a new instance of GetTaskImpl.
func NewGetTaskImpl(uow domain.UnitOfWork) GetTaskImpl {
	return GetTaskImpl{uow: uow}
}

// Execute retrieves the owner's task identified by id. A task owned by
// someone else is reported as not found.
func (gt GetTaskImpl) Execute(ctx context.Context, ownerID, id uuid.UUID) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	task, found, err := gt.uow.Task().GetTask(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}
	if !found || task.OwnerID != ownerID {
		err := domain.NewNotFoundErr("task not found")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Task{}, err
	}

	return task, nil
}

// InitGetTask initializes the GetTask use case and registers it in the dependency container.
type InitGetTask struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize initializes the GetTaskImpl use case.
func (igt InitGetTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetTask](NewGetTaskImpl(igt.Uow))
	return ctx, nil
}
