package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/google/uuid"
)

// ListSubtasks defines the interface for the ListSubtasks use case.
type ListSubtasks interface {
	Execute(ctx context.Context, parentTaskID uuid.UUID) ([]domain.Subtask, error)
}

// ListSubtasksImpl is the implementation of the ListSubtasks use case.
type ListSubtasksImpl struct {
	uow domain.UnitOfWork
}

// NewListSubtasksImpl creates a new instance of ListSubtasksImpl.
func NewListSubtasksImpl(uow domain.UnitOfWork) ListSubtasksImpl {
	return ListSubtasksImpl{uow: uow}
}

// Execute lists the subtasks of the given parent task.
func (ls ListSubtasksImpl) Execute(ctx context.Context, parentTaskID uuid.UUID) ([]domain.Subtask, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if parentTaskID == uuid.Nil {
		err := domain.NewValidationErr("parent_task_id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	subtasks, err := ls.uow.Subtask().ListSubtasks(spanCtx, parentTaskID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return subtasks, nil
}

// InitListSubtasks initializes the ListSubtasks use case and registers it in the dependency container.
type InitListSubtasks struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize initializes the ListSubtasksImpl use case.
func (ils InitListSubtasks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListSubtasks](NewListSubtasksImpl(ils.Uow))
	return ctx, nil
}
