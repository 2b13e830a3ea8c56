package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/google/uuid"
)

// ListTasks defines the interface for the ListTasks use case.
type ListTasks interface {
	Execute(ctx context.Context, ownerID uuid.UUID, status *domain.TaskStatus) ([]domain.Task, error)
}

// ListTasksImpl is the implementation of the ListTasks use case.
type ListTasksImpl struct {
	uow domain.UnitOfWork
}

// NewListTasksImpl creates a new instance of ListTasksImpl.
func NewListTasksImpl(uow domain.UnitOfWork) ListTasksImpl {
	return ListTasksImpl{uow: uow}
}

// Execute lists the tasks owned by ownerID, optionally filtered by status.
func (lt ListTasksImpl) Execute(ctx context.Context, ownerID uuid.UUID, status *domain.TaskStatus) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if ownerID == uuid.Nil {
		err := domain.NewValidationErr("owner_id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	var opts []domain.ListTaskOption
	if status != nil {
		opts = append(opts, domain.WithStatus(*status))
	}

	tasks, err := lt.uow.Task().ListTasks(spanCtx, ownerID, opts...)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return tasks, nil
}

// InitListTasks initializes the ListTasks use case and registers it in the dependency container.
type InitListTasks struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize initializes the ListTasksImpl use case.
func (ilt InitListTasks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTasks](NewListTasksImpl(ilt.Uow))
	return ctx, nil
}
