package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/google/uuid"
)

// DeleteSubtask defines the interface for the DeleteSubtask use case.
type DeleteSubtask interface {
	Execute(ctx context.Context, ownerID, id uuid.UUID) error
}

// DeleteSubtaskImpl is the implementation of the DeleteSubtask use case.
type DeleteSubtaskImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewDeleteSubtaskImpl creates a new instance of DeleteSubtaskImpl.
func NewDeleteSubtaskImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) DeleteSubtaskImpl {
	return DeleteSubtaskImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute deletes the owner's subtask identified by id and records its
// deletion event. A subtask owned by someone else is reported as not found.
func (ds DeleteSubtaskImpl) Execute(ctx context.Context, ownerID, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	subtask, found, err := ds.uow.Subtask().GetSubtask(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !found || subtask.OwnerID != ownerID {
		err := domain.NewNotFoundErr("subtask not found")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	if err := ds.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Subtask().DeleteSubtask(spanCtx, id); err != nil {
			return err
		}

		return uow.Outbox().CreateSubtaskEvent(spanCtx, domain.SubtaskEvent{
			Type:         domain.EventType_SUBTASK_DELETED,
			SubtaskID:    subtask.ID,
			ParentTaskID: subtask.ParentTaskID,
			OwnerID:      subtask.OwnerID,
			CreatedAt:    ds.timeProvider.Now(),
		})
	}); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// InitDeleteSubtask initializes the DeleteSubtask use case and registers it in the dependency container.
type InitDeleteSubtask struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the DeleteSubtaskImpl use case.
func (ids InitDeleteSubtask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteSubtask](NewDeleteSubtaskImpl(ids.Uow, ids.TimeService))
	return ctx, nil
}
