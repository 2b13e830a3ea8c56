package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/google/uuid"
)

// UpdateSubtask defines the interface for the UpdateSubtask use case.
type UpdateSubtask interface {
	Execute(ctx context.Context, ownerID, id uuid.UUID, title *string, priority *domain.TaskPriority, status *domain.TaskStatus) (domain.Subtask, error)
}

// UpdateSubtaskImpl is the implementation of the UpdateSubtask use case.
// Subtasks carry no embedding, so a title change needs no vector work. A
// subtask owned by someone else is reported as not found.
type UpdateSubtaskImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateSubtaskImpl creates a new instance of UpdateSubtaskImpl.
func NewUpdateSubtaskImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) UpdateSubtaskImpl {
	return UpdateSubtaskImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute updates the owner's subtask identified by id with the provided
// fields and records its update event.
func (us UpdateSubtaskImpl) Execute(ctx context.Context, ownerID, id uuid.UUID, title *string, priority *domain.TaskPriority, status *domain.TaskStatus) (domain.Subtask, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := us.timeProvider.Now()

	subtask, found, err := us.uow.Subtask().GetSubtask(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Subtask{}, err
	}
	if !found || subtask.OwnerID != ownerID {
		err := domain.NewNotFoundErr("subtask not found")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Subtask{}, err
	}

	if title != nil {
		subtask.Title = *title
	}
	if priority != nil {
		subtask.Priority = *priority
	}
	if status != nil {
		subtask.Status = *status
	}
	subtask.UpdatedAt = now

	if err := subtask.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Subtask{}, err
	}

	if err := us.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Subtask().UpdateSubtask(spanCtx, subtask); err != nil {
			return err
		}

		return uow.Outbox().CreateSubtaskEvent(spanCtx, domain.SubtaskEvent{
			Type:         domain.EventType_SUBTASK_UPDATED,
			SubtaskID:    subtask.ID,
			ParentTaskID: subtask.ParentTaskID,
			OwnerID:      subtask.OwnerID,
			CreatedAt:    now,
		})
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Subtask{}, err
	}

	return subtask, nil
}

// InitUpdateSubtask initializes the UpdateSubtask use case and registers it in the dependency container.
type InitUpdateSubtask struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the UpdateSubtaskImpl use case.
func (ius InitUpdateSubtask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateSubtask](NewUpdateSubtaskImpl(ius.Uow, ius.TimeService))
	return ctx, nil
}
