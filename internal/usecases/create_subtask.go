package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/google/uuid"
)

// CreateSubtaskParams carries the caller-supplied fields for a new subtask.
type CreateSubtaskParams struct {
	Title        string
	ParentTaskID uuid.UUID
	Priority     domain.TaskPriority
	OwnerID      uuid.UUID
}

// CreateSubtask defines the interface for the CreateSubtask use case.
type CreateSubtask interface {
	Execute(ctx context.Context, params CreateSubtaskParams) (domain.Subtask, error)
}

// CreateSubtaskImpl is the implementation of the CreateSubtask use case. The
// parent task must exist and belong to the same owner.
type CreateSubtaskImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewCreateSubtaskImpl creates a new instance of CreateSubtaskImpl.
func NewCreateSubtaskImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) CreateSubtaskImpl {
	return CreateSubtaskImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute creates a new subtask under an existing parent task and records
// its creation event.
func (cs CreateSubtaskImpl) Execute(ctx context.Context, params CreateSubtaskParams) (domain.Subtask, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := cs.timeProvider.Now()
	subtask := domain.Subtask{
		ID:           cs.createUUID(),
		Title:        params.Title,
		ParentTaskID: params.ParentTaskID,
		Priority:     params.Priority,
		Status:       domain.TaskStatus_PENDING,
		OwnerID:      params.OwnerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if subtask.Priority == "" {
		subtask.Priority = domain.TaskPriority_MEDIUM
	}

	if err := subtask.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Subtask{}, err
	}

	parent, found, err := cs.uow.Task().GetTask(spanCtx, subtask.ParentTaskID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Subtask{}, err
	}
	if !found || parent.OwnerID != params.OwnerID {
		err := domain.NewNotFoundErr("parent task not found")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Subtask{}, err
	}

	if err := cs.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Subtask().CreateSubtask(spanCtx, subtask); err != nil {
			return err
		}

		return uow.Outbox().CreateSubtaskEvent(spanCtx, domain.SubtaskEvent{
			Type:         domain.EventType_SUBTASK_CREATED,
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

// InitCreateSubtask initializes the CreateSubtask use case and registers it in the dependency container.
type InitCreateSubtask struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the CreateSubtaskImpl use case.
func (ics InitCreateSubtask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateSubtask](NewCreateSubtaskImpl(ics.Uow, ics.TimeService))
	return ctx, nil
}
