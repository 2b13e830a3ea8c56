package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateTaskImpl_Execute(t *testing.T) {
	fixedUUID := func() uuid.UUID {
		return uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	}
	ownerID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	vector := []float64{0.1, 0.2, 0.3}

	tests := map[string]struct {
		params        CreateTaskParams
		embed         func(ctx context.Context, text string) (domain.EmbedResult, error)
		createTaskErr error
		outboxErr     error
		expectedTask  domain.Task
		expectedErr   error
	}{
		"success-with-defaults": {
			params: CreateTaskParams{Title: "Buy groceries", OwnerID: ownerID},
			embed: func(ctx context.Context, text string) (domain.EmbedResult, error) {
				return domain.EmbedResult{Vector: vector}, nil
			},
			expectedTask: domain.Task{
				ID:        fixedUUID(),
				Title:     "Buy groceries",
				Priority:  domain.TaskPriority_MEDIUM,
				Status:    domain.TaskStatus_PENDING,
				OwnerID:   ownerID,
				Embedding: vector,
				CreatedAt: fixedTime,
				UpdatedAt: fixedTime,
			},
		},
		"success-with-explicit-fields": {
			params: CreateTaskParams{
				Title:    "Buy groceries",
				Priority: domain.TaskPriority_HIGH,
				Status:   domain.TaskStatus_IN_PROGRESS,
				OwnerID:  ownerID,
			},
			embed: func(ctx context.Context, text string) (domain.EmbedResult, error) {
				return domain.EmbedResult{Vector: vector}, nil
			},
			expectedTask: domain.Task{
				ID:        fixedUUID(),
				Title:     "Buy groceries",
				Priority:  domain.TaskPriority_HIGH,
				Status:    domain.TaskStatus_IN_PROGRESS,
				OwnerID:   ownerID,
				Embedding: vector,
				CreatedAt: fixedTime,
				UpdatedAt: fixedTime,
			},
		},
		"embedding-failure-still-creates-the-task": {
			params: CreateTaskParams{Title: "Buy groceries", OwnerID: ownerID},
			embed: func(ctx context.Context, text string) (domain.EmbedResult, error) {
				return domain.EmbedResult{}, domain.NewValidationErr("text cannot be empty")
			},
			expectedTask: domain.Task{
				ID:        fixedUUID(),
				Title:     "Buy groceries",
				Priority:  domain.TaskPriority_MEDIUM,
				Status:    domain.TaskStatus_PENDING,
				OwnerID:   ownerID,
				CreatedAt: fixedTime,
				UpdatedAt: fixedTime,
			},
		},
		"validation-error-short-title": {
			params:      CreateTaskParams{Title: "Hi", OwnerID: ownerID},
			expectedErr: domain.NewValidationErr("title must be between 3 and 200 characters"),
		},
		"validation-error-missing-owner": {
			params:      CreateTaskParams{Title: "Buy groceries"},
			expectedErr: domain.NewValidationErr("owner_id cannot be empty"),
		},
		"repository-error": {
			params: CreateTaskParams{Title: "Buy groceries", OwnerID: ownerID},
			embed: func(ctx context.Context, text string) (domain.EmbedResult, error) {
				return domain.EmbedResult{Vector: vector}, nil
			},
			createTaskErr: errors.New("database error"),
			expectedErr:   errors.New("database error"),
		},
		"outbox-error": {
			params: CreateTaskParams{Title: "Buy groceries", OwnerID: ownerID},
			embed: func(ctx context.Context, text string) (domain.EmbedResult, error) {
				return domain.EmbedResult{Vector: vector}, nil
			},
			outboxErr:   errors.New("outbox error"),
			expectedErr: errors.New("outbox error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var createdTask *domain.Task
			var recordedEvent *domain.TaskEvent

			uow := &stubUnitOfWork{
				task: &stubTaskRepository{
					createTask: func(ctx context.Context, task domain.Task) error {
						if tt.createTaskErr != nil {
							return tt.createTaskErr
						}
						createdTask = &task
						return nil
					},
				},
				outbox: &stubOutboxRepository{
					createTaskEvent: func(ctx context.Context, event domain.TaskEvent) error {
						if tt.outboxErr != nil {
							return tt.outboxErr
						}
						recordedEvent = &event
						return nil
					},
				},
			}

			ct := NewCreateTaskImpl(uow, &stubEmbedText{execute: tt.embed}, stubTimeProvider{now: fixedTime}, discardLogger())
			ct.createUUID = fixedUUID

			got, gotErr := ct.Execute(context.Background(), tt.params)

			assert.Equal(t, tt.expectedErr, gotErr)
			if tt.expectedErr != nil {
				assert.Equal(t, domain.Task{}, got)
				return
			}
			assert.Equal(t, tt.expectedTask, got)
			assert.Equal(t, tt.expectedTask, *createdTask)
			assert.Equal(t, domain.TaskEvent{
				Type:      domain.EventType_TASK_CREATED,
				TaskID:    fixedUUID(),
				OwnerID:   ownerID,
				CreatedAt: fixedTime,
			}, *recordedEvent)
		})
	}
}

func TestInitCreateTask_Initialize(t *testing.T) {
	ict := InitCreateTask{}

	ctx, err := ict.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[CreateTask]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
