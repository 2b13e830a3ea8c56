package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/common"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListTasksImpl_Execute(t *testing.T) {
	ownerID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	tasks := []domain.Task{
		{ID: uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"), Title: "Buy groceries"},
	}

	tests := map[string]struct {
		ownerID        uuid.UUID
		status         *domain.TaskStatus
		listErr        error
		expectedTasks  []domain.Task
		expectedStatus *domain.TaskStatus
		expectedErr    error
	}{
		"success": {
			ownerID:       ownerID,
			expectedTasks: tasks,
		},
		"success-with-status-filter": {
			ownerID:        ownerID,
			status:         common.Ptr(domain.TaskStatus_DONE),
			expectedTasks:  tasks,
			expectedStatus: common.Ptr(domain.TaskStatus_DONE),
		},
		"missing-owner": {
			expectedErr: domain.NewValidationErr("owner_id cannot be empty"),
		},
		"database-error": {
			ownerID:     ownerID,
			listErr:     errors.New("database error"),
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var gotParams domain.ListTasksParams

			uow := &stubUnitOfWork{
				task: &stubTaskRepository{
					listTasks: func(ctx context.Context, gotOwner uuid.UUID, opts ...domain.ListTaskOption) ([]domain.Task, error) {
						assert.Equal(t, tt.ownerID, gotOwner)
						for _, opt := range opts {
							opt(&gotParams)
						}
						return tasks, tt.listErr
					},
				},
			}

			lt := NewListTasksImpl(uow)

			got, gotErr := lt.Execute(context.Background(), tt.ownerID, tt.status)

			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedTasks, got)
			assert.Equal(t, tt.expectedStatus, gotParams.Status)
		})
	}
}

func TestInitListTasks_Initialize(t *testing.T) {
	ilt := InitListTasks{}

	ctx, err := ilt.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[ListTasks]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
