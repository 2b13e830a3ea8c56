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

func TestBackfillEmbeddingsImpl_Execute(t *testing.T) {
	ownerID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	backfillTime := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	vector := []float64{0.1, 0.2, 0.3}

	task1 := domain.Task{
		ID:        uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Title:     "Buy groceries",
		Priority:  domain.TaskPriority_MEDIUM,
		Status:    domain.TaskStatus_PENDING,
		OwnerID:   ownerID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	task2 := domain.Task{
		ID:        uuid.MustParse("323e4567-e89b-12d3-a456-426614174002"),
		Title:     "Plan a wedding",
		Priority:  domain.TaskPriority_HIGH,
		Status:    domain.TaskStatus_PENDING,
		OwnerID:   ownerID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	tests := map[string]struct {
		tasks             []domain.Task
		listErr           error
		embedErrFor       string
		updateErrFor      uuid.UUID
		expectedProcessed int
		expectedUpdates   int
		expectedErr       error
	}{
		"embeds-the-whole-batch": {
			tasks:             []domain.Task{task1, task2},
			expectedProcessed: 2,
			expectedUpdates:   2,
		},
		"empty-batch": {
			tasks:             []domain.Task{},
			expectedProcessed: 0,
		},
		"embed-failure-skips-only-that-task": {
			tasks:             []domain.Task{task1, task2},
			embedErrFor:       task1.Title,
			expectedProcessed: 1,
			expectedUpdates:   1,
		},
		"update-failure-skips-only-that-task": {
			tasks:             []domain.Task{task1, task2},
			updateErrFor:      task1.ID,
			expectedProcessed: 1,
			expectedUpdates:   1,
		},
		"list-error": {
			listErr:     errors.New("database error"),
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var updated []domain.Task

			uow := &stubUnitOfWork{
				task: &stubTaskRepository{
					listTasksMissingEmbedding: func(ctx context.Context, limit int) ([]domain.Task, error) {
						assert.Equal(t, 20, limit)
						return tt.tasks, tt.listErr
					},
					updateTask: func(ctx context.Context, task domain.Task) error {
						if task.ID == tt.updateErrFor {
							return errors.New("database error")
						}
						updated = append(updated, task)
						return nil
					},
				},
			}
			embedText := &stubEmbedText{
				execute: func(ctx context.Context, text string) (domain.EmbedResult, error) {
					if text == tt.embedErrFor {
						return domain.EmbedResult{}, domain.NewValidationErr("text cannot be empty")
					}
					return domain.EmbedResult{Vector: vector}, nil
				},
			}

			be := NewBackfillEmbeddingsImpl(uow, embedText, stubTimeProvider{now: backfillTime}, 20, discardLogger())

			got, gotErr := be.Execute(context.Background())

			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedProcessed, got)
			assert.Len(t, updated, tt.expectedUpdates)
			for _, task := range updated {
				assert.Equal(t, vector, task.Embedding)
				assert.Equal(t, backfillTime, task.UpdatedAt)
			}
		})
	}
}

func TestInitBackfillEmbeddings_Initialize(t *testing.T) {
	ibe := InitBackfillEmbeddings{BatchSize: 20}

	ctx, err := ibe.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[BackfillEmbeddings]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
