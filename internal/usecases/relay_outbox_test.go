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

func TestRelayOutboxImpl_Execute(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	taskID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	newEvent := func(retryCount int) domain.OutboxEvent {
		return domain.OutboxEvent{
			ID:         eventID,
			EntityType: "Task",
			EntityID:   taskID,
			Topic:      domain.OutboxTopic_Task,
			EventType:  domain.EventType_TASK_CREATED,
			Payload:    []byte(`{"type":"TASK.CREATED"}`),
			Status:     domain.OutboxStatus_Pending,
			RetryCount: retryCount,
			MaxRetries: 5,
			CreatedAt:  fixedTime,
		}
	}

	tests := map[string]struct {
		events          []domain.OutboxEvent
		fetchErr        error
		publishErr      error
		expectedDeletes int
		expectedUpdate  *struct {
			status     domain.OutboxStatus
			retryCount int
		}
		expectedErr error
	}{
		"published-events-are-deleted": {
			events:          []domain.OutboxEvent{newEvent(0)},
			expectedDeletes: 1,
		},
		"publish-failure-increments-the-retry-count": {
			events:     []domain.OutboxEvent{newEvent(0)},
			publishErr: errors.New("broker unavailable"),
			expectedUpdate: &struct {
				status     domain.OutboxStatus
				retryCount int
			}{status: domain.OutboxStatus_Pending, retryCount: 1},
		},
		"publish-failure-at-the-retry-limit-marks-the-event-failed": {
			events:     []domain.OutboxEvent{newEvent(4)},
			publishErr: errors.New("broker unavailable"),
			expectedUpdate: &struct {
				status     domain.OutboxStatus
				retryCount int
			}{status: domain.OutboxStatus_Failed, retryCount: 5},
		},
		"no-pending-events": {
			events: []domain.OutboxEvent{},
		},
		"fetch-error": {
			fetchErr:    errors.New("database error"),
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			deletes := 0
			var updatedStatus *domain.OutboxStatus
			var updatedRetryCount int

			uow := &stubUnitOfWork{
				outbox: &stubOutboxRepository{
					fetchPendingEvents: func(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
						assert.Equal(t, 100, limit)
						return tt.events, tt.fetchErr
					},
					deleteEvent: func(ctx context.Context, id uuid.UUID) error {
						assert.Equal(t, eventID, id)
						deletes++
						return nil
					},
					updateEvent: func(ctx context.Context, id uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
						assert.Equal(t, eventID, id)
						assert.NotEmpty(t, lastError)
						updatedStatus = &status
						updatedRetryCount = retryCount
						return nil
					},
				},
			}
			publisher := &stubPublisher{
				publishEvent: func(ctx context.Context, event domain.OutboxEvent) error {
					return tt.publishErr
				},
			}

			r := NewRelayOutboxImpl(uow, publisher, discardLogger())

			gotErr := r.Execute(context.Background())

			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedDeletes, deletes)
			if tt.expectedUpdate != nil {
				assert.NotNil(t, updatedStatus)
				assert.Equal(t, tt.expectedUpdate.status, *updatedStatus)
				assert.Equal(t, tt.expectedUpdate.retryCount, updatedRetryCount)
			} else {
				assert.Nil(t, updatedStatus)
			}
		})
	}
}

func TestInitRelayOutbox_Initialize(t *testing.T) {
	iro := InitRelayOutbox{}

	ctx, err := iro.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[RelayOutbox]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
