package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSubtask_Validate(t *testing.T) {
	fixedUUID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	parentID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	ownerID := uuid.MustParse("323e4567-e89b-12d3-a456-426614174002")
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	valid := Subtask{
		ID:           fixedUUID,
		Title:        "Book wedding venue",
		ParentTaskID: parentID,
		Priority:     TaskPriority_MEDIUM,
		Status:       TaskStatus_PENDING,
		OwnerID:      ownerID,
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
	}

	tests := map[string]struct {
		mutate      func(s *Subtask)
		expectedErr error
	}{
		"valid-subtask": {
			mutate:      func(s *Subtask) {},
			expectedErr: nil,
		},
		"empty-title": {
			mutate:      func(s *Subtask) { s.Title = "" },
			expectedErr: NewValidationErr("title cannot be empty"),
		},
		"title-too-short": {
			mutate:      func(s *Subtask) { s.Title = "Hi" },
			expectedErr: NewValidationErr("title must be between 3 and 200 characters"),
		},
		"missing-parent": {
			mutate:      func(s *Subtask) { s.ParentTaskID = uuid.Nil },
			expectedErr: NewValidationErr("parent_task_id cannot be empty"),
		},
		"missing-owner": {
			mutate:      func(s *Subtask) { s.OwnerID = uuid.Nil },
			expectedErr: NewValidationErr("owner_id cannot be empty"),
		},
		"invalid-priority": {
			mutate:      func(s *Subtask) { s.Priority = "CRITICAL" },
			expectedErr: NewValidationErr("priority must be LOW, MEDIUM or HIGH"),
		},
		"invalid-status": {
			mutate:      func(s *Subtask) { s.Status = "BLOCKED" },
			expectedErr: NewValidationErr("status must be PENDING, IN_PROGRESS or DONE"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			subtask := valid
			tt.mutate(&subtask)

			assert.Equal(t, tt.expectedErr, subtask.Validate())
		})
	}
}
