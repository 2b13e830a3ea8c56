package http

import (
	"time"

	"github.com/google/uuid"
)

// ErrorCode identifies the category of an API error.
type ErrorCode string

const (
	ErrorCode_BadRequest    ErrorCode = "BAD_REQUEST"
	ErrorCode_NotFound      ErrorCode = "NOT_FOUND"
	ErrorCode_InternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorResp is the error envelope returned by every failing endpoint.
type ErrorResp struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// Task is the API representation of a task.
type Task struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	HasEmbedding bool      `json:"has_embedding"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Subtask is the API representation of a subtask.
type Subtask struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	ParentTaskID uuid.UUID `json:"parent_task_id"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SearchMatch is one ranked result of a smart search.
type SearchMatch struct {
	TaskID     uuid.UUID `json:"task_id"`
	Title      string    `json:"title"`
	Priority   string    `json:"priority"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	Similarity float64   `json:"similarity"`
}

// CreateTaskReq is the request body for creating a task.
type CreateTaskReq struct {
	Title    string  `json:"title"`
	Priority *string `json:"priority,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// UpdateTaskReq is the request body for updating a task. Absent fields are
// left untouched.
type UpdateTaskReq struct {
	Title    *string `json:"title,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// CreateSubtaskReq is the request body for creating a subtask.
type CreateSubtaskReq struct {
	Title    string  `json:"title"`
	Priority *string `json:"priority,omitempty"`
}

// UpdateSubtaskReq is the request body for updating a subtask.
type UpdateSubtaskReq struct {
	Title    *string `json:"title,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// ListTasksResp is the response body for listing tasks.
type ListTasksResp struct {
	Items []Task `json:"items"`
}

// ListSubtasksResp is the response body for listing subtasks.
type ListSubtasksResp struct {
	Items []Subtask `json:"items"`
}

// SearchTasksResp is the response body for a smart search.
type SearchTasksResp struct {
	Matches []SearchMatch `json:"matches"`
}

// SuggestSubtasksResp is the response body for subtask suggestions.
type SuggestSubtasksResp struct {
	Suggestions []string `json:"suggestions"`
}
