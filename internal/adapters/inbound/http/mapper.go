package http

import (
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.Error.Code = ErrorCode_BadRequest
		errResp.Error.Message = e.Error()
	case *domain.NotFoundErr:
		errResp.Error.Code = ErrorCode_NotFound
		errResp.Error.Message = e.Error()
	default:
		errResp.Error.Code = ErrorCode_InternalError
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toTask(t domain.Task) Task {
	return Task{
		ID:           t.ID,
		Title:        t.Title,
		Priority:     string(t.Priority),
		Status:       string(t.Status),
		HasEmbedding: t.HasEmbedding(),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toSubtask(s domain.Subtask) Subtask {
	return Subtask{
		ID:           s.ID,
		Title:        s.Title,
		ParentTaskID: s.ParentTaskID,
		Priority:     string(s.Priority),
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toSearchMatch(r domain.SimilarityResult) SearchMatch {
	return SearchMatch{
		TaskID:     r.TaskID,
		Title:      r.Title,
		Priority:   string(r.Priority),
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
		Similarity: r.Similarity,
	}
}
