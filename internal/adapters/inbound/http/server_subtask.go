package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/usecases"
)

func (api TaskAppServer) ListSubtasks(w http.ResponseWriter, r *http.Request) {
	parentID, err := pathUUID(r, "taskId")
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	subtasks, err := api.ListSubtasksUseCase.Execute(r.Context(), parentID)
	if err != nil {
		api.Logger.Printf("Error listing subtasks: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ListSubtasksResp{Items: []Subtask{}}
	for _, s := range subtasks {
		resp.Items = append(resp.Items, toSubtask(s))
	}

	respondJSON(w, http.StatusOK, resp)
}

func (api TaskAppServer) CreateSubtask(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	parentID, err := pathUUID(r, "taskId")
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	var req CreateSubtaskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	params := usecases.CreateSubtaskParams{
		Title:        req.Title,
		ParentTaskID: parentID,
		OwnerID:      owner,
	}
	if req.Priority != nil {
		params.Priority = domain.TaskPriority(*req.Priority)
	}

	subtask, err := api.CreateSubtaskUseCase.Execute(r.Context(), params)
	if err != nil {
		api.Logger.Printf("Error creating subtask: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toSubtask(subtask))
}

func (api TaskAppServer) UpdateSubtask(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	id, err := pathUUID(r, "subtaskId")
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	var req UpdateSubtaskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	subtask, err := api.UpdateSubtaskUseCase.Execute(
		r.Context(),
		owner,
		id,
		req.Title,
		(*domain.TaskPriority)(req.Priority),
		(*domain.TaskStatus)(req.Status),
	)
	if err != nil {
		api.Logger.Printf("Error updating subtask: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toSubtask(subtask))
}

func (api TaskAppServer) DeleteSubtask(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	id, err := pathUUID(r, "subtaskId")
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	if err := api.DeleteSubtaskUseCase.Execute(r.Context(), owner, id); err != nil {
		api.Logger.Printf("Error deleting subtask: %v", err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
