package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/usecases"
	"github.com/google/uuid"
)

// ownerID extracts the owner identifier from the request header.
func ownerID(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get(OwnerIDHeader)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("missing %s header", OwnerIDHeader)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s header: %w", OwnerIDHeader, err)
	}
	return id, nil
}

// pathUUID extracts a UUID path parameter from the request.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}

func (api TaskAppServer) ListTasks(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	var status *domain.TaskStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.TaskStatus(raw)
		status = &s
	}

	tasks, err := api.ListTasksUseCase.Execute(r.Context(), owner, status)
	if err != nil {
		api.Logger.Printf("Error listing tasks: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := ListTasksResp{Items: []Task{}}
	for _, t := range tasks {
		resp.Items = append(resp.Items, toTask(t))
	}

	respondJSON(w, http.StatusOK, resp)
}

func (api TaskAppServer) GetTask(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	id, err := pathUUID(r, "taskId")
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	task, err := api.GetTaskUseCase.Execute(r.Context(), owner, id)
	if err != nil {
		api.Logger.Printf("Error getting task: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTask(task))
}

func (api TaskAppServer) CreateTask(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	var req CreateTaskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	params := usecases.CreateTaskParams{
		Title:   req.Title,
		OwnerID: owner,
	}
	if req.Priority != nil {
		params.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.Status != nil {
		params.Status = domain.TaskStatus(*req.Status)
	}

	task, err := api.CreateTaskUseCase.Execute(r.Context(), params)
	if err != nil {
		api.Logger.Printf("Error creating task: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toTask(task))
}

func (api TaskAppServer) UpdateTask(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	id, err := pathUUID(r, "taskId")
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	var req UpdateTaskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	task, err := api.UpdateTaskUseCase.Execute(
		r.Context(),
		owner,
		id,
		req.Title,
		(*domain.TaskPriority)(req.Priority),
		(*domain.TaskStatus)(req.Status),
	)
	if err != nil {
		api.Logger.Printf("Error updating task: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTask(task))
}

func (api TaskAppServer) DeleteTask(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	id, err := pathUUID(r, "taskId")
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	if err := api.DeleteTaskUseCase.Execute(r.Context(), owner, id); err != nil {
		api.Logger.Printf("Error deleting task: %v", err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api TaskAppServer) SearchTasks(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	matches, err := api.SearchTasksUseCase.Execute(r.Context(), owner, req.Query)
	if err != nil {
		api.Logger.Printf("Error searching tasks: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := SearchTasksResp{Matches: []SearchMatch{}}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, toSearchMatch(m))
	}

	respondJSON(w, http.StatusOK, resp)
}

func (api TaskAppServer) SuggestSubtasks(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	id, err := pathUUID(r, "taskId")
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	task, err := api.GetTaskUseCase.Execute(r.Context(), owner, id)
	if err != nil {
		api.Logger.Printf("Error getting task for suggestions: %v", err)
		respondError(w, toError(err))
		return
	}

	suggestions, err := api.SuggestSubtasksUseCase.Execute(r.Context(), task.Title)
	if err != nil {
		api.Logger.Printf("Error suggesting subtasks: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, SuggestSubtasksResp{Suggestions: suggestions})
}
