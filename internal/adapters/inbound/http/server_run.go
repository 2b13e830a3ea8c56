package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/usecases"
	"github.com/rs/cors"
)

// OwnerIDHeader carries the authenticated user's identifier. Authentication
// itself happens upstream; the server only trusts this header.
const OwnerIDHeader = "X-Owner-ID"

// TaskAppServer is the REST API HTTP server for the task application.
type TaskAppServer struct {
	Port                   int                      `config:"HTTP_PORT" default:"8080"`
	Logger                 *log.Logger              `resolve:""`
	ListTasksUseCase       usecases.ListTasks       `resolve:""`
	GetTaskUseCase         usecases.GetTask         `resolve:""`
	CreateTaskUseCase      usecases.CreateTask      `resolve:""`
	UpdateTaskUseCase      usecases.UpdateTask      `resolve:""`
	DeleteTaskUseCase      usecases.DeleteTask      `resolve:""`
	SearchTasksUseCase     usecases.SearchTasks     `resolve:""`
	SuggestSubtasksUseCase usecases.SuggestSubtasks `resolve:""`
	ListSubtasksUseCase    usecases.ListSubtasks    `resolve:""`
	CreateSubtaskUseCase   usecases.CreateSubtask   `resolve:""`
	UpdateSubtaskUseCase   usecases.UpdateSubtask   `resolve:""`
	DeleteSubtaskUseCase   usecases.DeleteSubtask   `resolve:""`
}

// routes builds the request mux for the TaskAppServer.
func (api TaskAppServer) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", api.Healthz)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	mux.HandleFunc("GET /api/tasks", api.ListTasks)
	mux.HandleFunc("POST /api/tasks", api.CreateTask)
	mux.HandleFunc("GET /api/tasks/{taskId}", api.GetTask)
	mux.HandleFunc("PATCH /api/tasks/{taskId}", api.UpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{taskId}", api.DeleteTask)
	mux.HandleFunc("POST /api/tasks/search", api.SearchTasks)
	mux.HandleFunc("POST /api/tasks/{taskId}/subtasks/suggest", api.SuggestSubtasks)

	mux.HandleFunc("GET /api/tasks/{taskId}/subtasks", api.ListSubtasks)
	mux.HandleFunc("POST /api/tasks/{taskId}/subtasks", api.CreateSubtask)
	mux.HandleFunc("PATCH /api/subtasks/{subtaskId}", api.UpdateSubtask)
	mux.HandleFunc("DELETE /api/subtasks/{subtaskId}", api.DeleteSubtask)

	return mux
}

// Run starts the HTTP server for the TaskAppServer.
func (api TaskAppServer) Run(ctx context.Context) error {

	var h http.Handler = telemetry.Middleware("taskapp-api")(api.routes())

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("TaskAppServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("TaskAppServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("TaskAppServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// Healthz reports server liveness.
func (api TaskAppServer) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// IsReady checks if the TaskAppServer is ready by performing a health check.
func (api TaskAppServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
