package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/usecases"
)

// NewTaskApp creates and returns a new instance of the TaskApp application.
func NewTaskApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitTaskRepository{},
			&postgres.InitSubtaskRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&modelrunner.InitLLMClient{},

			&usecases.InitEmbedText{},
			&usecases.InitListTasks{},
			&usecases.InitGetTask{},
			&usecases.InitCreateTask{},
			&usecases.InitUpdateTask{},
			&usecases.InitDeleteTask{},
			&usecases.InitSearchTasks{},
			&usecases.InitSuggestSubtasks{},
			&usecases.InitListSubtasks{},
			&usecases.InitCreateSubtask{},
			&usecases.InitUpdateSubtask{},
			&usecases.InitDeleteSubtask{},
			&usecases.InitBackfillEmbeddings{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.TaskAppServer{},
			&workers.MessageRelay{},
			&workers.EmbeddingBackfiller{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
