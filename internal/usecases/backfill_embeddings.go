package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
)

// BackfillEmbeddings defines the interface for the BackfillEmbeddings use
// case. It fills in vectors for tasks whose creation-time embedding was
// skipped or dropped.
type BackfillEmbeddings interface {
	// Execute embeds one batch of tasks and reports how many were processed.
	Execute(ctx context.Context) (int, error)
}

// BackfillEmbeddingsImpl is the implementation of the BackfillEmbeddings use case.
type BackfillEmbeddingsImpl struct {
	uow          domain.UnitOfWork
	embedText    EmbedText
	timeProvider domain.CurrentTimeProvider
	batchSize    int
	logger       *log.Logger
}

// NewBackfillEmbeddingsImpl creates a new instance of BackfillEmbeddingsImpl.
func NewBackfillEmbeddingsImpl(
	uow domain.UnitOfWork,
	embedText EmbedText,
	timeProvider domain.CurrentTimeProvider,
	batchSize int,
	logger *log.Logger,
) BackfillEmbeddingsImpl {
	return BackfillEmbeddingsImpl{
		uow:          uow,
		embedText:    embedText,
		timeProvider: timeProvider,
		batchSize:    batchSize,
		logger:       logger,
	}
}

// Execute embeds one batch of embedding-less tasks. A failure on one task is
// logged and skipped so the rest of the batch still makes progress.
func (be BackfillEmbeddingsImpl) Execute(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	tasks, err := be.uow.Task().ListTasksMissingEmbedding(spanCtx, be.batchSize)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	processed := 0
	for _, task := range tasks {
		result, err := be.embedText.Execute(spanCtx, task.Title)
		if err != nil {
			be.logger.Printf("backfill skipping task %s: %v", task.ID, err)
			continue
		}

		task.Embedding = result.Vector
		task.UpdatedAt = be.timeProvider.Now()

		if err := be.uow.Task().UpdateTask(spanCtx, task); err != nil {
			be.logger.Printf("backfill skipping task %s: %v", task.ID, err)
			continue
		}
		processed++
	}

	telemetry.RecordErrorAndStatus(span, nil)
	return processed, nil
}

// InitBackfillEmbeddings initializes the BackfillEmbeddings use case and
// registers it in the dependency container.
type InitBackfillEmbeddings struct {
	Uow         domain.UnitOfWork          `resolve:""`
	EmbedText   EmbedText                  `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
	Logger      *log.Logger                `resolve:""`
	BatchSize   int                        `config:"EMBEDDING_BACKFILL_BATCH_SIZE" default:"20"`
}

// Initialize registers the BackfillEmbeddingsImpl use case.
func (ibe InitBackfillEmbeddings) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[BackfillEmbeddings](NewBackfillEmbeddingsImpl(
		ibe.Uow, ibe.EmbedText, ibe.TimeService, ibe.BatchSize, ibe.Logger,
	))
	return ctx, nil
}
