package usecases

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/common"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/google/uuid"
)

// SearchTasks defines the interface for the SearchTasks use case.
type SearchTasks interface {
	Execute(ctx context.Context, ownerID uuid.UUID, query string) ([]domain.SimilarityResult, error)
}

// SearchTasksImpl is the implementation of the SearchTasks use case. Ranking
// runs server-side on the stored vectors by default; if that store operation
// errors, the search degrades to scoring candidates in process.
type SearchTasksImpl struct {
	uow       domain.UnitOfWork
	embedText EmbedText
	logger    *log.Logger
}

// NewSearchTasksImpl creates a new instance of SearchTasksImpl.
func NewSearchTasksImpl(uow domain.UnitOfWork, embedText EmbedText, logger *log.Logger) SearchTasksImpl {
	return SearchTasksImpl{
		uow:       uow,
		embedText: embedText,
		logger:    logger,
	}
}

// Execute ranks the owner's tasks against the natural-language query and
// returns at most domain.MaxSearchResults matches scoring above
// domain.SimilarityThreshold, best first. No match is an empty result, not
// an error.
func (st SearchTasksImpl) Execute(ctx context.Context, ownerID uuid.UUID, query string) ([]domain.SimilarityResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(query) == "" {
		err := domain.NewValidationErr("query cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if ownerID == uuid.Nil {
		err := domain.NewValidationErr("owner_id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	queryResult, err := st.embedText.Execute(spanCtx, query)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	results, err := st.uow.Task().SearchByEmbedding(
		spanCtx, ownerID, queryResult.Vector, domain.SimilarityThreshold, domain.MaxSearchResults,
	)
	if err == nil {
		telemetry.RecordErrorAndStatus(span, nil)
		return results, nil
	}
	st.logger.Printf("server-side similarity ranking failed, scoring in process: %v", err)

	results, err = st.searchInProcess(spanCtx, ownerID, queryResult.Vector)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return results, nil
}

// searchInProcess scores every candidate task in application code. Candidates
// without a stored embedding get one computed on the fly from their title. A
// candidate whose vector does not match the query dimension is skipped, never
// fatal to the whole search.
func (st SearchTasksImpl) searchInProcess(ctx context.Context, ownerID uuid.UUID, queryVector []float64) ([]domain.SimilarityResult, error) {
	tasks, err := st.uow.Task().ListTasks(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SimilarityResult, 0, len(tasks))
	for _, task := range tasks {
		vector := task.Embedding
		if !task.HasEmbedding() {
			embedded, err := st.embedText.Execute(ctx, task.Title)
			if err != nil {
				st.logger.Printf("skipping task %s in search: %v", task.ID, err)
				continue
			}
			vector = embedded.Vector
		}

		similarity, err := common.CosineSimilarity(queryVector, vector)
		if err != nil {
			st.logger.Printf("skipping task %s in search: %v", task.ID, err)
			continue
		}

		if similarity > domain.SimilarityThreshold {
			results = append(results, domain.SimilarityResult{
				TaskID:     task.ID,
				Title:      task.Title,
				Priority:   task.Priority,
				Status:     task.Status,
				CreatedAt:  task.CreatedAt,
				Similarity: similarity,
			})
		}
	}

	// Stable sort keeps ties in fetch order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > domain.MaxSearchResults {
		results = results[:domain.MaxSearchResults]
	}

	return results, nil
}

// InitSearchTasks initializes the SearchTasks use case and registers it in the dependency container.
type InitSearchTasks struct {
	Uow       domain.UnitOfWork `resolve:""`
	EmbedText EmbedText         `resolve:""`
	Logger    *log.Logger       `resolve:""`
}

// Initialize initializes the SearchTasksImpl use case.
func (ist InitSearchTasks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SearchTasks](NewSearchTasksImpl(ist.Uow, ist.EmbedText, ist.Logger))
	return ctx, nil
}
