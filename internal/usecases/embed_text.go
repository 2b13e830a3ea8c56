package usecases

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
)

// EmbedText is the use case interface for turning raw text into an embedding.
type EmbedText interface {
	Execute(ctx context.Context, text string) (domain.EmbedResult, error)
}

// EmbedTextImpl is the implementation of the EmbedText use case. It calls the
// embedding model and degrades to the deterministic fallback encoder on any
// model failure, so callers only ever see a ValidationErr for bad input.
type EmbedTextImpl struct {
	llmClient domain.LLMClient
	model     string
	timeout   time.Duration
	logger    *log.Logger
}

// NewEmbedTextImpl creates a new instance of EmbedTextImpl.
func NewEmbedTextImpl(c domain.LLMClient, model string, timeout time.Duration, logger *log.Logger) EmbedTextImpl {
	return EmbedTextImpl{
		llmClient: c,
		model:     model,
		timeout:   timeout,
		logger:    logger,
	}
}

// Execute creates an embedding for the given text.
func (et EmbedTextImpl) Execute(ctx context.Context, text string) (domain.EmbedResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(text) == "" {
		err := domain.NewValidationErr("text cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbedResult{}, err
	}

	embedCtx, cancel := context.WithTimeout(spanCtx, et.timeout)
	defer cancel()

	resp, err := et.llmClient.Embed(embedCtx, et.model, text)
	if err != nil {
		reason := "model_error"
		if embedCtx.Err() != nil {
			reason = "timeout"
		}
		return et.fallback(spanCtx, text, reason, err), nil
	}
	if len(resp.Embedding) != domain.EmbeddingDimension {
		return et.fallback(spanCtx, text, "bad_dimension", nil), nil
	}

	RecordLLMTokensEmbedding(spanCtx, resp.TotalTokens)
	telemetry.RecordErrorAndStatus(span, nil)

	return domain.EmbedResult{
		Vector:      resp.Embedding,
		TotalTokens: resp.TotalTokens,
	}, nil
}

func (et EmbedTextImpl) fallback(ctx context.Context, text, reason string, err error) domain.EmbedResult {
	et.logger.Printf("embedding model unavailable (%s), using fallback: %v", reason, err)
	RecordEmbeddingFallback(ctx, reason)
	return domain.EmbedResult{
		Vector:       domain.FallbackEmbedding(text),
		UsedFallback: true,
	}
}

// InitEmbedText initializes the EmbedText use case and registers it in the dependency container.
type InitEmbedText struct {
	LLMClient domain.LLMClient `resolve:""`
	Logger    *log.Logger      `resolve:""`
	Model     string           `config:"LLM_EMBEDDING_MODEL" default:"ai/mxbai-embed-large"`
	Timeout   time.Duration    `config:"EMBEDDING_TIMEOUT" default:"15s"`
}

// Initialize registers the EmbedTextImpl use case in the dependency container.
func (iet InitEmbedText) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[EmbedText](NewEmbedTextImpl(iet.LLMClient, iet.Model, iet.Timeout, iet.Logger))
	return ctx, nil
}
