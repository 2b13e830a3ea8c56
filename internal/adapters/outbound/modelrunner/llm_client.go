package modelrunner

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
)

// LLMClient adapts DRMAPIClient to domain.LLMClient interface
type LLMClient struct {
	client DRMAPIClient
}

// NewLLMClientAdapter creates a new adapter
func NewLLMClientAdapter(client DRMAPIClient) LLMClient {
	return LLMClient{client: client}
}

// Chat implements domain.LLMClient.Chat
func (a LLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}

	for i, msg := range req.Messages {
		adapterReq.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	resp, err := a.client.Chat(spanCtx, adapterReq)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LLMChatResponse{}, err
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	usage := usageFromResponse(resp, adapterReq.Messages)

	return domain.LLMChatResponse{
		Content: resp.Choices[0].Message.Content,
		Usage:   usage,
	}, nil
}

// Embed implements domain.LLMClient.Embed
func (a LLMClient) Embed(ctx context.Context, model, input string) (domain.EmbedResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.Embeddings(spanCtx, EmbeddingsRequest{
		Model: model,
		Input: strings.TrimSpace(input),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbedResponse{}, err
	}

	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		err := errors.New("no embedding in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbedResponse{}, err
	}

	return domain.EmbedResponse{
		Embedding:   resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// usageFromResponse extracts token usage, estimating from llama.cpp timings
// or message word counts when the server omits the usage block.
func usageFromResponse(resp *ChatResponse, messages []ChatMessage) domain.LLMUsage {
	if resp.Usage != nil {
		return domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	if resp.Timings != nil {
		return domain.LLMUsage{
			PromptTokens:     resp.Timings.PromptN,
			CompletionTokens: resp.Timings.PredictedN,
			TotalTokens:      resp.Timings.PromptN + resp.Timings.PredictedN,
		}
	}

	estimated := estimateTokenCount(messages)
	return domain.LLMUsage{
		PromptTokens: estimated,
		TotalTokens:  estimated,
	}
}

// estimateTokenCount estimates tokens from messages
func estimateTokenCount(messages []ChatMessage) int {
	totalWords := 0
	for _, msg := range messages {
		totalWords += 4 // message overhead
		totalWords += len(strings.Fields(msg.Content))
	}
	return int(float64(totalWords) * 1.3)
}

// InitLLMClient initializes the LLMClient dependency
type InitLLMClient struct {
	HttpClient *http.Client `resolve:""`
	LLMHost    string       `config:"LLM_MODEL_HOST"`
}

// Initialize registers the LLMClient
func (i InitLLMClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.LLMClient](NewLLMClientAdapter(
		NewDRMAPIClient(i.LLMHost, "", i.HttpClient),
	))
	return ctx, nil
}
