package usecases

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/common"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-taskapp/internal/telemetry"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

// SuggestSubtasks is the use case interface for proposing subtask titles for
// a parent task.
type SuggestSubtasks interface {
	Execute(ctx context.Context, parentTitle string) ([]string, error)
}

// SuggestSubtasksImpl is the implementation of the SuggestSubtasks use case.
// It tries the generative model first and degrades through the curated lookup
// table to a generic template, so a usable list always comes back. Persisting
// an accepted suggestion as a real subtask is the caller's concern.
type SuggestSubtasksImpl struct {
	llmClient domain.LLMClient
	model     string
	logger    *log.Logger
}

// NewSuggestSubtasksImpl creates a new instance of SuggestSubtasksImpl.
func NewSuggestSubtasksImpl(c domain.LLMClient, model string, logger *log.Logger) SuggestSubtasksImpl {
	return SuggestSubtasksImpl{
		llmClient: c,
		model:     model,
		logger:    logger,
	}
}

// Execute produces between domain.MinSubtaskSuggestions and
// domain.MaxSubtaskSuggestions suggested subtask titles for parentTitle.
func (ss SuggestSubtasksImpl) Execute(ctx context.Context, parentTitle string) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(parentTitle) == "" {
		err := domain.NewValidationErr("title cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	if ss.model != "-" {
		suggestions, err := ss.generate(spanCtx, parentTitle)
		if err == nil {
			telemetry.RecordErrorAndStatus(span, nil)
			return suggestions, nil
		}
		ss.logger.Printf("generative subtask suggestion failed, using lookup table: %v", err)
	}

	if suggestions, ok := domain.LookupSubtaskSuggestions(parentTitle); ok {
		telemetry.RecordErrorAndStatus(span, nil)
		return suggestions, nil
	}

	telemetry.RecordErrorAndStatus(span, nil)
	return domain.GenericSubtaskTemplate(parentTitle), nil
}

// generate asks the LLM for a subtask breakdown and validates the reply.
func (ss SuggestSubtasksImpl) generate(ctx context.Context, parentTitle string) ([]string, error) {
	messages, err := buildSuggestSubtasksMessages(parentTitle)
	if err != nil {
		return nil, err
	}

	resp, err := ss.llmClient.Chat(ctx, domain.LLMChatRequest{
		Model:       ss.model,
		Stream:      false,
		Temperature: common.Ptr(0.7),
		Messages:    messages,
	})
	if err != nil {
		return nil, err
	}

	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	suggestions, err := parseSuggestionList(resp.Content)
	if err != nil {
		return nil, err
	}

	return suggestions, nil
}

//go:embed prompts/suggest_subtasks.yml
var suggestSubtasksPrompt embed.FS

type suggestSubtasksInput struct {
	Task string `toon:"task"`
}

// buildSuggestSubtasksMessages constructs the LLM messages for the subtask prompt.
func buildSuggestSubtasksMessages(parentTitle string) ([]domain.LLMChatMessage, error) {
	inputTOON, err := toon.MarshalString(suggestSubtasksInput{Task: parentTitle})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prompt input: %w", err)
	}

	file, err := suggestSubtasksPrompt.Open("prompts/suggest_subtasks.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open subtask prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	err = yaml.NewDecoder(file).Decode(&messages)
	if err != nil {
		return nil, fmt.Errorf("failed to decode subtask prompt: %w", err)
	}

	for i, msg := range messages {
		if strings.Contains(msg.Content, "%s") {
			msg.Content = fmt.Sprintf(msg.Content, inputTOON)
			messages[i] = msg
		}
	}

	return messages, nil
}

// parseSuggestionList validates the raw model reply into a usable list of
// subtask titles. Too few usable entries counts as a failure so the caller
// falls back.
func parseSuggestionList(content string) ([]string, error) {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var raw []string
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("response is not a JSON array of strings: %w", err)
	}

	suggestions := make([]string, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		suggestions = append(suggestions, item)
		if len(suggestions) == domain.MaxSubtaskSuggestions {
			break
		}
	}

	if len(suggestions) < domain.MinSubtaskSuggestions {
		return nil, fmt.Errorf("expected at least %d suggestions, got %d", domain.MinSubtaskSuggestions, len(suggestions))
	}

	return suggestions, nil
}

// InitSuggestSubtasks initializes the SuggestSubtasks use case and registers
// it in the dependency container.
type InitSuggestSubtasks struct {
	LLMClient domain.LLMClient `resolve:""`
	Logger    *log.Logger      `resolve:""`
	Model     string           `config:"LLM_SUGGESTION_MODEL" default:"-"`
}

// Initialize registers the SuggestSubtasksImpl use case.
func (iss InitSuggestSubtasks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SuggestSubtasks](NewSuggestSubtasksImpl(iss.LLMClient, iss.Model, iss.Logger))
	return ctx, nil
}
