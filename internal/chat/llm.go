package chat

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/currhub/currhub/internal/llm"
)

// SystemPrompt frames the assistant when replies come from a language model
// directly instead of the backend.
const SystemPrompt = `You are CurrBot, the curriculum assistant of CurrHub, a platform that generates academic curricula.

Answer confidently and helpfully. Do not tell the user to look elsewhere and do not add disclaimers about missing data.

You know curriculum design and course structures for B.Tech, M.Tech, BCA, MCA, MBA and similar programs, semester-wise subject breakdowns, electives, labs and project requirements, and accreditation patterns such as AICTE.

When asked about a curriculum, give a semester-wise breakdown with core subjects and electives and include credits or hours where relevant.

Keep answers clear and structured. Use bullet points for lists.`

// LLMResponder answers with a language model.
type LLMResponder struct {
	provider    llm.Provider
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

// LLMOptions tunes an LLMResponder.
type LLMOptions struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// NewLLMResponder creates a responder over a provider.
func NewLLMResponder(p llm.Provider, opts LLMOptions, logger *zap.Logger) *LLMResponder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMResponder{
		provider:    p,
		model:       opts.Model,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		logger:      logger,
	}
}

func (r *LLMResponder) Reply(ctx context.Context, message string) (string, error) {
	resp, err := r.provider.Complete(ctx, llm.CompletionRequest{
		Model: r.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: SystemPrompt},
			{Role: llm.RoleUser, Content: message},
		},
		MaxTokens:   r.maxTokens,
		Temperature: r.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s reply: %w", r.provider.Name(), err)
	}

	r.logger.Debug("chat completion",
		zap.String("provider", r.provider.Name()),
		zap.String("model", resp.Model),
		zap.Int("input_tokens", resp.InputTokens),
		zap.Int("output_tokens", resp.OutputTokens),
		zap.Float64("cost_usd", llm.EstimateCost(resp.Model, resp.InputTokens, resp.OutputTokens)),
	)

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", fmt.Errorf("%s reply: empty completion", r.provider.Name())
	}
	return content, nil
}
