// Package llm adapts hosted model providers behind a single interface.
package llm

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/gridside/funding-cli/internal/config"
	"github.com/gridside/funding-cli/internal/prompt"
)

// NoResponseSentinel is returned when a provider's envelope carries no
// recognizable text payload. Substituting it keeps the request alive; only
// transport and provider errors fail an evaluation.
const NoResponseSentinel = "No response."

// Provider sends an assembled prompt to a hosted model and returns the
// assistant's free-text answer.
type Provider interface {
	Evaluate(ctx context.Context, p prompt.Prompt) (string, error)
	Name() string
}

// New constructs the Provider selected by config.
func New(cfg config.LLM) (Provider, error) {
	switch cfg.Provider {
	case "openai-chat", "":
		return NewOpenAIChat(cfg.Key, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil
	case "openai-responses":
		return NewOpenAIResponses(cfg.Key, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.WebSearch), nil
	case "anthropic":
		return NewAnthropic(cfg.Key, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil
	default:
		return nil, eris.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}
