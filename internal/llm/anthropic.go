package llm

import (
	"context"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"

	"github.com/gridside/funding-cli/internal/prompt"
)

// Anthropic adapts the official SDK's Messages API.
type Anthropic struct {
	client      sdk.Client
	model       string
	temperature float64
	maxTokens   int64
}

// NewAnthropic creates an Anthropic adapter. Extra request options (custom
// base URL, HTTP client) are passed through to the SDK.
func NewAnthropic(apiKey, model string, temperature float64, maxTokens int, opts ...option.RequestOption) *Anthropic {
	if maxTokens <= 0 {
		maxTokens = 2048
	}
	return &Anthropic{
		client:      sdk.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...),
		model:       model,
		temperature: temperature,
		maxTokens:   int64(maxTokens),
	}
}

func (c *Anthropic) Name() string { return "anthropic" }

// Evaluate sends the prompt as a single user turn with a system block and
// concatenates the text content blocks of the reply.
func (c *Anthropic) Evaluate(ctx context.Context, p prompt.Prompt) (string, error) {
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(c.model),
		MaxTokens:   c.maxTokens,
		System:      []sdk.TextBlockParam{{Text: p.System}},
		Messages:    []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(p.User))},
		Temperature: sdk.Float(c.temperature),
	})
	if err != nil {
		return "", eris.Wrap(err, "llm: anthropic create message")
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return NoResponseSentinel, nil
	}
	return b.String(), nil
}
