// Package llm provides LLMBackend implementations for the Feedback
// Synthesizer's (C7) optional narrative-enrichment hook.
package llm

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
)

// DefaultModel is used when the caller does not override it.
const DefaultModel = anthropic.ModelClaudeSonnet4_20250514

// AnthropicBackend implements domain.LLMBackend against the Anthropic
// Messages API. It is a thin, single-call wrapper: one prompt in, one
// completion out, matching the shape C7 needs for narrative enrichment.
type AnthropicBackend struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropicBackend constructs a backend bound to apiKey. If model is
// empty, DefaultModel is used.
func NewAnthropicBackend(apiKey string, model anthropic.Model) *AnthropicBackend {
	if model == "" {
		model = DefaultModel
	}
	return &AnthropicBackend{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Generate sends prompt as a single user message and returns the first text
// block of the response.
func (b *AnthropicBackend) Generate(ctx domain.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	msg, err := b.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     b.model,
		MaxTokens: int64(maxTokens),
		Temperature: anthropic.Float(temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: anthropic generate: %w", domain.ErrBackendUnavailable, err)
	}
	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("%w: anthropic generate: empty response", domain.ErrBackendUnavailable)
}

var _ domain.LLMBackend = (*AnthropicBackend)(nil)
