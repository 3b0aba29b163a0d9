package llm

import (
	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
)

// NullBackend reports itself unavailable so the Feedback Synthesizer (C7)
// skips the narrative-enrichment call and returns the templated bundle as-is.
type NullBackend struct{}

// Generate always returns domain.ErrBackendUnavailable.
func (NullBackend) Generate(ctx domain.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	return "", domain.ErrBackendUnavailable
}

var _ domain.LLMBackend = NullBackend{}
