// Package embedding provides EmbeddingBackend implementations for the
// Semantic Matcher's optional embedding-similarity tier.
package embedding

import (
	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
)

// NullBackend reports itself unavailable so the Semantic Matcher skips the
// embedding tier and reports EmbeddingSimilarity as 0, per §4.5/§5.
type NullBackend struct{}

// Embed always returns domain.ErrBackendUnavailable.
func (NullBackend) Embed(ctx domain.Context, texts []string) ([][]float32, error) {
	return nil, domain.ErrBackendUnavailable
}

var _ domain.EmbeddingBackend = NullBackend{}
