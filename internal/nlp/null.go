// Package nlp provides NLPBackend implementations for the Skill Extractor's
// optional named-entity / noun-phrase strategy.
package nlp

import (
	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
)

// NullBackend is the capability-interface null object: it reports itself as
// unavailable so callers skip the NLP strategy instead of failing. This is
// the default when no real NLP model is wired in.
type NullBackend struct{}

// Tokenize always returns domain.ErrBackendUnavailable.
func (NullBackend) Tokenize(ctx domain.Context, text string) ([]domain.Token, error) {
	return nil, domain.ErrBackendUnavailable
}

// NounChunks always returns domain.ErrBackendUnavailable.
func (NullBackend) NounChunks(ctx domain.Context, text string) ([]string, error) {
	return nil, domain.ErrBackendUnavailable
}

var _ domain.NLPBackend = NullBackend{}
