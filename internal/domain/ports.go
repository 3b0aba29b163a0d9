package domain

import "context"

// Context is an alias to stdlib context.Context, kept for symmetry with the
// rest of the pipeline's signatures and to make the dependency on context
// explicit at the domain boundary.
type Context = context.Context

// DocumentParserBackend abstracts a single document-format extraction
// strategy: raw bytes in, plain text out. C1 composes one or more of these
// per MIME type (two, for PDF) and keeps the longer result.
type DocumentParserBackend interface {
	Extract(ctx Context, data []byte) (string, error)
}

// Token is one unit returned by an NLPBackend's Tokenize call.
type Token struct {
	Text    string
	POS     string
	EntType string
}

// NLPBackend is an optional collaborator used by the Skill Extractor (C4)
// to find named entities / noun phrases that hit the skill dictionary.
// A nil NLPBackend (or the nlp.NullBackend implementation) simply skips the
// NLP strategy; ExtractSkills never fails because of it.
type NLPBackend interface {
	Tokenize(ctx Context, text string) ([]Token, error)
	NounChunks(ctx Context, text string) ([]string, error)
}

// EmbeddingBackend is an optional collaborator used by the Semantic
// Matcher (C5) for the embedding-similarity tier and the whole-document
// embedding cosine. A nil EmbeddingBackend (or the embedding.NullBackend
// implementation) causes the semantic tier to be skipped and
// EmbeddingSimilarity to be reported as 0, per §4.5/§5.
type EmbeddingBackend interface {
	Embed(ctx Context, texts []string) ([][]float32, error)
}

// LLMBackend is an optional collaborator used only by the Feedback
// Synthesizer (C7) to enrich the templated output with a generated
// narrative. Its absence never affects the structured parts of a
// FeedbackBundle.
type LLMBackend interface {
	Generate(ctx Context, prompt string, maxTokens int, temperature float64) (string, error)
}
