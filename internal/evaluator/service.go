// Package evaluator wires the seven pipeline stages (C1-C7) into a single
// Evaluate call, with a trace span and a log line per stage call. C4 (skill
// extraction) runs inside the C2 and C3 calls and has no span of its own.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"go.opentelemetry.io/otel"

	"github.com/gouthamGottipati/resume-relevance-system/internal/config"
	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/embedding"
	"github.com/gouthamGottipati/resume-relevance-system/internal/llm"
	"github.com/gouthamGottipati/resume-relevance-system/internal/nlp"
	"github.com/gouthamGottipati/resume-relevance-system/internal/observability"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/extract"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/feedback"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/job"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/match"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/resume"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/score"
)

// Result is the full output of one end-to-end evaluation.
type Result struct {
	Resume   domain.ParsedResume
	Job      domain.ParsedJobDescription
	Match    domain.SemanticMatchResult
	Score    domain.FinalScore
	Feedback domain.FeedbackBundle
}

// Service orchestrates the evaluation pipeline over a fixed set of optional
// capability backends.
type Service struct {
	NLP       domain.NLPBackend
	Embedding domain.EmbeddingBackend
	LLM       domain.LLMBackend
	Weights   domain.Weights
	Timeout   time.Duration
}

// NewService builds a Service from Config, validating weights and wiring an
// Anthropic LLM backend when an API key is configured. No embedding
// provider exists in the reference pack, so Embedding always degrades to
// nlp/embedding null backends (see DESIGN.md); the semantic match tier and
// embedding-similarity component simply contribute zero in that case.
func NewService(cfg config.Config) (*Service, error) {
	weights := cfg.Weights()
	if err := score.ValidateWeights(weights); err != nil {
		return nil, err
	}

	var llmBackend domain.LLMBackend = llm.NullBackend{}
	if cfg.LLMEnabled() {
		llmBackend = llm.NewAnthropicBackend(cfg.AnthropicAPIKey, anthropic.Model(cfg.AnthropicModel))
	}

	timeout := cfg.EvaluationTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Service{
		NLP:       nlp.NullBackend{},
		Embedding: embedding.NullBackend{},
		LLM:       llmBackend,
		Weights:   weights,
		Timeout:   timeout,
	}, nil
}

// Evaluate runs the full pipeline: extract, structure, match, score, and
// synthesize feedback, bounded by s.Timeout.
func (s *Service) Evaluate(ctx domain.Context, resumeData []byte, resumeMime string, jdText string, jobMeta domain.JobMetadata) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	lg := observability.LoggerFromContext(ctx)
	tr := otel.Tracer("evaluator")

	ctx, span := tr.Start(ctx, "pipeline.c1")
	resumeText, parseConfidence, err := extract.ExtractDocument(ctx, resumeData, resumeMime)
	span.End()
	if err != nil {
		lg.Error("c1 document extraction failed", slog.Any("error", err))
		return Result{}, fmt.Errorf("c1 extract: %w", err)
	}
	lg.Info("c1 document extraction complete", slog.Float64("parse_confidence", parseConfidence))

	ctx, span = tr.Start(ctx, "pipeline.c2")
	parsedResume := resume.StructureResume(ctx, resumeText, parseConfidence)
	span.End()
	lg.Info("c2 resume structuring complete", slog.Int("skills_found", parsedResume.Skills.TotalSkillsCount))

	ctx, span = tr.Start(ctx, "pipeline.c3")
	parsedJob := job.StructureJob(ctx, jdText, jobMeta)
	span.End()
	lg.Info("c3 job structuring complete", slog.Int("required_skills", len(parsedJob.RequiredSkills)))

	ctx, span = tr.Start(ctx, "pipeline.c5")
	allJobSkills := append(append([]domain.ExtractedSkill{}, parsedJob.RequiredSkills...), parsedJob.PreferredSkills...)
	matchResult := match.MatchSkills(ctx, parsedResume.Skills.AllSkills(), allJobSkills, resumeText, parsedJob.RawContent, s.Embedding)
	span.End()
	lg.Info("c5 matching complete", slog.Float64("overall_similarity", matchResult.OverallSimilarity))

	ctx, span = tr.Start(ctx, "pipeline.c6")
	finalScore := score.ComputeScore(parsedResume, parsedJob, matchResult, s.Weights)
	span.End()
	lg.Info("c6 scoring complete", slog.Float64("overall_score", finalScore.OverallScore), slog.String("suitability", string(finalScore.Suitability)))

	_, span = tr.Start(ctx, "pipeline.c7")
	bundle := feedback.Synthesize(ctx, parsedResume, parsedJob, matchResult, finalScore, s.LLM)
	span.End()
	lg.Info("c7 feedback synthesis complete", slog.Bool("llm_narrative", bundle.LLMNarrative != ""))

	return Result{
		Resume:   parsedResume,
		Job:      parsedJob,
		Match:    matchResult,
		Score:    finalScore,
		Feedback: bundle,
	}, nil
}
