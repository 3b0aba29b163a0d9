package feedback_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/llm"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/feedback"
)

func TestSynthesize_MissingSkillsProduceGaps(t *testing.T) {
	resume := domain.ParsedResume{TotalExperienceYears: 2}
	jd := domain.ParsedJobDescription{
		Title:          "Backend Engineer",
		RequiredSkills: []domain.ExtractedSkill{{Name: "Kubernetes"}},
	}
	matchResult := domain.SemanticMatchResult{
		MissingSkills:    []string{"Kubernetes", "Docker"},
		AdditionalSkills: []string{"Ruby"},
	}
	final := domain.FinalScore{
		OverallScore:    55,
		Suitability:     domain.SuitabilityMedium,
		ConfidenceLevel: domain.ConfidenceMedium,
	}

	bundle := feedback.Synthesize(context.Background(), resume, jd, matchResult, final, llm.NullBackend{})

	assert.NotEmpty(t, bundle.OverallAssessment)
	assert.Contains(t, bundle.SkillGapAnalysis.CriticalMissing, "Kubernetes")
	assert.Contains(t, bundle.SkillGapAnalysis.NiceToHave, "Docker")
	assert.Empty(t, bundle.LLMNarrative)
	assert.Equal(t, domain.ConfidenceMedium, bundle.ConfidenceLevel)
}

func TestSynthesize_NoGapsStillReturnsTips(t *testing.T) {
	bundle := feedback.Synthesize(context.Background(), domain.ParsedResume{}, domain.ParsedJobDescription{}, domain.SemanticMatchResult{}, domain.FinalScore{Suitability: domain.SuitabilityHigh}, llm.NullBackend{})
	assert.NotEmpty(t, bundle.CareerAdvancementTips)
	assert.NotEmpty(t, bundle.InterviewPreparationTips)
}
