// Package feedback implements the Feedback Synthesizer (C7): turning the
// scoring and matching output into templated, human-readable guidance, with
// an optional LLM-generated narrative layered on top.
package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/skilldict"
)

const (
	maxStrengths       = 5
	maxImprovements    = 5
	maxRecommendations = 5
	maxAlternatives    = 5
	llmMaxTokens       = 400
	llmTemperature     = 0.4
)

// Synthesize builds a FeedbackBundle from every upstream artifact. backend
// may be llm.NullBackend{}; a failed or unavailable LLM call simply leaves
// LLMNarrative empty rather than failing the whole bundle.
func Synthesize(ctx domain.Context, resume domain.ParsedResume, jd domain.ParsedJobDescription, matchResult domain.SemanticMatchResult, final domain.FinalScore, backend domain.LLMBackend) domain.FeedbackBundle {
	bundle := domain.FeedbackBundle{
		OverallAssessment:        overallAssessment(final, jd),
		Strengths:                strengths(matchResult, resume, jd),
		AreasForImprovement:      improvements(matchResult),
		SpecificRecommendations:  recommendations(matchResult),
		SkillGapAnalysis:         gapAnalysis(matchResult, jd),
		CareerAdvancementTips:    careerTips(final.Suitability),
		InterviewPreparationTips: interviewTips(matchResult),
		ConfidenceLevel:          final.ConfidenceLevel,
	}
	bundle.LLMNarrative = narrative(ctx, backend, resume, jd, final)
	return bundle
}

func overallAssessment(final domain.FinalScore, jd domain.ParsedJobDescription) string {
	title := jd.Title
	if title == "" {
		title = "this role"
	}
	switch final.Suitability {
	case domain.SuitabilityHigh:
		return fmt.Sprintf("Strong match for %s, scoring %.0f/100.", title, final.OverallScore)
	case domain.SuitabilityMedium:
		return fmt.Sprintf("Moderate match for %s, scoring %.0f/100, with some gaps to address.", title, final.OverallScore)
	default:
		return fmt.Sprintf("Limited match for %s, scoring %.0f/100; significant gaps remain.", title, final.OverallScore)
	}
}

func strengths(m domain.SemanticMatchResult, resume domain.ParsedResume, jd domain.ParsedJobDescription) []string {
	var out []string
	for _, sm := range m.SkillMatches {
		if sm.MatchType != domain.MatchExact {
			continue
		}
		out = append(out, fmt.Sprintf("Demonstrated proficiency in %s", sm.SkillName))
		if len(out) >= maxStrengths {
			return out
		}
	}
	if jd.RequiredExperienceYears != nil && resume.TotalExperienceYears >= float64(*jd.RequiredExperienceYears) {
		out = append(out, fmt.Sprintf("%.1f years of experience meets the %d-year requirement", resume.TotalExperienceYears, *jd.RequiredExperienceYears))
	}
	if len(out) > maxStrengths {
		out = out[:maxStrengths]
	}
	return out
}

func improvements(m domain.SemanticMatchResult) []string {
	var out []string
	for i, name := range m.MissingSkills {
		if i >= maxImprovements {
			break
		}
		out = append(out, fmt.Sprintf("No evidence of experience with %s", name))
	}
	return out
}

func recommendations(m domain.SemanticMatchResult) []string {
	var out []string
	for i, name := range m.MissingSkills {
		if i >= maxRecommendations {
			break
		}
		out = append(out, fmt.Sprintf("Consider gaining hands-on experience with %s", name))
	}
	return out
}

func gapAnalysis(m domain.SemanticMatchResult, jd domain.ParsedJobDescription) domain.SkillGapAnalysis {
	required := map[string]bool{}
	for _, s := range jd.RequiredSkills {
		required[strings.ToLower(s.Name)] = true
	}

	var critical, niceToHave []string
	for _, name := range m.MissingSkills {
		if required[strings.ToLower(name)] {
			critical = append(critical, name)
		} else {
			niceToHave = append(niceToHave, name)
		}
	}

	resources := map[string]string{}
	for _, name := range critical {
		if res, ok := skilldict.LearningResources[name]; ok {
			resources[name] = res
		}
	}

	alternatives := m.AdditionalSkills
	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}

	return domain.SkillGapAnalysis{
		CriticalMissing:   critical,
		NiceToHave:        niceToHave,
		LearningResources: resources,
		AlternativeSkills: alternatives,
	}
}

func careerTips(suitability domain.Suitability) []string {
	switch suitability {
	case domain.SuitabilityHigh:
		return []string{
			"Highlight quantifiable outcomes from your most relevant projects in your application.",
			"Prepare to discuss system design tradeoffs you made in past roles.",
		}
	case domain.SuitabilityMedium:
		return []string{
			"Close the most critical skill gaps with a focused project before applying.",
			"Tailor your resume summary to foreground the overlapping experience you already have.",
		}
	default:
		return []string{
			"Build a portfolio project that directly exercises the role's core required skills.",
			"Consider roles with a closer match while you build the missing skills.",
		}
	}
}

func interviewTips(m domain.SemanticMatchResult) []string {
	tips := []string{"Be ready to walk through a project that used your strongest matched skills in depth."}
	if len(m.MissingSkills) > 0 {
		tips = append(tips, fmt.Sprintf("Prepare an honest, concrete answer for your experience gap in %s.", strings.Join(capped(m.MissingSkills, 3), ", ")))
	}
	return tips
}

func capped(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func narrative(ctx domain.Context, backend domain.LLMBackend, resume domain.ParsedResume, jd domain.ParsedJobDescription, final domain.FinalScore) string {
	if backend == nil {
		return ""
	}
	prompt := fmt.Sprintf(
		"Write a short, encouraging paragraph assessing this candidate for the %s role. Overall score: %.0f/100, suitability: %s, skills matched: %d, skills missing: %d.",
		jd.Title, final.OverallScore, final.Suitability, final.Detailed.SkillsMatchedCount, final.Detailed.SkillsMissingCount,
	)
	text, err := backend.Generate(orBackground(ctx), prompt, llmMaxTokens, llmTemperature)
	if err != nil {
		return ""
	}
	return text
}

func orBackground(ctx domain.Context) domain.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
