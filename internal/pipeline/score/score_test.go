package score_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/score"
)

func TestValidateWeights_RejectsBadSum(t *testing.T) {
	w := domain.Weights{HardSkills: 0.5, SoftSkills: 0.5, Experience: 0.5}
	err := score.ValidateWeights(w)
	assert.True(t, errors.Is(err, domain.ErrInvalidWeights))
}

func TestValidateWeights_AcceptsDefault(t *testing.T) {
	assert.NoError(t, score.ValidateWeights(domain.DefaultWeights()))
}

func TestComputeScore_StrongMatchIsHighSuitability(t *testing.T) {
	years := 3
	resume := domain.ParsedResume{
		Contact: domain.ContactInfo{Email: "jane@example.com"},
		Skills: domain.SkillProfile{
			SoftSkills:     []domain.ExtractedSkill{{Name: "Communication", Category: domain.CategorySoftSkills}},
			SkillDiversity: 0.5,
		},
		Education: []domain.EducationEntry{{Degree: "Bachelor of Science"}},
		WorkHistory: []domain.WorkExperienceEntry{
			{
				Title:       "Engineer",
				Company:     "Acme",
				EndDate:     "Present",
				Description: []string{"Shipped Go services"},
			},
		},
		TotalExperienceYears: 5,
		ParsingConfidence:    0.9,
	}
	jd := domain.ParsedJobDescription{
		Title:                   "Engineer",
		Company:                 "Acme",
		RequiredExperienceYears: &years,
		EducationRequirements:   []string{"Bachelor's degree required"},
		RequiredSkills:          []domain.ExtractedSkill{{Name: "Go", Category: domain.CategoryProgrammingLanguages}},
	}
	matchResult := domain.SemanticMatchResult{
		OverallSimilarity: 0.9,
		SkillMatches: []domain.SkillMatch{
			{SkillName: "Go", JDSkill: "Go", ResumeSkill: "Go", MatchType: domain.MatchExact, Confidence: 1.0},
		},
		CategorySimilarities: map[string]float64{
			"programming_languages": 1.0,
			"soft_skills":           0.8,
		},
		TextSimilarity: 0.7,
	}

	final := score.ComputeScore(resume, jd, matchResult, domain.DefaultWeights())
	assert.Equal(t, domain.SuitabilityHigh, final.Suitability)
	assert.Greater(t, final.OverallScore, 60.0)
}

func TestComputeScore_MissingSkillsDowngrades(t *testing.T) {
	resume := domain.ParsedResume{ParsingConfidence: 0.9}
	jd := domain.ParsedJobDescription{}
	matchResult := domain.SemanticMatchResult{
		MissingSkills: []string{"Kubernetes", "Terraform", "AWS"},
	}

	final := score.ComputeScore(resume, jd, matchResult, domain.DefaultWeights())
	assert.NotEqual(t, domain.SuitabilityHigh, final.Suitability)
}

// Seed scenario 5 (§8): with no required_experience_years stated, the
// requirement defaults to 2, so zero years of experience yields a years
// sub-score of exactly zero rather than some flat fallback value.
func TestComputeScore_ZeroYearsRequiredDefaultsToTwo(t *testing.T) {
	resume := domain.ParsedResume{TotalExperienceYears: 0}
	jd := domain.ParsedJobDescription{RequiredExperienceYears: nil}
	matchResult := domain.SemanticMatchResult{}

	final := score.ComputeScore(resume, jd, matchResult, domain.DefaultWeights())
	assert.Equal(t, 0.0, final.Detailed.YearsSubScore)
}

// Seed scenario 3 (§8): a missing skill whose own name carries one of
// §4.6's critical meta-words pulls the hard-skills score down via the
// critical-missing penalty, on top of the plain coverage shortfall.
func TestComputeScore_MissingCriticalSkillPenalizesHardSkills(t *testing.T) {
	resume := domain.ParsedResume{}
	jd := domain.ParsedJobDescription{
		RequiredSkills: []domain.ExtractedSkill{
			{Name: "Go"},
			{Name: "Security Clearance (Mandatory)"},
		},
	}
	matchResult := domain.SemanticMatchResult{
		SkillMatches: []domain.SkillMatch{
			{JDSkill: "Go", ResumeSkill: "Go", Confidence: 1.0},
		},
		MissingSkills: []string{"Security Clearance (Mandatory)"},
	}

	final := score.ComputeScore(resume, jd, matchResult, domain.DefaultWeights())
	// Coverage alone (1/2 matched) would land at 50; the critical-missing
	// penalty must pull it meaningfully below that.
	assert.Less(t, final.Detailed.HardSkillsScore, 40.0)
}

// §4.6 adjustment rule 2: a standout component score (here, experience)
// upgrades an otherwise-Low verdict to Medium, never past it.
func TestComputeScore_StandoutExperienceUpgradesLowToMedium(t *testing.T) {
	resume := domain.ParsedResume{
		WorkHistory: []domain.WorkExperienceEntry{
			{
				Title:       "Backend Engineer",
				Company:     "Acme",
				EndDate:     "Present",
				Description: []string{"Built scalable Go and Rust services"},
			},
		},
		TotalExperienceYears: 10,
		ParsingConfidence:    0.8,
	}
	jd := domain.ParsedJobDescription{
		Title:          "Backend Engineer",
		Company:        "Acme",
		RequiredSkills: []domain.ExtractedSkill{{Name: "Go"}, {Name: "Rust"}},
	}
	matchResult := domain.SemanticMatchResult{
		SkillMatches: []domain.SkillMatch{
			{JDSkill: "Go", ResumeSkill: "Go", Confidence: 0.8},
		},
		MissingSkills: []string{"Rust"},
	}

	final := score.ComputeScore(resume, jd, matchResult, domain.DefaultWeights())
	assert.GreaterOrEqual(t, final.Detailed.ExperienceScore, 90.0)
	assert.Equal(t, domain.SuitabilityMedium, final.Suitability)
}

// §4.6 adjustment rule 3: a low overall confidence caps a would-be-High
// verdict at Medium, even though the overall score clears the High
// threshold.
func TestComputeScore_LowConfidenceCapsHighAtMedium(t *testing.T) {
	years := 1
	resume := domain.ParsedResume{
		Skills: domain.SkillProfile{
			SoftSkills: []domain.ExtractedSkill{{Name: "Communication", Category: domain.CategorySoftSkills}},
		},
		Education:            []domain.EducationEntry{{Degree: "Master of Science"}},
		TotalExperienceYears: 5,
		ParsingConfidence:    0.1,
	}
	jd := domain.ParsedJobDescription{
		RequiredExperienceYears: &years,
		EducationRequirements:   []string{"Master's degree preferred"},
		RequiredSkills: []domain.ExtractedSkill{
			{Name: "Python"},
			{Name: "Communication", Category: domain.CategorySoftSkills},
		},
	}
	matchResult := domain.SemanticMatchResult{
		OverallSimilarity: 0.95,
		SkillMatches: []domain.SkillMatch{
			{JDSkill: "Python", ResumeSkill: "Python", Confidence: 1.0},
			{JDSkill: "Communication", ResumeSkill: "Communication", Confidence: 1.0},
		},
	}

	final := score.ComputeScore(resume, jd, matchResult, domain.DefaultWeights())
	assert.Less(t, final.Detailed.OverallConfidence, 0.60)
	assert.Equal(t, domain.SuitabilityMedium, final.Suitability)
}
