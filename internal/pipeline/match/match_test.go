package match_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/embedding"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/match"
)

func TestMatchSkills_ExactAndMissing(t *testing.T) {
	resumeSkills := []domain.ExtractedSkill{
		{Name: "Go", Category: domain.CategoryProgrammingLanguages},
		{Name: "PostgreSQL", Category: domain.CategoryDatabases},
		{Name: "Leadership", Category: domain.CategorySoftSkills},
	}
	jdSkills := []domain.ExtractedSkill{
		{Name: "Go", Category: domain.CategoryProgrammingLanguages},
		{Name: "Kubernetes", Category: domain.CategoryDevOpsTools},
	}

	result := match.MatchSkills(context.Background(), resumeSkills, jdSkills, "Go engineer with PostgreSQL experience", "Looking for a Go and Kubernetes engineer", embedding.NullBackend{})

	assert.Len(t, result.SkillMatches, 1)
	assert.Equal(t, domain.MatchExact, result.SkillMatches[0].MatchType)
	assert.Equal(t, []string{"Kubernetes"}, result.MissingSkills)
	assert.Contains(t, result.AdditionalSkills, "PostgreSQL")
	assert.Contains(t, result.AdditionalSkills, "Leadership")
	assert.Equal(t, 0.0, result.EmbeddingSimilarity)
	assert.Greater(t, result.TextSimilarity, 0.0)
}

func TestMatchSkills_FuzzyMatchesNearSpelling(t *testing.T) {
	resumeSkills := []domain.ExtractedSkill{{Name: "Kubernets", Category: domain.CategoryDevOpsTools}}
	jdSkills := []domain.ExtractedSkill{{Name: "Kubernetes", Category: domain.CategoryDevOpsTools}}

	result := match.MatchSkills(context.Background(), resumeSkills, jdSkills, "", "", embedding.NullBackend{})
	assert.Len(t, result.SkillMatches, 1)
	assert.Equal(t, domain.MatchFuzzy, result.SkillMatches[0].MatchType)
}

func TestMatchSkills_NoJDSkillsYieldsFullSkillComponent(t *testing.T) {
	result := match.MatchSkills(context.Background(), nil, nil, "some text", "other text", embedding.NullBackend{})
	assert.Empty(t, result.SkillMatches)
	assert.Empty(t, result.MissingSkills)
}
