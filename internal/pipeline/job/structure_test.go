package job_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/job"
)

const sampleJob = `Backend Engineer

Summary
We are hiring urgently for a backend engineer to join our platform team.

Responsibilities
- Design and build distributed services
- Own on-call rotation for the payments platform

Requirements
- 5+ years of experience with Go and PostgreSQL
- Bachelor's degree in Computer Science or related field
- Experience with Kubernetes and Docker

Preferred
- Experience with Terraform
- AWS certification

Benefits
- Remote work available
- Health insurance
`

func TestStructureJob_FullExtraction(t *testing.T) {
	meta := domain.JobMetadata{Title: "Backend Engineer", Company: "Acme", Location: "Remote"}
	jd := job.StructureJob(context.Background(), sampleJob, meta)

	assert.Equal(t, "Backend Engineer", jd.Title)
	assert.Equal(t, "Acme", jd.Company)
	require.NotNil(t, jd.RequiredExperienceYears)
	assert.Equal(t, 5, *jd.RequiredExperienceYears)
	assert.True(t, jd.RemoteAllowed)
	assert.Equal(t, domain.UrgencyHigh, jd.UrgencyLevel)
	assert.NotEmpty(t, jd.EducationRequirements)

	names := map[string]bool{}
	for _, s := range jd.RequiredSkills {
		names[s.Name] = true
	}
	assert.True(t, names["Go"])
	assert.True(t, names["PostgreSQL"])
	assert.True(t, names["Kubernetes"])

	preferredNames := map[string]bool{}
	for _, s := range jd.PreferredSkills {
		preferredNames[s.Name] = true
	}
	assert.True(t, preferredNames["Terraform"])
}

func TestStructureJob_EmptyTextNeverFails(t *testing.T) {
	jd := job.StructureJob(context.Background(), "", domain.JobMetadata{})
	assert.Empty(t, jd.Requirements)
	assert.Nil(t, jd.RequiredExperienceYears)
	assert.Equal(t, domain.UrgencyLow, jd.UrgencyLevel)
}
