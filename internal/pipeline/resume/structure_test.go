package resume_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/resume"
)

const sampleResume = `Jane Doe
jane.doe@example.com | 555-123-4567
linkedin.com/in/janedoe | github.com/janedoe

Summary
Backend engineer with a focus on distributed systems.

Skills
Go, Python, PostgreSQL, Docker, Kubernetes, Leadership

Experience
Senior Engineer at Acme Corp
01/2019 - 01/2023
- Led a team building payment infrastructure in Go and PostgreSQL
- Migrated services to Kubernetes

Education
Bachelor of Science in Computer Science
State University, 2015
GPA: 3.8

Certifications
AWS Certified Solutions Architect
`

func TestStructureResume_FullExtraction(t *testing.T) {
	pr := resume.StructureResume(context.Background(), sampleResume, 0.9)

	assert.Equal(t, "Jane Doe", pr.Contact.Name)
	assert.Equal(t, "jane.doe@example.com", pr.Contact.Email)
	assert.Contains(t, pr.Contact.Phone, "555")
	assert.Contains(t, pr.Contact.LinkedIn, "linkedin.com/in/janedoe")
	assert.Contains(t, pr.Contact.GitHub, "github.com/janedoe")

	names := map[string]bool{}
	for _, s := range pr.Skills.AllSkills() {
		names[s.Name] = true
	}
	assert.True(t, names["Go"])
	assert.True(t, names["PostgreSQL"])
	assert.True(t, names["Kubernetes"])

	assert.Len(t, pr.Education, 1)
	assert.Equal(t, "Acme Corp", pr.WorkHistory[0].Company)
	assert.NotEmpty(t, pr.Certifications)
	assert.Equal(t, 0.9, pr.ParsingConfidence)
}

func TestStructureResume_EmptyInputNeverFails(t *testing.T) {
	pr := resume.StructureResume(context.Background(), "", 0.0)
	assert.Equal(t, "", pr.Contact.Name)
	assert.Empty(t, pr.Education)
	assert.Empty(t, pr.WorkHistory)
}
