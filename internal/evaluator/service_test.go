package evaluator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gouthamGottipati/resume-relevance-system/internal/config"
	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/evaluator"
)

const resumeText = `Jane Doe
jane.doe@example.com

Skills
Go, PostgreSQL, Docker

Experience
Backend Engineer at Acme Corp
01/2019 - 01/2023
- Built services in Go and PostgreSQL
`

const jobText = `Summary
We need a backend engineer.

Requirements
- 2+ years of experience with Go
- Experience with Kubernetes
`

func TestService_Evaluate_EndToEnd(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.EvaluationTimeout = 5 * time.Second

	svc, err := evaluator.NewService(cfg)
	require.NoError(t, err)

	result, err := svc.Evaluate(context.Background(), []byte(resumeText), domain.MimePlain, jobText, domain.JobMetadata{Title: "Backend Engineer"})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", result.Resume.Contact.Name)
	assert.Equal(t, "Backend Engineer", result.Job.Title)
	assert.GreaterOrEqual(t, result.Score.OverallScore, 0.0)
	assert.NotEmpty(t, result.Feedback.OverallAssessment)
}

func TestService_Evaluate_UnsupportedMimeFails(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	svc, err := evaluator.NewService(cfg)
	require.NoError(t, err)

	_, err = svc.Evaluate(context.Background(), []byte("data"), "image/png", jobText, domain.JobMetadata{})
	assert.Error(t, err)
}
