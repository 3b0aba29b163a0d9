package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gouthamGottipati/resume-relevance-system/internal/config"
	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, 0.35, cfg.WeightHardSkills)
	assert.Equal(t, 80.0, cfg.ThresholdHigh)
	assert.False(t, cfg.LLMEnabled())
	assert.True(t, cfg.IsDev())
}

func TestWeights_MatchesDefaultWeights(t *testing.T) {
	cfg, err := config.Load()
	assert.NoError(t, err)
	w := cfg.Weights()
	assert.Equal(t, domain.DefaultWeights(), w)
	assert.InDelta(t, 1.0, w.Sum(), 0.001)
}
