// Package config defines configuration parsing for the evaluation pipeline.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
)

// Config holds every environment-driven setting the evaluation pipeline
// needs: scoring weights, optional backend credentials, and timeouts.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`

	WeightHardSkills    float64 `env:"WEIGHT_HARD_SKILLS" envDefault:"0.35"`
	WeightSoftSkills    float64 `env:"WEIGHT_SOFT_SKILLS" envDefault:"0.15"`
	WeightExperience    float64 `env:"WEIGHT_EXPERIENCE" envDefault:"0.25"`
	WeightEducation     float64 `env:"WEIGHT_EDUCATION" envDefault:"0.15"`
	WeightSemanticMatch float64 `env:"WEIGHT_SEMANTIC_MATCH" envDefault:"0.10"`
	ThresholdHigh       float64 `env:"THRESHOLD_HIGH" envDefault:"80"`
	ThresholdMedium     float64 `env:"THRESHOLD_MEDIUM" envDefault:"60"`

	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string `env:"ANTHROPIC_MODEL" envDefault:"claude-sonnet-4-20250514"`

	EvaluationTimeout time.Duration `env:"EVALUATION_TIMEOUT" envDefault:"30s"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// Weights derives the scoring engine's Weights from the configured values.
func (c Config) Weights() domain.Weights {
	return domain.Weights{
		HardSkills:      c.WeightHardSkills,
		SoftSkills:      c.WeightSoftSkills,
		Experience:      c.WeightExperience,
		Education:       c.WeightEducation,
		SemanticMatch:   c.WeightSemanticMatch,
		ThresholdHigh:   c.ThresholdHigh,
		ThresholdMedium: c.ThresholdMedium,
	}
}

// LLMEnabled reports whether an Anthropic API key was configured.
func (c Config) LLMEnabled() bool {
	return c.AnthropicAPIKey != ""
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }
