// Package config loads engine configuration from an optional YAML file and
// the environment. Every tunable has a default; a missing config file is
// not an error.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the engine's tunable settings.
type Config struct {
	Env string `mapstructure:"env"` // local, dev, prod

	DBPath string `mapstructure:"db_path"` // empty means the default data dir

	Access   Access   `mapstructure:"access"`
	Gaps     Gaps     `mapstructure:"gaps"`
	Quiz     Quiz     `mapstructure:"quiz"`
	LLMModel LLMModel `mapstructure:"llm"`
}

// Access configures the gating policy. Which modules are free samples is a
// property of the catalog, not a tunable.
type Access struct {
	TrialLengthDays int `mapstructure:"trial_length_days"`
}

// Gaps configures the gap-score update rule.
type Gaps struct {
	WrongIncrement   int `mapstructure:"wrong_increment"`
	CorrectDecrement int `mapstructure:"correct_decrement"`
	MaxScore         int `mapstructure:"max_score"`
}

// Quiz configures selection and scoring.
type Quiz struct {
	Size          int     `mapstructure:"size"`
	GapShare      float64 `mapstructure:"gap_share"`
	GapTopics     int     `mapstructure:"gap_topics"`
	PassThreshold int     `mapstructure:"pass_threshold"`
}

// LLMModel configures the content collaborator.
type LLMModel struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// Load reads config.yaml (if present) and SMBSHIELD_* environment
// variables over the defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("env", "local")
	v.SetDefault("db_path", "")
	v.SetDefault("access.trial_length_days", 30)
	v.SetDefault("gaps.wrong_increment", 15)
	v.SetDefault("gaps.correct_decrement", 5)
	v.SetDefault("gaps.max_score", 100)
	v.SetDefault("quiz.size", 10)
	v.SetDefault("quiz.gap_share", 0.6)
	v.SetDefault("quiz.gap_topics", 2)
	v.SetDefault("quiz.pass_threshold", 70)
	v.SetDefault("llm.timeout_seconds", 30)

	v.SetEnvPrefix("SMBSHIELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "SMBSHIELD_ENV")
	_ = v.BindEnv("db_path", "SMBSHIELD_DB")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Gaps.WrongIncrement <= 0 || c.Gaps.CorrectDecrement <= 0 {
		return fmt.Errorf("gap increments must be positive")
	}
	if c.Gaps.MaxScore <= 0 {
		return fmt.Errorf("gaps.max_score must be positive")
	}
	if c.Quiz.Size <= 0 {
		return fmt.Errorf("quiz.size must be positive")
	}
	if c.Quiz.GapShare < 0 || c.Quiz.GapShare > 1 {
		return fmt.Errorf("quiz.gap_share must be in [0,1]")
	}
	if c.Quiz.PassThreshold < 0 || c.Quiz.PassThreshold > 100 {
		return fmt.Errorf("quiz.pass_threshold must be in [0,100]")
	}
	if c.Access.TrialLengthDays <= 0 {
		return fmt.Errorf("access.trial_length_days must be positive")
	}
	return nil
}
