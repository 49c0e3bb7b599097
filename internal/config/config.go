// Package config loads host configuration from a YAML file, environment
// variables and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/sarvesh-debug-lab/vocabulary-master-pwa/internal/srs"
)

// envPrefix namespaces the environment variables read by Load.
// A double underscore separates nesting levels, e.g.
// VOCABSRS_SCHEDULER__INITIAL_EASE → scheduler.initial_ease.
const envPrefix = "VOCABSRS_"

// Config is the full host configuration.
type Config struct {
	Scheduler Scheduler `koanf:"scheduler"`
	Goal      Goal      `koanf:"goal"`
	Deck      Deck      `koanf:"deck"`
}

// Scheduler exposes the engine tunables a host may override.
type Scheduler struct {
	InitialEase    float64 `koanf:"initial_ease" validate:"gte=1"`
	MinEase        float64 `koanf:"min_ease" validate:"gte=1"`
	MaxEase        float64 `koanf:"max_ease" validate:"gtefield=MinEase"`
	FirstInterval  int     `koanf:"first_interval" validate:"gte=1"`
	SecondInterval int     `koanf:"second_interval" validate:"gtefield=FirstInterval"`
	JitterFraction float64 `koanf:"jitter_fraction" validate:"gte=0,lte=0.5"`
	DisableJitter  bool    `koanf:"disable_jitter"`
}

// Params maps the configured overrides onto the engine's parameter set.
// Tunables not exposed here keep their defaults.
func (s Scheduler) Params() srs.Params {
	p := srs.DefaultParams()
	p.InitialEase = s.InitialEase
	p.MinEase = s.MinEase
	p.MaxEase = s.MaxEase
	p.FirstInterval = s.FirstInterval
	p.SecondInterval = s.SecondInterval
	p.JitterFraction = s.JitterFraction
	return p
}

// Goal holds the inputs for the daily-goal recommendation.
type Goal struct {
	AvailableMinutes  float64 `koanf:"available_minutes" validate:"gt=0"`
	AvgSecondsPerCard float64 `koanf:"avg_seconds_per_card" validate:"gt=0"`
	AssumedAccuracy   float64 `koanf:"assumed_accuracy" validate:"gte=0,lte=100"`
	// DailyGoal is an explicit user-set goal. Zero means "recommend one";
	// a non-zero value is never overridden by the recommendation.
	DailyGoal int `koanf:"daily_goal" validate:"gte=0"`
}

// Deck locates the vocabulary deck on disk.
type Deck struct {
	Dir string `koanf:"dir" validate:"required"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Scheduler: Scheduler{
			InitialEase:    2.5,
			MinEase:        1.3,
			MaxEase:        2.5,
			FirstInterval:  1,
			SecondInterval: 6,
			JitterFraction: 0.1,
		},
		Goal: Goal{
			AvailableMinutes:  20,
			AvgSecondsPerCard: 30,
			AssumedAccuracy:   75,
		},
		Deck: Deck{Dir: "."},
	}
}

// Load builds the configuration from defaults, then the optional YAML file
// at path, then VOCABSRS_-prefixed environment variables, then the given
// flag set (highest precedence). The result is validated before returning.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(key string) string {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("loading flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
