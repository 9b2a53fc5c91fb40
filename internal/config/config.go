// Package config loads process configuration from the environment. The only
// required setting is the Gemini credential; everything else has a default.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port             string
	GeminiAPIKey     string
	GeminiModel      string
	NarrativeTimeout time.Duration
	Workers          int
}

// Load reads configuration from environment variables. A missing
// GEMINI_API_KEY is a startup error: the process must not come up without a
// working narrative credential.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("narrative_timeout", "5s")
	v.SetDefault("workers", 4)

	key := v.GetString("gemini_api_key")
	if key == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}

	return &Config{
		Port:             v.GetString("port"),
		GeminiAPIKey:     key,
		GeminiModel:      v.GetString("gemini_model"),
		NarrativeTimeout: v.GetDuration("narrative_timeout"),
		Workers:          v.GetInt("workers"),
	}, nil
}
