// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// APIKeyEnvVar names the environment variable holding the Gemini credential.
	APIKeyEnvVar = "GEMINI_API_KEY"
	// DefaultEndpointURL is the OpenAI-compatibility base URL of the Gemini API.
	DefaultEndpointURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	// defaultRequestTimeout is the default timeout for a single streamed request.
	defaultRequestTimeout = 60 * time.Second
	// defaultTurnGap is the pause between conversation turns against one model.
	defaultTurnGap = 500 * time.Millisecond
	// defaultModelGap is the pause between finishing one model and starting the next.
	defaultModelGap = 1 * time.Second
	// defaultMaxOutputTokens caps the length of each generated response.
	defaultMaxOutputTokens = 1024
	// defaultTemperature is the sampling temperature applied to every turn.
	defaultTemperature = 0.7
)

// ErrMissingAPIKey is returned when the credential environment variable is unset.
var ErrMissingAPIKey = fmt.Errorf("%s environment variable is not set", APIKeyEnvVar)

// Config represents the top-level application configuration. It is built once
// at process start and treated as read-only for the rest of the run.
// The mapstructure tags keep viper decoding aligned with the JSON keys where
// the field name differs from the key (notably "timeout").
type Config struct {
	Models          []string `json:"models" mapstructure:"models"`
	Prompts         []string `json:"prompts" mapstructure:"prompts"`
	SystemPrompt    string   `json:"systemPrompt,omitempty" mapstructure:"systemPrompt"`
	TurnGapSeconds  float64  `json:"turnGapSeconds,omitempty" mapstructure:"turnGapSeconds"`
	ModelGapSeconds float64  `json:"modelGapSeconds,omitempty" mapstructure:"modelGapSeconds"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty" mapstructure:"maxOutputTokens"`
	Temperature     float64  `json:"temperature,omitempty" mapstructure:"temperature"`
	ReasoningEffort string   `json:"reasoningEffort,omitempty" mapstructure:"reasoningEffort"`
	TimeoutSeconds  int      `json:"timeout,omitempty" mapstructure:"timeout"`
	BaseURL         string   `json:"baseUrl,omitempty" mapstructure:"baseUrl"`
	ResultsDir      string   `json:"resultsDir,omitempty" mapstructure:"resultsDir"`
	LogFile         string   `json:"logFile,omitempty" mapstructure:"logFile"`
	Debug           bool     `json:"debug" mapstructure:"debug"`

	APIKey     string `json:"-" mapstructure:"-"`
	ConfigPath string `json:"-" mapstructure:"-"`
}

// RequestTimeout returns the timeout duration for a single streamed request,
// falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TurnGap returns the pause inserted between conversation turns.
func (c Config) TurnGap() time.Duration {
	if c.TurnGapSeconds <= 0 {
		return defaultTurnGap
	}
	return time.Duration(c.TurnGapSeconds * float64(time.Second))
}

// ModelGap returns the pause inserted between models.
func (c Config) ModelGap() time.Duration {
	if c.ModelGapSeconds <= 0 {
		return defaultModelGap
	}
	return time.Duration(c.ModelGapSeconds * float64(time.Second))
}

// OutputTokenLimit returns the per-turn output token cap, applying the default if unset.
func (c Config) OutputTokenLimit() int {
	if c.MaxOutputTokens <= 0 {
		return defaultMaxOutputTokens
	}
	return c.MaxOutputTokens
}

// SamplingTemperature returns the configured temperature, applying the default if unset.
func (c Config) SamplingTemperature() float64 {
	if c.Temperature <= 0 {
		return defaultTemperature
	}
	return c.Temperature
}

// EndpointURL returns the API base URL, choosing the hosted Gemini
// compatibility endpoint if no override is configured.
func (c Config) EndpointURL() string {
	if u := strings.TrimSpace(c.BaseURL); u != "" {
		return u
	}
	return DefaultEndpointURL
}

// ResultsPath returns the directory where run artifacts are written.
func (c Config) ResultsPath() string {
	if dir := strings.TrimSpace(c.ResultsDir); dir != "" {
		return dir
	}
	return "results"
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := strings.TrimSpace(c.LogFile); path != "" {
		return path
	}
	return "gembench.log"
}

// Validate checks the semantic requirements a benchmark run depends on.
// It is called before any network activity.
func (c Config) Validate() error {
	if len(c.Models) == 0 {
		return errors.New("config must list at least one model")
	}
	for _, m := range c.Models {
		if strings.TrimSpace(m) == "" {
			return errors.New("config contains an empty model identifier")
		}
	}
	if len(c.Prompts) == 0 {
		return errors.New("config must list at least one prompt turn")
	}
	for _, p := range c.Prompts {
		if strings.TrimSpace(p) == "" {
			return errors.New("config contains an empty prompt")
		}
	}
	return nil
}

// ResolveCredential reads the API key from the environment into the config.
// Missing credentials fail here, before any request is attempted.
func (c *Config) ResolveCredential() error {
	key := strings.TrimSpace(os.Getenv(APIKeyEnvVar))
	if key == "" {
		return ErrMissingAPIKey
	}
	c.APIKey = key
	return nil
}
