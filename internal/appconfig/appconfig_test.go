package appconfig

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Models:  []string{"gemini-2.5-flash", "gemini-2.0-flash"},
		Prompts: []string{"Hello!", "What is a black hole?"},
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	noModels := validConfig()
	noModels.Models = nil
	if err := noModels.Validate(); err == nil {
		t.Fatal("expected error for empty model list")
	}

	noPrompts := validConfig()
	noPrompts.Prompts = []string{}
	if err := noPrompts.Validate(); err == nil {
		t.Fatal("expected error for empty prompt list")
	}

	blankModel := validConfig()
	blankModel.Models = []string{"gemini-2.5-flash", "  "}
	if err := blankModel.Validate(); err == nil {
		t.Fatal("expected error for blank model identifier")
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config
	if got := cfg.TurnGap(); got != 500*time.Millisecond {
		t.Fatalf("default turn gap: %v", got)
	}
	if got := cfg.ModelGap(); got != time.Second {
		t.Fatalf("default model gap: %v", got)
	}
	if got := cfg.RequestTimeout(); got != 60*time.Second {
		t.Fatalf("default request timeout: %v", got)
	}
	if got := cfg.OutputTokenLimit(); got != 1024 {
		t.Fatalf("default output token limit: %d", got)
	}
	if got := cfg.EndpointURL(); got != DefaultEndpointURL {
		t.Fatalf("default endpoint: %s", got)
	}

	cfg.TurnGapSeconds = 0.25
	if got := cfg.TurnGap(); got != 250*time.Millisecond {
		t.Fatalf("configured turn gap: %v", got)
	}
	cfg.BaseURL = "http://localhost:8080/v1"
	if got := cfg.EndpointURL(); got != "http://localhost:8080/v1" {
		t.Fatalf("configured endpoint: %s", got)
	}
}

func TestResolveCredential(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "")
	cfg := validConfig()
	err := cfg.ResolveCredential()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if cfg.APIKey != "" {
		t.Fatalf("key should stay empty on failure: %q", cfg.APIKey)
	}

	t.Setenv(APIKeyEnvVar, "test-key")
	if err := cfg.ResolveCredential(); err != nil {
		t.Fatalf("resolve with key set: %v", err)
	}
	if cfg.APIKey != "test-key" {
		t.Fatalf("unexpected key: %q", cfg.APIKey)
	}
}

func TestValidateDocument(t *testing.T) {
	good := []byte(`{
		"models": ["gemini-2.5-flash"],
		"prompts": ["Hello!"],
		"turnGapSeconds": 0.5,
		"maxOutputTokens": 1024,
		"debug": false
	}`)
	if err := ValidateDocument(good); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}

	missingModels := []byte(`{"prompts": ["Hello!"]}`)
	err := ValidateDocument(missingModels)
	if err == nil {
		t.Fatal("expected error for missing models")
	}
	if !strings.Contains(err.Error(), "models") {
		t.Fatalf("error should mention models: %v", err)
	}

	badType := []byte(`{"models": ["m"], "prompts": ["p"], "timeout": "sixty"}`)
	if err := ValidateDocument(badType); err == nil {
		t.Fatal("expected error for wrong timeout type")
	}

	unknownField := []byte(`{"models": ["m"], "prompts": ["p"], "concurrency": 8}`)
	if err := ValidateDocument(unknownField); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
