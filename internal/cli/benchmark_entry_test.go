package gembench

import (
	"testing"

	"github.com/mwiater/gembench/internal/appconfig"
)

func TestRedactConfigStripsCredential(t *testing.T) {
	cfg := &appconfig.Config{
		Models:  []string{"gemini-2.5-flash"},
		Prompts: []string{"Hello!"},
		APIKey:  "super-secret",
	}

	redacted := redactConfig(cfg)

	if redacted.APIKey != "" {
		t.Fatalf("credential survived redaction: %q", redacted.APIKey)
	}
	if cfg.APIKey != "super-secret" {
		t.Fatal("redaction must not mutate the original config")
	}
	if len(redacted.Models) != 1 || len(redacted.Prompts) != 1 {
		t.Fatalf("redaction dropped config fields: %+v", redacted)
	}
}
