package gembench

import (
	"errors"

	"github.com/k0kubun/pp"

	"github.com/mwiater/gembench/internal/appconfig"
	"github.com/mwiater/gembench/internal/latency"
	"github.com/mwiater/gembench/internal/logging"
)

func runBenchmark() error {
	cfg := GetConfig()
	if cfg == nil {
		return errors.New("configuration not loaded")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// Credential check happens before any network traffic.
	if err := cfg.ResolveCredential(); err != nil {
		return err
	}

	if err := logging.Init(cfg.LogFilePath()); err != nil {
		return err
	}
	defer logging.Close()

	if cfg.Debug {
		pp.Println(redactConfig(cfg))
	}

	return latency.RunBenchmark(cfg)
}

// redactConfig returns a copy safe for console dumps: the credential must
// never reach the screen or the log tee.
func redactConfig(cfg *appconfig.Config) appconfig.Config {
	redacted := *cfg
	redacted.APIKey = ""
	return redacted
}
