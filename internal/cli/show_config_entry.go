package gembench

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func runShowConfig() {
	file := viper.ConfigFileUsed()
	if file == "" {
		fmt.Println("No config file loaded (using defaults).")
	} else {
		fmt.Printf("Config file: %s\n\n", file)
	}

	cfg := GetConfig()
	fmt.Println("Current configuration:")
	if cfg == nil {
		fmt.Printf("  Debug: %v\n", viper.GetBool("debug"))
		return
	}

	fmt.Printf("  Models:            %s\n", strings.Join(cfg.Models, ", "))
	fmt.Printf("  Turns:             %d\n", len(cfg.Prompts))
	fmt.Printf("  Turn Gap:          %s\n", cfg.TurnGap())
	fmt.Printf("  Model Gap:         %s\n", cfg.ModelGap())
	fmt.Printf("  Max Output Tokens: %d\n", cfg.OutputTokenLimit())
	fmt.Printf("  Temperature:       %.2f\n", cfg.SamplingTemperature())
	fmt.Printf("  Reasoning Effort:  %s\n", valueOrDefault(cfg.ReasoningEffort, "(provider default)"))
	fmt.Printf("  Request Timeout:   %s\n", cfg.RequestTimeout())
	fmt.Printf("  Endpoint:          %s\n", cfg.EndpointURL())
	fmt.Printf("  Results Dir:       %s\n", cfg.ResultsPath())
	fmt.Printf("  Log File:          %s\n", cfg.LogFilePath())
	fmt.Printf("  Debug:             %v\n", cfg.Debug)
}

func valueOrDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
