package gembench

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/gembench/internal/gemini"
)

var (
	modelsHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	modelNameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func runListModels(ctx context.Context) error {
	cfg := GetConfig()
	if cfg == nil {
		return errors.New("configuration not loaded")
	}
	if err := cfg.ResolveCredential(); err != nil {
		return err
	}

	client := gemini.NewClient(cfg.APIKey, cfg.EndpointURL())
	names, err := client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("could not list models: %w", err)
	}

	fmt.Println(modelsHeaderStyle.Render("Available models:"))
	for _, name := range names {
		fmt.Printf("  %s\n", modelNameStyle.Render(name))
	}
	fmt.Printf("\n%d models available.\n", len(names))
	return nil
}
