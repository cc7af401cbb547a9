// internal/latency/latency.go

// Package latency measures the responsiveness of hosted Gemini model
// variants under a fixed conversational script. Each model is measured
// fully before the next begins, so one model's latency is never perturbed
// by a concurrent request.
package latency

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/mwiater/gembench/internal/appconfig"
	"github.com/mwiater/gembench/internal/gemini"
	"github.com/mwiater/gembench/internal/logging"
	"github.com/mwiater/gembench/internal/metrics"
	"github.com/mwiater/gembench/internal/util"
)

// streamer is the slice of the gemini client the harness depends on.
type streamer interface {
	Stream(ctx context.Context, req gemini.StreamRequest, callbacks gemini.StreamCallbacks) error
}

var (
	newStreamer = func(cfg *appconfig.Config) streamer {
		return gemini.NewClient(cfg.APIKey, cfg.EndpointURL())
	}
	sleepFn        = time.Sleep
	writeReportFn  = writeReport
	historyFileFor = func(cfg *appconfig.Config) string {
		return filepath.Join(cfg.ResultsPath(), "data", "model_performance_metrics.json")
	}
)

// RunBenchmark executes the full latency suite for the configured models.
// Individual model failures are recorded and skipped; the run only fails on
// configuration problems detected before any request is sent.
func RunBenchmark(cfg *appconfig.Config) error {
	if cfg == nil {
		return errors.New("configuration is not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return appconfig.ErrMissingAPIKey
	}

	client := newStreamer(cfg)
	history := metrics.NewHistory(historyFileFor(cfg))

	log.Printf("Running latency benchmark with models: %s", strings.Join(cfg.Models, ", "))
	log.Printf("Conversation script: %d turns, %s between turns, %s between models",
		len(cfg.Prompts), cfg.TurnGap(), cfg.ModelGap())

	report := RunReport{StartedAt: time.Now()}
	for i, model := range cfg.Models {
		report.Models = append(report.Models, benchmarkModel(client, cfg, model))

		if i < len(cfg.Models)-1 {
			sleepFn(cfg.ModelGap())
		}
	}

	for _, mr := range report.Models {
		for _, m := range mr.Measurements {
			history.Record(m.Model, m.TimeToFirstByte.Duration(), m.TotalTime.Duration(), m.ResponseLength)
		}
	}
	if err := history.Save(); err != nil {
		log.Printf("could not save metrics history: %v", err)
	}

	PrintReport(os.Stdout, report)

	if path, err := writeReportFn(cfg.ResultsPath(), report); err != nil {
		// The console report above already happened; a failed artifact
		// write is reported but does not fail the run.
		log.Printf("could not write results file: %v", err)
	} else {
		log.Printf("Results written to %s", path)
	}

	return nil
}

// benchmarkModel measures every configured turn against one model. An API
// failure aborts the remaining turns for that model and is recorded on the
// report.
func benchmarkModel(client streamer, cfg *appconfig.Config, model string) ModelReport {
	mr := ModelReport{Model: model}
	var conversation []gemini.ChatMessage

	log.Printf("Testing model %s...", model)

	for i, prompt := range cfg.Prompts {
		turn := i + 1
		log.Printf("Turn %d: %s", turn, util.TruncateRunes(prompt, 50))

		measurement, reply, err := measureTurn(client, cfg, model, turn, conversation, prompt)
		if err != nil {
			mr.Error = err.Error()
			color.Red("  %s turn %d failed: %v", model, turn, err)
			color.Yellow("  skipping remaining turns for %s", model)
			break
		}

		// Replay-style multi-turn context: the provider holds no session
		// state, so each turn carries the full prior exchange.
		conversation = append(conversation,
			gemini.ChatMessage{Role: gemini.RoleUser, Content: prompt},
			gemini.ChatMessage{Role: gemini.RoleAssistant, Content: reply},
		)

		if i < len(cfg.Prompts)-1 {
			gapStart := time.Now()
			sleepFn(cfg.TurnGap())
			measurement.ObservedGap = Seconds(time.Since(gapStart))
		}

		mr.Measurements = append(mr.Measurements, measurement)

		color.Green("  turn %d: TTFB=%ss total=%ss chars=%d",
			turn,
			util.FormatSeconds(measurement.TimeToFirstByte.Duration()),
			util.FormatSeconds(measurement.TotalTime.Duration()),
			measurement.ResponseLength)
	}

	mr.Summary = Summarize(model, mr.Measurements)
	return mr
}

// measureTurn runs one streamed exchange and times it. It returns the
// measurement together with the full response text so the caller can extend
// the conversation history.
func measureTurn(client streamer, cfg *appconfig.Config, model string, turn int, conversation []gemini.ChatMessage, prompt string) (TurnMeasurement, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout())
	defer cancel()

	req := gemini.StreamRequest{
		Model:           model,
		History:         append(append([]gemini.ChatMessage{}, conversation...), gemini.ChatMessage{Role: gemini.RoleUser, Content: prompt}),
		SystemPrompt:    cfg.SystemPrompt,
		Temperature:     cfg.SamplingTemperature(),
		MaxOutputTokens: cfg.OutputTokenLimit(),
		ReasoningEffort: cfg.ReasoningEffort,
	}

	var bar *progressbar.ProgressBar
	if !cfg.Debug {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("streaming"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)
	}

	var (
		response   strings.Builder
		ttfb       time.Duration
		firstChunk = true
	)

	start := time.Now()
	err := client.Stream(ctx, req, gemini.StreamCallbacks{
		OnChunk: func(fragment string) error {
			if firstChunk {
				ttfb = time.Since(start)
				firstChunk = false
				logging.LogEvent("first chunk from %s (turn %d) after %s", model, turn, ttfb)
			}
			response.WriteString(fragment)
			if bar != nil {
				_ = bar.Add(utf8.RuneCountInString(fragment))
			}
			return nil
		},
		OnComplete: func(meta gemini.StreamMetadata) error {
			if meta.CompletionTokens > 0 {
				logging.LogEvent("%s turn %d usage: %d prompt / %d completion tokens",
					model, turn, meta.PromptTokens, meta.CompletionTokens)
			}
			return nil
		},
	})
	totalTime := time.Since(start)

	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return TurnMeasurement{}, "", err
	}

	text := response.String()
	return TurnMeasurement{
		Model:           model,
		Turn:            turn,
		TimeToFirstByte: Seconds(ttfb),
		TotalTime:       Seconds(totalTime),
		ResponseLength:  utf8.RuneCountInString(text),
	}, text, nil
}
