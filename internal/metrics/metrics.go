// internal/metrics/metrics.go
// Package metrics keeps running per-model latency statistics across runs.
// The history file is supplementary: load and save failures are logged but
// never fail a benchmark run.
package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// History accumulates per-model running statistics and persists them to a
// single JSON file between runs.
type History struct {
	metrics  map[string]*ModelMetrics
	filePath string
}

// NewHistory creates a History backed by the given file, loading any
// previously saved statistics.
func NewHistory(filePath string) *History {
	h := &History{
		metrics:  make(map[string]*ModelMetrics),
		filePath: filePath,
	}
	h.load()
	return h
}

// load reads previously saved statistics into memory. A missing or
// unreadable file starts the history empty.
func (h *History) load() {
	data, err := os.ReadFile(h.filePath)
	if err != nil {
		return
	}

	var metricsSlice []*ModelMetrics
	if err := json.Unmarshal(data, &metricsSlice); err != nil {
		return
	}

	for _, m := range metricsSlice {
		h.metrics[m.ModelName] = m
	}
}

// Record folds one measured turn into the model's running statistics.
func (h *History) Record(model string, ttfb, totalTime time.Duration, responseLength int) {
	modelMetrics, exists := h.metrics[model]
	if !exists {
		modelMetrics = &ModelMetrics{ModelName: model}
		h.metrics[model] = modelMetrics
	}

	modelMetrics.LastUpdatedUTC = time.Now().UTC()
	modelMetrics.TotalTurns++

	updateRunningStat(&modelMetrics.TTFBMillis, float64(ttfb.Milliseconds()))
	updateRunningStat(&modelMetrics.TotalTimeMillis, float64(totalTime.Milliseconds()))

	var charsPerSecond float64
	if totalTime > 0 {
		charsPerSecond = float64(responseLength) / totalTime.Seconds()
	}
	updateRunningStat(&modelMetrics.CharsPerSecond, charsPerSecond)
}

// Lookup returns the running statistics for a model, or nil if none exist.
func (h *History) Lookup(model string) *ModelMetrics {
	return h.metrics[model]
}

// Save writes the current statistics back to the history file.
func (h *History) Save() error {
	metricsSlice := make([]*ModelMetrics, 0, len(h.metrics))
	for _, m := range h.metrics {
		metricsSlice = append(metricsSlice, m)
	}

	data, err := json.MarshalIndent(metricsSlice, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding metrics history: %w", err)
	}

	if dir := filepath.Dir(h.filePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating metrics directory: %w", err)
		}
	}
	if err := os.WriteFile(h.filePath, data, 0o644); err != nil {
		return fmt.Errorf("error writing metrics history: %w", err)
	}
	return nil
}

// updateRunningStat updates a single running statistic using Welford's online algorithm.
func updateRunningStat(rs *RunningStat, value float64) {
	rs.Count++
	if rs.Count == 1 {
		rs.Min = value
		rs.Max = value
	} else {
		if value < rs.Min {
			rs.Min = value
		}
		if value > rs.Max {
			rs.Max = value
		}
	}

	delta := value - rs.Mean
	rs.Mean += delta / float64(rs.Count)
	delta2 := value - rs.Mean
	rs.M2 += delta * delta2
}
