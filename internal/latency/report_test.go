package latency

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sampleReport(startedAt time.Time) RunReport {
	return RunReport{
		StartedAt: startedAt,
		Models: []ModelReport{
			{
				Model: "gemini-2.5-flash",
				Measurements: []TurnMeasurement{
					{Model: "gemini-2.5-flash", Turn: 1, TimeToFirstByte: Seconds(50 * time.Millisecond), TotalTime: Seconds(200 * time.Millisecond), ResponseLength: 100, ObservedGap: Seconds(500 * time.Millisecond)},
					{Model: "gemini-2.5-flash", Turn: 2, TimeToFirstByte: Seconds(40 * time.Millisecond), TotalTime: Seconds(150 * time.Millisecond), ResponseLength: 90},
				},
				Summary: ModelSummary{Model: "gemini-2.5-flash", Turns: 2, TotalLength: 190, TotalTime: Seconds(350 * time.Millisecond), AverageSpeed: 542.9},
			},
			{
				Model:   "gemini-2.5-pro",
				Summary: ModelSummary{Model: "gemini-2.5-pro"},
				Error:   "quota exceeded",
			},
		},
	}
}

func TestPrintReportTable(t *testing.T) {
	var buf bytes.Buffer
	PrintReport(&buf, sampleReport(time.Now()))
	out := buf.String()

	for _, want := range []string{
		"gemini-2.5-flash",
		"gemini-2.5-pro",
		"Turn 1 TTFB (s)",
		"Turn 2 total (s)",
		"Turn 1 gap (s)",
		"0.500",
		"0.050",
		"0.350",
		"542.9",
		"failed",
		"gemini-2.5-pro: quota exceeded",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}

	// The failed model has no measurements or elapsed time, so every
	// per-turn cell and its average speed render as N/A.
	if !strings.Contains(out, missingCell) {
		t.Fatalf("report should mark absent measurements as %s:\n%s", missingCell, out)
	}
}

func TestWriteReportFilenameFromStartTime(t *testing.T) {
	dir := t.TempDir()
	startedAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	path, err := writeReport(dir, sampleReport(startedAt))
	if err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	if got := filepath.Base(path); got != "performance_test_20260314_092653.json" {
		t.Fatalf("filename: %s", got)
	}

	var decoded RunReport
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if len(decoded.Models) != 2 || decoded.Models[0].Summary.TotalLength != 190 {
		t.Fatalf("round-tripped report: %+v", decoded)
	}
	if got := decoded.Models[0].Summary.TotalTime; got != Seconds(350*time.Millisecond) {
		t.Fatalf("round-tripped total time: %v", got.Duration())
	}

	// Durations are stored as fractional seconds, not raw nanoseconds.
	if !strings.Contains(string(data), `"totalTime": 0.35`) {
		t.Fatalf("artifact should encode durations in seconds:\n%s", data)
	}
	if strings.Contains(string(data), "350000000") {
		t.Fatalf("artifact contains nanosecond durations:\n%s", data)
	}

	// Timings only: prompts and responses must never reach the artifact.
	if strings.Contains(string(data), "Ganymede") {
		t.Fatalf("artifact contains response text:\n%s", data)
	}
}

func TestWriteReportDistinctRunsDistinctFiles(t *testing.T) {
	dir := t.TempDir()

	first := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	second := first.Add(time.Second)

	p1, err := writeReport(dir, sampleReport(first))
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	p2, err := writeReport(dir, sampleReport(second))
	if err != nil {
		t.Fatalf("second write: %v", err)
	}
	if p1 == p2 {
		t.Fatalf("consecutive runs overwrote the same artifact: %s", p1)
	}
}

func TestWriteReportCreatesResultsDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results", "nested")

	if _, err := writeReport(dir, sampleReport(time.Now())); err != nil {
		t.Fatalf("writeReport should create missing directories: %v", err)
	}
}
