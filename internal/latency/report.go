// internal/latency/report.go
package latency

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/gembench/internal/util"
)

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	columnStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const missingCell = "N/A"

// PrintReport renders a side-by-side comparison table: one column per model,
// one row per metric. Models that failed mid-run show N/A for the turns they
// never reached.
func PrintReport(w io.Writer, report RunReport) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, reportTitleStyle.Render("Latency Comparison"))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprint(tw, "Metric")
	for _, mr := range report.Models {
		fmt.Fprintf(tw, "\t%s", columnStyle.Render(mr.Model))
	}
	fmt.Fprintln(tw)

	maxTurns := 0
	for _, mr := range report.Models {
		maxTurns = util.Max(maxTurns, len(mr.Measurements))
	}

	for turn := 1; turn <= maxTurns; turn++ {
		printRow(tw, report, fmt.Sprintf("Turn %d TTFB (s)", turn), func(m TurnMeasurement) string {
			return util.FormatSeconds(m.TimeToFirstByte.Duration())
		}, turn)
		printRow(tw, report, fmt.Sprintf("Turn %d total (s)", turn), func(m TurnMeasurement) string {
			return util.FormatSeconds(m.TotalTime.Duration())
		}, turn)
		printRow(tw, report, fmt.Sprintf("Turn %d length (chars)", turn), func(m TurnMeasurement) string {
			return fmt.Sprintf("%d", m.ResponseLength)
		}, turn)
		printRow(tw, report, fmt.Sprintf("Turn %d gap (s)", turn), func(m TurnMeasurement) string {
			if m.ObservedGap == 0 {
				return missingCell
			}
			return util.FormatSeconds(m.ObservedGap.Duration())
		}, turn)
	}

	fmt.Fprint(tw, "Total length (chars)")
	for _, mr := range report.Models {
		fmt.Fprintf(tw, "\t%d", mr.Summary.TotalLength)
	}
	fmt.Fprintln(tw)

	fmt.Fprint(tw, "Total time (s)")
	for _, mr := range report.Models {
		fmt.Fprintf(tw, "\t%s", util.FormatSeconds(mr.Summary.TotalTime.Duration()))
	}
	fmt.Fprintln(tw)

	fmt.Fprint(tw, "Avg speed (chars/s)")
	for _, mr := range report.Models {
		if mr.Summary.TotalTime > 0 {
			fmt.Fprintf(tw, "\t%.1f", mr.Summary.AverageSpeed)
		} else {
			fmt.Fprintf(tw, "\t%s", missingCell)
		}
	}
	fmt.Fprintln(tw)

	fmt.Fprint(tw, "Status")
	for _, mr := range report.Models {
		if mr.Error != "" {
			fmt.Fprintf(tw, "\t%s", failedStyle.Render("failed"))
		} else {
			fmt.Fprint(tw, "\tok")
		}
	}
	fmt.Fprintln(tw)

	tw.Flush()

	for _, mr := range report.Models {
		if mr.Error != "" {
			fmt.Fprintln(w, failedStyle.Render(fmt.Sprintf("%s: %s", mr.Model, mr.Error)))
		}
	}
	fmt.Fprintln(w)
}

// printRow emits one per-turn metric row, filling N/A where a model has no
// measurement for that turn.
func printRow(w io.Writer, report RunReport, label string, cell func(TurnMeasurement) string, turn int) {
	fmt.Fprint(w, label)
	for _, mr := range report.Models {
		if turn <= len(mr.Measurements) {
			fmt.Fprintf(w, "\t%s", cell(mr.Measurements[turn-1]))
		} else {
			fmt.Fprintf(w, "\t%s", missingCell)
		}
	}
	fmt.Fprintln(w)
}

// reportFilename derives the artifact name from the run's start time, so
// successive runs never overwrite each other.
func reportFilename(report RunReport) string {
	return "performance_test_" + report.StartedAt.Format("20060102_150405") + ".json"
}

// writeReport persists the run report as indented JSON under dir and returns
// the full path written.
func writeReport(dir string, report RunReport) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create results directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not serialize report: %w", err)
	}

	path := filepath.Join(dir, reportFilename(report))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("could not write report: %w", err)
	}
	return path, nil
}
