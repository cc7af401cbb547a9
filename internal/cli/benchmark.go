// internal/cli/benchmark.go
package gembench

import "github.com/spf13/cobra"

// benchmarkCmd implements 'benchmark', which runs the full conversational
// latency suite against every configured model, sequentially.
var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Measure per-turn streaming latency for each configured model",
	Long:  `The 'benchmark' command replays the configured multi-turn conversation against each model in order, measuring time to first byte, total response time, and response length per turn, then prints a comparison table and writes a timestamped JSON results file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmark()
	},
}

func init() {
	rootCmd.AddCommand(benchmarkCmd)
}
