// internal/latency/aggregate.go
package latency

// Summarize derives a ModelSummary from an ordered sequence of turn
// measurements. It is a pure function: no I/O, no hidden state, and running
// it twice on the same input yields identical output. Zero measurements
// produce a zero summary with AverageSpeed left at zero.
func Summarize(model string, measurements []TurnMeasurement) ModelSummary {
	summary := ModelSummary{Model: model, Turns: len(measurements)}

	for _, m := range measurements {
		summary.TotalLength += m.ResponseLength
		summary.TotalTime += m.TotalTime
	}

	if summary.TotalTime > 0 {
		summary.AverageSpeed = float64(summary.TotalLength) / summary.TotalTime.Secs()
	}
	return summary
}
