// internal/metrics/types.go
package metrics

import "time"

// RunningStat holds an online aggregate of a single metric.
type RunningStat struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	M2    float64 `json:"m2"`
}

// ModelMetrics holds the accumulated statistics for one model across runs.
type ModelMetrics struct {
	ModelName       string      `json:"modelName"`
	LastUpdatedUTC  time.Time   `json:"lastUpdatedUTC"`
	TotalTurns      int         `json:"totalTurns"`
	TTFBMillis      RunningStat `json:"ttfbMillis"`
	TotalTimeMillis RunningStat `json:"totalTimeMillis"`
	CharsPerSecond  RunningStat `json:"charsPerSecond"`
}
