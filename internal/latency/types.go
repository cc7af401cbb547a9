// internal/latency/types.go
package latency

import (
	"encoding/json"
	"math"
	"time"
)

// Seconds is a duration that serializes to JSON as fractional seconds,
// rounded to the millisecond, so artifact values read in the same unit as
// the console report.
type Seconds time.Duration

// Duration returns the underlying time.Duration.
func (s Seconds) Duration() time.Duration { return time.Duration(s) }

// Secs returns the duration as a float64 number of seconds.
func (s Seconds) Secs() float64 { return time.Duration(s).Seconds() }

func (s Seconds) MarshalJSON() ([]byte, error) {
	return json.Marshal(math.Round(s.Secs()*1000) / 1000)
}

func (s *Seconds) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Seconds(time.Duration(v * float64(time.Second)))
	return nil
}

// TurnMeasurement records the timing of one prompt/response exchange with
// one model. It is created once per turn and never mutated afterwards.
type TurnMeasurement struct {
	Model           string  `json:"model"`
	Turn            int     `json:"turn"`
	TimeToFirstByte Seconds `json:"timeToFirstByte"`
	TotalTime       Seconds `json:"totalTime"`
	ResponseLength  int     `json:"responseLength"`
	ObservedGap     Seconds `json:"observedGap,omitempty"`
}

// ModelSummary holds the aggregate results derived from one model's turns.
// AverageSpeed is characters per second, zero when no time was measured.
type ModelSummary struct {
	Model        string  `json:"model"`
	Turns        int     `json:"turns"`
	TotalLength  int     `json:"totalLength"`
	TotalTime    Seconds `json:"totalTime"`
	AverageSpeed float64 `json:"averageSpeed"`
}

// ModelReport collects everything measured for one model during a run,
// including the error that aborted it, if any.
type ModelReport struct {
	Model        string            `json:"model"`
	Measurements []TurnMeasurement `json:"measurements"`
	Summary      ModelSummary      `json:"summary"`
	Error        string            `json:"error,omitempty"`
}

// RunReport is the unit of output for one benchmark execution. It carries
// per-turn measurements and derived summaries only; prompt and response
// text are deliberately excluded.
type RunReport struct {
	StartedAt time.Time     `json:"startedAt"`
	Models    []ModelReport `json:"models"`
}
