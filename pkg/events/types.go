package events

import "encoding/json"

// Event name constants
const (
	GammaApplied  = "gamma.applied"
	ConfigChanged = "config.changed"
)

// Event is a generic SSE event from the daemon.
type Event struct {
	Name string          // SSE event name
	Data json.RawMessage // Raw JSON payload
}

// GammaAppliedEvent is the typed payload for gamma.applied.
type GammaAppliedEvent struct {
	Red      float64  `json:"red"`
	Green    float64  `json:"green"`
	Blue     float64  `json:"blue"`
	Phase    string   `json:"phase"`
	Progress float64  `json:"progress,omitempty"`
	Outputs  []string `json:"outputs,omitempty"`
	Forced   bool     `json:"forced,omitempty"`
	Ts       int64    `json:"ts"`
}

// ConfigChangedEvent is the typed payload for config.changed.
type ConfigChangedEvent struct {
	Field   string `json:"field"`
	Message string `json:"message,omitempty"`
	Ts      int64  `json:"ts"`
}

// DecodeAs decodes the event payload into the caller-specified generic
// type T. It ignores the event name and simply unmarshals Data into T.
// If Data is empty, it returns the zero value of T with a nil error.
func DecodeAs[T any](e Event) (T, error) {
	var zero T
	if len(e.Data) == 0 {
		return zero, nil
	}
	var v T
	if err := json.Unmarshal(e.Data, &v); err != nil {
		return zero, err
	}
	return v, nil
}
