// Package types holds the wire structures shared between the daemon and
// its clients.
package types

// GammaStatus is the daemon's view of the currently applied gamma.
type GammaStatus struct {
	Red      float64 `json:"red"`
	Green    float64 `json:"green"`
	Blue     float64 `json:"blue"`
	Phase    string  `json:"phase"`
	Progress float64 `json:"progress,omitempty"`
	// Time is the evaluated time of day as a fraction of the cycle.
	Time float64 `json:"time"`
	// Backend names the display mechanism in use, e.g. "xrandr".
	Backend string `json:"backend"`
	// Formatted is the vector in the backend's native syntax.
	Formatted string `json:"formatted"`
	// SolarActive reports whether the schedule currently in effect was
	// derived from the sun rather than fixed clock times.
	SolarActive bool `json:"solarActive"`
}

// SchedulePayload carries the three phase boundaries as "HH:MM" strings.
type SchedulePayload struct {
	DayStart   string `json:"dayStart"`
	DuskStart  string `json:"duskStart"`
	NightStart string `json:"nightStart"`
}

// ChannelPayload carries one channel's bounds.
type ChannelPayload struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SolarPayload configures the solar schedule mode.
type SolarPayload struct {
	Enabled   bool    `json:"enabled"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
