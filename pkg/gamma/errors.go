package gamma

import "fmt"

// InvalidChannelBoundsError is returned when a channel's minimum intensity
// exceeds its maximum. Both offending values are kept so the caller can
// report exactly what was supplied.
type InvalidChannelBoundsError struct {
	Min float64
	Max float64
}

func (e *InvalidChannelBoundsError) Error() string {
	return fmt.Sprintf("channel minimum %.3f is greater than maximum %.3f", e.Min, e.Max)
}

// InvalidScheduleError is returned when the three phase boundaries satisfy
// none of the valid cyclic orderings of day -> dusk -> night.
type InvalidScheduleError struct {
	DayStart   float64
	DuskStart  float64
	NightStart float64
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf(
		"phase boundaries day=%.4f dusk=%.4f night=%.4f violate the day -> dusk -> night cycle order",
		e.DayStart, e.DuskStart, e.NightStart,
	)
}
