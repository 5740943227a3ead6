package gamma

// rotation identifies which of the three valid cyclic orderings of the
// phase boundaries a schedule satisfies. Because the boundaries live on a
// 24-hour cycle there is no single total order; exactly one rotation holds
// for every valid schedule, and the classifier switches over it. Resolving
// the rotation once at construction keeps midnight wrap-around casework
// out of the hot path and makes the "no rotation matched" arm impossible
// at classification time.
type rotation int

const (
	// rotDayDuskNight: day <= dusk <= night, no interval wraps midnight.
	rotDayDuskNight rotation = iota
	// rotNightDayDusk: night <= day <= dusk, dusk wraps across midnight.
	rotNightDayDusk
	// rotDuskNightDay: dusk <= night <= day, day wraps across midnight.
	rotDuskNightDay
)

// Schedule is a validated triple of phase boundaries, each a fraction of
// the 24-hour cycle in [0,1). Immutable once constructed.
type Schedule struct {
	dayStart   float64
	duskStart  float64
	nightStart float64
	rot        rotation
}

// NewSchedule validates the cyclic ordering of the three boundaries and
// returns the schedule with its rotation resolved.
func NewSchedule(dayStart, duskStart, nightStart float64) (Schedule, error) {
	s := Schedule{
		dayStart:   dayStart,
		duskStart:  duskStart,
		nightStart: nightStart,
	}
	switch {
	case dayStart <= duskStart && duskStart <= nightStart:
		s.rot = rotDayDuskNight
	case nightStart <= dayStart && dayStart <= duskStart:
		s.rot = rotNightDayDusk
	case duskStart <= nightStart && nightStart <= dayStart:
		s.rot = rotDuskNightDay
	default:
		return Schedule{}, &InvalidScheduleError{
			DayStart:   dayStart,
			DuskStart:  duskStart,
			NightStart: nightStart,
		}
	}
	return s, nil
}

func (s Schedule) DayStart() float64   { return s.dayStart }
func (s Schedule) DuskStart() float64  { return s.duskStart }
func (s Schedule) NightStart() float64 { return s.nightStart }

// WithDayStart returns a copy with the day boundary replaced, re-validated
// against the other two.
func (s Schedule) WithDayStart(dayStart float64) (Schedule, error) {
	return NewSchedule(dayStart, s.duskStart, s.nightStart)
}

// WithDuskStart returns a copy with the dusk boundary replaced,
// re-validated against the other two.
func (s Schedule) WithDuskStart(duskStart float64) (Schedule, error) {
	return NewSchedule(s.dayStart, duskStart, s.nightStart)
}

// WithNightStart returns a copy with the night boundary replaced,
// re-validated against the other two.
func (s Schedule) WithNightStart(nightStart float64) (Schedule, error) {
	return NewSchedule(s.dayStart, s.duskStart, nightStart)
}
