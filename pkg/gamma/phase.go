// Package gamma computes per-channel display gamma values that follow the
// day cycle: full brightness during the day, a configured warm minimum at
// night, and a linear transition across dusk. The whole package is pure
// value types; everything here is safe to share between goroutines.
package gamma

// PhaseKind enumerates the phases of the day cycle.
type PhaseKind int

const (
	// Day is the bright interval between dayStart and duskStart.
	Day PhaseKind = iota
	// Dusk is the transition interval between duskStart and nightStart.
	Dusk
	// Night is the dark interval between nightStart and dayStart.
	Night
)

func (k PhaseKind) String() string {
	switch k {
	case Day:
		return "day"
	case Dusk:
		return "dusk"
	default:
		return "night"
	}
}

// Phase classifies a moment of the day. Progress is meaningful only while
// Kind is Dusk: 0 means dusk just began, values approaching 1 mean night
// is about to start.
type Phase struct {
	Kind     PhaseKind
	Progress float64
}

// Phase classifies a time of day, given as a fraction of the 24-hour cycle
// in [0,1). Interval tests are uniformly half-open [start, end). Inputs
// outside [0,1) are a caller contract violation; the producer of the
// fraction guarantees the range.
//
// A zero-width dusk window (duskStart == nightStart) never yields Dusk:
// the Day/Night boundary sits directly at that point.
func (s Schedule) Phase(now float64) Phase {
	switch s.rot {
	case rotDayDuskNight:
		// All three intervals sit on the same side of midnight.
		switch {
		case now >= s.dayStart && now < s.duskStart:
			return Phase{Kind: Day}
		case now >= s.duskStart && now < s.nightStart:
			return Phase{
				Kind:     Dusk,
				Progress: (now - s.duskStart) / (s.nightStart - s.duskStart),
			}
		default:
			return Phase{Kind: Night}
		}
	case rotNightDayDusk:
		// Dusk crosses midnight; its width gains a full cycle.
		width := 1.0 + s.nightStart - s.duskStart
		switch {
		case now >= s.dayStart && now < s.duskStart:
			return Phase{Kind: Day}
		case now >= s.duskStart:
			return Phase{Kind: Dusk, Progress: (now - s.duskStart) / width}
		case now < s.nightStart:
			// Past midnight, still inside the wrapped transition.
			return Phase{Kind: Dusk, Progress: (1.0 + now - s.duskStart) / width}
		default:
			return Phase{Kind: Night}
		}
	default: // rotDuskNightDay
		// Day crosses midnight.
		switch {
		case now >= s.dayStart || now < s.duskStart:
			return Phase{Kind: Day}
		case now >= s.duskStart && now < s.nightStart:
			return Phase{
				Kind:     Dusk,
				Progress: (now - s.duskStart) / (s.nightStart - s.duskStart),
			}
		default:
			return Phase{Kind: Night}
		}
	}
}
