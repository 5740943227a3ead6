package gamma

// Engine combines a phase schedule with per-channel bounds into a single
// time -> gamma vector transform. Engines are immutable values; copying
// one is cheap and any number of goroutines may evaluate the same engine
// concurrently.
type Engine struct {
	schedule Schedule
	channels [3]ChannelBounds
}

// NewEngine builds an engine from an already-validated schedule and
// channel bounds, ordered red, green, blue.
func NewEngine(schedule Schedule, channels [3]ChannelBounds) Engine {
	return Engine{schedule: schedule, channels: channels}
}

func (e Engine) Schedule() Schedule            { return e.schedule }
func (e Engine) Channels() [3]ChannelBounds    { return e.channels }
func (e Engine) Channel(idx int) ChannelBounds { return e.channels[idx] }

// Evaluate computes the gamma vector for a time of day given as a
// fraction of the 24-hour cycle in [0,1). The phase is classified once
// and applied to all three channels, so they transition in lockstep; only
// their configured bounds differ.
func (e Engine) Evaluate(now float64) Vector {
	phase := e.schedule.Phase(now)
	var v Vector
	for i, c := range e.channels {
		v[i] = c.Value(phase)
	}
	return v
}
