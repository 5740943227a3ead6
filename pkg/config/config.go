// Package config owns the on-disk configuration of dusk: channel bounds,
// the phase schedule, the apply interval, output selection and the solar
// mode.
package config

import (
	"time"

	"github.com/dusklight/dusk/pkg/gamma"
)

// Config is the configuration surface shared by the daemon and the
// one-shot commands.
type Config interface {
	// ChannelBounds returns the configured (min, max) for a channel
	// index (gamma.Red, gamma.Green, gamma.Blue).
	ChannelBounds(channel int) (min, max float64)
	// DayStart, DuskStart and NightStart are "HH:MM" clock strings.
	DayStart() string
	DuskStart() string
	NightStart() string
	Interval() time.Duration
	Outputs() []string
	SolarEnabled() bool
	Location() (lat, lon float64)
	SolarRefreshCron() string
	AllowNonRootAccess() bool

	SetChannelBounds(channel int, min, max float64)
	SetSchedule(dayStart, duskStart, nightStart string)
	SetInterval(seconds int)
	SetOutputs(outputs []string)
	SetSolarEnabled(bool)
	SetLocation(lat, lon float64)
	SetAllowNonRootAccess(bool)

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}

// Engine validates the configured schedule and channel bounds and builds
// the gamma engine from them. Validation failures carry the offending
// values and are surfaced to the caller, never clamped.
func Engine(c Config) (gamma.Engine, error) {
	day, err := gamma.ParseClock(c.DayStart())
	if err != nil {
		return gamma.Engine{}, err
	}
	dusk, err := gamma.ParseClock(c.DuskStart())
	if err != nil {
		return gamma.Engine{}, err
	}
	night, err := gamma.ParseClock(c.NightStart())
	if err != nil {
		return gamma.Engine{}, err
	}

	schedule, err := gamma.NewSchedule(day, dusk, night)
	if err != nil {
		return gamma.Engine{}, err
	}

	var channels [3]gamma.ChannelBounds
	for i := range channels {
		min, max := c.ChannelBounds(i)
		channels[i], err = gamma.NewChannelBounds(min, max)
		if err != nil {
			return gamma.Engine{}, err
		}
	}

	return gamma.NewEngine(schedule, channels), nil
}
