// Package solar derives a phase schedule from the sun's position at a
// geographic location, so the screen follows actual daylight instead of
// fixed clock times.
package solar

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sixdouglas/suncalc"

	"github.com/dusklight/dusk/pkg/gamma"
)

const (
	// dayElevationDeg is the sun altitude above which it counts as day.
	dayElevationDeg = 0.0
	// nightElevationDeg is the end of civil twilight; below it the
	// transition to night is complete.
	nightElevationDeg = -6.0

	scanStep = time.Minute
)

// Location is a geographic position used to compute sun altitude.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Schedule computes the day/dusk/night boundaries for the civil day
// containing t by scanning the sun's altitude minute by minute:
// day starts at sunrise, dusk at sunset, night when civil twilight ends.
//
// Near the poles the sun may never cross these elevations. In that case
// ok is false and the caller should fall back to its fixed schedule.
func Schedule(loc Location, t time.Time) (s gamma.Schedule, ok bool) {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	var (
		sunrise, sunset, nightfall time.Time
		up                         = altitudeDeg(loc, midnight) >= dayElevationDeg
		twilight                   = altitudeDeg(loc, midnight) >= nightElevationDeg
	)

	for m := 1; m <= 24*60; m++ {
		at := midnight.Add(time.Duration(m) * scanStep)
		alt := altitudeDeg(loc, at)

		nowUp := alt >= dayElevationDeg
		if nowUp && !up && sunrise.IsZero() {
			sunrise = at
		}
		if !nowUp && up && sunset.IsZero() {
			sunset = at
		}
		up = nowUp

		nowTwilight := alt >= nightElevationDeg
		// Nightfall is the twilight end after sunset, not the morning one.
		if !nowTwilight && twilight && !sunset.IsZero() && nightfall.IsZero() {
			nightfall = at
		}
		twilight = nowTwilight
	}

	if sunrise.IsZero() || sunset.IsZero() || nightfall.IsZero() {
		logrus.WithFields(logrus.Fields{
			"latitude":  loc.Latitude,
			"longitude": loc.Longitude,
			"date":      midnight.Format(time.DateOnly),
		}).Debug("sun does not cross day/night elevations today")
		return gamma.Schedule{}, false
	}

	s, err := gamma.NewSchedule(
		gamma.TimeOfDay(sunrise),
		gamma.TimeOfDay(sunset),
		gamma.TimeOfDay(nightfall),
	)
	if err != nil {
		// Possible when nightfall lands after midnight of the next day;
		// the boundaries then no longer follow the cycle order for this
		// date and the fixed schedule is the safer choice.
		logrus.WithError(err).Debug("solar boundaries do not form a valid schedule")
		return gamma.Schedule{}, false
	}
	return s, true
}

func altitudeDeg(loc Location, t time.Time) float64 {
	pos := suncalc.GetPosition(t, loc.Latitude, loc.Longitude)
	return pos.Altitude * (180.0 / math.Pi)
}
