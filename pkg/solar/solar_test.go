package solar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusklight/dusk/pkg/gamma"
)

var madrid = Location{Latitude: 40.42, Longitude: -3.70}

func TestScheduleMidLatitude(t *testing.T) {
	day := time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC)

	s, ok := Schedule(madrid, day)
	require.True(t, ok, "the sun rises and sets in Madrid in June")

	// Sunrise before sunset before nightfall, all on the same day.
	assert.Less(t, s.DayStart(), s.DuskStart())
	assert.Less(t, s.DuskStart(), s.NightStart())

	// Coarse sanity: sunrise in the morning hours, sunset in the evening
	// (times are UTC, close to Madrid local solar time).
	assert.InDelta(t, 4.5/24.0, s.DayStart(), 1.5/24.0)
	assert.InDelta(t, 19.5/24.0, s.DuskStart(), 1.5/24.0)

	// The derived schedule classifies like any other: midday is day,
	// deep night is night.
	assert.Equal(t, gamma.Day, s.Phase(12.0/24.0).Kind)
	assert.Equal(t, gamma.Night, s.Phase(2.0/24.0).Kind)
}

func TestScheduleWinterShorterDay(t *testing.T) {
	summer, ok := Schedule(madrid, time.Date(2026, 6, 21, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	winter, ok := Schedule(madrid, time.Date(2026, 12, 21, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)

	summerLen := summer.DuskStart() - summer.DayStart()
	winterLen := winter.DuskStart() - winter.DayStart()
	assert.Greater(t, summerLen, winterLen, "June daylight outlasts December daylight")
}

func TestSchedulePolar(t *testing.T) {
	svalbard := Location{Latitude: 78.22, Longitude: 15.65}

	// Midnight sun: the sun never sets.
	_, ok := Schedule(svalbard, time.Date(2026, 6, 21, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)

	// Polar night: the sun never rises.
	_, ok = Schedule(svalbard, time.Date(2026, 12, 21, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}
