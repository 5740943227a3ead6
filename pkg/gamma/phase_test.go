package gamma

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func mustSchedule(t *testing.T, day, dusk, night float64) Schedule {
	t.Helper()
	s, err := NewSchedule(day, dusk, night)
	require.NoError(t, err)
	return s
}

func TestPhasePlainRotation(t *testing.T) {
	// day 05:00, dusk 17:00, night 21:00
	s := mustSchedule(t, 5.0/24.0, 17.0/24.0, 21.0/24.0)

	assert.Equal(t, Day, s.Phase(12.0/24.0).Kind)
	assert.Equal(t, Day, s.Phase(5.0/24.0).Kind, "day interval is closed at its start")
	assert.Equal(t, Night, s.Phase(23.0/24.0).Kind)
	assert.Equal(t, Night, s.Phase(1.0/24.0).Kind)
	assert.Equal(t, Night, s.Phase(21.0/24.0).Kind, "dusk interval is open at its end")

	p := s.Phase(19.0 / 24.0)
	require.Equal(t, Dusk, p.Kind)
	assert.InDelta(t, 0.5, p.Progress, epsilon, "19:00 is halfway between 17:00 and 21:00")

	p = s.Phase(17.0 / 24.0)
	require.Equal(t, Dusk, p.Kind)
	assert.InDelta(t, 0.0, p.Progress, epsilon, "dusk has just begun")
}

func TestPhaseWrappedDuskRotation(t *testing.T) {
	// Transition runs from 19:00 through midnight to 01:00.
	s := mustSchedule(t, 10.0/24.0, 19.0/24.0, 1.0/24.0)

	assert.Equal(t, Day, s.Phase(11.0/24.0).Kind)
	assert.Equal(t, Night, s.Phase(5.0/24.0).Kind)
	assert.Equal(t, Night, s.Phase(1.1/24.0).Kind)

	width := 1.0 + 1.0/24.0 - 19.0/24.0

	// Before midnight: plain offset into the transition.
	p := s.Phase(22.0 / 24.0)
	require.Equal(t, Dusk, p.Kind)
	assert.InDelta(t, (22.0/24.0-19.0/24.0)/width, p.Progress, epsilon)

	// At and after midnight: the wrapped side accumulates a full cycle.
	p = s.Phase(0.0)
	require.Equal(t, Dusk, p.Kind)
	assert.InDelta(t, (1.0+0.0-19.0/24.0)/width, p.Progress, epsilon)

	p = s.Phase(0.5 / 24.0)
	require.Equal(t, Dusk, p.Kind)
	assert.InDelta(t, (1.0+0.5/24.0-19.0/24.0)/width, p.Progress, epsilon)
}

func TestPhaseWrappedDayRotation(t *testing.T) {
	// Day runs from 22:00 through midnight to 06:00.
	s := mustSchedule(t, 22.0/24.0, 6.0/24.0, 14.0/24.0)

	assert.Equal(t, Day, s.Phase(23.0/24.0).Kind)
	assert.Equal(t, Day, s.Phase(0.0).Kind)
	assert.Equal(t, Day, s.Phase(3.0/24.0).Kind)
	assert.Equal(t, Night, s.Phase(18.0/24.0).Kind)

	p := s.Phase(10.0 / 24.0)
	require.Equal(t, Dusk, p.Kind)
	assert.InDelta(t, 0.5, p.Progress, epsilon)
}

func TestPhaseProgressMonotonicAcrossMidnight(t *testing.T) {
	s := mustSchedule(t, 10.0/24.0, 19.0/24.0, 1.0/24.0)

	prev := -1.0
	// Walk the whole transition minute by minute, crossing midnight.
	for m := 19 * 60; m < 25*60; m++ {
		now := math.Mod(float64(m)/(24.0*60.0), 1.0)
		p := s.Phase(now)
		require.Equal(t, Dusk, p.Kind, "minute %d", m)
		require.Greater(t, p.Progress, prev, "progress must strictly increase")
		require.GreaterOrEqual(t, p.Progress, 0.0)
		require.Less(t, p.Progress, 1.0)
		prev = p.Progress
	}

	// Shortly after 01:00 the transition is over.
	assert.Equal(t, Night, s.Phase(2.0/24.0).Kind)
}

func TestPhaseZeroWidthDusk(t *testing.T) {
	// With duskStart == nightStart the transition is never observed and
	// the schedule snaps from day straight to night.
	s := mustSchedule(t, 5.0/24.0, 21.0/24.0, 21.0/24.0)

	assert.Equal(t, Day, s.Phase(20.9/24.0).Kind)
	assert.Equal(t, Night, s.Phase(21.0/24.0).Kind)
	assert.Equal(t, Night, s.Phase(22.0/24.0).Kind)

	// Same shape in the rotation where day wraps midnight.
	s = mustSchedule(t, 22.0/24.0, 8.0/24.0, 8.0/24.0)
	assert.Equal(t, Day, s.Phase(23.0/24.0).Kind)
	assert.Equal(t, Day, s.Phase(7.9/24.0).Kind)
	assert.Equal(t, Night, s.Phase(8.0/24.0).Kind)
}

func TestPhaseConstantSchedule(t *testing.T) {
	// All boundaries equal: day and dusk intervals are empty, the whole
	// cycle is night.
	s := mustSchedule(t, 0.25, 0.25, 0.25)
	for _, now := range []float64{0.0, 0.1, 0.25, 0.5, 0.9} {
		assert.Equal(t, Night, s.Phase(now).Kind, "now=%v", now)
	}
}
