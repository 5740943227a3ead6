package gamma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T) Engine {
	t.Helper()

	schedule := mustSchedule(t, 5.0/24.0, 17.0/24.0, 21.0/24.0)

	red, err := NewChannelBounds(1.0, 1.0)
	require.NoError(t, err)
	green, err := NewChannelBounds(0.65, 1.0)
	require.NoError(t, err)
	blue, err := NewChannelBounds(0.45, 1.0)
	require.NoError(t, err)

	return NewEngine(schedule, [3]ChannelBounds{red, green, blue})
}

func TestEngineEvaluateDay(t *testing.T) {
	e := testEngine(t)

	v := e.Evaluate(12.0 / 24.0)
	assert.Equal(t, Neutral(), v, "noon is full brightness on every channel")
}

func TestEngineEvaluateDusk(t *testing.T) {
	e := testEngine(t)

	// 19:00 is halfway through the 17:00-21:00 transition.
	v := e.Evaluate(19.0 / 24.0)
	assert.InDelta(t, 1.0, v.Red(), epsilon)
	assert.InDelta(t, 0.65+0.35*0.5, v.Green(), epsilon)
	assert.InDelta(t, 0.45+0.55*0.5, v.Blue(), epsilon)
}

func TestEngineEvaluateNight(t *testing.T) {
	e := testEngine(t)

	v := e.Evaluate(23.0 / 24.0)
	assert.InDelta(t, 1.0, v.Red(), epsilon)
	assert.InDelta(t, 0.65, v.Green(), epsilon)
	assert.InDelta(t, 0.45, v.Blue(), epsilon)
}

func TestEngineContinuityAtBoundaries(t *testing.T) {
	e := testEngine(t)

	// Entering dusk is seamless: the first dusk instant equals the day value.
	day := e.Evaluate(17.0/24.0 - 1e-9)
	duskStart := e.Evaluate(17.0 / 24.0)
	for i := range day {
		assert.InDelta(t, day[i], duskStart[i], 1e-6, "channel %s", ChannelNames[i])
	}

	// Approaching night the ramp converges to the night value.
	almostNight := e.Evaluate(21.0/24.0 - 1e-9)
	night := e.Evaluate(21.0 / 24.0)
	for i := range night {
		assert.InDelta(t, night[i], almostNight[i], 1e-6, "channel %s", ChannelNames[i])
	}
}

func TestEngineEvaluateIsPure(t *testing.T) {
	e := testEngine(t)

	for _, now := range []float64{0.0, 5.0 / 24.0, 12.0 / 24.0, 19.0 / 24.0, 23.0 / 24.0} {
		first := e.Evaluate(now)
		second := e.Evaluate(now)
		assert.Equal(t, first, second, "evaluation must be bit-identical for now=%v", now)
	}
}

func TestEngineWrappedSchedule(t *testing.T) {
	schedule := mustSchedule(t, 10.0/24.0, 19.0/24.0, 1.0/24.0)
	red, err := NewChannelBounds(1.0, 1.0)
	require.NoError(t, err)
	green, err := NewChannelBounds(0.65, 1.0)
	require.NoError(t, err)
	blue, err := NewChannelBounds(0.45, 1.0)
	require.NoError(t, err)
	e := NewEngine(schedule, [3]ChannelBounds{red, green, blue})

	// Midnight falls inside the wrapped transition.
	width := 1.0 + 1.0/24.0 - 19.0/24.0
	progress := (1.0 + 0.0 - 19.0/24.0) / width
	v := e.Evaluate(0.0)
	assert.InDelta(t, 0.65+0.35*(1.0-progress), v.Green(), epsilon)
	assert.InDelta(t, 0.45+0.55*(1.0-progress), v.Blue(), epsilon)

	assert.Equal(t, Night, schedule.Phase(5.0/24.0).Kind)
	assert.Equal(t, Day, schedule.Phase(11.0/24.0).Kind)
}
