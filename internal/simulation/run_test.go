package simulation

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
)

func testParams(duration float64) kinetics.ProcessParameters {
	return kinetics.ProcessParameters{
		FlourG:        1000,
		WaterFraction: 0.68,
		TemperatureC:  30,
		SugarAddedG:   20,
		SaltG:         15,
		DurationMin:   duration,
	}
}

func TestTickIdleAndPaused(t *testing.T) {
	r := NewRun(testParams(10))
	_, ok := r.Tick()
	assert.False(t, ok, "idle run must not tick")

	r.Start()
	r.Pause()
	_, ok = r.Tick()
	assert.False(t, ok, "paused run must not tick")
	assert.Zero(t, r.Len())

	r.Resume()
	pt, ok := r.Tick()
	require.True(t, ok)
	assert.Equal(t, 1.0, pt.TMin)
}

func TestTickMatchesEvaluate(t *testing.T) {
	p := testParams(30)
	r := NewRun(p)
	require.NoError(t, r.SetSpeed(2))
	r.Start()
	for r.Running() {
		r.Tick()
	}
	for _, pt := range r.Points() {
		assert.Equal(t, kinetics.Evaluate(pt.TMin, p), pt.State, "t=%v", pt.TMin)
	}
	assert.Equal(t, 15, r.Len())
}

func TestFinishClampsClock(t *testing.T) {
	r := NewRun(testParams(10))
	require.NoError(t, r.SetSpeed(4))
	r.Start()
	for i := 0; i < 10; i++ {
		r.Tick()
	}
	assert.True(t, r.Finished())
	assert.True(t, r.Paused())
	assert.False(t, r.Running())
	assert.Equal(t, 10.0, r.Clock())
	assert.Equal(t, []float64{4, 8, 12}, r.Times())
	assert.Equal(t, 1.0, r.Progress())

	r.Resume()
	assert.True(t, r.Paused(), "finished run stays paused")
	_, ok := r.Tick()
	assert.False(t, ok)
}

func TestResetKeepsSpeed(t *testing.T) {
	r := NewRun(testParams(10))
	require.NoError(t, r.SetSpeed(5))
	r.Start()
	r.Tick()
	r.Reset()
	assert.Zero(t, r.Len())
	assert.Zero(t, r.Clock())
	assert.False(t, r.Running())
	assert.False(t, r.Finished())
	assert.Equal(t, 5.0, r.Speed())
	_, ok := r.Latest()
	assert.False(t, ok)
}

func TestSetSpeedRejectsInvalid(t *testing.T) {
	r := NewRun(testParams(10))
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, r.SetSpeed(v), ErrInvalidSpeed, "speed %v", v)
	}
	assert.Equal(t, DefaultSpeed, r.Speed())
}

func TestTogglePause(t *testing.T) {
	r := NewRun(testParams(10))
	r.Start()
	r.TogglePause()
	assert.True(t, r.Paused())
	r.TogglePause()
	assert.False(t, r.Paused())
}

func TestRunToCompletion(t *testing.T) {
	p := testParams(240)
	r := NewRun(p)
	require.NoError(t, r.RunToCompletion(context.Background()))
	assert.True(t, r.Finished())
	assert.Equal(t, 240, r.Len())

	last, ok := r.Latest()
	require.True(t, ok)
	assert.Equal(t, kinetics.Evaluate(240, p), last.State)
	require.NoError(t, r.RunToCompletion(context.Background()), "finished run is a no-op")
	assert.Equal(t, 240, r.Len())
}

func TestRunToCompletionCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRun(testParams(240))
	err := r.RunToCompletion(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, r.Finished())
}

func TestSeriesAndSummary(t *testing.T) {
	p := testParams(60)
	r := NewRun(p)
	require.NoError(t, r.RunToCompletion(context.Background()))

	volumes := r.Series(kinetics.QuantityVolume)
	require.Len(t, volumes, 60)
	for i := 1; i < len(volumes); i++ {
		assert.GreaterOrEqual(t, volumes[i], volumes[i-1])
	}
	sum := r.Summary()
	assert.Equal(t, volumes[len(volumes)-1], sum.MaxVolume)
	assert.Equal(t, 60, sum.Points)
	assert.Len(t, r.Analysis(), 3)
}

func TestClassificationBeforeFirstTick(t *testing.T) {
	r := NewRun(testParams(60))
	got := r.Classification()
	assert.Equal(t, "SLOW", string(got.Category))
}

func TestProgressZeroDuration(t *testing.T) {
	r := NewRun(testParams(0))
	assert.Zero(t, r.Progress())
}
