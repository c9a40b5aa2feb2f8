// Package simulation drives a fermentation run forward in time.
//
// A Run owns the only mutable state of a simulation: the clock, the
// play/pause flags, the speed multiplier and the accumulated trajectory.
// Each tick evaluates the stateless kinetics model at the new time, so a
// run and a direct kinetics.Evaluate call agree at every recorded t.
//
// A Run is not safe for concurrent use. Distinct runs are independent.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
	"github.com/alsnogtix/simuladorFermentacao/internal/logger"
	"github.com/alsnogtix/simuladorFermentacao/internal/prediction"
)

// ErrInvalidSpeed indicates a non-positive or non-finite speed multiplier.
var ErrInvalidSpeed = errors.New("simulation: speed must be a positive number")

// DefaultSpeed advances the clock one simulated minute per tick.
const DefaultSpeed = 1.0

// Point is one recorded sample of a run.
type Point struct {
	TMin  float64                    `json:"t_min"`
	State kinetics.FermentationState `json:"state"`
}

// Run is a single fermentation being stepped through time.
type Run struct {
	params   kinetics.ProcessParameters
	speed    float64
	clock    float64
	running  bool
	paused   bool
	finished bool
	points   []Point
}

// NewRun prepares an idle run for params at DefaultSpeed.
func NewRun(params kinetics.ProcessParameters) *Run {
	return &Run{params: params, speed: DefaultSpeed}
}

// Params returns the run's process parameters.
func (r *Run) Params() kinetics.ProcessParameters { return r.params }

// Speed returns the simulated minutes added per tick.
func (r *Run) Speed() float64 { return r.speed }

// Clock returns the current simulated time in minutes.
func (r *Run) Clock() float64 { return r.clock }

// Running reports whether the run has been started and not yet finished.
func (r *Run) Running() bool { return r.running }

// Paused reports whether ticking is suspended.
func (r *Run) Paused() bool { return r.paused }

// Finished reports whether the clock reached the fermentation duration.
func (r *Run) Finished() bool { return r.finished }

// SetSpeed changes the minutes added per tick. It may be called at any time.
func (r *Run) SetSpeed(speed float64) error {
	if !(speed > 0) || math.IsInf(speed, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSpeed, speed)
	}
	r.speed = speed
	return nil
}

// Start clears any previous trajectory and begins ticking from t = 0.
func (r *Run) Start() {
	r.Reset()
	r.running = true
	logger.L().Debug("simulation.start", "duration_min", r.params.DurationMin, "speed", r.speed)
}

// Pause suspends ticking.
func (r *Run) Pause() { r.paused = true }

// Resume continues a paused run. A finished run stays finished.
func (r *Run) Resume() {
	if r.finished {
		return
	}
	r.paused = false
}

// TogglePause flips between paused and resumed.
func (r *Run) TogglePause() {
	if r.paused {
		r.Resume()
		return
	}
	r.Pause()
}

// Reset returns the run to its idle state and drops the trajectory.
// The speed multiplier is kept.
func (r *Run) Reset() {
	r.clock = 0
	r.running = false
	r.paused = false
	r.finished = false
	r.points = nil
}

// Tick advances the clock by the speed multiplier and records the state at
// the new time. It reports false when the run is idle, paused or finished.
// When the clock reaches the duration it is clamped there and the run
// finishes; the final point keeps the time it was evaluated at.
func (r *Run) Tick() (Point, bool) {
	if !r.running || r.paused {
		return Point{}, false
	}
	r.clock += r.speed
	pt := Point{TMin: r.clock, State: kinetics.Evaluate(r.clock, r.params)}
	r.points = append(r.points, pt)

	if r.clock >= r.params.DurationMin {
		r.clock = r.params.DurationMin
		r.running = false
		r.paused = true
		r.finished = true
		logger.L().Debug("simulation.finished", "points", len(r.points), "t_min", pt.TMin)
	}
	return pt, true
}

// RunToCompletion starts the run if needed and ticks until it finishes or
// ctx is done.
func (r *Run) RunToCompletion(ctx context.Context) error {
	if r.finished {
		return nil
	}
	if !r.running {
		r.Start()
	}
	r.paused = false
	for !r.finished {
		if err := ctx.Err(); err != nil {
			logger.L().Debug("simulation.cancelled", "t_min", r.clock)
			return err
		}
		r.Tick()
	}
	return nil
}

// Points returns a copy of the recorded trajectory.
func (r *Run) Points() []Point {
	return append([]Point(nil), r.points...)
}

// Len returns the number of recorded points.
func (r *Run) Len() int { return len(r.points) }

// Latest returns the most recent point, or false before the first tick.
func (r *Run) Latest() (Point, bool) {
	if len(r.points) == 0 {
		return Point{}, false
	}
	return r.points[len(r.points)-1], true
}

// Progress is the fraction of the duration elapsed, in [0, 1].
func (r *Run) Progress() float64 {
	if r.params.DurationMin <= 0 {
		return 0
	}
	return math.Min(1, r.clock/r.params.DurationMin)
}

// Times returns the recorded sample times in minutes.
func (r *Run) Times() []float64 {
	out := make([]float64, len(r.points))
	for i, pt := range r.points {
		out[i] = pt.TMin
	}
	return out
}

// Series returns one reading across the trajectory, for charting.
func (r *Run) Series(q kinetics.Quantity) []float64 {
	out := make([]float64, len(r.points))
	for i, pt := range r.points {
		out[i] = pt.State.Get(q)
	}
	return out
}

// States returns the recorded states in time order.
func (r *Run) States() []kinetics.FermentationState {
	out := make([]kinetics.FermentationState, len(r.points))
	for i, pt := range r.points {
		out[i] = pt.State
	}
	return out
}

// Summary condenses the trajectory for analysis.
func (r *Run) Summary() prediction.Summary {
	return prediction.Summarize(r.States(), r.params)
}

// Analysis explains the run so far.
func (r *Run) Analysis() []prediction.Finding {
	return prediction.Analyze(r.Summary(), r.params)
}

// Classification returns the live category of the latest state, or of the
// initial condition before the first tick.
func (r *Run) Classification() prediction.Result {
	state := kinetics.InitialState(r.params)
	if pt, ok := r.Latest(); ok {
		state = pt.State
	}
	return prediction.Classify(state, r.params)
}
