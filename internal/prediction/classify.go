// Package prediction turns fermentation states into qualitative feedback:
// a live category for a single state and a post-run analysis of a trajectory.
package prediction

import (
	"fmt"

	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

// Category is the qualitative outcome of a fermentation state.
type Category string

const (
	// CategoryDanger flags an over-acidified dough or a degraded gluten network.
	CategoryDanger Category = "DANGER"
	// CategoryExcellent flags a dough more than 2.2 times its base volume.
	CategoryExcellent Category = "EXCELLENT"
	// CategoryModerate flags a dough more than 1.7 times its base volume.
	CategoryModerate Category = "MODERATE"
	// CategorySlow is everything else.
	CategorySlow Category = "SLOW"
)

// Classification thresholds.
const (
	DangerPH             = 4.1
	DangerRetention      = 60.0
	ExcellentVolumeRatio = 2.2
	ModerateVolumeRatio  = 1.7
)

// Severity orders categories for display; higher is more urgent.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityPrimary
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityPrimary:
		return "primary"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RGB is a display colour.
type RGB struct {
	R, G, B uint8
}

// Hex renders c as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color returns the display colour for the severity.
func (s Severity) Color() RGB {
	switch s {
	case SeveritySuccess:
		return RGB{65, 140, 75}
	case SeverityPrimary:
		return RGB{70, 130, 180}
	case SeverityWarning:
		return RGB{200, 150, 30}
	default:
		return RGB{190, 45, 45}
	}
}

// Result is the feedback for one state.
type Result struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Classify returns the first matching category in priority order
// DANGER, EXCELLENT, MODERATE, SLOW. The ranges overlap on purpose:
// a sour dough is DANGER no matter how far it rose.
func Classify(s kinetics.FermentationState, p kinetics.ProcessParameters) Result {
	base := p.BaseVolume()
	switch {
	case s.PH < DangerPH || s.GlutenRetention < DangerRetention:
		return Result{Category: CategoryDanger, Message: messages.PredictDanger, Severity: SeverityError}
	case s.Volume > base*ExcellentVolumeRatio:
		return Result{Category: CategoryExcellent, Message: messages.PredictExcellent, Severity: SeveritySuccess}
	case s.Volume > base*ModerateVolumeRatio:
		return Result{Category: CategoryModerate, Message: messages.PredictModerate, Severity: SeverityPrimary}
	default:
		return Result{Category: CategorySlow, Message: messages.PredictSlow, Severity: SeverityWarning}
	}
}

// Prediction is the expected final state of a fermentation with its feedback.
type Prediction struct {
	State kinetics.FermentationState `json:"state"`
	Result
}

// Predict evaluates the state at the end of the fermentation and classifies it.
func Predict(p kinetics.ProcessParameters) Prediction {
	state := kinetics.Evaluate(p.DurationMin, p)
	return Prediction{State: state, Result: Classify(state, p)}
}

// Lines renders the prediction as the readout shown by the CLI and the
// wizard: pH, volume, gluten retention and the feedback message.
func (p Prediction) Lines() []string {
	return []string{
		fmt.Sprintf(messages.PredictPHFmt, p.State.PH),
		fmt.Sprintf(messages.PredictVolumeFmt, p.State.Volume),
		fmt.Sprintf(messages.PredictRetentionFmt, p.State.GlutenRetention),
		fmt.Sprintf(messages.PredictAnalysisFmt, p.Message),
	}
}
