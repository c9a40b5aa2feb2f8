// Package warnings flags recipes the model expects to ferment poorly.
package warnings

import (
	"fmt"

	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

// Warning codes.
const (
	CodeTemperatureOffOptimum   = "TEMPERATURE_OFF_OPTIMUM"
	CodeSaltInhibitsYeast       = "SALT_INHIBITS_YEAST"
	CodeHydrationOffOptimum     = "HYDRATION_OFF_OPTIMUM"
	CodePredictedDanger         = "PREDICTED_DANGER"
	CodePredictedSlow           = "PREDICTED_SLOW"
	CodeWarningNoiseModeInvalid = "WARNING_NOISE_MODE_INVALID"
)

// Severity labels whether a warning should be considered critical.
const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Warning represents a warning message.
type Warning struct {
	Code     string
	Subject  string
	Message  string
	Fix      string
	Details  []string
	Severity string
	// NoiseSuppressible marks warnings that can be hidden by conservative noise controls.
	// Critical warnings are never suppressed even if this flag is true.
	NoiseSuppressible bool
}

func (w Warning) String() string {
	s := fmt.Sprintf(messages.WarningLineFmt, w.Code, w.Message)
	s += fmt.Sprintf(messages.WarningSeverityLineFmt, w.severityOrDefault())
	s += fmt.Sprintf(messages.WarningSubjectLineFmt, w.Subject)
	s += fmt.Sprintf(messages.WarningFixLineFmt, w.Fix)
	for _, d := range w.Details {
		s += fmt.Sprintf(messages.WarningDetailsLineFmt, d)
	}
	return s
}

func (w Warning) severityOrDefault() string {
	if w.Severity == "" {
		return SeverityWarning
	}
	return w.Severity
}
