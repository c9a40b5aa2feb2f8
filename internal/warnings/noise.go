package warnings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

const (
	// NoiseModeDefault keeps all warnings.
	NoiseModeDefault = "default"
	// NoiseModeReduce hides advisory recipe warnings while the predicted
	// outcome is acceptable.
	NoiseModeReduce = "reduce"
)

// outcomeCodes are the warnings about the predicted end state.
var outcomeCodes = []string{CodePredictedDanger, CodePredictedSlow}

// ApplyNoiseControl filters recipe warnings for the doctor --noise-mode value.
//
// In reduce mode a suppressible warning is dropped unless the same list also
// predicts a bad outcome: then the temperature, salt or hydration warning
// explains the outcome and stays. Critical warnings always stay. An unknown
// mode keeps everything and adds a critical warning naming the mode.
func ApplyNoiseControl(items []Warning, mode string) []Warning {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", NoiseModeDefault:
		if len(items) == 0 {
			return nil
		}
		return slices.Clone(items)
	case NoiseModeReduce:
		if hasOutcome(items) {
			return slices.Clone(items)
		}
		return slices.DeleteFunc(slices.Clone(items), func(w Warning) bool {
			return w.NoiseSuppressible && w.severityOrDefault() != SeverityCritical
		})
	default:
		return append(slices.Clone(items), Warning{
			Code:     CodeWarningNoiseModeInvalid,
			Subject:  "--noise-mode",
			Message:  fmt.Sprintf(messages.WarningsNoiseModeInvalidFmt, mode, NoiseModeDefault, NoiseModeReduce),
			Fix:      messages.WarningsNoiseModeInvalidFix,
			Severity: SeverityCritical,
		})
	}
}

func hasOutcome(items []Warning) bool {
	return slices.ContainsFunc(items, func(w Warning) bool {
		return slices.Contains(outcomeCodes, w.Code)
	})
}
