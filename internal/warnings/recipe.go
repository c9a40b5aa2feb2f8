package warnings

import (
	"fmt"

	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
	"github.com/alsnogtix/simuladorFermentacao/internal/prediction"
)

// Recipe thresholds.
const (
	// TemperatureActivityThreshold is the temperature factor below which the
	// proofing temperature is flagged.
	TemperatureActivityThreshold = 0.5
	// HydrationActivityThreshold is the water factor below which the
	// hydration is flagged.
	HydrationActivityThreshold = 0.75
	// MaxSaltFraction is the salt-to-flour ratio above which salt is flagged.
	MaxSaltFraction = 0.025
)

// CheckRecipe inspects the environment factors and the predicted end state
// of p. p must already be valid.
func CheckRecipe(p kinetics.ProcessParameters) []Warning {
	env := kinetics.ComputeEnvironment(p.TemperatureC, p.WaterFraction, p.SaltG, p.FlourG)
	details := []string{fmt.Sprintf(messages.WarningActivityDetailFmt, env.Temperature, env.Water, env.Salt, env.Combined)}

	var out []Warning
	if env.Temperature < TemperatureActivityThreshold {
		out = append(out, Warning{
			Code:              CodeTemperatureOffOptimum,
			Subject:           "temperature_c",
			Message:           fmt.Sprintf(messages.WarningTemperatureFmt, p.TemperatureC, env.Temperature*100),
			Fix:               messages.WarningTemperatureFix,
			Details:           details,
			Severity:          SeverityWarning,
			NoiseSuppressible: true,
		})
	}
	if salt := p.SaltPercentage(); salt > MaxSaltFraction {
		out = append(out, Warning{
			Code:              CodeSaltInhibitsYeast,
			Subject:           "salt_g",
			Message:           fmt.Sprintf(messages.WarningSaltFmt, salt*100, env.Salt*100),
			Fix:               messages.WarningSaltFix,
			Details:           details,
			Severity:          SeverityWarning,
			NoiseSuppressible: true,
		})
	}
	if env.Water < HydrationActivityThreshold {
		out = append(out, Warning{
			Code:              CodeHydrationOffOptimum,
			Subject:           "water_fraction",
			Message:           fmt.Sprintf(messages.WarningHydrationFmt, p.WaterFraction, env.Water*100),
			Fix:               messages.WarningHydrationFix,
			Details:           details,
			Severity:          SeverityWarning,
			NoiseSuppressible: true,
		})
	}
	return append(out, checkPrediction(prediction.Predict(p), p)...)
}

// checkPrediction flags the end states a baker would not want.
func checkPrediction(pred prediction.Prediction, p kinetics.ProcessParameters) []Warning {
	s := pred.State
	details := []string{fmt.Sprintf(messages.WarningPredictionDetailFmt, s.Volume, s.PH, s.GlutenRetention)}
	switch pred.Category {
	case prediction.CategoryDanger:
		return []Warning{{
			Code:     CodePredictedDanger,
			Subject:  "duration_min",
			Message:  fmt.Sprintf(messages.WarningPredictedDangerFmt, s.PH, s.GlutenRetention),
			Fix:      messages.WarningPredictedDangerFix,
			Details:  details,
			Severity: SeverityCritical,
		}}
	case prediction.CategorySlow:
		return []Warning{{
			Code:     CodePredictedSlow,
			Subject:  "duration_min",
			Message:  fmt.Sprintf(messages.WarningPredictedSlowFmt, s.Volume, p.BaseVolume()),
			Fix:      messages.WarningPredictedSlowFix,
			Details:  details,
			Severity: SeverityWarning,
		}}
	default:
		return nil
	}
}
