package warnings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyNoiseControl_Default(t *testing.T) {
	items := []Warning{
		{Code: CodeSaltInhibitsYeast, NoiseSuppressible: true, Severity: SeverityWarning},
		{Code: CodePredictedDanger, Severity: SeverityCritical},
	}
	filtered := ApplyNoiseControl(items, "")
	require.Len(t, filtered, 2)
	filtered[0].Code = "changed"
	assert.Equal(t, CodeSaltInhibitsYeast, items[0].Code, "input must not be aliased")
}

func TestApplyNoiseControl_ReduceHidesAdvisories(t *testing.T) {
	items := []Warning{
		{Code: CodeSaltInhibitsYeast, NoiseSuppressible: true, Severity: SeverityWarning},
		{Code: CodeHydrationOffOptimum, NoiseSuppressible: true, Severity: SeverityCritical},
		{Code: CodeTemperatureOffOptimum, NoiseSuppressible: true},
	}
	filtered := ApplyNoiseControl(items, " Reduce ")
	require.Len(t, filtered, 1)
	assert.Equal(t, CodeHydrationOffOptimum, filtered[0].Code)
	assert.Len(t, items, 3)
}

func TestApplyNoiseControl_ReduceKeepsCausesOfBadOutcome(t *testing.T) {
	for _, outcome := range []string{CodePredictedSlow, CodePredictedDanger} {
		t.Run(outcome, func(t *testing.T) {
			items := []Warning{
				{Code: CodeTemperatureOffOptimum, NoiseSuppressible: true, Severity: SeverityWarning},
				{Code: outcome, Severity: SeverityWarning},
			}
			filtered := ApplyNoiseControl(items, NoiseModeReduce)
			assert.Equal(t, items, filtered)
		})
	}
}

func TestApplyNoiseControl_ReduceNoItems(t *testing.T) {
	assert.Empty(t, ApplyNoiseControl(nil, NoiseModeReduce))
}

func TestApplyNoiseControl_UnknownMode(t *testing.T) {
	items := []Warning{
		{Code: CodeHydrationOffOptimum, NoiseSuppressible: true, Severity: SeverityWarning},
	}
	filtered := ApplyNoiseControl(items, "unknown")
	require.Len(t, filtered, 2)
	require.Equal(t, CodeHydrationOffOptimum, filtered[0].Code)
	require.Equal(t, CodeWarningNoiseModeInvalid, filtered[1].Code)
	require.Equal(t, SeverityCritical, filtered[1].Severity)
	require.Equal(t, "--noise-mode", filtered[1].Subject)
}

func TestApplyNoiseControl_UnknownModeNoItemsStillWarns(t *testing.T) {
	filtered := ApplyNoiseControl(nil, "unknown")
	require.Len(t, filtered, 1)
	require.Equal(t, CodeWarningNoiseModeInvalid, filtered[0].Code)
}

func TestApplyNoiseControl_DefaultNoItemsReturnsNil(t *testing.T) {
	require.Nil(t, ApplyNoiseControl(nil, NoiseModeDefault))
}
