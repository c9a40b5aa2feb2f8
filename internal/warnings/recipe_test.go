package warnings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
	"github.com/alsnogtix/simuladorFermentacao/internal/prediction"
)

func defaultParams() kinetics.ProcessParameters {
	return kinetics.ProcessParameters{
		FlourG:        1000,
		WaterFraction: 0.68,
		TemperatureC:  30,
		SugarAddedG:   20,
		SaltG:         15,
		DurationMin:   240,
	}
}

func codes(ws []Warning) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Code)
	}
	return out
}

func TestCheckRecipe_DefaultIsClean(t *testing.T) {
	assert.Empty(t, CheckRecipe(defaultParams()))
}

func TestCheckRecipe_Environment(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*kinetics.ProcessParameters)
		code   string
	}{
		{"hot proof", func(p *kinetics.ProcessParameters) { p.TemperatureC = 40 }, CodeTemperatureOffOptimum},
		{"salty", func(p *kinetics.ProcessParameters) { p.SaltG = 30 }, CodeSaltInhibitsYeast},
		{"dry", func(p *kinetics.ProcessParameters) { p.WaterFraction = 0.3 }, CodeHydrationOffOptimum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultParams()
			tt.mutate(&p)
			ws := CheckRecipe(p)
			require.Contains(t, codes(ws), tt.code)
			for _, w := range ws {
				if w.Code == tt.code {
					assert.True(t, w.NoiseSuppressible)
					assert.Equal(t, SeverityWarning, w.Severity)
					assert.Len(t, w.Details, 1)
				}
			}
		})
	}
}

func TestCheckRecipe_MildDeviationsPass(t *testing.T) {
	p := defaultParams()
	p.TemperatureC = 15
	p.WaterFraction = 0.9
	assert.NotContains(t, codes(CheckRecipe(p)), CodeTemperatureOffOptimum)
	assert.NotContains(t, codes(CheckRecipe(p)), CodeHydrationOffOptimum)
}

func TestCheckRecipe_SaltMessage(t *testing.T) {
	p := defaultParams()
	p.SaltG = 30
	ws := CheckRecipe(p)
	require.NotEmpty(t, ws)
	assert.Equal(t, "salt is 3.0% of the flour; yeast activity drops to 50%", ws[0].Message)
}

func TestCheckRecipe_PredictedDanger(t *testing.T) {
	// Ethanol from a long, sugary proof drives gluten retention to its floor.
	p := defaultParams()
	p.FlourG = 50
	p.SugarAddedG = 100
	p.SaltG = 0
	p.DurationMin = 1440
	ws := CheckRecipe(p)
	require.Equal(t, []string{CodePredictedDanger}, codes(ws))
	last := ws[len(ws)-1]
	assert.Equal(t, CodePredictedDanger, last.Code)
	assert.Equal(t, SeverityCritical, last.Severity)
	assert.False(t, last.NoiseSuppressible)
}

func TestCheckRecipe_HotProofPredictsSlow(t *testing.T) {
	p := defaultParams()
	p.TemperatureC = 40
	assert.Equal(t, []string{CodeTemperatureOffOptimum, CodePredictedSlow}, codes(CheckRecipe(p)))
}

func TestCheckPrediction_Slow(t *testing.T) {
	p := defaultParams()
	pred := prediction.Prediction{
		State:  kinetics.FermentationState{Volume: 900, PH: 5.5, GlutenRetention: 95},
		Result: prediction.Result{Category: prediction.CategorySlow},
	}
	ws := checkPrediction(pred, p)
	require.Len(t, ws, 1)
	assert.Equal(t, CodePredictedSlow, ws[0].Code)
	assert.Equal(t, "predicted rise is only 900 mL from 800 mL", ws[0].Message)
	assert.Equal(t, []string{"volume 900 mL · pH 5.50 · gluten 95.0%"}, ws[0].Details)
}

func TestCheckPrediction_GoodOutcomes(t *testing.T) {
	for _, c := range []prediction.Category{prediction.CategoryExcellent, prediction.CategoryModerate} {
		pred := prediction.Prediction{Result: prediction.Result{Category: c}}
		assert.Nil(t, checkPrediction(pred, defaultParams()))
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{
		Code:    CodeSaltInhibitsYeast,
		Subject: "salt_g",
		Message: "too salty",
		Fix:     "use less",
		Details: []string{"a", "b"},
	}
	want := "WARNING SALT_INHIBITS_YEAST: too salty\n" +
		"  severity: warning\n" +
		"  subject: salt_g\n" +
		"  fix: use less\n" +
		"  details: a\n" +
		"  details: b"
	assert.Equal(t, want, w.String())
}
