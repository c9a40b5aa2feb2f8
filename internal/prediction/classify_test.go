package prediction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

func referenceParams() kinetics.ProcessParameters {
	return kinetics.ProcessParameters{
		FlourG:        1000,
		WaterFraction: 0.68,
		TemperatureC:  30,
		SugarAddedG:   20,
		SaltG:         15,
		DurationMin:   240,
	}
}

func TestClassifyPriority(t *testing.T) {
	p := referenceParams()
	base := p.BaseVolume()

	cases := []struct {
		name     string
		state    kinetics.FermentationState
		want     Category
		severity Severity
	}{
		{
			name:     "acid beats excellent volume",
			state:    kinetics.FermentationState{PH: 4.0, Volume: base * 3, GlutenRetention: 90},
			want:     CategoryDanger,
			severity: SeverityError,
		},
		{
			name:     "weak gluten beats excellent volume",
			state:    kinetics.FermentationState{PH: 5.5, Volume: base * 3, GlutenRetention: 59.9},
			want:     CategoryDanger,
			severity: SeverityError,
		},
		{
			name:     "excellent",
			state:    kinetics.FermentationState{PH: 5.5, Volume: base*2.2 + 1, GlutenRetention: 90},
			want:     CategoryExcellent,
			severity: SeveritySuccess,
		},
		{
			name:     "exactly 2.2 is moderate",
			state:    kinetics.FermentationState{PH: 5.5, Volume: base * 2.2, GlutenRetention: 90},
			want:     CategoryModerate,
			severity: SeverityPrimary,
		},
		{
			name:     "slow",
			state:    kinetics.FermentationState{PH: 5.5, Volume: base * 1.7, GlutenRetention: 60},
			want:     CategorySlow,
			severity: SeverityWarning,
		},
		{
			name:     "pH at threshold is not danger",
			state:    kinetics.FermentationState{PH: 4.1, Volume: base, GlutenRetention: 60},
			want:     CategorySlow,
			severity: SeverityWarning,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.state, p)
			assert.Equal(t, tc.want, got.Category)
			assert.Equal(t, tc.severity, got.Severity)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestPredictReferenceDough(t *testing.T) {
	p := referenceParams()
	pred := Predict(p)
	assert.Equal(t, kinetics.Evaluate(p.DurationMin, p), pred.State)
	// 1498 mL from an 800 mL base is a 1.87 ratio.
	assert.Equal(t, CategoryModerate, pred.Category)
	assert.Equal(t, messages.PredictModerate, pred.Message)

	p.SaltG = 0
	assert.Equal(t, CategoryExcellent, Predict(p).Category)
}

func TestPredictDangerFromEthanol(t *testing.T) {
	p := kinetics.ProcessParameters{
		FlourG:        100,
		WaterFraction: 0.68,
		TemperatureC:  30,
		SugarAddedG:   100,
		SaltG:         0,
		DurationMin:   1440,
	}
	pred := Predict(p)
	assert.Less(t, pred.State.GlutenRetention, DangerRetention)
	assert.Equal(t, CategoryDanger, pred.Category)
}

func TestSeverityOrderAndEncoding(t *testing.T) {
	assert.Less(t, SeveritySuccess, SeverityPrimary)
	assert.Less(t, SeverityPrimary, SeverityWarning)
	assert.Less(t, SeverityWarning, SeverityError)
	assert.Equal(t, RGB{190, 45, 45}, SeverityError.Color())
	assert.Equal(t, "#be2d2d", SeverityError.Color().Hex())
	assert.Equal(t, "unknown", Severity(42).String())

	data, err := json.Marshal(Result{Category: CategorySlow, Message: "m", Severity: SeverityWarning})
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"SLOW","message":"m","severity":"warning"}`, string(data))
}

func TestPredictionLines(t *testing.T) {
	lines := Predict(referenceParams()).Lines()
	assert.Equal(t, []string{
		"Estimated final pH: 5.58",
		"Estimated final volume: 1498 mL",
		"Gluten retention (final): 98.0%",
		"Analysis: OK: moderate fermentation.",
	}, lines)
}
