package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
)

func TestSummarize(t *testing.T) {
	p := referenceParams()
	states := []kinetics.FermentationState{
		{Volume: 900, CO2: 1, PH: 5.5, Ethanol: 1, GlutenRetention: 97},
		{Volume: 1200, CO2: 3, PH: 5.4, Ethanol: 2, GlutenRetention: 96},
		{Volume: 1100, CO2: 2, PH: 5.3, Ethanol: 3, GlutenRetention: 95},
	}
	got := Summarize(states, p)
	assert.Equal(t, Summary{
		Points:         3,
		MaxVolume:      1200,
		MaxCO2:         3,
		FinalPH:        5.3,
		FinalEthanol:   3,
		FinalRetention: 95,
	}, got)
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil, referenceParams())
	assert.Equal(t, 800.0, got.MaxVolume)
	assert.Equal(t, EmptyRunPH, got.FinalPH)
	assert.Zero(t, got.Points)
}

func TestAnalyze(t *testing.T) {
	p := referenceParams()
	cases := []struct {
		name      string
		sum       Summary
		positives []bool
		contains  []string
	}{
		{
			name:      "sour dough",
			sum:       Summary{Points: 1, MaxVolume: 2500, MaxCO2: 9, FinalPH: 3.9, FinalEthanol: 1},
			positives: []bool{false, false, true},
			contains:  []string{"too acidic", "very low", "Moderate ethanol"},
		},
		{
			name:      "excellent and aromatic",
			sum:       Summary{Points: 1, MaxVolume: 1900, MaxCO2: 8.5, FinalPH: 4.5, FinalEthanol: 3.5},
			positives: []bool{true, true, true},
			contains:  []string{"8.5 g", "ideal range", "significant"},
		},
		{
			name:      "good rise high pH",
			sum:       Summary{Points: 1, MaxVolume: 1400, FinalPH: 5.5, FinalEthanol: 3},
			positives: []bool{true, false, true},
			contains:  []string{"1400 mL", "a little high", "Moderate ethanol"},
		},
		{
			name:      "limited rise",
			sum:       Summary{Points: 1, MaxVolume: 1000, FinalPH: 4.2},
			positives: []bool{false, true, true},
			contains:  []string{"Limited rise (1000 mL)", "4.20", "0.0 g"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			findings := Analyze(tc.sum, p)
			require.Len(t, findings, 3)
			assert.Equal(t, []Topic{TopicVolume, TopicPH, TopicEthanol},
				[]Topic{findings[0].Topic, findings[1].Topic, findings[2].Topic})
			for i, f := range findings {
				assert.Equal(t, tc.positives[i], f.Positive, "finding %d: %s", i, f.Text)
				assert.Contains(t, f.Text, tc.contains[i])
			}
		})
	}
}

func TestFindingString(t *testing.T) {
	assert.Equal(t, "✓ fine", Finding{Positive: true, Text: "fine"}.String())
	assert.Equal(t, "✗ bad", Finding{Text: "bad"}.String())
}
