package kinetics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameters indicates a ProcessParameters value outside the model domain.
var ErrInvalidParameters = errors.New("kinetics: invalid process parameters")

// ProcessParameters is the fixed recipe and environment of one fermentation.
// It is created once per run and never changed afterwards.
type ProcessParameters struct {
	FlourG        float64 `json:"flour_g"`
	WaterFraction float64 `json:"water_fraction"`
	TemperatureC  float64 `json:"temperature_c"`
	SugarAddedG   float64 `json:"sugar_added_g"`
	SaltG         float64 `json:"salt_g"`
	DurationMin   float64 `json:"duration_min"`
}

// Validate reports the first field outside the model domain.
// The returned error wraps ErrInvalidParameters.
func (p ProcessParameters) Validate() error {
	checks := []struct {
		name  string
		value float64
		ok    func(float64) bool
		want  string
	}{
		{"flour_g", p.FlourG, func(v float64) bool { return v > 0 }, "> 0"},
		{"water_fraction", p.WaterFraction, func(v float64) bool { return v > 0 && v < 1 }, "in (0, 1)"},
		{"temperature_c", p.TemperatureC, func(float64) bool { return true }, "finite"},
		{"sugar_added_g", p.SugarAddedG, func(v float64) bool { return v >= 0 }, ">= 0"},
		{"salt_g", p.SaltG, func(v float64) bool { return v >= 0 }, ">= 0"},
		{"duration_min", p.DurationMin, func(v float64) bool { return v > 0 }, "> 0"},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameters, c.name, c.value)
		}
		if !c.ok(c.value) {
			return fmt.Errorf("%w: %s must be %s, got %g", ErrInvalidParameters, c.name, c.want, c.value)
		}
	}
	return nil
}

// BaseVolume is the unrisen dough volume in mL.
func (p ProcessParameters) BaseVolume() float64 {
	return p.FlourG * BaseVolumePerGram
}

// SaltPercentage is the salt-to-flour ratio, guarded against zero flour.
func (p ProcessParameters) SaltPercentage() float64 {
	return saltPercentage(p.SaltG, p.FlourG)
}

// TotalSugarPotential is the added sugar plus the maltose obtainable from starch.
func (p ProcessParameters) TotalSugarPotential() float64 {
	return totalSugarPotential(p.SugarAddedG, p.FlourG)
}

func saltPercentage(saltG, flourG float64) float64 {
	return saltG / (flourG + 1)
}

func totalSugarPotential(sugarAdded, flourG float64) float64 {
	return sugarAdded + flourG*MaltoseFromStarch
}
