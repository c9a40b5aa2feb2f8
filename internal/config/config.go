// Package config loads and validates fermento.toml, the recipe and driver
// settings for a simulation.
package config

import "github.com/alsnogtix/simuladorFermentacao/internal/kinetics"

// Config is the full fermento.toml document.
type Config struct {
	Dough      Dough      `toml:"dough"`
	Simulation Simulation `toml:"simulation"`
}

// Dough is the recipe and proofing environment.
type Dough struct {
	FlourG        float64 `toml:"flour_g"`
	WaterFraction float64 `toml:"water_fraction"`
	TemperatureC  float64 `toml:"temperature_c"`
	SugarAddedG   float64 `toml:"sugar_added_g"`
	SaltG         float64 `toml:"salt_g"`
	DurationMin   float64 `toml:"duration_min"`
}

// Simulation controls the stepping driver.
type Simulation struct {
	// Speed is the number of simulated minutes per tick.
	Speed float64 `toml:"speed"`
	// TickMS is the wall-clock interval between ticks in the interactive view.
	TickMS int `toml:"tick_ms"`
}

// Default simulation settings.
const (
	DefaultSpeed  = 1.0
	DefaultTickMS = 33
)

// Default returns the configuration built from the field catalog defaults.
func Default() *Config {
	cfg := &Config{
		Simulation: Simulation{Speed: DefaultSpeed, TickMS: DefaultTickMS},
	}
	for _, f := range Fields() {
		f.Set(&cfg.Dough, f.Default)
	}
	return cfg
}

// Params converts the recipe into model parameters.
func (d Dough) Params() kinetics.ProcessParameters {
	return kinetics.ProcessParameters{
		FlourG:        d.FlourG,
		WaterFraction: d.WaterFraction,
		TemperatureC:  d.TemperatureC,
		SugarAddedG:   d.SugarAddedG,
		SaltG:         d.SaltG,
		DurationMin:   d.DurationMin,
	}
}

// DoughFromParams is the inverse of Dough.Params.
func DoughFromParams(p kinetics.ProcessParameters) Dough {
	return Dough{
		FlourG:        p.FlourG,
		WaterFraction: p.WaterFraction,
		TemperatureC:  p.TemperatureC,
		SugarAddedG:   p.SugarAddedG,
		SaltG:         p.SaltG,
		DurationMin:   p.DurationMin,
	}
}
