package config

import (
	"fmt"

	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

// SectionDough is the TOML table holding the recipe parameters.
const SectionDough = "dough"

// Parameter keys as they appear under [dough].
const (
	KeyFlour       = "flour_g"
	KeyWater       = "water_fraction"
	KeyTemperature = "temperature_c"
	KeySugar       = "sugar_added_g"
	KeySalt        = "salt_g"
	KeyDuration    = "duration_min"
)

// FieldDef describes one recipe parameter: its label, unit, editor range
// and default. The range bounds the wizard; the model domain is enforced
// by kinetics.ProcessParameters.Validate.
type FieldDef struct {
	Key     string
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Default float64
	ref     func(*Dough) *float64
}

// fields is the canonical ordered registry of recipe parameters.
// Order matches the wizard flow.
var fields = []FieldDef{
	{
		Key: KeyFlour, Label: messages.FieldFlourLabel, Unit: messages.FieldFlourUnit,
		Min: 50, Max: 1000, Default: 1000,
		ref: func(d *Dough) *float64 { return &d.FlourG },
	},
	{
		Key: KeyWater, Label: messages.FieldWaterLabel, Unit: messages.FieldWaterUnit,
		Min: 0.3, Max: 0.9, Default: 0.68,
		ref: func(d *Dough) *float64 { return &d.WaterFraction },
	},
	{
		Key: KeyTemperature, Label: messages.FieldTemperatureLabel, Unit: messages.FieldTemperatureUnit,
		Min: 15, Max: 40, Default: 30,
		ref: func(d *Dough) *float64 { return &d.TemperatureC },
	},
	{
		Key: KeySugar, Label: messages.FieldSugarLabel, Unit: messages.FieldSugarUnit,
		Min: 0, Max: 100, Default: 20,
		ref: func(d *Dough) *float64 { return &d.SugarAddedG },
	},
	{
		Key: KeySalt, Label: messages.FieldSaltLabel, Unit: messages.FieldSaltUnit,
		Min: 0, Max: 30, Default: 15,
		ref: func(d *Dough) *float64 { return &d.SaltG },
	},
	{
		Key: KeyDuration, Label: messages.FieldDurationLabel, Unit: messages.FieldDurationUnit,
		Min: 30, Max: 1440, Default: 240,
		ref: func(d *Dough) *float64 { return &d.DurationMin },
	},
}

// fieldIndex provides O(1) lookup by key.
var fieldIndex = func() map[string]int {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[f.Key] = i
	}
	return idx
}()

// Fields returns the parameter catalog in wizard order.
func Fields() []FieldDef {
	return append([]FieldDef(nil), fields...)
}

// LookupField returns the field definition for key.
func LookupField(key string) (FieldDef, bool) {
	i, ok := fieldIndex[key]
	if !ok {
		return FieldDef{}, false
	}
	return fields[i], true
}

// Get reads the field from d.
func (f FieldDef) Get(d Dough) float64 {
	return *f.ref(&d)
}

// Set writes v into the field of d.
func (f FieldDef) Set(d *Dough, v float64) {
	*f.ref(d) = v
}

// CheckRange reports whether v lies inside the editor range.
func (f FieldDef) CheckRange(v float64) error {
	if v < f.Min || v > f.Max {
		return fmt.Errorf(messages.ConfigFieldOutOfRangeFmt, f.Label, f.Min, f.Max, v)
	}
	return nil
}

// Title is the label with its unit, for prompts and tables.
func (f FieldDef) Title() string {
	return fmt.Sprintf("%s (%s)", f.Label, f.Unit)
}
