package kinetics

import "math"

// ComputePhysical returns the dough volume (mL) and pH after tMin minutes.
func ComputePhysical(tMin, flourG, co2, biomass float64) (volume, ph float64) {
	base := flourG * BaseVolumePerGram
	volume = base + co2*VolumePerCO2*(1-math.Exp(-tMin/ExpansionTimeConstantMin))

	acid := AcidPerBiomass * biomass * (1 - math.Exp(-tMin/AcidTimeConstantMin))
	ph = math.Max(MinPH, InitialPH-acid)
	return volume, ph
}
