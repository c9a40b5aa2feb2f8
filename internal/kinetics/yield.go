package kinetics

import "math"

// ComputeProducts converts the biomass grown since n0 into CO₂ and ethanol.
//
// Consumed sugar is the grown biomass divided by YieldBiomass, capped at
// the total sugar potential. The fermented share is split between CO₂ and
// ethanol by YieldCO2 and YieldEthanol.
func ComputeProducts(biomass, n0, totalSugar float64) (co2, ethanol float64) {
	produced := math.Max(0, biomass-n0)
	consumed := math.Min(totalSugar, produced/YieldBiomass)
	fermented := consumed * (YieldCO2 + YieldEthanol)
	co2 = fermented * YieldCO2 / (YieldCO2 + YieldEthanol)
	ethanol = fermented - co2
	return co2, ethanol
}
