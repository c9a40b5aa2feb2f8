package kinetics

import "math"

// CarryingCapacity is the logistic ceiling K for a given sugar potential.
func CarryingCapacity(totalSugar float64) float64 {
	return math.Max(InitialBiomass+MinCarryingMargin, totalSugar*YieldBiomass)
}

// GrowthRate is the intrinsic logistic rate r in h⁻¹, scaled by a Monod-like
// saturation on the sugar potential and by the environment factor.
func GrowthRate(totalSugar, env float64) float64 {
	sugarFactor := totalSugar / (MonodHalfSaturation + totalSugar)
	return BaseGrowthRate * sugarFactor * env
}

// ComputeBiomass evaluates the closed-form logistic curve
//
//	N(t) = K / (1 + ((K − N0)/N0)·e^(−r·t))
//
// at tHours. N(0) = N0 and N(t) → K as t grows.
func ComputeBiomass(tHours, sugarAdded, flourG, env float64) float64 {
	total := totalSugarPotential(sugarAdded, flourG)
	k := CarryingCapacity(total)
	r := GrowthRate(total, env)
	return k / (1 + ((k-InitialBiomass)/InitialBiomass)*math.Exp(-r*tHours))
}
