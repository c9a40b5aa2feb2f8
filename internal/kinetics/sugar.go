package kinetics

import "math"

// ComputeSugars returns the sucrose left and the free maltose after tHours.
//
// Sucrose decays first-order at SucroseConsumptionRate·env. Maltose is the
// intermediate of a starch → maltose → yeast chain with production constant
// k1 and consumption constant k2. While sucrose is abundant its uptake is
// repressed:
//
//	inhibition = (sucrose / (sugarAdded + ε))²
//	k2         = MaltoseConsumptionRate·env·(1 − inhibition)
//	maltose    = S·k1/(k2 − k1 + ε)·(e^(−k1·t) − e^(−k2·t)),  S = flourG·MaltoseFromStarch
//
// The ε terms are part of the model and are kept even where an analytic
// limit exists. Maltose is floored at 0.
func ComputeSugars(tHours, sugarAdded, flourG, env float64) (sucrose, maltose float64) {
	sucrose = sugarAdded * math.Exp(-SucroseConsumptionRate*env*tHours)

	k1 := MaltoseProductionRate * env
	ratio := sucrose / (sugarAdded + RateEpsilon)
	inhibition := ratio * ratio
	k2 := MaltoseConsumptionRate * env * (1 - inhibition)

	starchPotential := flourG * MaltoseFromStarch
	maltose = starchPotential * k1 / (k2 - k1 + RateEpsilon) * (math.Exp(-k1*tHours) - math.Exp(-k2*tHours))
	return sucrose, math.Max(0, maltose)
}
