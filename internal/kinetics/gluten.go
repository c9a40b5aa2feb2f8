package kinetics

import "math"

// ComputeGlutenRetention scores the gluten network from 100 and applies
// four independent terms before a single clamp to [MinRetention, MaxRetention]:
//
//   - salt: bell curve with its optimum at OptimalSaltFraction (±10 points)
//   - water: linear penalty away from GlutenOptimalWater
//   - acid: linear penalty below pH AcidDamageThreshold
//   - ethanol: linear penalty on ethanol per gram of flour
func ComputeGlutenRetention(saltPct, waterFraction, ph, ethanol, flourG float64) float64 {
	z := (saltPct - OptimalSaltFraction) / SaltToleranceWidth
	retention := BaseRetention
	retention += (math.Exp(-0.5*z*z) - 0.5) * SaltRetentionScale
	retention -= WaterRetentionWeight * math.Abs(waterFraction-GlutenOptimalWater)
	retention -= AcidRetentionWeight * math.Max(0, AcidDamageThreshold-ph)
	retention -= EthanolRetentionCost * (ethanol / (flourG + 1))
	return math.Max(MinRetention, math.Min(MaxRetention, retention))
}
