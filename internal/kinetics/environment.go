package kinetics

import "math"

// EnvironmentFactors are the yeast-activity modifiers for one parameter set.
// They do not depend on time.
type EnvironmentFactors struct {
	Temperature float64 `json:"temp_factor"`
	Water       float64 `json:"water_factor"`
	Salt        float64 `json:"salt_factor"`
	Combined    float64 `json:"combined"`
}

// ComputeEnvironment derives the activity factors from temperature (°C),
// hydration (water/flour fraction), salt mass and flour mass.
// Every factor, including Combined, lies in [FactorFloor, FactorCeiling].
func ComputeEnvironment(tempC, waterFraction, saltG, flourG float64) EnvironmentFactors {
	temp := clampFactor(TemperatureFactor(tempC))
	water := clampFactor(WaterFactor(waterFraction))
	salt := clampFactor(SaltFactor(saltPercentage(saltG, flourG)))
	return EnvironmentFactors{
		Temperature: temp,
		Water:       water,
		Salt:        salt,
		Combined:    clampFactor(temp * water * salt),
	}
}

// TemperatureFactor is an asymmetric Gaussian around OptimalTemperatureC.
func TemperatureFactor(tempC float64) float64 {
	width := TemperatureWidthLow
	if tempC >= OptimalTemperatureC {
		width = TemperatureWidthHigh
	}
	z := (tempC - OptimalTemperatureC) / width
	return math.Max(FactorFloor, math.Exp(-0.5*z*z))
}

// WaterFactor falls off linearly with distance from OptimalHydration.
func WaterFactor(waterFraction float64) float64 {
	return math.Max(FactorFloor, 1-HydrationSensitivity*math.Abs(waterFraction-OptimalHydration))
}

// SaltFactor is the exponential inhibition by the salt-to-flour ratio.
func SaltFactor(saltPct float64) float64 {
	return math.Max(FactorFloor, math.Exp(-SaltInhibition*saltPct))
}

// clampFactor bounds v to [FactorFloor, FactorCeiling]; NaN maps to the floor.
func clampFactor(v float64) float64 {
	if !(v > FactorFloor) {
		return FactorFloor
	}
	if v > FactorCeiling {
		return FactorCeiling
	}
	return v
}
