package kinetics

// Yeast and substrate constants.
const (
	// InitialBiomass is the inoculum N0 at t = 0.
	InitialBiomass = 0.5
	// MinCarryingMargin keeps the carrying capacity strictly above N0.
	MinCarryingMargin = 0.1
	// YieldBiomass is Y_X_S, biomass produced per unit sugar consumed.
	YieldBiomass = 0.1
	// YieldEthanol is Y_E_S, ethanol produced per unit sugar consumed.
	YieldEthanol = 0.45
	// YieldCO2 is Y_C_S, CO₂ produced per unit sugar consumed.
	YieldCO2 = 0.45
	// MaltoseFromStarch is the fraction of flour mass available as maltose.
	MaltoseFromStarch = 0.05
	// MonodHalfSaturation is the sugar level at which growth reaches half speed.
	MonodHalfSaturation = 10.0
	// BaseGrowthRate is the intrinsic growth rate in h⁻¹.
	BaseGrowthRate = 0.4
)

// Sugar kinetics rate constants, in h⁻¹ before environmental scaling.
const (
	SucroseConsumptionRate = 0.8
	MaltoseProductionRate  = 0.3
	MaltoseConsumptionRate = 0.5
	// RateEpsilon regularises the maltose chain when both rates coincide.
	RateEpsilon = 1e-6
)

// Environmental optimum and sensitivity constants.
const (
	OptimalTemperatureC = 30.0
	// TemperatureWidthLow is the Gaussian width below the optimum.
	TemperatureWidthLow = 15.0
	// TemperatureWidthHigh is the Gaussian width above the optimum; yeast is
	// more sensitive to heat than to cold.
	TemperatureWidthHigh = 7.0
	OptimalHydration     = 0.68
	HydrationSensitivity = 0.8
	SaltInhibition       = 23.0
	// FactorFloor is the lowest value any activity factor may take.
	FactorFloor = 0.01
	// FactorCeiling is the highest value any activity factor may take.
	FactorCeiling = 1.0
)

// Physical state constants.
const (
	// BaseVolumePerGram converts flour mass (g) to unrisen dough volume (mL).
	BaseVolumePerGram = 0.8
	// VolumePerCO2 is the dough expansion in mL per gram of CO₂ retained.
	VolumePerCO2 = 300.0
	// ExpansionTimeConstantMin is the volume saturation time constant.
	ExpansionTimeConstantMin = 180.0
	// AcidPerBiomass scales biomass into pH units of acid production.
	AcidPerBiomass = 0.015
	// AcidTimeConstantMin is the acid build-up saturation time constant.
	AcidTimeConstantMin = 120.0
	InitialPH           = 5.6
	MinPH               = 3.8
)

// Gluten retention constants.
const (
	BaseRetention        = 100.0
	MinRetention         = 5.0
	MaxRetention         = 98.0
	OptimalSaltFraction  = 0.02
	SaltToleranceWidth   = 0.01
	SaltRetentionScale   = 20.0
	GlutenOptimalWater   = 0.70
	WaterRetentionWeight = 30.0
	AcidDamageThreshold  = 4.5
	AcidRetentionWeight  = 40.0
	EthanolRetentionCost = 300.0
)
