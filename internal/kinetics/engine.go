package kinetics

// MinutesPerHour converts the engine's minute clock to the hour-based rates.
const MinutesPerHour = 60.0

// Evaluate computes the dough state tMin minutes into the fermentation.
//
// It composes the environment, sugar, growth, product, physical and gluten
// models in dependency order. Evaluate holds no state, so calls at arbitrary
// and non-monotonic t agree with a run stepped up to the same t.
func Evaluate(tMin float64, p ProcessParameters) FermentationState {
	tHours := tMin / MinutesPerHour
	env := ComputeEnvironment(p.TemperatureC, p.WaterFraction, p.SaltG, p.FlourG)

	sucrose, maltose := ComputeSugars(tHours, p.SugarAddedG, p.FlourG, env.Combined)
	biomass := ComputeBiomass(tHours, p.SugarAddedG, p.FlourG, env.Combined)
	co2, ethanol := ComputeProducts(biomass, InitialBiomass, p.TotalSugarPotential())
	volume, ph := ComputePhysical(tMin, p.FlourG, co2, biomass)
	retention := ComputeGlutenRetention(p.SaltPercentage(), p.WaterFraction, ph, ethanol, p.FlourG)

	return FermentationState{
		Biomass:         biomass,
		Sucrose:         sucrose,
		Maltose:         maltose,
		CO2:             co2,
		Volume:          volume,
		PH:              ph,
		Ethanol:         ethanol,
		GlutenRetention: retention,
	}
}

// InitialState is the defined condition at t = 0: the inoculum, all added
// sugar, no products, the unrisen volume and the initial pH. Gluten
// retention carries only the salt and water terms.
func InitialState(p ProcessParameters) FermentationState {
	return FermentationState{
		Biomass:         InitialBiomass,
		Sucrose:         p.SugarAddedG,
		Volume:          p.BaseVolume(),
		PH:              InitialPH,
		GlutenRetention: ComputeGlutenRetention(p.SaltPercentage(), p.WaterFraction, InitialPH, 0, p.FlourG),
	}
}
