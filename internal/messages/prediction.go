package messages

// Live prediction feedback, one per category.
const (
	PredictDanger    = "Warning: risk of sour dough and degraded gluten."
	PredictExcellent = "Good final volume: parameters look balanced."
	PredictModerate  = "OK: moderate fermentation."
	PredictSlow      = "Slow rise: check salt, temperature or time."

	PredictHeader       = "Final state prediction"
	PredictPHFmt        = "Estimated final pH: %.2f"
	PredictVolumeFmt    = "Estimated final volume: %.0f mL"
	PredictRetentionFmt = "Gluten retention (final): %.1f%%"
	PredictAnalysisFmt  = "Analysis: %s"
)

// Post-run analysis findings.
const (
	AnalysisVolumeStalledFmt   = "Growth stalled. The dough became too acidic (pH %.2f), inhibiting the yeast."
	AnalysisVolumeExcellentFmt = "Excellent rise! CO₂ production (%.1f g) was vigorous and the dough reached %.0f mL."
	AnalysisVolumeGoodFmt      = "Good rise. The dough developed an adequate volume (%.0f mL)."
	AnalysisVolumeLimitedFmt   = "Limited rise (%.0f mL). The time may have been short, or salt or temperature inhibited the yeast."

	AnalysisPHIdealFmt = "The final pH (%.2f) is in the ideal range, suggesting a well-developed flavour."
	AnalysisPHHighFmt  = "The pH (%.2f) stayed a little high. Fermentation may not have run long enough to develop acidity."
	AnalysisPHLowFmt   = "The pH (%.2f) is very low, giving an overly sour bread."

	AnalysisEthanolHighFmt     = "Ethanol production (%.1f g) was significant, contributing to the aroma."
	AnalysisEthanolModerateFmt = "Moderate ethanol production (%.1f g). Normal for shorter fermentations."

	AnalysisPositiveMark = "✓"
	AnalysisNegativeMark = "✗"
)

// Growth phase labels shown on the simulation progress bar.
const (
	PhaseLag     = "Lag"
	PhaseGrowth  = "Growth"
	PhasePeak    = "Peak"
	PhaseDecline = "Decline"
)

// Educational facts shown while a simulation runs.
var Facts = []string{
	"Yeast consumes sugar and produces CO₂!",
	"CO₂ makes the dough rise by forming bubbles.",
	"Salt controls the yeast and strengthens the gluten.",
	"Too much acidity (low pH) degrades the gluten!",
	"The ideal temperature for yeast is about 30°C.",
	"Too much water can leave the gluten weak.",
}
