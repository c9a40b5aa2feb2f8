package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the configuration and flag recipes the model expects to go wrong"

	DoctorHealthCheckFmt = "🩺 Checking fermento setup for %s...\n"

	DoctorCheckNameConfig   = "Config"
	DoctorCheckNameRanges   = "Ranges"
	DoctorCheckNameTerminal = "Terminal"

	DoctorConfigMissingFmt       = "No configuration at %s; using the default recipe"
	DoctorConfigMissingRecommend = "Run `fermento init` or `fermento wizard` to create one."
	DoctorConfigLoadFailedFmt    = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend    = "Fix the file by hand or run `fermento init --force` to start over."
	DoctorConfigLoadedFmt        = "Configuration loaded from %s"

	DoctorRangeOutsideFmt       = "%s is %g, outside the editor range %g to %g"
	DoctorRangeOutsideRecommend = "The model still runs, but `fermento wizard` will not accept this value."
	DoctorRangesOK              = "All parameters inside the editor ranges"

	DoctorTerminalOK        = "Interactive terminal available"
	DoctorTerminalHeadless  = "No interactive terminal; `fermento simulate` will run headless"
	DoctorTerminalRecommend = "Run from a terminal to watch the animated view, or pass --headless."

	DoctorWarningSystemHeader = "\n🔍 Checking the recipe..."
	DoctorFailureSummary      = "❌ Some checks failed or triggered warnings. Please address the items above."
	DoctorSuccessSummary      = "✅ All checks passed. The recipe is ready to proof."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "          "
)

// Recipe warning messages.
const (
	WarningTemperatureFmt      = "temperature %.1f °C leaves yeast at %.0f%% of its activity"
	WarningTemperatureFix      = "Proof closer to 30 °C, or extend the fermentation time."
	WarningSaltFmt             = "salt is %.1f%% of the flour; yeast activity drops to %.0f%%"
	WarningSaltFix             = "Keep salt between 1.5% and 2.5% of the flour mass."
	WarningHydrationFmt        = "hydration %.2f is far from the 0.68 optimum; yeast activity %.0f%%"
	WarningHydrationFix        = "Move the water fraction toward 0.65 to 0.72."
	WarningPredictedDangerFmt  = "predicted end state is DANGER (pH %.2f, gluten %.1f%%)"
	WarningPredictedDangerFix  = "Shorten the fermentation, lower the temperature or reduce sugar."
	WarningPredictedSlowFmt    = "predicted rise is only %.0f mL from %.0f mL"
	WarningPredictedSlowFix    = "Extend the fermentation or move the temperature toward 30 °C."
	WarningLineFmt             = "WARNING %s: %s\n"
	WarningSeverityLineFmt     = "  severity: %s\n"
	WarningSubjectLineFmt      = "  subject: %s\n"
	WarningFixLineFmt          = "  fix: %s"
	WarningDetailsLineFmt      = "\n  details: %s"
	WarningActivityDetailFmt   = "temperature %.2f · water %.2f · salt %.2f · combined %.2f"
	WarningPredictionDetailFmt = "volume %.0f mL · pH %.2f · gluten %.1f%%"
)

const (
	WarningsNoiseModeInvalidFmt = "unknown noise mode %q (expected %q or %q)"
	WarningsNoiseModeInvalidFix = "Pass --noise-mode default or --noise-mode reduce."
)

const (
	DoctorFlagNoiseMode = "Warning noise mode: default or reduce (hide advisory recipe warnings)"
)
