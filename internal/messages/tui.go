package messages

// Stepping view texts.
const (
	TuiTitle        = "Dough fermentation"
	TuiParamsFmt    = "%.0f g flour · water %.2f · %.0f °C · sugar %.0f g · salt %.0f g"
	TuiClockFmt     = "t = %.0f / %.0f min   speed x%g   %s"
	TuiPaused       = "paused"
	TuiFinished     = "Finished. Press r to run again or q to quit."
	TuiFactFmt      = "Did you know? %s"
	TuiReadingFmt   = "%-18s %10.2f %s"
	TuiStatusFmt    = "%s  %s"
	TuiAnalysisHead = "Analysis"

	TuiKeyPause  = "pause/resume"
	TuiKeySpeed  = "speed"
	TuiKeyReset  = "restart"
	TuiKeyQuit   = "quit"
	TuiRunFailed = "run simulation view: %w"
)

// Reading labels and units for the stepping view, in canonical order.
var (
	TuiReadingLabels = []string{
		"Biomass", "Sucrose", "Maltose", "CO₂", "Volume", "pH", "Ethanol", "Gluten retention",
	}
	TuiReadingUnits = []string{"", "g", "g", "g", "mL", "", "g", "%"}
)
