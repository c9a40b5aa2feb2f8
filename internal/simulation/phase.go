package simulation

import "github.com/alsnogtix/simuladorFermentacao/internal/messages"

// PhaseMarker labels a point on the progress bar.
type PhaseMarker struct {
	Label    string
	Position float64
}

// PhaseMarkers are the growth phases in progress order.
var PhaseMarkers = []PhaseMarker{
	{Label: messages.PhaseLag, Position: 0.0},
	{Label: messages.PhaseGrowth, Position: 0.3},
	{Label: messages.PhasePeak, Position: 0.6},
	{Label: messages.PhaseDecline, Position: 1.0},
}

// PhaseAt returns the label of the last marker at or before progress.
func PhaseAt(progress float64) string {
	label := PhaseMarkers[0].Label
	for _, m := range PhaseMarkers {
		if progress >= m.Position {
			label = m.Label
		}
	}
	return label
}

// Phase returns the growth phase for the run's progress.
func (r *Run) Phase() string {
	return PhaseAt(r.Progress())
}
