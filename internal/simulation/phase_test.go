package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

func TestPhaseAt(t *testing.T) {
	cases := map[float64]string{
		0:    messages.PhaseLag,
		0.29: messages.PhaseLag,
		0.3:  messages.PhaseGrowth,
		0.59: messages.PhaseGrowth,
		0.6:  messages.PhasePeak,
		0.99: messages.PhasePeak,
		1:    messages.PhaseDecline,
		-1:   messages.PhaseLag,
	}
	for progress, want := range cases {
		assert.Equal(t, want, PhaseAt(progress), "progress %v", progress)
	}
}

func TestRunPhase(t *testing.T) {
	r := NewRun(testParams(10))
	r.Start()
	assert.Equal(t, messages.PhaseLag, r.Phase())
	for i := 0; i < 3; i++ {
		r.Tick()
	}
	assert.Equal(t, messages.PhaseGrowth, r.Phase())
}
