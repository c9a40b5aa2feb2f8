package kinetics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSugarsAtZero(t *testing.T) {
	sucrose, maltose := ComputeSugars(0, 20, 1000, 0.7)
	assert.Equal(t, 20.0, sucrose)
	assert.Equal(t, 0.0, maltose)
}

func TestSucroseMonotoneAndVanishing(t *testing.T) {
	prev := math.Inf(1)
	for h := 0.0; h <= 48; h += 0.25 {
		sucrose, _ := ComputeSugars(h, 50, 500, 0.9)
		require.LessOrEqual(t, sucrose, prev, "t=%v", h)
		prev = sucrose
	}
	sucrose, _ := ComputeSugars(1e4, 50, 500, 0.9)
	assert.Less(t, sucrose, 1e-9)
}

func TestMaltoseNonNegative(t *testing.T) {
	for _, sugar := range []float64{0, 1, 20, 100} {
		for _, env := range []float64{FactorFloor, 0.3, 1} {
			for h := 0.0; h <= 72; h += 0.5 {
				_, maltose := ComputeSugars(h, sugar, 1000, env)
				require.GreaterOrEqual(t, maltose, 0.0, "sugar=%v env=%v t=%v", sugar, env, h)
			}
		}
	}
}

func TestMaltoseClosedForm(t *testing.T) {
	const (
		h     = 3.0
		sugar = 20.0
		flour = 1000.0
		env   = 0.7
	)
	sucrose := sugar * math.Exp(-0.8*env*h)
	k1 := 0.3 * env
	inhibition := math.Pow(sucrose/(sugar+1e-6), 2)
	k2 := 0.5 * env * (1 - inhibition)
	want := flour * 0.05 * k1 / (k2 - k1 + 1e-6) * (math.Exp(-k1*h) - math.Exp(-k2*h))

	gotSucrose, gotMaltose := ComputeSugars(h, sugar, flour, env)
	assert.InDelta(t, sucrose, gotSucrose, 1e-12)
	assert.InDelta(t, math.Max(0, want), gotMaltose, 1e-12)
}

func TestMaltoseRepressedWhileSucroseAbundant(t *testing.T) {
	_, repressed := ComputeSugars(1, 100, 1000, 1)
	_, free := ComputeSugars(1, 0, 1000, 1)
	assert.Greater(t, repressed, free, "sucrose should delay maltose uptake")
}
