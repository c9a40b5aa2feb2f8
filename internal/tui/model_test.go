package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
	"github.com/alsnogtix/simuladorFermentacao/internal/simulation"
)

func newTestModel(duration float64) (Model, *simulation.Run) {
	run := simulation.NewRun(kinetics.ProcessParameters{
		FlourG:        1000,
		WaterFraction: 0.68,
		TemperatureC:  30,
		SugarAddedG:   20,
		SaltG:         15,
		DurationMin:   duration,
	})
	return New(run, time.Millisecond), run
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewStartsRun(t *testing.T) {
	m, run := newTestModel(240)
	assert.True(t, run.Running())
	assert.NotNil(t, m.Init())
}

func TestTickAdvancesRun(t *testing.T) {
	m, run := newTestModel(240)
	m, cmd := update(t, m, tickMsg(time.Now()))
	assert.Equal(t, 1, run.Len())
	assert.Equal(t, 1.0, run.Clock())
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.ticks)
}

func TestTickStopsWhenFinished(t *testing.T) {
	m, run := newTestModel(3)
	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		m, cmd = update(t, m, tickMsg(time.Now()))
	}
	assert.True(t, run.Finished())
	assert.Nil(t, cmd)
	assert.False(t, m.ticking)
	assert.Nil(t, m.Init())
}

func TestPauseKey(t *testing.T) {
	m, run := newTestModel(240)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, run.Paused())

	m, _ = update(t, m, tickMsg(time.Now()))
	assert.Equal(t, 0, run.Len())
	assert.Contains(t, m.View(), "paused")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, run.Paused())
	_, _ = update(t, m, tickMsg(time.Now()))
	assert.Equal(t, 1, run.Len())
}

func TestSpeedKeys(t *testing.T) {
	m, run := newTestModel(240)
	for _, tc := range []struct {
		key  string
		want float64
	}{{"5", 5}, {"2", 2}, {"1", 1}} {
		m, _ = update(t, m, runeKey(tc.key))
		assert.Equal(t, tc.want, run.Speed(), "key %s", tc.key)
	}

	m, _ = update(t, m, runeKey("5"))
	_, _ = update(t, m, tickMsg(time.Now()))
	assert.Equal(t, 5.0, run.Clock())
}

func TestResetRestartsFinishedRun(t *testing.T) {
	m, run := newTestModel(2)
	m, _ = update(t, m, runeKey("2"))
	m, _ = update(t, m, tickMsg(time.Now()))
	require.True(t, run.Finished())

	m, cmd := update(t, m, runeKey("r"))
	assert.NotNil(t, cmd)
	assert.True(t, run.Running())
	assert.False(t, run.Finished())
	assert.Equal(t, 0, run.Len())
	assert.Equal(t, 2.0, run.Speed(), "restart keeps the speed")
	assert.True(t, m.ticking)
}

func TestQuitKey(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		m, _ := newTestModel(240)
		_, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestView(t *testing.T) {
	m, _ := newTestModel(240)
	view := m.View()
	assert.Contains(t, view, "Dough fermentation")
	assert.Contains(t, view, "1000 g flour")
	assert.Contains(t, view, "t = 0 / 240 min")
	assert.Contains(t, view, "Lag")
	assert.Contains(t, view, "Volume")
	assert.Contains(t, view, "Did you know?")
	assert.Contains(t, view, "SLOW")
}

func TestViewFinished(t *testing.T) {
	m, _ := newTestModel(1)
	m, _ = update(t, m, tickMsg(time.Now()))
	view := m.View()
	assert.Contains(t, view, "Analysis")
	assert.Contains(t, view, "Finished.")
	assert.Contains(t, view, "Decline")
	assert.NotContains(t, view, "paused")
}

func TestProgressBar(t *testing.T) {
	m, _ := newTestModel(240)
	assert.Equal(t, "█████░░░░░", m.progressBar(0.5, 10))
	assert.Equal(t, "░░░░", m.progressBar(-1, 4))
	assert.Equal(t, "████", m.progressBar(2, 4))
}
