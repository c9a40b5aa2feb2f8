// Package tui steps a simulation run in the terminal, one model evaluation
// per tick, with live readings and keyboard control.
package tui

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alsnogtix/simuladorFermentacao/internal/kinetics"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
	"github.com/alsnogtix/simuladorFermentacao/internal/simulation"
)

const (
	barWidth = 40
	// factEvery is the number of ticks each fact stays on screen.
	factEvery = 90
)

type tickMsg time.Time

// Model is the bubbletea model of a running simulation. It drives the run
// it was built with; the caller keeps the pointer to report on it after
// the program exits.
type Model struct {
	run      *simulation.Run
	interval time.Duration
	theme    Theme
	keys     keyMap
	help     help.Model

	ticks   int
	ticking bool
}

// New starts run unless it is already running or finished.
func New(run *simulation.Run, interval time.Duration) Model {
	if !run.Running() && !run.Finished() {
		run.Start()
	}
	return Model{
		run:      run,
		interval: interval,
		theme:    DefaultTheme(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		ticking:  !run.Finished(),
	}
}

// Run shows the stepping view on out until the user quits.
func Run(run *simulation.Run, interval time.Duration, out io.Writer) error {
	p := tea.NewProgram(New(run, interval), tea.WithOutput(out), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf(messages.TuiRunFailed, err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	if !m.ticking {
		return nil
	}
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.ticks++
		m.run.Tick()
		if m.run.Finished() {
			m.ticking = false
			return m, nil
		}
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.run.TogglePause()
		case key.Matches(msg, m.keys.Speed):
			if v, err := strconv.ParseFloat(msg.String(), 64); err == nil {
				_ = m.run.SetSpeed(v)
			}
		case key.Matches(msg, m.keys.Reset):
			m.run.Start()
			m.ticks = 0
			if !m.ticking {
				m.ticking = true
				return m, m.tick()
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	p := m.run.Params()

	b.WriteString(m.theme.Title.Render(messages.TuiTitle) + "\n")
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf(messages.TuiParamsFmt,
		p.FlourG, p.WaterFraction, p.TemperatureC, p.SugarAddedG, p.SaltG)) + "\n\n")

	b.WriteString(m.progressBar(m.run.Progress(), barWidth) + "\n")
	status := m.run.Phase()
	if m.run.Paused() && !m.run.Finished() {
		status += " (" + messages.TuiPaused + ")"
	}
	b.WriteString(fmt.Sprintf(messages.TuiClockFmt, m.run.Clock(), p.DurationMin, m.run.Speed(), status) + "\n\n")

	b.WriteString(m.theme.Card.Render(m.readings()) + "\n")

	result := m.run.Classification()
	b.WriteString(fmt.Sprintf(messages.TuiStatusFmt,
		m.theme.Severity(result.Severity).Render(string(result.Category)), result.Message) + "\n\n")

	if m.run.Finished() {
		b.WriteString(m.theme.Title.Render(messages.TuiAnalysisHead) + "\n")
		for _, f := range m.run.Analysis() {
			b.WriteString("  " + f.String() + "\n")
		}
		b.WriteString("\n" + messages.TuiFinished + "\n")
	} else if len(messages.Facts) > 0 {
		fact := messages.Facts[(m.ticks/factEvery)%len(messages.Facts)]
		b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf(messages.TuiFactFmt, fact)) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) readings() string {
	state := kinetics.InitialState(m.run.Params())
	if pt, ok := m.run.Latest(); ok {
		state = pt.State
	}
	values := state.Values()
	lines := make([]string, len(values))
	for i, v := range values {
		lines[i] = fmt.Sprintf(messages.TuiReadingFmt, messages.TuiReadingLabels[i], v, messages.TuiReadingUnits[i])
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// progressBar renders progress in [0,1] as width cells.
func (m Model) progressBar(progress float64, width int) string {
	filled := int(math.Round(math.Max(0, math.Min(1, progress)) * float64(width)))
	return m.theme.Filled.Render(strings.Repeat("█", filled)) +
		m.theme.Empty.Render(strings.Repeat("░", width-filled))
}
