package wizard

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
	"github.com/alsnogtix/simuladorFermentacao/internal/terminal"
)

// UI defines the interaction methods.
type UI interface {
	// Input prompts for a text value. describe, when non-nil, renders the
	// description from the text typed so far; validate, when non-nil, may
	// reject the value before the form closes.
	Input(title string, describe func(string) string, value *string, validate func(string) error) error
	Confirm(title string, value *bool) error
	Note(title string, body string) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
	ctrlCAbort bool // set by the key filter while a form runs
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI gated on terminal.IsInteractive.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// ensureInteractive returns an error when the UI is invoked without a terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return errors.New(messages.WizardRequiresTerminal)
}

// wizardKeyMap maps Esc to back navigation and Ctrl+C to exit. Both abort
// the form; runForm tells them apart through ctrlCAbort. The Prev and Next
// bindings only label those keys in the help bar.
func wizardKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

	escBack := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	km.Confirm.Prev = escBack
	km.Input.Prev = escBack
	km.Note.Prev = escBack

	ctrlCExit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit"))
	km.Confirm.Next = ctrlCExit
	km.Input.Next = ctrlCExit
	km.Note.Next = ctrlCExit

	return km
}

// hintField keeps the esc and ctrl+c hints visible. huh disables Prev on
// the first field and Next on the last one; every wizard form has a single
// field, so the keymap is re-applied after each position update.
type hintField struct {
	huh.Field
	km *huh.KeyMap
}

// Update delegates to the inner field and returns the wrapper so the group
// keeps it in its field list.
func (f *hintField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := f.Field.Update(msg)
	if field, ok := model.(huh.Field); ok {
		f.Field = field
	}
	return f, cmd
}

func (f *hintField) WithPosition(p huh.FieldPosition) huh.Field {
	f.Field.WithPosition(p)
	f.WithKeyMap(f.km)
	return f
}

func newHintField(field huh.Field) huh.Field {
	return &hintField{Field: field, km: wizardKeyMap()}
}

// formFilter records Ctrl+C key presses and turns an interrupt into a quit
// so the renderer clears the form on the way out.
func (ui *HuhUI) formFilter() func(tea.Model, tea.Msg) tea.Msg {
	return func(_ tea.Model, msg tea.Msg) tea.Msg {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
			ui.ctrlCAbort = true
		}
		if _, ok := msg.(tea.InterruptMsg); ok {
			return tea.QuitMsg{}
		}
		return msg
	}
}

// runForm runs form on stderr. Esc returns errWizardBack and Ctrl+C returns
// errWizardCancelled.
func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}

	ui.ctrlCAbort = false
	form.WithKeyMap(wizardKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithReportFocus(),
		tea.WithFilter(ui.formFilter()),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		if ui.ctrlCAbort {
			return errWizardCancelled
		}
		return errWizardBack
	}
	if err != nil {
		return fmt.Errorf("run form: %w", err)
	}
	return nil
}

// Input renders a text input prompt whose description is recomputed as
// value changes.
func (ui *HuhUI) Input(title string, describe func(string) string, value *string, validate func(string) error) error {
	input := huh.NewInput().
		Title(title).
		Value(value)
	if describe != nil {
		input = input.DescriptionFunc(func() string { return describe(*value) }, value)
	}
	if validate != nil {
		input = input.Validate(validate)
	}
	return ui.runForm(huh.NewForm(huh.NewGroup(newHintField(input))))
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			newHintField(huh.NewConfirm().
				Title(title).
				Value(value)),
		),
	))
}

// Note renders an informational note screen.
func (ui *HuhUI) Note(title string, body string) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			newHintField(huh.NewNote().
				Title(title).
				Description(body)),
		),
	))
}
