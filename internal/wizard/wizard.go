// Package wizard implements the interactive recipe editor. It walks the
// parameter catalog, shows the predicted outcome of the current values
// under every prompt, previews the config change as a diff and saves it
// after confirmation.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alsnogtix/simuladorFermentacao/internal/config"
	"github.com/alsnogtix/simuladorFermentacao/internal/logger"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
	"github.com/alsnogtix/simuladorFermentacao/internal/prediction"
)

var (
	errWizardBack      = errors.New("wizard back requested")
	errWizardCancelled = errors.New("wizard cancelled")
)

// Run edits the [dough] parameters of the config at path. A missing file
// starts from the defaults and is created on save. User-facing output goes
// to out.
func Run(path string, ui UI, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	err := run(path, ui, out)
	if errors.Is(err, errWizardBack) || errors.Is(err, errWizardCancelled) {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}
	return err
}

func run(path string, ui UI, out io.Writer) error {
	cfg, found, err := config.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf(messages.WizardLoadConfigFailedFmt, err)
	}

	current, base, err := readBase(path, cfg, found)
	if err != nil {
		return err
	}

	dough := cfg.Dough
	if err := promptDough(ui, &dough); err != nil {
		return err
	}

	pred := prediction.Predict(dough.Params())
	if err := ui.Note(string(pred.Category), strings.Join(pred.Lines(), "\n")); err != nil {
		return err
	}

	if found && dough == cfg.Dough {
		_, _ = fmt.Fprintln(out, messages.WizardNoChanges)
		return nil
	}

	proposed, err := PatchDough(base, dough, path)
	if err != nil {
		return err
	}
	diff := previewDiff(path, current, proposed)
	if diff == "" {
		_, _ = fmt.Fprintln(out, messages.WizardNoChanges)
		return nil
	}
	if err := ui.Note(messages.WizardPreviewTitle, diff); err != nil {
		return err
	}

	save := true
	if err := ui.Confirm(fmt.Sprintf(messages.WizardSaveConfirmFmt, path), &save); err != nil {
		return err
	}
	if !save {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}

	if err := writeConfig(path, proposed); err != nil {
		return err
	}
	logger.L().Debug("wizard.saved", "path", path, "category", pred.Category)
	_, _ = fmt.Fprintf(out, messages.WizardSavedFmt+"\n", path)
	return nil
}

// readBase returns the on-disk content and the document to patch. Without
// a file the on-disk side is empty and the patch starts from the encoded
// defaults.
func readBase(path string, cfg *config.Config, found bool) (current, base string, err error) {
	if found {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf(messages.WizardReadConfigFailedFmt, path, err)
		}
		return string(data), string(data), nil
	}
	data, err := config.Encode(cfg)
	if err != nil {
		return "", "", err
	}
	return "", string(data), nil
}

// promptDough asks for every catalog field in order. Esc on a field goes
// back to the previous one; Esc on the first field leaves the wizard.
func promptDough(ui UI, d *config.Dough) error {
	fields := config.Fields()
	for i := 0; i < len(fields); {
		err := promptField(ui, fields[i], d)
		if errors.Is(err, errWizardBack) {
			if i == 0 {
				return err
			}
			i--
			continue
		}
		if err != nil {
			return err
		}
		i++
	}
	return nil
}

// promptField asks for one value until it parses and lies in range.
func promptField(ui UI, f config.FieldDef, d *config.Dough) error {
	title := fmt.Sprintf(messages.WizardFieldTitleFmt, f.Title(), f.Min, f.Max)
	validate := fieldValidator(f)
	for {
		value := formatNumber(f.Get(*d))
		if err := ui.Input(title, liveDescription(*d, f), &value, validate); err != nil {
			return err
		}
		v, ok, err := parseNumber(f.Label, value)
		if err == nil && ok {
			err = f.CheckRange(v)
		}
		if err != nil {
			if noteErr := ui.Note(messages.WizardInvalidValueTitle, err.Error()); noteErr != nil && !errors.Is(noteErr, errWizardBack) {
				return noteErr
			}
			continue
		}
		if ok {
			f.Set(d, v)
		}
		return nil
	}
}

// liveDescription returns the description for field f: the predicted end
// state of d with the typed text applied to f. Text that does not parse or
// lies outside the editor range leaves the current value in place.
func liveDescription(d config.Dough, f config.FieldDef) func(string) string {
	return func(raw string) string {
		draft := d
		if v, ok, err := parseNumber(f.Label, raw); err == nil && ok && f.CheckRange(v) == nil {
			f.Set(&draft, v)
		}
		pred := prediction.Predict(draft.Params())
		live := fmt.Sprintf(messages.WizardLivePredictionFmt,
			pred.Category, pred.State.PH, pred.State.Volume, pred.State.GlutenRetention)
		return live + "\n" + messages.WizardFieldHint
	}
}

func writeConfig(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf(messages.WizardWriteConfigFailedFmt, path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf(messages.WizardWriteConfigFailedFmt, path, err)
	}
	return nil
}
