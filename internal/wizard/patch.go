package wizard

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	toml "github.com/pelletier/go-toml"

	"github.com/alsnogtix/simuladorFermentacao/internal/config"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

// PatchDough rewrites the [dough] table of content with the values of d.
// Every other table and key is carried over. The result is re-parsed with
// the strict loader so an unknown or invalid key fails here, not on the
// next run.
func PatchDough(content string, d config.Dough, source string) (string, error) {
	tree, err := toml.Load(content)
	if err != nil {
		return "", fmt.Errorf(messages.WizardParseConfigFailedFmt, err)
	}
	for _, f := range config.Fields() {
		tree.SetPath([]string{config.SectionDough, f.Key}, f.Get(d))
	}
	out, err := tree.ToTomlString()
	if err != nil {
		return "", fmt.Errorf(messages.WizardRenderConfigFailedFmt, err)
	}
	if _, err := config.ParseConfig([]byte(out), source); err != nil {
		return "", fmt.Errorf(messages.WizardPatchConfigFailedFmt, err)
	}
	return out, nil
}

// previewDiff returns the unified diff between the current and proposed
// config, or an empty string when nothing changes.
func previewDiff(path, current, proposed string) string {
	return strings.TrimSpace(udiff.Unified(
		fmt.Sprintf(messages.WizardDiffCurrentFmt, path),
		fmt.Sprintf(messages.WizardDiffProposedFmt, path),
		current,
		proposed,
	))
}
