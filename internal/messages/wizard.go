package messages

// Wizard prompts and outcomes.
const (
	WizardRequiresTerminal   = "wizard requires an interactive terminal"
	WizardExitWithoutChanges = "Exited without changes."
	WizardNoChanges          = "No changes to save."
	WizardSavedFmt           = "Saved %s"

	WizardFieldTitleFmt     = "%s [%g to %g]"
	WizardFieldHint         = "Leave empty to keep the current value."
	WizardLivePredictionFmt = "Now: %s, pH %.2f, %.0f mL, gluten %.1f%%"
	WizardInvalidValueTitle = "Invalid value"
	WizardPreviewTitle      = "Proposed changes"
	WizardSaveConfirmFmt    = "Save parameters to %s?"
	WizardDiffCurrentFmt    = "%s (current)"
	WizardDiffProposedFmt   = "%s (proposed)"

	WizardLoadConfigFailedFmt   = "load config for wizard: %w"
	WizardReadConfigFailedFmt   = "read config %s: %w"
	WizardParseConfigFailedFmt  = "parse config: %w"
	WizardRenderConfigFailedFmt = "render config: %w"
	WizardPatchConfigFailedFmt  = "patched config is invalid: %w"
	WizardWriteConfigFailedFmt  = "write config %s: %w"
)
