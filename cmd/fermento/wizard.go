package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
	"github.com/alsnogtix/simuladorFermentacao/internal/wizard"
)

var runWizard = func(path string, out io.Writer) error {
	return wizard.Run(path, wizard.NewHuhUI(), out)
}

func newWizardCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.WizardUse,
		Short: messages.WizardShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errors.New(messages.WizardRequiresTerminal)
			}
			path, err := opts.resolvePath()
			if err != nil {
				return err
			}
			return runWizard(path, cmd.OutOrStdout())
		},
	}
}
