package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
	"github.com/alsnogtix/simuladorFermentacao/internal/prediction"
)

func newPredictCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   messages.PredictUse,
		Short: messages.PredictShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load(cmd)
			if err != nil {
				return err
			}
			pred := prediction.Predict(cfg.Dough.Params())
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(pred)
			}

			_, _ = fmt.Fprintln(out, messages.PredictHeader)
			_, _ = fmt.Fprintln(out, severityColor(pred.Severity).Sprint(pred.Category))
			for _, line := range pred.Lines() {
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, messages.PredictFlagJSON)
	return cmd
}

// severityColor maps a severity to its terminal colour.
func severityColor(s prediction.Severity) *color.Color {
	switch s {
	case prediction.SeveritySuccess:
		return color.New(color.FgGreen, color.Bold)
	case prediction.SeverityPrimary:
		return color.New(color.FgBlue, color.Bold)
	case prediction.SeverityWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
