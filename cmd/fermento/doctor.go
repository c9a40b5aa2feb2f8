package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alsnogtix/simuladorFermentacao/internal/doctor"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
	"github.com/alsnogtix/simuladorFermentacao/internal/warnings"
)

var checkRecipe = warnings.CheckRecipe

func newDoctorCmd(opts *rootOptions) *cobra.Command {
	var noiseMode string
	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path, err := opts.resolvePath()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, path)

			// 1. Config
			allResults, cfg := doctor.CheckConfig(path)
			if cfg != nil {
				if err := applyOverrides(cmd.Flags(), cfg); err != nil {
					return err
				}
				if err := cfg.Validate(path); err != nil {
					allResults = append(allResults, doctor.Result{
						Status:         doctor.StatusFail,
						CheckName:      messages.DoctorCheckNameConfig,
						Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
						Recommendation: messages.DoctorConfigLoadRecommend,
					})
					cfg = nil
				}
			}

			// 2. Ranges
			if cfg != nil {
				allResults = append(allResults, doctor.CheckRanges(cfg.Dough)...)
			}

			// 3. Terminal
			allResults = append(allResults, doctor.CheckTerminal(isTerminal()))

			hasFail := doctor.HasFailure(allResults)
			for _, r := range allResults {
				printResult(out, r)
			}

			// 4. Recipe warnings, only for a config that validated.
			var warningList []warnings.Warning
			if cfg != nil {
				_, _ = fmt.Fprintln(out, messages.DoctorWarningSystemHeader)
				warningList = warnings.ApplyNoiseControl(checkRecipe(cfg.Dough.Params()), noiseMode)
			}
			if len(warningList) > 0 {
				for _, w := range warningList {
					_, _ = fmt.Fprintln(out, w.String())
					_, _ = fmt.Fprintln(out)
				}
				hasFail = true
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
	cmd.Flags().StringVar(&noiseMode, "noise-mode", warnings.NoiseModeDefault, messages.DoctorFlagNoiseMode)
	return cmd
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	for i, line := range strings.Split(recommendation, "\n") {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
