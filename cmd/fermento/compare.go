package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alsnogtix/simuladorFermentacao/internal/config"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
	"github.com/alsnogtix/simuladorFermentacao/internal/report"
	"github.com/alsnogtix/simuladorFermentacao/internal/simulation"
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.CompareUse,
		Short: messages.CompareShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]string, len(args))
			for i, path := range args {
				cfg, err := config.LoadConfig(path)
				if err != nil {
					return err
				}
				run := simulation.NewRun(cfg.Dough.Params())
				if err := run.RunToCompletion(cmd.Context()); err != nil {
					return err
				}
				reports[i] = report.Render(run)
			}

			out := cmd.OutOrStdout()
			diff := report.Compare(args[0], reports[0], args[1], reports[1])
			if diff == "" {
				_, _ = fmt.Fprintln(out, messages.CompareSame)
				return nil
			}
			for _, line := range strings.Split(diff, "\n") {
				_, _ = fmt.Fprintln(out, colorDiffLine(line))
			}
			return nil
		},
	}
}

func colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return color.New(color.Bold).Sprint(line)
	case strings.HasPrefix(line, "+"):
		return color.GreenString("%s", line)
	case strings.HasPrefix(line, "-"):
		return color.RedString("%s", line)
	case strings.HasPrefix(line, "@@"):
		return color.CyanString("%s", line)
	default:
		return line
	}
}
