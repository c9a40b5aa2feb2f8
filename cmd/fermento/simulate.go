package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
	"github.com/alsnogtix/simuladorFermentacao/internal/report"
	"github.com/alsnogtix/simuladorFermentacao/internal/simulation"
	"github.com/alsnogtix/simuladorFermentacao/internal/tui"
)

var runTUI = tui.Run

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		headless bool
		csvPath  string
		speed    float64
	)
	cmd := &cobra.Command{
		Use:   messages.SimulateUse,
		Short: messages.SimulateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("speed") {
				speed = cfg.Simulation.Speed
			}
			run := simulation.NewRun(cfg.Dough.Params())
			if err := run.SetSpeed(speed); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			interactive := !headless
			if interactive && !isTerminal() {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), messages.SimulateNoTerminal)
				interactive = false
			}
			if interactive {
				interval := time.Duration(cfg.Simulation.TickMS) * time.Millisecond
				if err := runTUI(run, interval, out); err != nil {
					return err
				}
			} else if err := run.RunToCompletion(cmd.Context()); err != nil {
				return err
			}

			if csvPath != "" {
				if err := writeCSV(csvPath, out, run); err != nil {
					return err
				}
			}
			return report.Write(out, run)
		},
	}
	cmd.Flags().BoolVar(&headless, "headless", false, messages.SimulateFlagHeadless)
	cmd.Flags().StringVar(&csvPath, "csv", "", messages.SimulateFlagCSV)
	cmd.Flags().Float64Var(&speed, "speed", simulation.DefaultSpeed, messages.SimulateFlagSpeed)
	return cmd
}

// writeCSV exports the trajectory to path, or to stdout for "-".
func writeCSV(path string, stdout io.Writer, run *simulation.Run) error {
	if path == "-" {
		return report.WriteCSV(stdout, run)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf(messages.SimulateCSVOpenFmt, path, err)
	}
	if err := report.WriteCSV(f, run); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
