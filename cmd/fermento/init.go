package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alsnogtix/simuladorFermentacao/internal/config"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.resolvePath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf(messages.InitExistsFmt, path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			cfg := config.Default()
			if err := applyOverrides(cmd.Flags(), cfg); err != nil {
				return err
			}
			if err := cfg.Validate(path); err != nil {
				return fmt.Errorf("%w: %w", config.ErrConfigValidation, err)
			}
			if err := config.Write(path, cfg); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.InitWrittenFmt, path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)
	return cmd
}
