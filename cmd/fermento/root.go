package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alsnogtix/simuladorFermentacao/internal/config"
	"github.com/alsnogtix/simuladorFermentacao/internal/logger"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
	"github.com/alsnogtix/simuladorFermentacao/internal/terminal"
)

var (
	getwd      = os.Getwd
	isTerminal = terminal.IsInteractive
)

const (
	flagConfig = "config"
	flagDebug  = "debug"
)

// paramFlags maps each override flag to its [dough] key.
var paramFlags = []struct {
	name  string
	key   string
	usage string
}{
	{"flour", config.KeyFlour, messages.FlagFlour},
	{"water", config.KeyWater, messages.FlagWater},
	{"temp", config.KeyTemperature, messages.FlagTemp},
	{"sugar", config.KeySugar, messages.FlagSugar},
	{"salt", config.KeySalt, messages.FlagSalt},
	{"duration", config.KeyDuration, messages.FlagDuration},
}

type rootOptions struct {
	configPath string
	debug      bool
	env        config.Env
	restoreLog func()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			e, err := config.ParseEnv()
			if err != nil {
				return err
			}
			opts.env = e
			opts.restoreLog = logger.Setup(cmd.ErrOrStderr(), opts.debug || e.Debug)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.restoreLog != nil {
				opts.restoreLog()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, flagConfig, "", messages.RootFlagConfig)
	flags.BoolVar(&opts.debug, flagDebug, false, messages.RootFlagDebug)
	for _, pf := range paramFlags {
		f, _ := config.LookupField(pf.key)
		flags.Float64(pf.name, f.Default, pf.usage)
	}

	cmd.AddCommand(
		newPredictCmd(opts),
		newSimulateCmd(opts),
		newCompareCmd(opts),
		newInitCmd(opts),
		newWizardCmd(opts),
		newDoctorCmd(opts),
		newMcpCmd(),
	)
	return cmd
}

// resolvePath returns the config path from --config, FERMENTO_CONFIG or
// the working directory.
func (o *rootOptions) resolvePath() (string, error) {
	wd, err := getwd()
	if err != nil {
		return "", err
	}
	return config.ResolvePath(o.configPath, o.env.ConfigPath, wd)
}

// load reads the config, falling back to defaults when the file is missing,
// and applies the parameter override flags.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, string, error) {
	path, err := o.resolvePath()
	if err != nil {
		return nil, "", err
	}
	cfg, found, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, "", err
	}
	if err := applyOverrides(cmd.Flags(), cfg); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(path); err != nil {
		return nil, "", fmt.Errorf("%w: %w", config.ErrConfigValidation, err)
	}
	logger.L().Debug("config.loaded", "path", path, "found", found)
	return cfg, path, nil
}

// applyOverrides copies every explicitly set parameter flag into cfg.
func applyOverrides(flags *pflag.FlagSet, cfg *config.Config) error {
	for _, pf := range paramFlags {
		if !flags.Changed(pf.name) {
			continue
		}
		v, err := flags.GetFloat64(pf.name)
		if err != nil {
			return err
		}
		f, _ := config.LookupField(pf.key)
		f.Set(&cfg.Dough, v)
	}
	return nil
}
