package config

import (
	"fmt"

	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

// Validate ensures the config describes a runnable simulation.
// path names the source in error messages.
func (c *Config) Validate(path string) error {
	if err := c.Dough.Params().Validate(); err != nil {
		return fmt.Errorf(messages.ConfigDoughInvalidFmt, path, err)
	}
	if !(c.Simulation.Speed > 0) {
		return fmt.Errorf(messages.ConfigSpeedInvalidFmt, path, c.Simulation.Speed)
	}
	if c.Simulation.TickMS <= 0 {
		return fmt.Errorf(messages.ConfigTickInvalidFmt, path, c.Simulation.TickMS)
	}
	return nil
}
