package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvDebug turns on debug logging when set to a true value.
const EnvDebug = "FERMENTO_DEBUG"

// Env is the environment-variable layer of the CLI settings.
type Env struct {
	ConfigPath string `env:"FERMENTO_CONFIG"`
	Debug      bool   `env:"FERMENTO_DEBUG"`
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
