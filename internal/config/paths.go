package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

// EnvConfigPath overrides the default config location when set.
const EnvConfigPath = "FERMENTO_CONFIG"

// ResolvePath returns the config file to use. An explicit path wins, then
// the FERMENTO_CONFIG value, then fermento.toml in dir. A leading ~ expands
// to the user's home directory.
func ResolvePath(explicit, env, dir string) (string, error) {
	candidate := strings.TrimSpace(explicit)
	if candidate == "" {
		candidate = strings.TrimSpace(env)
	}
	if candidate == "" {
		return filepath.Join(dir, messages.ConfigDefaultFileName), nil
	}
	expanded, err := homedir.Expand(candidate)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolvePathFmt, candidate, err)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(dir, expanded)
	}
	return filepath.Clean(expanded), nil
}
