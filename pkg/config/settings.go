package config

import (
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/portenv/pkg/errors"
)

// envPrefix namespaces the environment variables portenv reads for
// its own settings (PORTENV_CONFIG, PORTENV_OUTPUT)
const envPrefix = "PORTENV_"

// Settings are the run options that live outside the profile
// configuration itself. Built-in defaults may be overridden by PORTENV_*
// environment variables; command-line flags win over both.
type Settings struct {
	Config string `koanf:"config"`
	Output string `koanf:"output"`
}

// DefaultSettings returns the built-in settings defaults
func DefaultSettings() Settings {
	return Settings{
		Config: "./portable_env.toml",
		Output: ".",
	}
}

// LoadSettings merges PORTENV_* environment variables over the built-in
// defaults
func LoadSettings() (Settings, error) {
	defaults := DefaultSettings()

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"config": defaults.Config,
		"output": defaults.Output,
	}, "."), nil); err != nil {
		return defaults, errors.Wrap(err, errors.ErrInternal, "failed to load default settings")
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return defaults, errors.Wrap(err, errors.ErrInternal, "failed to read settings from environment")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return defaults, errors.Wrap(err, errors.ErrInternal, "failed to decode settings")
	}
	return settings, nil
}
