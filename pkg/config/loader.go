// Package config ingests the profile configuration file and validates it
// into the typed model in a single pass, so the compiler only ever sees
// well-formed entries.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/portenv/pkg/errors"
	"github.com/arthur-debert/portenv/pkg/logging"
	"github.com/arthur-debert/portenv/pkg/types"
)

// rawRecord is one record as it appears in the configuration file,
// before validation into a typed ProfileEntry
type rawRecord map[string]string

// Load reads the profile configuration at path and validates it into the
// typed model. The parser is chosen by file extension: .yaml/.yml selects
// YAML, anything else is parsed as TOML.
func Load(path string) (types.Config, error) {
	logger := logging.GetLogger("config")

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigNotFound, "config file %s does not exist", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigUnreadable, "config file %s is not readable", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigMalformed, "failed to parse config file %s", path)
	}

	if !k.Exists("scripts") {
		return nil, errors.Newf(errors.ErrConfigMalformed, "config file %s has no scripts table", path)
	}

	var raw map[string][]rawRecord
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &raw,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("scripts", &raw, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigMalformed, "config file %s has an invalid scripts table", path)
	}

	cfg, err := buildConfig(raw)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("profiles", len(cfg)).
		Msg("Configuration loaded")

	return cfg, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
