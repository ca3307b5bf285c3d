package config

import (
	"github.com/arthur-debert/portenv/pkg/errors"
	"github.com/arthur-debert/portenv/pkg/types"
)

// Record commands understood by the configuration format
const (
	commandEnv    = "env"
	commandSource = "source"
)

// buildConfig converts raw records into the typed profile model,
// preserving record order within each profile
func buildConfig(raw map[string][]rawRecord) (types.Config, error) {
	cfg := make(types.Config, len(raw))
	for name, records := range raw {
		profile := make(types.Profile, 0, len(records))
		for i, record := range records {
			entry, err := buildEntry(record)
			if err != nil {
				return nil, errors.Wrapf(err, errors.GetErrorCode(err), "profile %s, record %d", name, i+1)
			}
			profile = append(profile, entry)
		}
		cfg[name] = profile
	}

	// includes must reference profiles defined in this configuration;
	// the compiler emits references unconditionally
	for name, profile := range cfg {
		for _, entry := range profile {
			include, ok := entry.(types.IncludeRecord)
			if !ok {
				continue
			}
			if _, defined := cfg[include.Profile]; !defined {
				return nil, errors.Newf(errors.ErrConfigMalformed,
					"profile %s sources undefined profile %s", name, include.Profile)
			}
		}
	}

	return cfg, nil
}

func buildEntry(record rawRecord) (types.ProfileEntry, error) {
	command, ok := record["command"]
	if !ok {
		return nil, errors.New(errors.ErrMissingField, "record has no command field")
	}

	switch command {
	case commandEnv:
		key, err := requireField(record, "key")
		if err != nil {
			return nil, err
		}
		value, err := requireField(record, "value")
		if err != nil {
			return nil, err
		}
		mode, err := requireField(record, "mode")
		if err != nil {
			return nil, err
		}
		kind, err := types.ParseMutationKind(mode)
		if err != nil {
			return nil, err
		}
		return types.MutationRecord{Name: key, Value: value, Kind: kind}, nil

	case commandSource:
		env, err := requireField(record, "env")
		if err != nil {
			return nil, err
		}
		return types.IncludeRecord{Profile: env}, nil

	default:
		return nil, errors.Newf(errors.ErrUnknownCommand, "unknown command %q", command)
	}
}

func requireField(record rawRecord, field string) (string, error) {
	value, ok := record[field]
	if !ok {
		return "", errors.Newf(errors.ErrMissingField, "%s record is missing the %s field", record["command"], field)
	}
	return value, nil
}
