package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/portenv/pkg/errors"
)

// sampleConfig mirrors the on-disk schema: profile name mapped to an
// ordered list of records
type sampleConfig struct {
	Scripts map[string][]map[string]string `toml:"scripts"`
}

// Sample returns a starter configuration demonstrating every record form
// the tool understands
func Sample() ([]byte, error) {
	sample := sampleConfig{
		Scripts: map[string][]map[string]string{
			"jdk17": {
				{"command": "env", "key": "JAVA_HOME", "value": `C:\Program Files\Java\jdk17`, "mode": "PATH"},
				{"command": "env", "key": "PATH", "value": `%JAVA_HOME%\bin`, "mode": "PREPEND_PATH"},
			},
			"ant": {
				{"command": "source", "env": "jdk17"},
				{"command": "env", "key": "ANT_HOME", "value": `C:\portable\ant-1.9`, "mode": "PATH"},
				{"command": "env", "key": "PATH", "value": `%ANT_HOME%\bin`, "mode": "PREPEND_PATH"},
			},
			"putty": {
				{"command": "env", "key": "PATH", "value": `C:\portable\putty`, "mode": "PREPEND_PATH"},
			},
		},
	}

	data, err := toml.Marshal(sample)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal sample config")
	}
	return data, nil
}
