// Package generate drives the profiles × dialects loop: load the
// configuration, clean stale outputs, compile every pair, write.
package generate

import (
	"github.com/arthur-debert/portenv/pkg/compiler"
	"github.com/arthur-debert/portenv/pkg/config"
	"github.com/arthur-debert/portenv/pkg/dialect"
	"github.com/arthur-debert/portenv/pkg/logging"
	"github.com/arthur-debert/portenv/pkg/output"
)

// Options configure a generation run
type Options struct {
	// ConfigPath is the profile configuration file to read
	ConfigPath string

	// OutputDir is the root the dialect subdirectories are created under
	OutputDir string
}

// Result summarizes a completed run
type Result struct {
	Profiles int
	Scripts  int
}

// Run executes one full generation pass. Any failure aborts the run
// immediately; there is no partial-success mode.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("generate")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	writer := output.NewWriter(opts.OutputDir)
	if err := writer.Clean(); err != nil {
		return nil, err
	}

	scripts := 0
	for _, name := range cfg.Names() {
		for _, d := range dialect.All() {
			body, err := compiler.CompileProfile(name, cfg[name], d)
			if err != nil {
				return nil, err
			}
			path, err := writer.Write(name, d, body)
			if err != nil {
				return nil, err
			}
			logger.Debug().
				Str("profile", name).
				Str("dialect", d.String()).
				Str("path", path).
				Msg("Profile compiled")
			scripts++
		}
	}

	logger.Info().
		Int("profiles", len(cfg)).
		Int("scripts", scripts).
		Str("output", opts.OutputDir).
		Msg("Generation complete")

	return &Result{Profiles: len(cfg), Scripts: scripts}, nil
}
