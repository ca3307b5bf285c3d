// Package cli wires the cobra command tree for portenv.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/portenv/internal/version"
	"github.com/arthur-debert/portenv/pkg/config"
	"github.com/arthur-debert/portenv/pkg/errors"
	"github.com/arthur-debert/portenv/pkg/generate"
	"github.com/arthur-debert/portenv/pkg/logging"
)

// NewRootCmd creates and returns the root command. Running it with no
// subcommand performs a full generation pass.
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
		outputDir  string
	)

	settings, settingsErr := config.LoadSettings()
	if settingsErr != nil {
		settings = config.DefaultSettings()
	}

	rootCmd := &cobra.Command{
		Use:   "portenv",
		Short: "Generate per-shell environment activation scripts",
		Long: `portenv reads a declarative description of named environment profiles
and emits, for each profile, one activation script per shell dialect
(cmd, bash, PowerShell). Sourcing a generated script reproduces the
profile's environment mutations in that shell's native syntax.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if settingsErr != nil {
				return settingsErr
			}
			result, err := generate.Run(generate.Options{
				ConfigPath: configPath,
				OutputDir:  outputDir,
			})
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Generated %d scripts for %d profiles", result.Scripts, result.Profiles))
			return nil
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", settings.Config, "Location of the config file")
	rootCmd.Flags().StringVar(&outputDir, "output", settings.Output, "Where to put output script directories")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("portenv version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: "Generate a starter configuration file",
		Long:  "Output a starter profile configuration to stdout, or write it to ./portable_env.toml with -w.",
		Example: `  portenv gen-config       # Output to stdout
  portenv gen-config -w    # Write to ./portable_env.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Sample()
			if err != nil {
				return err
			}
			if !write {
				cmd.Print(string(data))
				return nil
			}
			if err := os.WriteFile("portable_env.toml", data, 0644); err != nil {
				return errors.Wrap(err, errors.ErrOutputWriteFailed, "failed to write portable_env.toml")
			}
			printSuccess("Wrote portable_env.toml")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to ./portable_env.toml instead of stdout")

	return cmd
}
