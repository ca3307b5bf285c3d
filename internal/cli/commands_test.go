// internal/cli/commands_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Filesystem (temp dirs)
// PURPOSE: Test the cobra command tree end to end

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/portenv/internal/cli"
)

func TestRootCmd_Generates(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "portable_env.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`[scripts]
putty = [{command = 'env', key = 'PATH', value = 'C:\portable\putty', mode = 'PREPEND_PATH'}]
`), 0644))
	outputDir := t.TempDir()

	rootCmd := cli.NewRootCmd()
	rootCmd.SetArgs([]string{"--config", configPath, "--output", outputDir})
	require.NoError(t, rootCmd.Execute())

	for _, rel := range []string{"cmd/env_putty.bat", "bash/env_putty.sh", "ps/env_putty.ps1"} {
		assert.FileExists(t, filepath.Join(outputDir, rel))
	}
}

func TestRootCmd_FailsOnMissingConfig(t *testing.T) {
	rootCmd := cli.NewRootCmd()
	rootCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.toml"), "--output", t.TempDir()})
	assert.Error(t, rootCmd.Execute())
}

func TestGenConfigCmd_WritesToStdout(t *testing.T) {
	var out bytes.Buffer

	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"gen-config"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "scripts")
	assert.Contains(t, out.String(), "JAVA_HOME")
}
