// pkg/generate/generate_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Filesystem (temp dirs)
// PURPOSE: Test the full config-to-scripts generation pass

package generate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/portenv/pkg/dialect"
	"github.com/arthur-debert/portenv/pkg/errors"
	"github.com/arthur-debert/portenv/pkg/generate"
)

const exampleTOML = `
[scripts]
ant = [
    {command = 'source', env = 'jdk17'},
    {command = 'env', key = 'ANT_HOME', value = 'C:\portable\ant-1.9', mode = 'PATH'},
    {command = 'env', key = 'PATH', value = '%ANT_HOME%\bin', mode = 'PREPEND_PATH'}
]
jdk17 = [
    {command = 'env', key = 'JAVA_HOME', value = 'C:\Program Files\Java\jdk17', mode = 'PATH'},
    {command = 'env', key = 'PATH', value = '%JAVA_HOME%\bin', mode = 'PREPEND_PATH'}
]
`

func writeExampleConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portable_env.toml")
	require.NoError(t, os.WriteFile(path, []byte(exampleTOML), 0644))
	return path
}

func TestRun(t *testing.T) {
	outputDir := t.TempDir()

	result, err := generate.Run(generate.Options{
		ConfigPath: writeExampleConfig(t),
		OutputDir:  outputDir,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Profiles)
	assert.Equal(t, 6, result.Scripts)

	// one script per profile and dialect, each starting with the marker
	for _, profile := range []string{"ant", "jdk17"} {
		for _, d := range dialect.All() {
			path := filepath.Join(outputDir, d.Subdir(), d.ScriptFileName(profile))
			data, err := os.ReadFile(path)
			require.NoError(t, err, "expected script at %s", path)
			assert.True(t, strings.Contains(strings.SplitN(string(data), "\n", 2)[0], dialect.GeneratedMarker))
		}
	}

	bash, err := os.ReadFile(filepath.Join(outputDir, "bash", "env_ant.sh"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(bash), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "source env_jdk17.sh", lines[1])
	assert.Equal(t, "export ANT_HOME=`cygpath -p  \"C:\\portable\\ant-1.9\"`", lines[2])
	assert.Equal(t, "export PATH=`cygpath -p  \"\\${ANT_HOME}\\bin\"`:${PATH}", lines[3])
}

func TestRun_IsIdempotent(t *testing.T) {
	configPath := writeExampleConfig(t)
	outputDir := t.TempDir()
	opts := generate.Options{ConfigPath: configPath, OutputDir: outputDir}

	_, err := generate.Run(opts)
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(outputDir, "cmd", "env_ant.bat"))
	require.NoError(t, err)

	_, err = generate.Run(opts)
	require.NoError(t, err)

	second, err := os.ReadFile(filepath.Join(outputDir, "cmd", "env_ant.bat"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRun_CleansDroppedProfiles(t *testing.T) {
	outputDir := t.TempDir()

	// simulate a prior run that generated a profile no longer configured
	staleDir := filepath.Join(outputDir, "bash")
	require.NoError(t, os.MkdirAll(staleDir, 0755))
	stale := filepath.Join(staleDir, "env_dropped.sh")
	require.NoError(t, os.WriteFile(stale, []byte(dialect.Posix.MarkerComment()+"export OLD=1\n"), 0644))

	_, err := generate.Run(generate.Options{
		ConfigPath: writeExampleConfig(t),
		OutputDir:  outputDir,
	})
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(staleDir, "env_ant.sh"))
}

func TestRun_ConfigNotFound(t *testing.T) {
	_, err := generate.Run(generate.Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		OutputDir:  t.TempDir(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))
}

func TestRun_MalformedPlaceholderAborts(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "portable_env.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`[scripts]
broken = [{command = 'env', key = 'X', value = 'a%b', mode = 'SET'}]
`), 0644))

	_, err := generate.Run(generate.Options{
		ConfigPath: configPath,
		OutputDir:  t.TempDir(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedPlaceholder))
}
