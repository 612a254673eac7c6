package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/footprint/internal/config"
)

// isolate runs the test in an empty working directory with no footprint
// environment variables set.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvFile, "")
	t.Setenv(config.EnvLogLevel, "")
}

// execute runs the root command with fresh flag values and returns what it
// printed.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	resetCmd.Flags().VisitAll(reset)

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_ConsoleSession(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "answers.json")

	out, err := execute(t, "1\n10\n250\n2\n1\nyes\n4\n", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to the carbon footprint quiz")
	assert.Contains(t, out, "Total Contamination: 979.59 kg CO₂")
	assert.Contains(t, out, "Closing program...")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"E": 250,`)
}

func TestHistory(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "answers.json")
	_, err := execute(t, "1\n0\n0\n0\n1\nyes\n1\n0\n0\n0\n1\nno\n4\n", "--file", file)
	require.NoError(t, err)

	out, err := execute(t, "", "history", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Total number of entries: 2")
	assert.Contains(t, out, "Overall increase since first record: +250.00 kg CO₂ (100.00% increase)")
}

func TestHistory_MissingFileIsNotAnError(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "answers.json")
	out, err := execute(t, "", "history", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "No results file found (answers.json)")
}

func TestHistory_CorruptFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0o644))

	out, err := execute(t, "", "history", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Error: The JSON file is corrupted or empty")
}

func TestReset(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0o644))

	out, err := execute(t, "", "reset", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Run again with --yes")
	assert.FileExists(t, file)

	out, err = execute(t, "", "reset", "--yes", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted "+file)
	assert.NoFileExists(t, file)
}

func TestFileResolution(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	fromFlag := filepath.Join(dir, "flag.json")
	fromEnv := filepath.Join(dir, "env.json")
	fromConfig := filepath.Join(dir, "config.json")

	configFile := filepath.Join(dir, "footprint.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("file: "+fromConfig+"\n"), 0o644))

	_, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFile, cfg.File)

	_, err = execute(t, "", "version", "--config", configFile)
	require.NoError(t, err)
	assert.Equal(t, fromConfig, cfg.File)

	t.Setenv(config.EnvFile, fromEnv)
	_, err = execute(t, "", "version", "--config", configFile)
	require.NoError(t, err)
	assert.Equal(t, fromEnv, cfg.File)

	_, err = execute(t, "", "version", "--config", configFile, "--file", fromFlag)
	require.NoError(t, err)
	assert.Equal(t, fromFlag, cfg.File)
}

func TestStartupErrors(t *testing.T) {
	isolate(t)
	_, err := execute(t, "", "version", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	dir := t.TempDir()
	configFile := filepath.Join(dir, "footprint.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log_level: shouty\n"), 0o644))
	_, err = execute(t, "", "version", "--config", configFile)
	assert.ErrorContains(t, err, "log level")
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "footprint (devel)\n", out)
}
