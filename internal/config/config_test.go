package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adamluzsi/linearkit/internal/bench"
	"github.com/adamluzsi/linearkit/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.llib.dev/frameless/pkg/logging"
)

func isolate(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_defaults(t *testing.T) {
	isolate(t)

	c, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, config.Config{
		Repeat:     1,
		Operations: bench.DefaultOperations,
		Output:     bench.FormatText,
		LogLevel:   string(logging.LevelInfo),
		Payload:    bench.PayloadFixed,
	}, c)
	require.Equal(t, logging.LevelInfo, c.Level())
}

func TestLoad_yamlFileInTheWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "linearbench.yaml", "repeat: 3\noutput: yaml\nhistory: runs.db\n")

	c, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, 3, c.Repeat)
	require.Equal(t, bench.FormatYAML, c.Output)
	require.Equal(t, "runs.db", c.History)
	require.Equal(t, bench.DefaultOperations, c.Operations)
}

func TestLoad_jsoncFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "bench.jsonc", `{
		// number of elements per workload
		"operations": 64,
		"payload": "random", /* trailing comma below */
		"log_level": "debug",
	}`)

	c, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, 64, c.Operations)
	require.Equal(t, bench.PayloadRandom, c.Payload)
	require.Equal(t, logging.LevelDebug, c.Level())
}

func TestLoad_environmentOverridesTheFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "bench.json", `{"repeat": 2, "output": "json"}`)
	t.Setenv("LINEARBENCH_REPEAT", "5")

	c, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, 5, c.Repeat)
	require.Equal(t, bench.FormatJSON, c.Output)
}

func TestLoad_explicitFileMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := config.Load(viper.New(), filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_invalidValues(t *testing.T) {
	for name, content := range map[string]string{
		"negative repeat":   "repeat: -1\n",
		"zero operations":   "operations: 0\n",
		"negative ops":      "operations: -1\n",
		"unknown output":    "output: xml\n",
		"unknown payload":   "payload: bytes\n",
		"unknown log level": "log_level: verbose\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			path := writeFile(t, dir, "bench.yaml", content)

			_, err := config.Load(viper.New(), path)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestConfig_Bench(t *testing.T) {
	c := config.Config{Repeat: 2, Operations: 10, Payload: bench.PayloadRandom, ForceTiming: true}
	require.Equal(t, bench.Config{Repeat: 2, Operations: 10, Payload: bench.PayloadRandom, ForceTiming: true}, c.Bench())
}
