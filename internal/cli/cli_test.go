package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adamluzsi/linearkit/internal/bench"
	"github.com/adamluzsi/linearkit/internal/cli"
	"github.com/adamluzsi/linearkit/internal/config"
	"github.com/adamluzsi/linearkit/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func isolate(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestRun_textReport(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "run", "--operations", "64", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "ListTest elapsed in   "))
	assert.True(t, strings.HasSuffix(lines[0], " ns when prepending"))
	assert.True(t, strings.HasPrefix(lines[1], "VectorTest elapsed in "))
	assert.True(t, strings.HasPrefix(lines[2], "Difference when prepending       "))
	assert.True(t, strings.HasSuffix(lines[5], " ns"))
}

func TestRun_repeatSkipsTheTimedWorkloads(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "run", "3")
	require.NoError(t, err)
	require.Equal(t, "smoke workload passed 3 times\n", stdout)
}

func TestRun_jsonReport(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "run", "2", "--force-timing", "--operations", "16", "-o", "json", "--payload", "random")
	require.NoError(t, err)

	var r bench.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &r))
	require.Equal(t, 2, r.SmokeRuns)
	require.Len(t, r.Measurements, 4)
	require.Len(t, r.Comparisons, 2)
	m, ok := r.Lookup(bench.ContainerVector, bench.WorkloadPopLast)
	require.True(t, ok)
	require.Equal(t, 16, m.Operations)
}

func TestRun_invalidRepeat(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "run", "many")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "run", "--", "-1")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_zeroRepeatRunsNothing(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "run", "0")
	require.NoError(t, err)
	require.Equal(t, "smoke workload passed 0 times\n", stdout)
}

func TestRun_zeroOperationsIsRejected(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "run", "--operations", "0")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_logsToStderr(t *testing.T) {
	isolate(t)

	stdout, stderr, err := execute(t, "run", "--operations", "8", "--log-level", "debug", "-o", "yaml")
	require.NoError(t, err)
	require.Contains(t, stdout, "workload: prepend")
	require.Contains(t, stderr, "workload measured")
}

func TestHistory(t *testing.T) {
	dir := isolate(t)
	dbPath := filepath.Join(dir, "runs.db")

	_, _, err := execute(t, "history")
	require.ErrorIs(t, err, cli.ErrHistoryDisabled)

	_, _, err = execute(t, "run", "--operations", "8", "--history", dbPath)
	require.NoError(t, err)
	_, _, err = execute(t, "run", "--operations", "8", "--history", dbPath)
	require.NoError(t, err)

	store, err := history.Open(dbPath)
	require.NoError(t, err)
	reports, err := store.List(context.Background())
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.Len(t, reports, 2)

	stdout, _, err := execute(t, "history", "--history", dbPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "# "+reports[0].ID)
	require.Contains(t, stdout, "# "+reports[1].ID)

	stdout, _, err = execute(t, "history", "--history", dbPath, "--id", reports[1].ID, "-o", "json")
	require.NoError(t, err)
	var r bench.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &r))
	require.Equal(t, reports[1].ID, r.ID)

	_, _, err = execute(t, "history", "--history", dbPath, "--id", "unknown")
	require.ErrorIs(t, err, history.ErrNotFound)
}

func TestRun_configFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bench.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{
		// keep it quick
		"operations": 4,
		"output": "json",
	}`), 0600))

	stdout, _, err := execute(t, "--config", path, "run")
	require.NoError(t, err)

	var r bench.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &r))
	m, ok := r.Lookup(bench.ContainerLinkedList, bench.WorkloadPrepend)
	require.True(t, ok)
	require.Equal(t, 4, m.Operations)
}
