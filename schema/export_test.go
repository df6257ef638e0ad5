package schema

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/agentschema/errors"
	"github.com/grovetools/agentschema/logging"
)

var wantFiles = []string{
	"action_log.json",
	"input_log.json",
	"launch_local_result.json",
	"launch_result.json",
	"local_message.json",
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

func TestExportCreatesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "schemas")

	report, err := newTestExporter().Export(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, report.Dir)
	assert.Equal(t, []string{
		"action_log.json",
		"input_log.json",
		"launch_result.json",
		"launch_local_result.json",
		"local_message.json",
	}, report.Files)
	assert.Equal(t, wantFiles, listDir(t, dir))

	var total int64
	for _, name := range wantFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NotEmpty(t, data)
		total += int64(len(data))

		var parsed map[string]any
		require.NoError(t, json.Unmarshal(data, &parsed), "%s should be valid JSON", name)
		assert.Equal(t, Draft, parsed["$schema"])
		assert.NotEmpty(t, parsed["title"])

		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(filePerms), info.Mode().Perm())
	}
	assert.Equal(t, total, report.Bytes)
}

func TestExportIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	e := newTestExporter()

	_, err := e.Export(dir)
	require.NoError(t, err)
	first := map[string][]byte{}
	for _, name := range wantFiles {
		first[name], err = os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
	}

	// Second run reuses the existing directory.
	_, err = e.Export(dir)
	require.NoError(t, err)
	for _, name := range wantFiles {
		second, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, first[name], second, "%s changed between runs", name)
	}
	assert.Equal(t, wantFiles, listDir(t, dir))
}

func TestExportOverwritesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "local_message.json")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o600))

	_, err := newTestExporter().Export(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}

func TestExportFailsWhenOutputIsAFile(t *testing.T) {
	parent := t.TempDir()
	blocked := filepath.Join(parent, "schemas")
	require.NoError(t, os.WriteFile(blocked, []byte("not a directory"), 0o644))

	_, err := newTestExporter().Export(blocked)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeOutputDir))

	// Nothing written, the blocking file untouched.
	assert.Equal(t, []string{"schemas"}, listDir(t, parent))
	data, err := os.ReadFile(blocked)
	require.NoError(t, err)
	assert.Equal(t, "not a directory", string(data))
}

func TestExportStopsAtFirstWriteFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory where the first schema file belongs makes the rename fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "action_log.json"), 0o755))

	_, err := newTestExporter().Export(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeWriteFailed))

	groveErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "action_log.json"), groveErr.Details["path"])

	// No later schemas and no leftover temp files.
	assert.Equal(t, []string{"action_log.json"}, listDir(t, dir))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir), "existing directory is not an error")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestExportLogsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("schema-test",
		logging.WithOutput(&buf),
		logging.WithLevel(logrus.DebugLevel),
		logging.WithFormatter(&logrus.JSONFormatter{}))

	e := NewExporter(Default(), WithLogger(logger))
	_, err := e.Export(t.TempDir())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Wrote schema"`)
	assert.Contains(t, out, `"schema":"LaunchLocalResult"`)
	assert.Contains(t, out, "Wrote 5 schemas")
}
