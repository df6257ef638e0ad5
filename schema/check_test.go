package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/agentschema/errors"
)

func TestCheckCleanAfterExport(t *testing.T) {
	dir := t.TempDir()
	e := newTestExporter()
	_, err := e.Export(dir)
	require.NoError(t, err)

	drift, err := e.Check(dir)
	require.NoError(t, err)
	assert.True(t, drift.Clean())
	assert.Empty(t, drift.Diff)
	assert.NoError(t, drift.Err())
}

func TestCheckReportsStaleAndMissing(t *testing.T) {
	dir := t.TempDir()
	e := newTestExporter()
	_, err := e.Export(dir)
	require.NoError(t, err)

	inputLog := filepath.Join(dir, "input_log.json")
	data, err := os.ReadFile(inputLog)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(inputLog, append([]byte("{}\n"), data...), 0o644))
	require.NoError(t, os.Remove(filepath.Join(dir, "local_message.json")))

	drift, err := e.Check(dir)
	require.NoError(t, err)
	assert.False(t, drift.Clean())
	assert.Equal(t, []string{"input_log.json"}, drift.Stale)
	assert.Equal(t, []string{"local_message.json"}, drift.Missing)
	assert.Contains(t, drift.Diff, "--- "+inputLog)
	assert.Contains(t, drift.Diff, "-{}")

	err = drift.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeSchemaDrift))
	assert.Contains(t, err.Error(), "local_message.json (missing)")
}

func TestCheckEmptyDirectory(t *testing.T) {
	drift, err := newTestExporter().Check(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Len(t, drift.Missing, 5)
	assert.Empty(t, drift.Stale)
}
