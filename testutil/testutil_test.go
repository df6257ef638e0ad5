package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempModule(t *testing.T) {
	dir := TempModule(t)
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "module example.com/")
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := WriteFile(t, t.TempDir(), "a/b/c.txt", "hi")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
}

func TestRandomString(t *testing.T) {
	assert.Len(t, RandomString(8), 8)
	assert.NotEqual(t, RandomString(16), RandomString(16))
}

func TestExecuteCommand(t *testing.T) {
	cmd := &cobra.Command{
		Use: "echo",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Print("out")
			cmd.PrintErr("err")
			return nil
		},
	}
	stdout, stderr, err := ExecuteCommand(cmd)
	require.NoError(t, err)
	assert.Equal(t, "out", stdout)
	assert.Equal(t, "err", stderr)
}
