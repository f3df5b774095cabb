package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.Equal(t, "dev\n", out.String())
}

func TestExportCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := filepath.Join(t.TempDir(), "site")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"export", "--dir", dir})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "wrote 6 files")

	_, err := os.Stat(filepath.Join(dir, "terms-of-service", "index.html"))
	require.NoError(t, err)
}

func TestBadConfigFile(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"export", "--config", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, root.Execute())
}
