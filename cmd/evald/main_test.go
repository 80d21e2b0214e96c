package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPidfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evald.pid")

	require.NoError(t, writePidfile(path))

	pid, err := readPidfile(path)
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)
}

func TestReadPidfileMissing(t *testing.T) {
	_, err := readPidfile(filepath.Join(t.TempDir(), "absent.pid"))
	assert.Error(t, err)
}

func TestReadPidfileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evald.pid")
	require.NoError(t, os.WriteFile(path, []byte("not a pid\n"), 0o644))

	_, err := readPidfile(path)
	assert.Error(t, err)
}

func TestReadPidfileTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evald.pid")
	require.NoError(t, os.WriteFile(path, []byte("12345\n"), 0o644))

	pid, err := readPidfile(path)
	require.NoError(t, err)
	assert.Equal(t, 12345, pid)
}
