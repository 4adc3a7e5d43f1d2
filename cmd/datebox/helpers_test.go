package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixedClock = "2024-03-15T09:30:00Z"

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--tz", "UTC", "--now", fixedClock}, args...))

	err := root.Execute()
	return buf.String(), err
}

func writeOptions(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "datebox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
