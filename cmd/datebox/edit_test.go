package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEditRequiresTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func() bool { return false }

	_, err := executeCommand("edit")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be a terminal")

	_, err = executeCommand()
	require.Error(t, err)
	require.Contains(t, err.Error(), "datebox parse")
}
