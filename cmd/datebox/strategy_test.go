package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrategyCommandDefaults(t *testing.T) {
	out, err := executeCommand("strategy")
	require.NoError(t, err)
	require.Contains(t, out, "Strategy:    Calendar")
	require.Contains(t, out, "Format:      shortdate")
	require.Contains(t, out, "Input width: 15")
}

func TestStrategyCommandJSON(t *testing.T) {
	out, err := executeCommand("--set", "type=time", "strategy", "--json")
	require.NoError(t, err)

	var report strategyReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, "List", report.Strategy)
	require.Equal(t, "list", report.PickerType)
	require.Equal(t, "Select time", report.PopupTitle)
	require.Contains(t, report.Keys, "tab")
}

func TestStrategyCommandFollowsDevice(t *testing.T) {
	out, err := executeCommand("--set", "platform=ios", "strategy", "--json")
	require.NoError(t, err)

	var report strategyReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, "Native", report.Strategy)
	require.Equal(t, "native", report.PickerType)
	require.Zero(t, report.InputWidth)
	require.True(t, report.DropDownButton)
}
