package datebox

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/datebox/internal/logger"
)

func TestDebugLoggingCarriesBoxFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	box, _ := newBox(t, map[Option]any{OptionType: TypeDate}, func(cfg *Config) { cfg.Logger = log })
	_, err = box.Input("5/1/2020", nil)
	require.NoError(t, err)

	var committed map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["message"] == "value committed" {
			committed = entry
		}
	}
	require.NotNil(t, committed)
	require.Equal(t, "Calendar", committed["strategy"])
	require.Equal(t, "date", committed["type"])
	require.NotEmpty(t, committed["value"])
}

func TestQuietLoggerSkipsFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	box, _ := newBox(t, nil, func(cfg *Config) { cfg.Logger = log })
	require.Nil(t, box.fields(map[string]any{"text": "x"}))
	_, err = box.Input("5/1/2020", nil)
	require.NoError(t, err)
	require.Empty(t, buf.String())

	unset, _ := newBox(t, nil)
	require.Nil(t, unset.fields(nil))
}
