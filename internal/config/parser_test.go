package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	dberrors "github.com/alexisbeaulieu97/datebox/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
name: "Booking"
description: "Arrival date"
type: date
pickerType: calendar
value: "2020-05-01"
min: "2020-01-01"
max: "2020-12-31"
displayFormat: "yyyy-MM-dd"
showClearButton: true
messages:
  invalidDate: "Not a date"
rules:
  - required
  - weekday
device:
  platform: ios
  version: "13.2"
`

	invalidYAML := `version: [1, 0]
type: date
`

	missingVersion := `type: date
`

	badType := `version: "1.0"
type: week
`

	badRange := `version: "1.0"
min: "2021-01-01"
max: "2020-01-01"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "Booking", cfg.Name)
				require.Equal(t, "date", cfg.Type)
				require.Equal(t, "2020-05-01", cfg.Value)
				require.NotNil(t, cfg.ShowClearButton)
				require.True(t, *cfg.ShowClearButton)
				require.Nil(t, cfg.ReadOnly)
				require.Equal(t, "Not a date", cfg.Messages.InvalidDate)
				require.Equal(t, []string{"required", "weekday"}, cfg.Rules)
				require.Equal(t, "ios", cfg.Device.Platform)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
				var parseErr *dberrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "missing version returns validation error",
			contents: missingVersion,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *dberrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name:     "unknown type is rejected",
			contents: badType,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *dberrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "type", validationErr.Field)
				require.Contains(t, validationErr.Message, "oneof")
			},
		},
		{
			name:     "max before min is rejected",
			contents: badRange,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *dberrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "max", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *dberrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "datebox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
