package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	dberrors "github.com/alexisbeaulieu97/datebox/pkg/errors"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateConfig(nil))
	require.NoError(t, ValidateConfig(Default()))

	cases := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"bad value", Config{Version: "1.0", Value: "yesterday"}, "value"},
		{"bad display format", Config{Version: "1.0", DisplayFormat: "'open"}, "displayFormat"},
		{"bad serialization format", Config{Version: "1.0", DateSerializationFormat: "dd/MM"}, "dateSerializationFormat"},
		{"interval out of bounds", Config{Version: "1.0", Interval: 1000}, "interval"},
		{"unknown rule", Config{Version: "1.0", Rules: []string{"leap"}}, "rules[0]"},
		{"duplicate rule", Config{Version: "1.0", Rules: []string{"weekday", "weekday"}}, "rules[1]"},
		{"conflicting rules", Config{Version: "1.0", Rules: []string{"future", "past"}}, "rules"},
		{"bad platform", Config{Version: "1.0", Device: Device{Platform: "beos"}}, "device.platform"},
		{"bad platform version", Config{Version: "1.0", Device: Device{Version: "ten"}}, "device.version"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateConfig(&tc.cfg)
			var validationErr *dberrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestSemverValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	tests := []struct {
		version  string
		expected bool
	}{
		{"1.0", true},
		{"1.0.0", true},
		{"2.1.3-beta.2+build.123", true},
		{"", false},
		{"v1", false},
		{"1.x.0", false},
		{"v1.0.0", false},
	}

	for _, tt := range tests {
		err := v.Var(tt.version, "semver")
		require.Equal(t, tt.expected, err == nil, "version %q", tt.version)
	}
}

func TestDateTags(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	require.NoError(t, v.Var("2020-05-01", "iso_date"))
	require.NoError(t, v.Var("2020-05-01T10:00:00Z", "iso_date"))
	require.Error(t, v.Var("05/01/2020", "iso_date"))

	require.NoError(t, v.Var("shortdate", "ldml"))
	require.NoError(t, v.Var("MMMM d, yyyy", "ldml"))
	require.Error(t, v.Var("'just text'", "ldml"))

	require.NoError(t, v.Var("number", "serialization_format"))
	require.NoError(t, v.Var("yyyy-MM-dd", "serialization_format"))
	require.NoError(t, v.Var("yyyy-MM-ddTHH:mm:ssZ", "serialization_format"))
	require.Error(t, v.Var("MM/dd/yyyy", "serialization_format"))

	require.NoError(t, v.Var("13.2", "platform_version"))
	require.NoError(t, v.Var("v4", "platform_version"))
	require.Error(t, v.Var("4.x", "platform_version"))
}
