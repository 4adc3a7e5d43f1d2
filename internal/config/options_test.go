package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/datebox/internal/datebox"
)

func TestToOptionsIncludesOnlyPresentFields(t *testing.T) {
	t.Parallel()

	clear := true
	cfg := &Config{
		Version:         "1.0",
		Type:            "datetime",
		Value:           "2020-05-01T10:00:00",
		Interval:        15,
		ShowClearButton: &clear,
		Messages:        Messages{DateOutOfRange: "Too late"},
	}

	opts := cfg.ToOptions()
	require.Equal(t, map[datebox.Option]any{
		datebox.OptionType:                  datebox.TypeDateTime,
		datebox.OptionValue:                 "2020-05-01T10:00:00",
		datebox.OptionInterval:              15,
		datebox.OptionShowClearButton:       true,
		datebox.OptionDateOutOfRangeMessage: "Too late",
	}, opts)
}

func TestToOptionsBuildsBox(t *testing.T) {
	t.Parallel()

	cfg, err := Parse("inline", []byte(`version: "1.0"
type: date
value: "2020-05-01"
displayFormat: "yyyy/MM/dd"
device:
  platform: android
  version: "4.3"
`))
	require.NoError(t, err)

	box, err := datebox.New(datebox.Config{Options: cfg.ToOptions(), Device: cfg.BoxDevice()})
	require.NoError(t, err)
	require.Equal(t, "2020/05/01", box.Text())
	require.Equal(t, datebox.PickerRollers, box.PickerType())
}

func TestBoxDevice(t *testing.T) {
	t.Parallel()

	require.Equal(t, datebox.DesktopDevice, Default().BoxDevice())

	phone := (&Config{Device: Device{Platform: "ios", DeviceType: "phone", Version: "v13"}}).BoxDevice()
	require.Equal(t, datebox.PlatformIOS, phone.Platform)
	require.True(t, phone.Phone)
	require.Equal(t, "13", phone.Version)

	require.Equal(t, 1024, Default().ScreenWidth())
	require.Equal(t, 360, (&Config{Device: Device{ScreenWidth: 360}}).ScreenWidth())
}

func TestOverride(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Override("picker", "list"))
	require.Equal(t, "list", cfg.PickerType)

	require.Error(t, cfg.Override("type", "week"))
	require.Error(t, cfg.Override("colour", "red"))
}
