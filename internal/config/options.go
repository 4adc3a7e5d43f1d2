package config

import (
	"strings"

	"github.com/alexisbeaulieu97/datebox/internal/datebox"
	dberrors "github.com/alexisbeaulieu97/datebox/pkg/errors"
)

// ToOptions converts the document into the option map a box is created
// with. Only fields present in the document are included so device and
// strategy defaults still apply to the rest.
func (c *Config) ToOptions() map[datebox.Option]any {
	opts := make(map[datebox.Option]any)

	setString := func(name datebox.Option, value string) {
		if value != "" {
			opts[name] = value
		}
	}
	setBool := func(name datebox.Option, value *bool) {
		if value != nil {
			opts[name] = *value
		}
	}

	if c.Type != "" {
		opts[datebox.OptionType] = datebox.Type(c.Type)
	}
	if c.PickerType != "" {
		opts[datebox.OptionPickerType] = datebox.PickerType(c.PickerType)
	}
	if c.ApplyValueMode != "" {
		opts[datebox.OptionApplyValueMode] = datebox.ApplyValueMode(c.ApplyValueMode)
	}
	setString(datebox.OptionValue, c.Value)
	setString(datebox.OptionMin, c.Min)
	setString(datebox.OptionMax, c.Max)
	setString(datebox.OptionDisplayFormat, c.DisplayFormat)
	setString(datebox.OptionDateSerializationFormat, c.DateSerializationFormat)
	setString(datebox.OptionPlaceholder, c.Placeholder)
	setString(datebox.OptionInvalidDateMessage, c.Messages.InvalidDate)
	setString(datebox.OptionDateOutOfRangeMessage, c.Messages.DateOutOfRange)

	if c.Interval > 0 {
		opts[datebox.OptionInterval] = c.Interval
	}

	setBool(datebox.OptionAdaptivityEnabled, c.AdaptivityEnabled)
	setBool(datebox.OptionShowAnalogClock, c.ShowAnalogClock)
	setBool(datebox.OptionShowClearButton, c.ShowClearButton)
	setBool(datebox.OptionReadOnly, c.ReadOnly)

	return opts
}

// BoxDevice returns the device described by the document. Missing fields
// fall back to a generic desktop.
func (c *Config) BoxDevice() datebox.Device {
	d := datebox.DesktopDevice
	if c.Device.Platform != "" {
		d.Platform = datebox.Platform(c.Device.Platform)
	}
	if c.Device.DeviceType != "" {
		d.DeviceType = datebox.DeviceType(c.Device.DeviceType)
	}
	d.Version = strings.TrimPrefix(c.Device.Version, "v")
	d.Phone = c.Device.Phone || d.DeviceType == datebox.DevicePhone
	return d
}

// ScreenWidth is the window width the document asks the host to report.
func (c *Config) ScreenWidth() int {
	if c.Device.ScreenWidth > 0 {
		return c.Device.ScreenWidth
	}
	return 1024
}

// Override sets a top-level field from a command line flag. Unknown
// keys are reported as validation errors; the document is re-validated
// after the change.
func (c *Config) Override(key, value string) error {
	switch key {
	case "type":
		c.Type = value
	case "pickerType", "picker":
		c.PickerType = value
	case "value":
		c.Value = value
	case "min":
		c.Min = value
	case "max":
		c.Max = value
	case "displayFormat", "format":
		c.DisplayFormat = value
	case "dateSerializationFormat":
		c.DateSerializationFormat = value
	case "placeholder":
		c.Placeholder = value
	case "applyValueMode":
		c.ApplyValueMode = value
	case "platform":
		c.Device.Platform = value
	default:
		return dberrors.NewValidationError(key, "unknown option "+key, nil)
	}
	return ValidateConfig(c)
}

// Default returns the document used when no file is given.
func Default() *Config {
	return &Config{Version: "1.0", Type: "date"}
}
