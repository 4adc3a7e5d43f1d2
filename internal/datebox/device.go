package datebox

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Platform identifies the operating system family of a device.
type Platform string

const (
	PlatformGeneric Platform = "generic"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWindows Platform = "win"
)

// DeviceType is the form factor of a device.
type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DevicePhone   DeviceType = "phone"
	DeviceTablet  DeviceType = "tablet"
)

// Device carries the platform flags the box reads when choosing defaults.
// It is supplied by the host; the box never detects it itself.
type Device struct {
	Platform   Platform
	DeviceType DeviceType
	// Version is the platform version, e.g. "4.3" or "10".
	Version string
	Phone   bool
}

// DesktopDevice is a generic desktop browser-like host.
var DesktopDevice = Device{Platform: PlatformGeneric, DeviceType: DeviceDesktop}

func (d Device) platform() Platform {
	if d.Platform == "" {
		return PlatformGeneric
	}
	return d.Platform
}

func (d Device) deviceType() DeviceType {
	if d.DeviceType == "" {
		return DeviceDesktop
	}
	return d.DeviceType
}

func (d Device) semver() string {
	v := strings.TrimSpace(d.Version)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}

// VersionBelow reports whether the device version is lower than version.
// Devices without a parseable version are never below.
func (d Device) VersionBelow(version string) bool {
	v := d.semver()
	if v == "" {
		return false
	}
	return semver.Compare(v, "v"+strings.TrimPrefix(version, "v")) < 0
}

func (d Device) majorVersion() string {
	v := d.semver()
	if v == "" {
		return ""
	}
	return strings.TrimPrefix(semver.Major(v), "v")
}

// IsMobile reports whether the device is a handheld one.
func (d Device) IsMobile() bool {
	switch d.platform() {
	case PlatformIOS, PlatformAndroid:
		return true
	case PlatformWindows:
		return d.Phone
	default:
		return d.deviceType() != DeviceDesktop
	}
}

type defaultRule struct {
	matches func(Device) bool
	options map[Option]any
}

// later rules override earlier ones.
var defaultRules = []defaultRule{
	{
		matches: func(d Device) bool { return d.platform() == PlatformIOS },
		options: map[Option]any{OptionShowPopupTitle: true},
	},
	{
		matches: func(d Device) bool { return d.platform() == PlatformAndroid },
		options: map[Option]any{OptionButtonsLocation: "bottom after"},
	},
	{
		matches: func(d Device) bool {
			return d.platform() == PlatformIOS || d.platform() == PlatformAndroid
		},
		options: map[Option]any{OptionPickerType: PickerNative},
	},
	{
		matches: func(d Device) bool { return d.platform() == PlatformWindows && d.majorVersion() == "8" },
		options: map[Option]any{OptionButtonsLocation: "bottom after"},
	},
	{
		matches: func(d Device) bool { return d.platform() == PlatformWindows && d.majorVersion() == "10" },
		options: map[Option]any{OptionButtonsLocation: "bottom center"},
	},
	{
		matches: func(d Device) bool {
			return d.platform() == PlatformGeneric && d.deviceType() != DeviceDesktop ||
				d.platform() == PlatformWindows && d.Phone ||
				d.platform() == PlatformAndroid && d.VersionBelow("4.4")
		},
		options: map[Option]any{OptionPickerType: PickerRollers},
	},
	{
		matches: func(d Device) bool {
			return d.platform() == PlatformGeneric && d.deviceType() == DeviceDesktop
		},
		options: map[Option]any{OptionButtonsLocation: "bottom after"},
	},
}

// DefaultOptionsFor returns the option defaults a device imposes before user
// options are applied.
func DefaultOptionsFor(d Device) map[Option]any {
	out := make(map[Option]any)
	for _, rule := range defaultRules {
		if !rule.matches(d) {
			continue
		}
		for name, value := range rule.options {
			out[name] = value
		}
	}
	return out
}

// DefaultPickerType is the picker a device uses when none is configured.
func DefaultPickerType(d Device) PickerType {
	if p, ok := DefaultOptionsFor(d)[OptionPickerType].(PickerType); ok {
		return p
	}
	return PickerCalendar
}
