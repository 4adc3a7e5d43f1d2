package config

// Config is a date box options document.
type Config struct {
	Version     string `yaml:"version" validate:"required,semver"`
	Name        string `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Description string `yaml:"description,omitempty"`

	Type       string `yaml:"type,omitempty" validate:"omitempty,oneof=date datetime time"`
	PickerType string `yaml:"pickerType,omitempty" validate:"omitempty,oneof=calendar rollers list native"`

	Value string `yaml:"value,omitempty" validate:"omitempty,iso_date"`
	Min   string `yaml:"min,omitempty" validate:"omitempty,iso_date"`
	Max   string `yaml:"max,omitempty" validate:"omitempty,iso_date"`

	DisplayFormat           string `yaml:"displayFormat,omitempty" validate:"omitempty,ldml"`
	DateSerializationFormat string `yaml:"dateSerializationFormat,omitempty" validate:"omitempty,serialization_format"`
	ForceISODateParsing     bool   `yaml:"forceIsoDateParsing,omitempty"`

	Interval       int    `yaml:"interval,omitempty" validate:"omitempty,min=1,max=720"`
	Placeholder    string `yaml:"placeholder,omitempty" validate:"omitempty,max=200"`
	ApplyValueMode string `yaml:"applyValueMode,omitempty" validate:"omitempty,oneof=instantly useButtons"`

	AdaptivityEnabled *bool `yaml:"adaptivityEnabled,omitempty"`
	ShowAnalogClock   *bool `yaml:"showAnalogClock,omitempty"`
	ShowClearButton   *bool `yaml:"showClearButton,omitempty"`
	ReadOnly          *bool `yaml:"readOnly,omitempty"`

	Messages Messages `yaml:"messages,omitempty"`
	Rules    []string `yaml:"rules,omitempty" validate:"omitempty,dive,oneof=required weekday future past"`
	Device   Device   `yaml:"device,omitempty"`
}

// Messages overrides the internal validation messages.
type Messages struct {
	InvalidDate    string `yaml:"invalidDate,omitempty" validate:"omitempty,max=200"`
	DateOutOfRange string `yaml:"dateOutOfRange,omitempty" validate:"omitempty,max=200"`
}

// Device describes the host the box is rendered on.
type Device struct {
	Platform    string `yaml:"platform,omitempty" validate:"omitempty,oneof=generic ios android win"`
	Version     string `yaml:"version,omitempty" validate:"omitempty,platform_version"`
	DeviceType  string `yaml:"deviceType,omitempty" validate:"omitempty,oneof=desktop phone tablet"`
	Phone       bool   `yaml:"phone,omitempty"`
	ScreenWidth int    `yaml:"screenWidth,omitempty" validate:"omitempty,min=1,max=100000"`
}
