package datebox

import (
	"time"

	"github.com/alexisbeaulieu97/datebox/internal/datetime"
)

// shrinkViewScreenWidth is the window width at or below which the calendar
// with time collapses its clock when adaptivity is enabled.
const shrinkViewScreenWidth = 573

var formatsByType = map[Type]string{
	TypeDate:     "shortdate",
	TypeTime:     "shorttime",
	TypeDateTime: "shortdateshorttime",
}

// NormalizePickerType maps a requested picker onto one the type can use:
// list becomes calendar when the type has a date component, and calendar
// becomes list for time-only boxes.
func NormalizePickerType(t Type, requested PickerType) PickerType {
	if requested == PickerList && t.HasDate() {
		return PickerCalendar
	}
	if t == TypeTime && requested == PickerCalendar {
		return PickerList
	}
	return requested
}

// SelectStrategy picks the strategy governing a configuration. An empty
// picker type is derived from the device first. Unknown types route to List.
func SelectStrategy(t Type, requested PickerType, device Device) StrategyName {
	if requested == "" {
		requested = DefaultPickerType(device)
	}
	picker := NormalizePickerType(t, requested)

	switch {
	case picker == PickerRollers:
		return StrategyDateView
	case picker == PickerNative:
		return StrategyNative
	case t.HasDate() && !t.HasTime():
		return StrategyCalendar
	case t.HasDate() && t.HasTime():
		return StrategyCalendarWithTime
	default:
		return StrategyList
	}
}

// Button is a popup toolbar button a strategy asks the host to show.
type Button string

const (
	ButtonToday  Button = "today"
	ButtonApply  Button = "apply"
	ButtonCancel Button = "cancel"
)

// PopupConfig describes the drop-down popup.
type PopupConfig struct {
	Title       string
	ShowTitle   bool
	DragEnabled bool
	FullScreen  bool
	Width       int
	Height      int
	Buttons     []Button
}

// Hook names a rendering callback a strategy fires on the host.
type Hook string

const (
	HookRenderValue        Hook = "renderValue"
	HookRenderInputMinMax  Hook = "renderInputMinMax"
	HookRenderPopupContent Hook = "renderPopupContent"
	HookRenderOpenedState  Hook = "renderOpenedState"
	HookTextChanged        Hook = "textChanged"
	HookDispose            Hook = "dispose"
)

// owner is the read-only view of the box a strategy works against.
type owner interface {
	options() State
	now() time.Time
	location() *time.Location
	formatter() *datetime.Formatter
	host() Host
}

type behavior struct {
	defaults       map[Option]any
	keys           []string
	displayFormat  func(t Type) string
	useCurrentDate bool
	defaultDate    func(now time.Time, t Type) time.Time
	buttons        func(mode ApplyValueMode) []Button
	popup          func(base PopupConfig, s State) PopupConfig
	adaptive       bool
}

var navigationKeys = []string{"up", "down", "left", "right", "pgup", "pgdown", "home", "end", "enter", "esc"}

func fixedFormat(layout string) func(Type) string {
	return func(Type) string { return layout }
}

func formatForType(t Type) string {
	if layout, ok := formatsByType[t]; ok {
		return layout
	}
	return formatsByType[TypeDateTime]
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func calendarButtons(mode ApplyValueMode) []Button {
	if mode == ApplyUseButtons {
		return []Button{ButtonToday, ButtonApply, ButtonCancel}
	}
	return nil
}

func confirmButtons(ApplyValueMode) []Button {
	return []Button{ButtonApply, ButtonCancel}
}

var behaviors = map[StrategyName]behavior{
	StrategyCalendar: {
		defaults:      map[Option]any{OptionTodayButtonText: defaultTodayButtonText},
		keys:          navigationKeys,
		displayFormat: fixedFormat("shortdate"),
		buttons:       calendarButtons,
		popup: func(base PopupConfig, _ State) PopupConfig {
			base.Width, base.Height = 0, 0
			return base
		},
	},
	StrategyCalendarWithTime: {
		defaults: map[Option]any{
			OptionApplyValueMode:  ApplyUseButtons,
			OptionTodayButtonText: defaultTodayButtonText,
		},
		keys:          navigationKeys,
		displayFormat: fixedFormat("shortdateshorttime"),
		buttons:       confirmButtons,
		popup: func(base PopupConfig, _ State) PopupConfig {
			base.Width, base.Height = 0, 0
			return base
		},
		adaptive: true,
	},
	StrategyDateView: {
		defaults: map[Option]any{
			OptionShowClearButton: false,
			OptionApplyValueMode:  ApplyUseButtons,
		},
		keys:           []string{"enter", "esc"},
		displayFormat:  formatForType,
		useCurrentDate: true,
		defaultDate: func(now time.Time, t Type) time.Time {
			if t == TypeDate {
				return startOfDay(now)
			}
			return now
		},
		buttons: confirmButtons,
		popup: func(base PopupConfig, s State) PopupConfig {
			base.ShowTitle = true
			base.Width = 320
			base.FullScreen = s.ShowPopupTitle
			return base
		},
	},
	StrategyNative: {
		defaults: map[Option]any{
			OptionShowClearButton: false,
			OptionApplyValueMode:  ApplyInstantly,
		},
		displayFormat: formatForType,
		buttons:       func(ApplyValueMode) []Button { return nil },
		popup:         func(base PopupConfig, _ State) PopupConfig { return base },
	},
	StrategyList: {
		defaults:       map[Option]any{OptionApplyValueMode: ApplyInstantly},
		keys:           []string{"up", "down", "enter", "esc", "tab"},
		displayFormat:  fixedFormat("shorttime"),
		useCurrentDate: true,
		defaultDate: func(now time.Time, _ Type) time.Time {
			return startOfDay(now)
		},
		buttons: func(ApplyValueMode) []Button { return nil },
		popup: func(base PopupConfig, _ State) PopupConfig {
			base.Height = 8
			return base
		},
	},
}

// Strategy is one instance of a named interaction strategy. The behavior
// of each variant is a fixed table; the instance carries only the state a
// variant needs between calls.
type Strategy struct {
	name     StrategyName
	behavior behavior
	owner    owner

	adaptiveMode bool
	disposed     bool
}

func newStrategy(name StrategyName, o owner) *Strategy {
	s := &Strategy{name: name, behavior: behaviors[name], owner: o}
	if s.behavior.adaptive {
		s.adaptiveMode = s.shrinkView()
	}
	return s
}

// Name identifies the variant.
func (s *Strategy) Name() StrategyName { return s.name }

// Disposed reports whether Dispose has run.
func (s *Strategy) Disposed() bool { return s.disposed }

// DefaultOptions returns the options this strategy imposes on the box.
func (s *Strategy) DefaultOptions() map[Option]any {
	out := make(map[Option]any, len(s.behavior.defaults))
	for k, v := range s.behavior.defaults {
		out[k] = v
	}
	return out
}

// SupportedKeys lists the keys the strategy handles while its popup is open.
func (s *Strategy) SupportedKeys() []string {
	return append([]string(nil), s.behavior.keys...)
}

// SupportsKey reports whether key is among SupportedKeys.
func (s *Strategy) SupportsKey(key string) bool {
	for _, k := range s.behavior.keys {
		if k == key {
			return true
		}
	}
	return false
}

// DisplayFormat resolves the format used to render and parse text.
func (s *Strategy) DisplayFormat(override string) string {
	if override != "" {
		return override
	}
	return s.behavior.displayFormat(s.owner.options().Type)
}

// ParseText reads text in format; text that does not parse yields Unparsed.
func (s *Strategy) ParseText(text, format string) datetime.Date {
	return s.owner.formatter().Parse(text, format)
}

// CustomizeButtons returns the popup buttons for the current apply mode.
func (s *Strategy) CustomizeButtons() []Button {
	return s.behavior.buttons(s.owner.options().ApplyValueMode)
}

// PopupConfig adjusts the base popup configuration.
func (s *Strategy) PopupConfig(base PopupConfig) PopupConfig {
	cfg := s.behavior.popup(base, s.owner.options())
	cfg.Buttons = s.CustomizeButtons()
	return cfg
}

// RenderValue notifies the host that the displayed value changed.
func (s *Strategy) RenderValue() { s.fire(HookRenderValue) }

// RenderInputMinMax notifies the host that the input bounds changed.
func (s *Strategy) RenderInputMinMax() { s.fire(HookRenderInputMinMax) }

// RenderPopupContent notifies the host that popup content must be built.
func (s *Strategy) RenderPopupContent() { s.fire(HookRenderPopupContent) }

// RenderOpenedState notifies the host that the popup opened or closed.
func (s *Strategy) RenderOpenedState() { s.fire(HookRenderOpenedState) }

// TextChanged notifies the host that the input text changed.
func (s *Strategy) TextChanged() { s.fire(HookTextChanged) }

func (s *Strategy) fire(hook Hook) {
	if s.disposed {
		return
	}
	s.owner.host().Render(s.name, hook)
}

// UseCurrentDateByDefault reports whether an empty box merges edits onto DefaultDate.
func (s *Strategy) UseCurrentDateByDefault() bool {
	return s.behavior.useCurrentDate
}

// DefaultDate is the baseline for edits made while the box is empty.
func (s *Strategy) DefaultDate() datetime.Date {
	if s.behavior.defaultDate == nil {
		return datetime.Null()
	}
	now := s.owner.now().In(s.owner.location())
	return datetime.Of(s.behavior.defaultDate(now, s.owner.options().Type))
}

// IsAdaptivityChanged reports whether the layout mode flipped since the last call.
func (s *Strategy) IsAdaptivityChanged() bool {
	if !s.behavior.adaptive {
		return false
	}
	mode := s.shrinkView()
	changed := mode != s.adaptiveMode
	s.adaptiveMode = mode
	return changed
}

func (s *Strategy) shrinkView() bool {
	opts := s.owner.options()
	if !opts.ShowAnalogClock {
		return true
	}
	return opts.AdaptivityEnabled && s.owner.host().WindowWidth() <= shrinkViewScreenWidth
}

// Dispose releases the strategy. Further rendering hooks are ignored.
func (s *Strategy) Dispose() {
	if s.disposed {
		return
	}
	s.fire(HookDispose)
	s.disposed = true
}
