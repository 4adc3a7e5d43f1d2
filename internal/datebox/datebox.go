// Package datebox is the decision core of a date and time input: it picks
// the interaction strategy for a configuration, reconciles typed text with
// the stored value, validates and serializes it.
//
// A DateBox is single-threaded. All mutation goes through Set (option
// changes) and Input/HandleTextChange (text edits); callbacks invoked from
// inside either are rejected with ErrReentrant if they try to mutate the box.
package datebox

import (
	"maps"
	"slices"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/datebox/internal/dateserial"
	"github.com/alexisbeaulieu97/datebox/internal/datetime"
	"github.com/alexisbeaulieu97/datebox/internal/logger"
)

const (
	inputPadding = 2
	buttonWidth  = 3
)

// ValueChangedEvent is delivered after the stored value changes.
type ValueChangedEvent struct {
	Value         dateserial.Value
	PreviousValue dateserial.Value
	// Event is the interaction that caused the change, if any.
	Event any
}

// Config wires a DateBox to its collaborators.
type Config struct {
	// Options are user options, applied over device and strategy defaults.
	Options map[Option]any
	Device  Device
	Host    Host

	Validator      CustomValidator
	OnValueChanged func(ValueChangedEvent)

	// ForceISODateParsing lets DateSerializationFormat decide the stored
	// format even when the current value has a different shape.
	ForceISODateParsing bool

	Logger   *logger.Logger
	Location *time.Location
	Now      func() time.Time
}

// DateBox owns the state of one date input.
type DateBox struct {
	state    State
	device   Device
	picker   PickerType
	strategy *Strategy

	view           Host
	validator      CustomValidator
	onValueChanged func(ValueChangedEvent)
	forceISO       bool

	log   *logger.Logger
	zone  *time.Location
	clock func() time.Time
	dates *datetime.Formatter
	codec *dateserial.Codec

	lastInternal         bool
	skipCustomValidation bool
	opened               bool
	busy                 bool
	disposed             bool
}

// New builds a box from device defaults, user options and the defaults of
// the strategy the configuration selects, then renders the initial value.
func New(cfg Config) (*DateBox, error) {
	zone := cfg.Location
	if zone == nil {
		zone = time.Local
	}
	clock := cfg.Now
	if clock == nil {
		clock = time.Now
	}
	view := cfg.Host
	if view == nil {
		view = NopHost{}
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	b := &DateBox{
		state:          defaultState(),
		device:         cfg.Device,
		view:           view,
		validator:      cfg.Validator,
		onValueChanged: cfg.OnValueChanged,
		forceISO:       cfg.ForceISODateParsing,
		log:            log,
		zone:           zone,
		clock:          clock,
		dates:          &datetime.Formatter{Location: zone, Now: clock},
		codec:          dateserial.New(zone),
		lastInternal:   true,
	}

	b.mergeOptions(DefaultOptionsFor(cfg.Device))
	if err := b.applyUserOptions(cfg.Options); err != nil {
		return nil, err
	}
	b.updatePickerOptions()

	b.strategy = newStrategy(b.selectStrategy(), b)
	b.mergeOptions(b.strategy.DefaultOptions())
	if err := b.applyUserOptions(cfg.Options); err != nil {
		return nil, err
	}

	b.renderValue()
	b.updateSize()

	b.log.Debugw("date box created", b.fields(nil))
	return b, nil
}

func (b *DateBox) applyUserOptions(options map[Option]any) error {
	for _, name := range optionOrder(options) {
		if err := b.state.set(name, options[name]); err != nil {
			return err
		}
	}
	return nil
}

// mergeOptions applies option defaults produced by the box itself. Their
// values always have the expected kinds.
func (b *DateBox) mergeOptions(options map[Option]any) {
	for _, name := range optionOrder(options) {
		_ = b.state.set(name, options[name])
	}
}

// optionOrder sorts option names so a map is applied the same way every
// time. applyValueMode goes last and wins over closeOnValueChange.
func optionOrder(options map[Option]any) []Option {
	names := slices.Sorted(maps.Keys(options))
	if i := slices.Index(names, OptionApplyValueMode); i >= 0 {
		names = append(slices.Delete(names, i, i+1), OptionApplyValueMode)
	}
	return names
}

// owner implementation

func (b *DateBox) options() State                 { return b.state }
func (b *DateBox) now() time.Time                 { return b.clock() }
func (b *DateBox) location() *time.Location       { return b.zone }
func (b *DateBox) formatter() *datetime.Formatter { return b.dates }
func (b *DateBox) host() Host                     { return b.view }

func (b *DateBox) enter() error {
	if b.disposed {
		return ErrDisposed
	}
	if b.busy {
		return ErrReentrant
	}
	b.busy = true
	return nil
}

func (b *DateBox) leave() { b.busy = false }

func (b *DateBox) fields(extra map[string]any) map[string]any {
	if !b.log.Enabled("debug") {
		return nil
	}
	out := map[string]any{
		"type":        string(b.state.Type),
		"picker_type": string(b.picker),
	}
	if b.strategy != nil {
		out["strategy"] = string(b.strategy.Name())
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// State returns a copy of the current option state.
func (b *DateBox) State() State { return b.state.clone() }

// Value returns the stored value as a date.
func (b *DateBox) Value() datetime.Date { return b.dateOption(OptionValue) }

// Bounds returns the deserialized min and max options.
func (b *DateBox) Bounds() (min, max datetime.Date) {
	return b.dateOption(OptionMin), b.dateOption(OptionMax)
}

// RangeMode is how values are compared against min and max.
func (b *DateBox) RangeMode() datetime.RangeMode { return b.state.Type.rangeMode() }

// Text returns the input text.
func (b *DateBox) Text() string { return b.state.Text }

// Validity classifies the current validation state.
func (b *DateBox) Validity() Validity { return b.state.Validity() }

// Strategy returns the active strategy.
func (b *DateBox) Strategy() *Strategy { return b.strategy }

// PickerType returns the normalized picker type in effect.
func (b *DateBox) PickerType() PickerType { return b.picker }

// Device returns the device the box was created for.
func (b *DateBox) Device() Device { return b.device }

// Opened reports whether the popup is open.
func (b *DateBox) Opened() bool { return b.opened }

// DisplayFormat returns the format text is rendered and parsed with.
func (b *DateBox) DisplayFormat() string {
	return b.strategy.DisplayFormat(b.state.DisplayFormat)
}

// Format renders d with the display format.
func (b *DateBox) Format(d datetime.Date) string {
	return b.dates.Format(d, b.DisplayFormat())
}

// PopupTitle is the placeholder when set, else a prompt matching the type.
func (b *DateBox) PopupTitle() string {
	if b.state.Placeholder != "" {
		return b.state.Placeholder
	}
	switch b.state.Type {
	case TypeTime:
		return popupTitleTime
	case TypeDate, TypeDateTime:
		return popupTitleDate
	default:
		return ""
	}
}

// PopupConfig returns the popup configuration for the active strategy.
func (b *DateBox) PopupConfig() PopupConfig {
	return b.strategy.PopupConfig(PopupConfig{
		Title:     b.PopupTitle(),
		ShowTitle: b.state.ShowPopupTitle,
	})
}

// InputReadOnly reports whether typing into the input is disabled. Rollers
// never accept typed text.
func (b *DateBox) InputReadOnly() bool {
	if b.picker == PickerRollers {
		return true
	}
	return b.state.ReadOnly
}

// ClearButtonVisible reports whether the clear button is shown. Native
// pickers bring their own.
func (b *DateBox) ClearButtonVisible() bool {
	return b.state.ShowClearButton && !b.state.ReadOnly && b.picker != PickerNative
}

// Validate runs the internal and custom passes on the stored value.
func (b *DateBox) Validate() (bool, error) {
	if err := b.enter(); err != nil {
		return false, err
	}
	defer b.leave()
	return b.validateValue(b.dateOption(OptionValue)), nil
}

// Open opens the popup. A layout change since the last open switches the
// strategy first.
func (b *DateBox) Open() (PopupConfig, error) {
	if err := b.enter(); err != nil {
		return PopupConfig{}, err
	}
	defer b.leave()

	if b.strategy.IsAdaptivityChanged() {
		b.log.Debugw("adaptivity changed", b.fields(nil))
		b.refreshStrategy()
	}
	if !b.opened {
		b.strategy.RenderPopupContent()
	}
	b.opened = true
	b.strategy.RenderOpenedState()
	return b.PopupConfig(), nil
}

// Close closes the popup without touching the value.
func (b *DateBox) Close() error {
	if err := b.enter(); err != nil {
		return err
	}
	defer b.leave()

	if b.opened {
		b.opened = false
		b.strategy.RenderOpenedState()
	}
	return nil
}

// Apply commits a value picked in the popup when it passes internal
// validation, and closes the popup.
func (b *DateBox) Apply(picked datetime.Date, event any) (bool, error) {
	if err := b.enter(); err != nil {
		return false, err
	}
	defer b.leave()

	applied := b.applyInternalValidation(picked)
	if applied {
		b.dateValue(picked, event)
	}
	if b.opened {
		b.opened = false
		b.strategy.RenderOpenedState()
	}
	return applied, nil
}

// Reset restores the null value and re-validates. When the value is already
// null the custom pass is skipped for this validation.
func (b *DateBox) Reset() error {
	if err := b.enter(); err != nil {
		return err
	}
	defer b.leave()

	b.reset(nil)
	return nil
}

// Clear empties the input and resets the value, as the clear button does.
func (b *DateBox) Clear(event any) error {
	if err := b.enter(); err != nil {
		return err
	}
	defer b.leave()

	b.setText("")
	b.reset(event)
	return nil
}

func (b *DateBox) reset(event any) {
	b.skipCustomValidation = b.dateOption(OptionValue).IsNull()

	prev := b.state.Value
	b.state.Value = dateserial.Null()
	b.renderValue()
	if !prev.IsNull() {
		b.notify(ValueChangedEvent{Value: b.state.Value, PreviousValue: prev, Event: event})
	}
	b.validateValue(b.dateOption(OptionValue))
}

// Dispose tears down the active strategy. The box rejects further calls.
func (b *DateBox) Dispose() error {
	if b.disposed {
		return nil
	}
	if b.busy {
		return ErrReentrant
	}
	b.strategy.Dispose()
	b.disposed = true
	b.log.Debugw("date box disposed", b.fields(nil))
	return nil
}

func (b *DateBox) selectStrategy() StrategyName {
	return SelectStrategy(b.state.Type, b.picker, b.device)
}

// updatePickerOptions normalizes the requested picker against the type.
func (b *DateBox) updatePickerOptions() {
	requested := b.state.PickerType
	if requested == "" {
		requested = DefaultPickerType(b.device)
	}
	b.picker = NormalizePickerType(b.state.Type, requested)
	b.state.ShowDropDownButton = b.device.platform() != PlatformGeneric || b.picker != PickerNative
}

// refreshStrategy switches to the strategy the configuration now selects.
// The same variant keeps its instance.
func (b *DateBox) refreshStrategy() {
	name := b.selectStrategy()
	if b.strategy.Name() != name {
		prev := b.strategy.Name()
		b.strategy.Dispose()
		b.strategy = newStrategy(name, b)
		b.log.Debugw("strategy switched", b.fields(map[string]any{"previous": string(prev)}))
	}
	b.mergeOptions(b.strategy.DefaultOptions())
	b.view.Refresh()
	b.renderValue()
}

func (b *DateBox) displayedText(d datetime.Date) string {
	return b.dates.Format(d, b.DisplayFormat())
}

// renderValue rewrites the text from the stored value and refreshes the
// submit value.
func (b *DateBox) renderValue() {
	b.setText(b.displayedText(b.dateOption(OptionValue)))
	b.strategy.RenderValue()
	b.state.SubmitValue = b.submitValue()
}

func (b *DateBox) setText(text string) {
	if b.state.Text == text {
		return
	}
	b.state.Text = text
	b.strategy.TextChanged()
}

func (b *DateBox) notify(ev ValueChangedEvent) {
	if b.onValueChanged != nil {
		b.onValueChanged(ev)
	}
}

// updateSize sizes the input to fit the widest text the display format can
// produce. Explicit widths and rollers are left alone, as are non-generic
// platforms where the native control sizes itself.
func (b *DateBox) updateSize() {
	if b.state.Width > 0 || b.picker == PickerRollers || b.device.platform() != PlatformGeneric {
		return
	}

	format := b.DisplayFormat()
	l := datetime.LongestDate(format, b.dates.MonthNames(), b.dates.DayNames())
	longest := time.Date(l.Year(), l.Month(), l.Day(), l.Hour(), l.Minute(), l.Second(), l.Nanosecond(), b.zone)

	width := runewidth.StringWidth(b.dates.Format(datetime.Of(longest), format)) + inputPadding
	if b.state.ShowDropDownButton {
		width += buttonWidth
	}
	if b.ClearButtonVisible() {
		width += buttonWidth
	}
	if width == b.state.InputWidth {
		return
	}
	b.state.InputWidth = width
	b.view.ResizeInput(width)
}
