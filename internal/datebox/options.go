package datebox

import (
	"strings"

	"github.com/alexisbeaulieu97/datebox/internal/dateserial"
)

// Effect is a set of reactions to an option change.
type Effect uint32

const (
	// EffectPropagate hands the change to the rendering layer.
	EffectPropagate Effect = 1 << iota
	// EffectNormalizePicker recomputes the picker type in effect.
	EffectNormalizePicker
	// EffectRefreshStrategy re-selects the strategy.
	EffectRefreshStrategy
	// EffectPopupWrapper rebuilds the popup content.
	EffectPopupWrapper
	// EffectRenderText rewrites the text from the stored value.
	EffectRenderText
	// EffectValidate runs both validation passes on the stored value.
	EffectValidate
	// EffectRangeValidate re-checks the stored value against new bounds.
	EffectRangeValidate
	// EffectUpdateSize recomputes the input width.
	EffectUpdateSize
	// EffectInvalidate marks the rendered view stale.
	EffectInvalidate
	// EffectPlaceholder updates the popup title.
	EffectPlaceholder
	// EffectTextHook forwards the new text to the strategy.
	EffectTextHook
	// EffectApplyMode re-renders the popup buttons for a new apply mode.
	EffectApplyMode
	// EffectValueChanged renders, validates and announces a new value.
	EffectValueChanged

	// EffectNone ignores the change.
	EffectNone Effect = 0
)

// Has reports whether e includes every effect in f.
func (e Effect) Has(f Effect) bool { return e&f == f && f != 0 }

var effectNames = []struct {
	effect Effect
	name   string
}{
	{EffectPropagate, "propagate"},
	{EffectNormalizePicker, "normalize-picker"},
	{EffectRefreshStrategy, "refresh-strategy"},
	{EffectPopupWrapper, "popup-wrapper"},
	{EffectRenderText, "render-text"},
	{EffectValidate, "validate"},
	{EffectRangeValidate, "range-validate"},
	{EffectUpdateSize, "update-size"},
	{EffectInvalidate, "invalidate"},
	{EffectPlaceholder, "placeholder"},
	{EffectTextHook, "text-hook"},
	{EffectApplyMode, "apply-mode"},
	{EffectValueChanged, "value-changed"},
}

func (e Effect) String() string {
	if e == EffectNone {
		return "none"
	}
	var names []string
	for _, n := range effectNames {
		if e.Has(n.effect) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

var optionEffects = map[Option]Effect{
	OptionType: EffectNormalizePicker | EffectRefreshStrategy | EffectPopupWrapper |
		EffectRenderText | EffectValidate | EffectUpdateSize,
	OptionPickerType: EffectNormalizePicker | EffectRefreshStrategy | EffectInvalidate,

	OptionMin: EffectRangeValidate | EffectInvalidate,
	OptionMax: EffectRangeValidate | EffectInvalidate,

	OptionDisplayFormat: EffectRenderText,

	OptionDateSerializationFormat: EffectInvalidate,
	OptionInterval:                EffectInvalidate,
	OptionDisabledDates:           EffectInvalidate,
	OptionCalendarOptions:         EffectInvalidate,
	OptionMinZoomLevel:            EffectInvalidate,
	OptionMaxZoomLevel:            EffectInvalidate,

	OptionShowClearButton:    EffectPropagate | EffectUpdateSize,
	OptionButtons:            EffectPropagate | EffectUpdateSize,
	OptionIsValid:            EffectPropagate | EffectUpdateSize,
	OptionReadOnly:           EffectPropagate | EffectUpdateSize,
	OptionShowDropDownButton: EffectUpdateSize,

	OptionPlaceholder: EffectPlaceholder,
	OptionText:        EffectTextHook | EffectPropagate,

	OptionCloseOnValueChange: EffectApplyMode,
	OptionApplyValueMode:     EffectApplyMode | EffectPropagate,

	OptionInvalidDateMessage:    EffectNone,
	OptionDateOutOfRangeMessage: EffectNone,
	OptionAdaptivityEnabled:     EffectNone,
	OptionShowAnalogClock:       EffectNone,
	OptionFormatWidthCalculator: EffectNone,

	OptionValue: EffectValueChanged,
}

// EffectsFor returns the reactions to a change of name. Options without an
// entry only propagate.
func EffectsFor(name Option) Effect {
	if e, ok := optionEffects[name]; ok {
		return e
	}
	return EffectPropagate
}

// Set changes one option and runs the reactions the change requires.
// Assigning the current value is a no-op.
func (b *DateBox) Set(name Option, value any) error {
	if err := b.enter(); err != nil {
		return err
	}
	defer b.leave()

	return b.setOption(name, value)
}

// SetOptions applies several options in order, stopping at the first error.
func (b *DateBox) SetOptions(names []Option, values map[Option]any) error {
	if err := b.enter(); err != nil {
		return err
	}
	defer b.leave()

	for _, name := range names {
		if err := b.setOption(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

func (b *DateBox) setOption(name Option, value any) error {
	prev := b.state.get(name)
	next := b.state.clone()
	if err := next.set(name, value); err != nil {
		return err
	}
	if sameOption(prev, next.get(name)) {
		return nil
	}

	prevValue := b.state.Value
	b.state = next
	b.dispatch(name, prevValue)
	return nil
}

func (b *DateBox) dispatch(name Option, prevValue dateserial.Value) {
	effects := EffectsFor(name)
	b.log.Debugw("option changed", b.fields(map[string]any{
		"option":  string(name),
		"effects": effects.String(),
	}))

	if effects.Has(EffectNormalizePicker) {
		b.updatePickerOptions()
	}
	if effects.Has(EffectRefreshStrategy) {
		b.refreshStrategy()
	}
	if effects.Has(EffectPopupWrapper) && b.opened {
		b.strategy.RenderPopupContent()
	}
	if effects.Has(EffectRenderText) {
		b.renderValue()
	}
	if effects.Has(EffectValidate) {
		b.validateValue(b.dateOption(OptionValue))
	}
	if effects.Has(EffectRangeValidate) {
		// a valid box only needs its bounds re-checked; an invalid one may
		// have become valid and goes through the full path.
		value := b.dateOption(OptionValue)
		if b.state.IsValid {
			b.applyInternalValidation(value)
		} else {
			b.validateValue(value)
		}
		b.strategy.RenderInputMinMax()
	}
	if effects.Has(EffectPlaceholder) {
		b.strategy.RenderPopupContent()
	}
	if effects.Has(EffectTextHook) {
		b.strategy.TextChanged()
	}
	if effects.Has(EffectApplyMode) && b.opened {
		b.strategy.RenderPopupContent()
	}
	if effects.Has(EffectValueChanged) {
		b.valueChanged(prevValue)
	}
	if effects.Has(EffectUpdateSize) {
		b.updateSize()
	}
	if effects.Has(EffectInvalidate) || effects.Has(EffectPropagate) {
		b.view.Invalidate()
	}
}

// valueChanged reacts to a programmatic value change.
func (b *DateBox) valueChanged(prev dateserial.Value) {
	b.renderValue()
	b.validateValue(b.dateOption(OptionValue))
	b.log.Debugw("value set", b.fields(map[string]any{
		"value":    b.state.Value.String(),
		"previous": prev.String(),
	}))
	b.notify(ValueChangedEvent{Value: b.state.Value, PreviousValue: prev})
}
