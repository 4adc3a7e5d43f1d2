package datebox

import (
	"fmt"
	"reflect"
	"time"

	"github.com/alexisbeaulieu97/datebox/internal/dateserial"
	dberrors "github.com/alexisbeaulieu97/datebox/pkg/errors"
)

// Option names a configurable property of the box.
type Option string

const (
	OptionType                    Option = "type"
	OptionPickerType              Option = "pickerType"
	OptionValue                   Option = "value"
	OptionText                    Option = "text"
	OptionMin                     Option = "min"
	OptionMax                     Option = "max"
	OptionDisplayFormat           Option = "displayFormat"
	OptionDateSerializationFormat Option = "dateSerializationFormat"
	OptionInterval                Option = "interval"
	OptionDisabledDates           Option = "disabledDates"
	OptionCalendarOptions         Option = "calendarOptions"
	OptionMinZoomLevel            Option = "minZoomLevel"
	OptionMaxZoomLevel            Option = "maxZoomLevel"
	OptionPlaceholder             Option = "placeholder"
	OptionInvalidDateMessage      Option = "invalidDateMessage"
	OptionDateOutOfRangeMessage   Option = "dateOutOfRangeMessage"
	OptionApplyValueMode          Option = "applyValueMode"
	OptionCloseOnValueChange      Option = "closeOnValueChange"
	OptionShowClearButton         Option = "showClearButton"
	OptionShowDropDownButton      Option = "showDropDownButton"
	OptionShowAnalogClock         Option = "showAnalogClock"
	OptionAdaptivityEnabled       Option = "adaptivityEnabled"
	OptionReadOnly                Option = "readOnly"
	OptionIsValid                 Option = "isValid"
	OptionButtons                 Option = "buttons"
	OptionButtonsLocation         Option = "buttonsLocation"
	OptionShowPopupTitle          Option = "showPopupTitle"
	OptionTodayButtonText         Option = "todayButtonText"
	OptionFormatWidthCalculator   Option = "formatWidthCalculator"
	OptionWidth                   Option = "width"
)

// State is the full option state of one date box. It is owned by the box;
// callers receive copies.
type State struct {
	Type                    Type
	PickerType              PickerType
	Value                   dateserial.Value
	Text                    string
	Min                     dateserial.Value
	Max                     dateserial.Value
	DisplayFormat           string
	DateSerializationFormat string

	IsValid         bool
	ValidationError *ValidationError

	Interval      int
	DisabledDates []time.Time

	Placeholder           string
	InvalidDateMessage    string
	DateOutOfRangeMessage string
	ApplyValueMode        ApplyValueMode
	ShowClearButton       bool
	ShowDropDownButton    bool
	ShowAnalogClock       bool
	AdaptivityEnabled     bool
	ReadOnly              bool
	ButtonsLocation       string
	ShowPopupTitle        bool
	TodayButtonText       string
	Width                 int

	// SubmitValue is the form submission rendering of Value.
	SubmitValue string
	// InputWidth is the last computed input width in cells.
	InputWidth int

	// Extra holds options the core only propagates.
	Extra map[string]any
}

// Validity classifies the current validation state.
func (s State) Validity() Validity {
	switch {
	case s.ValidationError != nil:
		return InternalFailure
	case !s.IsValid:
		return CustomFailure
	default:
		return Valid
	}
}

func defaultState() State {
	return State{
		Type:                  TypeDate,
		PickerType:            PickerCalendar,
		IsValid:               true,
		Interval:              30,
		InvalidDateMessage:    defaultInvalidDateMessage,
		DateOutOfRangeMessage: defaultDateOutOfRangeMessage,
		ApplyValueMode:        ApplyInstantly,
		ShowDropDownButton:    true,
		ShowAnalogClock:       true,
		Extra: map[string]any{
			string(OptionMinZoomLevel): "century",
			string(OptionMaxZoomLevel): "month",
		},
	}
}

func (s State) clone() State {
	out := s
	if s.ValidationError != nil {
		ve := *s.ValidationError
		out.ValidationError = &ve
	}
	out.DisabledDates = append([]time.Time(nil), s.DisabledDates...)
	out.Extra = make(map[string]any, len(s.Extra))
	for k, v := range s.Extra {
		out.Extra[k] = v
	}
	return out
}

// get returns the current value of an option for change detection.
func (s *State) get(name Option) any {
	switch name {
	case OptionType:
		return s.Type
	case OptionPickerType:
		return s.PickerType
	case OptionValue:
		return s.Value
	case OptionText:
		return s.Text
	case OptionMin:
		return s.Min
	case OptionMax:
		return s.Max
	case OptionDisplayFormat:
		return s.DisplayFormat
	case OptionDateSerializationFormat:
		return s.DateSerializationFormat
	case OptionInterval:
		return s.Interval
	case OptionDisabledDates:
		return s.DisabledDates
	case OptionPlaceholder:
		return s.Placeholder
	case OptionInvalidDateMessage:
		return s.InvalidDateMessage
	case OptionDateOutOfRangeMessage:
		return s.DateOutOfRangeMessage
	case OptionApplyValueMode:
		return s.ApplyValueMode
	case OptionCloseOnValueChange:
		return s.ApplyValueMode == ApplyInstantly
	case OptionShowClearButton:
		return s.ShowClearButton
	case OptionShowDropDownButton:
		return s.ShowDropDownButton
	case OptionShowAnalogClock:
		return s.ShowAnalogClock
	case OptionAdaptivityEnabled:
		return s.AdaptivityEnabled
	case OptionReadOnly:
		return s.ReadOnly
	case OptionIsValid:
		return s.IsValid
	case OptionButtonsLocation:
		return s.ButtonsLocation
	case OptionShowPopupTitle:
		return s.ShowPopupTitle
	case OptionTodayButtonText:
		return s.TodayButtonText
	case OptionWidth:
		return s.Width
	default:
		return s.Extra[string(name)]
	}
}

// set assigns an option, coercing loosely typed input.
func (s *State) set(name Option, value any) error {
	var err error
	switch name {
	case OptionType:
		var v string
		if v, err = asString(value); err == nil {
			s.Type = Type(v)
		}
	case OptionPickerType:
		var v string
		if v, err = asString(value); err == nil {
			s.PickerType = PickerType(v)
		}
	case OptionValue, OptionMin, OptionMax:
		var v dateserial.Value
		if v, err = dateserial.FromAny(value); err == nil {
			switch name {
			case OptionValue:
				s.Value = v
			case OptionMin:
				s.Min = v
			default:
				s.Max = v
			}
		}
	case OptionText:
		s.Text, err = asString(value)
	case OptionDisplayFormat:
		s.DisplayFormat, err = asString(value)
	case OptionDateSerializationFormat:
		s.DateSerializationFormat, err = asString(value)
	case OptionPlaceholder:
		s.Placeholder, err = asString(value)
	case OptionInvalidDateMessage:
		s.InvalidDateMessage, err = asString(value)
	case OptionDateOutOfRangeMessage:
		s.DateOutOfRangeMessage, err = asString(value)
	case OptionButtonsLocation:
		s.ButtonsLocation, err = asString(value)
	case OptionTodayButtonText:
		s.TodayButtonText, err = asString(value)
	case OptionApplyValueMode:
		var v string
		if v, err = asString(value); err == nil {
			s.ApplyValueMode = ApplyValueMode(v)
		}
	case OptionCloseOnValueChange:
		var v bool
		if v, err = asBool(value); err == nil {
			s.ApplyValueMode = ApplyUseButtons
			if v {
				s.ApplyValueMode = ApplyInstantly
			}
		}
	case OptionInterval:
		s.Interval, err = asInt(value)
	case OptionWidth:
		s.Width, err = asInt(value)
	case OptionShowClearButton:
		s.ShowClearButton, err = asBool(value)
	case OptionShowDropDownButton:
		s.ShowDropDownButton, err = asBool(value)
	case OptionShowAnalogClock:
		s.ShowAnalogClock, err = asBool(value)
	case OptionAdaptivityEnabled:
		s.AdaptivityEnabled, err = asBool(value)
	case OptionReadOnly:
		s.ReadOnly, err = asBool(value)
	case OptionIsValid:
		s.IsValid, err = asBool(value)
	case OptionShowPopupTitle:
		s.ShowPopupTitle, err = asBool(value)
	case OptionDisabledDates:
		switch v := value.(type) {
		case nil:
			s.DisabledDates = nil
		case []time.Time:
			s.DisabledDates = append([]time.Time(nil), v...)
		default:
			err = fmt.Errorf("expected []time.Time")
		}
	default:
		if s.Extra == nil {
			s.Extra = make(map[string]any)
		}
		s.Extra[string(name)] = value
	}
	if err != nil {
		return dberrors.NewOptionError(string(name), value, err)
	}
	return nil
}

func sameOption(a, b any) bool {
	av, aok := a.(dateserial.Value)
	bv, bok := b.(dateserial.Value)
	if aok && bok {
		return av.Equal(bv)
	}
	return reflect.DeepEqual(a, b)
}

func asString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case Type:
		return string(v), nil
	case PickerType:
		return string(v), nil
	case ApplyValueMode:
		return string(v), nil
	default:
		return "", fmt.Errorf("expected string")
	}
}

func asBool(value any) (bool, error) {
	v, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("expected bool")
	}
	return v, nil
}

func asInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("expected integer")
	}
}
