package datebox

import (
	"errors"

	"github.com/alexisbeaulieu97/datebox/internal/datetime"
)

// Type is the kind of value the box edits.
type Type string

const (
	TypeDate     Type = "date"
	TypeDateTime Type = "datetime"
	TypeTime     Type = "time"
)

// Types lists the supported types in display order.
var Types = []Type{TypeDate, TypeDateTime, TypeTime}

// HasDate reports whether values of t carry a calendar day. Unknown types
// carry neither a date nor a time.
func (t Type) HasDate() bool {
	return t == TypeDate || t == TypeDateTime
}

// HasTime reports whether values of t carry a time of day.
func (t Type) HasTime() bool {
	return t == TypeTime || t == TypeDateTime
}

func (t Type) mergeParts() datetime.Parts {
	if t == TypeTime {
		return datetime.TimeParts
	}
	return datetime.AllParts
}

func (t Type) rangeMode() datetime.RangeMode {
	if t == TypeTime {
		return datetime.CompareTimeOfDay
	}
	return datetime.CompareInstant
}

// PickerType is the requested interaction style.
type PickerType string

const (
	PickerCalendar PickerType = "calendar"
	PickerRollers  PickerType = "rollers"
	PickerList     PickerType = "list"
	PickerNative   PickerType = "native"
)

// PickerTypes lists the supported picker types in display order.
var PickerTypes = []PickerType{PickerCalendar, PickerRollers, PickerList, PickerNative}

// StrategyName identifies one of the five interaction strategies.
type StrategyName string

const (
	StrategyCalendar         StrategyName = "Calendar"
	StrategyDateView         StrategyName = "DateView"
	StrategyNative           StrategyName = "Native"
	StrategyCalendarWithTime StrategyName = "CalendarWithTime"
	StrategyList             StrategyName = "List"
)

// ApplyValueMode controls whether picking a value commits it immediately.
type ApplyValueMode string

const (
	ApplyInstantly  ApplyValueMode = "instantly"
	ApplyUseButtons ApplyValueMode = "useButtons"
)

const (
	defaultInvalidDateMessage    = "Value must be a date or time"
	defaultDateOutOfRangeMessage = "Value is out of range"
	defaultTodayButtonText       = "Today"
	popupTitleTime               = "Select time"
	popupTitleDate               = "Select date"
)

// ValidationError describes an internal validation failure.
type ValidationError struct {
	EditorSpecific bool
	Message        string
}

// Validity classifies the combined validation state.
type Validity uint8

const (
	// Valid means both the internal and the custom pass accepted the value.
	Valid Validity = iota
	// InternalFailure means the value is malformed or out of range.
	InternalFailure
	// CustomFailure means only the external validator rejected the value.
	CustomFailure
)

func (v Validity) String() string {
	switch v {
	case InternalFailure:
		return "internal-failure"
	case CustomFailure:
		return "custom-failure"
	default:
		return "valid"
	}
}

// Outcome reports what a text change did.
type Outcome uint8

const (
	// OutcomeSynchronized means the text already matched the value; only validation ran.
	OutcomeSynchronized Outcome = iota
	// OutcomeCommitted means a new value was stored.
	OutcomeCommitted
	// OutcomeRejected means internal validation refused the text.
	OutcomeRejected
	// OutcomeReRendered means the text named the stored instant and was rewritten canonically.
	OutcomeReRendered
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeReRendered:
		return "re-rendered"
	default:
		return "synchronized"
	}
}

var (
	// ErrReentrant is returned when a callback tries to mutate the box that invoked it.
	ErrReentrant = errors.New("datebox: reentrant mutation")
	// ErrDisposed is returned by entry points called after Dispose.
	ErrDisposed = errors.New("datebox: disposed")
)
