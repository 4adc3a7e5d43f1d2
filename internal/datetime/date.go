// Package datetime holds the date value, formatting and calendar arithmetic
// the date box core is built on.
//
// A Date distinguishes four states that callers must not collapse: an explicit
// null, a parse that extracted nothing, a malformed date, and a valid instant.
package datetime

import "time"

// Kind classifies a Date.
type Kind uint8

const (
	// KindNull is an explicitly empty value.
	KindNull Kind = iota
	// KindUnparsed is the result of text that did not parse.
	KindUnparsed
	// KindInvalid is a date-shaped value that does not describe an instant.
	KindInvalid
	// KindValid is a well-formed instant.
	KindValid
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindUnparsed:
		return "unparsed"
	case KindInvalid:
		return "invalid"
	case KindValid:
		return "valid"
	default:
		return "unknown"
	}
}

// Date is an optional date-time value. The zero Date is null.
type Date struct {
	t    time.Time
	kind Kind
}

// Null returns the empty Date.
func Null() Date { return Date{} }

// Unparsed returns the Date produced by text that yielded no date.
func Unparsed() Date { return Date{kind: KindUnparsed} }

// Invalid returns a malformed Date.
func Invalid() Date { return Date{kind: KindInvalid} }

// Of wraps a valid instant.
func Of(t time.Time) Date { return Date{t: t, kind: KindValid} }

// Kind reports the state of d.
func (d Date) Kind() Kind { return d.kind }

// IsNull reports whether d is the explicit null value.
func (d Date) IsNull() bool { return d.kind == KindNull }

// IsAbsent reports whether d carries no date at all, either because it is
// null or because parsing extracted nothing.
func (d Date) IsAbsent() bool { return d.kind == KindNull || d.kind == KindUnparsed }

// IsValid reports whether d is a well-formed instant.
func (d Date) IsValid() bool { return d.kind == KindValid }

// Time returns the wrapped instant, or the zero time when d is not valid.
func (d Date) Time() time.Time {
	if d.kind != KindValid {
		return time.Time{}
	}
	return d.t
}

// UnixMilli returns the epoch milliseconds of a valid d.
func (d Date) UnixMilli() (int64, bool) {
	if d.kind != KindValid {
		return 0, false
	}
	return d.t.UnixMilli(), true
}

// SameInstant reports whether d and other are both valid and describe the
// same millisecond.
func (d Date) SameInstant(other Date) bool {
	a, ok := d.UnixMilli()
	if !ok {
		return false
	}
	b, ok := other.UnixMilli()
	return ok && a == b
}

// In converts a valid d to loc.
func (d Date) In(loc *time.Location) Date {
	if d.kind != KindValid || loc == nil {
		return d
	}
	return Of(d.t.In(loc))
}

func (d Date) String() string {
	if d.kind != KindValid {
		return d.kind.String()
	}
	return d.t.Format("2006-01-02T15:04:05.000Z07:00")
}
