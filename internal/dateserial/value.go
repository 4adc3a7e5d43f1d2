package dateserial

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/datebox/internal/datetime"
)

// ValueKind classifies a stored option value.
type ValueKind uint8

const (
	// KindNull is an empty stored value.
	KindNull ValueKind = iota
	// KindNumber is epoch milliseconds.
	KindNumber
	// KindString is a formatted date string.
	KindString
	// KindDate is a date stored as-is.
	KindDate
)

// Value is the stored (serialized) form of a date option: null, epoch
// milliseconds, a string, or a date object passed through untouched.
type Value struct {
	kind   ValueKind
	millis int64
	text   string
	date   datetime.Date
}

// Null returns the empty stored value.
func Null() Value { return Value{} }

// Number stores epoch milliseconds.
func Number(ms int64) Value { return Value{kind: KindNumber, millis: ms} }

// String stores a formatted date.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Date stores d as a date object. A null d stores Null.
func Date(d datetime.Date) Value {
	if d.IsAbsent() {
		return Null()
	}
	return Value{kind: KindDate, date: d}
}

// Time stores t as a date object.
func Time(t time.Time) Value { return Date(datetime.Of(t)) }

// FromAny converts loosely typed input (as decoded from YAML or set by a
// host) into a Value.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case int:
		return Number(int64(x)), nil
	case int64:
		return Number(x), nil
	case float64:
		return Number(int64(x)), nil
	case time.Time:
		return Time(x), nil
	case *time.Time:
		if x == nil {
			return Null(), nil
		}
		return Time(*x), nil
	case datetime.Date:
		return Date(x), nil
	default:
		return Null(), fmt.Errorf("unsupported date value type %T", v)
	}
}

// Kind reports the stored representation.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is empty.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsNumeric reports whether v holds epoch milliseconds.
func (v Value) IsNumeric() bool { return v.kind == KindNumber }

// IsString reports whether v holds a string.
func (v Value) IsString() bool { return v.kind == KindString }

// Millis returns the stored epoch milliseconds.
func (v Value) Millis() int64 { return v.millis }

// Text returns the stored string.
func (v Value) Text() string { return v.text }

// Interface returns the natural Go representation of v: nil, int64, string or time.Time.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.millis
	case KindString:
		return v.text
	case KindDate:
		return v.date.Time()
	default:
		return nil
	}
}

// Equal reports whether v and other store the same representation.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.millis == other.millis
	case KindString:
		return v.text == other.text
	case KindDate:
		return v.date.Kind() == other.date.Kind() && (!v.date.IsValid() || v.date.SameInstant(other.date))
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return fmt.Sprintf("%d", v.millis)
	case KindString:
		return v.text
	case KindDate:
		return v.date.String()
	default:
		return "null"
	}
}
