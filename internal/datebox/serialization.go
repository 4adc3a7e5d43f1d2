package datebox

import (
	"github.com/alexisbeaulieu97/datebox/internal/dateserial"
	"github.com/alexisbeaulieu97/datebox/internal/datetime"
)

// ResolveFormat picks the storage format for a new value from the shape of
// the current one. An explicit format wins only when forceISO is set;
// numbers stay numbers; non-strings are stored as dates; strings keep the
// ISO 8601 shape they were written in.
func ResolveFormat(current dateserial.Value, explicit string, forceISO bool) dateserial.FormatTag {
	switch {
	case explicit != "" && forceISO:
		return dateserial.FormatTag(explicit)
	case current.IsNumeric():
		return dateserial.FormatNumber
	case !current.IsString():
		return dateserial.FormatNone
	default:
		return dateserial.FormatOf(current.Text())
	}
}

var submitPatterns = map[Type]string{
	TypeDate:     "yyyy-MM-dd",
	TypeDateTime: "yyyy-MM-dd'T'HH:mm:ss",
	TypeTime:     "HH:mm:ss",
}

func (b *DateBox) serializationFormat() dateserial.FormatTag {
	return ResolveFormat(b.state.Value, b.state.DateSerializationFormat, b.forceISO)
}

func (b *DateBox) serializeDate(d datetime.Date) dateserial.Value {
	return b.codec.Serialize(d, b.serializationFormat())
}

// dateOption reads a stored date option back as a date.
func (b *DateBox) dateOption(name Option) datetime.Date {
	var v dateserial.Value
	switch name {
	case OptionMin:
		v = b.state.Min
	case OptionMax:
		v = b.state.Max
	default:
		v = b.state.Value
	}
	return b.codec.DeserializeAs(v, dateserial.FormatTag(b.state.DateSerializationFormat))
}

// submitValue renders the value for form submission: with the explicit
// serialization format when one is set, else the standard format of the type.
func (b *DateBox) submitValue() string {
	d := b.dateOption(OptionValue)
	if b.state.DateSerializationFormat != "" {
		v := b.codec.Serialize(d, dateserial.FormatTag(b.state.DateSerializationFormat))
		if v.IsNull() || v.Kind() == dateserial.KindDate {
			return ""
		}
		return v.String()
	}

	pattern, ok := submitPatterns[b.state.Type]
	if !ok {
		pattern = submitPatterns[TypeDateTime]
	}
	return b.dates.Format(d, pattern)
}
