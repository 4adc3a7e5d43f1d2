// Package dateserial converts dates to and from their stored form.
package dateserial

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/datebox/internal/datetime"
)

// FormatTag selects how a date is stored. The empty tag stores dates as-is.
type FormatTag string

const (
	FormatNone                 FormatTag = ""
	FormatNumber               FormatTag = "number"
	FormatISODate              FormatTag = "yyyy-MM-dd"
	FormatISODateTime          FormatTag = "yyyy-MM-ddTHH:mm:ss"
	FormatISODateTimeMillis    FormatTag = "yyyy-MM-ddTHH:mm:ss.SSS"
	FormatISODateTimeUTC       FormatTag = "yyyy-MM-ddTHH:mm:ssZ"
	FormatISODateTimeMillisUTC FormatTag = "yyyy-MM-ddTHH:mm:ss.SSSZ"
)

var iso8601 = regexp.MustCompile(`^(\d{4,})(-)?(\d{2})(-)?(\d{2})(?:T(\d{2})(:)?(\d{2})?(:)?(\d{2}(?:\.(\d{1,3})\d*)?)?)?(Z|([+-])(\d{2})(:)?(\d{2})?)?$`)

// FormatOf infers the tag a string value was written with. Strings that are
// not ISO 8601 yield FormatNone.
func FormatOf(s string) FormatTag {
	m := iso8601.FindStringSubmatch(s)
	if m == nil {
		return FormatNone
	}

	var b strings.Builder
	b.WriteString("yyyy")
	b.WriteString(m[2])
	b.WriteString("MM")
	b.WriteString(m[4])
	b.WriteString("dd")
	if m[6] != "" {
		b.WriteString("THH")
		if m[8] != "" {
			b.WriteString(m[7])
			b.WriteString("mm")
		}
		if m[10] != "" {
			b.WriteString(m[9])
			b.WriteString("ss")
		}
		if m[11] != "" {
			b.WriteString(".")
			b.WriteString(strings.Repeat("S", len(m[11])))
		}
	}
	switch {
	case m[12] == "Z":
		b.WriteString("Z")
	case m[13] != "":
		if m[15] != "" {
			b.WriteString("xxx")
		} else if m[16] != "" {
			b.WriteString("xx")
		} else {
			b.WriteString("x")
		}
	}
	return FormatTag(b.String())
}

// Codec serializes dates in a fixed zone.
type Codec struct {
	loc       *time.Location
	formatter *datetime.Formatter
}

// New returns a Codec for loc; a nil loc means the local zone.
func New(loc *time.Location) *Codec {
	if loc == nil {
		loc = time.Local
	}
	return &Codec{loc: loc, formatter: &datetime.Formatter{Location: loc}}
}

// Location returns the zone the codec reads and writes.
func (c *Codec) Location() *time.Location {
	return c.loc
}

// Serialize stores d using tag. Absent dates store Null.
func (c *Codec) Serialize(d datetime.Date, tag FormatTag) Value {
	if d.IsAbsent() {
		return Null()
	}
	switch tag {
	case FormatNone:
		return Date(d)
	case FormatNumber:
		ms, ok := d.UnixMilli()
		if !ok {
			return Date(d)
		}
		return Number(ms)
	}
	if !d.IsValid() {
		return Date(d)
	}

	pattern := ldmlPattern(tag)
	if strings.HasSuffix(pattern, "Z") {
		utc := &datetime.Formatter{Location: time.UTC}
		return String(utc.Format(d, strings.TrimSuffix(pattern, "Z")) + "Z")
	}
	return String(c.formatter.Format(d, pattern))
}

// Deserialize reads a stored value back into a date. Strings that are not
// ISO 8601 deserialize as Invalid; the empty string as Null.
func (c *Codec) Deserialize(v Value) datetime.Date {
	switch v.Kind() {
	case KindNumber:
		return datetime.Of(time.UnixMilli(v.Millis()).In(c.loc))
	case KindString:
		if v.Text() == "" {
			return datetime.Null()
		}
		return c.parseISO(v.Text())
	case KindDate:
		return v.date
	default:
		return datetime.Null()
	}
}

func (c *Codec) parseISO(s string) datetime.Date {
	m := iso8601.FindStringSubmatch(s)
	if m == nil {
		return datetime.Invalid()
	}

	num := func(i int) int {
		n, _ := strconv.Atoi(m[i])
		return n
	}
	year, month, day := num(1), num(3), num(5)
	hour, minute := num(6), num(8)

	var second, msec int
	if m[10] != "" {
		whole := m[10]
		if dot := strings.IndexByte(whole, '.'); dot >= 0 {
			whole = whole[:dot]
		}
		second, _ = strconv.Atoi(whole)
	}
	if m[11] != "" {
		msec = num(11)
		for i := len(m[11]); i < 3; i++ {
			msec *= 10
		}
	}

	zone := c.loc
	switch {
	case m[12] == "Z":
		zone = time.UTC
	case m[13] != "":
		offset := num(14)*3600 + num(16)*60
		if m[13] == "-" {
			offset = -offset
		}
		zone = time.FixedZone("", offset)
	}

	if month < 1 || month > 12 || day < 1 || hour > 23 || minute > 59 || second > 59 {
		return datetime.Invalid()
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, msec*int(time.Millisecond), zone)
	if t.Day() != day {
		return datetime.Invalid()
	}
	return datetime.Of(t.In(c.loc))
}

// DeserializeAs reads v like Deserialize, falling back to tag as a pattern
// for strings written in a custom serialization format.
func (c *Codec) DeserializeAs(v Value, tag FormatTag) datetime.Date {
	d := c.Deserialize(v)
	if d.Kind() != datetime.KindInvalid || !v.IsString() || tag == FormatNone || tag == FormatNumber {
		return d
	}
	if parsed := c.formatter.Parse(v.Text(), ldmlPattern(tag)); parsed.IsValid() {
		return parsed
	}
	return d
}

// ldmlPattern quotes the literal T so tags can be handed to the formatter.
func ldmlPattern(tag FormatTag) string {
	s := string(tag)
	if strings.Contains(s, "'") {
		return s
	}
	return strings.Replace(s, "T", "'T'", 1)
}
