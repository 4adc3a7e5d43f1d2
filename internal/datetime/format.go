package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

const patternLetters = "yMdEHhmsSax"

type token struct {
	letter  byte
	count   int
	literal string
}

// Formatter renders and parses dates with LDML-style patterns
// ("M/d/yyyy", "HH:mm") or named formats ("shortdate", "shorttime").
type Formatter struct {
	// Location is the zone used for rendering and for parsed dates.
	Location *time.Location
	// Now supplies the year used when a pattern carries no year.
	Now func() time.Time

	parsers sync.Map
}

// NewFormatter returns a Formatter working in the local zone.
func NewFormatter() *Formatter {
	return &Formatter{Location: time.Local, Now: time.Now}
}

// ResolvePattern expands a named format to its pattern; other specs are returned unchanged.
func ResolvePattern(layout string) string {
	if pattern, ok := namedFormats[strings.ToLower(layout)]; ok {
		return pattern
	}
	return layout
}

// IsNamedFormat reports whether layout is one of the predefined format names.
func IsNamedFormat(layout string) bool {
	_, ok := namedFormats[strings.ToLower(layout)]
	return ok
}

// ValidatePattern reports whether layout is a named format or a pattern that
// contains at least one field and balanced quotes.
func ValidatePattern(layout string) error {
	if IsNamedFormat(layout) {
		return nil
	}
	tokens, err := tokenize(layout)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		if tok.letter != 0 {
			return nil
		}
	}
	return fmt.Errorf("pattern %q contains no date or time fields", layout)
}

// MonthNames returns the full month names, January first.
func (f *Formatter) MonthNames() []string {
	return append([]string(nil), monthNames...)
}

// DayNames returns the full day names, Sunday first.
func (f *Formatter) DayNames() []string {
	return append([]string(nil), dayNames...)
}

func (f *Formatter) location() *time.Location {
	if f == nil || f.Location == nil {
		return time.Local
	}
	return f.Location
}

func (f *Formatter) now() time.Time {
	if f == nil || f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// Format renders d with layout. Dates that are not valid render as "".
func (f *Formatter) Format(d Date, layout string) string {
	if !d.IsValid() {
		return ""
	}
	tokens, err := tokenize(ResolvePattern(layout))
	if err != nil {
		return ""
	}
	t := d.Time().In(f.location())

	var b strings.Builder
	for _, tok := range tokens {
		if tok.letter == 0 {
			b.WriteString(tok.literal)
			continue
		}
		b.WriteString(formatField(t, tok))
	}
	return b.String()
}

func formatField(t time.Time, tok token) string {
	switch tok.letter {
	case 'y':
		if tok.count == 2 {
			return pad(t.Year()%100, 2)
		}
		return pad(t.Year(), tok.count)
	case 'M':
		switch {
		case tok.count >= 4:
			return monthNames[t.Month()-1]
		case tok.count == 3:
			return monthNames[t.Month()-1][:3]
		default:
			return pad(int(t.Month()), tok.count)
		}
	case 'd':
		return pad(t.Day(), tok.count)
	case 'E':
		if tok.count >= 4 {
			return dayNames[t.Weekday()]
		}
		return dayNames[t.Weekday()][:3]
	case 'H':
		return pad(t.Hour(), tok.count)
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return pad(hour, tok.count)
	case 'm':
		return pad(t.Minute(), tok.count)
	case 's':
		return pad(t.Second(), tok.count)
	case 'S':
		ms := pad(t.Nanosecond()/int(time.Millisecond), 3)
		if tok.count <= 3 {
			return ms[:tok.count]
		}
		return ms + strings.Repeat("0", tok.count-3)
	case 'a':
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case 'x':
		_, offset := t.Zone()
		sign := '+'
		if offset < 0 {
			sign = '-'
			offset = -offset
		}
		hours, minutes := offset/3600, (offset%3600)/60
		if tok.count == 1 {
			return fmt.Sprintf("%c%02d", sign, hours)
		}
		if tok.count == 2 {
			return fmt.Sprintf("%c%02d%02d", sign, hours, minutes)
		}
		return fmt.Sprintf("%c%02d:%02d", sign, hours, minutes)
	}
	return ""
}

func pad(value, width int) string {
	s := strconv.Itoa(value)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Parse reads text written with layout. Fields the pattern does not carry
// default to January 1st of the current year at midnight. Text that does not
// match, or names an impossible date, yields Unparsed.
func (f *Formatter) Parse(text, layout string) Date {
	p, err := f.parser(ResolvePattern(layout))
	if err != nil {
		return Unparsed()
	}
	return p.parse(strings.TrimSpace(text), f.now().In(f.location()).Year(), f.location())
}

type parser struct {
	re     *regexp.Regexp
	fields []token
}

func (f *Formatter) parser(pattern string) (*parser, error) {
	if cached, ok := f.parsers.Load(pattern); ok {
		return cached.(*parser), nil
	}

	tokens, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}

	var expr strings.Builder
	expr.WriteString(`(?i)^`)
	var fields []token
	for _, tok := range tokens {
		if tok.letter == 0 {
			expr.WriteString(literalExpr(tok.literal))
			continue
		}
		expr.WriteString(fieldExpr(tok))
		fields = append(fields, tok)
	}
	expr.WriteString(`$`)

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, err
	}
	p := &parser{re: re, fields: fields}
	f.parsers.Store(pattern, p)
	return p, nil
}

func literalExpr(literal string) string {
	parts := strings.Fields(literal)
	if len(parts) == 0 {
		return `\s+`
	}
	var b strings.Builder
	if strings.TrimLeft(literal, " ") != literal {
		b.WriteString(`\s+`)
	}
	for i, part := range parts {
		if i > 0 {
			b.WriteString(`\s+`)
		}
		b.WriteString(regexp.QuoteMeta(part))
	}
	if strings.TrimRight(literal, " ") != literal {
		b.WriteString(`\s+`)
	}
	return b.String()
}

func fieldExpr(tok token) string {
	switch tok.letter {
	case 'y':
		if tok.count == 2 {
			return `(\d{2})`
		}
		return `(\d{1,4})`
	case 'M':
		switch {
		case tok.count >= 4:
			return `(` + strings.Join(monthNames, "|") + `)`
		case tok.count == 3:
			return `(` + strings.Join(abbreviate(monthNames), "|") + `)`
		default:
			return `(\d{1,2})`
		}
	case 'E':
		if tok.count >= 4 {
			return `(` + strings.Join(dayNames, "|") + `)`
		}
		return `(` + strings.Join(abbreviate(dayNames), "|") + `)`
	case 'S':
		return `(\d{1,` + strconv.Itoa(tok.count) + `})`
	case 'a':
		return `(AM|PM)`
	case 'x':
		return `([+-]\d{2}(?::?\d{2})?|Z)`
	default:
		return `(\d{1,2})`
	}
}

type fields struct {
	year, month, day           int
	hour, minute, second, msec int
	pm, hasMeridiem, twelve    bool
	offset                     *int
}

func (p *parser) parse(text string, defaultYear int, loc *time.Location) Date {
	match := p.re.FindStringSubmatch(text)
	if match == nil {
		return Unparsed()
	}

	v := fields{year: defaultYear, month: 1, day: 1}
	for i, tok := range p.fields {
		if !v.apply(tok, match[i+1]) {
			return Unparsed()
		}
	}

	if v.twelve {
		if v.hour < 1 || v.hour > 12 {
			return Unparsed()
		}
		v.hour %= 12
		if v.pm {
			v.hour += 12
		}
	} else if v.hasMeridiem && v.pm && v.hour < 12 {
		v.hour += 12
	}

	if v.month < 1 || v.month > 12 || v.day < 1 || v.hour > 23 || v.minute > 59 || v.second > 59 {
		return Unparsed()
	}

	zone := loc
	if v.offset != nil {
		zone = time.FixedZone("", *v.offset)
	}
	t := time.Date(v.year, time.Month(v.month), v.day, v.hour, v.minute, v.second, v.msec*int(time.Millisecond), zone)
	if t.Day() != v.day || int(t.Month()) != v.month {
		return Unparsed()
	}
	return Of(t.In(loc))
}

func (v *fields) apply(tok token, raw string) bool {
	switch tok.letter {
	case 'M':
		if tok.count >= 3 {
			v.month = nameIndex(raw, monthNames) + 1
			return v.month > 0
		}
	case 'E':
		return nameIndex(raw, dayNames) >= 0
	case 'a':
		v.hasMeridiem = true
		v.pm = strings.EqualFold(raw, "PM")
		return true
	case 'x':
		offset, ok := parseOffset(raw)
		v.offset = &offset
		return ok
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	switch tok.letter {
	case 'y':
		if tok.count == 2 {
			if n < 50 {
				n += 2000
			} else {
				n += 1900
			}
		}
		v.year = n
	case 'M':
		v.month = n
	case 'd':
		v.day = n
	case 'H':
		v.hour = n
	case 'h':
		v.hour = n
		v.twelve = true
	case 'm':
		v.minute = n
	case 's':
		v.second = n
	case 'S':
		for i := len(raw); i < 3; i++ {
			n *= 10
		}
		for i := len(raw); i > 3; i-- {
			n /= 10
		}
		v.msec = n
	}
	return true
}

func nameIndex(raw string, names []string) int {
	for i, name := range names {
		if strings.EqualFold(raw, name) || strings.EqualFold(raw, name[:3]) {
			return i
		}
	}
	return -1
}

func parseOffset(raw string) (int, bool) {
	if raw == "Z" || raw == "z" {
		return 0, true
	}
	sign := 1
	if raw[0] == '-' {
		sign = -1
	}
	digits := strings.ReplaceAll(raw[1:], ":", "")
	hours, err := strconv.Atoi(digits[:2])
	if err != nil {
		return 0, false
	}
	minutes := 0
	if len(digits) >= 4 {
		if minutes, err = strconv.Atoi(digits[2:4]); err != nil {
			return 0, false
		}
	}
	return sign * (hours*3600 + minutes*60), true
}

func tokenize(pattern string) ([]token, error) {
	var tokens []token
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, token{literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				literal.WriteByte('\'')
				i += 2
				continue
			}
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				return nil, fmt.Errorf("unterminated quote in pattern %q", pattern)
			}
			literal.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
		case strings.IndexByte(patternLetters, c) >= 0:
			flush()
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			tokens = append(tokens, token{letter: c, count: j - i})
			i = j
		default:
			literal.WriteByte(c)
			i++
		}
	}
	flush()
	return tokens, nil
}
