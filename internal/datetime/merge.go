package datetime

import (
	"strings"
	"time"
)

// Parts selects which components of a date take part in a merge.
type Parts uint8

const (
	// DateParts covers year, month and day.
	DateParts Parts = 1 << iota
	// TimeParts covers hours through milliseconds.
	TimeParts

	AllParts = DateParts | TimeParts
)

// Merge copies the selected parts of update onto baseline. A baseline that is
// not valid is replaced by midnight, January 1st 1970 in loc. An absent update
// merges to Null and a malformed one to Invalid.
func Merge(baseline, update Date, parts Parts, loc *time.Location) Date {
	switch update.Kind() {
	case KindNull, KindUnparsed:
		return Null()
	case KindInvalid:
		return Invalid()
	}
	if loc == nil {
		loc = time.Local
	}

	base := time.Date(1970, time.January, 1, 0, 0, 0, 0, loc)
	if baseline.IsValid() {
		base = baseline.Time().In(loc)
	}
	src := update.Time().In(loc)

	year, month, day := base.Date()
	hour, minute, second, nsec := base.Hour(), base.Minute(), base.Second(), base.Nanosecond()
	if parts&DateParts != 0 {
		year, month, day = src.Date()
	}
	if parts&TimeParts != 0 {
		hour, minute, second, nsec = src.Hour(), src.Minute(), src.Second(), src.Nanosecond()
	}
	return Of(time.Date(year, month, day, hour, minute, second, nsec, loc))
}

// RangeMode selects how InRange compares dates.
type RangeMode uint8

const (
	// CompareInstant compares full instants.
	CompareInstant RangeMode = iota
	// CompareDay compares calendar days and ignores the time of day.
	CompareDay
	// CompareTimeOfDay compares the time of day and ignores the calendar day.
	CompareTimeOfDay
)

// InRange reports whether a valid d lies within [min, max]. Bounds that are
// not valid leave that side open.
func InRange(d, min, max Date, mode RangeMode, loc *time.Location) bool {
	if !d.IsValid() {
		return false
	}
	if loc == nil {
		loc = time.Local
	}
	value := project(d.Time(), mode, loc)
	if min.IsValid() && value.Before(project(min.Time(), mode, loc)) {
		return false
	}
	if max.IsValid() && value.After(project(max.Time(), mode, loc)) {
		return false
	}
	return true
}

func project(t time.Time, mode RangeMode, loc *time.Location) time.Time {
	t = t.In(loc)
	switch mode {
	case CompareDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	case CompareTimeOfDay:
		return time.Date(2000, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	default:
		return t
	}
}

// LongestDate returns a date whose rendering with layout is as wide as any
// other date's, used to size inputs before a value exists.
func LongestDate(layout string, monthNames, dayNames []string) time.Time {
	pattern := ResolvePattern(layout)
	month := 9
	if pattern == "" || strings.Contains(pattern, "MMMM") {
		month = longestIndex(monthNames)
	}

	longest := time.Date(1888, time.Month(month+1), 21, 23, 59, 59, 999*int(time.Millisecond), time.UTC)
	if pattern == "" || strings.Contains(pattern, "EEEE") {
		day := longest.Day() - int(longest.Weekday()) + longestIndex(dayNames)
		longest = time.Date(longest.Year(), longest.Month(), day, 23, 59, 59, 999*int(time.Millisecond), time.UTC)
	}
	return longest
}

func longestIndex(names []string) int {
	index, width := 0, 0
	for i, name := range names {
		if len(name) > width {
			index, width = i, len(name)
		}
	}
	return index
}
