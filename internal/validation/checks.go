package validation

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/datebox/internal/datetime"
)

// CheckRequired fails when no date was entered or the text did not parse.
func CheckRequired(d datetime.Date) error {
	if !d.IsValid() {
		return fmt.Errorf("a date is required")
	}
	return nil
}

// CheckWeekday fails for dates that fall on a Saturday or Sunday.
func CheckWeekday(d datetime.Date) error {
	if !d.IsValid() {
		return nil
	}

	switch day := d.Time().Weekday(); day {
	case time.Saturday, time.Sunday:
		return fmt.Errorf("%s is not a weekday", day)
	}
	return nil
}

// CheckFuture fails for dates at or before now.
func CheckFuture(d datetime.Date, now time.Time) error {
	if !d.IsValid() {
		return nil
	}

	if !d.Time().After(now) {
		return fmt.Errorf("date must be in the future")
	}
	return nil
}

// CheckPast fails for dates at or after now.
func CheckPast(d datetime.Date, now time.Time) error {
	if !d.IsValid() {
		return nil
	}

	if !d.Time().Before(now) {
		return fmt.Errorf("date must be in the past")
	}
	return nil
}
