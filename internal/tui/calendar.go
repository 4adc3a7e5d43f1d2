package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/datebox/internal/datetime"
)

// monthGrid renders the month containing cursor as a seven column grid.
// Days the box would refuse against [min, max] under mode are dimmed. Each
// day carries the cursor's time of day, as an apply would.
func monthGrid(cursor time.Time, selected, min, max datetime.Date, mode datetime.RangeMode) string {
	var b strings.Builder

	loc := cursor.Location()
	first := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, loc)
	b.WriteString(popupTitleStyle.Render(first.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	b.WriteString(strings.Repeat("   ", int(first.Weekday())))
	days := first.AddDate(0, 1, -1).Day()
	for d := 1; d <= days; d++ {
		day := time.Date(cursor.Year(), cursor.Month(), d, cursor.Hour(), cursor.Minute(), 0, 0, loc)
		cell := fmt.Sprintf("%2d", d)

		switch {
		case d == cursor.Day():
			cell = cursorStyle.Render(cell)
		case selected.IsValid() && sameDay(selected.Time().In(loc), day):
			cell = selectedStyle.Render(cell)
		case !selectable(day, min, max, mode):
			cell = disabledStyle.Render(cell)
		}
		b.WriteString(cell)

		if day.Weekday() == time.Saturday {
			if d < days {
				b.WriteString("\n")
			}
			continue
		}
		b.WriteString(" ")
	}

	return strings.TrimRight(b.String(), " ")
}

func selectable(day time.Time, min, max datetime.Date, mode datetime.RangeMode) bool {
	return datetime.InRange(datetime.Of(day), min, max, mode, day.Location())
}

// timeList renders the slots around cursor spaced interval minutes apart.
func timeList(cursor time.Time, interval int, selected datetime.Date) string {
	if interval <= 0 {
		interval = 30
	}
	step := time.Duration(interval) * time.Minute

	var lines []string
	for i := -2; i <= 2; i++ {
		slot := cursor.Add(time.Duration(i) * step)
		label := slot.Format("3:04 PM")
		switch {
		case i == 0:
			label = cursorStyle.Render(label)
		case selected.IsValid() && selected.Time().Equal(slot):
			label = selectedStyle.Render(label)
		}
		lines = append(lines, label)
	}
	return strings.Join(lines, "\n")
}

// rollers renders one column per date part of cursor.
func rollers(cursor time.Time, withDate, withTime bool) string {
	var cols []string
	if withDate {
		cols = append(cols, cursor.Format("January"), cursor.Format("2"), cursor.Format("2006"))
	}
	if withTime {
		cols = append(cols, cursor.Format("3"), cursor.Format("04"), cursor.Format("PM"))
	}
	for i, col := range cols {
		cols[i] = "‹ " + col + " ›"
	}
	return strings.Join(cols, "  ")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
