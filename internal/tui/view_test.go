package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/datebox/internal/datebox"
	"github.com/alexisbeaulieu97/datebox/internal/datetime"
	"github.com/alexisbeaulieu97/datebox/internal/validation"
)

func TestViewShowsStateAndPopup(t *testing.T) {
	m := newModel(t, map[datebox.Option]any{datebox.OptionValue: "2020-05-01"})

	view := m.View()
	require.Contains(t, view, "Test")
	require.Contains(t, view, "Calendar")
	require.Contains(t, view, "submit: 2020-05-01")
	require.NotContains(t, view, "May 2020")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	view = m.View()
	require.Contains(t, view, "May 2020")
	require.Contains(t, view, "Su Mo Tu We Th Fr Sa")
}

func TestViewShowsValidationMessage(t *testing.T) {
	m := newModel(t, map[datebox.Option]any{datebox.OptionInvalidDateMessage: "Nope"})

	m = send(t, m, runes("garbage"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Contains(t, m.View(), "Nope")
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	m := newModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.Equal(t, "", m.View())
}

func TestMonthGridLayout(t *testing.T) {
	cursor := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	grid := monthGrid(cursor, datetime.Null(), datetime.Null(), datetime.Null(), datetime.CompareInstant)

	lines := strings.Split(grid, "\n")
	require.Equal(t, "March 2024", lines[0])
	require.Len(t, lines, 8)
	require.True(t, strings.HasPrefix(lines[2], strings.Repeat("   ", 5)+" 1  2"))
	require.Contains(t, grid, "31")
}

func TestSelectableFollowsRangeMode(t *testing.T) {
	min := datetime.Of(time.Date(2020, time.January, 1, 12, 0, 0, 0, time.UTC))
	first := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	require.False(t, selectable(first, min, datetime.Null(), datetime.CompareInstant))
	require.True(t, selectable(first.AddDate(0, 0, 1), min, datetime.Null(), datetime.CompareInstant))
	require.True(t, selectable(first, min, datetime.Null(), datetime.CompareDay))
}

func TestTimeListAndRollers(t *testing.T) {
	cursor := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	list := strings.Split(timeList(cursor, 30, datetime.Null()), "\n")
	require.Equal(t, []string{"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM"}, list)

	require.Equal(t, "‹ March ›  ‹ 15 ›  ‹ 2024 ›", rollers(cursor, true, false))
	require.Equal(t, "‹ 10 ›  ‹ 00 ›  ‹ AM ›", rollers(cursor, false, true))
}

func TestViewListsRuleResults(t *testing.T) {
	m, err := NewModel(Options{
		Box: datebox.Config{
			Location: time.UTC,
			Now:      func() time.Time { return fixedNow },
		},
		Rules: []validation.Rule{validation.RuleWeekday},
	})
	require.NoError(t, err)

	m = send(t, m, runes("3/16/2024"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, datebox.CustomFailure, m.Box().Validity())

	view := m.View()
	require.Contains(t, view, "Changes: 1")
	require.Contains(t, view, "Last edit: committed")
	require.Contains(t, view, "✗ weekday: Saturday is not a weekday")
	require.Contains(t, view, "value rejected by rules")
}
