package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/datebox/internal/datebox"
	"github.com/alexisbeaulieu97/datebox/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.box.State()
	var sections []string

	sections = append(sections, titleStyle.Render(m.title))
	sections = append(sections, labelStyle.Render(fmt.Sprintf("type %s · picker %s (%s) · format %s",
		state.Type, m.box.PickerType(), m.box.Strategy().Name(), m.box.DisplayFormat())))

	sections = append(sections, m.renderInput(state))
	if msg := validationMessage(m.box.Validity(), state); msg != "" {
		sections = append(sections, msg)
	}

	if m.box.Opened() {
		sections = append(sections, m.renderPopup(state))
	}

	if m.err != nil {
		sections = append(sections, errorStyle.Render(m.err.Error()))
	} else if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	if state.SubmitValue != "" {
		sections = append(sections, mutedStyle.Render("submit: "+state.SubmitValue))
	}

	if summary := m.summary(); summary != "" {
		sections = append(sections, summaryStyle.Render(summary))
	}

	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderInput(state datebox.State) string {
	style := inputStyle
	switch m.box.Validity() {
	case datebox.InternalFailure:
		style = invalidInputStyle
	case datebox.CustomFailure:
		style = customInputStyle
	}

	line := m.input.View()
	if m.box.InputReadOnly() {
		line = m.box.Text()
		if line == "" {
			line = mutedStyle.Render(state.Placeholder)
		}
	}
	if m.box.ClearButtonVisible() && m.box.Text() != "" {
		line += " " + mutedStyle.Render("×")
	}
	if state.ShowDropDownButton {
		line += " " + buttonStyle.Render("▾")
	}
	return style.Render(line)
}

func validationMessage(validity datebox.Validity, state datebox.State) string {
	switch validity {
	case datebox.InternalFailure:
		if state.ValidationError != nil {
			return errorStyle.Render(state.ValidationError.Message)
		}
		return errorStyle.Render(state.InvalidDateMessage)
	case datebox.CustomFailure:
		return warningStyle.Render("value rejected by rules")
	default:
		return ""
	}
}

func (m Model) renderPopup(state datebox.State) string {
	cfg := m.box.PopupConfig()
	selected := m.box.Value()
	min, max := m.box.Bounds()

	var body []string
	if cfg.ShowTitle && cfg.Title != "" {
		body = append(body, popupTitleStyle.Render(cfg.Title))
	}

	switch m.box.Strategy().Name() {
	case datebox.StrategyCalendar:
		body = append(body, monthGrid(m.cursor, selected, min, max, m.box.RangeMode()))
	case datebox.StrategyCalendarWithTime:
		body = append(body, monthGrid(m.cursor, selected, min, max, m.box.RangeMode()), "", m.cursor.Format("3:04 PM"))
	case datebox.StrategyList:
		body = append(body, timeList(m.cursor, state.Interval, selected))
	case datebox.StrategyDateView:
		body = append(body, rollers(m.cursor, state.Type.HasDate(), state.Type.HasTime()))
	default:
		body = append(body, mutedStyle.Render("system picker"))
	}

	if len(cfg.Buttons) > 0 {
		var buttons []string
		for _, b := range cfg.Buttons {
			buttons = append(buttons, buttonStyle.Render("["+buttonLabel(b, state)+"]"))
		}
		body = append(body, "", strings.Join(buttons, " "))
	}

	style := popupStyle
	// popup widths are in pixels; a cell is about ten
	if cfg.Width > 0 {
		style = style.Width(cfg.Width / 10)
	}
	return style.Render(strings.Join(body, "\n"))
}

func buttonLabel(b datebox.Button, state datebox.State) string {
	switch b {
	case datebox.ButtonToday:
		if state.TodayButtonText != "" {
			return state.TodayButtonText
		}
		return "Today"
	case datebox.ButtonApply:
		return "OK"
	case datebox.ButtonCancel:
		return "Cancel"
	default:
		return string(b)
	}
}

func (m Model) summary() string {
	data := components.SummaryData{Changes: m.surface.changes, Outcome: m.outcome}
	for _, r := range m.surface.rules {
		data.Validations = append(data.Validations, components.ValidationStatus{
			Passed:  r.Passed,
			Message: fmt.Sprintf("%s: %s", r.Rule, r.Message),
		})
	}
	return components.NewSummary(data).View()
}
