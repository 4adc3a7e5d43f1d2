package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/datebox/internal/datebox"
	"github.com/alexisbeaulieu97/datebox/internal/datetime"
)

var typeCycle = []datebox.Type{datebox.TypeDate, datebox.TypeDateTime, datebox.TypeTime}

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.surface.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	if m.box.Opened() {
		return m.handlePopupKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Commit):
		m.commit("enter")
	case key.Matches(msg, m.keys.Open):
		m.open()
	case key.Matches(msg, m.keys.CycleType):
		m.setOption(datebox.OptionType, nextType(m.box.State().Type))
	case key.Matches(msg, m.keys.CyclePicker):
		m.setOption(datebox.OptionPickerType, nextPicker(m.requestedPicker()))
	case key.Matches(msg, m.keys.Reset):
		m.report(m.box.Reset(), "reset")
	case key.Matches(msg, m.keys.Clear):
		m.report(m.box.Clear(msg.String()), "cleared")
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Cancel):
		return m.quit()
	default:
		if m.box.InputReadOnly() {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handlePopupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if key.Matches(msg, m.keys.Cancel) {
		m.report(m.box.Close(), "closed")
		return m, nil
	}
	if !m.box.Strategy().SupportsKey(k) {
		return m, nil
	}

	interval := m.box.State().Interval
	list := m.box.Strategy().Name() == datebox.StrategyList

	switch k {
	case "left":
		m.cursor = m.cursor.AddDate(0, 0, -1)
	case "right":
		m.cursor = m.cursor.AddDate(0, 0, 1)
	case "up":
		if list {
			m.cursor = m.cursor.Add(-time.Duration(interval) * time.Minute)
		} else {
			m.cursor = m.cursor.AddDate(0, 0, -7)
		}
	case "down":
		if list {
			m.cursor = m.cursor.Add(time.Duration(interval) * time.Minute)
		} else {
			m.cursor = m.cursor.AddDate(0, 0, 7)
		}
	case "pgup":
		m.cursor = m.cursor.AddDate(0, -1, 0)
	case "pgdown":
		m.cursor = m.cursor.AddDate(0, 1, 0)
	case "home":
		m.cursor = m.cursor.AddDate(0, 0, 1-m.cursor.Day())
	case "end":
		m.cursor = m.cursor.AddDate(0, 1, -m.cursor.Day())
	case "enter":
		m.apply(k)
	case "tab":
		m.report(m.box.Close(), "closed")
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if err := m.box.Dispose(); err != nil {
		m.err = err
	}
	return m, tea.Quit
}

func (m *Model) commit(event string) {
	outcome, err := m.box.Input(m.input.Value(), event)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = outcome.String()
	m.outcome = outcome.String()
	m.sync()
}

func (m *Model) open() {
	if _, err := m.box.Open(); err != nil {
		m.err = err
		return
	}
	m.cursor = m.cursorStart()
	m.status = fmt.Sprintf("%s picker open", m.box.Strategy().Name())
	m.sync()
}

func (m *Model) apply(event string) {
	applied, err := m.box.Apply(datetime.Of(m.cursor), event)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = "applied"
	if !applied {
		m.status = "not applied"
		if ve := m.box.State().ValidationError; ve != nil {
			m.status += ": " + ve.Message
		}
	}
	m.sync()
}

func (m *Model) setOption(name datebox.Option, value any) {
	if err := m.box.Set(name, value); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = fmt.Sprintf("%s: %v", name, value)
	m.sync()
}

func (m *Model) report(err error, status string) {
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = status
	m.sync()
}

func nextType(current datebox.Type) datebox.Type {
	for i, t := range typeCycle {
		if t == current {
			return typeCycle[(i+1)%len(typeCycle)]
		}
	}
	return typeCycle[0]
}

// requestedPicker is the picker type as configured, before it is
// normalized against the value type.
func (m *Model) requestedPicker() datebox.PickerType {
	if p := m.box.State().PickerType; p != "" {
		return p
	}
	return m.box.PickerType()
}

func nextPicker(current datebox.PickerType) datebox.PickerType {
	for i, p := range datebox.PickerTypes {
		if p == current {
			return datebox.PickerTypes[(i+1)%len(datebox.PickerTypes)]
		}
	}
	return datebox.PickerTypes[0]
}
