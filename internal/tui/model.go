package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/datebox/internal/datebox"
	"github.com/alexisbeaulieu97/datebox/internal/validation"
)

// Options configures the interactive editor.
type Options struct {
	// Box configures the hosted date box. Its Host is replaced by the model.
	Box datebox.Config
	// Title is shown above the input.
	Title string
	// Width is the initial window width reported to the box.
	Width int
	// Rules replace the box validator; their results are listed in the view.
	Rules []validation.Rule
}

// Model is the Bubbletea model hosting a single date box.
type Model struct {
	box     *datebox.DateBox
	surface *surface
	input   textinput.Model
	keys    keyMap
	help    help.Model
	title   string
	now     func() time.Time

	cursor   time.Time
	status   string
	outcome  string
	err      error
	quitting bool
}

// NewModel creates the box described by opts and wraps it in a model.
func NewModel(opts Options) (Model, error) {
	s := &surface{width: opts.Width}

	cfg := opts.Box
	cfg.Host = s
	notify := cfg.OnValueChanged
	cfg.OnValueChanged = func(ev datebox.ValueChangedEvent) {
		s.changes++
		if notify != nil {
			notify(ev)
		}
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	if len(opts.Rules) > 0 {
		cfg.Validator = validation.Custom(opts.Rules, now, func(results []validation.Result, _ error) {
			s.rules = results
		})
	}

	box, err := datebox.New(cfg)
	if err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 64
	input.Focus()

	title := opts.Title
	if title == "" {
		title = "DateBox"
	}

	m := Model{
		box:     box,
		surface: s,
		input:   input,
		keys:    defaultKeyMap(),
		help:    help.New(),
		title:   title,
		now:     now,
	}
	m.sync()
	return m, nil
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Box returns the hosted date box.
func (m Model) Box() *datebox.DateBox {
	return m.box
}

// Err returns the last error reported by the box.
func (m Model) Err() error {
	return m.err
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Changes counts the value changes the box has reported.
func (m Model) Changes() int {
	return m.surface.changes
}

// sync copies the box text and presentation flags into the input.
func (m *Model) sync() {
	state := m.box.State()
	m.input.SetValue(m.box.Text())
	m.input.Placeholder = state.Placeholder
	if m.surface.inputWidth > 0 {
		m.input.Width = m.surface.inputWidth
	}
	m.surface.stale = false
}

func (m *Model) cursorStart() time.Time {
	if v := m.box.Value(); v.IsValid() {
		return v.Time()
	}
	if d := m.box.Strategy().DefaultDate(); d.IsValid() {
		return d.Time()
	}
	return m.now()
}
