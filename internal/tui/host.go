package tui

import (
	"github.com/alexisbeaulieu97/datebox/internal/datebox"
	"github.com/alexisbeaulieu97/datebox/internal/validation"
)

// surface is the datebox.Host backing the terminal model. The box calls
// it synchronously from inside Update.
type surface struct {
	width      int
	inputWidth int
	refreshes  int
	stale      bool
	lastHook   string
	changes    int
	rules      []validation.Result
}

func (s *surface) Refresh() {
	s.refreshes++
	s.stale = true
}

func (s *surface) Invalidate() { s.stale = true }

func (s *surface) ResizeInput(width int) { s.inputWidth = width }

func (s *surface) Render(strategy datebox.StrategyName, hook datebox.Hook) {
	s.lastHook = string(strategy) + ":" + string(hook)
}

func (s *surface) WindowWidth() int { return s.width }
