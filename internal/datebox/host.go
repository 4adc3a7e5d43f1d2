package datebox

// Host is the rendering layer a box is embedded in. Every call is
// fire-and-forget; the box never reads results back except WindowWidth.
type Host interface {
	// Refresh asks for a full re-render after a strategy switch.
	Refresh()
	// Invalidate marks the rendered view stale.
	Invalidate()
	// ResizeInput applies a computed input width in cells.
	ResizeInput(width int)
	// Render forwards a strategy rendering hook.
	Render(strategy StrategyName, hook Hook)
	// WindowWidth reports the width available to the popup.
	WindowWidth() int
}

// NopHost is a Host for headless use.
type NopHost struct {
	// Width is reported by WindowWidth.
	Width int
}

func (NopHost) Refresh()                  {}
func (NopHost) Invalidate()               {}
func (NopHost) ResizeInput(int)           {}
func (NopHost) Render(StrategyName, Hook) {}
func (h NopHost) WindowWidth() int        { return h.Width }
