package datebox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

type recordingHost struct {
	width         int
	refreshes     int
	invalidations int
	resizes       []int
	hooks         []string
}

func (h *recordingHost) Refresh()          { h.refreshes++ }
func (h *recordingHost) Invalidate()       { h.invalidations++ }
func (h *recordingHost) ResizeInput(w int) { h.resizes = append(h.resizes, w) }
func (h *recordingHost) WindowWidth() int  { return h.width }

func (h *recordingHost) Render(strategy StrategyName, hook Hook) {
	h.hooks = append(h.hooks, string(strategy)+":"+string(hook))
}

func (h *recordingHost) saw(entry string) bool {
	for _, hook := range h.hooks {
		if hook == entry {
			return true
		}
	}
	return false
}

type validatorSpy struct {
	calls    int
	verdict  bool
	requests []ValidationRequest
}

func (v *validatorSpy) validate(req ValidationRequest) bool {
	v.calls++
	v.requests = append(v.requests, req)
	return v.verdict
}

func newBox(t *testing.T, options map[Option]any, mods ...func(*Config)) (*DateBox, *recordingHost) {
	t.Helper()

	host := &recordingHost{width: 1024}
	cfg := Config{
		Options:  options,
		Device:   DesktopDevice,
		Host:     host,
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
	}
	for _, mod := range mods {
		mod(&cfg)
	}

	box, err := New(cfg)
	require.NoError(t, err)
	return box, host
}

func withValidator(spy *validatorSpy) func(*Config) {
	return func(cfg *Config) { cfg.Validator = spy.validate }
}

func withDevice(d Device) func(*Config) {
	return func(cfg *Config) { cfg.Device = d }
}

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
