package console

import (
	"strings"
	"time"

	"rotanika/pkg/engine/text"
	"rotanika/pkg/game/state"
)

// loader is one running loading animation. It owns a single history slot,
// rewriting it with a growing row of dots on every tick.
type loader struct {
	message  string
	slot     int
	interval time.Duration

	halt chan struct{} // closed to request a stop
	done chan struct{} // closed when the goroutine has returned
}

// halted reports whether a stop was requested
func (l *loader) halted() bool {
	select {
	case <-l.halt:
		return true
	default:
		return false
	}
}

// frame returns the slot text for tick. The dot count cycles through
// 0..maxDots, where maxDots is whatever still fits on the row at the
// current terminal width.
func (l *loader) frame(tick, termWidth int) string {
	maxDots := max(0, termWidth-text.Width(l.message)-4)
	return l.message + strings.Repeat(".", tick%(maxDots+1))
}

// LoadStart appends message to the history, renders, and starts animating
// it every interval until the next LoadEnd or history write. An animation
// that is already running is stopped first. A non-positive interval uses
// the configured default.
func (c *Console) LoadStart(message string, interval time.Duration) {
	if interval <= 0 {
		interval = c.loadingInterval
	}

	c.loaderMu.Lock()
	defer c.loaderMu.Unlock()

	c.stopLoaderLocked()

	c.mu.Lock()
	slot := c.history.Append(state.Entry{Text: message})
	c.renderLocked()
	c.mu.Unlock()

	l := &loader{
		message:  message,
		slot:     slot,
		interval: interval,
		halt:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	c.loader = l

	c.loaderLog.WithField("slot", slot).WithField("interval", interval).Debug("loading started")
	go c.animate(l)
}

// LoadEnd stops the running animation, if any, and blanks its slot. The
// slot stays in the history so later entries keep their positions. Calling
// it with nothing running does nothing.
func (c *Console) LoadEnd() {
	c.loaderMu.Lock()
	defer c.loaderMu.Unlock()
	c.stopLoaderLocked()
}

// Loading reports whether an animation is running
func (c *Console) Loading() bool {
	c.loaderMu.Lock()
	defer c.loaderMu.Unlock()
	return c.loader != nil
}

// stopLoaderLocked halts the animation and waits, up to joinTimeout, for its
// goroutine. Even if the wait times out the goroutine can no longer write:
// it re-checks halt under mu before touching the history.
// Caller must hold loaderMu and must not hold mu.
func (c *Console) stopLoaderLocked() {
	l := c.loader
	if l == nil {
		return
	}
	c.loader = nil

	close(l.halt)
	select {
	case <-l.done:
	case <-time.After(c.joinTimeout):
		c.loaderLog.WithField("slot", l.slot).Warn("loading animation did not stop in time")
	}

	c.mu.Lock()
	c.history.SetText(l.slot, "")
	c.mu.Unlock()

	c.loaderLog.WithField("slot", l.slot).Debug("loading stopped")
}

// animate drives l until it is halted or its slot disappears
func (c *Console) animate(l *loader) {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for tick := 1; ; tick++ {
		select {
		case <-l.halt:
			return
		case <-ticker.C:
		}

		if !c.advance(l, tick) {
			return
		}
	}
}

// advance writes the frame for tick into the slot and renders. It reports
// false when the animation must end.
func (c *Console) advance(l *loader, tick int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if l.halted() {
		return false
	}
	if _, ok := c.history.At(l.slot); !ok {
		c.loaderLog.WithField("slot", l.slot).Warn("loading slot vanished")
		return false
	}

	c.history.SetText(l.slot, l.frame(tick, c.renderer.Geometry().Width))
	c.renderLocked()
	return true
}
