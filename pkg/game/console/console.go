// Package console implements the bordered interaction console: an
// append-only history that is re-rendered in full on every change, line
// input with a reserved exit keyword, and a background loading animation.
//
// One Console is meant to own the terminal for the life of the process.
package console

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/zyedidia/generic/mapset"

	"rotanika/pkg/engine/input"
	"rotanika/pkg/engine/logger"
	"rotanika/pkg/game/gamestrings"
	"rotanika/pkg/game/renderer"
	"rotanika/pkg/game/state"
)

// Defaults applied by New for zero Options fields
const (
	DefaultInputPrefix     = "> "
	DefaultExitDelay       = 1500 * time.Millisecond
	DefaultLoadingInterval = 500 * time.Millisecond
	DefaultJoinTimeout     = 2 * time.Second
)

// ErrExited is returned by Input and Prompt when the exit sequence ran but
// the configured exit function returned instead of ending the process.
var ErrExited = errors.New("console exited")

// LineSource supplies lines typed by the user
type LineSource interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Options configures a Console
type Options struct {
	Renderer renderer.Renderer
	Input    LineSource

	InputPrefix     string
	ExitKeywords    []string
	LoadingInterval time.Duration

	// ExitDelay applies to the exit keyword; negative means no delay
	ExitDelay time.Duration

	// JoinTimeout bounds how long stopping the loading animation waits for
	// its goroutine
	JoinTimeout time.Duration

	// Exit ends the process; defaults to os.Exit
	Exit func(code int)
	// Sleep holds the exit message on screen; defaults to time.Sleep
	Sleep func(d time.Duration)
}

// Console owns the history and coordinates rendering, input and the
// loading animation.
type Console struct {
	// mu guards history and every render, so a frame never sees a torn
	// update and the animation never writes between a stop and a new write
	mu      sync.Mutex
	history *state.History

	// loaderMu serializes starting and stopping the animation. It is always
	// taken before mu, never while holding it.
	loaderMu sync.Mutex
	loader   *loader

	renderer renderer.Renderer
	input    LineSource

	inputPrefix     string
	exitKeywords    mapset.Set[string]
	exitDelay       time.Duration
	loadingInterval time.Duration
	joinTimeout     time.Duration
	exit            func(code int)
	sleep           func(d time.Duration)

	log       *logger.Entry
	loaderLog *logger.Entry
}

// New creates a console. Renderer and Input are required.
func New(opts Options) *Console {
	c := &Console{
		history:         state.NewHistory(),
		renderer:        opts.Renderer,
		input:           opts.Input,
		inputPrefix:     opts.InputPrefix,
		exitKeywords:    mapset.New[string](),
		exitDelay:       opts.ExitDelay,
		loadingInterval: opts.LoadingInterval,
		joinTimeout:     opts.JoinTimeout,
		exit:            opts.Exit,
		sleep:           opts.Sleep,
		log:             logger.Named("console"),
		loaderLog:       logger.Named("loader"),
	}

	if c.inputPrefix == "" {
		c.inputPrefix = DefaultInputPrefix
	}
	keywords := opts.ExitKeywords
	if len(keywords) == 0 {
		keywords = []string{"exit"}
	}
	for _, k := range keywords {
		c.exitKeywords.Put(strings.ToLower(k))
	}
	switch {
	case c.exitDelay < 0:
		c.exitDelay = 0
	case c.exitDelay == 0:
		c.exitDelay = DefaultExitDelay
	}
	if c.loadingInterval <= 0 {
		c.loadingInterval = DefaultLoadingInterval
	}
	if c.joinTimeout <= 0 {
		c.joinTimeout = DefaultJoinTimeout
	}
	if c.exit == nil {
		c.exit = os.Exit
	}
	if c.sleep == nil {
		c.sleep = time.Sleep
	}

	return c
}

// WriteOption adjusts a single Write call
type WriteOption func(*writeOptions)

type writeOptions struct {
	overwrite bool
	color     string
}

// Overwrite replaces the most recent history entry instead of appending.
// On an empty history the text is appended.
func Overwrite() WriteOption {
	return func(o *writeOptions) { o.overwrite = true }
}

// WithColor renders the entry with the given escape sequence
func WithColor(seq string) WriteOption {
	return func(o *writeOptions) { o.color = seq }
}

// Write records text in the history. It does not render.
func (c *Console) Write(text string, opts ...WriteOption) {
	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}

	c.LoadEnd()

	c.mu.Lock()
	defer c.mu.Unlock()

	e := state.Entry{Text: text, Kind: state.KindNormal, Color: o.color}
	if o.overwrite && c.history.ReplaceLast(e) {
		return
	}
	c.history.Append(e)
}

// WriteEmpty records an empty line
func (c *Console) WriteEmpty() {
	c.Write("")
}

// WriteDinkus records a full-width separator rule
func (c *Console) WriteDinkus() {
	c.LoadEnd()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.history.Append(state.Entry{Kind: state.KindDinkus})
}

// Render draws the current history. Rendering is best effort: the error is
// logged and returned but leaves the console usable.
func (c *Console) Render() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderLocked()
}

// renderLocked draws the history.
// Caller must hold mu.
func (c *Console) renderLocked() error {
	if err := c.renderer.Render(c.history.Entries()); err != nil {
		c.log.WithError(err).Warn("render failed")
		return err
	}
	return nil
}

// Input renders the console and reads one line using the configured prompt
// prefix. See Prompt.
func (c *Console) Input(ctx context.Context) (string, error) {
	return c.Prompt(ctx, c.inputPrefix)
}

// Prompt renders the console, shows prompt and blocks for one line.
//
// A line matching an exit keyword (case-insensitively) and an interrupt
// during the read both run the exit sequence instead of returning. Any other
// read failure is returned as is.
func (c *Console) Prompt(ctx context.Context, prompt string) (string, error) {
	c.LoadEnd()
	c.Render()

	line, err := c.input.ReadLine(ctx, prompt)
	if err != nil {
		if errors.Is(err, input.ErrInterrupted) {
			c.log.Info("interrupted during input")
			c.Exit(0, 0, gamestrings.Get(gamestrings.ExitImmediateMessage))
			return "", ErrExited
		}
		c.log.WithError(err).Error("read input")
		return "", fmt.Errorf("read input: %w", err)
	}

	if c.exitKeywords.Has(strings.ToLower(line)) {
		c.Exit(0, c.exitDelay, gamestrings.Get(gamestrings.ExitMessage))
		return "", ErrExited
	}

	c.mu.Lock()
	c.history.Append(state.Entry{Text: line, Kind: state.KindInput})
	c.mu.Unlock()

	return line, nil
}

// Exit writes an empty line and message, renders once, waits delay and
// ends the process with code.
func (c *Console) Exit(code int, delay time.Duration, message string) {
	c.LoadEnd()

	c.mu.Lock()
	c.history.Append(state.Entry{})
	c.history.Append(state.Entry{Text: message})
	c.renderLocked()
	c.mu.Unlock()

	c.log.WithField("code", code).WithField("delay", delay).Info("exiting")
	c.sleep(delay)
	c.exit(code)
}

// History returns a copy of every entry written so far
func (c *Console) History() []state.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Entries()
}
