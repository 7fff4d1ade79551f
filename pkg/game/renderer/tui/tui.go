// Package tui draws the console history as a bordered box on a plain ANSI
// terminal, clearing and reprinting the whole screen for every frame.
package tui

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"rotanika/pkg/engine/style"
	"rotanika/pkg/engine/terminal"
	"rotanika/pkg/engine/text"
	"rotanika/pkg/game/renderer"
	"rotanika/pkg/game/state"
)

// Layout reservations
const (
	// border + one space of padding on each side of a content row
	ContentMargin = 4
	// border on each side of the title and empty rows
	BorderMargin = 2
	// bottom padding row + bottom border + the blank line and prompt line
	// printed after the frame
	BottomReserve = 4
)

// Options configures a Renderer. Zero values fall back to the defaults used
// by New.
type Options struct {
	Out   io.Writer
	Clear func(w io.Writer) error
	Size  func() (width, height int)

	Title       string
	BorderChar  string
	BorderColor string
	DinkusChar  string
	DinkusColor string
	InputPrefix string
	InputColor  string
}

// Renderer is the terminal-based renderer implementation
type Renderer struct {
	out   io.Writer
	clear func(w io.Writer) error
	size  func() (int, int)

	title       string
	borderChar  string
	borderColor string
	dinkusChar  string
	dinkusColor string
	inputPrefix string
	inputColor  string
}

// New creates a new TUI renderer
func New(opts Options) *Renderer {
	r := &Renderer{
		out:         opts.Out,
		clear:       opts.Clear,
		size:        opts.Size,
		title:       opts.Title,
		borderChar:  opts.BorderChar,
		borderColor: opts.BorderColor,
		dinkusChar:  opts.DinkusChar,
		dinkusColor: opts.DinkusColor,
		inputPrefix: opts.InputPrefix,
		inputColor:  opts.InputColor,
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if r.clear == nil {
		r.clear = terminal.Clear
	}
	if r.size == nil {
		r.size = terminal.SizeFunc(0, 0)
	}
	if r.borderChar == "" {
		r.borderChar = "#"
	}
	if r.dinkusChar == "" {
		r.dinkusChar = "="
	}
	return r
}

// Geometry returns the terminal size right now
func (r *Renderer) Geometry() renderer.Geometry {
	w, h := r.size()
	return renderer.Geometry{Width: w, Height: h}
}

// Render clears the screen and writes the frame for entries in one write
func (r *Renderer) Render(entries []state.Entry) error {
	frame := Frame(r.Compose(entries, r.Geometry()))

	if err := r.clear(r.out); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	if _, err := io.WriteString(r.out, frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Frame joins composed rows into the text written to the terminal. The
// trailing blank line leaves the cursor below the box, ready for the prompt.
func Frame(rows []string) string {
	return strings.Join(rows, "\n") + "\n\n"
}

// Compose lays out the full frame for entries at geometry g. Rows carry no
// line terminator. Widths that go negative after the border reservations
// are treated as zero.
func (r *Renderer) Compose(entries []state.Entry, g renderer.Geometry) []string {
	borderRow := r.borderColor + r.repeat(r.borderChar, g.Width) + style.Reset

	rows := []string{borderRow}
	if r.title != "" {
		rows = append(rows,
			r.border()+text.Center(r.title, max(0, g.Width-BorderMargin))+r.border(),
			borderRow,
		)
	}
	rows = append(rows, r.emptyRow(g))
	headerRows := len(rows)

	for _, e := range entries {
		rows = append(rows, r.entryRows(e, g)...)
	}

	// Pad above the history so the newest entry sits just over the bottom border
	if deficit := g.Height - BottomReserve - len(rows); deficit > 0 {
		padding := make([]string, deficit)
		for i := range padding {
			padding[i] = r.emptyRow(g)
		}
		rows = slices.Insert(rows, headerRows, padding...)
	}

	rows = append(rows, r.emptyRow(g), borderRow)
	return rows
}

// entryRows renders one history entry, one row per wrapped line. Entries
// that wrap to nothing (empty or all-space text) take up no rows.
func (r *Renderer) entryRows(e state.Entry, g renderer.Geometry) []string {
	if e.Kind == state.KindDinkus {
		return []string{r.dinkusColor + r.repeat(r.dinkusChar, g.Width) + style.Reset}
	}

	line, color := e.Text, e.Color
	if e.Kind == state.KindInput {
		line = r.inputPrefix + line
		color = r.inputColor
	}

	target := max(0, g.Width-ContentMargin)
	wrapped := text.Wrap(line, target)

	out := make([]string, 0, len(wrapped))
	for _, l := range wrapped {
		out = append(out, r.border()+" "+color+text.Pad(l, target)+style.Reset+" "+r.border())
	}
	return out
}

// emptyRow returns a bordered row with nothing inside
func (r *Renderer) emptyRow(g renderer.Geometry) string {
	return r.border() + text.Spaces(g.Width-BorderMargin) + r.border()
}

// border returns a single colored border character
func (r *Renderer) border() string {
	return r.borderColor + r.borderChar + style.Reset
}

func (r *Renderer) repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
