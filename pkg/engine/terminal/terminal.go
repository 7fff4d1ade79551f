package terminal

import (
	"io"
	"os"
	"os/exec"
	"runtime"

	"golang.org/x/term"
)

// Size returns the current width and height of the terminal attached to
// stdout. When stdout is not a terminal the fallback dimensions are returned
// instead; the console passes its configured overrides, which default to 0,0.
func Size(fallbackWidth, fallbackHeight int) (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fallbackWidth, fallbackHeight
	}
	return width, height
}

// SizeFunc returns a geometry source bound to the given fallback dimensions.
func SizeFunc(fallbackWidth, fallbackHeight int) func() (int, int) {
	return func() (int, int) {
		return Size(fallbackWidth, fallbackHeight)
	}
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Clear clears the screen using the platform clear command, writing its
// output to w.
func Clear(w io.Writer) error {
	var c *exec.Cmd
	if runtime.GOOS == "windows" {
		c = exec.Command("cmd", "/c", "cls")
	} else {
		c = exec.Command("clear")
	}
	c.Stdout = w
	return c.Run()
}
