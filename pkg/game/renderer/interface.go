package renderer

import (
	"rotanika/pkg/game/state"
)

// Geometry is the terminal size a frame is laid out for
type Geometry struct {
	Width  int
	Height int
}

// Renderer defines the interface for console display backends
type Renderer interface {
	// Geometry returns the current display size. It is read fresh on every
	// call so a resize between frames is picked up.
	Geometry() Geometry

	// Render composes a complete frame for the given history and replaces
	// whatever is currently on screen with it
	Render(entries []state.Entry) error
}
