// Package gamestrings holds the player-facing text of the game.
package gamestrings

import (
	_ "embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// Catalog keys
const (
	ExitMessage          = "EXIT_MESSAGE"
	ExitImmediateMessage = "EXIT_IMMEDIATE_MESSAGE"
	Loading              = "LOADING"
	LoadingComplete      = "LOADING_COMPLETE"
	PressEnter           = "PRESS_ENTER"
	YouEntered           = "YOU_ENTERED"
	Title                = "TITLE"
)

//go:embed locales/en.po
var catalogSource []byte

var catalog = newCatalog()

func newCatalog() *gotext.Po {
	po := gotext.NewPo()
	po.Parse(catalogSource)
	return po
}

// noArgs is spread into plain lookups so they are not checked as format calls
var noArgs []any

// Get returns the text for key. Unknown keys come back as the key itself.
func Get(key string) string {
	return catalog.Get(key, noArgs...)
}

// Getf returns the text for key used as a format for args
func Getf(key string, args ...any) string {
	return fmt.Sprintf(Get(key), args...)
}
