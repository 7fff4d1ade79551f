// Package style builds ANSI SGR escape sequences from named codes.
package style

import (
	"regexp"
	"sort"

	"github.com/gookit/color"
)

// SGR attribute resets that have no named constant in gookit/color.
const (
	codeResetBold      color.Color = 22
	codeResetItalic    color.Color = 23
	codeResetUnderline color.Color = 24
	codeResetBlink     color.Color = 25
	codeResetReverse   color.Color = 27
	codeResetHidden    color.Color = 28
	codeResetStrike    color.Color = 29
)

// Codes maps symbolic names to raw SGR parameter codes.
var Codes = map[string]color.Color{
	"reset":         color.OpReset,
	"bold":          color.OpBold,
	"dim":           color.OpFuzzy,
	"italic":        color.OpItalic,
	"underline":     color.OpUnderscore,
	"blink":         color.OpBlink,
	"reverse":       color.OpReverse,
	"hidden":        color.OpConcealed,
	"strikethrough": color.OpStrikethrough,

	"reset-bold":          codeResetBold,
	"reset-dim":           codeResetBold, // SGR 22 clears both bold and dim
	"reset-italic":        codeResetItalic,
	"reset-underline":     codeResetUnderline,
	"reset-blink":         codeResetBlink,
	"reset-reverse":       codeResetReverse,
	"reset-hidden":        codeResetHidden,
	"reset-strikethrough": codeResetStrike,

	"color-black":   color.FgBlack,
	"color-red":     color.FgRed,
	"color-green":   color.FgGreen,
	"color-yellow":  color.FgYellow,
	"color-blue":    color.FgBlue,
	"color-magenta": color.FgMagenta,
	"color-cyan":    color.FgCyan,
	"color-white":   color.FgWhite,
	"color-default": color.FgDefault,

	"bg-color-black":   color.BgBlack,
	"bg-color-red":     color.BgRed,
	"bg-color-green":   color.BgGreen,
	"bg-color-yellow":  color.BgYellow,
	"bg-color-blue":    color.BgBlue,
	"bg-color-magenta": color.BgMagenta,
	"bg-color-cyan":    color.BgCyan,
	"bg-color-white":   color.BgWhite,
	"bg-color-default": color.BgDefault,

	"bright-black":   color.FgDarkGray,
	"bright-red":     color.FgLightRed,
	"bright-green":   color.FgLightGreen,
	"bright-yellow":  color.FgLightYellow,
	"bright-blue":    color.FgLightBlue,
	"bright-magenta": color.FgLightMagenta,
	"bright-cyan":    color.FgLightCyan,
	"bright-white":   color.FgLightWhite,

	"bg-bright-black":   color.BgDarkGray,
	"bg-bright-red":     color.BgLightRed,
	"bg-bright-green":   color.BgLightGreen,
	"bg-bright-yellow":  color.BgLightYellow,
	"bg-bright-blue":    color.BgLightBlue,
	"bg-bright-magenta": color.BgLightMagenta,
	"bg-bright-cyan":    color.BgLightCyan,
	"bg-bright-white":   color.BgLightWhite,
}

// Pre-rendered sequences for the colors the console uses most.
var (
	Reset   = Style(color.OpReset)
	Bold    = Style(color.OpBold)
	Black   = Style(color.FgBlack)
	Red     = Style(color.FgRed)
	Green   = Style(color.FgGreen)
	Yellow  = Style(color.FgYellow)
	Blue    = Style(color.FgBlue)
	Magenta = Style(color.FgMagenta)
	Cyan    = Style(color.FgCyan)
	White   = Style(color.FgWhite)
)

// short color names accepted by Lookup in addition to the Codes keys
var aliases = map[string]string{
	"black":   "color-black",
	"red":     "color-red",
	"green":   "color-green",
	"yellow":  "color-yellow",
	"blue":    "color-blue",
	"magenta": "color-magenta",
	"cyan":    "color-cyan",
	"white":   "color-white",
	"default": "color-default",
}

var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Style joins the given parameter codes into a single ESC [ p1;p2 m sequence.
func Style(codes ...color.Color) string {
	return "\x1b[" + color.Colors2code(codes...) + "m"
}

// Lookup returns the escape sequence for a symbolic name such as "bold",
// "color-red", "bg-color-blue", "bright-cyan" or the short form "red".
// The empty name maps to the empty sequence.
func Lookup(name string) (string, bool) {
	if name == "" {
		return "", true
	}
	if full, ok := aliases[name]; ok {
		name = full
	}
	code, ok := Codes[name]
	if !ok {
		return "", false
	}
	return Style(code), true
}

// Names returns every name Lookup accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(Codes)+len(aliases))
	for name := range Codes {
		names = append(names, name)
	}
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Strip removes every SGR sequence from s. Text without a complete
// ESC [ digits/semicolons m sequence is returned unchanged.
func Strip(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}
