// Package text measures and lays out strings in terminal columns.
package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Width returns the number of terminal columns s occupies.
// Code points classified East-Asian Wide or Fullwidth (CJK, most emoji) count
// as 2 columns, everything else counts as 1.
func Width(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}

// RuneWidth returns the column width of a single code point.
func RuneWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// Pad appends spaces to s until it is target columns wide.
// Strings already at or beyond target are returned unchanged.
func Pad(s string, target int) string {
	missing := target - Width(s)
	if missing <= 0 {
		return s
	}
	return s + strings.Repeat(" ", missing)
}

// Center centers s in a field of w characters, counting code points rather
// than columns. The odd leftover space goes left only when w is odd, which is
// how Python's str.center breaks ties.
func Center(s string, w int) string {
	n := utf8.RuneCountInString(s)
	if w <= n {
		return s
	}
	margin := w - n
	left := margin/2 + (margin & w & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", margin-left)
}

// Spaces returns n spaces, or the empty string for n <= 0.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
