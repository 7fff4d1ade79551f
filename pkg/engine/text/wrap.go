package text

import "strings"

// Wrap greedily packs the space-separated words of s into lines at most
// maxWidth columns wide.
//
// Words are split on the literal space character, so runs of spaces produce
// empty words: they vanish at the start of a line and survive as trailing
// padding inside one. A word wider than maxWidth is never broken and gets a
// line of its own.
func Wrap(s string, maxWidth int) []string {
	var lines []string
	current := ""

	for _, word := range strings.Split(s, " ") {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}

		if Width(candidate) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}
