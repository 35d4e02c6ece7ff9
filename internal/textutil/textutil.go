// Package textutil holds the small string primitives the composer is built on:
// word wrapping and cropping by grapheme cluster, plus display-width padding
// for menus.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// Wrap word-wraps text at width characters, counted the same way as Crop
// and Len. Surrounding whitespace is trimmed, blank lines are kept as
// paragraph separators and runs of blanks between words collapse to one
// space. Words longer than width are left intact on their own line.
func Wrap(text string, width int) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	var (
		lines []string
		cur   = indent + words[0]
		n     = Len(cur)
	)
	for _, w := range words[1:] {
		wl := Len(w)
		if n+1+wl > width {
			lines = append(lines, cur)
			cur, n = w, wl
			continue
		}
		cur += " " + w
		n += 1 + wl
	}
	return append(lines, cur)
}

// Crop returns the first n characters of s. Characters are grapheme
// clusters, so combining sequences and emoji are never split.
func Crop(s string, n int) string {
	if n <= 0 {
		return ""
	}

	g := uniseg.NewGraphemes(s)
	count, end := 0, 0
	for g.Next() {
		if count == n {
			return s[:end]
		}
		_, end = g.Positions()
		count++
	}
	return s
}

// Len counts the characters in s.
func Len(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Width reports how many terminal cells s occupies.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// PadRight pads s with spaces until it occupies width terminal cells.
func PadRight(s string, width int) string {
	n := width - Width(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
