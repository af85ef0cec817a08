package textbuf

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Display helpers for hosts that render to a terminal. Engine offsets count
// runes, but rendering works in grapheme clusters and display cells; these
// functions bridge the two.

// Graphemes splits s into user-perceived characters.
func Graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth cuts s to at most w display cells, never splitting a
// grapheme cluster.
func TruncateWidth(s string, w int) string {
	if DisplayWidth(s) <= w {
		return s
	}
	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		gw := runewidth.StringWidth(g.Str())
		if used+gw > w {
			break
		}
		sb.WriteString(g.Str())
		used += gw
	}
	return sb.String()
}

// WrapLine splits s into rows of at most w display cells on grapheme
// boundaries. An empty string yields one empty row.
func WrapLine(s string, w int) []string {
	if w <= 0 || DisplayWidth(s) <= w {
		return []string{s}
	}
	var rows []string
	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		gw := runewidth.StringWidth(g.Str())
		if used+gw > w && used > 0 {
			rows = append(rows, sb.String())
			sb.Reset()
			used = 0
		}
		sb.WriteString(g.Str())
		used += gw
	}
	rows = append(rows, sb.String())
	return rows
}
