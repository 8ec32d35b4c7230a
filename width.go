package panes

import (
	"iter"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// SymbolWidth returns how many terminal columns a single grapheme occupies.
func SymbolWidth(symbol string) int {
	return runewidth.StringWidth(symbol)
}

// StringWidth returns the column width of s as the buffer would lay it out:
// control characters and zero-width clusters take no space.
func StringWidth(s string) int {
	w := 0
	for _, gw := range Graphemes(s) {
		w += gw
	}
	return w
}

// Graphemes yields each printable grapheme cluster of s with its width.
// Clusters containing control characters and clusters of zero width are
// dropped.
func Graphemes(s string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		g := uniseg.NewGraphemes(s)
		for g.Next() {
			cluster := g.Str()
			if strings.IndexFunc(cluster, unicode.IsControl) >= 0 {
				continue
			}
			w := runewidth.StringWidth(cluster)
			if w == 0 {
				continue
			}
			if !yield(cluster, w) {
				return
			}
		}
	}
}
