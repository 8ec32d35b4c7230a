// Package teaview renders panes buffers as styled strings for bubbletea
// views.
package teaview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kungfusheep/panes"
)

// Renderer turns buffers into strings using a lipgloss renderer, which
// decides how much color the output carries.
type Renderer struct {
	lg *lipgloss.Renderer
}

// NewRenderer wraps r. A nil r uses lipgloss's default renderer.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Renderer{lg: r}
}

// Render renders b with the default renderer.
func Render(b *panes.Buffer) string {
	return NewRenderer(nil).Render(b)
}

// Draw sizes a buffer to width x height, lets fn paint it and renders the
// result. It is meant to be called from a bubbletea View.
func (r *Renderer) Draw(width, height int, fn func(buf *panes.Buffer)) string {
	b := panes.Empty(panes.NewRect(0, 0, clamp(width), clamp(height)))
	fn(b)
	return r.Render(b)
}

// Render returns one line per buffer row joined by newlines. Each run of
// cells sharing a style is rendered as one lipgloss span.
func (r *Renderer) Render(b *panes.Buffer) string {
	var sb strings.Builder
	cells := b.Content()
	width := int(b.Area.Width)
	for row := 0; width > 0 && row*width < len(cells); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		line := cells[row*width : (row+1)*width]
		for start := 0; start < len(line); {
			key := styleKey(line[start])
			end := start + 1
			for end < len(line) && (line[end].Skip || styleKey(line[end]) == key) {
				end++
			}
			r.writeRun(&sb, line[start:end])
			start = end
		}
	}
	return sb.String()
}

func (r *Renderer) writeRun(sb *strings.Builder, run []panes.Cell) {
	var text strings.Builder
	hidden := run[0].Modifier.Has(panes.AttrHidden)
	for _, c := range run {
		switch {
		case c.Skip:
		case hidden:
			text.WriteString(strings.Repeat(" ", c.Width()))
		default:
			text.WriteString(c.Symbol)
		}
	}
	if styleKey(run[0]) == (key{}) {
		sb.WriteString(text.String())
		return
	}
	sb.WriteString(r.style(run[0]).Render(text.String()))
}

// key is the part of a cell that affects how lipgloss draws it.
type key struct {
	fg, bg panes.Color
	mod    panes.Attribute
}

func styleKey(c panes.Cell) key {
	return key{fg: normal(c.FG), bg: normal(c.BG), mod: c.Modifier}
}

func normal(c panes.Color) panes.Color {
	if c.Mode == panes.ColorReset {
		return panes.Color{}
	}
	return c
}

func (r *Renderer) style(c panes.Cell) lipgloss.Style {
	st := r.lg.NewStyle()
	if col, ok := lipglossColor(c.FG); ok {
		st = st.Foreground(col)
	}
	if col, ok := lipglossColor(c.BG); ok {
		st = st.Background(col)
	}
	m := c.Modifier
	return st.
		Bold(m.Has(panes.AttrBold)).
		Faint(m.Has(panes.AttrDim)).
		Italic(m.Has(panes.AttrItalic)).
		Underline(m.Has(panes.AttrUnderline)).
		Blink(m.Has(panes.AttrBlink)).
		Reverse(m.Has(panes.AttrInverse)).
		Strikethrough(m.Has(panes.AttrStrikethrough))
}

func lipglossColor(c panes.Color) (lipgloss.Color, bool) {
	switch c.Mode {
	case panes.Color16, panes.Color256:
		return lipgloss.Color(strconv.Itoa(int(c.Index))), true
	case panes.ColorRGB:
		return lipgloss.Color(c.String()), true
	}
	return "", false
}

func clamp(n int) uint16 {
	return uint16(max(0, min(n, 0xFFFF)))
}
