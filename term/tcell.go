package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kungfusheep/panes"
)

// TcellSink presents buffers on a tcell screen, sending only changed cells.
type TcellSink struct {
	screen tcell.Screen
	front  *panes.Buffer
}

// NewTcellSink wraps an initialised tcell screen.
func NewTcellSink(screen tcell.Screen) *TcellSink {
	return &TcellSink{screen: screen, front: panes.Empty(panes.Rect{})}
}

// Draw applies the difference between the last drawn buffer and next, then
// shows the result. A change of area clears the screen first.
func (t *TcellSink) Draw(next *panes.Buffer) error {
	if t.front.Area != next.Area {
		t.screen.Clear()
		t.front = panes.Empty(next.Area)
	}
	updates, err := t.front.Diff(next)
	if err != nil {
		return fmt.Errorf("tcell draw: %w", err)
	}
	for _, u := range updates {
		runes := []rune(u.Cell.Symbol)
		if len(runes) == 0 {
			runes = []rune{' '}
		}
		t.screen.SetContent(int(u.X), int(u.Y), runes[0], runes[1:], tcellStyle(u.Cell))
	}
	if err := t.front.Merge(next); err != nil {
		return fmt.Errorf("tcell draw: %w", err)
	}
	t.screen.Show()
	return nil
}

// tcellStyle converts a cell's colors and modifiers. tcell has no hidden
// attribute, so hidden cells render normally.
func tcellStyle(c panes.Cell) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcellColor(c.FG)).
		Background(tcellColor(c.BG))
	m := c.Modifier
	if m.Has(panes.AttrBold) {
		st = st.Bold(true)
	}
	if m.Has(panes.AttrDim) {
		st = st.Dim(true)
	}
	if m.Has(panes.AttrItalic) {
		st = st.Italic(true)
	}
	if m.Has(panes.AttrUnderline) {
		st = st.Underline(true)
		if c.UnderlineColor.IsSet() {
			st = st.Underline(tcellColor(c.UnderlineColor))
		}
	}
	if m.Has(panes.AttrBlink) {
		st = st.Blink(true)
	}
	if m.Has(panes.AttrInverse) {
		st = st.Reverse(true)
	}
	if m.Has(panes.AttrStrikethrough) {
		st = st.StrikeThrough(true)
	}
	return st
}

func tcellColor(c panes.Color) tcell.Color {
	switch c.Mode {
	case panes.Color16, panes.Color256:
		return tcell.PaletteColor(int(c.Index))
	case panes.ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}
