package panes

import (
	"fmt"
	"strings"
)

// BorderSet holds the symbols a border is drawn with.
type BorderSet struct {
	Horizontal  string
	Vertical    string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

// Box drawing sets.
var (
	PlainBorder = BorderSet{
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}
	RoundedBorder = BorderSet{
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
	DoubleBorder = BorderSet{
		Horizontal:  "═",
		Vertical:    "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
	}
	ThickBorder = BorderSet{
		Horizontal:  "━",
		Vertical:    "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}
)

// BorderType selects a predefined border set, or BorderCustom to supply one.
type BorderType uint8

const (
	BorderPlain BorderType = iota
	BorderRounded
	BorderDouble
	BorderThick
	BorderCustom
)

var borderTypeNames = [...]string{"plain", "rounded", "double", "thick", "custom"}

func (t BorderType) String() string {
	if int(t) < len(borderTypeNames) {
		return borderTypeNames[t]
	}
	return fmt.Sprintf("BorderType(%d)", t)
}

// ParseBorderType accepts the names printed by BorderType.String.
func ParseBorderType(s string) (BorderType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range borderTypeNames {
		if name == s {
			return BorderType(i), true
		}
	}
	return 0, false
}

// Border describes a box drawn around a rect.
type Border struct {
	Type   BorderType
	Custom *BorderSet // required when Type is BorderCustom
	Style  Style
	Title  string
}

// symbols resolves the set to draw with.
func (b Border) symbols() (BorderSet, error) {
	switch b.Type {
	case BorderPlain:
		return PlainBorder, nil
	case BorderRounded:
		return RoundedBorder, nil
	case BorderDouble:
		return DoubleBorder, nil
	case BorderThick:
		return ThickBorder, nil
	case BorderCustom:
		if b.Custom == nil {
			return BorderSet{}, ErrNoBorderSymbols
		}
		return *b.Custom, nil
	}
	return BorderSet{}, fmt.Errorf("unknown border type %d", b.Type)
}

// Inner returns the part of area left for content inside the border.
func (Border) Inner(area Rect) Rect {
	return area.Inner(Margin{Horizontal: 1, Vertical: 1})
}

// DrawBorder draws border around area, clipped to the buffer. Where a plain
// line meets a plain line already in the buffer the two are joined with the
// matching junction symbol, so adjacent panes share edges cleanly.
func (b *Buffer) DrawBorder(area Rect, border Border) error {
	set, err := border.symbols()
	if err != nil {
		return fmt.Errorf("draw border at %s: %w", area, err)
	}
	if area.Width < 2 || area.Height < 2 {
		return nil
	}
	right, bottom := area.Right()-1, area.Bottom()-1

	b.putBorder(area.X, area.Y, set.TopLeft, border.Style)
	b.putBorder(right, area.Y, set.TopRight, border.Style)
	b.putBorder(area.X, bottom, set.BottomLeft, border.Style)
	b.putBorder(right, bottom, set.BottomRight, border.Style)
	for x := area.X + 1; x < right; x++ {
		b.putBorder(x, area.Y, set.Horizontal, border.Style)
		b.putBorder(x, bottom, set.Horizontal, border.Style)
	}
	for y := area.Y + 1; y < bottom; y++ {
		b.putBorder(area.X, y, set.Vertical, border.Style)
		b.putBorder(right, y, set.Vertical, border.Style)
	}

	if border.Title != "" && area.Width > 2 {
		// a title whose first cell is off-buffer is clipped entirely
		_, _ = b.SetStringN(area.X+1, area.Y, border.Title, int(area.Width)-2, border.Style)
	}
	return nil
}

// putBorder writes a border symbol, joining it with any line symbol already
// there. Positions outside the buffer are ignored.
func (b *Buffer) putBorder(x, y uint16, symbol string, style Style) {
	i, err := b.Index(x, y)
	if err != nil {
		return
	}
	if merged, ok := mergeBorders(b.cells[i].Symbol, symbol); ok {
		symbol = merged
	}
	c := &b.cells[i]
	c.SetSymbol(symbol).SetStyle(style)
	c.Skip = false
}

// borderEdges maps line symbols to the edges they connect.
// Bits: 1=top, 2=right, 4=bottom, 8=left.
var borderEdges = map[string]uint8{
	"─": 0b1010,
	"│": 0b0101,
	"┌": 0b0110,
	"┐": 0b1100,
	"└": 0b0011,
	"┘": 0b1001,
	"┬": 0b1110,
	"┴": 0b1011,
	"├": 0b0111,
	"┤": 0b1101,
	"┼": 0b1111,
	// rounded corners connect like plain ones
	"╭": 0b0110,
	"╮": 0b1100,
	"╰": 0b0011,
	"╯": 0b1001,
}

var edgesToBorder = map[uint8]string{
	0b1010: "─",
	0b0101: "│",
	0b0110: "┌",
	0b1100: "┐",
	0b0011: "└",
	0b1001: "┘",
	0b1110: "┬",
	0b1011: "┴",
	0b0111: "├",
	0b1101: "┤",
	0b1111: "┼",
}

// mergeBorders combines two line symbols into one.
// Returns the merged symbol and true if both were line symbols.
func mergeBorders(existing, next string) (string, bool) {
	existingEdges, ok1 := borderEdges[existing]
	nextEdges, ok2 := borderEdges[next]
	if !ok1 || !ok2 {
		return next, false
	}
	if existingEdges|nextEdges == nextEdges {
		return next, false
	}
	if merged, ok := edgesToBorder[existingEdges|nextEdges]; ok {
		return merged, true
	}
	return next, false
}
