package panes

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Buffer is a 2D grid of cells covering Area, stored row-major.
//
// Writes through Set always leave the written cell visible (Skip false).
// Buffers are owned by one render pass at a time and are not synchronized.
type Buffer struct {
	Area  Rect
	cells []Cell
}

// CellUpdate is one changed position reported by Diff.
type CellUpdate struct {
	X, Y uint16
	Cell Cell
}

// Empty creates a buffer of blank cells covering area.
func Empty(area Rect) *Buffer {
	return Filled(area, EmptyCell())
}

// Filled creates a buffer covering area with every cell set to c.
func Filled(area Rect, c Cell) *Buffer {
	cells := make([]Cell, int(area.Area()))
	for i := range cells {
		cells[i] = c
	}
	return &Buffer{Area: area, cells: cells}
}

// FromLines creates a buffer at the origin sized to fit lines: as wide as the
// widest line and one row per line.
func FromLines(lines ...Line) *Buffer {
	width := 0
	for _, l := range lines {
		width = max(width, l.Width())
	}
	b := Empty(NewRect(0, 0, clampU16(uint64(width)), clampU16(uint64(len(lines)))))
	if b.Area.IsEmpty() {
		return b
	}
	for y, l := range lines[:b.Area.Height] {
		// every row starts inside the area
		_, _ = b.SetLine(0, uint16(y), l, width)
	}
	return b
}

// FromStrings is FromLines for unstyled text.
func FromStrings(lines ...string) *Buffer {
	ls := make([]Line, len(lines))
	for i, s := range lines {
		ls[i] = RawLine(s)
	}
	return FromLines(ls...)
}

// Len returns the number of cells, which always equals Area.Area().
func (b *Buffer) Len() int {
	return len(b.cells)
}

// Index converts a position to an offset into the cell slice.
func (b *Buffer) Index(x, y uint16) (int, error) {
	if !b.Area.Contains(Position{X: x, Y: y}) {
		return 0, fmt.Errorf("%w: (%d, %d) outside %s", ErrOutOfBounds, x, y, b.Area)
	}
	return b.index(x, y), nil
}

// index assumes (x, y) is inside the area.
func (b *Buffer) index(x, y uint16) int {
	return (int(y)-int(b.Area.Y))*int(b.Area.Width) + int(x) - int(b.Area.X)
}

// PosOf converts an offset into the cell slice back to a position.
func (b *Buffer) PosOf(i int) (x, y uint16, err error) {
	if i < 0 || i >= len(b.cells) {
		return 0, 0, fmt.Errorf("%w: index %d outside %s (%d cells)", ErrOutOfBounds, i, b.Area, len(b.cells))
	}
	x, y = b.posOf(i)
	return x, y, nil
}

func (b *Buffer) posOf(i int) (x, y uint16) {
	w := int(b.Area.Width)
	return uint16(int(b.Area.X) + i%w), uint16(int(b.Area.Y) + i/w)
}

// Get returns the cell at (x, y).
func (b *Buffer) Get(x, y uint16) (Cell, error) {
	i, err := b.Index(x, y)
	if err != nil {
		return Cell{}, err
	}
	return b.cells[i], nil
}

// Set replaces the cell at (x, y). The stored cell is never a placeholder,
// whatever c.Skip says: a narrow write over the tail of a wide glyph must
// show up in the next diff.
func (b *Buffer) Set(x, y uint16, c Cell) error {
	i, err := b.Index(x, y)
	if err != nil {
		return err
	}
	c.Skip = false
	b.cells[i] = c
	return nil
}

// SetCell patches the cell at (x, y) with a new symbol and style, keeping any
// colors style leaves unset.
func (b *Buffer) SetCell(x, y uint16, symbol string, style Style) error {
	i, err := b.Index(x, y)
	if err != nil {
		return err
	}
	c := &b.cells[i]
	c.SetSymbol(symbol).SetStyle(style)
	c.Skip = false
	return nil
}

// mergeCell copies c verbatim, Skip included.
func (b *Buffer) mergeCell(i int, c Cell) {
	b.cells[i] = c
}

// Content returns a copy of the cells in row-major order.
func (b *Buffer) Content() []Cell {
	return slices.Clone(b.cells)
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{Area: b.Area, cells: slices.Clone(b.cells)}
}

// SetString writes s starting at (x, y), clipped at the right edge of the
// area. It returns the column after the last glyph written.
func (b *Buffer) SetString(x, y uint16, s string, style Style) (uint16, error) {
	return b.SetStringN(x, y, s, math.MaxInt, style)
}

// SetStringN writes at most maxWidth columns of s starting at (x, y).
//
// Each grapheme takes as many cells as its display width; the cells after the
// first are Skip placeholders. A glyph that would not fit entirely is not
// written. Control characters and zero-width clusters are dropped.
func (b *Buffer) SetStringN(x, y uint16, s string, maxWidth int, style Style) (uint16, error) {
	i, err := b.Index(x, y)
	if err != nil {
		return x, err
	}
	remaining := min(maxWidth, int(b.Area.Right())-int(x))
	col := int(x)
	for sym, w := range Graphemes(s) {
		if w > remaining {
			break
		}
		b.writeGlyph(i, sym, w, style)
		i += w
		col += w
		remaining -= w
	}
	return uint16(col), nil
}

// writeGlyph stores sym at i and its placeholders after it. The caller
// guarantees all w cells are on the same row.
func (b *Buffer) writeGlyph(i int, sym string, w int, style Style) {
	c := &b.cells[i]
	c.SetSymbol(sym).SetStyle(style)
	c.Skip = false
	for k := 1; k < w; k++ {
		tail := &b.cells[i+k]
		tail.SetSymbol(" ").SetStyle(style)
		tail.Skip = true
	}
	// placeholders left behind by a wider glyph we just overwrote
	rowEnd := i - (i % int(b.Area.Width)) + int(b.Area.Width)
	for j := i + w; j < rowEnd && b.cells[j].Skip; j++ {
		b.cells[j].Symbol = " "
		b.cells[j].Skip = false
	}
}

// SetSpan writes a span at (x, y), using at most maxWidth columns.
func (b *Buffer) SetSpan(x, y uint16, span Span, maxWidth int) (uint16, error) {
	return b.SetStringN(x, y, span.Content, maxWidth, span.Style)
}

// SetLine writes every span of line at (x, y), using at most maxWidth
// columns in total. Each span is drawn with the line style patched by the
// span's own style.
func (b *Buffer) SetLine(x, y uint16, line Line, maxWidth int) (uint16, error) {
	if _, err := b.Index(x, y); err != nil {
		return x, err
	}
	remaining := maxWidth
	for _, span := range line.Spans {
		if remaining <= 0 || x >= b.Area.Right() {
			break
		}
		end, err := b.SetStringN(x, y, span.Content, remaining, line.Style.Patch(span.Style))
		if err != nil {
			return x, err
		}
		remaining -= int(end - x)
		x = end
	}
	return x, nil
}

// SetStyle patches style onto every cell of area that lies inside the
// buffer. Symbols are left alone.
func (b *Buffer) SetStyle(area Rect, style Style) {
	area = b.Area.Intersection(area)
	for p := range area.Positions() {
		b.cells[b.index(p.X, p.Y)].SetStyle(style)
	}
}

// Fill sets every cell inside area to c.
func (b *Buffer) Fill(area Rect, c Cell) {
	c.Skip = false
	area = b.Area.Intersection(area)
	for p := range area.Positions() {
		b.cells[b.index(p.X, p.Y)] = c
	}
}

// Merge paints other onto b at the position given by other.Area. other must
// lie entirely inside b. Placeholder cells in other stay placeholders in b.
func (b *Buffer) Merge(other *Buffer) error {
	if !b.Area.ContainsRect(other.Area) {
		return fmt.Errorf("%w: cannot merge %s into %s", ErrAreaMismatch, other.Area, b.Area)
	}
	for i, c := range other.cells {
		x, y := other.posOf(i)
		b.mergeCell(b.index(x, y), c)
	}
	return nil
}

// Diff returns the updates that turn b into next, in row-major order.
//
// Placeholder cells in next are never reported, and neither are the cells
// covered by a wide glyph in next: the glyph's update carries them. After a
// wide glyph in either buffer, the cells it covered are re-emitted even when
// equal, since the terminal's copy of them is stale.
func (b *Buffer) Diff(next *Buffer) ([]CellUpdate, error) {
	if b.Area != next.Area {
		return nil, fmt.Errorf("%w: diff %s against %s", ErrAreaMismatch, b.Area, next.Area)
	}
	var updates []CellUpdate
	invalidated, toSkip := 0, 0
	for i, cur := range next.cells {
		prev := b.cells[i]
		if !cur.Skip && (cur != prev || invalidated > 0) && toSkip == 0 {
			x, y := next.posOf(i)
			updates = append(updates, CellUpdate{X: x, Y: y, Cell: cur})
		}
		cw, pw := cur.Width(), prev.Width()
		toSkip = max(toSkip-1, cw-1, 0)
		invalidated = max(max(cw, pw, invalidated)-1, 0)
	}
	return updates, nil
}

// Resize changes the buffer's area. Cells at positions inside both the old
// and the new area keep their content; the rest are blank.
func (b *Buffer) Resize(area Rect) {
	if area == b.Area {
		return
	}
	nb := Empty(area)
	for p := range b.Area.Intersection(area).Positions() {
		nb.cells[nb.index(p.X, p.Y)] = b.cells[b.index(p.X, p.Y)]
	}
	*b = *nb
}

// Reset blanks every cell.
func (b *Buffer) Reset() {
	empty := EmptyCell()
	for i := range b.cells {
		b.cells[i] = empty
	}
}

// Lines returns the visible text of each row. Placeholders are omitted so a
// wide glyph appears once.
func (b *Buffer) Lines() []string {
	if b.Area.IsEmpty() {
		return nil
	}
	w := int(b.Area.Width)
	lines := make([]string, 0, b.Area.Height)
	var sb strings.Builder
	for row := range slices.Chunk(b.cells, w) {
		sb.Reset()
		for _, c := range row {
			if !c.Skip {
				sb.WriteString(c.Symbol)
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// String returns the buffer's text, one row per line. Trailing spaces are
// preserved.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// StringTrimmed returns the buffer's text with trailing spaces and trailing
// empty rows removed.
func (b *Buffer) StringTrimmed() string {
	lines := b.Lines()
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Debug renders the buffer as text for test failures: the content rows, the
// positions of placeholder cells and each position where the style changes.
func (b *Buffer) Debug() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Buffer {\n    area: %s,\n    content: [\n", b.Area)
	for _, l := range b.Lines() {
		fmt.Fprintf(&sb, "        %q,\n", l)
	}
	sb.WriteString("    ],\n")

	var hidden []string
	for i, c := range b.cells {
		if c.Skip {
			x, y := b.posOf(i)
			hidden = append(hidden, fmt.Sprintf("(%d, %d)", x, y))
		}
	}
	if len(hidden) > 0 {
		fmt.Fprintf(&sb, "    hidden: [%s],\n", strings.Join(hidden, " "))
	}

	sb.WriteString("    styles: [\n")
	var last Style
	for i, c := range b.cells {
		st := cellStyle(c)
		if i == 0 || st != last {
			x, y := b.posOf(i)
			fmt.Fprintf(&sb, "        (%d, %d) %s,\n", x, y, st)
			last = st
		}
	}
	sb.WriteString("    ]\n}")
	return sb.String()
}

// cellStyle is the style a cell is drawn with, as an additive patch.
func cellStyle(c Cell) Style {
	return Style{FG: c.FG, BG: c.BG, UnderlineColor: c.UnderlineColor, Add: c.Modifier}
}
