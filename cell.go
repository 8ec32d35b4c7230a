// Package panes is the layout-and-paint core of a terminal UI: a constraint
// solver that splits rectangles among children, and a cell buffer whose
// frame-to-frame diff drives minimal terminal redraws.
package panes

import "strings"

// Cell represents a single character cell on the terminal.
//
// Skip marks a placeholder: either the column(s) covered by the wide glyph
// to its left, or a position a caller wants left alone. Skip cells are never
// emitted by Buffer.Diff.
type Cell struct {
	Symbol         string
	FG             Color
	BG             Color
	UnderlineColor Color
	Modifier       Attribute
	Skip           bool
}

// EmptyCell returns a cell with a space and no styling.
func EmptyCell() Cell {
	return Cell{Symbol: " "}
}

// NewCell creates a cell with the given symbol, styled by patching style
// onto an empty cell.
func NewCell(symbol string, style Style) Cell {
	c := EmptyCell()
	c.Symbol = symbol
	c.SetStyle(style)
	return c
}

// Equal returns true if two cells are equal.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// SetSymbol replaces the symbol.
func (c *Cell) SetSymbol(symbol string) *Cell {
	c.Symbol = symbol
	return c
}

// SetRune replaces the symbol with a single rune.
func (c *Cell) SetRune(r rune) *Cell {
	c.Symbol = string(r)
	return c
}

// AppendSymbol adds a combining sequence to the existing symbol.
func (c *Cell) AppendSymbol(s string) *Cell {
	c.Symbol += s
	return c
}

// SetStyle patches the cell's colors and modifiers with s.
func (c *Cell) SetStyle(s Style) *Cell {
	if s.FG.IsSet() {
		c.FG = s.FG
	}
	if s.BG.IsSet() {
		c.BG = s.BG
	}
	if s.UnderlineColor.IsSet() {
		c.UnderlineColor = s.UnderlineColor
	}
	c.Modifier = c.Modifier.With(s.Add).Without(s.Sub)
	return c
}

// Style returns the cell's styling as a Style.
func (c Cell) Style() Style {
	return Style{
		FG:             c.FG,
		BG:             c.BG,
		UnderlineColor: c.UnderlineColor,
		Add:            c.Modifier,
		Sub:            ^c.Modifier,
	}
}

// Width returns the number of columns the symbol occupies.
func (c Cell) Width() int {
	return SymbolWidth(c.Symbol)
}

// IsBlank reports whether the cell would draw nothing visible.
func (c Cell) IsBlank() bool {
	return strings.TrimSpace(c.Symbol) == "" && !c.BG.IsSet() && c.Modifier == AttrNone
}

// Reset restores the empty cell.
func (c *Cell) Reset() {
	*c = EmptyCell()
}
