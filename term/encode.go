package term

import (
	"bytes"
	"strconv"

	"github.com/kungfusheep/panes"
)

// pen is the drawing state an SGR sequence establishes. Unset and reset
// colors both mean the terminal default, so they are folded together.
type pen struct {
	fg, bg, ul panes.Color
	mod        panes.Attribute
}

func penOf(c panes.Cell) pen {
	return pen{fg: normal(c.FG), bg: normal(c.BG), ul: normal(c.UnderlineColor), mod: c.Modifier}
}

func normal(c panes.Color) panes.Color {
	if c.Mode == panes.ColorReset {
		return panes.Color{}
	}
	return c
}

// encoder accumulates escape sequences and glyphs, emitting a style change
// only when the pen differs from the last one written.
type encoder struct {
	buf bytes.Buffer
	pen pen
}

func (e *encoder) reset() {
	e.buf.Reset()
	e.pen = pen{}
}

// moveTo positions the cursor; x and y are 0-indexed.
func (e *encoder) moveTo(x, y int) {
	b := e.buf.AvailableBuffer()
	b = append(b, "\x1b["...)
	b = strconv.AppendInt(b, int64(y+1), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(x+1), 10)
	b = append(b, 'H')
	e.buf.Write(b)
}

func (e *encoder) cell(c panes.Cell) {
	if p := penOf(c); p != e.pen {
		e.style(p)
		e.pen = p
	}
	e.buf.WriteString(c.Symbol)
}

var attrCodes = []struct {
	attr panes.Attribute
	code string
}{
	{panes.AttrBold, ";1"},
	{panes.AttrDim, ";2"},
	{panes.AttrItalic, ";3"},
	{panes.AttrUnderline, ";4"},
	{panes.AttrBlink, ";5"},
	{panes.AttrInverse, ";7"},
	{panes.AttrHidden, ";8"},
	{panes.AttrStrikethrough, ";9"},
}

// style writes a full SGR sequence for p. It always starts from a reset so
// attributes turned off since the last cell don't linger.
func (e *encoder) style(p pen) {
	e.buf.WriteString("\x1b[0")
	for _, ac := range attrCodes {
		if p.mod.Has(ac.attr) {
			e.buf.WriteString(ac.code)
		}
	}
	e.color(p.fg, 30, "38")
	e.color(p.bg, 40, "48")
	e.color(p.ul, -1, "58")
	e.buf.WriteByte('m')
}

// color writes one color parameter. base is the SGR code of basic color 0,
// or -1 when only the extended form exists.
func (e *encoder) color(c panes.Color, base int, ext string) {
	b := e.buf.AvailableBuffer()
	switch c.Mode {
	case panes.Color16:
		if base < 0 {
			b = append(b, ';')
			b = append(b, ext...)
			b = append(b, ";5;"...)
			b = strconv.AppendInt(b, int64(c.Index), 10)
			break
		}
		code := base + int(c.Index)
		if c.Index >= 8 {
			// bright colors
			code = base + 60 + int(c.Index-8)
		}
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(code), 10)
	case panes.Color256:
		b = append(b, ';')
		b = append(b, ext...)
		b = append(b, ";5;"...)
		b = strconv.AppendInt(b, int64(c.Index), 10)
	case panes.ColorRGB:
		b = append(b, ';')
		b = append(b, ext...)
		b = append(b, ";2;"...)
		b = strconv.AppendInt(b, int64(c.R), 10)
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(c.G), 10)
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(c.B), 10)
	}
	e.buf.Write(b)
}
