package panes

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Attribute represents text styling attributes that can be combined.
type Attribute uint16

const (
	AttrNone  Attribute = 0
	AttrBold  Attribute = 1 << (iota - 1)
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrHidden
	AttrStrikethrough
)

var attrNames = []struct {
	attr Attribute
	name string
}{
	{AttrBold, "bold"},
	{AttrDim, "dim"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrBlink, "blink"},
	{AttrInverse, "inverse"},
	{AttrHidden, "hidden"},
	{AttrStrikethrough, "strikethrough"},
}

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

func (a Attribute) String() string {
	if a == AttrNone {
		return "none"
	}
	var parts []string
	for _, an := range attrNames {
		if a.Has(an.attr) {
			parts = append(parts, an.name)
		}
	}
	return strings.Join(parts, "|")
}

// ColorMode represents the color mode for a color value.
type ColorMode uint8

const (
	ColorUnset ColorMode = iota // No color given: cells render with the terminal default, styles leave it alone
	ColorReset                  // Explicit terminal default
	Color16                     // Basic 16 colors (0-15)
	Color256                    // 256 color palette (0-255)
	ColorRGB                    // 24-bit true color
)

// Color represents a terminal color. The zero value is unset.
type Color struct {
	Mode    ColorMode
	R, G, B uint8 // For RGB mode
	Index   uint8 // For 16/256 mode
}

// ResetColor returns the terminal's default color.
func ResetColor() Color {
	return Color{Mode: ColorReset}
}

// BasicColor returns one of the 16 basic terminal colors.
func BasicColor(index uint8) Color {
	return Color{Mode: Color16, Index: index}
}

// PaletteColor returns one of the 256 palette colors.
func PaletteColor(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// Hex returns a 24-bit true color from a hex value (e.g., 0xFF5500).
func Hex(hex uint32) Color {
	return Color{
		Mode: ColorRGB,
		R:    uint8((hex >> 16) & 0xFF),
		G:    uint8((hex >> 8) & 0xFF),
		B:    uint8(hex & 0xFF),
	}
}

// Standard basic colors for convenience.
var (
	Black   = BasicColor(0)
	Red     = BasicColor(1)
	Green   = BasicColor(2)
	Yellow  = BasicColor(3)
	Blue    = BasicColor(4)
	Magenta = BasicColor(5)
	Cyan    = BasicColor(6)
	White   = BasicColor(7)

	// Bright variants
	BrightBlack   = BasicColor(8)
	BrightRed     = BasicColor(9)
	BrightGreen   = BasicColor(10)
	BrightYellow  = BasicColor(11)
	BrightBlue    = BasicColor(12)
	BrightMagenta = BasicColor(13)
	BrightCyan    = BasicColor(14)
	BrightWhite   = BasicColor(15)
)

var basicNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// ParseColor accepts a basic color name ("red", "bright-blue", "reset"), a
// palette index ("208") or a hex triplet ("#ff8800").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, nil
	}
	switch s {
	case "reset", "default":
		return ResetColor(), nil
	case "gray", "grey":
		return BrightBlack, nil
	}
	for i, name := range basicNames {
		if name == s {
			return BasicColor(uint8(i)), nil
		}
	}
	if strings.HasPrefix(s, "#") {
		hc, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := hc.RGB255()
		return RGB(r, g, b), nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: unknown color", s)
	}
	return PaletteColor(uint8(n)), nil
}

// IsSet reports whether the color carries a value.
func (c Color) IsSet() bool {
	return c.Mode != ColorUnset
}

// Equal returns true if two colors are equal.
func (c Color) Equal(other Color) bool {
	return c == other
}

func (c Color) String() string {
	switch c.Mode {
	case ColorReset:
		return "reset"
	case Color16:
		if int(c.Index) < len(basicNames) {
			return basicNames[c.Index]
		}
		return strconv.Itoa(int(c.Index))
	case Color256:
		return strconv.Itoa(int(c.Index))
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return "unset"
}

// Style is a patch of cell attributes. Unset colors and empty modifier sets
// leave the target cell unchanged; Add and Sub switch modifiers on and off.
type Style struct {
	FG             Color
	BG             Color
	UnderlineColor Color
	Add            Attribute
	Sub            Attribute
}

// DefaultStyle returns a style that changes nothing.
func DefaultStyle() Style {
	return Style{}
}

// ResetStyle returns a style that restores terminal defaults and clears
// every modifier.
func ResetStyle() Style {
	return Style{
		FG:             ResetColor(),
		BG:             ResetColor(),
		UnderlineColor: ResetColor(),
		Sub:            ^AttrNone,
	}
}

// Foreground returns a new style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a new style with the given background color.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Underlined returns a new style with underline enabled in the given color.
func (s Style) Underlined(c Color) Style {
	s.UnderlineColor = c
	return s.AddModifier(AttrUnderline)
}

// AddModifier returns a new style that switches attr on.
func (s Style) AddModifier(attr Attribute) Style {
	s.Add = s.Add.With(attr)
	s.Sub = s.Sub.Without(attr)
	return s
}

// RemoveModifier returns a new style that switches attr off.
func (s Style) RemoveModifier(attr Attribute) Style {
	s.Sub = s.Sub.With(attr)
	s.Add = s.Add.Without(attr)
	return s
}

// Bold returns a new style with bold enabled.
func (s Style) Bold() Style { return s.AddModifier(AttrBold) }

// Dim returns a new style with dim enabled.
func (s Style) Dim() Style { return s.AddModifier(AttrDim) }

// Italic returns a new style with italic enabled.
func (s Style) Italic() Style { return s.AddModifier(AttrItalic) }

// Underline returns a new style with underline enabled.
func (s Style) Underline() Style { return s.AddModifier(AttrUnderline) }

// Inverse returns a new style with inverse enabled.
func (s Style) Inverse() Style { return s.AddModifier(AttrInverse) }

// Strikethrough returns a new style with strikethrough enabled.
func (s Style) Strikethrough() Style { return s.AddModifier(AttrStrikethrough) }

// Patch layers other on top of s: set colors in other win, modifiers
// accumulate.
func (s Style) Patch(other Style) Style {
	if other.FG.IsSet() {
		s.FG = other.FG
	}
	if other.BG.IsSet() {
		s.BG = other.BG
	}
	if other.UnderlineColor.IsSet() {
		s.UnderlineColor = other.UnderlineColor
	}
	s.Add = s.Add.Without(other.Sub).With(other.Add)
	s.Sub = s.Sub.Without(other.Add).With(other.Sub)
	return s
}

// Equal returns true if two styles are equal.
func (s Style) Equal(other Style) bool {
	return s == other
}

func (s Style) String() string {
	var parts []string
	if s.FG.IsSet() {
		parts = append(parts, "fg="+s.FG.String())
	}
	if s.BG.IsSet() {
		parts = append(parts, "bg="+s.BG.String())
	}
	if s.UnderlineColor.IsSet() {
		parts = append(parts, "ul="+s.UnderlineColor.String())
	}
	if s.Add != AttrNone {
		parts = append(parts, "+"+s.Add.String())
	}
	if s.Sub != AttrNone {
		parts = append(parts, "-"+s.Sub.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
