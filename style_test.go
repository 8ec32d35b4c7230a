package panes

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"", Color{}},
		{"red", Red},
		{"Bright-Blue", BrightBlue},
		{"grey", BrightBlack},
		{"reset", ResetColor()},
		{"default", ResetColor()},
		{"#ff8800", RGB(255, 136, 0)},
		{"208", PaletteColor(208)},
		{" 7 ", PaletteColor(7)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"nope", "#zz", "300", "-1"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded", bad)
		}
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{}, "unset"},
		{ResetColor(), "reset"},
		{Red, "red"},
		{BrightCyan, "bright-cyan"},
		{PaletteColor(208), "208"},
		{Hex(0xFF5500), "#ff5500"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if Hex(0xFF5500) != RGB(255, 85, 0) {
		t.Error("Hex and RGB disagree")
	}
}

func TestAttribute(t *testing.T) {
	a := AttrBold.With(AttrItalic)
	if !a.Has(AttrBold) || !a.Has(AttrItalic) || a.Has(AttrDim) {
		t.Errorf("attributes = %s", a)
	}
	if a.String() != "bold|italic" {
		t.Errorf("String() = %q", a.String())
	}
	if a.Without(AttrBold) != AttrItalic {
		t.Errorf("Without = %s", a.Without(AttrBold))
	}
	if AttrNone.String() != "none" {
		t.Errorf("AttrNone = %q", AttrNone.String())
	}
}

func TestStylePatch(t *testing.T) {
	base := DefaultStyle().Foreground(Red).Bold()
	got := base.Patch(DefaultStyle().Background(Blue).RemoveModifier(AttrBold))

	want := Style{FG: Red, BG: Blue, Sub: AttrBold}
	if got != want {
		t.Errorf("Patch = %s, want %s", got, want)
	}

	// unset colors leave the base alone
	if got := base.Patch(Style{}); got != base {
		t.Errorf("empty patch changed style: %s", got)
	}
}

func TestStyleModifiersToggle(t *testing.T) {
	s := DefaultStyle().Bold().RemoveModifier(AttrBold)
	if s.Add.Has(AttrBold) || !s.Sub.Has(AttrBold) {
		t.Errorf("style = %s", s)
	}
	s = s.Bold()
	if !s.Add.Has(AttrBold) || s.Sub.Has(AttrBold) {
		t.Errorf("style = %s", s)
	}

	u := DefaultStyle().Underlined(Yellow)
	if u.UnderlineColor != Yellow || !u.Add.Has(AttrUnderline) {
		t.Errorf("Underlined = %s", u)
	}
}

func TestCellSetStyle(t *testing.T) {
	c := EmptyCell()
	c.SetStyle(DefaultStyle().Foreground(Red).Bold().Italic())
	c.SetStyle(DefaultStyle().Background(Blue).RemoveModifier(AttrBold))

	if c.FG != Red || c.BG != Blue {
		t.Errorf("colors = %s/%s", c.FG, c.BG)
	}
	if c.Modifier != AttrItalic {
		t.Errorf("modifier = %s, want italic", c.Modifier)
	}

	c.SetStyle(ResetStyle())
	if c.FG != ResetColor() || c.BG != ResetColor() || c.Modifier != AttrNone {
		t.Errorf("after reset: %+v", c)
	}

	// a cell's own style reapplied onto a blank cell reproduces it
	src := NewCell("x", DefaultStyle().Foreground(Green).Underline())
	dst := EmptyCell()
	dst.SetStyle(src.Style())
	dst.SetSymbol("x")
	if dst != src {
		t.Errorf("round trip = %+v, want %+v", dst, src)
	}
}

func TestCellReset(t *testing.T) {
	c := NewCell("称", DefaultStyle().Background(Red))
	c.Skip = true
	c.Reset()
	if c != EmptyCell() {
		t.Errorf("Reset = %+v", c)
	}
	if c.Width() != 1 {
		t.Errorf("blank width = %d", c.Width())
	}
}
