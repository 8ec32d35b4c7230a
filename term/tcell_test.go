package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kungfusheep/panes"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(20, 5)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTcellSinkDraw(t *testing.T) {
	screen := newSimScreen(t)
	sink := NewTcellSink(screen)

	b := panes.Empty(panes.NewRect(0, 0, 20, 5))
	b.SetString(1, 1, "hi", panes.DefaultStyle().Foreground(panes.Red).Bold())
	b.SetString(0, 2, "e\u0301", panes.DefaultStyle().Background(panes.RGB(10, 20, 30)))
	if err := sink.Draw(b); err != nil {
		t.Fatal(err)
	}

	mainc, _, style, _ := screen.GetContent(1, 1)
	if mainc != 'h' {
		t.Errorf("rune at (1,1) = %q", mainc)
	}
	fg, _, attrs := style.Decompose()
	if fg != tcell.PaletteColor(1) {
		t.Errorf("fg = %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold not set")
	}

	mainc, combc, style, _ := screen.GetContent(0, 2)
	if mainc != 'e' || len(combc) != 1 || combc[0] != '\u0301' {
		t.Errorf("cluster at (0,2) = %q %q", mainc, combc)
	}
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("bg = %v", bg)
	}
}

func TestTcellSinkIncremental(t *testing.T) {
	screen := newSimScreen(t)
	sink := NewTcellSink(screen)

	b := panes.Empty(panes.NewRect(0, 0, 20, 5))
	b.SetString(0, 0, "abc", panes.DefaultStyle())
	sink.Draw(b)

	// paint over the screen directly; an unchanged cell must not be resent
	screen.SetContent(0, 0, 'z', nil, tcell.StyleDefault)
	b.SetString(2, 0, "x", panes.DefaultStyle())
	if err := sink.Draw(b); err != nil {
		t.Fatal(err)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != 'z' {
		t.Errorf("unchanged cell was redrawn: %q", r)
	}
	if r, _, _, _ := screen.GetContent(2, 0); r != 'x' {
		t.Errorf("changed cell = %q", r)
	}
}

func TestTcellSinkAreaChange(t *testing.T) {
	screen := newSimScreen(t)
	sink := NewTcellSink(screen)

	b := panes.Empty(panes.NewRect(0, 0, 20, 5))
	b.SetString(0, 0, "long line", panes.DefaultStyle())
	sink.Draw(b)

	small := panes.Empty(panes.NewRect(0, 0, 4, 1))
	small.SetString(0, 0, "ab", panes.DefaultStyle())
	if err := sink.Draw(small); err != nil {
		t.Fatal(err)
	}
	if r, _, _, _ := screen.GetContent(5, 0); r != ' ' {
		t.Errorf("stale content after area change: %q", r)
	}
	if r, _, _, _ := screen.GetContent(1, 0); r != 'b' {
		t.Errorf("cell (1,0) = %q", r)
	}
}

func TestTcellColor(t *testing.T) {
	tests := []struct {
		in   panes.Color
		want tcell.Color
	}{
		{panes.Color{}, tcell.ColorDefault},
		{panes.ResetColor(), tcell.ColorDefault},
		{panes.Blue, tcell.PaletteColor(4)},
		{panes.PaletteColor(208), tcell.PaletteColor(208)},
		{panes.Hex(0xFF5500), tcell.NewRGBColor(0xFF, 0x55, 0)},
	}
	for _, tt := range tests {
		if got := tcellColor(tt.in); got != tt.want {
			t.Errorf("tcellColor(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
