package teaview

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kungfusheep/panes"
	"github.com/muesli/termenv"
)

func newRenderer(p termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(p)
	return NewRenderer(lg)
}

func sampleBuffer() *panes.Buffer {
	b := panes.Empty(panes.NewRect(0, 0, 8, 2))
	b.SetString(0, 0, "ok", panes.DefaultStyle().Foreground(panes.Green).Bold())
	b.SetString(3, 0, "称号", panes.DefaultStyle().Background(panes.RGB(0, 0, 255)))
	b.SetString(0, 1, "plain", panes.DefaultStyle())
	return b
}

func TestRenderPlainProfile(t *testing.T) {
	b := sampleBuffer()
	got := newRenderer(termenv.Ascii).Render(b)
	if want := b.String(); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderKeepsText(t *testing.T) {
	b := sampleBuffer()
	got := newRenderer(termenv.TrueColor).Render(b)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("no styling in %q", got)
	}
	if stripped := ansi.Strip(got); stripped != b.String() {
		t.Errorf("stripped = %q, want %q", stripped, b.String())
	}
	for i, line := range strings.Split(got, "\n") {
		if w := ansi.StringWidth(line); w != 8 {
			t.Errorf("row %d width = %d", i, w)
		}
	}
}

func TestRenderRuns(t *testing.T) {
	r := newRenderer(termenv.ANSI256)
	tests := []struct {
		name string
		draw func(b *panes.Buffer)
		want string
	}{
		{"bold run", func(b *panes.Buffer) {
			b.SetString(0, 0, "hi", panes.DefaultStyle().Bold())
		}, "\x1b[1mhi\x1b[0m"},
		{"colored then plain", func(b *panes.Buffer) {
			b.SetString(0, 0, "x", panes.DefaultStyle().Foreground(panes.Red))
			b.SetString(1, 0, "y", panes.DefaultStyle())
		}, "\x1b[31mx\x1b[0my"},
		{"reset color is unstyled", func(b *panes.Buffer) {
			b.SetString(0, 0, "ab", panes.DefaultStyle().Foreground(panes.ResetColor()))
		}, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := panes.Empty(panes.NewRect(0, 0, 2, 1))
			tt.draw(b)
			if got := r.Render(b); got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderHidden(t *testing.T) {
	b := panes.Empty(panes.NewRect(0, 0, 4, 1))
	b.SetString(0, 0, "pw称", panes.DefaultStyle().AddModifier(panes.AttrHidden))
	got := newRenderer(termenv.Ascii).Render(b)
	if got != "    " {
		t.Errorf("Render = %q", got)
	}
}

func TestDraw(t *testing.T) {
	r := newRenderer(termenv.Ascii)
	got := r.Draw(6, 3, func(buf *panes.Buffer) {
		if buf.Area != panes.NewRect(0, 0, 6, 3) {
			t.Errorf("area = %s", buf.Area)
		}
		buf.DrawBorder(buf.Area, panes.Border{})
	})
	want := "┌────┐\n│    │\n└────┘"
	if got != want {
		t.Errorf("Draw = %q, want %q", got, want)
	}

	if got := r.Draw(-1, 5, func(*panes.Buffer) {}); got != "" {
		t.Errorf("Draw of empty area = %q", got)
	}
}
