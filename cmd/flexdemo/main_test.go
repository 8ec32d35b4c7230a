package main

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kungfusheep/panes"
	"github.com/kungfusheep/panes/teaview"
	"github.com/muesli/termenv"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	m, err := newModel()
	if err != nil {
		t.Fatal(err)
	}
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(termenv.Ascii)
	m.renderer = teaview.NewRenderer(lg)
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	if m.width != 60 || m.height != 10 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}

	m.Update(key("f"))
	if got := m.layout().Flex; got != panes.FlexStart {
		t.Errorf("flex after f = %v", got)
	}
	for range len(flexes) {
		m.Update(key("f"))
	}
	if got := m.layout().Flex; got != panes.FlexStart {
		t.Errorf("flex did not wrap: %v", got)
	}

	for range 5 {
		m.Update(key("-"))
	}
	if m.spacing != -2 {
		t.Errorf("spacing = %d, want clamp at -2", m.spacing)
	}

	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Error("q did not quit")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 8})
	m.Update(key("f")) // start

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "start") {
		t.Errorf("header = %q", lines[0])
	}
	// three 12/20/12 panes packed at the start, leftover as spacer dots
	if !strings.HasPrefix(lines[1], "╭Length(12)╮") || !strings.HasSuffix(lines[1], "·") {
		t.Errorf("first body row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[7], "f/tab flex") {
		t.Errorf("footer = %q", lines[7])
	}
}
