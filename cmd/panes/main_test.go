package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kungfusheep/panes"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSplit(t *testing.T) {
	out, err := execute(t, "split", "-W", "100", "-H", "1", "length:25", "fill:1")
	if err != nil {
		t.Fatal(err)
	}
	want := "0\tLength(25)       25x1+0+0\n" +
		"1\tFill(1)          75x1+25+0\n"
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}
}

func TestSplitFlags(t *testing.T) {
	out, err := execute(t, "split", "-W", "10", "-H", "1", "--flex", "center", "--spacers", "length:4")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"0\tLength(4)        4x1+3+0",
		"spacer 0\t3x1+0+0",
		"spacer 1\t3x1+7+0",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	out, err = execute(t, "split", "-d", "v", "-W", "5", "-H", "10", "--spacing", "-1", "fill:1", "fill:1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "5x5+0+5") {
		t.Errorf("vertical overlap output:\n%s", out)
	}
}

func TestSplitErrors(t *testing.T) {
	if _, err := execute(t, "split", "-W", "10", "-H", "1", "bogus"); err == nil {
		t.Error("accepted a bad constraint")
	}
	if _, err := execute(t, "split", "--flex", "sideways", "fill:1"); err == nil {
		t.Error("accepted a bad flex")
	}
}

func TestRender(t *testing.T) {
	path := writeFile(t, "layout.yaml", `
direction: horizontal
constraints: ["length:5", "fill:1"]
children: [{name: a, border: plain}, {name: b}]
`)
	out, err := execute(t, "render", path, "-W", "10", "-H", "3")
	if err != nil {
		t.Fatal(err)
	}
	want := "┌a──┐b    \n│   │     \n└───┘     \n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	out, err = execute(t, "render", path, "-W", "10", "-H", "3", "--panes")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "root/a") || !strings.Contains(out, "5x3+5+0") {
		t.Errorf("panes output:\n%s", out)
	}

	out, err = execute(t, "render", path, "-W", "10", "-H", "3", "-f", "ansi")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "\x1b[1;1H┌a──┐b") {
		t.Errorf("ansi output = %q", out)
	}

	out, err = execute(t, "render", path, "-W", "10", "-H", "3", "-f", "ansi", "--theme", "dark")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "\x1b[1;1H\x1b[0;90m┌") {
		t.Errorf("themed ansi output = %q", out)
	}

	if _, err := execute(t, "render", path, "--theme", "neon"); err == nil {
		t.Error("accepted an unknown theme")
	}
	if _, err := execute(t, "render", path, "-f", "sixel"); err == nil {
		t.Error("accepted an unknown format")
	}
}

func TestWatcherDraw(t *testing.T) {
	const good = `
direction: horizontal
constraints: ["length:5", "fill:1"]
children: [{name: a, border: plain}, {name: b}]
`
	path := writeFile(t, "layout.yaml", good)
	w, err := newWatcher(path, panes.ThemePlain)
	if err != nil {
		t.Fatal(err)
	}
	frame := func() []string {
		buf := panes.Empty(panes.NewRect(0, 0, 40, 4))
		w.draw(buf)
		return buf.Lines()
	}

	lines := frame()
	if w.err != nil {
		t.Fatalf("err = %v", w.err)
	}
	if !strings.HasPrefix(lines[0], "┌a──┐b") {
		t.Errorf("top row = %q", lines[0])
	}
	okStatus := lines[3]

	if err := os.WriteFile(path, []byte(`constraints: ["bogus:1"]`), 0o644); err != nil {
		t.Fatal(err)
	}
	lines = frame()
	if w.err == nil {
		t.Fatal("broken file did not set an error")
	}
	if !strings.HasPrefix(lines[0], "┌a──┐b") {
		t.Errorf("last good layout was not kept: %q", lines[0])
	}
	if lines[3] == okStatus {
		t.Errorf("status row does not show the error: %q", lines[3])
	}

	if err := os.WriteFile(path, []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	if lines = frame(); w.err != nil || lines[3] != okStatus {
		t.Errorf("after fix: err = %v, status = %q", w.err, lines[3])
	}
}

func TestDiff(t *testing.T) {
	before := writeFile(t, "before.txt", "hello\nworld\n")
	after := writeFile(t, "after.txt", "help\nworld!\n")

	out, err := execute(t, "diff", before, after)
	if err != nil {
		t.Fatal(err)
	}
	want := "3,0\t\"p\"\n4,0\t\" \"\n5,1\t\"!\"\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	out, err = execute(t, "diff", "--stats", before, after)
	if err != nil {
		t.Fatal(err)
	}
	if out != "3 of 12 cells changed\n" {
		t.Errorf("stats output = %q", out)
	}
}
