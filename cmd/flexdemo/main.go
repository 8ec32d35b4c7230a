// Command flexdemo shows how each flex policy distributes leftover space.
//
// Keys: f/tab cycles the flex policy, c cycles constraint sets, +/- change
// the spacing (negative overlaps), q quits.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kungfusheep/panes"
	"github.com/kungfusheep/panes/teaview"
)

var flexes = []panes.Flex{
	panes.FlexLegacy,
	panes.FlexStart,
	panes.FlexEnd,
	panes.FlexCenter,
	panes.FlexSpaceBetween,
	panes.FlexSpaceAround,
}

var presets = [][]panes.Constraint{
	{panes.Length(12), panes.Length(20), panes.Length(12)},
	{panes.Percentage(20), panes.Min(10), panes.Max(15)},
	{panes.Fill(1), panes.Fill(2), panes.Length(10)},
	{panes.Ratio(1, 4), panes.Ratio(1, 3), panes.Length(8)},
}

type model struct {
	width, height int
	flex          int
	preset        int
	spacing       int

	cache    *panes.LayoutCache
	renderer *teaview.Renderer
}

func newModel() (*model, error) {
	cache, err := panes.NewLayoutCache(panes.DefaultLayoutCacheSize)
	if err != nil {
		return nil, err
	}
	return &model{width: 80, height: 24, cache: cache, renderer: teaview.NewRenderer(nil)}, nil
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "f", "tab":
			m.flex = (m.flex + 1) % len(flexes)
		case "shift+tab":
			m.flex = (m.flex + len(flexes) - 1) % len(flexes)
		case "c":
			m.preset = (m.preset + 1) % len(presets)
		case "+", "=":
			m.spacing = min(m.spacing+1, 8)
		case "-":
			m.spacing = max(m.spacing-1, -2)
		}
	}
	return m, nil
}

func (m *model) layout() panes.Layout {
	return panes.Horizontal(presets[m.preset]...).
		WithFlex(flexes[m.flex]).
		WithSpacing(panes.SpacingOf(m.spacing))
}

func (m *model) View() string {
	return m.renderer.Draw(m.width, m.height, m.draw)
}

func (m *model) draw(buf *panes.Buffer) {
	rows := m.cache.Split(panes.Vertical(panes.Length(1), panes.Fill(1), panes.Length(1)), buf.Area)
	header, body, footer := rows[0], rows[1], rows[2]

	l := m.layout()
	title := panes.NewLine(
		panes.Styled(" flex ", panes.DefaultStyle().Inverse()),
		panes.Styled(" "+flexes[m.flex].String(), panes.DefaultStyle().Bold().Foreground(panes.Cyan)),
		panes.Raw(fmt.Sprintf("  spacing %d  constraints %s", m.spacing, constraintList(l.Constraints))),
	)
	buf.SetLine(header.X, header.Y, title, int(header.Width))

	segments, spacers := m.cache.SplitWithSpacers(l, body)
	dots := panes.NewCell("·", panes.DefaultStyle().Foreground(panes.BrightBlack))
	for _, sp := range spacers {
		buf.Fill(sp, dots)
	}
	for i, seg := range segments {
		border := panes.Border{
			Type:  panes.BorderRounded,
			Title: l.Constraints[i].String(),
			Style: panes.DefaultStyle().Foreground(panes.BasicColor(uint8(2 + i%5))),
		}
		buf.DrawBorder(seg, border)
		inner := border.Inner(seg)
		buf.SetStringN(inner.X, inner.Y, fmt.Sprintf("w=%d", seg.Width), int(inner.Width), panes.DefaultStyle().Dim())
	}

	help := "f/tab flex  c constraints  +/- spacing  q quit"
	buf.SetStringN(footer.X, footer.Y, help, int(footer.Width), panes.DefaultStyle().Foreground(panes.BrightBlack))
}

func constraintList(cs []panes.Constraint) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func main() {
	m, err := newModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
