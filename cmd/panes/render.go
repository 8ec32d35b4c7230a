package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/kungfusheep/panes"
	"github.com/kungfusheep/panes/layoutfile"
	"github.com/kungfusheep/panes/teaview"
	"github.com/kungfusheep/panes/term"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	area   areaFlags
	format string
	panes  bool
	theme  panes.Theme
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render <layout-file>",
		Short: "Draw a layout file once",
		Long: `Draw a YAML, TOML or JSON layout file into a buffer and print it.

Formats: text (plain rows), ansi (cursor-addressed frame, as a terminal
would receive it) and lipgloss (styled rows for embedding).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}
	fs := cmd.Flags()
	opts.area.register(fs)
	fs.StringVarP(&opts.format, "format", "f", "text", "output format (text, ansi, lipgloss)")
	fs.BoolVar(&opts.panes, "panes", false, "list the resolved panes instead of drawing")
	fs.Var(newThemeValue(&opts.theme), "theme", "decoration theme (plain, dark, light, mono)")
	return cmd
}

func runRender(cmd *cobra.Command, path string, opts renderOptions) error {
	node, err := layoutfile.Load(path)
	if err != nil {
		return err
	}
	cache, err := panes.NewLayoutCache(panes.DefaultLayoutCacheSize)
	if err != nil {
		return err
	}
	buf, ps, err := drawLayout(node, cache, opts.area.area(), opts.theme)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.panes {
		for _, p := range ps {
			fmt.Fprintf(out, "%-24s %s\n", p.Path, p.Area)
		}
		return nil
	}
	return writeBuffer(out, buf, opts.format)
}

// drawLayout resolves node against area and draws it into a new buffer.
func drawLayout(node *layoutfile.Node, cache *panes.LayoutCache, area panes.Rect, theme panes.Theme) (*panes.Buffer, []layoutfile.Pane, error) {
	ps, err := node.ResolveWith(cache, area)
	if err != nil {
		return nil, nil, err
	}
	buf := panes.Empty(area)
	if err := layoutfile.Draw(buf, ps, theme); err != nil {
		return nil, nil, err
	}
	return buf, ps, nil
}

func writeBuffer(w io.Writer, buf *panes.Buffer, format string) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, buf.String())
		return err
	case "ansi":
		return term.Render(w, buf)
	case "lipgloss":
		r := teaview.NewRenderer(lipgloss.NewRenderer(w))
		_, err := fmt.Fprintln(w, r.Render(buf))
		return err
	}
	return fmt.Errorf("unknown format %q (text, ansi, lipgloss)", format)
}
