package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kungfusheep/panes"
	"github.com/kungfusheep/panes/layoutfile"
	"github.com/kungfusheep/panes/term"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		backend  string
		interval time.Duration
		theme    panes.Theme
	)
	cmd := &cobra.Command{
		Use:   "watch <layout-file>",
		Short: "Show a layout file full screen, reloading it as it changes",
		Long: `Show a layout file on the alternate screen. The file is re-read every
interval and the layout re-solved when the terminal is resized. Any key quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWatcher(args[0], theme)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			switch backend {
			case "ansi":
				return w.runANSI(ctx, interval)
			case "tcell":
				return w.runTcell(ctx, interval)
			}
			return fmt.Errorf("unknown backend %q (ansi, tcell)", backend)
		},
	}
	cmd.Flags().StringVarP(&backend, "backend", "b", "ansi", "terminal backend (ansi, tcell)")
	cmd.Flags().DurationVarP(&interval, "interval", "i", 500*time.Millisecond, "reload interval")
	cmd.Flags().Var(newThemeValue(&theme), "theme", "decoration theme (plain, dark, light, mono)")
	return cmd
}

// watcher redraws a layout file, keeping the last good version on screen
// when a reload fails.
type watcher struct {
	path  string
	theme panes.Theme
	cache *panes.LayoutCache
	node  *layoutfile.Node
	err   error
}

var statusLayout = panes.Vertical(panes.Fill(1), panes.Length(1))

func newWatcher(path string, theme panes.Theme) (*watcher, error) {
	node, err := layoutfile.Load(path)
	if err != nil {
		return nil, err
	}
	cache, err := panes.NewLayoutCache(panes.DefaultLayoutCacheSize)
	if err != nil {
		return nil, err
	}
	return &watcher{path: path, theme: theme, cache: cache, node: node}, nil
}

func (w *watcher) draw(buf *panes.Buffer) {
	if node, err := layoutfile.Load(w.path); err != nil {
		w.err = err
	} else {
		w.node, w.err = node, nil
	}

	rows := w.cache.Split(statusLayout, buf.Area)
	body, status := rows[0], rows[1]
	if ps, err := w.node.ResolveWith(w.cache, body); err != nil {
		w.err = err
	} else if err := layoutfile.Draw(buf, ps, w.theme); err != nil {
		w.err = err
	}

	if status.IsEmpty() {
		return
	}
	line := panes.NewLine(panes.Styled(w.path, w.theme.Accent.Bold()), panes.Styled("  any key quits", w.theme.Muted))
	if w.err != nil {
		line = panes.NewLine(panes.Styled(w.err.Error(), w.theme.Error.Foreground(panes.Red)))
	}
	buf.SetStyle(status, panes.DefaultStyle().Inverse())
	if _, err := buf.SetLine(status.X, status.Y, line, int(status.Width)); err != nil {
		w.err = err
	}
}

func (w *watcher) runANSI(ctx context.Context, interval time.Duration) error {
	s := term.NewScreen(nil)
	if err := s.EnterRawMode(); err != nil {
		return err
	}
	defer s.ExitRawMode()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		var b [1]byte
		os.Stdin.Read(b[:])
		cancel()
	}()

	err := s.Run(ctx, interval, w.draw)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (w *watcher) runTcell(ctx context.Context, interval time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	sink := term.NewTcellSink(screen)

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	redraw := func() error {
		width, height := screen.Size()
		buf := panes.Empty(panes.NewRect(0, 0, uint16(max(width, 0)), uint16(max(height, 0))))
		w.draw(buf)
		return sink.Draw(buf)
	}
	if err := redraw(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev.(type) {
			case *tcell.EventKey:
				return nil
			case *tcell.EventResize:
				screen.Sync()
				if err := redraw(); err != nil {
					return err
				}
			}
		case <-ticker.C:
			if err := redraw(); err != nil {
				return err
			}
		}
	}
}
