// Package term writes panes buffers to a terminal, either directly as ANSI
// escape sequences or through a tcell screen.
package term

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/kungfusheep/panes"
	xterm "golang.org/x/term"
)

// Screen manages the terminal display with double buffering and diff-based updates.
type Screen struct {
	front  *panes.Buffer // What's currently displayed
	back   *panes.Buffer // What we're drawing to
	writer io.Writer
	fd     int

	origState *xterm.State
	inRawMode bool

	resizeChan chan panes.Size
	stopResize func()

	enc   encoder
	stats FlushStats

	// protects the buffers during resize
	mu sync.Mutex
}

// FlushStats describes the most recent flush.
type FlushStats struct {
	Updates     int // cells written
	CursorMoves int
	Bytes       int
}

// debugFlush enables flush tracing via PANES_DEBUG_FLUSH.
var debugFlush = os.Getenv("PANES_DEBUG_FLUSH") != ""

// NewScreen creates a screen sized to the terminal on stdout, falling back
// to 80x24 when stdout is not a terminal. Pass nil to write to os.Stdout.
func NewScreen(w io.Writer) *Screen {
	fd := int(os.Stdout.Fd())
	width, height, err := xterm.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		width, height = 80, 24
	}
	s := NewScreenSize(w, uint16(min(width, 0xFFFF)), uint16(min(height, 0xFFFF)))
	s.fd = fd
	return s
}

// NewScreenSize creates a screen of a fixed size. It never queries the
// terminal, which makes it suitable for writing to files and tests.
func NewScreenSize(w io.Writer, width, height uint16) *Screen {
	if w == nil {
		w = os.Stdout
	}
	area := panes.NewRect(0, 0, width, height)
	return &Screen{
		front:      panes.Empty(area),
		back:       panes.Empty(area),
		writer:     w,
		fd:         -1,
		resizeChan: make(chan panes.Size, 1),
	}
}

// Area returns the drawable area.
func (s *Screen) Area() panes.Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.back.Area
}

// Buffer returns the back buffer for drawing. Once EnterRawMode has started
// watching for resizes the buffer may be resized underneath the caller; draw
// through Draw or Run instead.
func (s *Screen) Buffer() *panes.Buffer {
	return s.back
}

// Draw calls fn with the back buffer while holding the screen lock, so a
// concurrent resize cannot swap the buffer mid-frame. fn must not call back
// into the Screen.
func (s *Screen) Draw(fn func(buf *panes.Buffer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.back)
}

// ResizeChan returns a channel that receives size updates on terminal resize.
func (s *Screen) ResizeChan() <-chan panes.Size {
	return s.resizeChan
}

// Stats returns statistics for the last flush.
func (s *Screen) Stats() FlushStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// EnterRawMode puts the terminal into raw mode on the alternate screen.
func (s *Screen) EnterRawMode() error {
	if s.inRawMode {
		return nil
	}
	if s.fd < 0 || !xterm.IsTerminal(s.fd) {
		return fmt.Errorf("enter raw mode: fd %d is not a terminal", s.fd)
	}
	state, err := xterm.MakeRaw(s.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	s.origState = state
	s.inRawMode = true
	s.stopResize = notifyResize(s.handleResize)

	s.writeString("\x1b[?1049h" + // alternate screen
		"\x1b[2J" + // clear so the front buffer matches
		"\x1b[H" +
		"\x1b[?25l" +
		"\x1b[?2004h") // bracketed paste
	return nil
}

// ExitRawMode restores the terminal to its original state.
func (s *Screen) ExitRawMode() error {
	if !s.inRawMode {
		return nil
	}
	s.writeString("\x1b[0m\x1b[?2004l\x1b[?25h\x1b[?1049l")

	if s.stopResize != nil {
		s.stopResize()
		s.stopResize = nil
	}
	s.inRawMode = false
	if s.origState != nil {
		if err := xterm.Restore(s.fd, s.origState); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
	}
	return nil
}

// handleResize runs for each SIGWINCH.
func (s *Screen) handleResize() {
	width, height, err := xterm.GetSize(s.fd)
	if err != nil {
		return
	}
	size := panes.Size{Width: uint16(min(width, 0xFFFF)), Height: uint16(min(height, 0xFFFF))}
	if !s.Resize(size.Width, size.Height) {
		return
	}
	// non-blocking; a pending notification already carries the news
	select {
	case s.resizeChan <- size:
	default:
	}
}

// Resize changes the screen size, blanking both buffers and the terminal.
// It reports whether the size changed.
func (s *Screen) Resize(width, height uint16) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	area := panes.NewRect(0, 0, width, height)
	if area == s.back.Area {
		return false
	}
	s.front.Resize(area)
	s.back.Resize(area)
	s.front.Reset()
	s.back.Reset()
	s.writeString("\x1b[2J")
	return true
}

// Flush writes the cells that differ between the displayed frame and the
// back buffer, then records the back buffer as displayed.
func (s *Screen) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flush()
}

func (s *Screen) flush() error {
	updates, err := s.front.Diff(s.back)
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	s.enc.reset()
	cursorX, cursorY := -1, -1
	moves := 0
	for _, u := range updates {
		x, y := int(u.X), int(u.Y)
		if x != cursorX || y != cursorY {
			if debugFlush && moves < 50 {
				fmt.Fprintf(os.Stderr, "Flush: pos(%d,%d) cursor was (%d,%d) writing %q width=%d\n",
					x, y, cursorX, cursorY, u.Cell.Symbol, u.Cell.Width())
			}
			s.enc.moveTo(x, y)
			moves++
		}
		s.enc.cell(u.Cell)
		// zero-width symbols still advance the cursor in most terminals
		cursorX, cursorY = x+max(u.Cell.Width(), 1), y
	}
	if len(updates) > 0 {
		s.enc.buf.WriteString("\x1b[0m")
		s.enc.pen = pen{}
	}

	if debugFlush {
		fmt.Fprintf(os.Stderr, "Flush: %d updates, %d cursor positions, buf size %d\n",
			len(updates), moves, s.enc.buf.Len())
	}
	s.stats = FlushStats{Updates: len(updates), CursorMoves: moves, Bytes: s.enc.buf.Len()}

	if err := s.front.Merge(s.back); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if s.enc.buf.Len() == 0 {
		return nil
	}
	if _, err := s.writer.Write(s.enc.buf.Bytes()); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// FlushFull clears the terminal and redraws every cell of the back buffer.
func (s *Screen) FlushFull() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.writer, "\x1b[2J"); err != nil {
		return fmt.Errorf("flush full: %w", err)
	}
	// a cleared terminal shows blank cells, so diffing against a blank
	// front buffer repaints everything else
	s.front.Reset()
	return s.flush()
}

// Run draws frames until ctx is cancelled. Each frame the callback receives
// the back buffer, blanked; the result is flushed. Frames are drawn once at
// start, every interval, and after each resize.
func (s *Screen) Run(ctx context.Context, interval time.Duration, frame func(buf *panes.Buffer)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	draw := func(full bool) error {
		s.Draw(func(buf *panes.Buffer) {
			buf.Reset()
			frame(buf)
		})
		if full {
			return s.FlushFull()
		}
		return s.Flush()
	}

	if err := draw(false); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.resizeChan:
			if err := draw(true); err != nil {
				return err
			}
		case <-ticker.C:
			if err := draw(false); err != nil {
				return err
			}
		}
	}
}

// Render writes b as a complete frame: every row is positioned explicitly
// and styles are reset at the end. Placeholder cells are skipped.
func Render(w io.Writer, b *panes.Buffer) error {
	var enc encoder
	prevY := -1
	for i, c := range b.Content() {
		x, y, err := b.PosOf(i)
		if err != nil {
			return err
		}
		if int(y) != prevY {
			enc.moveTo(int(x), int(y))
			prevY = int(y)
		}
		if c.Skip {
			continue
		}
		enc.cell(c)
	}
	enc.buf.WriteString("\x1b[0m")
	_, err := w.Write(enc.buf.Bytes())
	return err
}

// writeString writes directly to the terminal. Errors are dropped, as
// there is nowhere useful to report them mid-frame.
func (s *Screen) writeString(str string) {
	io.WriteString(s.writer, str)
}

// ShowCursor makes the cursor visible.
func (s *Screen) ShowCursor() {
	s.writeString("\x1b[?25h")
}

// HideCursor hides the cursor.
func (s *Screen) HideCursor() {
	s.writeString("\x1b[?25l")
}

// MoveCursor moves the cursor to the given position (0-indexed).
func (s *Screen) MoveCursor(x, y int) {
	s.writeString(fmt.Sprintf("\x1b[%d;%dH", y+1, x+1))
}

// CursorShape represents the terminal cursor shape.
type CursorShape int

const (
	CursorDefault        CursorShape = 0
	CursorBlockBlink     CursorShape = 1
	CursorBlock          CursorShape = 2
	CursorUnderlineBlink CursorShape = 3
	CursorUnderline      CursorShape = 4
	CursorBarBlink       CursorShape = 5
	CursorBar            CursorShape = 6
)

// SetCursorShape changes the cursor shape.
func (s *Screen) SetCursorShape(shape CursorShape) {
	s.writeString(fmt.Sprintf("\x1b[%d q", shape))
}
