package panes

import "strings"

// Span is a run of text drawn with one style.
type Span struct {
	Content string
	Style   Style
}

// Raw creates an unstyled span.
func Raw(s string) Span {
	return Span{Content: s}
}

// Styled creates a span drawn with style.
func Styled(s string, style Style) Span {
	return Span{Content: s, Style: style}
}

// Width returns the number of columns the span occupies.
func (s Span) Width() int {
	return StringWidth(s.Content)
}

// Line is a single row of spans. Style is patched under every span's own
// style, so a line-level background shows through unstyled spans.
type Line struct {
	Spans []Span
	Style Style
}

// NewLine creates a line from spans.
func NewLine(spans ...Span) Line {
	return Line{Spans: spans}
}

// RawLine creates a line holding a single unstyled span.
func RawLine(s string) Line {
	return Line{Spans: []Span{Raw(s)}}
}

// WithStyle returns a copy of the line with its base style replaced.
func (l Line) WithStyle(style Style) Line {
	l.Style = style
	return l
}

// Width returns the number of columns the line occupies.
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += s.Width()
	}
	return w
}

// String returns the line's text without styling.
func (l Line) String() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Content)
	}
	return sb.String()
}
