package panes

import "errors"

var (
	// ErrOutOfBounds is returned when a position or index lies outside a
	// buffer's area.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrAreaMismatch is returned when two buffers must share a shape (Diff)
	// or one must contain the other (Merge) and they don't.
	ErrAreaMismatch = errors.New("buffer area mismatch")

	// ErrNoBorderSymbols is returned when drawing a custom border without a
	// symbol set.
	ErrNoBorderSymbols = errors.New("custom border has no symbols")
)
