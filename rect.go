package panes

import (
	"fmt"
	"iter"
	"math"
)

// Rect is a rectangular region of the character grid.
// All arithmetic saturates at 0 and math.MaxUint16 rather than wrapping.
type Rect struct {
	X, Y          uint16
	Width, Height uint16
}

// Position is a single cell coordinate.
type Position struct {
	X, Y uint16
}

// Size is a width/height pair.
type Size struct {
	Width, Height uint16
}

// Margin shrinks a Rect symmetrically: Horizontal from left and right,
// Vertical from top and bottom.
type Margin struct {
	Horizontal uint16
	Vertical   uint16
}

// Offset is a signed displacement used by Rect.Offset.
type Offset struct {
	X, Y int32
}

// NewRect returns a rect at (x, y) with the given size.
func NewRect(x, y, width, height uint16) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Area returns the number of cells covered by the rect.
func (r Rect) Area() uint32 {
	return uint32(r.Width) * uint32(r.Height)
}

// IsEmpty reports whether the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() uint16 { return r.X }

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() uint16 { return satAdd(r.X, r.Width) }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() uint16 { return r.Y }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() uint16 { return satAdd(r.Y, r.Height) }

// AsPosition returns the top-left corner.
func (r Rect) AsPosition() Position { return Position{X: r.X, Y: r.Y} }

// AsSize returns the rect dimensions.
func (r Rect) AsSize() Size { return Size{Width: r.Width, Height: r.Height} }

// Inner returns the rect shrunk by the margin on all four sides.
// A margin larger than half a dimension collapses that dimension to zero.
func (r Rect) Inner(m Margin) Rect {
	dw := 2 * uint32(m.Horizontal)
	dh := 2 * uint32(m.Vertical)
	if uint32(r.Width) < dw || uint32(r.Height) < dh {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{
		X:      satAdd(r.X, m.Horizontal),
		Y:      satAdd(r.Y, m.Vertical),
		Width:  r.Width - uint16(dw),
		Height: r.Height - uint16(dh),
	}
}

// Offset moves the rect, saturating each axis independently so the rect
// stays inside the coordinate space. The size is preserved.
func (r Rect) Offset(o Offset) Rect {
	maxX := int64(math.MaxUint16) - int64(r.Width)
	maxY := int64(math.MaxUint16) - int64(r.Height)
	r.X = uint16(clampInt64(int64(r.X)+int64(o.X), 0, maxX))
	r.Y = uint16(clampInt64(int64(r.Y)+int64(o.Y), 0, maxY))
	return r
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersection returns the overlapping part of r and other. When they do not
// overlap the result is a zero-size rect at the later of the two top-left
// corners, so callers can test IsEmpty instead of a sentinel.
func (r Rect) Intersection(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: satSub(x2, x1), Height: satSub(y2, y1)}
}

// Intersects reports whether r and other share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether other lies entirely inside r. An empty rect is
// contained when its origin lies within r's span (edges inclusive).
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// Clamp moves the rect so that it fits inside bounds, and only then shrinks
// whatever still does not fit.
func (r Rect) Clamp(bounds Rect) Rect {
	w := min(r.Width, bounds.Width)
	h := min(r.Height, bounds.Height)
	x := min(max(r.X, bounds.X), satSub(bounds.Right(), w))
	y := min(max(r.Y, bounds.Y), satSub(bounds.Bottom(), h))
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Rows yields one 1-cell-high rect per row, top to bottom.
func (r Rect) Rows() iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		for y := r.Y; y < r.Bottom(); y++ {
			if !yield(Rect{X: r.X, Y: y, Width: r.Width, Height: 1}) {
				return
			}
		}
	}
}

// Columns yields one 1-cell-wide rect per column, left to right.
func (r Rect) Columns() iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		for x := r.X; x < r.Right(); x++ {
			if !yield(Rect{X: x, Y: r.Y, Width: 1, Height: r.Height}) {
				return
			}
		}
	}
}

// Positions yields every cell position in row-major order.
func (r Rect) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if !yield(Position{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

func satAdd(a, b uint16) uint16 {
	s := uint32(a) + uint32(b)
	if s > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(s)
}

func satSub(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}

func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
