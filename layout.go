package panes

import "math"

// Layout splits a Rect into segments along one axis. It is an immutable
// configuration value; the With* methods return modified copies.
//
//	rows := panes.Vertical(panes.Length(1), panes.Fill(1), panes.Length(1)).Split(area)
//	header, body, footer := rows[0], rows[1], rows[2]
type Layout struct {
	Direction   Direction
	Constraints []Constraint
	Margin      Margin
	Flex        Flex
	Spacing     Spacing
}

// Horizontal returns a layout that splits left to right.
func Horizontal(cs ...Constraint) Layout {
	return Layout{Direction: DirHorizontal, Constraints: cs}
}

// Vertical returns a layout that splits top to bottom.
func Vertical(cs ...Constraint) Layout {
	return Layout{Direction: DirVertical, Constraints: cs}
}

// WithConstraints returns a copy using cs.
func (l Layout) WithConstraints(cs ...Constraint) Layout {
	l.Constraints = cs
	return l
}

// WithMargin returns a copy with the same margin on every side.
func (l Layout) WithMargin(m uint16) Layout {
	l.Margin = Margin{Horizontal: m, Vertical: m}
	return l
}

// WithMarginHV returns a copy with separate horizontal and vertical margins.
func (l Layout) WithMarginHV(h, v uint16) Layout {
	l.Margin = Margin{Horizontal: h, Vertical: v}
	return l
}

// WithFlex returns a copy using flex.
func (l Layout) WithFlex(f Flex) Layout {
	l.Flex = f
	return l
}

// WithSpacing returns a copy using spacing.
func (l Layout) WithSpacing(s Spacing) Layout {
	l.Spacing = s
	return l
}

// Split returns one rect per constraint, in constraint order.
func (l Layout) Split(area Rect) []Rect {
	segments, _ := l.SplitWithSpacers(area)
	return segments
}

// SplitWithSpacers returns the segments plus len(Constraints)+1 spacers: the
// gap before the first segment, between each pair, and after the last.
// Spacers for overlapping neighbours have zero size. An empty constraint
// list yields no segments and a single spacer covering the area.
func (l Layout) SplitWithSpacers(area Rect) (segments, spacers []Rect) {
	inner := area.Inner(l.Margin)
	n := len(l.Constraints)
	segments = make([]Rect, n)
	spacers = make([]Rect, n+1)

	if inner.IsEmpty() {
		origin := Rect{X: inner.X, Y: inner.Y}
		for i := range segments {
			segments[i] = origin
		}
		for i := range spacers {
			spacers[i] = origin
		}
		return segments, spacers
	}

	start, length := inner.X, inner.Width
	if l.Direction == DirVertical {
		start, length = inner.Y, inner.Height
	}
	a := solve(l.Constraints, length, l.Flex, l.Spacing)

	lo := int64(start)
	hi := min(lo+int64(length), math.MaxUint16)
	span := func(from, size int64) Rect {
		s := clampInt64(from, lo, hi)
		e := clampInt64(from+size, lo, hi)
		if l.Direction == DirVertical {
			return Rect{X: inner.X, Y: uint16(s), Width: inner.Width, Height: uint16(e - s)}
		}
		return Rect{X: uint16(s), Y: inner.Y, Width: uint16(e - s), Height: inner.Height}
	}

	pos := lo
	prevEnd := lo
	for i := 0; i <= n; i++ {
		gap := a.spacers[i]
		if gap >= 0 {
			spacers[i] = span(prevEnd, gap)
		} else {
			spacers[i] = span(prevEnd+gap, 0)
		}
		if i == n {
			break
		}
		// starts never move backwards, even when an overlap exceeds the
		// previous segment
		pos = max(pos, prevEnd+gap)
		segments[i] = span(pos, a.sizes[i])
		prevEnd = pos + a.sizes[i]
	}
	return segments, spacers
}
