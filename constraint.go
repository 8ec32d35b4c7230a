package panes

import (
	"math"
	"strconv"
)

// ConstraintKind identifies a Constraint variant.
type ConstraintKind uint8

const (
	KindLength ConstraintKind = iota
	KindMin
	KindMax
	KindPercentage
	KindRatio
	KindFill
)

var kindNames = [...]string{
	KindLength:     "Length",
	KindMin:        "Min",
	KindMax:        "Max",
	KindPercentage: "Percentage",
	KindRatio:      "Ratio",
	KindFill:       "Fill",
}

func (k ConstraintKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "ConstraintKind(" + strconv.Itoa(int(k)) + ")"
}

// Constraint sizes one segment of a Layout. It is a comparable value, so two
// constraints built from the same constructor and operands are ==.
type Constraint struct {
	Kind ConstraintKind
	A, B uint32
}

// Length asks for exactly n cells.
func Length(n uint16) Constraint { return Constraint{Kind: KindLength, A: uint32(n)} }

// Min asks for at least n cells.
func Min(n uint16) Constraint { return Constraint{Kind: KindMin, A: uint32(n)} }

// Max asks for at most n cells.
func Max(n uint16) Constraint { return Constraint{Kind: KindMax, A: uint32(n)} }

// Percentage asks for p percent of the available length. Values above 100
// are accepted and saturate at the available length.
func Percentage(p uint16) Constraint { return Constraint{Kind: KindPercentage, A: uint32(p)} }

// Ratio asks for num/den of the available length. A zero denominator asks
// for nothing.
func Ratio(num, den uint32) Constraint { return Constraint{Kind: KindRatio, A: num, B: den} }

// Fill takes a share of the leftover space proportional to weight.
func Fill(weight uint16) Constraint { return Constraint{Kind: KindFill, A: uint32(weight)} }

// Lengths maps each n to Length(n).
func Lengths(ns ...uint16) []Constraint { return mapConstraints(ns, Length) }

// Mins maps each n to Min(n).
func Mins(ns ...uint16) []Constraint { return mapConstraints(ns, Min) }

// Maxes maps each n to Max(n).
func Maxes(ns ...uint16) []Constraint { return mapConstraints(ns, Max) }

// Percentages maps each p to Percentage(p).
func Percentages(ps ...uint16) []Constraint { return mapConstraints(ps, Percentage) }

// Fills maps each w to Fill(w).
func Fills(ws ...uint16) []Constraint { return mapConstraints(ws, Fill) }

func mapConstraints(vs []uint16, f func(uint16) Constraint) []Constraint {
	out := make([]Constraint, len(vs))
	for i, v := range vs {
		out[i] = f(v)
	}
	return out
}

// String renders the constraint as it would be written in Go, e.g. Ratio(1, 3).
func (c Constraint) String() string {
	b := make([]byte, 0, 24)
	return string(c.appendTo(b))
}

func (c Constraint) appendTo(b []byte) []byte {
	b = append(b, c.Kind.String()...)
	b = append(b, '(')
	b = strconv.AppendUint(b, uint64(c.A), 10)
	if c.Kind == KindRatio {
		b = append(b, ", "...)
		b = strconv.AppendUint(b, uint64(c.B), 10)
	}
	return append(b, ')')
}

// Bounds returns the minimum and maximum length the constraint accepts out of
// total available cells. Percentage and Ratio round half up.
func (c Constraint) Bounds(total uint16) (lo, hi uint16) {
	switch c.Kind {
	case KindLength:
		n := clampU16(uint64(c.A))
		return n, n
	case KindMin:
		return clampU16(uint64(c.A)), total
	case KindMax:
		return 0, clampU16(uint64(c.A))
	case KindPercentage, KindRatio:
		n := c.target(total)
		return n, n
	case KindFill:
		return 0, total
	}
	return 0, 0
}

// target is the size the constraint would like before any competition.
func (c Constraint) target(total uint16) uint16 {
	switch c.Kind {
	case KindLength, KindMin, KindMax:
		return clampU16(uint64(c.A))
	case KindPercentage:
		return min(roundHalfUp(uint64(total)*uint64(c.A), 100), total)
	case KindRatio:
		if c.B == 0 {
			return 0
		}
		return min(roundHalfUp(uint64(total)*uint64(c.A), uint64(c.B)), total)
	}
	return 0
}

// roundHalfUp returns num/den rounded to nearest, .5 rounding up.
func roundHalfUp(num, den uint64) uint16 {
	return clampU16((2*num + den) / (2 * den))
}

func clampU16(v uint64) uint16 {
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}

// Direction is the axis a Layout splits along.
type Direction uint8

const (
	DirVertical Direction = iota
	DirHorizontal
)

func (d Direction) String() string {
	if d == DirHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Flex decides where leftover space goes once every constraint is satisfied.
type Flex uint8

const (
	// FlexLegacy stretches a segment to absorb all leftover space.
	FlexLegacy Flex = iota
	// FlexStart packs segments at the start; leftover trails.
	FlexStart
	// FlexEnd packs segments at the end; leftover leads.
	FlexEnd
	// FlexCenter splits leftover between the leading and trailing spacers.
	FlexCenter
	// FlexSpaceBetween spreads leftover over the spacers between segments.
	FlexSpaceBetween
	// FlexSpaceAround spreads leftover over every spacer, outer ones included.
	FlexSpaceAround
)

var flexNames = [...]string{
	FlexLegacy:       "legacy",
	FlexStart:        "start",
	FlexEnd:          "end",
	FlexCenter:       "center",
	FlexSpaceBetween: "space-between",
	FlexSpaceAround:  "space-around",
}

func (f Flex) String() string {
	if int(f) < len(flexNames) {
		return flexNames[f]
	}
	return "Flex(" + strconv.Itoa(int(f)) + ")"
}

// ParseFlex maps a flex name (as produced by String) back to a Flex.
func ParseFlex(s string) (Flex, bool) {
	for i, name := range flexNames {
		if name == s {
			return Flex(i), true
		}
	}
	return FlexLegacy, false
}

// Spacing is the distance between adjacent segments. Positive values leave a
// gap, negative values make neighbours overlap.
type Spacing int16

// Space returns a gap of n cells.
func Space(n uint16) Spacing {
	return Spacing(min(n, math.MaxInt16))
}

// Overlap returns an overlap of n cells.
func Overlap(n uint16) Spacing {
	m := min(int32(n), -math.MinInt16)
	return Spacing(-m)
}

// SpacingOf builds a Spacing from a signed count, clamped to the int16 range.
func SpacingOf(n int) Spacing {
	return Spacing(max(min(n, math.MaxInt16), math.MinInt16))
}

// IsOverlap reports whether the spacing makes segments overlap.
func (s Spacing) IsOverlap() bool { return s < 0 }

// Gap returns the gap size, zero for overlaps.
func (s Spacing) Gap() uint16 {
	if s < 0 {
		return 0
	}
	return uint16(s)
}

// OverlapAmount returns the overlap size, zero for gaps.
func (s Spacing) OverlapAmount() uint16 {
	if s >= 0 {
		return 0
	}
	return uint16(-int32(s))
}
