package panes

import "slices"

// Priority tiers, highest first. A tier is allocated in declared order and
// each member is capped by what the earlier tiers left over, so on overflow
// the first constraints win and later ones shrink to zero.
const (
	tierLength = iota
	tierMinMax
	tierPercentage
	tierRatio
	tierCount
	tierFill = -1
)

func tierOf(k ConstraintKind) int {
	switch k {
	case KindLength:
		return tierLength
	case KindMin, KindMax:
		return tierMinMax
	case KindPercentage:
		return tierPercentage
	case KindRatio:
		return tierRatio
	}
	return tierFill
}

// stretchRank orders the rigid kinds by how readily they give up their exact
// size under legacy flex. Lower ranks stretch first.
func stretchRank(k ConstraintKind) int {
	switch k {
	case KindRatio:
		return 0
	case KindPercentage:
		return 1
	case KindLength:
		return 2
	case KindMax:
		return 3
	}
	return 4
}

// allocation is the 1-dimensional solution: one size per segment and
// len(sizes)+1 spacers. Negative spacers are overlaps.
type allocation struct {
	sizes   []int64
	spacers []int64
}

// solve distributes total cells among the constraints. It is a pure function
// of its arguments.
func solve(cs []Constraint, total uint16, flex Flex, spacing Spacing) allocation {
	n := len(cs)
	a := allocation{
		sizes:   make([]int64, n),
		spacers: make([]int64, n+1),
	}
	if n == 0 {
		a.spacers[0] = int64(total)
		return a
	}

	// overlap lends its cells to the segments up front
	budget := int64(total)
	if spacing < 0 {
		ov := int64(spacing.OverlapAmount())
		for i := 1; i < n; i++ {
			a.spacers[i] = -ov
			budget += ov
		}
	}

	for tier := 0; tier < tierCount; tier++ {
		for i, c := range cs {
			if tierOf(c.Kind) != tier {
				continue
			}
			s := min(int64(c.target(total)), budget)
			a.sizes[i] = s
			budget -= s
		}
	}

	// gaps rank below every constraint tier and above the flex policy
	if spacing > 0 {
		for i := 1; i < n; i++ {
			g := min(int64(spacing), budget)
			a.spacers[i] = g
			budget -= g
		}
	}

	leftover := budget
	if leftover > 0 {
		if flex == FlexLegacy {
			a.stretchLegacy(cs, leftover)
		} else if !a.grow(cs, leftover, true) {
			a.spread(flex, leftover)
		}
	}

	// no segment may exceed the axis; any excess trails
	for i, s := range a.sizes {
		if s > int64(total) {
			a.spacers[n] += s - int64(total)
			a.sizes[i] = int64(total)
		}
	}
	return a
}

// stretchLegacy hands all leftover to segments: Fill segments by weight,
// otherwise the last Min, otherwise the last segment of the most stretchable
// rigid kind.
func (a *allocation) stretchLegacy(cs []Constraint, leftover int64) {
	if a.grow(cs, leftover, false) {
		return
	}
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i].Kind == KindMin {
			a.sizes[i] += leftover
			return
		}
	}
	target := -1
	for i, c := range cs {
		if target < 0 || stretchRank(c.Kind) <= stretchRank(cs[target].Kind) {
			target = i
		}
	}
	a.sizes[target] += leftover
}

// grow shares leftover among the growable segments in proportion to their
// weight, keeping each at or above the size it already holds. Fill segments
// always grow; Min segments grow with weight 1 when withMin is set. It
// reports false when no segment can grow.
func (a *allocation) grow(cs []Constraint, leftover int64, withMin bool) bool {
	var members []int
	for i, c := range cs {
		if c.Kind == KindFill || (withMin && c.Kind == KindMin) {
			members = append(members, i)
		}
	}
	if len(members) == 0 {
		return false
	}

	weights := make([]int64, len(cs))
	positive := false
	for _, i := range members {
		if cs[i].Kind != KindFill {
			weights[i] = 1
			continue
		}
		weights[i] = int64(cs[i].A)
		if weights[i] > 0 {
			positive = true
		}
	}
	// Fill(0) only grows when no other Fill has a real weight.
	if !positive {
		for _, i := range members {
			weights[i] = 1
		}
	}

	pool := leftover
	for _, i := range members {
		pool += a.sizes[i]
	}

	// water-fill: a member whose current size exceeds its proportional share
	// keeps its size and leaves the pool
	active := members
	for {
		var w int64
		for _, i := range active {
			w += weights[i]
		}
		if w == 0 {
			break
		}
		kept := active[:0:0]
		for _, i := range active {
			if a.sizes[i]*w > pool*weights[i] {
				pool -= a.sizes[i]
				continue
			}
			kept = append(kept, i)
		}
		if len(kept) == len(active) {
			break
		}
		active = kept
	}

	shares := make([]int64, len(active))
	ws := make([]int64, len(active))
	for k, i := range active {
		ws[k] = weights[i]
	}
	apportion(pool, ws, shares)
	for k, i := range active {
		a.sizes[i] = shares[k]
	}
	return true
}

// spread places leftover into the spacers according to the flex policy.
func (a *allocation) spread(flex Flex, leftover int64) {
	n := len(a.sizes)
	switch flex {
	case FlexEnd:
		a.spacers[0] += leftover
	case FlexCenter:
		a.addEven(leftover, 0, n)
	case FlexSpaceBetween:
		if n < 2 {
			a.spacers[n] += leftover
			return
		}
		idx := make([]int, 0, n-1)
		for i := 1; i < n; i++ {
			idx = append(idx, i)
		}
		a.addEven(leftover, idx...)
	case FlexSpaceAround:
		idx := make([]int, 0, n+1)
		for i := 0; i <= n; i++ {
			idx = append(idx, i)
		}
		a.addEven(leftover, idx...)
	default:
		a.spacers[n] += leftover
	}
}

func (a *allocation) addEven(amount int64, idx ...int) {
	ws := make([]int64, len(idx))
	for k := range ws {
		ws[k] = 1
	}
	shares := make([]int64, len(idx))
	apportion(amount, ws, shares)
	for k, i := range idx {
		a.spacers[i] += shares[k]
	}
}

// apportion splits total into shares proportional to weights using the
// largest remainder method. Equal remainders favour the earlier index.
func apportion(total int64, weights, shares []int64) {
	var w int64
	for _, x := range weights {
		w += x
	}
	if w == 0 || total <= 0 {
		clear(shares)
		return
	}
	rems := make([]int64, len(weights))
	given := int64(0)
	for i, x := range weights {
		shares[i] = total * x / w
		rems[i] = total * x % w
		given += shares[i]
	}
	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		switch {
		case rems[i] > rems[j]:
			return -1
		case rems[i] < rems[j]:
			return 1
		}
		return i - j
	})
	for k := int64(0); k < total-given; k++ {
		shares[order[k]]++
	}
}
