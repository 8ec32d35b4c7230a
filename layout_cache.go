package panes

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kungfusheep/panes/lru"
)

// DefaultLayoutCacheSize covers the distinct layouts a typical frame asks for.
const DefaultLayoutCacheSize = 64

// debugLayout enables cache miss tracing via PANES_DEBUG_LAYOUT env var
var debugLayout = os.Getenv("PANES_DEBUG_LAYOUT") != ""

type layoutKey struct {
	constraints string
	direction   Direction
	margin      Margin
	flex        Flex
	spacing     Spacing
	area        Rect
}

type layoutResult struct {
	segments []Rect
	spacers  []Rect
}

// LayoutCache memoizes Layout.SplitWithSpacers. Results are identical to
// calling the layout directly; the cache only saves the work.
//
// A LayoutCache is not safe for concurrent use. Create one per render loop.
type LayoutCache struct {
	entries *lru.Cache[layoutKey, layoutResult]
}

// NewLayoutCache returns a cache holding up to capacity layouts.
func NewLayoutCache(capacity int) (*LayoutCache, error) {
	entries, err := lru.New[layoutKey, layoutResult](capacity)
	if err != nil {
		return nil, fmt.Errorf("layout cache: %w", err)
	}
	return &LayoutCache{entries: entries}, nil
}

// Split is the cached equivalent of l.Split(area).
func (c *LayoutCache) Split(l Layout, area Rect) []Rect {
	segments, _ := c.SplitWithSpacers(l, area)
	return segments
}

// SplitWithSpacers is the cached equivalent of l.SplitWithSpacers(area).
// The returned slices belong to the caller.
func (c *LayoutCache) SplitWithSpacers(l Layout, area Rect) (segments, spacers []Rect) {
	key := makeLayoutKey(l, area)
	r, ok := c.entries.Get(key)
	if !ok {
		if debugLayout {
			fmt.Fprintf(os.Stderr, "layout: miss %s %v area=%s flex=%s spacing=%d (%s)\n",
				l.Direction, l.Constraints, area, l.Flex, l.Spacing, c.entries.Stats())
		}
		r.segments, r.spacers = l.SplitWithSpacers(area)
		c.entries.Set(key, r)
	}
	return cloneRects(r.segments), cloneRects(r.spacers)
}

// Stats returns the cache's hit/miss counters.
func (c *LayoutCache) Stats() lru.Stats { return c.entries.Stats() }

// Len returns the number of cached layouts.
func (c *LayoutCache) Len() int { return c.entries.Len() }

// Clear drops every cached layout and resets the stats.
func (c *LayoutCache) Clear() { c.entries.Clear() }

func makeLayoutKey(l Layout, area Rect) layoutKey {
	return layoutKey{
		constraints: constraintsKey(l.Constraints),
		direction:   l.Direction,
		margin:      l.Margin,
		flex:        l.Flex,
		spacing:     l.Spacing,
		area:        area,
	}
}

// constraintsKey serializes a constraint list deterministically, e.g.
// "0:25|5:1" for Length(25), Fill(1).
func constraintsKey(cs []Constraint) string {
	if len(cs) == 0 {
		return ""
	}
	b := make([]byte, 0, len(cs)*8)
	for i, c := range cs {
		if i > 0 {
			b = append(b, '|')
		}
		b = strconv.AppendUint(b, uint64(c.Kind), 10)
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(c.A), 10)
		if c.Kind == KindRatio {
			b = append(b, '/')
			b = strconv.AppendUint(b, uint64(c.B), 10)
		}
	}
	return string(b)
}

func cloneRects(rs []Rect) []Rect {
	out := make([]Rect, len(rs))
	copy(out, rs)
	return out
}
