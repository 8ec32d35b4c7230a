package layoutfile

import (
	"fmt"

	"github.com/kungfusheep/panes"
)

// Pane is one resolved node, or one segment that has no child node.
type Pane struct {
	Path   string // slash-separated, "root" first
	Name   string
	Area   panes.Rect
	Depth  int
	Leaf   bool
	Border *panes.Border
}

// Splitter computes segments for a layout. *panes.LayoutCache satisfies it.
type Splitter interface {
	Split(l panes.Layout, area panes.Rect) []panes.Rect
}

type direct struct{}

func (direct) Split(l panes.Layout, area panes.Rect) []panes.Rect { return l.Split(area) }

// Resolve splits area through the whole tree and returns every pane in
// pre-order.
func (n *Node) Resolve(area panes.Rect) ([]Pane, error) {
	return n.ResolveWith(direct{}, area)
}

// ResolveWith is Resolve computing splits through s.
func (n *Node) ResolveWith(s Splitter, area panes.Rect) ([]Pane, error) {
	var out []Pane
	if err := n.resolve(s, "root", 0, area, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (n *Node) resolve(s Splitter, path string, depth int, area panes.Rect, out *[]Pane) error {
	l, err := n.Layout()
	if err != nil {
		return fmt.Errorf("node %s: %w", path, err)
	}
	b, err := n.border()
	if err != nil {
		return fmt.Errorf("node %s: %w", path, err)
	}
	leaf := len(n.Constraints) == 0
	*out = append(*out, Pane{Path: path, Name: n.Name, Area: area, Depth: depth, Leaf: leaf, Border: b})
	if leaf {
		return nil
	}

	inner := area
	if b != nil {
		inner = b.Inner(area)
	}
	for i, seg := range s.Split(l, inner) {
		if i < len(n.Children) {
			if err := n.Children[i].resolve(s, n.childPath(path, i), depth+1, seg, out); err != nil {
				return err
			}
			continue
		}
		*out = append(*out, Pane{Path: fmt.Sprintf("%s/%d", path, i), Area: seg, Depth: depth + 1, Leaf: true})
	}
	return nil
}

// Draw paints resolved panes: borders where a node has one, and the name
// of each unbordered leaf in its top-left corner.
func Draw(buf *panes.Buffer, ps []Pane, theme panes.Theme) error {
	for _, p := range ps {
		if p.Area.IsEmpty() || !buf.Area.Contains(p.Area.AsPosition()) {
			continue
		}
		if p.Border != nil {
			b := *p.Border
			b.Style = theme.Border.Patch(b.Style)
			if err := buf.DrawBorder(p.Area, b); err != nil {
				return fmt.Errorf("pane %s: %w", p.Path, err)
			}
			continue
		}
		if p.Leaf && p.Name != "" {
			if _, err := buf.SetStringN(p.Area.X, p.Area.Y, p.Name, int(p.Area.Width), theme.Accent); err != nil {
				return fmt.Errorf("pane %s: %w", p.Path, err)
			}
		}
	}
	return nil
}
