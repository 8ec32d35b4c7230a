// Package layoutfile loads nested pane layouts from YAML, TOML or JSON
// descriptions and resolves them against a screen area.
//
// A description is a tree of nodes. Each node splits its area by its
// constraints; child i, when present, further splits segment i.
//
//	direction: horizontal
//	constraints: ["length:20", "fill:1"]
//	children:
//	  - name: sidebar
//	    border: rounded
//	  - direction: vertical
//	    constraints: ["fill:1", "length:3"]
//	    children: [{name: main}, {name: status}]
package layoutfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kungfusheep/panes"
	"gopkg.in/yaml.v3"
)

var (
	ErrBadConstraint   = errors.New("bad constraint")
	ErrBadDirection    = errors.New("bad direction")
	ErrBadFlex         = errors.New("bad flex")
	ErrBadBorder       = errors.New("bad border")
	ErrTooManyChildren = errors.New("more children than constraints")
	ErrUnknownFormat   = errors.New("unknown layout format")
)

// Format is the encoding of a layout description.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	}
	return "yaml"
}

// FormatOf picks a format from a file extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q (use .yaml, .yml, .toml or .json)", ErrUnknownFormat, ext)
	}
}

// Node is one level of a layout description.
type Node struct {
	Name        string   `yaml:"name" toml:"name" json:"name"`
	Direction   string   `yaml:"direction" toml:"direction" json:"direction"`
	Constraints []string `yaml:"constraints" toml:"constraints" json:"constraints"`
	Margin      uint16   `yaml:"margin" toml:"margin" json:"margin"`
	Flex        string   `yaml:"flex" toml:"flex" json:"flex"`
	Spacing     int      `yaml:"spacing" toml:"spacing" json:"spacing"` // negative overlaps
	Border      string   `yaml:"border" toml:"border" json:"border"`
	Title       string   `yaml:"title" toml:"title" json:"title"`
	Children    []Node   `yaml:"children" toml:"children" json:"children"`
}

// Load reads and parses the file at path, choosing the format by extension.
func Load(path string) (*Node, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	n, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Parse decodes a description and checks that every node compiles.
// Unknown keys are rejected.
func Parse(data []byte, format Format) (*Node, error) {
	var n Node
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to parse YAML layout: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &n)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML layout: %w", err)
		}
		if un := md.Undecoded(); len(un) > 0 {
			return nil, fmt.Errorf("failed to parse TOML layout: unknown key %q", un[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to parse JSON layout: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return &n, nil
}

// Validate compiles every node in the tree.
func (n *Node) Validate() error {
	return n.walk("root", func(path string, n *Node) error {
		if _, err := n.Layout(); err != nil {
			return fmt.Errorf("node %s: %w", path, err)
		}
		if _, err := n.border(); err != nil {
			return fmt.Errorf("node %s: %w", path, err)
		}
		return nil
	})
}

func (n *Node) walk(path string, fn func(path string, n *Node) error) error {
	if err := fn(path, n); err != nil {
		return err
	}
	for i := range n.Children {
		if err := n.Children[i].walk(n.childPath(path, i), fn); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) childPath(path string, i int) string {
	if name := n.Children[i].Name; name != "" {
		return path + "/" + name
	}
	return fmt.Sprintf("%s/%d", path, i)
}

// Layout compiles the node's own split.
func (n *Node) Layout() (panes.Layout, error) {
	dir, err := ParseDirection(n.Direction)
	if err != nil {
		return panes.Layout{}, err
	}
	flex := panes.FlexLegacy
	if n.Flex != "" {
		var ok bool
		if flex, ok = panes.ParseFlex(strings.ToLower(strings.TrimSpace(n.Flex))); !ok {
			return panes.Layout{}, fmt.Errorf("flex %q: %w", n.Flex, ErrBadFlex)
		}
	}
	if len(n.Children) > len(n.Constraints) {
		return panes.Layout{}, fmt.Errorf("%d children for %d constraints: %w",
			len(n.Children), len(n.Constraints), ErrTooManyChildren)
	}
	cs := make([]panes.Constraint, len(n.Constraints))
	for i, s := range n.Constraints {
		if cs[i], err = ParseConstraint(s); err != nil {
			return panes.Layout{}, err
		}
	}
	return panes.Layout{Direction: dir, Constraints: cs}.
		WithMargin(n.Margin).
		WithFlex(flex).
		WithSpacing(panes.SpacingOf(n.Spacing)), nil
}

// border returns the node's border, or nil when it has none.
func (n *Node) border() (*panes.Border, error) {
	if n.Border == "" || strings.EqualFold(n.Border, "none") {
		return nil, nil
	}
	bt, ok := panes.ParseBorderType(n.Border)
	if !ok || bt == panes.BorderCustom {
		return nil, fmt.Errorf("border %q: %w", n.Border, ErrBadBorder)
	}
	title := n.Title
	if title == "" {
		title = n.Name
	}
	return &panes.Border{Type: bt, Title: title}, nil
}
