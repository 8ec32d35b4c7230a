package layoutfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kungfusheep/panes"
)

// ParseConstraint parses the text form of a constraint: "length:10",
// "min:5", "max:20", "percentage:50" (or "50%"), "ratio:1/3" and "fill:2".
// Kind names are case-insensitive.
func ParseConstraint(s string) (panes.Constraint, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	if p, ok := strings.CutSuffix(text, "%"); ok {
		n, err := parseU16(p)
		if err != nil {
			return panes.Constraint{}, fmt.Errorf("constraint %q: %w", s, err)
		}
		return panes.Percentage(n), nil
	}

	kind, arg, ok := strings.Cut(text, ":")
	if !ok {
		return panes.Constraint{}, fmt.Errorf("constraint %q: %w", s, ErrBadConstraint)
	}
	arg = strings.TrimSpace(arg)
	if kind == "ratio" {
		num, den, ok := strings.Cut(arg, "/")
		if !ok {
			return panes.Constraint{}, fmt.Errorf("constraint %q: ratio needs num/den: %w", s, ErrBadConstraint)
		}
		n, err := strconv.ParseUint(strings.TrimSpace(num), 10, 32)
		if err != nil {
			return panes.Constraint{}, fmt.Errorf("constraint %q: %w", s, err)
		}
		d, err := strconv.ParseUint(strings.TrimSpace(den), 10, 32)
		if err != nil {
			return panes.Constraint{}, fmt.Errorf("constraint %q: %w", s, err)
		}
		return panes.Ratio(uint32(n), uint32(d)), nil
	}

	n, err := parseU16(arg)
	if err != nil {
		return panes.Constraint{}, fmt.Errorf("constraint %q: %w", s, err)
	}
	switch strings.TrimSpace(kind) {
	case "length", "len":
		return panes.Length(n), nil
	case "min":
		return panes.Min(n), nil
	case "max":
		return panes.Max(n), nil
	case "percentage", "percent", "pct":
		return panes.Percentage(n), nil
	case "fill":
		return panes.Fill(n), nil
	}
	return panes.Constraint{}, fmt.Errorf("constraint %q: unknown kind %q: %w", s, kind, ErrBadConstraint)
}

func parseU16(s string) (uint16, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	return uint16(n), err
}

// ParseDirection accepts "horizontal"/"h" and "vertical"/"v". The empty
// string means vertical.
func ParseDirection(s string) (panes.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical", "v":
		return panes.DirVertical, nil
	case "horizontal", "h":
		return panes.DirHorizontal, nil
	}
	return 0, fmt.Errorf("direction %q: %w", s, ErrBadDirection)
}
