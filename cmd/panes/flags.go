package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kungfusheep/panes"
	"github.com/kungfusheep/panes/layoutfile"
	"github.com/spf13/pflag"
	xterm "golang.org/x/term"
)

// flexValue lets a pflag flag hold a panes.Flex by name.
type flexValue struct{ f *panes.Flex }

var _ pflag.Value = flexValue{}

func (v flexValue) String() string {
	if v.f == nil {
		return ""
	}
	return v.f.String()
}

func (v flexValue) Type() string { return "flex" }

func (v flexValue) Set(s string) error {
	f, ok := panes.ParseFlex(strings.ToLower(s))
	if !ok {
		return fmt.Errorf("unknown flex %q (legacy, start, end, center, space-between, space-around)", s)
	}
	*v.f = f
	return nil
}

type directionValue struct{ d *panes.Direction }

var _ pflag.Value = directionValue{}

func (v directionValue) String() string {
	if v.d == nil {
		return ""
	}
	return v.d.String()
}

func (v directionValue) Type() string { return "direction" }

func (v directionValue) Set(s string) error {
	d, err := layoutfile.ParseDirection(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

// themeValue selects a pre-defined theme by name.
type themeValue struct {
	t    *panes.Theme
	name string
}

var _ pflag.Value = (*themeValue)(nil)

func newThemeValue(t *panes.Theme) *themeValue {
	*t = panes.ThemePlain
	return &themeValue{t: t, name: "plain"}
}

func (v *themeValue) String() string { return v.name }
func (v *themeValue) Type() string   { return "theme" }

func (v *themeValue) Set(s string) error {
	t, ok := panes.ThemeByName(s)
	if !ok {
		return fmt.Errorf("unknown theme %q (%s)", s, strings.Join(panes.ThemeNames(), ", "))
	}
	*v.t, v.name = t, strings.ToLower(strings.TrimSpace(s))
	return nil
}

// areaFlags are the -W/-H pair shared by the commands that draw. Zero means
// the terminal's size.
type areaFlags struct {
	width, height uint16
}

func (a *areaFlags) register(fs *pflag.FlagSet) {
	fs.Uint16VarP(&a.width, "width", "W", 0, "area width (default terminal width or 80)")
	fs.Uint16VarP(&a.height, "height", "H", 0, "area height (default terminal height or 24)")
}

func (a *areaFlags) area() panes.Rect {
	w, h := a.width, a.height
	if w == 0 || h == 0 {
		tw, th, err := xterm.GetSize(int(os.Stdout.Fd()))
		if err != nil || tw <= 0 || th <= 0 {
			tw, th = 80, 24
		}
		if w == 0 {
			w = uint16(min(tw, 0xFFFF))
		}
		if h == 0 {
			h = uint16(min(th, 0xFFFF))
		}
	}
	return panes.NewRect(0, 0, w, h)
}
