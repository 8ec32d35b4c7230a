package panes

import "strings"

// Theme is the palette used to decorate resolved panes: borders and titles,
// pane labels and status rows. Each field is patched over whatever style the
// pane already carries.
type Theme struct {
	Base   Style // pane body text
	Muted  Style // hints and secondary status text
	Accent Style // pane names and the active file
	Error  Style // reload and resolve failures
	Border Style // pane frames, including junctions with neighbours
}

// ThemePlain leaves pane decoration unstyled.
var ThemePlain = Theme{}

// ThemeDark draws dim frames with bright cyan pane names, for dark terminals.
var ThemeDark = Theme{
	Base:   Style{FG: White},
	Muted:  Style{FG: BrightBlack},
	Accent: Style{FG: BrightCyan},
	Error:  Style{FG: BrightRed},
	Border: Style{FG: BrightBlack},
}

// ThemeLight keeps frames faint and names blue, for light terminals.
var ThemeLight = Theme{
	Base:   Style{FG: Black},
	Muted:  Style{FG: BrightBlack},
	Accent: Style{FG: Blue},
	Error:  Style{FG: Red},
	Border: Style{FG: White},
}

// ThemeMonochrome marks panes with attributes only, for terminals without colour.
var ThemeMonochrome = Theme{
	Base:   Style{},
	Muted:  Style{Add: AttrDim},
	Accent: Style{Add: AttrBold},
	Error:  Style{Add: AttrBold | AttrUnderline},
	Border: Style{Add: AttrDim},
}

var themes = map[string]Theme{
	"plain": ThemePlain,
	"dark":  ThemeDark,
	"light": ThemeLight,
	"mono":  ThemeMonochrome,
}

// ThemeNames lists the names ThemeByName accepts.
func ThemeNames() []string {
	return []string{"plain", "dark", "light", "mono"}
}

// ThemeByName returns a pre-defined theme.
func ThemeByName(name string) (Theme, bool) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}
