package panes

import "testing"

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		if _, ok := ThemeByName(name); !ok {
			t.Errorf("ThemeByName(%q) not found", name)
		}
	}
	if th, ok := ThemeByName(" Dark "); !ok || th != ThemeDark {
		t.Errorf("ThemeByName is not case-insensitive")
	}
	if _, ok := ThemeByName("solarized"); ok {
		t.Error("accepted unknown theme")
	}
}

func TestThemeMonochromePatch(t *testing.T) {
	c := EmptyCell()
	c.SetStyle(ThemeMonochrome.Error)
	if !c.Modifier.Has(AttrBold) || !c.Modifier.Has(AttrUnderline) || c.FG.IsSet() {
		t.Errorf("cell after patch = %+v", c)
	}
}
