package session

// Theme is one of the fixed visual presets. Which colors a preset maps to
// is the render layer's business; the session only remembers the choice.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
	ThemeOcean
	ThemeForest
)

// DefaultTheme is what every new session starts with.
const DefaultTheme = ThemeDark

// themeNames doubles as the canonical cycle order.
var themeNames = [...]string{
	ThemeLight:  "light",
	ThemeDark:   "dark",
	ThemeOcean:  "ocean",
	ThemeForest: "forest",
}

func (t Theme) String() string {
	if t < 0 || int(t) >= len(themeNames) {
		return "unknown"
	}
	return themeNames[t]
}

// Next returns the preset after t, wrapping around. Used by the cycle key.
func (t Theme) Next() Theme {
	return Theme((int(t) + 1) % len(themeNames))
}

// ParseTheme maps a stored or configured name back to its preset. The
// second result is false for names outside the closed set.
func ParseTheme(name string) (Theme, bool) {
	for t, n := range themeNames {
		if n == name {
			return Theme(t), true
		}
	}
	return DefaultTheme, false
}
