package models

// ThemePreference is the explicit choice persisted for a profile.
type ThemePreference string

const (
	ThemeUnset ThemePreference = ""
	ThemeLight ThemePreference = "light"
	ThemeDark  ThemePreference = "dark"
)

// ParseThemePreference maps anything but "light" and "dark" onto ThemeUnset.
func ParseThemePreference(s string) ThemePreference {
	switch ThemePreference(s) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return ThemeUnset
	}
}

// ThemeMode is the visual mode actually applied.
type ThemeMode string

const (
	ModeLight ThemeMode = "light"
	ModeDark  ThemeMode = "dark"
)

// ThemeState combines the persisted preference with the system signal.
type ThemeState struct {
	Preference ThemePreference
	SystemDark bool
}

// Mode returns the explicit choice when one exists, otherwise follows the system.
func (s ThemeState) Mode() ThemeMode {
	switch s.Preference {
	case ThemeDark:
		return ModeDark
	case ThemeLight:
		return ModeLight
	}
	if s.SystemDark {
		return ModeDark
	}
	return ModeLight
}

// Dark reports whether the visual mode is dark.
func (s ThemeState) Dark() bool {
	return s.Mode() == ModeDark
}

// Toggle flips the visual mode and records it as the explicit choice.
func (s *ThemeState) Toggle() ThemeMode {
	if s.Mode() == ModeDark {
		s.Preference = ThemeLight
	} else {
		s.Preference = ThemeDark
	}
	return s.Mode()
}

// SystemChanged records a new system signal and reports whether the visual mode
// changed, which only happens while no explicit choice exists.
func (s *ThemeState) SystemChanged(dark bool) bool {
	before := s.Mode()
	s.SystemDark = dark
	return s.Mode() != before
}

// ButtonLabel is the text of the toggle button for the current mode.
func (s ThemeState) ButtonLabel() string {
	if s.Dark() {
		return "☀️ Tema Claro"
	}
	return "🌙 Tema Escuro"
}
