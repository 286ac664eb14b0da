package app

import (
	dark "github.com/thiagokokada/dark-mode-go"

	"lifeview/internal/core"
	"lifeview/internal/render"
)

// detectDark reports the desktop colour preference.
var detectDark = dark.IsDarkMode

// ResolveTheme maps a -theme value to a palette. "auto" follows the desktop
// and falls back to dark when the preference cannot be read.
func ResolveTheme(name string) render.Theme {
	switch name {
	case "dark":
		return render.Dark
	case "light":
		return render.Light
	}
	isDark, err := detectDark()
	if err != nil {
		core.Logger().Debug("dark mode detection failed", "err", err)
		return render.Dark
	}
	return render.ThemeFor(isDark)
}
