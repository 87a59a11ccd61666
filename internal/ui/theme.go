// Package ui provides the Wortuhr desktop UI components.
//
// This file defines a custom compact Fyne theme for a dense editing layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme names stored in the app config.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// WortuhrTheme wraps the default Fyne theme with compact sizing overrides
// and an optional fixed light/dark variant.
type WortuhrTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	fixed   bool // false follows the system variant
}

// NewWortuhrTheme creates a theme for the configured name. Unknown names
// follow the system.
func NewWortuhrTheme(name string) *WortuhrTheme {
	t := &WortuhrTheme{base: theme.DefaultTheme()}
	t.SetName(name)
	return t
}

// SetName switches between system, light and dark.
func (t *WortuhrTheme) SetName(name string) {
	switch name {
	case ThemeLight:
		t.variant, t.fixed = theme.VariantLight, true
	case ThemeDark:
		t.variant, t.fixed = theme.VariantDark, true
	default:
		t.fixed = false
	}
}

// Color delegates to the base theme, forcing the variant when one is set.
func (t *WortuhrTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.fixed {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *WortuhrTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *WortuhrTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides so an 11x10 letter grid fits
// next to the word list.
func (t *WortuhrTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
