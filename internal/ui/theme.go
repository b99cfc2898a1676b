package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DarkTheme always renders the dark variant with a few accent overrides
type DarkTheme struct{}

// NewDarkTheme creates a new dark theme
func NewDarkTheme() fyne.Theme {
	return &DarkTheme{}
}

// Color returns theme colors, ignoring the system variant
func (t *DarkTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 229, G: 115, B: 115, A: 255} // Soft red, readable on dark
	case theme.ColorNamePrimary:
		return color.RGBA{R: 129, G: 199, B: 132, A: 255} // Mycelium green
	case theme.ColorNameBackground:
		return color.RGBA{R: 27, G: 27, B: 27, A: 255}
	case theme.ColorNameForeground:
		return color.RGBA{R: 230, G: 230, B: 230, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *DarkTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DarkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *DarkTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameInnerPadding:
		return 6
	}
	return theme.DefaultTheme().Size(name)
}
