package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ReaderTheme enlarges body text so polytonic Greek stays legible in the result
// list, and tightens the chrome around it.
type ReaderTheme struct{}

// NewReaderTheme creates a new reader theme
func NewReaderTheme() fyne.Theme {
	return &ReaderTheme{}
}

// Color returns theme colors
func (t *ReaderTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 176, G: 42, B: 38, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 122, G: 59, B: 34, A: 255} // oxblood, matches the site header
	case theme.ColorNameHyperlink:
		return color.RGBA{R: 150, G: 78, B: 44, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 28, G: 26, B: 24, A: 255}
		}
		return color.RGBA{R: 252, G: 249, B: 242, A: 255} // parchment
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 236, G: 232, B: 224, A: 255}
		}
		return color.RGBA{R: 38, G: 34, B: 30, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ReaderTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ReaderTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ReaderTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 15
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
