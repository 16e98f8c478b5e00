package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the resolved palette for one mode. Listing banners use
// the accent stored on the listing itself, not the theme.
type Theme struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Brand   lipgloss.Color
	Border  lipgloss.Color
	Overlay lipgloss.Color
	Danger  lipgloss.Color
	Notice  lipgloss.Color
	ChipBg  lipgloss.Color
	ChipFg  lipgloss.Color
}

var lightTheme = Theme{
	Text:    lipgloss.Color("235"),
	Muted:   lipgloss.Color("243"),
	Brand:   lipgloss.Color("#386641"),
	Border:  lipgloss.Color("250"),
	Overlay: lipgloss.Color("#6a994e"),
	Danger:  lipgloss.Color("#bc4749"),
	Notice:  lipgloss.Color("#386641"),
	ChipBg:  lipgloss.Color("#a7c957"),
	ChipFg:  lipgloss.Color("235"),
}

var darkTheme = Theme{
	Text:    lipgloss.Color("252"),
	Muted:   lipgloss.Color("245"),
	Brand:   lipgloss.Color("#a7c957"),
	Border:  lipgloss.Color("240"),
	Overlay: lipgloss.Color("#6a994e"),
	Danger:  lipgloss.Color("#e07a5f"),
	Notice:  lipgloss.Color("#a7c957"),
	ChipBg:  lipgloss.Color("#386641"),
	ChipFg:  lipgloss.Color("252"),
}

func themeFor(dark bool) Theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}
