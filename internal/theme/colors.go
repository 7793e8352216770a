// Package theme holds the palette shared by every terminal view.
package theme

import "github.com/charmbracelet/lipgloss"

// Color palette - dark theme inspired by Catppuccin Mocha
var (
	ColorBase     = lipgloss.Color("#1e1e2e")
	ColorSurface0 = lipgloss.Color("#313244")
	ColorSurface1 = lipgloss.Color("#45475a")
	ColorSurface2 = lipgloss.Color("#585b70")
	ColorOverlay0 = lipgloss.Color("#6c7086")
	ColorText     = lipgloss.Color("#cdd6f4")
	ColorSubtext0 = lipgloss.Color("#a6adc8")
	ColorSubtext1 = lipgloss.Color("#bac2de")

	ColorRed      = lipgloss.Color("#f38ba8")
	ColorGreen    = lipgloss.Color("#a6e3a1")
	ColorYellow   = lipgloss.Color("#f9e2af")
	ColorBlue     = lipgloss.Color("#89b4fa")
	ColorMauve    = lipgloss.Color("#cba6f7")
	ColorTeal     = lipgloss.Color("#94e2d5")
	ColorPeach    = lipgloss.Color("#fab387")
	ColorFlamingo = lipgloss.Color("#f2cdcd")
	ColorLavender = lipgloss.Color("#b4befe")
)

// Item state indicators
var (
	ItemOpen   = lipgloss.NewStyle().Foreground(ColorOverlay0).SetString("○")
	ItemDone   = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true).SetString("●")
	ItemMissed = lipgloss.NewStyle().Foreground(ColorRed).Bold(true).SetString("✗")
	PlenoDot   = lipgloss.NewStyle().Foreground(ColorYellow).SetString("•")
)

// ItemIndicator returns the marker of an item: done wins over missed.
func ItemIndicator(completed, failedPreviousDay bool) string {
	switch {
	case completed:
		return ItemDone.String()
	case failedPreviousDay:
		return ItemMissed.String()
	default:
		return ItemOpen.String()
	}
}

// ProgressColor picks a color for a completion percentage.
func ProgressColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 100:
		return ColorGreen
	case percent >= 50:
		return ColorYellow
	case percent > 0:
		return ColorPeach
	default:
		return ColorOverlay0
	}
}
