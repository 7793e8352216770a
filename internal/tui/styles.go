package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agusx1211/warrior/internal/theme"
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.ColorBase).
			Background(theme.ColorBlue).
			Padding(0, 2)

	HeaderDayStyle = lipgloss.NewStyle().
			Foreground(theme.ColorSubtext1).
			Italic(true)
)

// Navigation tab styles
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.ColorBase).
			Background(theme.ColorMauve).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(theme.ColorSubtext0).
				Background(theme.ColorSurface0).
				Padding(0, 1)

	TabBarStyle = lipgloss.NewStyle().
			MarginBottom(1)
)

// Status bar
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(theme.ColorSubtext0).
			Background(theme.ColorSurface0).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.ColorLavender).
			Background(theme.ColorSurface0)

	StatusValueStyle = lipgloss.NewStyle().
				Foreground(theme.ColorSubtext0).
				Background(theme.ColorSurface0)
)

// List styles
var (
	ListItemStyle = lipgloss.NewStyle().
			Foreground(theme.ColorText).
			PaddingLeft(2)

	SelectedListItemStyle = lipgloss.NewStyle().
				Foreground(theme.ColorBase).
				Background(theme.ColorLavender).
				Bold(true).
				PaddingLeft(2)

	ListDimStyle = lipgloss.NewStyle().
			Foreground(theme.ColorOverlay0).
			PaddingLeft(2)

	DetailLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(theme.ColorSubtext1).
				Width(18)

	DetailValueStyle = lipgloss.NewStyle().
				Foreground(theme.ColorText)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.ColorTeal).
			MarginTop(1)
)

// Modal and feedback
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ColorYellow).
			Padding(1, 3).
			Align(lipgloss.Center)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.ColorYellow)

	FlashStyle = lipgloss.NewStyle().
			Foreground(theme.ColorGreen).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(theme.ColorRed).
			Bold(true)

	HelpTextStyle = lipgloss.NewStyle().
			Foreground(theme.ColorOverlay0)
)

// ProgressBar renders percent as a width-cell bar.
func ProgressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = max(0, min(width, filled))
	fill := lipgloss.NewStyle().Foreground(theme.ProgressColor(percent))
	empty := lipgloss.NewStyle().Foreground(theme.ColorSurface2)
	return fill.Render(strings.Repeat("█", filled)) + empty.Render(strings.Repeat("░", width-filled))
}

// shortcutText renders a key shortcut with styling.
func shortcutText(keyStr, desc string) string {
	return StatusKeyStyle.Render(keyStr) + StatusValueStyle.Render(" "+desc)
}
