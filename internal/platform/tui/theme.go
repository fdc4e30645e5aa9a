package tui

import "github.com/charmbracelet/lipgloss"

// PickerTheme holds the styles of the style picker.
type PickerTheme struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	LabelActive lipgloss.Style
	Value       lipgloss.Style
	ValueActive lipgloss.Style
	Arrow       lipgloss.Style
	Hint        lipgloss.Style
	Preview     lipgloss.Style
}

// DefaultPickerTheme returns the default visual theme.
func DefaultPickerTheme() PickerTheme {
	return PickerTheme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10),
		LabelActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Width(10),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ValueActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Arrow:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Hint:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Preview: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2),
	}
}

// MonochromePickerTheme returns a theme without colors, for NO_COLOR terminals.
func MonochromePickerTheme() PickerTheme {
	plain := lipgloss.NewStyle()
	return PickerTheme{
		Title:       plain.Bold(true),
		Label:       plain.Width(10),
		LabelActive: plain.Bold(true).Width(10),
		Value:       plain,
		ValueActive: plain.Bold(true).Underline(true),
		Arrow:       plain,
		Hint:        plain,
		Preview:     plain.Border(lipgloss.NormalBorder()).Padding(0, 2),
	}
}
