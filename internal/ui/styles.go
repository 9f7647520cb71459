package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorGray   = "#353b52"
	colorWhite  = "#ffffff"
	colorGreen  = "#acfab4"
	colorRed    = "#e61f44"
	colorPurple = "#b9a3eb"
	colorBlue   = "#89ddff"
	colorYellow = "#ffd580"

	barWidth = 24
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue)).
			Background(lipgloss.Color(colorGray)).
			Padding(0, 2)
	sectionStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorPurple))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray)).
			Background(lipgloss.Color(colorGreen))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed))
	quoteStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(colorYellow))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray))
)

// progressBar renders fraction (already clamped to [0,1]) as a fixed-width bar.
func progressBar(fraction float64, over bool) string {
	if fraction < 0 {
		fraction = 0
	}
	filled := int(fraction*barWidth + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	if over {
		return dangerStyle.Render(bar)
	}
	return goodStyle.Render(bar)
}
