package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleStrike = lipgloss.NewStyle().Foreground(ColorDim).Strikethrough(true)
)

// WipColor returns the lipgloss style for a capacity status.
func WipColor(status domain.WipStatus) lipgloss.Style {
	switch status {
	case domain.WipExceeded:
		return StyleRed
	case domain.WipReached:
		return StyleOrange
	case domain.WipUnder:
		return StyleGreen
	default:
		return StyleDim
	}
}

// WipIndicator returns a colored capacity indicator such as "● EXCEEDED".
func WipIndicator(status domain.WipStatus) string {
	switch status {
	case domain.WipExceeded:
		return StyleRed.Render("● EXCEEDED")
	case domain.WipReached:
		return StyleOrange.Render("● AT LIMIT")
	case domain.WipUnder:
		return StyleGreen.Render("● UNDER")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
