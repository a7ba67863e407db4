package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tarmac/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DelayColor returns the lipgloss style corresponding to a delay bucket.
func DelayColor(d domain.DelayBucket) lipgloss.Style {
	switch d {
	case domain.DelayLate:
		return StyleRed
	case domain.DelayGrace:
		return StyleYellow
	case domain.DelayOnTime:
		return StyleGreen
	default:
		return StyleDim
	}
}

// TurnaroundIndicator returns a colored indicator string such as "● DELAYED".
func TurnaroundIndicator(status domain.TurnaroundStatus) string {
	switch status {
	case domain.TurnaroundDelayed:
		return StyleRed.Render("● DELAYED")
	case domain.TurnaroundOnTime:
		return StyleGreen.Render("● ON TIME")
	case domain.TurnaroundCancelled:
		return StyleDim.Render("● CANCELLED")
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
