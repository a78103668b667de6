package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
	"github.com/charmbracelet/lipgloss"
)

// Muted palette matching the web client.
var (
	ColorDim    = lipgloss.Color("#94a3b8")
	ColorFg     = lipgloss.Color("#e2e8f0")
	ColorHeader = lipgloss.Color("#8b5cf6")
	ColorAccent = lipgloss.Color(string(model.OrbColorGreen))
)

var (
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)
)

// OrbStyle returns a bold style in the orb colour of an assessment
func OrbStyle(color model.OrbColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(color))).Bold(true)
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted colour.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// ProgressBar renders a fixed-width bar for a fraction in [0, 1]
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = math.Max(0, math.Min(1, fraction))
	filled := int(math.Round(fraction * float64(width)))

	return StyleAccent.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %3d%%", int(math.Round(fraction*100)))
}

// Bullets renders each item on its own line with a leading marker
func Bullets(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(StyleDim.Render("  • "))
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}
