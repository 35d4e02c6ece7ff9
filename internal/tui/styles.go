package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorAccent = lipgloss.Color("205")
	ColorSelect = lipgloss.Color("170")
	ColorDim    = lipgloss.Color("245")
	ColorWarn   = lipgloss.Color("214")
	ColorFg     = lipgloss.Color("252")
)

var (
	StyleTitle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(ColorDim)
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(0, 1)

// RenderMessage draws the commit message in a rounded box. Blank lines are
// shown as-is so the reviewer sees exactly what will be committed.
func RenderMessage(message string, files []string) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Commit message"))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(message))

	if len(files) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render(filesSummary(files)))
	}
	return b.String()
}

func filesSummary(files []string) string {
	const maxShown = 5
	shown := files
	if len(shown) > maxShown {
		shown = shown[:maxShown]
	}
	summary := "Staged: " + strings.Join(shown, ", ")
	if extra := len(files) - len(shown); extra > 0 {
		summary += fmt.Sprintf(" (+%d more)", extra)
	}
	return summary
}
