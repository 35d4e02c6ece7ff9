package prompt

import (
	"czjira/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme matches the review menu colours.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(tui.ColorAccent).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(tui.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(tui.ColorSelect)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(tui.ColorSelect)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(tui.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(tui.ColorFg).Background(tui.ColorAccent).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(tui.ColorDim).Padding(0, 1)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(tui.ColorWarn)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(tui.ColorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(tui.ColorAccent)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(tui.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(tui.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(tui.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(tui.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(tui.ColorDim)

	return t
}
