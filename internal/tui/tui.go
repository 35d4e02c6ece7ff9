package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

const listHeight = 14

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(ColorSelect)
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

type MenuAction int

const (
	CommitThis MenuAction = iota
	CopyToClipboard
	EditAnswers
	Cancel
)

func (a MenuAction) String() string {
	switch a {
	case CommitThis:
		return "commit"
	case CopyToClipboard:
		return "copy"
	case EditAnswers:
		return "edit"
	default:
		return "cancel"
	}
}

type item struct {
	title  string
	action MenuAction
}

func (i item) FilterValue() string { return i.title }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(i.title))
}

type model struct {
	list     list.Model
	message  string
	files    []string
	choice   MenuAction
	quitting bool
}

func newModel(message string, files []string) model {
	items := []list.Item{
		item{title: "✅ Commit this", action: CommitThis},
		item{title: "📋 Copy to clipboard and exit", action: CopyToClipboard},
		item{title: "✏️  Edit answers", action: EditAnswers},
		item{title: "❌ Cancel", action: Cancel},
	}

	const defaultWidth = 40

	l := list.New(items, itemDelegate{}, defaultWidth, listHeight)
	l.Title = "Do you want to proceed with this commit message?"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return model{list: l, message: message, files: files, choice: Cancel}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.choice = Cancel
			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(item)
			if ok {
				m.choice = i.action
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return quitTextStyle.Render("Exiting...")
	}
	return fmt.Sprintf("%s\n\n%s", RenderMessage(m.message, m.files), m.list.View())
}

// Review shows the message and returns the action picked by the user.
func Review(message string, files []string) (MenuAction, error) {
	p := tea.NewProgram(newModel(message, files))

	finalModel, err := p.Run()
	if err != nil {
		return Cancel, fmt.Errorf("running review menu: %w", err)
	}

	if m, ok := finalModel.(model); ok {
		return m.choice, nil
	}
	return Cancel, nil
}

func WriteClipboard(content string) error {
	log.Debug().Int("bytes", len(content)).Msg("Copying to clipboard")
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
