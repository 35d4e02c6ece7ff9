package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"czjira/internal/utils"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

// Spinner shows progress while git runs commit hooks. Outside a terminal it
// prints a single status line instead.
type Spinner struct {
	program   *tea.Program
	model     spinnerModel
	doneChan  chan struct{}
	startTime time.Time
	isTTY     bool
	out       io.Writer
}

type spinnerModel struct {
	spinner  spinner.Model
	quitting bool
	state    string
	duration time.Duration
	text     string
}

func NewSpinner() *Spinner {
	return newSpinner(utils.IsTTY(), os.Stdout)
}

func newSpinner(isTTY bool, out io.Writer) *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	return &Spinner{
		model: spinnerModel{
			spinner: s,
			state:   "idle",
		},
		doneChan: make(chan struct{}),
		isTTY:    isTTY,
		out:      out,
	}
}

func (s *Spinner) Start(message string) {
	s.model.state = "running"
	s.model.text = message
	s.startTime = time.Now()

	if !s.isTTY {
		fmt.Fprintf(s.out, "⏺ %s\n", message)
		return
	}

	s.program = tea.NewProgram(s.model, tea.WithOutput(s.out))
	go func() {
		if _, err := s.program.Run(); err != nil {
			log.Error().Err(err).Msg("Error running spinner")
		}
		close(s.doneChan)
	}()
}

func (s *Spinner) Stop() {
	if !s.isTTY || s.program == nil {
		return
	}
	s.program.Send(doneMsg{duration: time.Since(s.startTime)})
	<-s.doneChan
}

type doneMsg struct {
	duration time.Duration
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// git keeps running; only the animation can be dismissed
		if msg.String() == "ctrl+c" {
			m.quitting = true
			m.state = "quitting"
			return m, tea.Quit
		}
		return m, nil
	case doneMsg:
		m.state = "done"
		m.duration = msg.duration
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	switch m.state {
	case "quitting":
		return "\n"
	case "done":
		return fmt.Sprintf("   Done! Took %.2f seconds\n", m.duration.Seconds())
	default:
		return fmt.Sprintf("   %s %s\n", m.spinner.View(), m.text)
	}
}
