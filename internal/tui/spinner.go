package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner shows progress for a long-running operation. Start must be
// called before Update or Stop.
type Spinner interface {
	// Start begins displaying the spinner with the given message
	Start(message string)
	// Update replaces the message next to the spinner
	Update(message string)
	// Stop clears the spinner from the terminal
	Stop()
}

// NewSpinner creates the appropriate spinner for the environment:
// an animated one for TTYs, a plain line printer otherwise.
func NewSpinner(splog *Splog) Spinner {
	if IsTTY() {
		return newTTYSpinner(splog)
	}
	return &simpleSpinner{splog: splog}
}

// simpleSpinner prints each message once, for non-TTY environments
type simpleSpinner struct {
	splog *Splog
}

func (s *simpleSpinner) Start(message string) {
	s.splog.Info(message)
}

func (s *simpleSpinner) Update(message string) {
	s.splog.Info(message)
}

func (s *simpleSpinner) Stop() {}

// Bubbletea messages for the spinner UI
type spinnerTextMsg struct {
	message string
}

type spinnerDoneMsg struct{}

// spinnerModel is the bubbletea model for the animated spinner
type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case spinnerTextMsg:
		m.message = msg.message
		return m, nil

	case spinnerDoneMsg:
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		// Render nothing so quitting clears the spinner line
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// ttySpinner runs the bubbletea program in the background and feeds it
// messages. Console logging is silenced while the spinner owns the
// terminal.
type ttySpinner struct {
	splog   *Splog
	program *tea.Program
	done    chan struct{}
}

func newTTYSpinner(splog *Splog) *ttySpinner {
	return &ttySpinner{
		splog: splog,
		done:  make(chan struct{}),
	}
}

func (s *ttySpinner) Start(message string) {
	s.splog.SetQuiet(true)

	s.program = tea.NewProgram(newSpinnerModel(message))
	go func() {
		_, _ = s.program.Run()
		close(s.done)
	}()
}

func (s *ttySpinner) Update(message string) {
	if s.program == nil {
		return
	}
	s.program.Send(spinnerTextMsg{message: message})
}

func (s *ttySpinner) Stop() {
	if s.program == nil {
		return
	}
	s.program.Send(spinnerDoneMsg{})
	<-s.done
	s.splog.SetQuiet(false)
}
