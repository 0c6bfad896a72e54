package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stage represents the current stage of a batch run.
type Stage int

const (
	StageInitialize Stage = iota
	StageAnalyze
	StageDone
)

// Message types for updating the model.
type (
	StageMsg          Stage
	StatementCountMsg int
	StatementDoneMsg  struct{}
	DoneMsg           struct{ Err error }
)

// Model is the bubbletea model for batch progress display.
type Model struct {
	stage          Stage
	spinner        spinner.Model
	progress       progress.Model
	statementCount int
	statementsDone int
	width          int
	quitting       bool
	err            error
}

// NewModel creates a new progress model.
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := progress.New(progress.WithDefaultGradient())

	return Model{
		stage:    StageInitialize,
		spinner:  s,
		progress: p,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 4
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StageMsg:
		m.stage = Stage(msg)
		return m, nil

	case StatementCountMsg:
		m.statementCount = int(msg)
		return m, nil

	case StatementDoneMsg:
		m.statementsDone++
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	switch m.stage {
	case StageInitialize:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Training classifier...")

	case StageAnalyze:
		if m.statementCount > 0 {
			pct := float64(m.statementsDone) / float64(m.statementCount)
			sb.WriteString(m.progress.ViewAs(pct))
			sb.WriteString("\n")
		}
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Analyzing statements...")
	}

	sb.WriteString("\n")
	return sb.String()
}
