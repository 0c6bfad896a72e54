package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressController manages the bubbletea program for batch progress.
type ProgressController struct {
	ui      *UI
	program *tea.Program
}

// StartProgress starts the progress display if in interactive mode.
// Returns nil otherwise; a nil controller is safe to call.
func (ui *UI) StartProgress() *ProgressController {
	if ui.Mode != OutputModeInteractive {
		return nil
	}

	m := NewModel()
	p := tea.NewProgram(m, tea.WithOutput(ui.ErrWriter))

	ctrl := &ProgressController{
		ui:      ui,
		program: p,
	}

	go func() {
		if _, err := p.Run(); err != nil {
			_ = err
		}
	}()

	return ctrl
}

// SetStage updates the current stage.
func (pc *ProgressController) SetStage(stage Stage) {
	if pc != nil && pc.program != nil {
		pc.program.Send(StageMsg(stage))
	}
}

// SetStatementCount sets the total number of statements to analyze.
func (pc *ProgressController) SetStatementCount(count int) {
	if pc != nil && pc.program != nil {
		pc.program.Send(StatementCountMsg(count))
	}
}

// StatementDone indicates one statement has been analyzed.
func (pc *ProgressController) StatementDone() {
	if pc != nil && pc.program != nil {
		pc.program.Send(StatementDoneMsg{})
	}
}

// Done signals that all work is complete.
func (pc *ProgressController) Done(err error) {
	if pc != nil && pc.program != nil {
		pc.program.Send(DoneMsg{Err: err})
		pc.program.Wait()
	}
}
