package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode determines how output should be formatted.
type OutputMode int

const (
	// OutputModeInteractive enables colors and progress display.
	OutputModeInteractive OutputMode = iota
	// OutputModePlain disables colors and progress (piped output).
	OutputModePlain
	// OutputModeData suppresses decoration entirely (json, csv).
	OutputModeData
)

// UI is a unified handle for terminal output with TTY detection.
type UI struct {
	Mode      OutputMode
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles
}

// New creates a UI with automatic TTY detection. format is the output
// format flag; any machine-readable format forces data mode.
func New(w, errW io.Writer, format string) *UI {
	mode := detectMode(w, format)
	return &UI{
		Mode:      mode,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == OutputModeInteractive),
	}
}

func detectMode(w io.Writer, format string) OutputMode {
	switch format {
	case "json", "csv":
		return OutputModeData
	}

	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			return OutputModeInteractive
		}
	}
	return OutputModePlain
}

// IsInteractive reports whether the output is a terminal.
func (ui *UI) IsInteractive() bool {
	return ui.Mode == OutputModeInteractive
}
