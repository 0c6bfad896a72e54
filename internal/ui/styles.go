package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the lipgloss styles for terminal output.
type Styles struct {
	enabled bool

	// Status styles
	Clear          lipgloss.Style
	PartiallyClear lipgloss.Style
	Unclear        lipgloss.Style

	// Detail styles
	Warning   lipgloss.Style
	Highlight lipgloss.Style
	Positive  lipgloss.Style
	Negative  lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subtle    lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconClear          string
	IconPartiallyClear string
	IconUnclear        string
	IconWarning        string
}

// NewStyles creates a Styles instance. When enabled is false, styles
// return text unchanged (for non-TTY output).
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Clear = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))          // Green
		s.PartiallyClear = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
		s.Unclear = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))         // Red

		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		s.Highlight = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		s.Positive = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // pushes toward unclear
		s.Negative = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // pushes toward clear

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		s.Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.IconClear = "✓"          // check mark
		s.IconPartiallyClear = "⚠" // warning sign
		s.IconUnclear = "✗"        // ballot x
		s.IconWarning = "⚠"
	} else {
		s.Clear = lipgloss.NewStyle()
		s.PartiallyClear = lipgloss.NewStyle()
		s.Unclear = lipgloss.NewStyle()

		s.Warning = lipgloss.NewStyle()
		s.Highlight = lipgloss.NewStyle()
		s.Positive = lipgloss.NewStyle()
		s.Negative = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subtle = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.IconClear = "OK:"
		s.IconPartiallyClear = "WARN:"
		s.IconUnclear = "FAIL:"
		s.IconWarning = "WARN:"
	}

	return s
}

// Enabled returns whether styling is enabled.
func (s *Styles) Enabled() bool {
	return s.enabled
}
