package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/vnote/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Header
	TitleStyle  lipgloss.Style
	HeaderStyle lipgloss.Style

	// Note rows
	RowStyle         lipgloss.Style
	RowSelectedStyle lipgloss.Style
	RowPinnedStyle   lipgloss.Style
	PinMarkerStyle   lipgloss.Style
	TimeStyle        lipgloss.Style
	VoiceStyle       lipgloss.Style
	EmptyStyle       lipgloss.Style
	PreviewStyle     lipgloss.Style

	// Filter prompt
	FilterPromptStyle lipgloss.Style
	FilterTextStyle   lipgloss.Style

	// Footer
	StatusStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style
	ConfirmStyle lipgloss.Style
	HelpStyle    lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	return &Styles{
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextOnAccent).
			Background(p.Accent).
			Padding(0, 1),
		HeaderStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted),

		RowStyle: lipgloss.NewStyle().
			Foreground(p.Fg),
		RowSelectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextOnSelection).
			Background(p.BgSelection),
		RowPinnedStyle: lipgloss.NewStyle().
			Foreground(p.Fg).
			Background(p.PinnedBg),
		PinMarkerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Pinned),
		TimeStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted),
		VoiceStyle: lipgloss.NewStyle().
			Foreground(p.Voice),
		EmptyStyle: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.FgMuted),
		PreviewStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted),

		FilterPromptStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		FilterTextStyle: lipgloss.NewStyle().
			Foreground(p.Fg),

		StatusStyle: lipgloss.NewStyle().
			Foreground(p.Accent),
		ErrorStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Warning),
		ConfirmStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextOnWarning).
			Background(p.Warning).
			Padding(0, 1),
		HelpStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted),
	}
}
