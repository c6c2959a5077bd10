// Package tui provides the terminal user interface for vnote.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/vnote/internal/config"
	"github.com/javiermolinar/vnote/internal/dateutil"
	"github.com/javiermolinar/vnote/internal/note"
	"github.com/javiermolinar/vnote/internal/tui/commands"
	"github.com/javiermolinar/vnote/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter      // Typing a fuzzy filter query
	ModeConfirmDelete
)

func (m Mode) String() string {
	switch m {
	case ModeFilter:
		return "filter"
	case ModeConfirmDelete:
		return "confirm_delete"
	default:
		return "normal"
	}
}

// defaultStatusTimeout is how long status messages stay in the footer.
const defaultStatusTimeout = 3 * time.Second

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   note.Repository
	config *config.Config
	log    zerolog.Logger

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Formatting
	relative *dateutil.RelativeFormatter
	nowFunc  func() time.Time

	// State
	notes   []*note.Note // All notes in display order
	visible []*note.Note // Notes matching the filter query
	cursor  int          // Index into visible
	offset  int          // First visible row when scrolling
	mode    Mode
	loading bool

	// Components
	filter textinput.Model
	query  string // Applied filter query

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg     string // Temporary status/error message
	isError       bool
	statusSeq     int           // Bumped on every status change
	statusTimeout time.Duration // 0 keeps messages until the next one
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNow sets the clock used for relative timestamps.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.nowFunc = now
	}
}

// WithLogger sets the debug logger.
func WithLogger(l zerolog.Logger) ModelOption {
	return func(m *Model) {
		m.log = l
	}
}

// New creates a new TUI model.
func New(repo note.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}

	// Create styles from theme
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter notes"
	ti.CharLimit = 128
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterTextStyle
	ti.PlaceholderStyle = styles.HelpStyle

	m := &Model{
		repo:     repo,
		config:   cfg,
		log:      zerolog.Nop(),
		theme:    t,
		styles:   styles,
		relative: cfg.RelativeFormatter(),
		nowFunc:  time.Now,
		mode:     ModeNormal,
		loading:  true,
		filter:   ti,

		statusTimeout: defaultStatusTimeout,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadNotes(m.repo, 0)
}

// Selected returns the note under the cursor, or nil.
func (m Model) Selected() *note.Note {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.visible[m.cursor]
}

// Run starts the TUI.
func Run(repo note.Repository, cfg *config.Config, log zerolog.Logger) error {
	m := New(repo, cfg, WithLogger(log))
	m.log.Debug().Str("theme", m.theme.Name).Msg("tui start")

	p := tea.NewProgram(*m, tea.WithAltScreen())
	_, err := p.Run()

	m.log.Debug().Err(err).Msg("tui exit")
	return err
}
