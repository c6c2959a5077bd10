package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/vnote/internal/config"
	"github.com/javiermolinar/vnote/internal/db"
	"github.com/javiermolinar/vnote/internal/logging"
	"github.com/javiermolinar/vnote/internal/note"
	"github.com/javiermolinar/vnote/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo       note.Repository
	ownsRepo   bool // repo was opened by the app and must be closed by it
	config     *config.Config
	configPath string // where "config --edit" saves
	root       *cobra.Command
	debug      bool // Enable debug logging
	baseLog    zerolog.Logger
	log        zerolog.Logger // baseLog tagged with the ui component
	closeLog   func() error
	now        func() time.Time
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path.
func NewApp(repo note.Repository, cfg *config.Config) *App {
	a := &App{
		repo:       repo,
		config:     cfg,
		configPath: config.DefaultConfigPath(),
		baseLog:    zerolog.Nop(),
		log:        zerolog.Nop(),
		closeLog:   func() error { return nil },
		now:        time.Now,
	}

	a.root = &cobra.Command{
		Use:   "vnote",
		Short: "A terminal voice-note organizer",
		Long: `vnote keeps text notes and their voice clips in a local database.

Notes are listed pinned first, then most recently modified, with
relative timestamps and clip lengths.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			l, closeFn, err := logging.Open(a.debug, logging.DebugLogPath)
			if err != nil {
				return err
			}
			a.baseLog, a.closeLog = l, closeFn
			a.log = logging.Component(l, "ui")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.Run(a.repo, a.config, logging.Component(a.baseLog, "tui"))
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+logging.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.pinCmd(true))
	a.root.AddCommand(a.pinCmd(false))
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.rmCmd())
	a.root.AddCommand(a.voiceCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vnote %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if the app opened it, and the debug log.
func (a *App) Close() error {
	var errs []error
	if a.ownsRepo && a.repo != nil {
		errs = append(errs, a.repo.Close())
	}
	errs = append(errs, a.closeLog())
	return errors.Join(errs...)
}

// ensureRepo opens the configured database on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	repo, err := db.New(path, db.WithLogger(logging.Component(a.baseLog, "db")))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	a.ownsRepo = true
	return nil
}

func parseNoteID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note ID: %q", s)
	}
	return id, nil
}
