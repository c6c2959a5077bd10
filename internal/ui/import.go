package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/vnote/internal/db"
	"github.com/javiermolinar/vnote/internal/note"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [database_path]",
		Short: "Import notes from another database",
		Long: `Import all notes and their voice clips from another vnote database into
the current one. Pin state and timestamps are kept.

Notes are copied one at a time. If the import fails partway, the notes
already copied stay in the current database and the count is reported.

Example:
  vnote import /path/to/other.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			destPath, err := resolvePath(a.config.Storage.DBPath)
			if err != nil {
				return err
			}

			if sourcePath == destPath {
				return fmt.Errorf("source database matches current database")
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source database does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking source database: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source database path is a directory: %s", sourcePath)
			}

			count, err := importNotes(context.Background(), a.repo, sourcePath)
			if err != nil {
				if count > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notes from %s before the error\n", count, sourcePath)
				}
				a.log.Error().Err(err).Int("count", count).Str("source", sourcePath).Msg("import failed")
				return err
			}
			a.log.Info().Int("count", count).Str("source", sourcePath).Msg("notes imported")

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notes from %s\n", count, sourcePath)
			return nil
		},
	}

	return cmd
}

func importNotes(ctx context.Context, dest note.Repository, sourcePath string) (int, error) {
	sourceRepo, err := db.New(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("opening source database: %w", err)
	}
	defer func() { _ = sourceRepo.Close() }()

	notes, err := sourceRepo.ListNotes(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing source notes: %w", err)
	}

	imported := 0
	stopped := func(err error) (int, error) {
		return imported, fmt.Errorf("import stopped after %d of %d notes: %w", imported, len(notes), err)
	}
	for _, src := range notes {
		n := &note.Note{
			Title:      src.Title,
			Text:       src.Text,
			Pinned:     src.Pinned,
			CreatedAt:  src.CreatedAt,
			ModifiedAt: src.ModifiedAt,
		}
		if err := dest.CreateNote(ctx, n); err != nil {
			return stopped(fmt.Errorf("importing note %q: %w", src.Title, err))
		}

		for _, sv := range src.Voices {
			v := &note.Voice{
				Path:           sv.Path,
				DurationMillis: sv.DurationMillis,
				CreatedAt:      sv.CreatedAt,
			}
			if err := dest.AddVoice(ctx, n.ID, v); err != nil {
				return stopped(fmt.Errorf("importing voice %q: %w", sv.Path, err))
			}
		}

		// Adding voices touches the note; restore the source modification time.
		if len(src.Voices) > 0 {
			if err := dest.UpdateNote(ctx, n.ID, src.Title, src.Text, src.ModifiedAt); err != nil {
				return stopped(fmt.Errorf("restoring note %q: %w", src.Title, err))
			}
		}

		imported++
	}

	return imported, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
