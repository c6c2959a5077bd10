package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/vnote/internal/dateutil"
	"github.com/javiermolinar/vnote/internal/note"
)

func (a *App) listCmd() *cobra.Command {
	var (
		search     string
		pinnedOnly bool
		since      string
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Long: `List notes, pinned first, then most recently modified.

Each row shows the note ID, its title, when it was last modified and the
total length of its voice clips.`,
		Example: `  vnote list
  vnote list --pinned
  vnote list --search groceries
  vnote list --since=2025-01-15`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			notes, err := a.repo.ListNotes(context.Background())
			if err != nil {
				return fmt.Errorf("listing notes: %w", err)
			}

			if pinnedOnly {
				notes = note.Pinned(notes)
			}
			if since != "" {
				from, err := dateutil.ParseDate(since, a.now().Location())
				if err != nil {
					return err
				}
				notes = modifiedSince(notes, from)
			}
			notes = note.Filter(notes, search)

			out := cmd.OutOrStdout()
			if len(notes) == 0 {
				_, _ = fmt.Fprintln(out, "No notes found.")
				return nil
			}

			a.rowFormatter().PrintRows(out, notes)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Fuzzy filter on title and text")
	cmd.Flags().BoolVar(&pinnedOnly, "pinned", false, "Only show pinned notes")
	cmd.Flags().StringVar(&since, "since", "", "Only show notes modified on or after this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func modifiedSince(notes []*note.Note, from time.Time) []*note.Note {
	var out []*note.Note
	for _, n := range notes {
		if !n.ModifiedAt.Before(from) {
			out = append(out, n)
		}
	}
	return out
}
