package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/vnote/internal/note"
)

func (a *App) addCmd() *cobra.Command {
	var (
		text   string
		pinned bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new note",
		Long: `Add a new note.

Example:
  vnote add "Groceries" --text "milk, eggs"
  vnote add "Standup" --pin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			n, err := note.New(args[0], text, a.now())
			if err != nil {
				return err
			}
			n.Pinned = pinned

			if err := a.repo.CreateNote(context.Background(), n); err != nil {
				return fmt.Errorf("creating note: %w", err)
			}
			a.log.Info().Int64("note_id", n.ID).Msg("note added")

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created note #%d: %s\n", n.ID, n.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Note body")
	cmd.Flags().BoolVar(&pinned, "pin", false, "Pin the note on top")

	return cmd
}
