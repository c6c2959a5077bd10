package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) editCmd() *cobra.Command {
	var (
		title string
		text  string
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a note's title or text",
		Long: `Change a note's title, text or both. Editing moves the note to the
top of its group.

Example:
  vnote edit 3 --title "Groceries (Sat)"
  vnote edit 3 --text "milk, eggs, bread"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}
			titleSet := cmd.Flags().Changed("title")
			textSet := cmd.Flags().Changed("text")
			if !titleSet && !textSet {
				return errors.New("nothing to edit: pass --title and/or --text")
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			n, err := a.repo.GetNote(ctx, id)
			if err != nil {
				return err
			}
			if titleSet {
				n.Title = title
			}
			if textSet {
				n.Text = text
			}

			if err := a.repo.UpdateNote(ctx, id, n.Title, n.Text, a.now()); err != nil {
				return fmt.Errorf("updating note: %w", err)
			}
			a.log.Info().Int64("note_id", id).Msg("note edited")

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated note #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&text, "text", "", "New body")

	return cmd
}
