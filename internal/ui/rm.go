package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"delete"},
		Short:   "Delete a note and its voice clips",
		Long: `Delete a note. Its voice clip records are removed too; the audio
files on disk are left alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			if err := a.repo.DeleteNote(context.Background(), id); err != nil {
				return fmt.Errorf("deleting note: %w", err)
			}
			a.log.Info().Int64("note_id", id).Msg("note deleted")

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted note #%d\n", id)
			return nil
		},
	}
}
