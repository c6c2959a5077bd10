package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// pinCmd builds "pin" or "unpin". Pinning never changes a note's
// modification time, so the note keeps its place within its group.
func (a *App) pinCmd(pinned bool) *cobra.Command {
	use, short, verb := "pin", "Pin a note on top of the list", "Pinned"
	if !pinned {
		use, short, verb = "unpin", "Unpin a note", "Unpinned"
	}

	return &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			if err := a.repo.SetPinned(context.Background(), id, pinned); err != nil {
				return fmt.Errorf("updating note: %w", err)
			}
			a.log.Info().Int64("note_id", id).Bool("pinned", pinned).Msg("pin changed")

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s note #%d\n", verb, id)
			return nil
		},
	}
}
