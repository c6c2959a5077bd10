package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/vnote/internal/note"
)

func (a *App) voiceCmd() *cobra.Command {
	var durationMillis int64

	cmd := &cobra.Command{
		Use:   "voice [id] [path]",
		Short: "Attach a voice clip to a note",
		Long: `Attach an existing audio file to a note. The clip length is given in
milliseconds and is shown as mm:ss.

Example:
  vnote voice 3 ~/recordings/groceries.m4a --duration-ms 83500`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			v, err := note.NewVoice(args[1], durationMillis, a.now())
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			if err := a.repo.AddVoice(context.Background(), id, v); err != nil {
				return fmt.Errorf("adding voice: %w", err)
			}
			a.log.Info().Int64("note_id", id).Int64("voice_id", v.ID).Msg("voice added")

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added voice #%d to note #%d (%s)\n",
				v.ID, id, a.config.FormatVoice(v.DurationMillis))
			return nil
		},
	}

	cmd.Flags().Int64Var(&durationMillis, "duration-ms", 0, "Clip length in milliseconds (required)")
	_ = cmd.MarkFlagRequired("duration-ms")

	return cmd
}
