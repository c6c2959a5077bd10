package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/vnote/internal/note"
)

const timestampLayout = "2006-01-02 15:04"

func (a *App) showCmd() *cobra.Command {
	var (
		find    string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a note with its voice clips",
		Long: `Display a note's text, timestamps and voice clips.

With --find, also report how many times a keyword occurs in the text.`,
		Example: `  vnote show 3
  vnote show 3 --find milk`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			n, err := a.repo.GetNote(context.Background(), id)
			if err != nil {
				return err
			}

			a.printNote(cmd, n, find)
			return nil
		},
	}

	cmd.Flags().StringVar(&find, "find", "", "Count case-insensitive occurrences of a keyword")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func (a *App) printNote(cmd *cobra.Command, n *note.Note, find string) {
	out := cmd.OutOrStdout()
	rf := a.rowFormatter()
	loc := rf.Now.Location()

	title := n.Title
	if n.Pinned {
		title = formatPinned(pinMarker) + " " + title
	}
	_, _ = fmt.Fprintf(out, "%s  %s\n", formatHeader(fmt.Sprintf("#%d", n.ID)), title)
	_, _ = fmt.Fprintln(out, formatMuted(fmt.Sprintf("created %s · modified %s (%s)",
		n.CreatedAt.In(loc).Format(timestampLayout),
		n.ModifiedAt.In(loc).Format(timestampLayout),
		rf.Relative.Format(n.ModifiedAt, rf.Now),
	)))

	if text := strings.TrimSpace(n.Text); text != "" {
		_, _ = fmt.Fprintf(out, "\n%s\n", text)
	}

	if n.HasVoice() {
		_, _ = fmt.Fprintf(out, "\n%s %s\n", formatHeader("Voices"), formatVoice(rf.FormatVoices(n)))
		for _, v := range n.Voices {
			_, _ = fmt.Fprintf(out, "  %s  %s\n", formatVoice(rf.voice(v.DurationMillis)), v.Path)
		}
	}

	if find != "" {
		_, _ = fmt.Fprintf(out, "\n%d match(es) for %q\n", note.CountMatches(n.Title+"\n"+n.Text, find), find)
	}
}
