// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/vnote/internal/note"
)

// NotesLoadedMsg is sent when the note list is (re)loaded.
type NotesLoadedMsg struct {
	Notes   []*note.Note
	FocusID int64 // Note to keep the cursor on; 0 keeps the current row
}

// PinToggledMsg is sent after a note has been pinned or unpinned.
type PinToggledMsg struct {
	ID     int64
	Pinned bool
}

// NoteDeletedMsg is sent after a note has been deleted.
type NoteDeletedMsg struct {
	ID    int64
	Title string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message set with sequence Seq.
type ClearStatusMsg struct {
	Seq int
}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// LoadNotes loads all notes in display order.
func LoadNotes(repo note.Repository, focusID int64) tea.Cmd {
	return func() tea.Msg {
		notes, err := repo.ListNotes(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading notes: %w", err)}
		}
		return NotesLoadedMsg{Notes: notes, FocusID: focusID}
	}
}

// TogglePin flips the pin state of n.
func TogglePin(repo note.Repository, n *note.Note) tea.Cmd {
	id, pinned := n.ID, !n.Pinned
	return func() tea.Msg {
		if err := repo.SetPinned(context.Background(), id, pinned); err != nil {
			return ErrMsg{Err: fmt.Errorf("updating note: %w", err)}
		}
		return PinToggledMsg{ID: id, Pinned: pinned}
	}
}

// DeleteNote removes n and its voice clips.
func DeleteNote(repo note.Repository, n *note.Note) tea.Cmd {
	id, title := n.ID, n.Title
	return func() tea.Msg {
		if err := repo.DeleteNote(context.Background(), id); err != nil {
			return ErrMsg{Err: fmt.Errorf("deleting note: %w", err)}
		}
		return NoteDeletedMsg{ID: id, Title: title}
	}
}

// CopyNote copies the note's title and text to the system clipboard.
func CopyNote(n *note.Note) tea.Cmd {
	text := n.Title
	if body := strings.TrimSpace(n.Text); body != "" {
		text += "\n\n" + body
	}
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy failed: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied note to clipboard"}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg for the status with sequence
// seq. It returns nil for d <= 0.
func ClearStatusAfter(d time.Duration, seq int) tea.Cmd {
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
