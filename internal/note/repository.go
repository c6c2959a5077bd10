package note

import (
	"context"
	"time"
)

// Repository defines the storage interface for notes.
type Repository interface {
	// CreateNote adds a new note and sets its ID.
	CreateNote(ctx context.Context, n *Note) error

	// GetNote retrieves a note by ID with its voices attached.
	// Returns ErrNoteNotFound if no such note exists.
	GetNote(ctx context.Context, id int64) (*Note, error)

	// ListNotes returns all notes in display order with their voices attached.
	ListNotes(ctx context.Context) ([]*Note, error)

	// SetPinned sticks a note to the top of the list or releases it.
	// The note's modification time is left untouched.
	SetPinned(ctx context.Context, id int64, pinned bool) error

	// UpdateNote replaces a note's title and text and bumps its modification time.
	UpdateNote(ctx context.Context, id int64, title, text string, now time.Time) error

	// DeleteNote removes a note and its voices.
	DeleteNote(ctx context.Context, id int64) error

	// AddVoice attaches a clip to a note and bumps the note's modification time.
	AddVoice(ctx context.Context, noteID int64, v *Voice) error

	// Close releases any resources held by the repository.
	Close() error
}
