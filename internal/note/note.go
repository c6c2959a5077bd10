// Package note defines the core domain types for vnote.
package note

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyVoicePath   = errors.New("voice path cannot be empty")
	ErrNegativeDuration = errors.New("voice duration cannot be negative")
)

// Domain errors.
var (
	ErrNoteNotFound = errors.New("note not found")
)

// Note is a text note with optional voice clips attached.
type Note struct {
	ID         int64
	Title      string
	Text       string
	Pinned     bool // sticks to the top of the list
	CreatedAt  time.Time
	ModifiedAt time.Time
	Voices     []*Voice
}

// Voice is a recorded clip attached to a note.
type Voice struct {
	ID             int64
	NoteID         int64
	Path           string
	DurationMillis int64
	CreatedAt      time.Time
}

// New creates a new unpinned Note with validation.
// Both timestamps are set to now.
func New(title, text string, now time.Time) (*Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Note{
		Title:      title,
		Text:       text,
		CreatedAt:  now,
		ModifiedAt: now,
	}, nil
}

// NewVoice creates a voice clip reference with validation.
func NewVoice(path string, durationMillis int64, now time.Time) (*Voice, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrEmptyVoicePath
	}
	if durationMillis < 0 {
		return nil, ErrNegativeDuration
	}
	return &Voice{
		Path:           path,
		DurationMillis: durationMillis,
		CreatedAt:      now,
	}, nil
}

// HasVoice returns true if the note has at least one clip.
func (n *Note) HasVoice() bool {
	return len(n.Voices) > 0
}

// TotalVoiceMillis returns the summed duration of all clips.
func (n *Note) TotalVoiceMillis() int64 {
	var total int64
	for _, v := range n.Voices {
		total += v.DurationMillis
	}
	return total
}

// Summary returns the first non-empty line of the note text.
func (n *Note) Summary() string {
	for _, line := range strings.Split(n.Text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
