// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/vnote/internal/note"
)

// SQLite implements note.Repository using SQLite.
type SQLite struct {
	db  *sql.DB
	log zerolog.Logger
}

// Option configures a SQLite repository.
type Option func(*SQLite)

// WithLogger sets the logger used for storage events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *SQLite) {
		s.log = l
	}
}

// New creates a new SQLite repository and runs migrations.
func New(path string, opts ...Option) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	s.log.Debug().Str("path", path).Msg("database ready")

	return s, nil
}

// CreateNote adds a new note to the repository.
func (s *SQLite) CreateNote(ctx context.Context, n *note.Note) error {
	query := `
		INSERT INTO notes (title, text, is_top, create_time, modify_time)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		n.Title,
		n.Text,
		n.Pinned,
		formatTime(n.CreatedAt),
		formatTime(n.ModifiedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	n.ID = id
	s.log.Debug().Int64("note_id", id).Msg("note created")

	return nil
}

// GetNote retrieves a note by ID with its voices.
func (s *SQLite) GetNote(ctx context.Context, id int64) (*note.Note, error) {
	query := `
		SELECT id, title, text, is_top, create_time, modify_time
		FROM notes
		WHERE id = ?
	`

	n, err := scanNote(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: #%d", note.ErrNoteNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying note: %w", err)
	}

	voices, err := s.listVoices(ctx, "WHERE note_id = ?", id)
	if err != nil {
		return nil, err
	}
	n.Voices = voices[n.ID]

	return n, nil
}

// ListNotes returns all notes in display order.
func (s *SQLite) ListNotes(ctx context.Context) ([]*note.Note, error) {
	query := `
		SELECT id, title, text, is_top, create_time, modify_time
		FROM notes
		ORDER BY is_top DESC, modify_time DESC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notes []*note.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}

	voices, err := s.listVoices(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		n.Voices = voices[n.ID]
	}

	// Text ordering of RFC3339 strings breaks across time zones.
	note.Sort(notes)

	return notes, nil
}

// SetPinned sticks a note to the top of the list or releases it.
func (s *SQLite) SetPinned(ctx context.Context, id int64, pinned bool) error {
	result, err := s.db.ExecContext(ctx, `UPDATE notes SET is_top = ? WHERE id = ?`, pinned, id)
	if err != nil {
		return fmt.Errorf("updating pin state: %w", err)
	}
	if err := requireRow(result, id); err != nil {
		return err
	}
	s.log.Debug().Int64("note_id", id).Bool("pinned", pinned).Msg("pin state changed")
	return nil
}

// UpdateNote replaces title and text and bumps the modification time.
func (s *SQLite) UpdateNote(ctx context.Context, id int64, title, text string, now time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return note.ErrEmptyTitle
	}

	query := `UPDATE notes SET title = ?, text = ?, modify_time = ? WHERE id = ?`
	result, err := s.db.ExecContext(ctx, query, title, text, formatTime(now), id)
	if err != nil {
		return fmt.Errorf("updating note: %w", err)
	}
	return requireRow(result, id)
}

// DeleteNote removes a note and its voices.
func (s *SQLite) DeleteNote(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM voices WHERE note_id = ?`, id); err != nil {
		return fmt.Errorf("deleting voices: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	if err := requireRow(result, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	s.log.Debug().Int64("note_id", id).Msg("note deleted")
	return nil
}

// AddVoice attaches a clip to a note and bumps the note's modification time
// to the clip's creation time.
func (s *SQLite) AddVoice(ctx context.Context, noteID int64, v *note.Voice) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `UPDATE notes SET modify_time = ? WHERE id = ?`, formatTime(v.CreatedAt), noteID)
	if err != nil {
		return fmt.Errorf("touching note: %w", err)
	}
	if err := requireRow(result, noteID); err != nil {
		return err
	}

	query := `
		INSERT INTO voices (note_id, path, duration_ms, create_time)
		VALUES (?, ?, ?, ?)
	`
	result, err = tx.ExecContext(ctx, query, noteID, v.Path, v.DurationMillis, formatTime(v.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting voice: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	v.ID = id
	v.NoteID = noteID
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// listVoices returns voices grouped by note ID, oldest first.
func (s *SQLite) listVoices(ctx context.Context, where string, args ...any) (map[int64][]*note.Voice, error) {
	query := `SELECT id, note_id, path, duration_ms, create_time FROM voices ` + where + ` ORDER BY create_time, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying voices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	voices := make(map[int64][]*note.Voice)
	for rows.Next() {
		var (
			v         note.Voice
			createdAt string
		)
		if err := rows.Scan(&v.ID, &v.NoteID, &v.Path, &v.DurationMillis, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning voice: %w", err)
		}
		if v.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing voice create time: %w", err)
		}
		voices[v.NoteID] = append(voices[v.NoteID], &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating voices: %w", err)
	}

	return voices, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*note.Note, error) {
	var (
		n          note.Note
		createdAt  string
		modifiedAt string
	)

	if err := row.Scan(&n.ID, &n.Title, &n.Text, &n.Pinned, &createdAt, &modifiedAt); err != nil {
		return nil, err
	}

	var err error
	if n.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing create time: %w", err)
	}
	if n.ModifiedAt, err = parseTime(modifiedAt); err != nil {
		return nil, fmt.Errorf("parsing modify time: %w", err)
	}

	return &n, nil
}

func requireRow(result sql.Result, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: #%d", note.ErrNoteNotFound, id)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// parseTime parses stored timestamps, including rows written by hand in
// SQLite's own "YYYY-MM-DD HH:MM:SS" form (UTC).
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
