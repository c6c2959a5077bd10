package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS notes (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			title       TEXT NOT NULL,
			text        TEXT NOT NULL DEFAULT '',
			is_top      INTEGER NOT NULL DEFAULT 0 CHECK(is_top IN (0, 1)),
			create_time TEXT NOT NULL,
			modify_time TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS voices (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			note_id     INTEGER NOT NULL REFERENCES notes(id),
			path        TEXT NOT NULL,
			duration_ms INTEGER NOT NULL CHECK(duration_ms >= 0),
			create_time TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_notes_order ON notes(is_top, modify_time);
		CREATE INDEX IF NOT EXISTS idx_voices_note ON voices(note_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
