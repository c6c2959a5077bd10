package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/vnote/internal/dateutil"
	"github.com/javiermolinar/vnote/internal/note"
)

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Groceries", 20, "Groceries"},
		{"exact", "Groceries", 9, "Groceries"},
		{"ascii", "Groceries for the week", 10, "Groceries…"},
		{"newlines", "line one\nline two", 40, "line one line two"},
		{"wide runes", "会議のメモと録音", 7, "会議の…"},
		{"no limit", "Groceries", 0, "Groceries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateTitle(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("TruncateTitle(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if tt.width > 0 && runewidth.StringWidth(got) > tt.width {
				t.Errorf("width %d exceeds %d", runewidth.StringWidth(got), tt.width)
			}
		})
	}
}

func TestPadTitle(t *testing.T) {
	got := PadTitle("会議", 6)
	if w := runewidth.StringWidth(got); w != 6 {
		t.Errorf("padded width = %d, want 6", w)
	}
}

func TestFormatRow(t *testing.T) {
	DisableColor()
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	f := RowFormatter{
		Relative: dateutil.NewRelativeFormatter(),
		Now:      now,
	}

	plain := &note.Note{ID: 7, Title: "Standup", ModifiedAt: now.Add(-10 * time.Minute)}
	row := f.FormatRow(plain, 12)
	if !strings.Contains(row, "#7   ") || !strings.Contains(row, "14:20") {
		t.Errorf("unexpected row %q", row)
	}
	if strings.Contains(row, pinMarker) || strings.Contains(row, "[") {
		t.Errorf("plain note should have no marker or voices: %q", row)
	}

	pinned := &note.Note{
		ID:         8,
		Title:      "Groceries",
		Pinned:     true,
		ModifiedAt: time.Date(2023, 1, 2, 9, 0, 0, 0, time.UTC),
		Voices: []*note.Voice{
			{DurationMillis: 61_000},
			{DurationMillis: 2_999},
		},
	}
	row = f.FormatRow(pinned, 12)
	for _, want := range []string{pinMarker, "#8", "2023-01-02", "[2 × 01:03]"} {
		if !strings.Contains(row, want) {
			t.Errorf("row %q missing %q", row, want)
		}
	}
}

func TestFormatVoices_UsesConfiguredFormatter(t *testing.T) {
	f := RowFormatter{
		Relative: dateutil.NewRelativeFormatter(),
		Voice:    func(ms int64) string { return dateutil.FormatMillisMin(ms, 5) },
	}
	n := &note.Note{Voices: []*note.Voice{{DurationMillis: 1200}}}

	if got, want := f.FormatVoices(n), "[1 × 00:05]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
