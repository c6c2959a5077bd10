package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-01-15", time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("", time.Local)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("nil location uses local", func(t *testing.T) {
		got, err := ParseDate("2025-03-01", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Location() != time.Local {
			t.Errorf("got location %v, want Local", got.Location())
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("01-15-2025", time.UTC)
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestTruncateToDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	got := TruncateToDay(input)
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	zone := time.FixedZone("UTC+8", 8*3600)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same day different hours",
			a:    time.Date(2025, 1, 15, 0, 5, 0, 0, time.UTC),
			b:    time.Date(2025, 1, 15, 23, 55, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2025, 1, 15, 0, 5, 0, 0, time.UTC),
			b:    time.Date(2025, 1, 14, 23, 55, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "same yearday different year",
			a:    time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "compared in a's location",
			a:    time.Date(2025, 1, 15, 1, 0, 0, 0, zone),
			b:    time.Date(2025, 1, 14, 20, 0, 0, 0, time.UTC), // 04:00 on the 15th in UTC+8
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
