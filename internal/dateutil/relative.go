package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	layoutTimeOfDay = "15:04"
	layoutMonthDay  = "01-02"
	layoutFullDate  = "2006-01-02"
)

// ErrUnknownStyle is returned by ParseStyle for unrecognized style names.
var ErrUnknownStyle = errors.New("relative style must be 'compact' or 'detailed'")

// Style selects how recent timestamps are rendered.
type Style int

const (
	// StyleCompact renders the first minute as "1 min ago" and the rest of
	// the first hour as a time of day.
	StyleCompact Style = iota
	// StyleDetailed counts minutes through the first hour, shows a time of
	// day for the rest of today and names yesterday.
	StyleDetailed
)

// ParseStyle parses a style name. Empty means compact.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compact":
		return StyleCompact, nil
	case "detailed":
		return StyleDetailed, nil
	default:
		return StyleCompact, fmt.Errorf("%w, got %q", ErrUnknownStyle, s)
	}
}

func (s Style) String() string {
	switch s {
	case StyleCompact:
		return "compact"
	case StyleDetailed:
		return "detailed"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// RelativeFormatter renders a timestamp relative to a reference "now".
// It has no mutable state; one formatter can be shared across goroutines.
type RelativeFormatter struct {
	style     Style
	tag       language.Tag
	oneMinAgo string
	yesterday string
}

// RelativeOption configures a RelativeFormatter.
type RelativeOption func(*RelativeFormatter)

// WithStyle sets the rendering style.
func WithStyle(s Style) RelativeOption {
	return func(f *RelativeFormatter) {
		f.style = s
	}
}

// WithLanguage sets the language used for the phrases.
func WithLanguage(tag language.Tag) RelativeOption {
	return func(f *RelativeFormatter) {
		f.tag = tag
	}
}

// NewRelativeFormatter creates a formatter. Defaults to the compact style in English.
func NewRelativeFormatter(opts ...RelativeOption) *RelativeFormatter {
	f := &RelativeFormatter{style: StyleCompact, tag: language.English}
	for _, opt := range opts {
		opt(f)
	}
	p := newPrinter(f.tag)
	f.oneMinAgo = p.Sprintf(phraseOneMinAgo)
	f.yesterday = p.Sprintf(phraseYesterday)
	return f
}

var defaultRelative = NewRelativeFormatter()

// FormatRelative formats t relative to now with the default English compact formatter.
func FormatRelative(t, now time.Time) string {
	return defaultRelative.Format(t, now)
}

// Style returns the formatter's style.
func (f *RelativeFormatter) Style() Style {
	return f.style
}

// Format renders t relative to now. Clock fields are taken in now's location.
// Timestamps after now are treated as zero elapsed time.
func (f *RelativeFormatter) Format(t, now time.Time) string {
	t = t.In(now.Location())
	elapsed := now.Sub(t)
	if elapsed < 0 {
		elapsed = 0
	}

	if f.style == StyleDetailed {
		return f.formatDetailed(t, now, elapsed)
	}

	switch {
	case elapsed < time.Minute:
		return f.oneMinAgo
	case elapsed < time.Hour:
		return t.Format(layoutTimeOfDay)
	default:
		return formatDate(t, now)
	}
}

func (f *RelativeFormatter) formatDetailed(t, now time.Time, elapsed time.Duration) string {
	switch {
	case elapsed < 2*time.Minute:
		return f.oneMinAgo
	case elapsed < time.Hour:
		return newPrinter(f.tag).Sprintf(phraseMinsAgo, int(elapsed/time.Minute))
	case SameDay(now, t):
		return t.Format(layoutTimeOfDay)
	case SameDay(now.AddDate(0, 0, -1), t):
		return f.yesterday + " " + t.Format(layoutTimeOfDay)
	default:
		return formatDate(t, now)
	}
}

func formatDate(t, now time.Time) string {
	if t.Year() == now.Year() {
		return t.Format(layoutMonthDay)
	}
	return t.Format(layoutFullDate)
}
