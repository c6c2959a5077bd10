package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/vnote/internal/dateutil"
	"github.com/javiermolinar/vnote/internal/note"
)

const (
	pinMarker   = "▲"
	noPinMarker = " "
	ellipsis    = "…"
)

// RowFormatter renders notes as list rows.
type RowFormatter struct {
	Relative      *dateutil.RelativeFormatter
	Voice         func(ms int64) string
	MaxTitleWidth int // display columns; 0 = auto
	Now           time.Time
}

// CalcMaxTitleWidth returns the title column width for the terminal.
func (f RowFormatter) CalcMaxTitleWidth(defaultWidth int) int {
	if f.MaxTitleWidth > 0 {
		return f.MaxTitleWidth
	}
	// Base: "  ▲ #NNNN  " plus "  yyyy-MM-dd  [N × mm:ss]" = ~40 columns
	available := termWidth() - 40
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// TruncateTitle shortens s to at most width display columns.
func TruncateTitle(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// PadTitle right-pads s with spaces to width display columns.
func PadTitle(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// FormatRow returns a single list row for n.
func (f RowFormatter) FormatRow(n *note.Note, titleWidth int) string {
	marker := noPinMarker
	if n.Pinned {
		marker = formatPinned(pinMarker)
	}

	title := PadTitle(TruncateTitle(n.Title, titleWidth), titleWidth)
	when := formatMuted(f.Relative.Format(n.ModifiedAt, f.Now))

	row := fmt.Sprintf("  %s #%-4d %s  %s", marker, n.ID, title, when)
	if n.HasVoice() {
		row += "  " + formatVoice(f.FormatVoices(n))
	}
	return row
}

// FormatVoices summarizes a note's clips as "[N × mm:ss]".
func (f RowFormatter) FormatVoices(n *note.Note) string {
	return fmt.Sprintf("[%d × %s]", len(n.Voices), f.voice(n.TotalVoiceMillis()))
}

func (f RowFormatter) voice(ms int64) string {
	if f.Voice == nil {
		return dateutil.FormatMillis(ms)
	}
	return f.Voice(ms)
}

// PrintRows writes one row per note.
func (f RowFormatter) PrintRows(w io.Writer, notes []*note.Note) {
	width := f.CalcMaxTitleWidth(30)
	for _, n := range notes {
		_, _ = fmt.Fprintln(w, f.FormatRow(n, width))
	}
}

func (a *App) rowFormatter() RowFormatter {
	return RowFormatter{
		Relative: a.config.RelativeFormatter(),
		Voice:    a.config.FormatVoice,
		Now:      a.now(),
	}
}
