package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/vnote/internal/note"
)

const (
	headerLines  = 2 // title bar + blank line
	footerLines  = 2 // preview + status/help
	defaultWidth = 80

	pinMarker = "▲ "
	noMarker  = "  "
	ellipsis  = "…"

	helpText = "j/k move · t pin · d delete · / filter · c copy · r reload · q quit"
)

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderList())
	b.WriteString(m.renderPreview())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m Model) renderHeader() string {
	title := m.styles.TitleStyle.Render("vnote")

	count := fmt.Sprintf("%d notes", len(m.notes))
	if m.query != "" {
		count = fmt.Sprintf("%d of %d notes matching %q", len(m.visible), len(m.notes), m.query)
	}
	return title + " " + m.styles.HeaderStyle.Render(count)
}

func (m Model) renderList() string {
	switch {
	case m.loading && m.notes == nil:
		return m.styles.EmptyStyle.Render("Loading…") + "\n"
	case len(m.notes) == 0:
		return m.styles.EmptyStyle.Render(`No notes yet. Add one with: vnote add "title"`) + "\n"
	case len(m.visible) == 0:
		return m.styles.EmptyStyle.Render("No notes match the filter.") + "\n"
	}

	width := m.viewWidth()
	end := min(len(m.visible), m.offset+m.listHeight())

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.visible[i], i == m.cursor, width))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow lays out "marker title ... relative-time [voices]" across width.
func (m Model) renderRow(n *note.Note, selected bool, width int) string {
	meta := m.styles.TimeStyle.Render(m.relative.Format(n.ModifiedAt, m.nowFunc()))
	if n.HasVoice() {
		voices := fmt.Sprintf("[%d × %s]", len(n.Voices), m.config.FormatVoice(n.TotalVoiceMillis()))
		meta += "  " + m.styles.VoiceStyle.Render(voices)
	}

	marker := noMarker
	if n.Pinned {
		marker = m.styles.PinMarkerStyle.Render(pinMarker)
	}

	titleWidth := max(1, width-lipgloss.Width(marker)-lipgloss.Width(meta)-2)
	title := strings.ReplaceAll(n.Title, "\n", " ")
	title = ansi.Truncate(title, titleWidth, ellipsis)
	title += strings.Repeat(" ", max(0, titleWidth-ansi.StringWidth(title)))

	row := marker + title + "  " + meta

	switch {
	case selected:
		return m.styles.RowSelectedStyle.Width(width).Render(ansi.Strip(row))
	case n.Pinned:
		return m.styles.RowPinnedStyle.Width(width).Render(row)
	default:
		return m.styles.RowStyle.Width(width).Render(row)
	}
}

// renderPreview shows the first line of the selected note's text.
func (m Model) renderPreview() string {
	n := m.Selected()
	if n == nil {
		return ""
	}
	summary := n.Summary()
	if summary == "" {
		return ""
	}
	return m.styles.PreviewStyle.Render(ansi.Truncate(summary, m.viewWidth(), ellipsis))
}

func (m Model) renderFooter() string {
	switch {
	case m.mode == ModeFilter:
		return m.filter.View()
	case m.mode == ModeConfirmDelete:
		return m.styles.ConfirmStyle.Render(m.statusMsg)
	case m.isError:
		return m.styles.ErrorStyle.Render(m.statusMsg)
	case m.statusMsg != "":
		return m.styles.StatusStyle.Render(m.statusMsg)
	default:
		return m.styles.HelpStyle.Render(ansi.Truncate(helpText, m.viewWidth(), ellipsis))
	}
}
