package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// logKey records a keystroke with the mode it was handled in.
func (m Model) logKey(msg tea.KeyMsg) {
	m.log.Debug().
		Str("event", "key").
		Str("key", msg.String()).
		Str("mode", m.mode.String()).
		Int("cursor", m.cursor).
		Msg("key press")
}

// logState records list state after a reload.
func (m Model) logState(event string) {
	ev := m.log.Debug().
		Str("event", event).
		Int("notes", len(m.notes)).
		Int("visible", len(m.visible)).
		Int("cursor", m.cursor).
		Str("query", m.query)
	if n := m.Selected(); n != nil {
		ev = ev.Int64("selected_id", n.ID)
	}
	ev.Msg("state")
}
