package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/vnote/internal/note"
	"github.com/javiermolinar/vnote/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filter.Width = max(10, msg.Width-4)
		m.ensureCursorVisible()
		return m, nil

	case commands.NotesLoadedMsg:
		m.loading = false
		m.notes = msg.Notes
		m.applyFilter(msg.FocusID)
		m.logState("notes_loaded")
		return m, nil

	case commands.PinToggledMsg:
		if msg.Pinned {
			m.setStatus(fmt.Sprintf("Pinned #%d", msg.ID), false)
		} else {
			m.setStatus(fmt.Sprintf("Unpinned #%d", msg.ID), false)
		}
		return m, tea.Batch(
			commands.LoadNotes(m.repo, msg.ID),
			commands.ClearStatusAfter(m.statusTimeout, m.statusSeq),
		)

	case commands.NoteDeletedMsg:
		m.setStatus(fmt.Sprintf("Deleted #%d %s", msg.ID, msg.Title), false)
		return m, tea.Batch(
			commands.LoadNotes(m.repo, 0),
			commands.ClearStatusAfter(m.statusTimeout, m.statusSeq),
		)

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg, false)
		return m, commands.ClearStatusAfter(m.statusTimeout, m.statusSeq)

	case commands.ClearStatusMsg:
		// Errors stay until replaced; a newer status outlives older ticks.
		if msg.Seq != m.statusSeq || m.isError {
			return m, nil
		}
		m.statusMsg = ""
		return m, nil

	case commands.ErrMsg:
		m.loading = false
		m.log.Error().Err(msg.Err).Msg("command failed")
		m.setStatus(msg.Err.Error(), true)
		return m, nil
	}

	return m, nil
}

func (m *Model) setStatus(s string, isError bool) {
	m.statusMsg = s
	m.isError = isError
	m.statusSeq++
}

// applyFilter recomputes the visible notes and places the cursor on focusID
// when it is visible, otherwise keeps the cursor row in range.
func (m *Model) applyFilter(focusID int64) {
	if focusID == 0 {
		if n := m.Selected(); n != nil {
			focusID = n.ID
		}
	}

	m.visible = note.Filter(m.notes, m.query)

	if i := note.IndexOf(m.visible, focusID); i >= 0 {
		m.cursor = i
	}
	m.cursor = max(0, min(m.cursor, len(m.visible)-1))
	m.ensureCursorVisible()
}

// listHeight is the number of rows available for notes.
func (m Model) listHeight() int {
	if m.height <= 0 {
		return len(m.visible)
	}
	// header + blank line + footer
	return max(1, m.height-headerLines-footerLines)
}

func (m *Model) ensureCursorVisible() {
	h := m.listHeight()
	if h <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	m.offset = max(0, min(m.offset, max(0, len(m.visible)-h)))
}
