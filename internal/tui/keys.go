package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/vnote/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logKey(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModeFilter:
		return m.handleFilterKeys(msg)
	case ModeConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "j", "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
	case "g", "home":
		m.cursor = 0
		m.ensureCursorVisible()
	case "G", "end":
		m.cursor = max(0, len(m.visible)-1)
		m.ensureCursorVisible()
	case "pgdown", "ctrl+d":
		m.cursor = max(0, min(len(m.visible)-1, m.cursor+m.listHeight()))
		m.ensureCursorVisible()
	case "pgup", "ctrl+u":
		m.cursor = max(0, m.cursor-m.listHeight())
		m.ensureCursorVisible()

	// Actions
	case "t":
		if n := m.Selected(); n != nil {
			return m, commands.TogglePin(m.repo, n)
		}
	case "d", "delete":
		if n := m.Selected(); n != nil {
			m.mode = ModeConfirmDelete
			m.setStatus(fmt.Sprintf("Delete #%d %q? y/N", n.ID, n.Title), false)
		}
	case "c":
		if n := m.Selected(); n != nil {
			return m, commands.CopyNote(n)
		}
		m.setStatus("No note to copy", false)
		return m, commands.ClearStatusAfter(m.statusTimeout, m.statusSeq)
	case "r":
		m.loading = true
		return m, commands.LoadNotes(m.repo, 0)
	case "/":
		m.mode = ModeFilter
		m.filter.SetValue(m.query)
		m.filter.CursorEnd()
		return m, tea.Batch(m.filter.Focus(), textinput.Blink)
	case "esc":
		if m.query != "" {
			m.query = ""
			m.applyFilter(0)
		}
	}

	return m, nil
}

// handleFilterKeys edits the filter query; the list narrows as you type.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.filter.Blur()
		m.filter.SetValue("")
		m.query = ""
		m.applyFilter(0)
		return m, nil
	case "enter":
		m.mode = ModeNormal
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if q := m.filter.Value(); q != m.query {
		m.query = q
		m.applyFilter(0)
	}
	return m, cmd
}

// handleConfirmDeleteKeys deletes on "y"; any other key cancels.
func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	m.setStatus("", false)

	n := m.Selected()
	if n == nil {
		return m, nil
	}
	switch msg.String() {
	case "y", "Y":
		return m, commands.DeleteNote(m.repo, n)
	default:
		m.setStatus("Delete cancelled", false)
		return m, commands.ClearStatusAfter(m.statusTimeout, m.statusSeq)
	}
}
