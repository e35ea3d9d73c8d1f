package picker

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/burrowpick/burrow/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if !m.open {
		return m.handleClosedKey(keyMsg)
	}
	return m.handleOpenKey(keyMsg)
}

func (m *Model) handleClosedKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "enter", " ", "down":
		m.openDropdown()
	}
	return nil
}

func (m *Model) handleOpenKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.activate()
	case "up":
		m.moveCursorUp()
		return nil
	case "down":
		m.moveCursorDown()
		return nil
	case "pgup":
		m.moveCursorPageUp()
		return nil
	case "pgdown":
		m.moveCursorPageDown()
		return nil
	case "home":
		m.moveCursorHome()
		return nil
	case "end":
		m.moveCursorEnd()
		return nil
	}
	if m.search.Active {
		return m.handleSearchKey(msg)
	}
	switch msg.String() {
	case "/":
		return m.enterSearch()
	case "backspace", "left":
		m.back()
		return nil
	case "right":
		if row, ok := m.list.Current(); ok && !isSelectLevelRow(row) && !row.IsLeaf() {
			if m.cfg.DisableItem != nil && m.cfg.DisableItem(row) {
				return nil
			}
			m.descend(row)
		}
		return nil
	case "q":
		m.closeDropdown("dismiss")
		return nil
	}
	return nil
}

// handleEscapeKey unwinds one layer at a time: query, search mode, one
// navigation level, then the dropdown itself.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.search.Active {
		if m.search.Query != "" {
			m.search.Clear()
			m.searchInput.SetValue("")
			m.refreshVisible()
			events.Search.Cleared(m.path.Depth())
			return nil
		}
		m.exitSearch()
		return nil
	}
	if m.back() {
		return nil
	}
	m.closeDropdown("dismiss")
	return nil
}

func (m *Model) enterSearch() tea.Cmd {
	m.search.Active = true
	m.searchInput.SetValue("")
	events.Search.Enter(m.path.Depth())
	return m.searchInput.Focus()
}

func (m *Model) exitSearch() {
	m.search.Reset()
	m.searchInput.Reset()
	m.searchInput.Blur()
	m.refreshVisible()
	events.Search.Exit(m.path.Depth())
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if query := m.searchInput.Value(); query != m.search.Query {
		m.search.Query = query
		m.refreshVisible()
		events.Search.Query(query, len(m.list.Items))
	}
	return cmd
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if !m.open {
		if ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft && ev.Y == 0 {
			m.openDropdown()
		}
		return nil
	}
	switch {
	case ev.Button == tea.MouseButtonWheelUp:
		m.moveCursorUp()
	case ev.Button == tea.MouseButtonWheelDown:
		m.moveCursorDown()
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		if ev.Y >= m.listTop && ev.Y < m.listTop+m.listRows {
			idx := m.list.ViewportOffset + (ev.Y - m.listTop)
			if idx >= len(m.list.Items) {
				return nil
			}
			m.list.Cursor = idx
			m.syncViewport()
			return m.activate()
		}
		if ev.Y >= m.listTop+m.listRows {
			m.closeDropdown("outside")
		}
	}
	return nil
}
