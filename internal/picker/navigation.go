package picker

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/burrowpick/burrow/internal/logging/events"
	"github.com/burrowpick/burrow/internal/picker/state"
	"github.com/burrowpick/burrow/internal/tree"
)

// selectLevelID marks the virtual row that picks the current branch node
// itself. It never collides with data ids because it is only ever attached
// to the visible row slice, not to the forest.
const selectLevelID = "__select-level__"

func isSelectLevelRow(node *tree.Node) bool {
	return node != nil && node.ID == selectLevelID
}

func (m *Model) openDropdown() {
	if m.open {
		return
	}
	m.open = true
	m.errMsg = ""
	m.search.Reset()
	m.searchInput.Reset()
	m.searchInput.Blur()
	m.resync()
	events.Picker.Open(m.path.Depth())
}

func (m *Model) closeDropdown(reason string) {
	if !m.open {
		return
	}
	m.open = false
	m.errMsg = ""
	m.path.Reset()
	m.search.Reset()
	m.searchInput.Reset()
	m.searchInput.Blur()
	events.Picker.Close(reason)
}

// resync rebuilds the navigation trail so the cursor lands on the resolved
// selection. An unknown selection id silently falls back to the root level.
func (m *Model) resync() {
	m.path.Reset()
	if m.selectedID == "" {
		m.refreshVisible()
		return
	}
	chain := tree.PathTo(m.nodes, m.selectedID)
	if chain == nil {
		events.Picker.Resync(m.selectedID, false)
		m.refreshVisible()
		return
	}
	parentID := ""
	siblings := m.nodes
	for _, branch := range chain[:len(chain)-1] {
		cursor := rowIndexOf(siblings, branch.ID)
		// Row indexes include the virtual select-level row on nested levels.
		if cursor >= 0 && m.cfg.ShowSelectLevel && m.path.Depth() > 0 {
			cursor++
		}
		m.path.Push(state.Entry{
			ID:         branch.ID,
			Label:      displayLabel(branch),
			ParentID:   parentID,
			LastCursor: cursor,
		})
		parentID = branch.ID
		siblings = branch.Children
	}
	m.refreshVisible()
	target := chain[len(chain)-1]
	if idx := m.list.IndexOf(target.ID); idx >= 0 {
		m.list.Cursor = idx
	}
	m.syncViewport()
	events.Picker.Resync(m.selectedID, true)
}

// SetSelectedID replaces the externally owned selection and re-runs the
// selection resolver against the current forest.
func (m *Model) SetSelectedID(id string) {
	m.selectedID = id
	m.selectedLabel = ""
	if node, ok := tree.FindNode(m.nodes, id); ok {
		m.selectedID = node.ID
		m.selectedLabel = displayLabel(node)
	}
	if m.open {
		m.resync()
	}
}

// SetNodes swaps the input forest and re-resolves the selection against it.
func (m *Model) SetNodes(nodes []*tree.Node) {
	m.nodes = state.CloneNodes(nodes)
	if m.selectedID != "" {
		if node, ok := tree.FindNode(m.nodes, m.selectedID); ok {
			m.selectedLabel = displayLabel(node)
		}
	}
	if m.open {
		m.resync()
		return
	}
	m.refreshVisible()
}

// currentChildren returns the unfiltered item set for the open level.
func (m *Model) currentChildren() []*tree.Node {
	entry, ok := m.path.Current()
	if !ok {
		return m.nodes
	}
	return tree.FindChildren(m.nodes, entry.ID)
}

func (m *Model) selectLevelRowVisible() bool {
	return m.cfg.ShowSelectLevel && m.path.Depth() > 0
}

// refreshVisible recomputes the visible row set from the current level and
// search query. The virtual select-level row stays pinned above the filter.
func (m *Model) refreshVisible() {
	children := m.currentChildren()
	m.list.SetItems(children)
	visible := m.list.Full
	if m.search.Query != "" {
		filter := m.cfg.FilterItems
		if filter == nil {
			filter = state.FilterNodes
		}
		visible = filter(m.list.Full, m.search.Query)
	}
	if m.selectLevelRowVisible() {
		rows := make([]*tree.Node, 0, len(visible)+1)
		rows = append(rows, &tree.Node{ID: selectLevelID, Label: m.selectLevelLabel()})
		rows = append(rows, visible...)
		visible = rows
	}
	m.list.Refine(visible)
	m.syncViewport()
}

func (m *Model) selectLevelLabel() string {
	if m.cfg.SelectLevelLabel != "" {
		return m.cfg.SelectLevelLabel
	}
	if entry, ok := m.path.Current(); ok {
		return fmt.Sprintf("Select %s", entry.Label)
	}
	return "Select this level"
}

func (m *Model) descend(node *tree.Node) {
	entry := state.Entry{
		ID:         node.ID,
		Label:      displayLabel(node),
		LastCursor: m.list.Cursor,
	}
	if parent, ok := m.path.Current(); ok {
		entry.ParentID = parent.ID
	}
	m.path.Push(entry)
	// The query never follows across levels, but an active search box keeps
	// focus so the user can keep typing.
	if m.search.Active {
		m.search.Clear()
		m.searchInput.SetValue("")
	}
	m.refreshVisible()
	m.list.Cursor = 0
	m.list.ViewportOffset = 0
	m.syncViewport()
	events.Picker.Descend(node.ID, entry.Label, m.path.Depth())
}

func (m *Model) back() bool {
	popped, ok := m.path.Pop()
	if !ok {
		return false
	}
	m.search.Reset()
	m.searchInput.Reset()
	m.searchInput.Blur()
	m.refreshVisible()
	if popped.LastCursor >= 0 && popped.LastCursor < len(m.list.Items) {
		m.list.Cursor = popped.LastCursor
	} else if idx := m.list.IndexOf(popped.ID); idx >= 0 {
		m.list.Cursor = idx
	} else if len(m.list.Items) > 0 {
		m.list.Cursor = len(m.list.Items) - 1
	}
	m.syncViewport()
	events.Picker.Back(popped.ID, m.path.Depth())
	return true
}

// activate resolves the row under the cursor: the virtual row picks the
// current branch, branches descend, and leaves complete the selection.
func (m *Model) activate() tea.Cmd {
	row, ok := m.list.Current()
	if !ok {
		return nil
	}
	if isSelectLevelRow(row) {
		entry, ok := m.path.Current()
		if !ok {
			return nil
		}
		node, found := tree.FindNode(m.nodes, entry.ID)
		if !found {
			return nil
		}
		trail := m.path.Snapshot()
		trail = trail[:len(trail)-1]
		events.Picker.SelectLevel(node.ID, entryLabels(trail))
		return m.fire(node, trail)
	}
	if m.cfg.DisableItem != nil && m.cfg.DisableItem(row) {
		return nil
	}
	if !row.IsLeaf() {
		m.descend(row)
		return nil
	}
	trail := m.path.Snapshot()
	events.Picker.Select(row.ID, displayLabel(row), entryLabels(trail))
	return m.fire(row, trail)
}

// fire completes a selection: resolve it, notify the caller, close.
func (m *Model) fire(node *tree.Node, trail []state.Entry) tea.Cmd {
	m.selectedID = node.ID
	m.selectedLabel = displayLabel(node)
	var cmd tea.Cmd
	if m.cfg.OnSelect != nil {
		cmd = m.cfg.OnSelect(node, trail)
	}
	m.closeDropdown("select")
	return cmd
}

func (m *Model) moveCursorUp() {
	if m.list.MoveCursorUp() {
		m.noteCursor()
	}
	m.syncViewport()
}

func (m *Model) moveCursorDown() {
	if m.list.MoveCursorDown() {
		m.noteCursor()
	}
	m.syncViewport()
}

func (m *Model) moveCursorPageUp() {
	if m.list.MoveCursorPageUp(m.maxVisibleRows()) {
		m.noteCursor()
	}
	m.syncViewport()
}

func (m *Model) moveCursorPageDown() {
	if m.list.MoveCursorPageDown(m.maxVisibleRows()) {
		m.noteCursor()
	}
	m.syncViewport()
}

func (m *Model) moveCursorHome() {
	if m.list.MoveCursorHome() {
		m.noteCursor()
	}
	m.syncViewport()
}

func (m *Model) moveCursorEnd() {
	if m.list.MoveCursorEnd() {
		m.noteCursor()
	}
	m.syncViewport()
}

func (m *Model) noteCursor() {
	if row, ok := m.list.Current(); ok {
		events.Picker.Cursor(row.ID, m.list.Cursor)
	}
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleRows())
}

func rowIndexOf(nodes []*tree.Node, id string) int {
	for i, node := range nodes {
		if node != nil && node.ID == id {
			return i
		}
	}
	return -1
}

func entryLabels(entries []state.Entry) []string {
	if len(entries) == 0 {
		return nil
	}
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Label
	}
	return labels
}
