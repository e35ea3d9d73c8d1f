package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/burrowpick/burrow/internal/tree"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.open {
		line := styledLine{text: m.triggerLine(), raw: m.cfg.RenderTrigger != nil}
		return renderLines(applyWidth([]styledLine{line}, m.width))
	}
	return m.viewOpen()
}

func (m *Model) viewOpen() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.triggerLine(), raw: m.cfg.RenderTrigger != nil})

	if crumb := m.breadcrumbLine(); crumb != "" {
		lines = append(lines, styledLine{text: crumb, style: styles.Breadcrumb, raw: m.cfg.RenderBreadcrumb != nil})
	}
	if m.search.Active {
		lines = append(lines, styledLine{text: m.searchInput.View(), raw: true})
	}

	m.syncViewport()
	m.listTop = len(lines)
	start := 0
	displayRows := m.list.Items
	if maxRows := m.maxVisibleRows(); maxRows > 0 && len(displayRows) > maxRows {
		start = m.list.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxRows > len(displayRows) {
			start = len(displayRows) - maxRows
			if start < 0 {
				start = 0
			}
			m.list.ViewportOffset = start
		}
		displayRows = displayRows[start : start+maxRows]
	}
	if len(m.list.Items) == 0 {
		lines = append(lines, styledLine{text: m.emptyLine(), style: styles.Empty})
		m.listRows = 1
	} else {
		for i, row := range displayRows {
			lines = append(lines, m.buildItemLine(row, start+i))
		}
		m.listRows = len(displayRows)
	}

	if m.errMsg != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	}
	if m.cfg.ShowFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  enter select  / search  esc back  ctrl+c quit", style: styles.Footer})
	}

	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) triggerLine() string {
	var node *tree.Node
	if m.selectedID != "" {
		if found, ok := tree.FindNode(m.nodes, m.selectedID); ok {
			node = found
		}
	}
	if m.cfg.RenderTrigger != nil {
		return m.cfg.RenderTrigger(node, m.cfg.Placeholder, m.open)
	}
	chevron := triggerChevronClosed
	if m.open {
		chevron = triggerChevronOpen
	}
	chevron = renderStyle(styles.Chevron, chevron)
	if m.selectedLabel == "" {
		placeholder := m.cfg.Placeholder
		if placeholder == "" {
			placeholder = "Select…"
		}
		return renderStyle(styles.TriggerPlaceholder, placeholder) + " " + chevron
	}
	return renderStyle(styles.Trigger, m.selectedLabel) + " " + chevron
}

func (m *Model) breadcrumbLine() string {
	if !m.cfg.ShowBreadcrumb || m.path.Depth() == 0 {
		return ""
	}
	entries := m.path.Snapshot()
	if m.cfg.RenderBreadcrumb != nil {
		return m.cfg.RenderBreadcrumb(entries)
	}
	return defaultBreadcrumb(entries)
}

func (m *Model) emptyLine() string {
	if m.cfg.RenderEmpty != nil {
		return m.cfg.RenderEmpty(m.search.Query)
	}
	return defaultEmpty(m.search.Query)
}

// buildItemLine constructs a single styledLine for a visible row.
func (m *Model) buildItemLine(row *tree.Node, idx int) styledLine {
	cursor := idx == m.list.Cursor
	if isSelectLevelRow(row) {
		lineStyle := styles.SelectLevel
		indicatorStyle := styles.ItemIndicator
		if cursor {
			lineStyle = styles.CursorItem
			indicatorStyle = styles.CursorIndicator
		}
		return styledLine{
			text:          "▌ " + row.Label,
			style:         lineStyle,
			prefixStyle:   indicatorStyle,
			highlightFrom: 1,
		}
	}

	disabled := m.cfg.DisableItem != nil && m.cfg.DisableItem(row)
	selected := m.selectedID != "" && row.ID == m.selectedID
	if m.cfg.RenderItem != nil {
		return styledLine{
			text: m.cfg.RenderItem(row, ItemContext{
				Cursor:   cursor,
				Selected: selected,
				Disabled: disabled,
				Depth:    m.path.Depth(),
				Width:    m.width,
			}),
			raw: true,
		}
	}

	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if disabled {
		lineStyle = styles.DisabledItem
	}
	if cursor {
		lineStyle = styles.CursorItem
		indicatorStyle = styles.CursorIndicator
	}
	mark := "  "
	if selected {
		mark = selectionMark + " "
	}
	suffix := ""
	if !row.IsLeaf() {
		suffix = " ›"
	}
	if selected && !cursor && !disabled {
		// The mark gets its own style, so the segments are pre-rendered.
		text := renderStyle(indicatorStyle, "▌ ") +
			renderStyle(styles.SelectionMark, selectionMark) + " " +
			renderStyle(lineStyle, displayLabel(row)+suffix)
		return styledLine{text: text, raw: true}
	}
	fullText := "▌ " + mark + displayLabel(row) + suffix
	if m.width > 0 {
		if pad := m.width - len([]rune(fullText)); pad > 0 && cursor {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// maxVisibleRows returns how many item rows fit under the fixed chrome.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 1 // trigger line
	if m.cfg.ShowBreadcrumb && m.path.Depth() > 0 {
		used++
	}
	if m.search.Active {
		used++
	}
	if m.errMsg != "" {
		used += 2
	}
	if m.cfg.ShowFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func renderStyle(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width), style: styles.Empty}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width), style: styles.Empty})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
