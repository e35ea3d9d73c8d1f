package picker

import (
	"fmt"
	"strings"

	"github.com/burrowpick/burrow/internal/picker/state"
	"github.com/burrowpick/burrow/internal/tree"
)

// ItemContext carries the per-row facts a custom item renderer may need.
type ItemContext struct {
	Cursor   bool
	Selected bool
	Disabled bool
	Depth    int
	Width    int
}

// ItemRenderer produces a fully styled row for a node. The returned string
// may contain ANSI escapes; it is truncated to the row width but otherwise
// used verbatim.
type ItemRenderer func(node *tree.Node, ctx ItemContext) string

// TriggerRenderer produces the collapsed control line. The node is the
// resolved selection, or nil when nothing is selected yet.
type TriggerRenderer func(node *tree.Node, placeholder string, open bool) string

// BreadcrumbRenderer produces the navigation trail line for the open
// dropdown. Entries run from the shallowest level to the deepest.
type BreadcrumbRenderer func(entries []state.Entry) string

// EmptyRenderer produces the placeholder row shown when a level has nothing
// to display. The query is the active search query, or empty.
type EmptyRenderer func(query string) string

const (
	triggerChevronClosed = "▾"
	triggerChevronOpen   = "▴"
	breadcrumbSeparator  = " → "
	selectionMark        = "✓"
)

func defaultBreadcrumb(entries []state.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	segments := make([]string, 0, len(entries))
	for _, entry := range entries {
		segment := strings.TrimSpace(entry.Label)
		if segment == "" {
			segment = entry.ID
		}
		segments = append(segments, segment)
	}
	return strings.Join(segments, breadcrumbSeparator)
}

func defaultEmpty(query string) string {
	if query != "" {
		return fmt.Sprintf("No matches for %q", query)
	}
	return "(no entries)"
}

// displayLabel returns the text rendered for a node, falling back to the id
// for label-less records.
func displayLabel(node *tree.Node) string {
	if node == nil {
		return ""
	}
	if node.Label != "" {
		return node.Label
	}
	return node.ID
}
