package events

import "github.com/burrowpick/burrow/internal/logging"

type PickerTracer struct{}

type SearchTracer struct{}

var (
	Picker = PickerTracer{}
	Search = SearchTracer{}
)

func (PickerTracer) Open(depth int) {
	logging.Trace("picker.open", map[string]interface{}{"depth": depth})
}

func (PickerTracer) Close(reason string) {
	logging.Trace("picker.close", map[string]interface{}{"reason": reason})
}

func (PickerTracer) Descend(itemID, label string, depth int) {
	logging.Trace("picker.descend", map[string]interface{}{
		"item":  itemID,
		"label": label,
		"depth": depth,
	})
}

func (PickerTracer) Back(itemID string, depth int) {
	logging.Trace("picker.back", map[string]interface{}{"item": itemID, "depth": depth})
}

func (PickerTracer) Select(itemID, label string, path []string) {
	logging.Trace("picker.select", map[string]interface{}{
		"item":  itemID,
		"label": label,
		"path":  path,
	})
}

func (PickerTracer) SelectLevel(itemID string, path []string) {
	logging.Trace("picker.select-level", map[string]interface{}{
		"item": itemID,
		"path": path,
	})
}

func (PickerTracer) Cursor(itemID string, cursor int) {
	logging.Trace("picker.cursor", map[string]interface{}{"item": itemID, "cursor": cursor})
}

func (PickerTracer) Resync(selectedID string, found bool) {
	logging.Trace("picker.resync", map[string]interface{}{
		"selected": selectedID,
		"found":    found,
	})
}

func (SearchTracer) Enter(depth int) {
	logging.Trace("search.enter", map[string]interface{}{"depth": depth})
}

func (SearchTracer) Exit(depth int) {
	logging.Trace("search.exit", map[string]interface{}{"depth": depth})
}

func (SearchTracer) Query(query string, visible int) {
	logging.Trace("search.query", map[string]interface{}{"query": query, "visible": visible})
}

func (SearchTracer) Cleared(depth int) {
	logging.Trace("search.clear", map[string]interface{}{"depth": depth})
}
