package state

import (
	"fmt"
	"testing"

	"github.com/burrowpick/burrow/internal/tree"
)

func testNodes(ids ...string) []*tree.Node {
	nodes := make([]*tree.Node, len(ids))
	for i, id := range ids {
		nodes[i] = &tree.Node{ID: id, Label: id}
	}
	return nodes
}

func TestListSetItemsClones(t *testing.T) {
	source := testNodes("a", "b")
	var l List
	l.SetItems(source)
	if len(l.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(l.Items))
	}
	source[0] = &tree.Node{ID: "mutated"}
	if l.Full[0].ID != "a" {
		t.Fatalf("expected backing slice to be independent of the source")
	}
}

func TestListCursorWraps(t *testing.T) {
	var l List
	l.SetItems(testNodes("a", "b", "c"))
	l.Cursor = 0
	l.MoveCursorUp()
	if l.Cursor != 2 {
		t.Fatalf("expected wrap to last item, got %d", l.Cursor)
	}
	l.MoveCursorDown()
	if l.Cursor != 0 {
		t.Fatalf("expected wrap to first item, got %d", l.Cursor)
	}
}

func TestListCursorPaging(t *testing.T) {
	ids := make([]string, 12)
	for i := range ids {
		ids[i] = fmt.Sprintf("item-%d", i)
	}
	var l List
	l.SetItems(testNodes(ids...))
	l.Cursor = 0
	if !l.MoveCursorPageDown(5) || l.Cursor != 5 {
		t.Fatalf("expected cursor at 5, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(5) || l.Cursor != 10 {
		t.Fatalf("expected cursor at 10, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(5) || l.Cursor != 11 {
		t.Fatalf("expected cursor at end, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(5) {
		t.Fatalf("expected no movement past end")
	}
	if !l.MoveCursorPageUp(5) || l.Cursor != 6 {
		t.Fatalf("expected cursor at 6, got %d", l.Cursor)
	}
	l.Cursor = 2
	if !l.MoveCursorPageDown(0) || l.Cursor != len(ids)-1 {
		t.Fatalf("expected jump to end with unknown page size, got %d", l.Cursor)
	}
}

func TestListHomeEndAndEmpty(t *testing.T) {
	var l List
	l.SetItems(testNodes("a", "b", "c"))
	l.Cursor = 1
	if !l.MoveCursorHome() || l.Cursor != 0 {
		t.Fatalf("expected home to land on 0, got %d", l.Cursor)
	}
	if l.MoveCursorHome() {
		t.Fatalf("expected no movement when already home")
	}
	if !l.MoveCursorEnd() || l.Cursor != 2 {
		t.Fatalf("expected end to land on last item, got %d", l.Cursor)
	}

	var empty List
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty list")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestListEnsureCursorVisible(t *testing.T) {
	var l List
	l.SetItems(testNodes("a", "b", "c", "d", "e", "f"))
	l.Cursor = 5
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}
	l.Cursor = 0
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset back to 0, got %d", l.ViewportOffset)
	}
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset untouched with no limit, got %d", l.ViewportOffset)
	}
}

func TestListRefineClampsCursor(t *testing.T) {
	var l List
	l.SetItems(testNodes("a", "b", "c"))
	l.Cursor = 2
	l.Refine(l.Full[:1])
	if l.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", l.Cursor)
	}
	l.Refine(nil)
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected reset for empty view, got %d/%d", l.Cursor, l.ViewportOffset)
	}
}

func TestListIndexOfAndCurrent(t *testing.T) {
	var l List
	l.SetItems(testNodes("a", "b"))
	if l.IndexOf("b") != 1 {
		t.Fatalf("expected index 1 for b, got %d", l.IndexOf("b"))
	}
	if l.IndexOf("") != -1 || l.IndexOf("zz") != -1 {
		t.Fatalf("expected -1 for unknown ids")
	}
	l.Cursor = 1
	node, ok := l.Current()
	if !ok || node.ID != "b" {
		t.Fatalf("unexpected current node %#v", node)
	}
	l.Cursor = 9
	if _, ok := l.Current(); ok {
		t.Fatalf("expected no current node for out-of-range cursor")
	}
}
