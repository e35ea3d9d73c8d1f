package tree

import "testing"

func sampleForest() []*Node {
	return []*Node{
		{ID: "1", Label: "A", Children: []*Node{
			{ID: "11", Label: "A1"},
			{ID: "12", Label: "A2", Children: []*Node{
				{ID: "121", Label: "A2a"},
			}},
		}},
		{ID: "2", Label: "B"},
	}
}

func TestFindNodeLocatesNestedNodes(t *testing.T) {
	forest := sampleForest()
	cases := []struct {
		id    string
		label string
	}{
		{"1", "A"},
		{"11", "A1"},
		{"121", "A2a"},
		{"2", "B"},
	}
	for _, tc := range cases {
		node, ok := FindNode(forest, tc.id)
		if !ok {
			t.Fatalf("expected to find %s", tc.id)
		}
		if node.Label != tc.label {
			t.Fatalf("expected label %q for %s, got %q", tc.label, tc.id, node.Label)
		}
	}
}

func TestFindNodeMissingAndEmptyID(t *testing.T) {
	forest := sampleForest()
	if _, ok := FindNode(forest, "999"); ok {
		t.Fatalf("expected miss for unknown id")
	}
	if _, ok := FindNode(forest, ""); ok {
		t.Fatalf("expected miss for empty id")
	}
	if _, ok := FindNode(nil, "1"); ok {
		t.Fatalf("expected miss for empty forest")
	}
}

func TestFindNodePreOrderFirstMatchWins(t *testing.T) {
	forest := []*Node{
		{ID: "a", Label: "outer", Children: []*Node{{ID: "dup", Label: "first"}}},
		{ID: "dup", Label: "second"},
	}
	node, ok := FindNode(forest, "dup")
	if !ok || node.Label != "first" {
		t.Fatalf("expected pre-order first match, got %#v", node)
	}
}

func TestFindChildren(t *testing.T) {
	forest := sampleForest()
	children := FindChildren(forest, "1")
	if len(children) != 2 || children[0].ID != "11" || children[1].ID != "12" {
		t.Fatalf("unexpected children %#v", children)
	}
	if got := FindChildren(forest, "2"); len(got) != 0 {
		t.Fatalf("expected no children for leaf, got %#v", got)
	}
	if got := FindChildren(forest, "missing"); len(got) != 0 {
		t.Fatalf("expected no children for missing id, got %#v", got)
	}
}

func TestIsLeaf(t *testing.T) {
	forest := sampleForest()
	if forest[0].IsLeaf() {
		t.Fatalf("expected node with children to not be a leaf")
	}
	if !forest[1].IsLeaf() {
		t.Fatalf("expected childless node to be a leaf")
	}
	var nilNode *Node
	if !nilNode.IsLeaf() {
		t.Fatalf("expected nil node to count as leaf")
	}
}

func TestPathTo(t *testing.T) {
	forest := sampleForest()
	chain := PathTo(forest, "121")
	if len(chain) != 3 {
		t.Fatalf("expected chain of 3, got %d", len(chain))
	}
	for i, want := range []string{"1", "12", "121"} {
		if chain[i].ID != want {
			t.Fatalf("expected chain[%d] = %q, got %q", i, want, chain[i].ID)
		}
	}
	if chain := PathTo(forest, "2"); len(chain) != 1 || chain[0].ID != "2" {
		t.Fatalf("unexpected root chain %#v", chain)
	}
	if PathTo(forest, "missing") != nil {
		t.Fatalf("expected nil chain for unknown id")
	}
	if PathTo(forest, "") != nil {
		t.Fatalf("expected nil chain for empty id")
	}
}
