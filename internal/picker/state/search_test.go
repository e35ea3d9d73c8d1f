package state

import (
	"testing"

	"github.com/burrowpick/burrow/internal/tree"
)

func TestSearchClearAndReset(t *testing.T) {
	s := Search{Active: true, Query: "ap"}
	s.Clear()
	if !s.Active || s.Query != "" {
		t.Fatalf("expected query cleared with mode retained, got %#v", s)
	}
	s.Query = "ap"
	s.Reset()
	if s.Active || s.Query != "" {
		t.Fatalf("expected full reset, got %#v", s)
	}
}

func TestFilterNodesEmptyQueryReturnsClone(t *testing.T) {
	nodes := testNodes("a", "b")
	filtered := FilterNodes(nodes, "   ")
	if len(filtered) != 2 {
		t.Fatalf("expected all nodes for blank query, got %d", len(filtered))
	}
	filtered[0] = nil
	if nodes[0] == nil {
		t.Fatalf("expected filter result to be a copy")
	}
}

func TestFilterNodesFuzzyMatch(t *testing.T) {
	nodes := []*tree.Node{
		{ID: "1", Label: "Alpha"},
		{ID: "2", Label: "Beta"},
	}
	filtered := FilterNodes(nodes, "alp")
	if len(filtered) != 1 || filtered[0].Label != "Alpha" {
		t.Fatalf("unexpected fuzzy results %#v", filtered)
	}
}

func TestFilterNodesSubstringFallbackOnID(t *testing.T) {
	nodes := []*tree.Node{
		{ID: "srv-east-1", Label: ""},
		{ID: "srv-west-2", Label: ""},
	}
	filtered := FilterNodes(nodes, "west")
	if len(filtered) != 1 || filtered[0].ID != "srv-west-2" {
		t.Fatalf("expected id substring match, got %#v", filtered)
	}
}

func TestFilterNodesNoMatch(t *testing.T) {
	nodes := testNodes("a", "b")
	if got := FilterNodes(nodes, "zzz"); len(got) != 0 {
		t.Fatalf("expected empty result, got %#v", got)
	}
}

func TestFilterNodesPreservesSourceOrder(t *testing.T) {
	nodes := []*tree.Node{
		{ID: "2", Label: "apple pie"},
		{ID: "1", Label: "apple"},
	}
	filtered := FilterNodes(nodes, "apple")
	if len(filtered) != 2 || filtered[0].ID != "2" || filtered[1].ID != "1" {
		t.Fatalf("expected source order preserved, got %#v", filtered)
	}
}
