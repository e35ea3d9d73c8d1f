package tree

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeJSONDefaultKeys(t *testing.T) {
	data := []byte(`[
		{"id": 1, "name": "A", "children": [{"id": 11, "name": "A1"}]},
		{"id": 2, "name": "B"}
	]`)
	nodes, err := Decode(data, FormatJSON, Keys{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(nodes))
	}
	if nodes[0].ID != "1" || nodes[0].Label != "A" {
		t.Fatalf("unexpected first node %#v", nodes[0])
	}
	if len(nodes[0].Children) != 1 || nodes[0].Children[0].ID != "11" {
		t.Fatalf("unexpected children %#v", nodes[0].Children)
	}
	if !nodes[1].IsLeaf() {
		t.Fatalf("expected B to be a leaf")
	}
}

func TestDecodeCustomKeys(t *testing.T) {
	data := []byte(`[{"key": "root", "title": "Root", "items": [{"key": "leaf", "title": "Leaf"}]}]`)
	nodes, err := Decode(data, FormatJSON, Keys{ID: "key", Label: "title", Children: "items"})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if nodes[0].ID != "root" || nodes[0].Label != "Root" {
		t.Fatalf("unexpected node %#v", nodes[0])
	}
	if len(nodes[0].Children) != 1 || nodes[0].Children[0].Label != "Leaf" {
		t.Fatalf("unexpected children %#v", nodes[0].Children)
	}
}

func TestDecodeYAML(t *testing.T) {
	data := []byte("- id: fruit\n  name: Fruit\n  children:\n    - id: apple\n      name: Apple\n- id: veg\n  name: Vegetables\n")
	nodes, err := Decode(data, FormatYAML, Keys{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if nodes[0].Children[0].ID != "apple" {
		t.Fatalf("unexpected child %#v", nodes[0].Children[0])
	}
}

func TestDecodeSingleRecordBecomesForestOfOne(t *testing.T) {
	nodes, err := Decode([]byte(`{"id": "only", "name": "Only"}`), FormatJSON, Keys{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(nodes) != 1 || nodes[0].ID != "only" {
		t.Fatalf("unexpected nodes %#v", nodes)
	}
}

func TestDecodeMissingLabelRendersEmpty(t *testing.T) {
	nodes, err := Decode([]byte(`[{"id": "x"}]`), FormatJSON, Keys{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if nodes[0].Label != "" {
		t.Fatalf("expected empty label, got %q", nodes[0].Label)
	}
}

func TestDecodeMissingIDGetsGenerated(t *testing.T) {
	nodes, err := Decode([]byte(`[{"name": "anon"}, {"name": "anon2"}]`), FormatJSON, Keys{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if nodes[0].ID == "" || nodes[1].ID == "" {
		t.Fatalf("expected generated ids, got %#v", nodes)
	}
	if nodes[0].ID == nodes[1].ID {
		t.Fatalf("expected distinct generated ids")
	}
}

func TestDecodeRetainsExtraFields(t *testing.T) {
	nodes, err := Decode([]byte(`[{"id": "x", "name": "X", "weight": 3}]`), FormatJSON, Keys{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if _, ok := nodes[0].Fields["weight"]; !ok {
		t.Fatalf("expected extra field retained, got %#v", nodes[0].Fields)
	}
}

func TestDecodeRejectsScalars(t *testing.T) {
	if _, err := Decode([]byte(`["just", "strings"]`), FormatJSON, Keys{}); err == nil {
		t.Fatalf("expected error for non-record sequence entries")
	}
	if _, err := Decode([]byte(`42`), FormatJSON, Keys{}); err == nil {
		t.Fatalf("expected error for scalar document")
	}
}

func TestDecodeFileInfersFormat(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "tree.yaml")
	if err := os.WriteFile(yamlPath, []byte("- id: a\n  name: A\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	nodes, err := DecodeFile(yamlPath, FormatAuto, Keys{})
	if err != nil {
		t.Fatalf("decode file failed: %v", err)
	}
	if len(nodes) != 1 || nodes[0].ID != "a" {
		t.Fatalf("unexpected nodes %#v", nodes)
	}
	if _, err := DecodeFile(filepath.Join(dir, "missing.json"), FormatAuto, Keys{}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
