package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Keys names the record fields that carry the identifier, the display label,
// and the child list. Zero values fall back to the defaults.
type Keys struct {
	ID       string
	Label    string
	Children string
}

// DefaultKeys matches the common {"id": …, "name": …, "children": […]} shape.
func DefaultKeys() Keys {
	return Keys{ID: "id", Label: "name", Children: "children"}
}

func (k Keys) withDefaults() Keys {
	def := DefaultKeys()
	if strings.TrimSpace(k.ID) == "" {
		k.ID = def.ID
	}
	if strings.TrimSpace(k.Label) == "" {
		k.Label = def.Label
	}
	if strings.TrimSpace(k.Children) == "" {
		k.Children = def.Children
	}
	return k
}

// Format selects the input encoding for Decode.
type Format int

const (
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

// DecodeFile reads and decodes a tree document, inferring the format from the
// file extension unless one is forced.
func DecodeFile(path string, format Format, keys Keys) ([]*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree file: %w", err)
	}
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = FormatYAML
		default:
			format = FormatJSON
		}
	}
	nodes, err := Decode(data, format, keys)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nodes, nil
}

// Decode parses a document into nodes. The top level may be a single record
// or a sequence of records; field names come from keys.
func Decode(data []byte, format Format, keys Keys) ([]*Node, error) {
	var raw any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}
	nodes, err := fromValue(raw, keys.withDefaults())
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// FromRecords converts already-unmarshalled records (maps keyed by field
// name) into nodes.
func FromRecords(records []map[string]any, keys Keys) []*Node {
	keys = keys.withDefaults()
	nodes := make([]*Node, 0, len(records))
	for _, record := range records {
		nodes = append(nodes, fromRecord(record, keys))
	}
	return nodes
}

func fromValue(raw any, keys Keys) ([]*Node, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		nodes := make([]*Node, 0, len(value))
		for _, entry := range value {
			record, ok := asRecord(entry)
			if !ok {
				return nil, fmt.Errorf("expected a record, got %T", entry)
			}
			nodes = append(nodes, fromRecord(record, keys))
		}
		return nodes, nil
	default:
		record, ok := asRecord(raw)
		if !ok {
			return nil, fmt.Errorf("expected a record or a sequence of records, got %T", raw)
		}
		return []*Node{fromRecord(record, keys)}, nil
	}
}

func fromRecord(record map[string]any, keys Keys) *Node {
	node := &Node{
		ID:     stringField(record, keys.ID),
		Label:  stringField(record, keys.Label),
		Fields: record,
	}
	if node.ID == "" {
		// Id-less nodes still need a stable address for navigation.
		node.ID = uuid.NewString()
	}
	if children, ok := record[keys.Children]; ok {
		if entries, ok := children.([]any); ok {
			for _, entry := range entries {
				if child, ok := asRecord(entry); ok {
					node.Children = append(node.Children, fromRecord(child, keys))
				}
			}
		}
	}
	return node
}

// asRecord normalises map shapes across the JSON and YAML decoders.
func asRecord(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	case map[any]any:
		record := make(map[string]any, len(typed))
		for key, entry := range typed {
			record[fmt.Sprint(key)] = entry
		}
		return record, true
	default:
		return nil, false
	}
}

func stringField(record map[string]any, key string) string {
	value, ok := record[key]
	if !ok || value == nil {
		return ""
	}
	switch typed := value.(type) {
	case string:
		return typed
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		if typed == float64(int64(typed)) {
			return strconv.FormatInt(int64(typed), 10)
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return fmt.Sprint(typed)
	}
}
