package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/burrowpick/burrow/internal/tree"
)

// Search holds the search-box state for the open dropdown. The query only
// narrows the visible set while Active is true; both reset whenever the
// dropdown closes, the level changes, or a selection completes.
type Search struct {
	Active bool
	Query  string
}

// Clear drops the query but keeps search mode as-is.
func (s *Search) Clear() {
	s.Query = ""
}

// Reset leaves search mode entirely.
func (s *Search) Reset() {
	s.Active = false
	s.Query = ""
}

// FilterFunc narrows a visible item set for a query. Implementations must
// not mutate the input slice.
type FilterFunc func(nodes []*tree.Node, query string) []*tree.Node

// FilterNodes is the default filter: fuzzy label matching with a
// case-insensitive substring fallback over labels and ids.
func FilterNodes(nodes []*tree.Node, query string) []*tree.Node {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneNodes(nodes)
	}
	labels := make([]string, len(nodes))
	for i, node := range nodes {
		labels[i] = node.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]*tree.Node, 0, len(matches))
		for idx, node := range nodes {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, node)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]*tree.Node, 0, len(nodes))
	for _, node := range nodes {
		if strings.Contains(strings.ToLower(node.Label), lower) || strings.Contains(strings.ToLower(node.ID), lower) {
			filtered = append(filtered, node)
		}
	}
	return filtered
}
