// Package inspect reports the shape of a decoded JSON tree: how many
// nodes of each kind it holds, how deeply it nests, and which object keys
// appear in it.
package inspect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mcncl/jsondom/internal/value"
)

// Summary describes the shape of a value tree.
type Summary struct {
	// Total is the number of nodes in the tree, the root included.
	Total int
	// PerKind counts nodes by kind.
	PerKind map[value.Kind]int
	// MaxDepth is the deepest nesting level, with the root at depth 1.
	MaxDepth int
	// KeyCounts maps each distinct object key to its occurrence count.
	KeyCounts map[string]int

	keyOrder []string // keys in first-seen order
}

// Summarize walks v once and returns its Summary.
func Summarize(v value.Value) *Summary {
	s := &Summary{
		PerKind:   make(map[value.Kind]int),
		KeyCounts: make(map[string]int),
	}
	s.walk(v, 1)
	return s
}

func (s *Summary) walk(v value.Value, depth int) {
	s.Total++
	s.PerKind[v.Kind()]++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	switch t := v.(type) {
	case *value.Object:
		for _, key := range t.Keys() {
			if s.KeyCounts[key] == 0 {
				s.keyOrder = append(s.keyOrder, key)
			}
			s.KeyCounts[key]++
			member, _ := t.Get(key)
			s.walk(member, depth+1)
		}
	case *value.List:
		for _, item := range t.Items() {
			s.walk(item, depth+1)
		}
	}
}

// reportKinds fixes the order kind counts are printed in.
var reportKinds = []value.Kind{
	value.KindObject,
	value.KindList,
	value.KindString,
	value.KindInteger,
	value.KindFloat,
	value.KindBool,
	value.KindNull,
}

// Report renders the summary as a human-readable block of text. With
// sortedKeys, the key census is listed alphabetically; otherwise keys keep
// the order they were first seen in.
func (s *Summary) Report(sortedKeys bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "nodes: %d\n", s.Total)
	fmt.Fprintf(&b, "max depth: %d\n", s.MaxDepth)
	for _, k := range reportKinds {
		if n := s.PerKind[k]; n > 0 {
			fmt.Fprintf(&b, "%ss: %d\n", k, n)
		}
	}
	keys := s.keyOrder
	if sortedKeys {
		keys = append([]string(nil), s.keyOrder...)
		sort.Strings(keys)
	}
	if len(keys) > 0 {
		fmt.Fprintf(&b, "distinct keys: %d\n", len(keys))
		for _, key := range keys {
			fmt.Fprintf(&b, "  %s: %d\n", key, s.KeyCounts[key])
		}
	}
	return b.String()
}
