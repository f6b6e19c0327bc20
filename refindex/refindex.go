// Package refindex derives reference relationships between named schemas by
// structurally scanning raw definitions.
//
// The scan walks a definition's own structure only: a $ref records the
// referenced name without descending into the referenced schema, so the walk
// is bounded by the definition's size and cannot loop on cyclic graphs. The
// relations are computed from raw definitions, never from the depth-bounded
// resolved tree.
package refindex

import (
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/schemalens/store"
)

// compositeKeys are the schema combinators whose list members are scanned
// for references.
var compositeKeys = [...]string{"allOf", "oneOf", "anyOf"}

// Index computes references / referenced-by relations over a Store.
// An Index is safe for concurrent use.
type Index struct {
	store *store.Store
}

// New creates an Index over the given store.
func New(st *store.Store) *Index {
	return &Index{store: st}
}

// FindAllRefs structurally walks a raw node collecting every $ref target name
// found under items, properties, and allOf/oneOf/anyOf members. Order
// reflects traversal order; duplicates may occur and are the caller's
// responsibility to deduplicate.
func FindAllRefs(node any) []string {
	var refs []string
	m, ok := node.(map[string]any)
	if !ok {
		return refs
	}

	if ref, ok := refName(m["$ref"]); ok {
		refs = append(refs, ref)
	}
	if items, ok := m["items"].(map[string]any); ok {
		refs = append(refs, FindAllRefs(items)...)
	}
	if props, ok := m["properties"].(map[string]any); ok {
		for _, key := range slices.Sorted(maps.Keys(props)) {
			refs = append(refs, FindAllRefs(props[key])...)
		}
	}
	for _, key := range compositeKeys {
		members, ok := m[key].([]any)
		if !ok {
			continue
		}
		for _, member := range members {
			refs = append(refs, FindAllRefs(member)...)
		}
	}
	return refs
}

// ReferencesOf returns the set of schema names directly reachable from the
// named schema's raw definition, deduplicated and sorted. An unknown name
// yields an empty set.
func (ix *Index) ReferencesOf(name string) []string {
	def, ok := ix.store.Definition(name)
	if !ok {
		return []string{}
	}
	return dedupe(FindAllRefs(def))
}

// ReferencedBy returns the sorted set of schema names whose raw definition
// reaches the named schema. This is a full scan of every other definition;
// it runs once per schema-detail request against the in-memory document.
func (ix *Index) ReferencedBy(name string) []string {
	result := []string{}
	comps := ix.store.Components()
	for _, other := range slices.Sorted(maps.Keys(comps)) {
		if other == name {
			continue
		}
		if slices.Contains(FindAllRefs(comps[other]), name) {
			result = append(result, other)
		}
	}
	return result
}

// refName extracts the final path segment of a $ref value.
func refName(v any) (string, bool) {
	ref, ok := v.(string)
	if !ok || ref == "" {
		return "", false
	}
	parts := strings.Split(ref, "/")
	name := parts[len(parts)-1]
	if name == "" {
		return "", false
	}
	return name, true
}

// dedupe sorts and removes duplicates, always returning a non-nil slice.
func dedupe(names []string) []string {
	if len(names) == 0 {
		return []string{}
	}
	slices.Sort(names)
	return slices.Compact(names)
}
