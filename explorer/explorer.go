// Package explorer is the read-only query surface over the schema engine.
//
// It combines the store, resolver, and refindex packages into the operations
// a browsing UI needs: full schema detail with relationship edges, a sorted
// tree listing, free-text search, and version enumeration.
package explorer

import (
	"sort"
	"strings"

	"github.com/erraggy/schemalens/lenserrors"
	"github.com/erraggy/schemalens/refindex"
	"github.com/erraggy/schemalens/resolver"
	"github.com/erraggy/schemalens/store"
)

// Node is a lightweight tree-listing entry for one named schema.
type Node struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Tag        any    `json:"tag"`
	Type       string `json:"type"`
	XFieldType string `json:"xFieldType"`
}

// SearchResult is one free-text search hit.
type SearchResult struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Explorer exposes read-only queries over a loaded document.
// An Explorer is safe for concurrent use.
type Explorer struct {
	store    *store.Store
	resolver *resolver.Resolver
	index    *refindex.Index
}

// Option is a function that configures an Explorer
type Option func(*Explorer)

// WithResolver replaces the default resolver, e.g. to change the reference
// depth bound or attach a logger.
func WithResolver(r *resolver.Resolver) Option {
	return func(ex *Explorer) {
		ex.resolver = r
	}
}

// New creates an Explorer over the given store with a default resolver.
func New(st *store.Store, opts ...Option) *Explorer {
	ex := &Explorer{
		store: st,
		index: refindex.New(st),
	}
	for _, opt := range opts {
		opt(ex)
	}
	if ex.resolver == nil {
		// New without options cannot fail
		ex.resolver, _ = resolver.New(st)
	}
	return ex
}

// Describe resolves the named schema and augments it with relationship
// edges: the schemas it references, the schemas that reference it, and the
// counts of each. Returns a SchemaNotFoundError when the name is absent from
// the component mapping.
func (ex *Explorer) Describe(name string) (*resolver.ResolvedSchema, error) {
	if _, ok := ex.store.Definition(name); !ok {
		return nil, &lenserrors.SchemaNotFoundError{Name: name}
	}

	resolved := ex.resolver.Resolve(name)
	resolved.References = ex.index.ReferencesOf(name)
	resolved.ReferencedBy = ex.index.ReferencedBy(name)
	resolved.RelationshipSummary = &resolver.RelationshipSummary{
		ReferencedByCount: len(resolved.ReferencedBy),
		ReferencesCount:   len(resolved.References),
	}
	return resolved, nil
}

// Tree lists every schema as a lightweight node, sorted by display text.
func (ex *Explorer) Tree() []Node {
	nodes := []Node{}
	for name, def := range ex.store.Components() {
		fieldType := stringOr(def["x-field-type"], "OTHERS")
		nodes = append(nodes, Node{
			ID:         name,
			Text:       stringOr(def["title"], name),
			Tag:        def["x-tag"],
			Type:       stringOr(def["type"], "object"),
			XFieldType: strings.ToUpper(fieldType),
		})
	}
	sort.Slice(nodes, func(i, j int) bool {
		a, b := strings.ToLower(nodes[i].Text), strings.ToLower(nodes[j].Text)
		if a != b {
			return a < b
		}
		return nodes[i].ID < nodes[j].ID
	})
	return nodes
}

// Search performs a case-insensitive substring match across each schema's
// name, title, description, tag, and field type. An empty query yields no
// results.
func (ex *Explorer) Search(query string) []SearchResult {
	results := []SearchResult{}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return results
	}

	for name, def := range ex.store.Components() {
		fields := []string{name}
		for _, v := range []any{def["title"], def["description"], def["x-tag"], def["x-field-type"]} {
			if s := stringOr(v, ""); s != "" {
				fields = append(fields, s)
			}
		}
		haystack := strings.ToLower(strings.Join(fields, " "))
		if strings.Contains(haystack, query) {
			results = append(results, SearchResult{ID: name, Text: stringOr(def["title"], name)})
		}
	}
	sort.Slice(results, func(i, j int) bool {
		a, b := strings.ToLower(results[i].Text), strings.ToLower(results[j].Text)
		if a != b {
			return a < b
		}
		return results[i].ID < results[j].ID
	})
	return results
}

// stringOr reads a raw field as a string with a defined fallback.
func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}
