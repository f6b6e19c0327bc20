// Package resolver expands a named schema into a fully de-referenced,
// cycle-safe, depth-bounded attribute tree.
//
// Resolution follows $ref pointers between named schemas up to a bounded
// number of hops (DefaultMaxRefDepth); deeper references collapse into a
// placeholder leaf carrying only the referenced name. An explicit
// visited-path threaded through every recursive call guards against
// reference cycles and doubles as the basis for cycle-path reporting.
//
// Resolution never fails on malformed or missing sub-structure: every field
// read from the raw document goes through an accessor with a defined
// fallback, and anomalies (cycles, unknown references) are annotated in-band
// as description text. Resolve always returns a well-formed tree.
package resolver

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/schemalens/internal/naming"
	"github.com/erraggy/schemalens/store"
)

const (
	// DefaultMaxRefDepth is the number of named-schema reference hops
	// expanded from the root call before remaining levels collapse into
	// placeholders. Together with the visited-path cycle guard it bounds
	// both tree size and recursion depth on arbitrarily connected graphs,
	// while still expanding the levels most useful for documentation.
	DefaultMaxRefDepth = 2

	// cyclePathSeparator joins schema names when reporting a reference cycle.
	cyclePathSeparator = " → "
)

// Resolver expands named schemas from a Store into resolved attribute trees.
// A Resolver is safe for concurrent use: it holds no mutable state across
// calls beyond the read-only Store.
type Resolver struct {
	store       *store.Store
	maxRefDepth int
	logger      Logger
}

// New creates a Resolver over the given store.
func New(st *store.Store, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		store:       st,
		maxRefDepth: DefaultMaxRefDepth,
		logger:      NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("resolver: invalid options: %w", err)
		}
	}
	return r, nil
}

// Resolve expands the named schema into a resolved attribute tree.
// It never fails: an unknown name yields a terminal node whose description
// names the missing schema, and cyclic or malformed definitions are absorbed
// with in-band annotations.
func (r *Resolver) Resolve(schemaName string) *ResolvedSchema {
	return r.resolve(schemaName, nil, 0)
}

// resolve is the recursive core. visited is the ordered sequence of schema
// names currently being expanded in the active call chain; depth counts
// named-schema reference hops taken from the root call.
func (r *Resolver) resolve(schemaName string, visited []string, depth int) *ResolvedSchema {
	if slices.Contains(visited, schemaName) {
		cyclePath := strings.Join(append(slices.Clone(visited), schemaName), cyclePathSeparator)
		r.logger.Debug("circular reference bound", "schema", schemaName, "path", cyclePath)
		return &ResolvedSchema{
			Title:       schemaName,
			Type:        "object",
			Description: "Circular reference: " + cyclePath,
			Attributes:  []Attribute{},
			terminal:    true,
		}
	}

	def, ok := r.store.Definition(schemaName)
	if !ok {
		r.logger.Debug("unknown schema referenced", "schema", schemaName)
		return &ResolvedSchema{
			Title:       schemaName,
			Type:        "object",
			Description: fmt.Sprintf("Unknown schema '%s'.", schemaName),
			Attributes:  []Attribute{},
			terminal:    true,
		}
	}

	title := stringField(def, "title", schemaName)
	resolved := &ResolvedSchema{
		Title:         title,
		Type:          stringField(def, "type", "object"),
		Description:   normalizeDesc(def["description"], title),
		XSinceVersion: def["x-since-version"],
		XFieldType:    def["x-field-type"],
		XTag:          def["x-tag"],
		Attributes:    []Attribute{},
	}

	props, _ := def["properties"].(map[string]any)
	for _, name := range slices.Sorted(maps.Keys(props)) {
		node, _ := props[name].(map[string]any)
		resolved.Attributes = append(resolved.Attributes,
			r.buildAttribute(name, node, schemaName, def, visited, depth))
	}

	// allOf members referencing another schema become synthetic inheritance
	// attributes whose children are the base schema's resolved attributes.
	// Non-reference members are ignored.
	members, _ := def["allOf"].([]any)
	for _, member := range members {
		node, _ := member.(map[string]any)
		base, ok := refTarget(node)
		if !ok {
			continue
		}
		attr := Attribute{
			Name:     "(allOf) " + naming.Clean(base),
			Type:     "object",
			Examples: []any{},
			Children: []Attribute{},
		}
		if depth < r.maxRefDepth {
			baseSchema := r.resolve(base, visitedWith(visited, schemaName), depth+1)
			attr.Description = fmt.Sprintf("Inherits from %s.", base)
			attr.Children = adoptAttributes(baseSchema)
		} else {
			attr.Description = "Inheritance (collapsed)."
		}
		resolved.Attributes = append(resolved.Attributes, attr)
	}

	return resolved
}

// buildAttribute resolves one property node into an Attribute. owner is the
// schema whose definition carries the node; ownerDef supplies the extension
// field fallbacks. Named-schema hops ($ref and array-of-$ref) consume the
// reference depth budget; inline nested object properties do not, since they
// are not separately named nodes and cannot be cyclic.
func (r *Resolver) buildAttribute(name string, node map[string]any, owner string, ownerDef map[string]any, visited []string, depth int) Attribute {
	attr := Attribute{
		Name:          naming.Clean(name),
		Description:   normalizeDesc(node["description"], name),
		Examples:      exampleList(node["examples"]),
		XSinceVersion: extensionField(node, ownerDef, "x-since-version"),
		XFieldType:    extensionField(node, ownerDef, "x-field-type"),
		XTag:          extensionField(node, ownerDef, "x-tag"),
		Children:      []Attribute{},
	}

	attrType := stringField(node, "type", "")

	// A bare reference adopts the referenced schema's name as its type and
	// the referenced schema's top-level attributes as its children.
	if ref, ok := refTarget(node); ok {
		attrType = ref
		attr.Children = r.referenceChildren(ref, owner, visited, depth)
	}

	// Inline nested object properties are always expanded.
	if props, ok := node["properties"].(map[string]any); ok {
		for _, sub := range slices.Sorted(maps.Keys(props)) {
			subNode, _ := props[sub].(map[string]any)
			attr.Children = append(attr.Children,
				r.buildAttribute(sub, subNode, owner, ownerDef, visited, depth))
		}
	}

	if stringField(node, "type", "") == "array" {
		items, _ := node["items"].(map[string]any)
		if ref, ok := refTarget(items); ok {
			attrType = "array of " + ref
			attr.Children = r.referenceChildren(ref, owner, visited, depth)
		} else {
			attrType = "array of " + stringField(items, "type", "object")
			if props, ok := items["properties"].(map[string]any); ok {
				for _, sub := range slices.Sorted(maps.Keys(props)) {
					subNode, _ := props[sub].(map[string]any)
					attr.Children = append(attr.Children,
						r.buildAttribute(sub, subNode, owner, ownerDef, visited, depth))
				}
			}
		}
	}

	if attrType == "" {
		attrType = "object"
	}
	attr.Type = attrType
	return attr
}

// referenceChildren resolves the attributes adopted from a referenced schema,
// or a single collapsed placeholder once the depth budget is spent.
func (r *Resolver) referenceChildren(ref, owner string, visited []string, depth int) []Attribute {
	if depth < r.maxRefDepth {
		child := r.resolve(ref, visitedWith(visited, owner), depth+1)
		return adoptAttributes(child)
	}
	r.logger.Debug("reference collapsed at depth bound", "ref", ref, "depth", depth)
	return []Attribute{{
		Name:        "(ref) " + ref,
		Type:        "object",
		Description: "Reference (collapsed)",
		Examples:    []any{},
		Children:    []Attribute{},
	}}
}

// adoptAttributes lifts a resolved schema's top-level attributes into a
// parent attribute's children. Terminal annotations (cycles, unknown schemas)
// are preserved as a single leaf so the back-reference path or missing name
// stays visible in the tree.
func adoptAttributes(rs *ResolvedSchema) []Attribute {
	if rs.terminal {
		return []Attribute{{
			Name:        rs.Title,
			Type:        rs.Type,
			Description: rs.Description,
			Examples:    []any{},
			Children:    []Attribute{},
		}}
	}
	return rs.Attributes
}

// visitedWith returns visited extended by name, without aliasing the input.
func visitedWith(visited []string, name string) []string {
	return append(slices.Clone(visited), name)
}

// refTarget extracts the referenced schema name from a node's $ref, if any.
// Only the final path segment is significant: "#/components/schemas/User"
// and a bare "User" both name the User schema.
func refTarget(node map[string]any) (string, bool) {
	ref, ok := node["$ref"].(string)
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

// stringField reads a string field with a defined fallback.
func stringField(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// normalizeDesc trims a raw description, generating fallback text naming the
// owning node when the description is absent, blank, or not a string.
func normalizeDesc(v any, fallbackName string) string {
	if s, ok := v.(string); ok {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed
		}
	}
	return fmt.Sprintf("No description provided for %q.", fallbackName)
}

// exampleList coerces a raw examples field into a sequence: sequences pass
// through, a scalar is wrapped, and absence yields an empty sequence.
func exampleList(v any) []any {
	switch examples := v.(type) {
	case nil:
		return []any{}
	case []any:
		return examples
	default:
		return []any{examples}
	}
}

// extensionField resolves an x-* extension from the node first, falling back
// to the owning schema's definition when the node carries none.
func extensionField(node, ownerDef map[string]any, key string) any {
	if v, ok := node[key]; ok && v != nil && v != "" {
		return v
	}
	return ownerDef[key]
}
