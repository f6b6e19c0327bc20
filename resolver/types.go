package resolver

// Attribute is one resolved node in the expanded attribute tree.
// The JSON field names are part of the output contract.
type Attribute struct {
	// Name is the normalized display name of the property
	Name string `json:"name"`
	// Type is the concrete type name, "array of X", or the referenced
	// schema's name when the property is a bare reference
	Type string `json:"type"`
	// Description is never empty; a fallback is generated when the source
	// node carries none
	Description string `json:"description"`
	// Examples is always a sequence, possibly empty. A scalar example in
	// the source is wrapped into a single-element sequence.
	Examples []any `json:"examples"`
	// XSinceVersion, XFieldType, and XTag resolve from the node first,
	// falling back to the owning schema's own extension fields
	XSinceVersion any `json:"xSinceVersion"`
	XFieldType    any `json:"xFieldType"`
	XTag          any `json:"xTag"`
	// Children holds nested resolved attributes; empty for leaves
	Children []Attribute `json:"children"`
}

// RelationshipSummary carries the reference edge counts for a schema.
type RelationshipSummary struct {
	ReferencedByCount int `json:"referencedByCount"`
	ReferencesCount   int `json:"referencesCount"`
}

// ResolvedSchema is the fully expanded, cycle-safe, depth-bounded view of one
// named schema. References, ReferencedBy, and RelationshipSummary are only
// populated when the schema is requested standalone (see explorer.Describe);
// the resolver itself produces the tree fields.
type ResolvedSchema struct {
	Title         string      `json:"title"`
	Type          string      `json:"type"`
	Description   string      `json:"description"`
	XSinceVersion any         `json:"xSinceVersion"`
	XFieldType    any         `json:"xFieldType"`
	XTag          any         `json:"xTag"`
	Attributes    []Attribute `json:"attributes"`

	References          []string             `json:"references"`
	ReferencedBy        []string             `json:"referencedBy"`
	RelationshipSummary *RelationshipSummary `json:"relationshipSummary,omitempty"`

	// terminal marks a node produced as an in-band annotation (cycle or
	// unknown schema) rather than from a found definition. When such a node
	// is adopted as a parent's children, the annotation is preserved as a
	// single leaf attribute instead of vanishing with the empty attribute list.
	terminal bool
}
