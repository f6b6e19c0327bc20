// Package store loads the source schema document once and exposes an
// immutable name-to-definition mapping over its components/schemas section.
//
// The document is read and parsed exactly once at Load time; the component
// mapping is computed lazily with a single-initialization guard and treated
// as read-only for the remainder of the process. Concurrent reads from
// multiple goroutines are safe without locking.
package store

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/schemalens/lenserrors"
)

// Store holds the parsed source document and its component mapping.
// Treat a Store as read-only after Load returns.
type Store struct {
	// sourcePath is the document's input source path or configured name
	sourcePath string
	// raw is the full parsed document
	raw map[string]any

	// componentsOnce guards the one-time extraction of the component mapping
	componentsOnce sync.Once
	components     map[string]map[string]any
}

// Load reads and parses the source document using functional options.
// Exactly one input source must be provided (WithFilePath, WithReader, or
// WithBytes). A missing file surfaces as a DocumentNotFoundError; this is
// the engine's only fatal failure.
//
// Example:
//
//	st, err := store.Load(store.WithFilePath("asyncapi.json"))
func Load(opts ...Option) (*Store, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("store: invalid options: %w", err)
	}

	var data []byte
	sourcePath := "<bytes>"
	switch {
	case cfg.filePath != nil:
		sourcePath = *cfg.filePath
		data, err = os.ReadFile(*cfg.filePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &lenserrors.DocumentNotFoundError{Path: *cfg.filePath, Cause: err}
			}
			return nil, fmt.Errorf("store: failed to read %s: %w", *cfg.filePath, err)
		}
	case cfg.reader != nil:
		sourcePath = "<reader>"
		data, err = io.ReadAll(cfg.reader)
		if err != nil {
			return nil, fmt.Errorf("store: failed to read input: %w", err)
		}
	case cfg.bytes != nil:
		data = cfg.bytes
	}

	// The YAML parser handles both YAML and JSON input
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("store: failed to parse document %s: %w", sourcePath, err)
	}

	if cfg.sourceName != nil {
		sourcePath = *cfg.sourceName
	}

	return &Store{sourcePath: sourcePath, raw: raw}, nil
}

// SourcePath returns the document's input source path or configured name.
func (s *Store) SourcePath() string {
	return s.sourcePath
}

// RawDocument returns the full parsed document. Callers needing sections
// outside components/schemas (e.g. info.version) read it through DeepGet.
func (s *Store) RawDocument() map[string]any {
	return s.raw
}

// Components returns the components/schemas mapping, or an empty mapping when
// the section is absent or malformed. The mapping is extracted once and the
// identical map is returned on every call.
func (s *Store) Components() map[string]map[string]any {
	s.componentsOnce.Do(func() {
		s.components = make(map[string]map[string]any)
		section, _ := DeepGet(s.raw, "components", "schemas").(map[string]any)
		for name, def := range section {
			// A non-mapping definition is absorbed as an empty one rather
			// than dropped: the name stays listable and resolvable.
			m, _ := def.(map[string]any)
			if m == nil {
				m = map[string]any{}
			}
			s.components[name] = m
		}
	})
	return s.components
}

// Definition returns the raw definition for a named schema.
func (s *Store) Definition(name string) (map[string]any, bool) {
	def, ok := s.Components()[name]
	return def, ok
}

// InfoVersion returns the document-level info.version string, or "" if absent.
func (s *Store) InfoVersion() string {
	v, _ := DeepGet(s.raw, "info", "version").(string)
	return v
}

// DeepGet traverses nested mappings by key path, returning nil when any
// segment is missing or not a mapping.
func DeepGet(doc map[string]any, path ...string) any {
	current := any(doc)
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[key]
		if !ok {
			return nil
		}
	}
	return current
}
