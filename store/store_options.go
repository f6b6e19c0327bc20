package store

import (
	"errors"
	"io"
)

// Option is a function that configures a load operation
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// WithFilePath loads the document from a file on disk.
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader loads the document from an io.Reader.
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		cfg.reader = r
		return nil
	}
}

// WithBytes loads the document from a byte slice.
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		cfg.bytes = data
		return nil
	}
}

// WithSourceName overrides the SourcePath reported for the loaded document.
// Useful when loading from a reader or bytes where no natural path exists.
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		cfg.sourceName = &name
		return nil
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	sourceCount := 0
	for _, hasSource := range []bool{cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil} {
		if hasSource {
			sourceCount++
		}
	}
	if sourceCount == 0 {
		return nil, errors.New("must specify an input source (use WithFilePath, WithReader, or WithBytes)")
	}
	if sourceCount > 1 {
		return nil, errors.New("must specify exactly one input source")
	}

	return cfg, nil
}
