package resolver

import (
	"github.com/erraggy/schemalens/lenserrors"
)

// Option is a function that configures a Resolver
type Option func(*Resolver) error

// WithMaxRefDepth overrides the number of named-schema reference hops
// expanded before collapsing. The default is DefaultMaxRefDepth.
func WithMaxRefDepth(depth int) Option {
	return func(r *Resolver) error {
		if depth < 0 {
			return &lenserrors.ConfigError{
				Option:  "WithMaxRefDepth",
				Value:   depth,
				Message: "depth must be non-negative",
			}
		}
		r.maxRefDepth = depth
		return nil
	}
}

// WithLogger sets the structured logger used for debug output.
// If not set, logging is disabled.
func WithLogger(l Logger) Option {
	return func(r *Resolver) error {
		if l == nil {
			return &lenserrors.ConfigError{
				Option:  "WithLogger",
				Message: "logger must not be nil",
			}
		}
		r.logger = l
		return nil
	}
}
