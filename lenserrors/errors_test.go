package lenserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDocumentNotFoundError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &DocumentNotFoundError{
			Path:    "/data/asyncapi.json",
			Message: "stat failed",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "document not found: /data/asyncapi.json: stat failed: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &DocumentNotFoundError{}
		if err.Error() != "document not found" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with path only", func(t *testing.T) {
		err := &DocumentNotFoundError{Path: "asyncapi.json"}
		if err.Error() != "document not found: asyncapi.json" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &DocumentNotFoundError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &DocumentNotFoundError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("errors.Is matches sentinel", func(t *testing.T) {
		err := &DocumentNotFoundError{Path: "asyncapi.json"}
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Error("errors.Is should match ErrDocumentNotFound")
		}
		if errors.Is(err, ErrSchemaNotFound) {
			t.Error("errors.Is should not match ErrSchemaNotFound")
		}
	})

	t.Run("errors.Is matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("load failed: %w", &DocumentNotFoundError{Path: "asyncapi.json"})
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Error("errors.Is should match ErrDocumentNotFound through wrapping")
		}
	})

	t.Run("errors.As extracts type", func(t *testing.T) {
		err := fmt.Errorf("load failed: %w", &DocumentNotFoundError{Path: "asyncapi.json"})
		var docErr *DocumentNotFoundError
		if !errors.As(err, &docErr) {
			t.Fatal("errors.As should extract DocumentNotFoundError")
		}
		if docErr.Path != "asyncapi.json" {
			t.Errorf("unexpected path: %s", docErr.Path)
		}
	})
}

func TestSchemaNotFoundError(t *testing.T) {
	t.Run("Error message with name", func(t *testing.T) {
		err := &SchemaNotFoundError{Name: "Payment"}
		if err.Error() != "schema not found: Payment" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with name and message", func(t *testing.T) {
		err := &SchemaNotFoundError{Name: "Payment", Message: "not in components.schemas"}
		if err.Error() != "schema not found: Payment: not in components.schemas" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &SchemaNotFoundError{}
		if err.Error() != "schema not found" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &SchemaNotFoundError{Name: "Payment"}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})

	t.Run("errors.Is matches sentinel", func(t *testing.T) {
		err := &SchemaNotFoundError{Name: "Payment"}
		if !errors.Is(err, ErrSchemaNotFound) {
			t.Error("errors.Is should match ErrSchemaNotFound")
		}
		if errors.Is(err, ErrDocumentNotFound) {
			t.Error("errors.Is should not match ErrDocumentNotFound")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ConfigError{
			Option:  "WithMaxRefDepth",
			Value:   -1,
			Message: "depth must be non-negative",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "configuration error for WithMaxRefDepth (value: -1): depth must be non-negative: underlying" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ConfigError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("errors.Is matches sentinel", func(t *testing.T) {
		err := &ConfigError{Option: "WithFilePath"}
		if !errors.Is(err, ErrConfig) {
			t.Error("errors.Is should match ErrConfig")
		}
	})
}
