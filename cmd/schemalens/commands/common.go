// Package commands provides CLI command handlers for schemalens.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/schemalens/store"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// WriteStructured writes data in the specified format (json or yaml) to w.
func WriteStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	_, err = fmt.Fprintln(w, string(bytes))
	return err
}

// OutputStructured writes data in the specified format to stdout.
func OutputStructured(data any, format string) error {
	return WriteStructured(os.Stdout, data, format)
}

// Writef writes formatted output, ignoring write errors (used for usage text).
func Writef(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// LoadStore loads the document at path, reading stdin when path is "-".
func LoadStore(path string) (*store.Store, error) {
	if path == StdinFilePath {
		return store.Load(store.WithReader(os.Stdin), store.WithSourceName("<stdin>"))
	}
	return store.Load(store.WithFilePath(path))
}
