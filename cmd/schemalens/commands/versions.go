package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/schemalens/explorer"
)

// VersionsFlags contains flags for the versions command
type VersionsFlags struct {
	Format string
}

// SetupVersionsFlags creates and configures a FlagSet for the versions command.
func SetupVersionsFlags() (*flag.FlagSet, *VersionsFlags) {
	fs := flag.NewFlagSet("versions", flag.ContinueOnError)
	flags := &VersionsFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: schemalens versions [flags] <file|->\n\n")
		Writef(output, "Enumerate distinct x-since-version markers across all schemas,\n")
		Writef(output, "falling back to the document-level info.version, version-aware sorted.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleVersions executes the versions command
func HandleVersions(args []string) error {
	fs, flags := SetupVersionsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("versions command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	st, err := LoadStore(fs.Arg(0))
	if err != nil {
		return err
	}
	return OutputStructured(explorer.New(st).Versions(), flags.Format)
}
