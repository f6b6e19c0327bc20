package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/schemalens/explorer"
)

// SearchFlags contains flags for the search command
type SearchFlags struct {
	Format string
}

// SetupSearchFlags creates and configures a FlagSet for the search command.
func SetupSearchFlags() (*flag.FlagSet, *SearchFlags) {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	flags := &SearchFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: schemalens search [flags] <file|-> <query>\n\n")
		Writef(output, "Search schemas by case-insensitive substring across name, title,\n")
		Writef(output, "description, tag, and field type.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleSearch executes the search command
func HandleSearch(args []string) error {
	fs, flags := SetupSearchFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("search command requires a file path and a query")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	st, err := LoadStore(fs.Arg(0))
	if err != nil {
		return err
	}
	return OutputStructured(explorer.New(st).Search(fs.Arg(1)), flags.Format)
}
