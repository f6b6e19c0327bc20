package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/schemalens/explorer"
)

// TreeFlags contains flags for the tree command
type TreeFlags struct {
	Format string
}

// SetupTreeFlags creates and configures a FlagSet for the tree command.
func SetupTreeFlags() (*flag.FlagSet, *TreeFlags) {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	flags := &TreeFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: schemalens tree [flags] <file|->\n\n")
		Writef(output, "List every schema as a lightweight node, sorted by display text.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleTree executes the tree command
func HandleTree(args []string) error {
	fs, flags := SetupTreeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("tree command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	st, err := LoadStore(fs.Arg(0))
	if err != nil {
		return err
	}
	return OutputStructured(explorer.New(st).Tree(), flags.Format)
}
