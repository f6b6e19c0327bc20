package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/schemalens/explorer"
	"github.com/erraggy/schemalens/resolver"
)

// GetFlags contains flags for the get command
type GetFlags struct {
	Format      string
	MaxRefDepth int
}

// SetupGetFlags creates and configures a FlagSet for the get command.
func SetupGetFlags() (*flag.FlagSet, *GetFlags) {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	flags := &GetFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")
	fs.IntVar(&flags.MaxRefDepth, "max-ref-depth", resolver.DefaultMaxRefDepth, "named-schema reference hops to expand before collapsing")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: schemalens get [flags] <file|-> <schema>\n\n")
		Writef(output, "Resolve one schema into its fully de-referenced attribute tree,\n")
		Writef(output, "augmented with references, referencedBy, and a relationship summary.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  schemalens get asyncapi.json Payment\n")
		Writef(output, "  schemalens get --format yaml asyncapi.json Payment\n")
		Writef(output, "  cat asyncapi.json | schemalens get - Payment\n")
	}

	return fs, flags
}

// HandleGet executes the get command
func HandleGet(args []string) error {
	fs, flags := SetupGetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("get command requires a file path and a schema name")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	st, err := LoadStore(fs.Arg(0))
	if err != nil {
		return err
	}
	r, err := resolver.New(st, resolver.WithMaxRefDepth(flags.MaxRefDepth))
	if err != nil {
		return err
	}

	detail, err := explorer.New(st, explorer.WithResolver(r)).Describe(fs.Arg(1))
	if err != nil {
		return err
	}
	return OutputStructured(detail, flags.Format)
}
