package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/realty"
	"github.com/google/subcommands"
)

type importCmd struct {
	dryRun bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a JSON dump into the portfolio" }
func (*importCmd) Usage() string {
	return `pms import [-n] <file.json>

  Adds the properties, tenants, leases and payments of a JSON dump to the
  portfolio. Use '-' to read the standard input. See 'pms topic exchange'.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "n", false, "Validate the dump without importing it.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import expects exactly one file")
		return subcommands.ExitUsageError
	}

	var r io.Reader = os.Stdin
	if name := f.Arg(0); name != "-" {
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening dump: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	pf, err := realty.ImportDump(r, cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading dump: %v\n", err)
		return subcommands.ExitFailure
	}
	counts := fmt.Sprintf("%d properties, %d tenants, %d leases, %d payments",
		len(pf.Properties), len(pf.Tenants), len(pf.Leases), len(pf.Payments))
	if c.dryRun {
		fmt.Println("Valid dump:", counts)
		return subcommands.ExitSuccess
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := a.store.Import(ctx, pf); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing dump: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Imported", counts)
	return subcommands.ExitSuccess
}
