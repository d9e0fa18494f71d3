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

type exportCmd struct {
	filterFlags
	date   string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the financial report as CSV" }
func (*exportCmd) Usage() string {
	return `pms export [-d <date>] [-o <file>|-] [filters]

  Writes one CSV row per property matching the filters, to
  financial_report_<date>.csv by default. See 'pms topic exchange'.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.date, "d", "0d", "Date of the report. See 'pms topic dates'.")
	f.StringVar(&c.output, "o", "", "Output file, '-' for the standard output.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := realty.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	pf, err := a.store.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	name := c.output
	if name == "" {
		name = realty.ExportFileName(on)
	}
	if name != "-" {
		file, err := os.Create(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}
	if err := realty.WriteCSV(w, pf.Filter(c.criteria()), on); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if name != "-" {
		fmt.Fprintf(os.Stderr, "Exported %s\n", name)
	}
	return subcommands.ExitSuccess
}
