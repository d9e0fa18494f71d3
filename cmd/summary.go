package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/realty"
	"github.com/etnz/realty/config"
	"github.com/etnz/realty/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	filterFlags
	date   string
	income string
	json   bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio financial summary" }
func (*summaryCmd) Usage() string {
	return `pms summary [-d <date>] [-income embedded|standalone] [-json] [filters]

  Displays the financial summary of the properties matching the filters:
  acquisition cost, market value, income, expenses, NOI and ROI.
  See 'pms topic finance'.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.date, "d", "0d", "Date of the summary. See 'pms topic dates'.")
	f.StringVar(&c.income, "income", "", "Where rental income is read from: embedded or standalone. Defaults to "+config.EnvIncomeSource+".")
	f.BoolVar(&c.json, "json", false, "Print the summary as JSON.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	source, err := a.incomeSource(c.income)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	pf, err := a.store.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	criteria := c.criteria()
	summary := pf.Summary(criteria, source)

	if c.json {
		return printJSON(summary)
	}

	printMarkdown(renderer.SummaryMarkdown(summary, pf.Aggregate(criteria), on))
	return subcommands.ExitSuccess
}
