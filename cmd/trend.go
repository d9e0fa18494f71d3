package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/realty"
	"github.com/etnz/realty/renderer"
	"github.com/google/subcommands"
)

type trendCmd struct {
	filterFlags
	date   string
	count  int
	period string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display the market value trend" }
func (*trendCmd) Usage() string {
	return `pms trend [-n <count>] [-p month|quarter|year] [-d <date>] [filters]

  Displays the market value of the properties matching the filters at the
  report date and at each of the previous periods. See 'pms topic trend'.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.date, "d", "0d", "Date of the last point. See 'pms topic dates'.")
	f.IntVar(&c.count, "n", 6, "Number of points.")
	f.StringVar(&c.period, "p", "month", "Period between points: day, week, month, quarter or year.")
}

func (c *trendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := realty.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	period, err := realty.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.count <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must be positive, got %d\n", c.count)
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
	points := realty.MarketValueTrend(pf.Filter(c.criteria()), on, c.count, period)
	printMarkdown(renderer.TrendMarkdown(points))
	return subcommands.ExitSuccess
}
