package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/realty/renderer"
	"github.com/google/subcommands"
)

type activityCmd struct {
	count int
}

func (*activityCmd) Name() string     { return "activity" }
func (*activityCmd) Synopsis() string { return "display the recent activity" }
func (*activityCmd) Usage() string {
	return `pms activity [-n <count>]

  Displays the most recent events of the portfolio, newest first, including
  administrative operations and who ran them.
`
}

func (c *activityCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 10, "Number of events, all of them if not positive.")
}

func (c *activityCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	activities, err := a.store.Activities(ctx, c.count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ActivityMarkdown(activities, now()))
	return subcommands.ExitSuccess
}
