package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/realty/store"
	"github.com/google/subcommands"
)

type adminCmd struct {
	confirm bool
}

func (*adminCmd) Name() string     { return "admin" }
func (*adminCmd) Synopsis() string { return "reset or clear the portfolio data" }
func (*adminCmd) Usage() string {
	return `pms admin reset|clear -confirm

  reset  replaces every property, tenant, lease and payment with demo data.
  clear  deletes every property, tenant, lease and payment.

  The recent activity log is kept in both cases.
`
}

func (c *adminCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.confirm, "confirm", false, "Confirm the destructive operation.")
}

func (c *adminCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: admin expects 'reset' or 'clear'")
		return subcommands.ExitUsageError
	}
	action := f.Arg(0)
	if action != "reset" && action != "clear" {
		fmt.Fprintf(os.Stderr, "Error: unknown admin action %q\n", action)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if action == "reset" {
		err = a.store.Reset(ctx, c.confirm, a.cfg.Actor)
	} else {
		err = a.store.Clear(ctx, c.confirm, a.cfg.Actor)
	}
	if errors.Is(err, store.ErrNotConfirmed) {
		fmt.Fprintf(os.Stderr, "Error: %v\nRun 'pms admin %s -confirm' to proceed.\n", err, action)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Portfolio %s done\n", action)
	return subcommands.ExitSuccess
}
