package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/realty/renderer"
	"github.com/google/subcommands"
)

type leasesCmd struct {
	id string
}

func (*leasesCmd) Name() string     { return "leases" }
func (*leasesCmd) Synopsis() string { return "list leases and their payments" }
func (*leasesCmd) Usage() string {
	return `pms leases [-id <lease id>]

  Lists the leases with their property, tenant, term, rent and the total of
  collected and pending payments. With -id, lists the payments of one lease.
`
}

func (c *leasesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Identifier of the lease whose payments to list.")
}

func (c *leasesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	views := pf.LeaseViews()
	if c.id == "" {
		printMarkdown(renderer.LeasesMarkdown(views))
		return subcommands.ExitSuccess
	}
	for _, v := range views {
		if v.ID == c.id {
			title := fmt.Sprintf("Payments of %s at %s", v.TenantName, v.PropertyName)
			printMarkdown(renderer.ScheduleMarkdown(title, v.Payments))
			return subcommands.ExitSuccess
		}
	}
	fmt.Fprintf(os.Stderr, "Error: lease %q not found\n", c.id)
	return subcommands.ExitFailure
}
