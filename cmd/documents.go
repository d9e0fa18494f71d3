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

type documentsCmd struct {
	category string
	search   string
	pending  bool
	due      int
}

func (*documentsCmd) Name() string     { return "documents" }
func (*documentsCmd) Synopsis() string { return "list property documents" }
func (*documentsCmd) Usage() string {
	return `pms documents [-category <type>] [-search <text>]
pms documents -pending
pms documents -due <days>

  Lists the documents of every property, including lease contracts and
  insurance policies linked from property records. See 'pms topic documents'.
`
}

func (c *documentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Document type to list.")
	f.StringVar(&c.search, "search", "", "Text to find in the file name or property name.")
	f.BoolVar(&c.pending, "pending", false, "List the pending documents, high priority first.")
	f.IntVar(&c.due, "due", -1, "List the documents due within that many days.")
}

func (c *documentsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	switch {
	case c.pending:
		printMarkdown(renderer.DocumentsMarkdown("Pending Documents", pf.PendingDocuments()))
	case c.due >= 0:
		title := fmt.Sprintf("Documents Due Within %d Days", c.due)
		printMarkdown(renderer.DocumentsMarkdown(title, realty.UpcomingDueDates(pf.Properties, today(), c.due)))
	default:
		printMarkdown(renderer.DocumentsMarkdown("Documents", realty.FilterDocuments(pf.AllDocuments(), c.category, c.search)))
	}
	return subcommands.ExitSuccess
}
