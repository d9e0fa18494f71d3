package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/realty/renderer"
	"github.com/google/subcommands"
)

type propertiesCmd struct {
	filterFlags
	id   string
	json bool
}

func (*propertiesCmd) Name() string     { return "properties" }
func (*propertiesCmd) Synopsis() string { return "list properties or show one of them" }
func (*propertiesCmd) Usage() string {
	return `pms properties [filters] [-json]
pms properties -id <property id> [-json]

  Lists the properties matching the filters, most recently added first, with
  their cost, current value and change. With -id, shows the detail of one
  property.
`
}

func (c *propertiesCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.id, "id", "", "Identifier of the property to show.")
	f.BoolVar(&c.json, "json", false, "Print the properties as JSON.")
}

func (c *propertiesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if c.id != "" {
		p, err := a.store.Property(ctx, c.id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if c.json {
			return printJSON(p)
		}
		printMarkdown(renderer.PropertyMarkdown(p))
		return subcommands.ExitSuccess
	}

	pf, err := a.store.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	props := pf.Filter(c.criteria())
	if c.json {
		return printJSON(props)
	}
	printMarkdown(renderer.PropertiesMarkdown(props))
	return subcommands.ExitSuccess
}

func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
