package cmd

import (
	"github.com/google/subcommands"
)

// Commands lists the pms subcommands by group.
var Commands = map[string][]subcommands.Command{
	"reports": {
		&summaryCmd{},
		&propertiesCmd{},
		&trendCmd{},
		&leasesCmd{},
		&documentsCmd{},
		&activityCmd{},
		&exportCmd{},
	},
	"portfolio": {
		&addPropertyCmd{},
		&updatePropertyCmd{},
		&appraiseCmd{},
		&attachCmd{},
	},
	"tenancy": {
		&addTenantCmd{},
		&addLeaseCmd{},
		&payCmd{},
		&scheduleCmd{},
	},
	"data": {
		&importCmd{},
		&adminCmd{},
	},
	"help": {
		&topicCmd{},
		&assistCmd{},
	},
}

// groups is the display order of Commands.
var groups = []string{"reports", "portfolio", "tenancy", "data", "help"}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, group := range groups {
		for _, cmd := range Commands[group] {
			c.Register(cmd, group)
		}
	}
}

// IsRegistered reports whether name is a pms subcommand.
func IsRegistered(name string) bool {
	for _, cmds := range Commands {
		for _, c := range cmds {
			if c.Name() == name {
				return true
			}
		}
	}
	return false
}
