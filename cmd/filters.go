package cmd

import (
	"flag"

	"github.com/etnz/realty"
)

// filterFlags are the property filters shared by reports.
type filterFlags struct {
	search   string
	category string
	location string
	payment  string
	lease    string
}

func (c *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Text to find in the property name, address or location.")
	f.StringVar(&c.category, "category", "", "Property type, e.g. Condominium. See 'pms topic filters'.")
	f.StringVar(&c.location, "location", "", "Luzon, Visayas or Mindanao.")
	f.StringVar(&c.payment, "payment", "", "Payment status: Cash, Amortized or Fully Paid.")
	f.StringVar(&c.lease, "lease", "", "Lease status: leased or vacant.")
}

func (c *filterFlags) criteria() realty.Criteria {
	return realty.Criteria{
		Search:        c.search,
		Category:      c.category,
		Region:        c.location,
		PaymentStatus: c.payment,
		LeaseStatus:   c.lease,
	}
}
