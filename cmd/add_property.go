package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/etnz/realty"
	"github.com/google/subcommands"
)

// addPropertyCmd holds the flags for the 'add-property' subcommand.
type addPropertyCmd struct {
	file string

	name, typ, location, address string
	unit, floor, lot, title      string
	area                         float64
	developer, buyer             string
	broker, brokerContact        string
	photo                        string

	cost, costPerSqm, fitOut string
	payment, scheduleURL     string

	lessee, leaseDate, rate string
	term                    int

	insurer, insured, coverage string
	tax, taxPaid               string
	dues, duesPaid             string
	caretaker, caretakerRate   string
}

func (*addPropertyCmd) Name() string     { return "add-property" }
func (*addPropertyCmd) Synopsis() string { return "add a property to the portfolio" }
func (*addPropertyCmd) Usage() string {
	return `pms add-property -name <name> -type <type> -location <region> [options]
pms add-property -f <property.json>

  Adds a property and prints its identifier. The property is described with
  flags, or read from a JSON file in the format printed by
  'pms properties -id <id> -json' ('-' for the standard input).

Usage Examples:
$ pms add-property -name "Makati Loft" -type Condominium -location Luzon -cost 15000000 -payment "Fully Paid"
`
}

func (c *addPropertyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSON file describing the property.")

	f.StringVar(&c.name, "name", "", "Property name.")
	f.StringVar(&c.typ, "type", "", "Property type, e.g. Condominium.")
	f.StringVar(&c.location, "location", "", "Luzon, Visayas or Mindanao.")
	f.StringVar(&c.address, "address", "", "Full address.")
	f.StringVar(&c.unit, "unit", "", "Unit number.")
	f.StringVar(&c.floor, "floor", "", "Floor number.")
	f.StringVar(&c.lot, "lot", "", "Lot number.")
	f.StringVar(&c.title, "title", "", "TCT or CCT number.")
	f.Float64Var(&c.area, "area", 0, "Area in square meters.")
	f.StringVar(&c.developer, "developer", "", "Original developer.")
	f.StringVar(&c.buyer, "buyer", "", "Buyer's name.")
	f.StringVar(&c.broker, "broker", "", "Broker's name.")
	f.StringVar(&c.brokerContact, "broker-contact", "", "Broker's contact.")
	f.StringVar(&c.photo, "photo", "", "Photo URL.")

	f.StringVar(&c.cost, "cost", "", "Unit or lot acquisition cost.")
	f.StringVar(&c.costPerSqm, "cost-per-sqm", "", "Acquisition cost per square meter.")
	f.StringVar(&c.fitOut, "fitout", "", "Fit-out cost.")
	f.StringVar(&c.payment, "payment", string(realty.Cash), "Payment status: Cash, Amortized or Fully Paid.")
	f.StringVar(&c.scheduleURL, "schedule-url", "", "Payment schedule URL.")

	f.StringVar(&c.lessee, "lessee", "", "Lessee, when the property is leased.")
	f.StringVar(&c.leaseDate, "lease-date", "", "Lease date.")
	f.StringVar(&c.rate, "rate", "", "Monthly lease rate.")
	f.IntVar(&c.term, "term", 0, "Lease term in years.")

	f.StringVar(&c.insurer, "insurer", "", "Insurance company, when the property is insured.")
	f.StringVar(&c.insured, "insured", "", "Amount insured.")
	f.StringVar(&c.coverage, "coverage", "", "Insurance coverage date.")
	f.StringVar(&c.tax, "tax", "", "Yearly real-estate tax.")
	f.StringVar(&c.taxPaid, "tax-paid", "", "Date the real-estate tax was last paid.")
	f.StringVar(&c.dues, "dues", "", "Monthly condo dues.")
	f.StringVar(&c.duesPaid, "dues-paid", "", "Date condo dues were last paid.")
	f.StringVar(&c.caretaker, "caretaker", "", "Caretaker's name.")
	f.StringVar(&c.caretakerRate, "caretaker-rate", "", "Caretaker monthly rate.")
}

// property builds the property described by the flags.
func (c *addPropertyCmd) property(a *app) (*realty.Property, error) {
	var err error
	p := &realty.Property{
		Name:              c.name,
		PhotoURL:          c.photo,
		FullAddress:       c.address,
		UnitNumber:        c.unit,
		FloorNumber:       c.floor,
		LotNo:             c.lot,
		TitleNo:           c.title,
		AreaSqm:           c.area,
		OriginalDeveloper: c.developer,
		BrokerName:        c.broker,
		BrokerContact:     c.brokerContact,
		BuyerName:         c.buyer,
		Payment:           realty.PaymentInfo{ScheduleURL: c.scheduleURL},
	}
	if p.Type, err = realty.ParsePropertyType(c.typ); err != nil {
		return nil, err
	}
	if p.Region, err = realty.ParseRegion(c.location); err != nil {
		return nil, err
	}
	if p.Payment.Status, err = realty.ParsePaymentStatus(c.payment); err != nil {
		return nil, err
	}

	// err keeps the first parsing error.
	amount := func(s string) realty.Money {
		m, perr := a.money(s)
		if err == nil {
			err = perr
		}
		return m
	}
	date := func(s string) realty.Date {
		d, perr := parseDateFlag(s)
		if err == nil {
			err = perr
		}
		return d
	}

	p.Acquisition = realty.Acquisition{
		UnitLotCost: amount(c.cost),
		CostPerSqm:  amount(c.costPerSqm),
		FitOutCost:  amount(c.fitOut),
	}
	if c.lessee != "" {
		p.Lease = &realty.LeaseInfo{
			Lessee:      c.lessee,
			LeaseDate:   date(c.leaseDate),
			LeaseRate:   amount(c.rate),
			TermInYears: c.term,
		}
	}
	if c.insurer != "" {
		p.Insurance = &realty.Insurance{
			Company:       c.insurer,
			AmountInsured: amount(c.insured),
			CoverageDate:  date(c.coverage),
		}
	}
	p.Management = realty.Management{
		CaretakerName:         c.caretaker,
		CaretakerRatePerMonth: amount(c.caretakerRate),
		RealEstateTaxes:       realty.Receipt{AmountPaid: amount(c.tax), LastPaid: date(c.taxPaid)},
	}
	if c.dues != "" || c.duesPaid != "" {
		p.Management.CondoDues = &realty.Receipt{AmountPaid: amount(c.dues), LastPaid: date(c.duesPaid)}
	}
	return p, err
}

// readProperty decodes a property from a JSON file, '-' for stdin. Amounts
// must be in the portfolio currency 'cur' or carry no currency.
func readProperty(name, cur string) (*realty.Property, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var p realty.Property
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("cannot decode property from %q: %w", name, err)
	}
	if err := p.InCurrency(cur); err != nil {
		return nil, fmt.Errorf("cannot read property from %q: %w", name, err)
	}
	return &p, nil
}

func (c *addPropertyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	var p *realty.Property
	if c.file != "" {
		p, err = readProperty(c.file, a.cfg.Currency)
	} else {
		p, err = c.property(a)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	created, err := a.store.CreateProperty(ctx, p, a.cfg.Actor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding property: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(created.ID)
	return subcommands.ExitSuccess
}

type updatePropertyCmd struct {
	id   string
	file string
}

func (*updatePropertyCmd) Name() string     { return "update-property" }
func (*updatePropertyCmd) Synopsis() string { return "replace a property with a JSON description" }
func (*updatePropertyCmd) Usage() string {
	return `pms update-property -id <property id> -f <property.json>

  Replaces the property, including its appraisals and documents, with the one
  described in the JSON file ('-' for the standard input).

Usage Examples:
$ pms properties -id <id> -json > p.json
$ pms update-property -id <id> -f p.json
`
}

func (c *updatePropertyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Identifier of the property to replace.")
	f.StringVar(&c.file, "f", "-", "JSON file describing the property.")
}

func (c *updatePropertyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	p, err := readProperty(c.file, a.cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p.ID = c.id

	updated, err := a.store.UpdateProperty(ctx, p, a.cfg.Actor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating property: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %s (%d appraisals, %d documents)\n", updated.Name, len(updated.Appraisals), len(updated.Documentation.Docs))
	return subcommands.ExitSuccess
}

type appraiseCmd struct {
	property string
	date     string
	value    string
	by       string
	report   string
}

func (*appraiseCmd) Name() string     { return "appraise" }
func (*appraiseCmd) Synopsis() string { return "record an appraisal of a property" }
func (*appraiseCmd) Usage() string {
	return `pms appraise -property <id> -value <amount> [-date <date>] [-by <appraiser>] [-report <url>]

  Records a third-party valuation of a property. The most recent appraisal
  is the property's current value. See 'pms topic valuation'.
`
}

func (c *appraiseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "property", "", "Identifier of the appraised property.")
	f.StringVar(&c.date, "date", "0d", "Appraisal date. See 'pms topic dates'.")
	f.StringVar(&c.value, "value", "", "Appraised value.")
	f.StringVar(&c.by, "by", "", "Appraisal company.")
	f.StringVar(&c.report, "report", "", "Report URL.")
}

func (c *appraiseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" || c.value == "" {
		fmt.Fprintln(os.Stderr, "Error: -property and -value are required")
		return subcommands.ExitUsageError
	}
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

	value, err := a.money(c.value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := a.store.AddAppraisal(ctx, c.property, realty.Appraisal{Date: on, Value: value, Appraiser: c.by, ReportURL: c.report})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording appraisal: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s is now valued %s (%s)\n", p.Name, p.CurrentValue(), p.ValueChange().SignedString())
	return subcommands.ExitSuccess
}

type attachCmd struct {
	property string
	typ      string
	status   string
	priority string
	due      string
	executed string
	url      string
	fileName string
}

func (*attachCmd) Name() string     { return "attach" }
func (*attachCmd) Synopsis() string { return "attach a document to a property" }
func (*attachCmd) Usage() string {
	return `pms attach -property <id> -type <document type> [-status <text>] [-priority High|Medium|Low] [-due <date>] [-url <url>]

  Records a document of a property. The status text decides whether it is
  still pending. See 'pms topic documents'.
`
}

func (c *attachCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "property", "", "Identifier of the property.")
	f.StringVar(&c.typ, "type", "", "Document type, e.g. "+strconv.Quote(string(realty.TaxDeclaration))+".")
	f.StringVar(&c.status, "status", "Available", "Free-text status, e.g. 'Missing Original' or 'For Submission'.")
	f.StringVar(&c.priority, "priority", string(realty.Medium), "Follow-up priority: High, Medium or Low.")
	f.StringVar(&c.due, "due", "", "Due date.")
	f.StringVar(&c.executed, "executed", "", "Execution date.")
	f.StringVar(&c.url, "url", "", "Document URL.")
	f.StringVar(&c.fileName, "file", "", "File name.")
}

func (c *attachCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -property is required")
		return subcommands.ExitUsageError
	}
	typ, err := realty.ParseDocumentType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	due, err := parseDateFlag(c.due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing due date: %v\n", err)
		return subcommands.ExitUsageError
	}
	executed, err := parseDateFlag(c.executed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing execution date: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	doc, err := a.store.AddDocument(ctx, c.property, realty.Document{
		Type:          typ,
		Status:        c.status,
		Priority:      realty.Priority(c.priority),
		DueDate:       due,
		ExecutionDate: executed,
		URL:           c.url,
		FileName:      c.fileName,
	}, a.cfg.Actor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error attaching document: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Attached %s to %s (%s)\n", doc.Name(), doc.PropertyName, doc.EffectiveState())
	return subcommands.ExitSuccess
}
