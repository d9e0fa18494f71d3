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

type addTenantCmd struct {
	name, email, phone, occupation string
}

func (*addTenantCmd) Name() string     { return "add-tenant" }
func (*addTenantCmd) Synopsis() string { return "add a tenant" }
func (*addTenantCmd) Usage() string {
	return `pms add-tenant -name <name> [-email <email>] [-phone <phone>] [-occupation <text>]

  Adds a tenant and prints its identifier.
`
}

func (c *addTenantCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Tenant name.")
	f.StringVar(&c.email, "email", "", "Email.")
	f.StringVar(&c.phone, "phone", "", "Phone number.")
	f.StringVar(&c.occupation, "occupation", "", "Occupation.")
}

func (c *addTenantCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	t, err := a.store.CreateTenant(ctx, realty.Tenant{Name: c.name, Email: c.email, Phone: c.phone, Occupation: c.occupation})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding tenant: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(t.ID)
	return subcommands.ExitSuccess
}

type addLeaseCmd struct {
	property, tenant string
	start, end       string
	rent, deposit    string
	contract         string
}

func (*addLeaseCmd) Name() string     { return "add-lease" }
func (*addLeaseCmd) Synopsis() string { return "lease a property to a tenant" }
func (*addLeaseCmd) Usage() string {
	return `pms add-lease -property <id> -tenant <id> -start <date> -end <date> -rent <amount> [-deposit <amount>]

  Records an active lease and prints its identifier. Generate its post-dated
  checks with 'pms schedule'. See 'pms topic tenancy'.
`
}

func (c *addLeaseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "property", "", "Identifier of the leased property.")
	f.StringVar(&c.tenant, "tenant", "", "Identifier of the tenant.")
	f.StringVar(&c.start, "start", "", "First day of the lease.")
	f.StringVar(&c.end, "end", "", "Last day of the lease.")
	f.StringVar(&c.rent, "rent", "", "Monthly rent.")
	f.StringVar(&c.deposit, "deposit", "", "Security deposit.")
	f.StringVar(&c.contract, "contract", "", "Contract URL.")
}

func (c *addLeaseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := parseDateFlag(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := parseDateFlag(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	rent, err := a.money(c.rent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	deposit, err := a.money(c.deposit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	l, err := a.store.CreateLease(ctx, realty.Lease{
		PropertyID:      c.property,
		TenantID:        c.tenant,
		StartDate:       start,
		EndDate:         end,
		MonthlyRent:     rent,
		SecurityDeposit: deposit,
		ContractURL:     c.contract,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding lease: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(l.ID)
	return subcommands.ExitSuccess
}

type payCmd struct {
	lease     string
	date      string
	amount    string
	typ       string
	method    string
	pending   bool
	reference string
	remarks   string
	clear     string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a lease payment" }
func (*payCmd) Usage() string {
	return `pms pay -lease <id> -amount <amount> [-date <date>] [-type Rent] [-method Cash] [-pending]
pms pay -clear <payment id>

  Records a payment against a lease, completed unless -pending is given.
  With -clear, marks a pending payment, e.g. a post-dated check, as completed.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lease, "lease", "", "Identifier of the lease.")
	f.StringVar(&c.date, "date", "0d", "Payment date. See 'pms topic dates'.")
	f.StringVar(&c.amount, "amount", "", "Amount paid.")
	f.StringVar(&c.typ, "type", realty.RentPayment, "Payment type, e.g. Rent or Deposit.")
	f.StringVar(&c.method, "method", "Cash", "Payment method, e.g. Cash, Check or Bank Transfer.")
	f.BoolVar(&c.pending, "pending", false, "Record the payment as pending.")
	f.StringVar(&c.reference, "ref", "", "Reference number, e.g. the check number.")
	f.StringVar(&c.remarks, "remarks", "", "Remarks.")
	f.StringVar(&c.clear, "clear", "", "Identifier of a pending payment to mark as completed.")
}

func (c *payCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if c.clear != "" {
		p, err := a.store.SetPaymentState(ctx, c.clear, realty.PaymentCompleted, a.cfg.Actor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing payment: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Payment of %s on %s cleared\n", p.Amount, p.Date)
		return subcommands.ExitSuccess
	}

	on, err := realty.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := a.money(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	state := realty.PaymentCompleted
	if c.pending {
		state = realty.PaymentPending
	}
	p, err := a.store.CreatePayment(ctx, realty.Payment{
		LeaseID:     c.lease,
		Date:        on,
		Amount:      amount,
		Type:        c.typ,
		Method:      c.method,
		State:       state,
		ReferenceNo: c.reference,
		Remarks:     c.remarks,
	}, a.cfg.Actor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording payment: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(p.ID)
	return subcommands.ExitSuccess
}

type scheduleCmd struct {
	lease string
	save  bool
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "generate the post-dated checks of a lease" }
func (*scheduleCmd) Usage() string {
	return `pms schedule -lease <id> [-save]

  Prints one pending rent payment by check per month of the lease. With
  -save, records them all, or none if any fails. See 'pms topic tenancy'.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lease, "lease", "", "Identifier of the lease.")
	f.BoolVar(&c.save, "save", false, "Record the schedule.")
}

func (c *scheduleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.lease == "" {
		fmt.Fprintln(os.Stderr, "Error: -lease is required")
		return subcommands.ExitUsageError
	}
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	lease, err := a.store.Lease(ctx, c.lease)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	drafts := realty.GenerateMonthlySchedule(lease)
	if len(drafts) == 0 {
		fmt.Fprintf(os.Stderr, "Error: lease %s has no valid term %v\n", lease.ID, lease.Term())
		return subcommands.ExitFailure
	}

	title := "Post-Dated Checks"
	if c.save {
		if drafts, err = a.store.CreatePayments(ctx, drafts, a.cfg.Actor); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording schedule: %v\n", err)
			return subcommands.ExitFailure
		}
		title = "Recorded Post-Dated Checks"
	}
	printMarkdown(renderer.ScheduleMarkdown(title, drafts))
	return subcommands.ExitSuccess
}
