package realty

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid record")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// nonNegative reports amounts below zero. The engine reads them as zero.
func nonNegative(name string, m Money) error {
	if m.IsNegative() {
		return invalid("%s is negative: %v", name, m)
	}
	return nil
}

// Validate returns all the issues found in p, joined, or nil.
func (p *Property) Validate() error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, invalid("property name is missing"))
	}
	if !slices.Contains(PropertyTypes, p.Type) {
		errs = append(errs, invalid("unknown property type %q", p.Type))
	}
	if !slices.Contains(Regions, p.Region) {
		errs = append(errs, invalid("unknown location %q", p.Region))
	}
	if !slices.Contains(PaymentStatuses, p.Payment.Status) {
		errs = append(errs, invalid("unknown payment status %q", p.Payment.Status))
	}
	if p.AreaSqm < 0 {
		errs = append(errs, invalid("area is negative: %v", p.AreaSqm))
	}
	errs = append(errs,
		nonNegative("unit/lot cost", p.Acquisition.UnitLotCost),
		nonNegative("fit-out cost", p.Acquisition.FitOutCost),
		nonNegative("caretaker rate", p.Management.CaretakerRatePerMonth),
		nonNegative("real estate taxes", p.Management.RealEstateTaxes.AmountPaid),
	)
	if p.Management.CondoDues != nil {
		errs = append(errs, nonNegative("condo dues", p.Management.CondoDues.AmountPaid))
	}
	if p.Lease != nil {
		errs = append(errs, nonNegative("lease rate", p.Lease.LeaseRate))
		if p.Lease.TermInYears < 0 {
			errs = append(errs, invalid("lease term is negative: %d", p.Lease.TermInYears))
		}
	}
	if cur, ok := p.Currency(); !ok {
		errs = append(errs, invalid("amounts mix %s with other currencies", cur))
	}
	for _, a := range p.Appraisals {
		if a.Date.IsZero() {
			errs = append(errs, invalid("appraisal by %q has no date", a.Appraiser))
		}
		errs = append(errs, nonNegative(fmt.Sprintf("appraisal on %v", a.Date), a.Value))
	}
	return errors.Join(errs...)
}

// InCurrency returns an error if one of the amounts of p is in a currency
// other than cur. Amounts without currency are read in cur.
func (p *Property) InCurrency(cur string) error {
	return InCurrency(cur, p.amounts()...)
}

// InCurrency returns an error for the first amount in a currency other than
// cur. Amounts without currency are read in cur.
func InCurrency(cur string, amounts ...Money) error {
	for _, m := range amounts {
		if m.cur != "" && m.cur != cur {
			return invalid("amount %v is in %s, want %s", m, m.cur, cur)
		}
	}
	return nil
}

// Validate returns all the issues found in l, joined, or nil.
func (l Lease) Validate() error {
	var errs []error
	if l.PropertyID == "" {
		errs = append(errs, invalid("lease has no property"))
	}
	if l.TenantID == "" {
		errs = append(errs, invalid("lease has no tenant"))
	}
	if l.StartDate.IsZero() || l.EndDate.IsZero() {
		errs = append(errs, invalid("lease term %v is incomplete", l.Term()))
	} else if l.EndDate.Before(l.StartDate) {
		errs = append(errs, invalid("lease ends %v before it starts %v", l.EndDate, l.StartDate))
	}
	switch l.Status {
	case LeaseActive, LeaseExpired, LeaseTerminated:
	default:
		errs = append(errs, invalid("unknown lease status %q", l.Status))
	}
	errs = append(errs,
		nonNegative("monthly rent", l.MonthlyRent),
		nonNegative("security deposit", l.SecurityDeposit),
	)
	return errors.Join(errs...)
}

// Validate returns all the issues found in pay, joined, or nil.
func (pay Payment) Validate() error {
	var errs []error
	if pay.LeaseID == "" {
		errs = append(errs, invalid("payment has no lease"))
	}
	if pay.Date.IsZero() {
		errs = append(errs, invalid("payment has no date"))
	}
	if pay.Type == "" {
		errs = append(errs, invalid("payment has no type"))
	}
	errs = append(errs, nonNegative("payment amount", pay.Amount))
	return errors.Join(errs...)
}

// Validate returns all the issues found in t, joined, or nil.
func (t Tenant) Validate() error {
	var errs []error
	if t.Name == "" {
		errs = append(errs, invalid("tenant name is missing"))
	}
	switch t.Status {
	case TenantActive, TenantInactive:
	default:
		errs = append(errs, invalid("unknown tenant status %q", t.Status))
	}
	return errors.Join(errs...)
}
