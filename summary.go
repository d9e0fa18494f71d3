package realty

import (
	"fmt"
	"strings"
)

// IncomeSource selects where rental income is read from. Leases are recorded
// both on the property record and as standalone Lease records.
type IncomeSource int

const (
	// EmbeddedLeaseIncome reads the rate of the lease embedded on each property.
	EmbeddedLeaseIncome IncomeSource = iota
	// StandaloneLeaseIncome reads the monthly rent of the active standalone
	// leases of each property, and falls back to the embedded lease for
	// properties without any.
	StandaloneLeaseIncome
)

func (s IncomeSource) String() string {
	switch s {
	case StandaloneLeaseIncome:
		return "standalone"
	default:
		return "embedded"
	}
}

// ParseIncomeSource parses "embedded" or "standalone".
func ParseIncomeSource(s string) (IncomeSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "embedded":
		return EmbeddedLeaseIncome, nil
	case "standalone":
		return StandaloneLeaseIncome, nil
	default:
		return EmbeddedLeaseIncome, fmt.Errorf("unknown income source %q, want embedded or standalone", s)
	}
}

// FinancialSummary holds the income, expense and return metrics of a set of properties.
type FinancialSummary struct {
	TotalAcquisitionCost Money
	TotalMarketValue     Money
	ValueChange          Percent

	AnnualizedGrossIncome Money // monthly lease rates × 12
	TotalCollectedIncome  Money // completed rent payments
	AnnualizedExpenses    Money
	NetOperatingIncome    Money   // gross income - expenses
	ROI                   Percent // NOI / acquisition cost
	PendingPayments       Money

	// Skipped is the number of properties, lease rents and payments left out
	// because they are not in the portfolio currency.
	Skipped int
}

// Summarize computes the financial summary of properties, reading income
// from their embedded leases.
//
// Collected and pending amounts are computed over all the payments given,
// whether or not their lease belongs to one of the properties.
func Summarize(properties []*Property, payments []Payment) FinancialSummary {
	return summarize(properties, payments, embeddedMonthlyRent, 0)
}

// SummarizeLeases is like Summarize but reads income according to source.
func SummarizeLeases(properties []*Property, leases []Lease, payments []Payment, source IncomeSource) FinancialSummary {
	if source == EmbeddedLeaseIncome {
		return Summarize(properties, payments)
	}
	rents := make(map[string]Money)
	skipped := 0
	for _, l := range leases {
		if !l.IsActive() {
			continue
		}
		rent := l.MonthlyRent.clamp()
		if !rents[l.PropertyID].SameCurrency(rent) {
			skipped++
			continue
		}
		rents[l.PropertyID] = rents[l.PropertyID].Add(rent)
	}
	return summarize(properties, payments, func(p *Property) Money {
		if rent, ok := rents[p.ID]; ok {
			return rent
		}
		return embeddedMonthlyRent(p)
	}, skipped)
}

func embeddedMonthlyRent(p *Property) Money {
	if p.Lease == nil {
		return Money{}
	}
	return p.Lease.LeaseRate.clamp()
}

func summarize(properties []*Property, payments []Payment, monthlyRent func(*Property) Money, skipped int) FinancialSummary {
	agg := AggregateProperties(properties)
	kept, cur, _ := portfolio(properties)
	s := FinancialSummary{
		TotalAcquisitionCost: agg.TotalCost,
		TotalMarketValue:     agg.TotalValue,
		ValueChange:          agg.ValueChange,
		Skipped:              skipped + agg.Skipped,
	}
	// add sums m into total when m is in the portfolio currency. The first
	// amount carrying a currency sets it when no property did.
	add := func(total *Money, m Money) {
		if cur != "" && m.cur != "" && m.cur != cur {
			s.Skipped++
			return
		}
		if cur == "" {
			cur = m.cur
		}
		*total = total.Add(m)
	}
	for _, p := range kept {
		add(&s.AnnualizedGrossIncome, monthlyRent(p).MulInt(12))
		s.AnnualizedExpenses = s.AnnualizedExpenses.Add(AnnualExpenses(p))
	}
	for _, pay := range payments {
		switch {
		case pay.IsCollectedRent():
			add(&s.TotalCollectedIncome, pay.Amount.clamp())
		case pay.State == PaymentPending:
			add(&s.PendingPayments, pay.Amount.clamp())
		}
	}
	s.NetOperatingIncome = s.AnnualizedGrossIncome.Sub(s.AnnualizedExpenses)
	s.ROI = s.NetOperatingIncome.Ratio(s.TotalAcquisitionCost)
	return s
}

// AnnualExpenses approximates the yearly running cost of a property: the
// caretaker rate and condo dues are monthly amounts, the real-estate tax is
// already yearly. A charge in another currency than the caretaker rate is
// left out.
func AnnualExpenses(p *Property) Money {
	m := p.Management
	total := m.CaretakerRatePerMonth.clamp().MulInt(12)
	if m.CondoDues != nil {
		total = total.plus(m.CondoDues.AmountPaid.clamp().MulInt(12))
	}
	return total.plus(m.RealEstateTaxes.AmountPaid.clamp())
}

func (s FinancialSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("totalAcquisitionCost", s.TotalAcquisitionCost)
	w.Append("totalMarketValue", s.TotalMarketValue)
	w.Append("valueChangePercentage", float64(s.ValueChange))
	w.Append("annualizedGrossIncome", s.AnnualizedGrossIncome)
	w.Append("totalCollectedIncome", s.TotalCollectedIncome)
	w.Append("annualizedExpenses", s.AnnualizedExpenses)
	w.Append("netOperatingIncome", s.NetOperatingIncome)
	w.Append("roi", float64(s.ROI))
	w.Append("pendingPayments", s.PendingPayments)
	w.Optional("skipped", s.Skipped)
	return w.MarshalJSON()
}
