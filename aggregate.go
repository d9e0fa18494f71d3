package realty

// Aggregate holds the totals of a collection of properties.
type Aggregate struct {
	TotalCost  Money // sum of acquisition total costs
	TotalValue Money // sum of current values
	PriorTotal Money // sum of prior values
	// ValueChange is the change from PriorTotal to TotalValue, 0 when
	// PriorTotal is not positive.
	ValueChange Percent

	Count          int // number of properties
	NeedsAttention int // number of properties with pending documents
	// Skipped is the number of properties left out of the totals because
	// their amounts mix currencies or are not in the portfolio currency.
	Skipped int

	CostByCategory       map[PropertyType]Money
	CountByPaymentStatus map[PaymentStatus]int
}

// portfolio splits properties between those summed in the portfolio
// currency and the number of those left out. The portfolio currency is the
// currency of the first property carrying one. A property mixing currencies
// is always left out. nil entries are ignored.
func portfolio(properties []*Property) (kept []*Property, cur string, skipped int) {
	for _, p := range properties {
		if p == nil {
			continue
		}
		c, ok := p.Currency()
		switch {
		case !ok, c != "" && cur != "" && c != cur:
			skipped++
			continue
		case cur == "":
			cur = c
		}
		kept = append(kept, p)
	}
	return kept, cur, skipped
}

// AggregateProperties reduces properties into portfolio totals. nil entries
// are ignored. Totals of an empty collection are zero without currency.
func AggregateProperties(properties []*Property) Aggregate {
	agg := Aggregate{
		CostByCategory:       make(map[PropertyType]Money),
		CountByPaymentStatus: make(map[PaymentStatus]int),
	}
	kept, _, skipped := portfolio(properties)
	agg.Skipped = skipped
	for _, p := range kept {
		cost := p.Acquisition.TotalCost()
		agg.TotalCost = agg.TotalCost.Add(cost)
		agg.TotalValue = agg.TotalValue.Add(p.CurrentValue())
		agg.PriorTotal = agg.PriorTotal.Add(p.PriorValue())
		agg.Count++
		if p.Documentation.NeedsAttention() {
			agg.NeedsAttention++
		}
		agg.CostByCategory[p.Type] = agg.CostByCategory[p.Type].Add(cost)
		agg.CountByPaymentStatus[p.Payment.Status]++
	}
	agg.ValueChange = agg.TotalValue.Sub(agg.PriorTotal).Ratio(agg.PriorTotal)
	return agg
}

// UpcomingDueDates returns the documents whose due date falls within the
// next 'days' days starting on 'on', both ends included.
func UpcomingDueDates(properties []*Property, on Date, days int) []Document {
	window := NewRange(on, on.Add(days))
	var due []Document
	for _, p := range properties {
		if p == nil {
			continue
		}
		for _, doc := range p.Documentation.Docs {
			if !doc.DueDate.IsZero() && window.Contains(doc.DueDate) {
				due = append(due, doc)
			}
		}
	}
	return due
}
