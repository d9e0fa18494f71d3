package realty

import "slices"

// appraisalsByDate returns the property's appraisals, most recent first.
// Appraisals on the same day keep their input order.
func (p *Property) appraisalsByDate() []Appraisal {
	sorted := slices.Clone(p.Appraisals)
	slices.SortStableFunc(sorted, func(a, b Appraisal) int { return b.Date.Compare(a.Date) })
	return sorted
}

// LatestAppraisal returns the most recent appraisal, if any.
func (p *Property) LatestAppraisal() (Appraisal, bool) {
	sorted := p.appraisalsByDate()
	if len(sorted) == 0 {
		return Appraisal{}, false
	}
	return sorted[0], true
}

// CurrentValue is the value of the latest appraisal, or the acquisition total
// cost of a property never appraised.
func (p *Property) CurrentValue() Money {
	if a, ok := p.LatestAppraisal(); ok {
		return a.Value.clamp()
	}
	return p.Acquisition.TotalCost()
}

// PriorValue is the value of the second latest appraisal, or the acquisition
// total cost when there are fewer than two appraisals.
func (p *Property) PriorValue() Money {
	sorted := p.appraisalsByDate()
	if len(sorted) < 2 {
		return p.Acquisition.TotalCost()
	}
	return sorted[1].Value.clamp()
}

// ValueChange is the change from the prior value to the current value, 0
// when they are not in the same currency.
func (p *Property) ValueChange() Percent {
	current, prior := p.CurrentValue(), p.PriorValue()
	if !current.SameCurrency(prior) {
		return 0
	}
	return current.Sub(prior).Ratio(prior)
}

// ValueAsOf is the value of the latest appraisal made on or before 'on', or
// the acquisition total cost if there is none.
func (p *Property) ValueAsOf(on Date) Money {
	for _, a := range p.appraisalsByDate() {
		if !a.Date.After(on) {
			return a.Value.clamp()
		}
	}
	return p.Acquisition.TotalCost()
}

// AppraisalHistory returns the appraisals oldest first, each with its change
// from the previous appraisal (or from the acquisition cost for the first).
// The change from a valuation in another currency is zero.
func (p *Property) AppraisalHistory() []AppraisalChange {
	sorted := p.appraisalsByDate()
	slices.Reverse(sorted)
	changes := make([]AppraisalChange, 0, len(sorted))
	previous := p.Acquisition.TotalCost()
	for _, a := range sorted {
		value := a.Value.clamp()
		change := AppraisalChange{Appraisal: a, Change: Money{cur: value.cur}}
		if value.SameCurrency(previous) {
			change.Change = value.Sub(previous)
			change.Percent = change.Change.Ratio(previous)
		}
		changes = append(changes, change)
		previous = value
	}
	return changes
}

// AppraisalChange is an appraisal with its change from the previous valuation.
type AppraisalChange struct {
	Appraisal
	Change  Money
	Percent Percent
}
