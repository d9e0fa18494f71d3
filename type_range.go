package realty

import "iter"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Months returns an iterator over the same day-of-month as From, one per
// month, as long as it is not after To. Days missing in short months are
// clamped to the end of that month, but every step is computed from From so
// a 31st start comes back to the 31st in long months.
func (r Range) Months() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for i := 0; ; i++ {
			d := r.From.AddMonth(i)
			if d.After(r.To) {
				return
			}
			if !yield(d) {
				return
			}
		}
	}
}

func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
