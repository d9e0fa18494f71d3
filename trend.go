package realty

// TrendPoint is the portfolio market value at the end of a bucket.
type TrendPoint struct {
	On    Date
	Label string
	Value Money
}

// MarketValueTrend returns 'count' points of the portfolio market value,
// oldest first. The last point is on 'on', each previous one is a period
// earlier. A property contributes, for each point, its value as of that date.
// Properties out of the portfolio currency are left out like in
// [AggregateProperties]. It returns nil for an unknown period.
//
// The trend is computed from scratch on every call.
func MarketValueTrend(properties []*Property, on Date, count int, period Period) []TrendPoint {
	if count <= 0 || !period.IsValid() {
		return nil
	}
	kept, _, _ := portfolio(properties)
	points := make([]TrendPoint, 0, count)
	for i := count - 1; i >= 0; i-- {
		d := on.AddPeriod(period, -i)
		var total Money
		for _, p := range kept {
			total = total.Add(p.ValueAsOf(d))
		}
		points = append(points, TrendPoint{On: d, Label: period.Label(d), Value: total})
	}
	return points
}
