package realty

import "time"

// property is a helper for tests to create a property from its acquisition
// cost and appraisals.
func property(name string, cost float64, appraisals ...Appraisal) *Property {
	return &Property{
		ID:          name,
		Name:        name,
		Type:        Condominium,
		Region:      Luzon,
		Payment:     PaymentInfo{Status: FullyPaid},
		Acquisition: Acquisition{UnitLotCost: PHP(cost)},
		Appraisals:  appraisals,
	}
}

// appraisal is a helper for tests to create an appraisal from a date string.
func appraisal(on string, value float64, by string) Appraisal {
	return Appraisal{Date: MustParse(on), Value: PHP(value), Appraiser: by}
}

// NO is a helper for tests to create money with no currency set.
func NO(v float64) Money { return M(v, "") }

// day is a helper for tests to create a timestamp on a given day.
func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 9, 0, 0, 0, time.UTC) }
