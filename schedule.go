package realty

// GenerateMonthlySchedule returns one pending rent payment per month of the
// lease term, paid by check, starting on the lease start date.
//
// Every draft falls on the start day-of-month; in months too short for it the
// draft falls on the last day of the month. A lease with an end date before
// its start date, or without dates, has no schedule.
func GenerateMonthlySchedule(lease Lease) []Payment {
	if lease.StartDate.IsZero() || lease.EndDate.IsZero() || lease.EndDate.Before(lease.StartDate) {
		return nil
	}
	var drafts []Payment
	for on := range lease.Term().Months() {
		drafts = append(drafts, Payment{
			LeaseID: lease.ID,
			Date:    on,
			Amount:  lease.MonthlyRent,
			Type:    RentPayment,
			Method:  CheckMethod,
			State:   PaymentPending,
		})
	}
	return drafts
}
