package realty

// TenantStatus is whether a tenant currently rents anything.
type TenantStatus string

const (
	TenantActive   TenantStatus = "Active"
	TenantInactive TenantStatus = "Inactive"
)

// Tenant is a person or entity renting a property.
type Tenant struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	Occupation string       `json:"occupation,omitempty"`
	Status     TenantStatus `json:"status"`
}

// LeaseStatus is the lifecycle state of a standalone lease.
type LeaseStatus string

const (
	LeaseActive     LeaseStatus = "active"
	LeaseExpired    LeaseStatus = "expired"
	LeaseTerminated LeaseStatus = "terminated"
)

// Lease links one property to one tenant for a term.
type Lease struct {
	ID              string      `json:"id"`
	PropertyID      string      `json:"propertyId"`
	TenantID        string      `json:"tenantId"`
	StartDate       Date        `json:"startDate"`
	EndDate         Date        `json:"endDate"`
	MonthlyRent     Money       `json:"monthlyRent"`
	SecurityDeposit Money       `json:"securityDeposit"`
	Status          LeaseStatus `json:"status"`
	ContractURL     string      `json:"contractUrl,omitempty"`
}

// Term returns the lease term, boundaries included.
func (l Lease) Term() Range { return Range{From: l.StartDate, To: l.EndDate} }

// IsActive reports whether the lease status is active.
func (l Lease) IsActive() bool { return l.Status == LeaseActive }

// PaymentState is the settlement state of a payment record.
type PaymentState string

const (
	PaymentPending   PaymentState = "pending"
	PaymentCompleted PaymentState = "completed"
)

// Payment types and methods written by the schedule generator.
const (
	RentPayment = "Rent"
	CheckMethod = "Check"
)

// Payment is a payment record against a lease.
type Payment struct {
	ID          string       `json:"id"`
	LeaseID     string       `json:"leaseId"`
	Date        Date         `json:"paymentDate"`
	Amount      Money        `json:"amount"`
	Type        string       `json:"paymentType"`
	Method      string       `json:"paymentMethod"`
	State       PaymentState `json:"status"`
	ReferenceNo string       `json:"referenceNumber,omitempty"`
	Remarks     string       `json:"remarks,omitempty"`
}

// IsCollectedRent reports whether p is a completed rent payment.
func (p Payment) IsCollectedRent() bool {
	return p.State == PaymentCompleted && p.Type == RentPayment
}
