package store

import (
	"time"

	"github.com/etnz/realty"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Table rows use the column names of the hosted backend so dumps and
// databases can be moved between the two.

type propertyRow struct {
	ID                            string `gorm:"primaryKey;size:36"`
	PropertyName                  string `gorm:"not null"`
	PhotoURL                      string `gorm:"column:photo_url"`
	PropertyType                  string `gorm:"index"`
	FullAddress                   string
	Location                      string `gorm:"index"`
	UnitNumber                    string
	FloorNumber                   string
	LotNo                         string
	TctOrCctNo                    string `gorm:"column:tct_or_cct_no"`
	AreaSqm                       float64
	OriginalDeveloper             string
	BrokersName                   string
	BrokersContact                string
	BuyersName                    string
	AcquisitionUnitLotCost        decimal.Decimal `gorm:"type:decimal(18,2)"`
	AcquisitionCostPerSqm         decimal.Decimal `gorm:"type:decimal(18,2)"`
	AcquisitionFitOutCost         decimal.Decimal `gorm:"type:decimal(18,2)"`
	PaymentStatus                 string
	PaymentScheduleURL            string `gorm:"column:payment_schedule_url"`
	LeaseLessee                   string
	LeaseDate                     string
	LeaseRate                     decimal.Decimal `gorm:"type:decimal(18,2)"`
	LeaseTermYears                int
	LeaseReferringBroker          string
	LeaseBrokerContact            string
	LeaseContractURL              string `gorm:"column:lease_contract_url"`
	LeaseContractFileName         string
	PossessionIsTurnedOver        bool
	PossessionTurnoverDate        string
	PossessionAuthorizedRecipient string
	InsuranceCompany              string
	InsuranceCoverageDate         string
	InsuranceAmountInsured        decimal.Decimal `gorm:"type:decimal(18,2)"`
	InsurancePolicyURL            string          `gorm:"column:insurance_policy_url"`
	InsurancePolicyFileName       string
	CaretakerName                 string
	CaretakerRate                 decimal.Decimal `gorm:"type:decimal(18,2)"`
	RealEstateTaxLastPaid         string
	RealEstateTaxAmount           decimal.Decimal `gorm:"type:decimal(18,2)"`
	RealEstateTaxReceiptURL       string          `gorm:"column:real_estate_tax_receipt_url"`
	RealEstateTaxReceiptFileName  string
	CondoDuesLastPaid             string
	CondoDuesAmount               *decimal.Decimal `gorm:"type:decimal(18,2)"`
	CondoDuesReceiptURL           string           `gorm:"column:condo_dues_receipt_url"`
	CondoDuesReceiptFileName      string
	PendingDocuments              []string `gorm:"serializer:json"`
	CreatedAt                     time.Time

	Appraisals []appraisalRow `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Documents  []documentRow  `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

func (propertyRow) TableName() string { return "properties" }

type appraisalRow struct {
	ID               string          `gorm:"primaryKey;size:36"`
	PropertyID       string          `gorm:"size:36;index;not null"`
	AppraisalDate    string          `gorm:"not null"`
	AppraisedValue   decimal.Decimal `gorm:"type:decimal(18,2)"`
	AppraisalCompany string
	ReportURL        string `gorm:"column:report_url"`
	ReportFileName   string
	CreatedAt        time.Time
}

func (appraisalRow) TableName() string { return "appraisals" }

type documentRow struct {
	ID            string `gorm:"primaryKey;size:36"`
	PropertyID    string `gorm:"size:36;index;not null"`
	Type          string `gorm:"not null"`
	Status        string
	State         string
	Priority      string
	DueDate       string
	ExecutionDate string
	DocumentURL   string `gorm:"column:document_url"`
	FileName      string
	CreatedAt     time.Time
}

func (documentRow) TableName() string { return "documents" }

type tenantRow struct {
	ID         string `gorm:"primaryKey;size:36"`
	Name       string `gorm:"not null"`
	Email      string
	Phone      string
	Occupation string
	Status     string
	CreatedAt  time.Time
}

func (tenantRow) TableName() string { return "tenants" }

type leaseRow struct {
	ID              string          `gorm:"primaryKey;size:36"`
	PropertyID      string          `gorm:"size:36;index;not null"`
	TenantID        string          `gorm:"size:36;index;not null"`
	StartDate       string          `gorm:"not null"`
	EndDate         string          `gorm:"not null"`
	MonthlyRent     decimal.Decimal `gorm:"type:decimal(18,2)"`
	SecurityDeposit decimal.Decimal `gorm:"type:decimal(18,2)"`
	Status          string
	ContractURL     string `gorm:"column:contract_url"`
	CreatedAt       time.Time
}

func (leaseRow) TableName() string { return "leases" }

type paymentRow struct {
	ID              string          `gorm:"primaryKey;size:36"`
	LeaseID         string          `gorm:"size:36;index;not null"`
	PaymentDate     string          `gorm:"not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2)"`
	PaymentType     string
	PaymentMethod   string
	Status          string `gorm:"index"`
	ReferenceNumber string
	Remarks         string
	CreatedAt       time.Time
}

func (paymentRow) TableName() string { return "payments" }

type activityRow struct {
	ID          string `gorm:"primaryKey;size:36"`
	Type        string
	Title       string
	Description string
	Actor       string
	Timestamp   time.Time `gorm:"index"`
}

func (activityRow) TableName() string { return "recent_activities" }

// models lists the rows to migrate, parents first.
var models = []any{&propertyRow{}, &appraisalRow{}, &documentRow{}, &tenantRow{}, &leaseRow{}, &paymentRow{}, &activityRow{}}

// newID never lets a row reach the database without an identifier.
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (r *propertyRow) BeforeCreate(*gorm.DB) error  { newID(&r.ID); return nil }
func (r *appraisalRow) BeforeCreate(*gorm.DB) error { newID(&r.ID); return nil }
func (r *documentRow) BeforeCreate(*gorm.DB) error  { newID(&r.ID); return nil }
func (r *tenantRow) BeforeCreate(*gorm.DB) error    { newID(&r.ID); return nil }
func (r *leaseRow) BeforeCreate(*gorm.DB) error     { newID(&r.ID); return nil }
func (r *paymentRow) BeforeCreate(*gorm.DB) error   { newID(&r.ID); return nil }
func (r *activityRow) BeforeCreate(*gorm.DB) error  { newID(&r.ID); return nil }

// dates are stored as ISO strings, empty for unknown dates.
func dateColumn(d realty.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func parseDateColumn(s string) realty.Date {
	if s == "" {
		return realty.Date{}
	}
	d, err := realty.ParseStoredDate(s)
	if err != nil {
		return realty.Date{}
	}
	return d
}

// codec converts rows from and to the domain types. Amounts are stored
// without currency and read in the store currency.
type codec struct{ cur string }

func (c codec) money(d decimal.Decimal) realty.Money { return realty.M(d, c.cur) }

func toPropertyRow(p *realty.Property) propertyRow {
	r := propertyRow{
		ID:                            p.ID,
		PropertyName:                  p.Name,
		PhotoURL:                      p.PhotoURL,
		PropertyType:                  string(p.Type),
		FullAddress:                   p.FullAddress,
		Location:                      string(p.Region),
		UnitNumber:                    p.UnitNumber,
		FloorNumber:                   p.FloorNumber,
		LotNo:                         p.LotNo,
		TctOrCctNo:                    p.TitleNo,
		AreaSqm:                       p.AreaSqm,
		OriginalDeveloper:             p.OriginalDeveloper,
		BrokersName:                   p.BrokerName,
		BrokersContact:                p.BrokerContact,
		BuyersName:                    p.BuyerName,
		AcquisitionUnitLotCost:        p.Acquisition.UnitLotCost.Decimal(),
		AcquisitionCostPerSqm:         p.Acquisition.CostPerSqm.Decimal(),
		AcquisitionFitOutCost:         p.Acquisition.FitOutCost.Decimal(),
		PaymentStatus:                 string(p.Payment.Status),
		PaymentScheduleURL:            p.Payment.ScheduleURL,
		PossessionIsTurnedOver:        p.Possession.IsTurnedOver,
		PossessionTurnoverDate:        dateColumn(p.Possession.TurnoverDate),
		PossessionAuthorizedRecipient: p.Possession.AuthorizedRecipient,
		CaretakerName:                 p.Management.CaretakerName,
		CaretakerRate:                 p.Management.CaretakerRatePerMonth.Decimal(),
		RealEstateTaxLastPaid:         dateColumn(p.Management.RealEstateTaxes.LastPaid),
		RealEstateTaxAmount:           p.Management.RealEstateTaxes.AmountPaid.Decimal(),
		RealEstateTaxReceiptURL:       p.Management.RealEstateTaxes.ReceiptURL,
		RealEstateTaxReceiptFileName:  p.Management.RealEstateTaxes.FileName,
		PendingDocuments:              p.Documentation.Outstanding,
	}
	if l := p.Lease; l != nil {
		r.LeaseLessee = l.Lessee
		r.LeaseDate = dateColumn(l.LeaseDate)
		r.LeaseRate = l.LeaseRate.Decimal()
		r.LeaseTermYears = l.TermInYears
		r.LeaseReferringBroker = l.ReferringBroker
		r.LeaseBrokerContact = l.BrokerContact
		r.LeaseContractURL = l.ContractURL
		r.LeaseContractFileName = l.ContractFileName
	}
	if i := p.Insurance; i != nil {
		r.InsuranceCompany = i.Company
		r.InsuranceCoverageDate = dateColumn(i.CoverageDate)
		r.InsuranceAmountInsured = i.AmountInsured.Decimal()
		r.InsurancePolicyURL = i.PolicyURL
		r.InsurancePolicyFileName = i.PolicyFileName
	}
	if d := p.Management.CondoDues; d != nil {
		amount := d.AmountPaid.Decimal()
		r.CondoDuesAmount = &amount
		r.CondoDuesLastPaid = dateColumn(d.LastPaid)
		r.CondoDuesReceiptURL = d.ReceiptURL
		r.CondoDuesReceiptFileName = d.FileName
	}
	for _, a := range p.Appraisals {
		r.Appraisals = append(r.Appraisals, toAppraisalRow(p.ID, a))
	}
	for _, d := range p.Documentation.Docs {
		r.Documents = append(r.Documents, toDocumentRow(p.ID, d))
	}
	return r
}

func (c codec) property(r propertyRow) *realty.Property {
	p := &realty.Property{
		ID:                r.ID,
		Name:              r.PropertyName,
		PhotoURL:          r.PhotoURL,
		Type:              realty.PropertyType(r.PropertyType),
		FullAddress:       r.FullAddress,
		Region:            realty.Region(r.Location),
		UnitNumber:        r.UnitNumber,
		FloorNumber:       r.FloorNumber,
		LotNo:             r.LotNo,
		TitleNo:           r.TctOrCctNo,
		AreaSqm:           r.AreaSqm,
		OriginalDeveloper: r.OriginalDeveloper,
		BrokerName:        r.BrokersName,
		BrokerContact:     r.BrokersContact,
		BuyerName:         r.BuyersName,
		Acquisition: realty.Acquisition{
			UnitLotCost: c.money(r.AcquisitionUnitLotCost),
			CostPerSqm:  c.money(r.AcquisitionCostPerSqm),
			FitOutCost:  c.money(r.AcquisitionFitOutCost),
		},
		Payment: realty.PaymentInfo{
			Status:      realty.PaymentStatus(r.PaymentStatus),
			ScheduleURL: r.PaymentScheduleURL,
		},
		Possession: realty.Possession{
			IsTurnedOver:        r.PossessionIsTurnedOver,
			TurnoverDate:        parseDateColumn(r.PossessionTurnoverDate),
			AuthorizedRecipient: r.PossessionAuthorizedRecipient,
		},
		Management: realty.Management{
			CaretakerName:         r.CaretakerName,
			CaretakerRatePerMonth: c.money(r.CaretakerRate),
			RealEstateTaxes: realty.Receipt{
				LastPaid:   parseDateColumn(r.RealEstateTaxLastPaid),
				AmountPaid: c.money(r.RealEstateTaxAmount),
				ReceiptURL: r.RealEstateTaxReceiptURL,
				FileName:   r.RealEstateTaxReceiptFileName,
			},
		},
		Documentation: realty.Documentation{Outstanding: r.PendingDocuments},
	}
	if r.LeaseLessee != "" {
		p.Lease = &realty.LeaseInfo{
			Lessee:           r.LeaseLessee,
			LeaseDate:        parseDateColumn(r.LeaseDate),
			LeaseRate:        c.money(r.LeaseRate),
			TermInYears:      r.LeaseTermYears,
			ReferringBroker:  r.LeaseReferringBroker,
			BrokerContact:    r.LeaseBrokerContact,
			ContractURL:      r.LeaseContractURL,
			ContractFileName: r.LeaseContractFileName,
		}
	}
	if r.InsuranceCompany != "" {
		p.Insurance = &realty.Insurance{
			CoverageDate:   parseDateColumn(r.InsuranceCoverageDate),
			AmountInsured:  c.money(r.InsuranceAmountInsured),
			Company:        r.InsuranceCompany,
			PolicyURL:      r.InsurancePolicyURL,
			PolicyFileName: r.InsurancePolicyFileName,
		}
	}
	if r.CondoDuesAmount != nil {
		p.Management.CondoDues = &realty.Receipt{
			LastPaid:   parseDateColumn(r.CondoDuesLastPaid),
			AmountPaid: c.money(*r.CondoDuesAmount),
			ReceiptURL: r.CondoDuesReceiptURL,
			FileName:   r.CondoDuesReceiptFileName,
		}
	}
	for _, a := range r.Appraisals {
		p.Appraisals = append(p.Appraisals, c.appraisal(a))
	}
	for _, d := range r.Documents {
		doc := c.document(d)
		doc.PropertyName = p.Name
		p.Documentation.Docs = append(p.Documentation.Docs, doc)
	}
	return p
}

func toAppraisalRow(propertyID string, a realty.Appraisal) appraisalRow {
	return appraisalRow{
		PropertyID:       propertyID,
		AppraisalDate:    dateColumn(a.Date),
		AppraisedValue:   a.Value.Decimal(),
		AppraisalCompany: a.Appraiser,
		ReportURL:        a.ReportURL,
		ReportFileName:   a.ReportFileName,
	}
}

func (c codec) appraisal(r appraisalRow) realty.Appraisal {
	return realty.Appraisal{
		Date:           parseDateColumn(r.AppraisalDate),
		Value:          c.money(r.AppraisedValue),
		Appraiser:      r.AppraisalCompany,
		ReportURL:      r.ReportURL,
		ReportFileName: r.ReportFileName,
	}
}

func toDocumentRow(propertyID string, d realty.Document) documentRow {
	return documentRow{
		PropertyID:    propertyID,
		Type:          string(d.Type),
		Status:        d.Status,
		State:         string(d.EffectiveState()),
		Priority:      string(d.Priority),
		DueDate:       dateColumn(d.DueDate),
		ExecutionDate: dateColumn(d.ExecutionDate),
		DocumentURL:   d.URL,
		FileName:      d.FileName,
	}
}

func (c codec) document(r documentRow) realty.Document {
	return realty.Document{
		Type:          realty.DocumentType(r.Type),
		Status:        r.Status,
		State:         realty.DocumentState(r.State),
		Priority:      realty.Priority(r.Priority),
		DueDate:       parseDateColumn(r.DueDate),
		ExecutionDate: parseDateColumn(r.ExecutionDate),
		URL:           r.DocumentURL,
		FileName:      r.FileName,
		PropertyID:    r.PropertyID,
	}
}

func toTenantRow(t realty.Tenant) tenantRow {
	return tenantRow{ID: t.ID, Name: t.Name, Email: t.Email, Phone: t.Phone, Occupation: t.Occupation, Status: string(t.Status)}
}

func (c codec) tenant(r tenantRow) realty.Tenant {
	return realty.Tenant{ID: r.ID, Name: r.Name, Email: r.Email, Phone: r.Phone, Occupation: r.Occupation, Status: realty.TenantStatus(r.Status)}
}

func toLeaseRow(l realty.Lease) leaseRow {
	return leaseRow{
		ID:              l.ID,
		PropertyID:      l.PropertyID,
		TenantID:        l.TenantID,
		StartDate:       dateColumn(l.StartDate),
		EndDate:         dateColumn(l.EndDate),
		MonthlyRent:     l.MonthlyRent.Decimal(),
		SecurityDeposit: l.SecurityDeposit.Decimal(),
		Status:          string(l.Status),
		ContractURL:     l.ContractURL,
	}
}

func (c codec) lease(r leaseRow) realty.Lease {
	return realty.Lease{
		ID:              r.ID,
		PropertyID:      r.PropertyID,
		TenantID:        r.TenantID,
		StartDate:       parseDateColumn(r.StartDate),
		EndDate:         parseDateColumn(r.EndDate),
		MonthlyRent:     c.money(r.MonthlyRent),
		SecurityDeposit: c.money(r.SecurityDeposit),
		Status:          realty.LeaseStatus(r.Status),
		ContractURL:     r.ContractURL,
	}
}

func toPaymentRow(p realty.Payment) paymentRow {
	return paymentRow{
		ID:              p.ID,
		LeaseID:         p.LeaseID,
		PaymentDate:     dateColumn(p.Date),
		Amount:          p.Amount.Decimal(),
		PaymentType:     p.Type,
		PaymentMethod:   p.Method,
		Status:          string(p.State),
		ReferenceNumber: p.ReferenceNo,
		Remarks:         p.Remarks,
	}
}

func (c codec) payment(r paymentRow) realty.Payment {
	return realty.Payment{
		ID:          r.ID,
		LeaseID:     r.LeaseID,
		Date:        parseDateColumn(r.PaymentDate),
		Amount:      c.money(r.Amount),
		Type:        r.PaymentType,
		Method:      r.PaymentMethod,
		State:       realty.PaymentState(r.Status),
		ReferenceNo: r.ReferenceNumber,
		Remarks:     r.Remarks,
	}
}

func toActivityRow(a realty.Activity) activityRow {
	return activityRow{ID: a.ID, Type: string(a.Kind), Title: a.Title, Description: a.Description, Actor: a.Actor, Timestamp: a.Timestamp}
}

func activity(r activityRow) realty.Activity {
	return realty.Activity{ID: r.ID, Kind: realty.ActivityKind(r.Type), Title: r.Title, Description: r.Description, Actor: r.Actor, Timestamp: r.Timestamp}
}
