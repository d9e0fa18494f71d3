package realty

import (
	"fmt"
	"strings"
)

// PropertyType is the category of a real-estate asset.
type PropertyType string

const (
	LandWithImprovements    PropertyType = "Land with Agricultural Improvements"
	LandWithoutImprovements PropertyType = "Land w/o Agricultural Improvements"
	LandAndBuilding         PropertyType = "Land and Building"
	HouseAndLot             PropertyType = "House and Lot"
	CommercialBuilding      PropertyType = "Commercial Building"
	Condotel                PropertyType = "Condotel"
	Condominium             PropertyType = "Condominium"
	WarehouseAndLot         PropertyType = "Warehouse & Lot"
)

// PropertyTypes lists all categories in display order.
var PropertyTypes = []PropertyType{
	LandWithImprovements, LandWithoutImprovements, LandAndBuilding, HouseAndLot,
	CommercialBuilding, Condotel, Condominium, WarehouseAndLot,
}

// Region is the geographic zone of a property.
type Region string

const (
	Luzon    Region = "Luzon"
	Visayas  Region = "Visayas"
	Mindanao Region = "Mindanao"
)

// Regions lists all regions in display order.
var Regions = []Region{Luzon, Visayas, Mindanao}

// PaymentStatus describes how the acquisition of a property is being paid.
type PaymentStatus string

const (
	Cash      PaymentStatus = "Cash"
	Amortized PaymentStatus = "Amortized"
	FullyPaid PaymentStatus = "Fully Paid"
)

// PaymentStatuses lists all payment statuses in display order.
var PaymentStatuses = []PaymentStatus{Cash, Amortized, FullyPaid}

// ParsePropertyType returns the category matching s, case insensitive.
func ParsePropertyType(s string) (PropertyType, error) { return parseEnum(s, PropertyTypes) }

// ParseRegion returns the region matching s, case insensitive.
func ParseRegion(s string) (Region, error) { return parseEnum(s, Regions) }

// ParsePaymentStatus returns the payment status matching s, case insensitive.
func ParsePaymentStatus(s string) (PaymentStatus, error) { return parseEnum(s, PaymentStatuses) }

func parseEnum[T ~string](s string, values []T) (T, error) {
	for _, v := range values {
		if strings.EqualFold(string(v), strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown value %q, want one of %q", s, values)
}

// Acquisition is the cost breakdown of a property purchase.
type Acquisition struct {
	UnitLotCost Money `json:"unitLotCost"`
	CostPerSqm  Money `json:"costPerSqm"`
	FitOutCost  Money `json:"fitOutCost"`
}

// TotalCost is the unit/lot cost plus the fit-out cost. Negative components
// count as zero so the total is never negative. A fit-out cost in another
// currency than the unit/lot cost is left out.
func (a Acquisition) TotalCost() Money {
	return a.UnitLotCost.clamp().plus(a.FitOutCost.clamp())
}

// PaymentInfo is how the property acquisition is paid.
type PaymentInfo struct {
	Status      PaymentStatus `json:"status"`
	ScheduleURL string        `json:"paymentScheduleUrl,omitempty"`
}

// LeaseInfo is the lease embedded on a property record, kept for legacy and
// display purposes. Standalone tenancy is tracked with [Lease].
type LeaseInfo struct {
	Lessee           string `json:"lessee"`
	LeaseDate        Date   `json:"leaseDate"`
	LeaseRate        Money  `json:"leaseRate"` // monthly
	TermInYears      int    `json:"termInYears"`
	ReferringBroker  string `json:"referringBroker,omitempty"`
	BrokerContact    string `json:"brokerContact,omitempty"`
	ContractURL      string `json:"contractUrl,omitempty"`
	ContractFileName string `json:"contractFileName,omitempty"`
}

// Possession tracks the turnover of the property to the owner.
type Possession struct {
	IsTurnedOver        bool   `json:"isTurnedOver"`
	TurnoverDate        Date   `json:"turnoverDate"`
	AuthorizedRecipient string `json:"authorizedRecipient,omitempty"`
}

// Insurance is the insurance policy covering a property.
type Insurance struct {
	CoverageDate   Date   `json:"coverageDate"`
	AmountInsured  Money  `json:"amountInsured"`
	Company        string `json:"insuranceCompany"`
	PolicyURL      string `json:"policyUrl,omitempty"`
	PolicyFileName string `json:"policyFileName,omitempty"`
}

// Receipt records the last payment of a recurring charge.
type Receipt struct {
	LastPaid   Date   `json:"lastPaidDate"`
	AmountPaid Money  `json:"amountPaid"`
	ReceiptURL string `json:"receiptUrl,omitempty"`
	FileName   string `json:"receiptFileName,omitempty"`
}

// Management holds the running costs of a property.
type Management struct {
	CaretakerName         string   `json:"caretakerName,omitempty"`
	CaretakerRatePerMonth Money    `json:"caretakerRatePerMonth"`
	RealEstateTaxes       Receipt  `json:"realEstateTaxes"`     // yearly
	CondoDues             *Receipt `json:"condoDues,omitempty"` // monthly
}

// Property is a real-estate asset of the portfolio.
type Property struct {
	ID                string        `json:"id"`
	Name              string        `json:"propertyName"`
	PhotoURL          string        `json:"photoUrl,omitempty"`
	Type              PropertyType  `json:"propertyType"`
	FullAddress       string        `json:"fullAddress"`
	Region            Region        `json:"location"`
	UnitNumber        string        `json:"unitNumber,omitempty"`
	FloorNumber       string        `json:"floorNumber,omitempty"`
	LotNo             string        `json:"lotNo,omitempty"`
	TitleNo           string        `json:"tctOrCctNo,omitempty"`
	AreaSqm           float64       `json:"areaSqm"`
	OriginalDeveloper string        `json:"originalDeveloper,omitempty"`
	BrokerName        string        `json:"brokersName,omitempty"`
	BrokerContact     string        `json:"brokersContact,omitempty"`
	BuyerName         string        `json:"buyersName,omitempty"`
	Acquisition       Acquisition   `json:"acquisition"`
	Payment           PaymentInfo   `json:"payment"`
	Lease             *LeaseInfo    `json:"lease,omitempty"`
	Possession        Possession    `json:"possession"`
	Insurance         *Insurance    `json:"insurance,omitempty"`
	Management        Management    `json:"management"`
	Appraisals        []Appraisal   `json:"appraisals"`
	Documentation     Documentation `json:"documentation"`
}

// amounts returns every amount recorded on the property.
func (p *Property) amounts() []Money {
	amounts := []Money{
		p.Acquisition.UnitLotCost,
		p.Acquisition.CostPerSqm,
		p.Acquisition.FitOutCost,
		p.Management.CaretakerRatePerMonth,
		p.Management.RealEstateTaxes.AmountPaid,
	}
	if p.Lease != nil {
		amounts = append(amounts, p.Lease.LeaseRate)
	}
	if p.Insurance != nil {
		amounts = append(amounts, p.Insurance.AmountInsured)
	}
	if p.Management.CondoDues != nil {
		amounts = append(amounts, p.Management.CondoDues.AmountPaid)
	}
	for _, a := range p.Appraisals {
		amounts = append(amounts, a.Value)
	}
	return amounts
}

// Currency returns the currency shared by the property amounts, or "" if
// none carries one. ok is false when the amounts mix currencies.
func (p *Property) Currency() (cur string, ok bool) {
	for _, m := range p.amounts() {
		switch {
		case m.cur == "":
		case cur == "":
			cur = m.cur
		case m.cur != cur:
			return cur, false
		}
	}
	return cur, true
}

// IsLeased reports whether the property carries an embedded lease.
func (p *Property) IsLeased() bool { return p.Lease != nil }

// Appraisal is a dated third-party valuation of a property.
type Appraisal struct {
	Date           Date   `json:"appraisalDate"`
	Value          Money  `json:"appraisedValue"`
	Appraiser      string `json:"appraisalCompany"`
	ReportURL      string `json:"reportUrl,omitempty"`
	ReportFileName string `json:"reportFileName,omitempty"`
}
