package realty

import (
	"strings"
	"testing"
)

const sampleDump = `{
  "properties": [
    {
      "id": "p1", "property_name": "Makati Loft", "property_type": "Condominium",
      "full_address": "Ayala Avenue", "location": "Luzon", "area_sqm": 54.5,
      "acquisition_unit_lot_cost": 5000000, "acquisition_fit_out_cost": 250000.75,
      "payment_status": "Amortized",
      "lease_lessee": "Acme", "lease_date": "2023-08-01", "lease_rate": 30000, "lease_term_years": 3,
      "insurance_company": "Malayan", "insurance_policy_url": "https://files/policy.pdf",
      "caretaker_rate": 5000, "condo_dues_amount": 2000, "real_estate_tax_amount": 20000,
      "real_estate_tax_last_paid": "2024-01-15T00:00:00+00:00",
      "pending_documents": ["Tax Declaration"]
    },
    {"id": "p2", "property_name": "Cebu Lot", "property_type": "House and Lot", "location": "Visayas",
     "acquisition_unit_lot_cost": 3000000, "payment_status": "Cash"}
  ],
  "appraisals": [
    {"property_id": "p1", "appraisal_date": "2024-01-01", "appraised_value": 6000000, "appraisal_company": "Cuervo"}
  ],
  "documents": [
    {"property_id": "p2", "type": "TCT", "status": "Missing Original", "priority": "High", "due_date": "2024-07-01"}
  ],
  "tenants": [{"id": "t1", "name": "Juan", "status": "Active"}],
  "leases": [{"id": "l1", "property_id": "p1", "tenant_id": "t1", "start_date": "2024-01-01",
              "end_date": "2024-12-31", "monthly_rent": 30000, "status": "active"}],
  "payments": [{"id": "pay1", "lease_id": "l1", "payment_date": "2024-01-01", "amount": 30000,
                "payment_type": "Rent", "payment_method": "Check", "status": "completed"}],
  "recent_activities": [{"id": "a1", "type": "New Property", "title": "New Property Added",
                         "description": "Makati Loft", "timestamp": "2024-01-02T08:00:00Z"}]
}`

func TestImportDump(t *testing.T) {
	pf, err := ImportDump(strings.NewReader(sampleDump), "")
	if err != nil {
		t.Fatalf("ImportDump() error = %v", err)
	}
	if len(pf.Properties) != 2 || len(pf.Tenants) != 1 || len(pf.Leases) != 1 || len(pf.Payments) != 1 || len(pf.Activities) != 1 {
		t.Fatalf("ImportDump() = %d properties, %d tenants, %d leases, %d payments, %d activities, want 2 1 1 1 1",
			len(pf.Properties), len(pf.Tenants), len(pf.Leases), len(pf.Payments), len(pf.Activities))
	}

	loft := pf.Properties[0]
	if got, want := loft.Acquisition.TotalCost(), PHP(5_250_000.75); !got.Equal(want) || got.Currency() != DefaultCurrency {
		t.Errorf("TotalCost() = %v, want %v", got, want)
	}
	if got := loft.CurrentValue(); !got.Equal(PHP(6_000_000)) {
		t.Errorf("CurrentValue() = %v, want %v", got, PHP(6_000_000))
	}
	if loft.Lease == nil || loft.Lease.TermInYears != 3 || !loft.Lease.LeaseRate.Equal(PHP(30_000)) {
		t.Errorf("Lease = %+v, want a 3 years lease at 30,000", loft.Lease)
	}
	if loft.Insurance == nil || loft.Management.CondoDues == nil {
		t.Errorf("optional groups missing: insurance %v, condo dues %v", loft.Insurance, loft.Management.CondoDues)
	}
	if got := loft.Management.RealEstateTaxes.LastPaid; got != NewDate(2024, 1, 15) {
		t.Errorf("RealEstateTaxes.LastPaid = %v, want 2024-01-15", got)
	}
	if got := AnnualExpenses(loft); !got.Equal(PHP(104_000)) {
		t.Errorf("AnnualExpenses() = %v, want %v", got, PHP(104_000))
	}

	cebu := pf.Properties[1]
	if cebu.Lease != nil || cebu.Insurance != nil || cebu.Management.CondoDues != nil {
		t.Errorf("Cebu Lot should not have lease, insurance or condo dues")
	}
	if len(cebu.Documentation.Docs) != 1 || cebu.Documentation.Docs[0].PropertyName != "Cebu Lot" || !cebu.Documentation.Docs[0].IsPending() {
		t.Errorf("Cebu Lot documents = %v, want one pending TCT", cebu.Documentation.Docs)
	}

	s := pf.Summary(Criteria{}, StandaloneLeaseIncome)
	if !s.TotalCollectedIncome.Equal(PHP(30_000)) {
		t.Errorf("TotalCollectedIncome = %v, want %v", s.TotalCollectedIncome, PHP(30_000))
	}
	if got := pf.Activities[0].Timestamp.Day(); got != 2 {
		t.Errorf("activity timestamp day = %d, want 2", got)
	}
}

func TestImportDumpErrors(t *testing.T) {
	tests := []struct {
		name, dump string
		wantErr    bool
	}{
		{"empty object", `{}`, false},
		{"malformed", `{"properties": [`, true},
		{"not an array", `{"properties": {"id": "p1"}}`, true},
		{"not a row", `{"properties": [42]}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportDump(strings.NewReader(tt.dump), "PHP")
			if (err != nil) != tt.wantErr {
				t.Errorf("ImportDump() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestImportDumpRelativeDates(t *testing.T) {
	dump := `{
  "properties": [{"id": "p1", "property_name": "Makati Loft", "property_type": "Condominium", "location": "Luzon",
                  "acquisition_unit_lot_cost": 1000000, "payment_status": "Cash", "lease_lessee": "Acme", "lease_date": "-1d"}],
  "appraisals": [{"property_id": "p1", "appraisal_date": "+1y", "appraised_value": 2000000}]
}`
	pf, err := ImportDump(strings.NewReader(dump), "PHP")
	if err != nil {
		t.Fatalf("ImportDump() error = %v", err)
	}
	p := pf.Properties[0]
	if p.Lease == nil || !p.Lease.LeaseDate.IsZero() {
		t.Errorf("Lease = %+v, want a lease with no date", p.Lease)
	}
	if len(p.Appraisals) != 1 || !p.Appraisals[0].Date.IsZero() {
		t.Errorf("Appraisals = %v, want one appraisal with no date", p.Appraisals)
	}
}
