package realty

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file reads dumps of the hosted backend tables. A dump is a single JSON
// object with one array of rows per table; rows use the backend snake_case
// column names.

// Dump table locations.
const (
	PropertiesPath = "$.properties"
	AppraisalsPath = "$.appraisals"
	DocumentsPath  = "$.documents"
	TenantsPath    = "$.tenants"
	LeasesPath     = "$.leases"
	PaymentsPath   = "$.payments"
	ActivitiesPath = "$.recent_activities"
)

// row is a single record of a dump table.
type row map[string]any

// ImportDump reads a backend dump from r. Amounts without currency are read
// in 'currency'. Missing tables are read as empty.
func ImportDump(r io.Reader, currency string) (*Portfolio, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse dump: %w", err)
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	rd := dumpReader{cur: currency}

	pf := new(Portfolio)
	rows, err := table(doc, PropertiesPath)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		pf.Properties = append(pf.Properties, rd.property(r))
	}

	appraisals := make(map[string][]Appraisal)
	if rows, err = table(doc, AppraisalsPath); err != nil {
		return nil, err
	}
	for _, r := range rows {
		id := r.str("property_id")
		appraisals[id] = append(appraisals[id], rd.appraisal(r))
	}

	var documents []Document
	if rows, err = table(doc, DocumentsPath); err != nil {
		return nil, err
	}
	for _, r := range rows {
		documents = append(documents, rd.document(r))
	}
	pf.Attach(appraisals, documents)

	if rows, err = table(doc, TenantsPath); err != nil {
		return nil, err
	}
	for _, r := range rows {
		pf.Tenants = append(pf.Tenants, Tenant{
			ID:         r.str("id"),
			Name:       r.str("name"),
			Email:      r.str("email"),
			Phone:      r.str("phone"),
			Occupation: r.str("occupation"),
			Status:     TenantStatus(r.str("status")),
		})
	}

	if rows, err = table(doc, LeasesPath); err != nil {
		return nil, err
	}
	for _, r := range rows {
		pf.Leases = append(pf.Leases, Lease{
			ID:              r.str("id"),
			PropertyID:      r.str("property_id"),
			TenantID:        r.str("tenant_id"),
			StartDate:       r.date("start_date"),
			EndDate:         r.date("end_date"),
			MonthlyRent:     rd.money(r, "monthly_rent"),
			SecurityDeposit: rd.money(r, "security_deposit"),
			Status:          LeaseStatus(r.str("status")),
			ContractURL:     r.str("contract_url"),
		})
	}

	if rows, err = table(doc, PaymentsPath); err != nil {
		return nil, err
	}
	for _, r := range rows {
		pf.Payments = append(pf.Payments, Payment{
			ID:          r.str("id"),
			LeaseID:     r.str("lease_id"),
			Date:        r.date("payment_date"),
			Amount:      rd.money(r, "amount"),
			Type:        r.str("payment_type"),
			Method:      r.str("payment_method"),
			State:       PaymentState(r.str("status")),
			ReferenceNo: r.str("reference_number"),
			Remarks:     r.str("remarks"),
		})
	}

	if rows, err = table(doc, ActivitiesPath); err != nil {
		return nil, err
	}
	for _, r := range rows {
		ts, _ := time.Parse(time.RFC3339, r.str("timestamp"))
		pf.Activities = append(pf.Activities, Activity{
			ID:          r.str("id"),
			Kind:        ActivityKind(r.str("type")),
			Title:       r.str("title"),
			Description: r.str("description"),
			Timestamp:   ts,
		})
	}
	return pf, nil
}

// table returns the rows at 'path' in doc.
func table(doc any, path string) ([]row, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		// jsonpath reports missing keys as errors.
		if strings.Contains(err.Error(), "unknown key") {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("cannot read %q: not an array of rows", path)
	}
	rows := make([]row, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("cannot read %q: row %d is not an object", path, i)
		}
		rows = append(rows, row(obj))
	}
	return rows, nil
}

func (r row) str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// date reads a date column, zero if missing or malformed.
func (r row) date(key string) Date {
	d, err := ParseStoredDate(r.str(key))
	if err != nil {
		return Date{}
	}
	return d
}

func (r row) boolean(key string) bool {
	b, _ := r[key].(bool)
	return b
}

func (r row) list(key string) []string {
	list, _ := r[key].([]any)
	var values []string
	for _, v := range list {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

type dumpReader struct{ cur string }

// money reads a numeric column, zero if missing or malformed.
func (rd dumpReader) money(r row, key string) Money {
	s := r.str(key)
	if s == "" {
		return Money{}
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}
	}
	return M(v, rd.cur)
}

func (rd dumpReader) property(r row) *Property {
	area, _ := decimal.NewFromString(r.str("area_sqm"))
	p := &Property{
		ID:                r.str("id"),
		Name:              r.str("property_name"),
		PhotoURL:          r.str("photo_url"),
		Type:              PropertyType(r.str("property_type")),
		FullAddress:       r.str("full_address"),
		Region:            Region(r.str("location")),
		UnitNumber:        r.str("unit_number"),
		FloorNumber:       r.str("floor_number"),
		LotNo:             r.str("lot_no"),
		TitleNo:           r.str("tct_or_cct_no"),
		AreaSqm:           area.InexactFloat64(),
		OriginalDeveloper: r.str("original_developer"),
		BrokerName:        r.str("brokers_name"),
		BrokerContact:     r.str("brokers_contact"),
		BuyerName:         r.str("buyers_name"),
		Acquisition: Acquisition{
			UnitLotCost: rd.money(r, "acquisition_unit_lot_cost"),
			CostPerSqm:  rd.money(r, "acquisition_cost_per_sqm"),
			FitOutCost:  rd.money(r, "acquisition_fit_out_cost"),
		},
		Payment: PaymentInfo{
			Status:      PaymentStatus(r.str("payment_status")),
			ScheduleURL: r.str("payment_schedule_url"),
		},
		Possession: Possession{
			IsTurnedOver:        r.boolean("possession_is_turned_over"),
			TurnoverDate:        r.date("possession_turnover_date"),
			AuthorizedRecipient: r.str("possession_authorized_recipient"),
		},
		Management: Management{
			CaretakerName:         r.str("caretaker_name"),
			CaretakerRatePerMonth: rd.money(r, "caretaker_rate"),
			RealEstateTaxes: Receipt{
				LastPaid:   r.date("real_estate_tax_last_paid"),
				AmountPaid: rd.money(r, "real_estate_tax_amount"),
				ReceiptURL: r.str("real_estate_tax_receipt_url"),
				FileName:   r.str("real_estate_tax_receipt_file_name"),
			},
		},
		Documentation: Documentation{Outstanding: r.list("pending_documents")},
	}
	// optional groups are present when their key column is.
	if r.str("lease_lessee") != "" {
		p.Lease = &LeaseInfo{
			Lessee:           r.str("lease_lessee"),
			LeaseDate:        r.date("lease_date"),
			LeaseRate:        rd.money(r, "lease_rate"),
			ReferringBroker:  r.str("lease_referring_broker"),
			BrokerContact:    r.str("lease_broker_contact"),
			ContractURL:      r.str("lease_contract_url"),
			ContractFileName: r.str("lease_contract_file_name"),
		}
		if years, err := decimal.NewFromString(r.str("lease_term_years")); err == nil {
			p.Lease.TermInYears = int(years.IntPart())
		}
	}
	if r.str("insurance_company") != "" {
		p.Insurance = &Insurance{
			CoverageDate:   r.date("insurance_coverage_date"),
			AmountInsured:  rd.money(r, "insurance_amount_insured"),
			Company:        r.str("insurance_company"),
			PolicyURL:      r.str("insurance_policy_url"),
			PolicyFileName: r.str("insurance_policy_file_name"),
		}
	}
	if r.str("condo_dues_amount") != "" || r.str("condo_dues_last_paid") != "" {
		p.Management.CondoDues = &Receipt{
			LastPaid:   r.date("condo_dues_last_paid"),
			AmountPaid: rd.money(r, "condo_dues_amount"),
			ReceiptURL: r.str("condo_dues_receipt_url"),
			FileName:   r.str("condo_dues_receipt_file_name"),
		}
	}
	return p
}

func (rd dumpReader) appraisal(r row) Appraisal {
	return Appraisal{
		Date:           r.date("appraisal_date"),
		Value:          rd.money(r, "appraised_value"),
		Appraiser:      r.str("appraisal_company"),
		ReportURL:      r.str("report_url"),
		ReportFileName: r.str("report_file_name"),
	}
}

func (rd dumpReader) document(r row) Document {
	return Document{
		Type:          DocumentType(r.str("type")),
		Status:        r.str("status"),
		Priority:      Priority(r.str("priority")),
		DueDate:       r.date("due_date"),
		ExecutionDate: r.date("execution_date"),
		URL:           r.str("document_url"),
		FileName:      r.str("file_name"),
		PropertyID:    r.str("property_id"),
	}
}
