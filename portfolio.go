package realty

import "slices"

// Portfolio gathers the collections fetched independently from the store so
// views joining them can be computed. It is a snapshot: recompute views after
// any change rather than patching them.
type Portfolio struct {
	Properties []*Property
	Tenants    []Tenant
	Leases     []Lease
	Payments   []Payment
	Activities []Activity
}

// Attach appends appraisals (keyed by property ID) and documents to their
// property, and stamps each document with its property's name.
// Records of unknown properties are dropped.
func (pf *Portfolio) Attach(appraisals map[string][]Appraisal, documents []Document) {
	for _, p := range pf.Properties {
		p.Appraisals = append(p.Appraisals, appraisals[p.ID]...)
	}
	for _, doc := range documents {
		p, ok := pf.Property(doc.PropertyID)
		if !ok {
			continue
		}
		doc.PropertyName = p.Name
		p.Documentation.Docs = append(p.Documentation.Docs, doc)
	}
}

// Property returns the property with the given ID.
func (pf *Portfolio) Property(id string) (*Property, bool) {
	i := slices.IndexFunc(pf.Properties, func(p *Property) bool { return p.ID == id })
	if i < 0 {
		return nil, false
	}
	return pf.Properties[i], true
}

// Tenant returns the tenant with the given ID.
func (pf *Portfolio) Tenant(id string) (Tenant, bool) {
	i := slices.IndexFunc(pf.Tenants, func(t Tenant) bool { return t.ID == id })
	if i < 0 {
		return Tenant{}, false
	}
	return pf.Tenants[i], true
}

// Lease returns the lease with the given ID.
func (pf *Portfolio) Lease(id string) (Lease, bool) {
	i := slices.IndexFunc(pf.Leases, func(l Lease) bool { return l.ID == id })
	if i < 0 {
		return Lease{}, false
	}
	return pf.Leases[i], true
}

// Filter returns the properties matching c.
func (pf *Portfolio) Filter(c Criteria) []*Property { return FilterProperties(pf.Properties, c) }

// Aggregate returns the totals of the properties matching c.
func (pf *Portfolio) Aggregate(c Criteria) Aggregate { return AggregateProperties(pf.Filter(c)) }

// Summary returns the financial summary of the properties matching c.
// Payments are not filtered.
func (pf *Portfolio) Summary(c Criteria, source IncomeSource) FinancialSummary {
	return SummarizeLeases(pf.Filter(c), pf.Leases, pf.Payments, source)
}

// LeaseView is a lease joined with its property, tenant and payments.
type LeaseView struct {
	Lease
	PropertyName string
	TenantName   string
	Payments     []Payment
	Collected    Money // completed payments
	Pending      Money // pending payments
}

// LeaseViews returns a view of every lease, in input order.
func (pf *Portfolio) LeaseViews() []LeaseView {
	views := make([]LeaseView, 0, len(pf.Leases))
	for _, l := range pf.Leases {
		v := LeaseView{Lease: l}
		if p, ok := pf.Property(l.PropertyID); ok {
			v.PropertyName = p.Name
		}
		if t, ok := pf.Tenant(l.TenantID); ok {
			v.TenantName = t.Name
		}
		for _, pay := range pf.Payments {
			if pay.LeaseID != l.ID {
				continue
			}
			v.Payments = append(v.Payments, pay)
			switch pay.State {
			case PaymentCompleted:
				v.Collected = v.Collected.plus(pay.Amount.clamp())
			case PaymentPending:
				v.Pending = v.Pending.plus(pay.Amount.clamp())
			}
		}
		slices.SortStableFunc(v.Payments, func(a, b Payment) int { return a.Date.Compare(b.Date) })
		views = append(views, v)
	}
	return views
}

// AllDocuments returns every document of the portfolio. Lease contracts and
// insurance policies recorded on the property itself are listed as
// available documents.
func (pf *Portfolio) AllDocuments() []Document {
	var docs []Document
	for _, p := range pf.Properties {
		docs = append(docs, p.Documentation.Docs...)
		if p.Lease != nil && hasLink(p.Lease.ContractURL) {
			docs = append(docs, Document{
				Type: LeaseContract, Status: "Available", State: Available, Priority: Medium,
				URL: p.Lease.ContractURL, FileName: orDefault(p.Lease.ContractFileName, string(LeaseContract)),
				PropertyID: p.ID, PropertyName: p.Name,
			})
		}
		if p.Insurance != nil && hasLink(p.Insurance.PolicyURL) {
			docs = append(docs, Document{
				Type: InsurancePolicy, Status: "Available", State: Available, Priority: Medium,
				URL: p.Insurance.PolicyURL, FileName: orDefault(p.Insurance.PolicyFileName, string(InsurancePolicy)),
				PropertyID: p.ID, PropertyName: p.Name,
			})
		}
	}
	return docs
}

// PendingDocuments returns the pending documents of the portfolio, high priority first.
func (pf *Portfolio) PendingDocuments() []Document {
	var pending []Document
	for _, d := range pf.AllDocuments() {
		if d.IsPending() {
			pending = append(pending, d)
		}
	}
	rank := map[Priority]int{High: 0, Medium: 1, Low: 2}
	slices.SortStableFunc(pending, func(a, b Document) int { return rank[a.Priority] - rank[b.Priority] })
	return pending
}

// RecentActivity returns the n most recent activities.
func (pf *Portfolio) RecentActivity(n int) []Activity { return RecentActivities(pf.Activities, n) }

// "#" is the placeholder link written by the forms for missing files.
func hasLink(url string) bool { return url != "" && url != "#" }

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
