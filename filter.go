package realty

import "strings"

// Lease status filter values.
const (
	Leased = "leased"
	Vacant = "vacant"
)

// Criteria selects properties. Empty fields, or fields set to "all", select everything.
type Criteria struct {
	Search        string // substring of the name, the address or the region
	Category      string
	Region        string
	PaymentStatus string
	LeaseStatus   string // "leased" or "vacant"
}

func isSet(v string) bool { return v != "" && !strings.EqualFold(v, "all") }

// Match reports whether p satisfies all the criteria.
func (c Criteria) Match(p *Property) bool {
	if p == nil {
		return false
	}
	if isSet(c.Search) {
		search := strings.ToLower(c.Search)
		if !containsFold(p.Name, search) && !containsFold(p.FullAddress, search) && !containsFold(string(p.Region), search) {
			return false
		}
	}
	if isSet(c.Category) && string(p.Type) != c.Category {
		return false
	}
	if isSet(c.Region) && string(p.Region) != c.Region {
		return false
	}
	if isSet(c.PaymentStatus) && string(p.Payment.Status) != c.PaymentStatus {
		return false
	}
	if isSet(c.LeaseStatus) {
		switch strings.ToLower(c.LeaseStatus) {
		case Leased:
			return p.IsLeased()
		case Vacant:
			return !p.IsLeased()
		}
	}
	return true
}

// containsFold reports whether lowered 'sub' is within s, ignoring case.
func containsFold(s, sub string) bool { return strings.Contains(strings.ToLower(s), sub) }

// FilterProperties returns the properties matching c, in their input order.
func FilterProperties(properties []*Property, c Criteria) []*Property {
	var selected []*Property
	for _, p := range properties {
		if c.Match(p) {
			selected = append(selected, p)
		}
	}
	return selected
}

// FilterDocuments returns the documents of the given category (all if empty
// or "all") whose property name or file name contains search.
func FilterDocuments(docs []Document, category, search string) []Document {
	search = strings.ToLower(search)
	var selected []Document
	for _, d := range docs {
		if isSet(category) && string(d.Type) != category {
			continue
		}
		if search != "" && !containsFold(d.PropertyName, search) && !containsFold(d.FileName, search) {
			continue
		}
		selected = append(selected, d)
	}
	return selected
}
