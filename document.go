package realty

import (
	"slices"
	"strings"
)

// DocumentType is the category of a property document.
type DocumentType string

const (
	TitleDocument      DocumentType = "TCT"  // transfer certificate of title
	TaxDeclaration     DocumentType = "TD"   // tax declaration
	CondoCertificate   DocumentType = "CCT"  // condominium certificate of title
	DeedOfSale         DocumentType = "DOAS" // deed of absolute sale
	ContractToSell     DocumentType = "CTS"
	CertificateOfLease DocumentType = "COL"
	LeaseContract      DocumentType = "Lease Contract"
	InsurancePolicy    DocumentType = "Insurance Policy"
)

// DocumentTypes lists all document categories in display order.
var DocumentTypes = []DocumentType{
	TitleDocument, TaxDeclaration, CondoCertificate, DeedOfSale,
	ContractToSell, CertificateOfLease, LeaseContract, InsurancePolicy,
}

// ParseDocumentType returns the document category matching s, case insensitive.
func ParseDocumentType(s string) (DocumentType, error) { return parseEnum(s, DocumentTypes) }

// Priority of a document follow-up.
type Priority string

const (
	High   Priority = "High"
	Medium Priority = "Medium"
	Low    Priority = "Low"
)

// DocumentState is the availability of a document.
type DocumentState string

const (
	Available DocumentState = "available"
	Pending   DocumentState = "pending"
	Expired   DocumentState = "expired"
)

// ClassifyDocumentStatus maps a free-text status like "Missing Original",
// "For Submission" or "Available (Copy)" to a DocumentState.
//
// Text mentioning "missing" or "submission" is pending, text mentioning
// "expired" is expired, anything else is available.
func ClassifyDocumentStatus(status string) DocumentState {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "missing"), strings.Contains(s, "submission"):
		return Pending
	case strings.Contains(s, "expired"):
		return Expired
	default:
		return Available
	}
}

// Document is a file attached to a property.
type Document struct {
	Type          DocumentType  `json:"type"`
	Status        string        `json:"status"`
	State         DocumentState `json:"state,omitempty"`
	Priority      Priority      `json:"priority"`
	DueDate       Date          `json:"dueDate"`
	ExecutionDate Date          `json:"executionDate"`
	URL           string        `json:"documentUrl"`
	FileName      string        `json:"fileName,omitempty"`
	PropertyID    string        `json:"propertyId"`
	PropertyName  string        `json:"propertyName"`
}

// EffectiveState returns the explicit state, or the state classified from
// the status text for records written before states existed.
func (d Document) EffectiveState() DocumentState {
	if d.State != "" {
		return d.State
	}
	return ClassifyDocumentStatus(d.Status)
}

// IsPending reports whether the document still has to be provided.
func (d Document) IsPending() bool { return d.EffectiveState() == Pending }

// Name returns the file name, or the document type when there is none.
func (d Document) Name() string {
	if d.FileName != "" {
		return d.FileName
	}
	return string(d.Type)
}

// Documentation is the set of documents of a property.
type Documentation struct {
	Docs []Document `json:"docs"`
	// Outstanding lists document names flagged as pending on the property
	// record itself, without a document row.
	Outstanding []string `json:"pendingDocuments,omitempty"`
}

// PendingDocuments returns the names of the documents still pending: the
// outstanding names followed by the type of every pending document, without
// duplicates.
func (d Documentation) PendingDocuments() []string {
	var names []string
	add := func(name string) {
		if name != "" && !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	for _, name := range d.Outstanding {
		add(name)
	}
	for _, doc := range d.Docs {
		if doc.IsPending() {
			add(string(doc.Type))
		}
	}
	return names
}

// NeedsAttention reports whether some documents are pending.
func (d Documentation) NeedsAttention() bool { return len(d.PendingDocuments()) > 0 }
