package realty

import (
	"slices"
	"testing"
)

func TestClassifyDocumentStatus(t *testing.T) {
	tests := []struct {
		status string
		want   DocumentState
	}{
		{"Available", Available},
		{"Missing Original", Pending},
		{"For Submission", Pending},
		{"for submission to BIR", Pending},
		{"Expired", Expired},
		{"In Progress", Available},
		{"", Available},
	}
	for _, tt := range tests {
		if got := ClassifyDocumentStatus(tt.status); got != tt.want {
			t.Errorf("ClassifyDocumentStatus(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestDocumentEffectiveState(t *testing.T) {
	d := Document{Status: "Missing Original"}
	if !d.IsPending() {
		t.Errorf("IsPending() = false for status %q, want true", d.Status)
	}
	d.State = Available
	if d.IsPending() {
		t.Errorf("IsPending() = true with explicit state %q, want false", d.State)
	}
}

func TestPendingDocuments(t *testing.T) {
	d := Documentation{
		Outstanding: []string{"Tax Declaration", "TCT"},
		Docs: []Document{
			{Type: TitleDocument, Status: "Missing Original"},
			{Type: DeedOfSale, State: Pending},
			{Type: TaxDeclaration, Status: "Available"},
		},
	}
	want := []string{"Tax Declaration", "TCT", "DOAS"}
	if got := d.PendingDocuments(); !slices.Equal(got, want) {
		t.Errorf("PendingDocuments() = %v, want %v", got, want)
	}
	if (Documentation{}).NeedsAttention() {
		t.Errorf("NeedsAttention() = true for no documents, want false")
	}
}

func TestParseEnums(t *testing.T) {
	if got, err := ParsePropertyType("warehouse & lot"); err != nil || got != WarehouseAndLot {
		t.Errorf("ParsePropertyType() = %v, %v, want %v", got, err, WarehouseAndLot)
	}
	if got, err := ParseRegion(" visayas "); err != nil || got != Visayas {
		t.Errorf("ParseRegion() = %v, %v, want %v", got, err, Visayas)
	}
	if got, err := ParsePaymentStatus("fully paid"); err != nil || got != FullyPaid {
		t.Errorf("ParsePaymentStatus() = %v, %v, want %v", got, err, FullyPaid)
	}
	if got, err := ParseDocumentType("lease contract"); err != nil || got != LeaseContract {
		t.Errorf("ParseDocumentType() = %v, %v, want %v", got, err, LeaseContract)
	}
	if _, err := ParseRegion("Palawan"); err == nil {
		t.Errorf("ParseRegion(%q) should fail", "Palawan")
	}
}
