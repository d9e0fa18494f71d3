package realty

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	properties := FilterProperties(filterFixture(), Criteria{LeaseStatus: Leased})
	var sb strings.Builder
	if err := WriteCSV(&sb, properties, MustParse("2024-06-30")); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	out := sb.String()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != len(properties)+1 {
		t.Fatalf("WriteCSV() wrote %d lines, want %d:\n%s", len(lines), len(properties)+1, out)
	}
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("WriteCSV() output is not valid CSV: %v", err)
	}
	if got := strings.Join(records[0], ","); got != strings.Join(CSVHeader, ",") {
		t.Errorf("header = %q, want %q", got, strings.Join(CSVHeader, ","))
	}
	for i, p := range properties {
		rec := records[i+1]
		if got := rec[len(rec)-2]; got != string(p.Payment.Status) {
			t.Errorf("row %d payment status = %q, want %q", i, got, p.Payment.Status)
		}
	}
}

func TestWriteCSVRow(t *testing.T) {
	p := property(`The "Loft", Makati`, 1_500_000, appraisal("2024-01-01", 1_750_000.5, "x"))
	p.Acquisition.FitOutCost = PHP(250_000)
	p.Type = WarehouseAndLot

	var sb strings.Builder
	if err := WriteCSV(&sb, []*Property{p}, MustParse("2024-06-30")); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	want := strings.Join(CSVHeader, ",") + "\n" +
		`"The ""Loft"", Makati",Warehouse & Lot,Luzon,1750000.00,1750000.50,Fully Paid,2024-06-30` + "\n"
	if got := sb.String(); got != want {
		t.Errorf("WriteCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestExportFileName(t *testing.T) {
	if got, want := ExportFileName(NewDate(2024, 6, 5)), "financial_report_2024-06-05.csv"; got != want {
		t.Errorf("ExportFileName() = %q, want %q", got, want)
	}
}
