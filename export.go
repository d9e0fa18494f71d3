package realty

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CSVHeader is the header row of the financial report.
var CSVHeader = []string{"Property Name", "Type", "Location", "Acquisition Cost", "Market Value", "Payment Status", "Last Updated"}

// ExportFileName returns the file name of the financial report generated on 'on'.
func ExportFileName(on Date) string {
	return fmt.Sprintf("financial_report_%s.csv", on)
}

// WriteCSV writes the financial report of properties to w: a header and one
// row per property. The property name is always quoted; other fields are
// quoted only when they need to be.
func WriteCSV(w io.Writer, properties []*Property, on Date) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(CSVHeader, ","))
	for _, p := range properties {
		if p == nil {
			continue
		}
		row := []string{
			quote(p.Name),
			field(string(p.Type)),
			field(string(p.Region)),
			p.Acquisition.TotalCost().Plain(),
			p.CurrentValue().Plain(),
			field(string(p.Payment.Status)),
			on.String(),
		}
		bw.WriteString("\n")
		bw.WriteString(strings.Join(row, ","))
	}
	bw.WriteString("\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cannot write financial report: %w", err)
	}
	return nil
}

func quote(s string) string { return `"` + strings.ReplaceAll(s, `"`, `""`) + `"` }

func field(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quote(s)
	}
	return s
}
