package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/realty"
	md "github.com/nao1215/markdown"
)

// PropertiesMarkdown renders the property list as a table.
func PropertiesMarkdown(props []*realty.Property) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Properties")
	if len(props) == 0 {
		doc.PlainText("No property matches.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"ID", "Name", "Type", "Location", "Cost", "Value", "Change"},
		Rows:   [][]string{},
	}
	for _, p := range props {
		table.Rows = append(table.Rows, []string{
			p.ID,
			p.Name,
			string(p.Type),
			string(p.Region),
			p.Acquisition.TotalCost().String(),
			p.CurrentValue().String(),
			p.ValueChange().SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// PropertyMarkdown renders the detail of a single property. Sections without
// content are omitted.
func PropertyMarkdown(p *realty.Property) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	fmt.Fprintf(&b, "%s in %s, %s.\n\n", p.Type, p.Region, p.FullAddress)

	fmt.Fprintf(&b, "| Acquisition | |\n|:---|---:|\n")
	fmt.Fprintf(&b, "| Unit/Lot Cost | %s |\n", p.Acquisition.UnitLotCost)
	fmt.Fprintf(&b, "| Fit-Out Cost | %s |\n", p.Acquisition.FitOutCost)
	fmt.Fprintf(&b, "| **Total Cost** | **%s** |\n", p.Acquisition.TotalCost())
	fmt.Fprintf(&b, "| Current Value | %s |\n", p.CurrentValue())
	fmt.Fprintf(&b, "| Payment | %s |\n\n", p.Payment.Status)

	ConditionalBlock(&b, func(w io.Writer) bool {
		history := p.AppraisalHistory()
		if len(history) == 0 {
			return false
		}
		fmt.Fprintf(w, "## Appraisals\n\n")
		fmt.Fprintf(w, "| Date | Appraiser | Value | Change | |\n|:---|:---|---:|---:|---:|\n")
		for _, a := range history {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n", a.Date, a.Appraiser, a.Value, a.Change.SignedString(), a.Percent.SignedString())
		}
		fmt.Fprintln(w)
		return true
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		if p.Lease == nil {
			return false
		}
		l := p.Lease
		fmt.Fprintf(w, "## Lease\n\n")
		fmt.Fprintf(w, "Leased to **%s** since %s for %d years at %s per month.\n\n", l.Lessee, l.LeaseDate, l.TermInYears, l.LeaseRate)
		return true
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		if p.Insurance == nil {
			return false
		}
		fmt.Fprintf(w, "## Insurance\n\n")
		fmt.Fprintf(w, "Insured by %s for %s", p.Insurance.Company, p.Insurance.AmountInsured)
		if !p.Insurance.CoverageDate.IsZero() {
			fmt.Fprintf(w, " since %s", p.Insurance.CoverageDate)
		}
		fmt.Fprintf(w, ".\n\n")
		return true
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		expenses := realty.AnnualExpenses(p)
		if expenses.IsZero() {
			return false
		}
		fmt.Fprintf(w, "## Running Costs\n\n")
		fmt.Fprintf(w, "Annual expenses: %s.\n\n", expenses)
		return true
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		pending := p.Documentation.PendingDocuments()
		if len(pending) == 0 {
			return false
		}
		fmt.Fprintf(w, "## Pending Documents\n\n")
		for _, name := range pending {
			fmt.Fprintf(w, "- %s\n", name)
		}
		fmt.Fprintln(w)
		return true
	})

	return b.String()
}
