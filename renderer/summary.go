package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/realty"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the dashboard: financial summary and portfolio
// breakdowns.
func SummaryMarkdown(s realty.FinancialSummary, agg realty.Aggregate, on realty.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", on))
	doc.PlainText(fmt.Sprintf("%d properties, %d needing attention.", agg.Count, agg.NeedsAttention))
	if s.Skipped > 0 {
		doc.PlainText(fmt.Sprintf("%d records in another currency are left out of the totals.", s.Skipped))
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{md.Bold("Market Value"), md.Bold(s.TotalMarketValue.String()), s.ValueChange.SignedString()},
		Rows: [][]string{
			{"Acquisition Cost", s.TotalAcquisitionCost.String(), ""},
		},
	})

	doc.H2("Income")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Item", "Amount"},
		Rows: [][]string{
			{"Annualized Gross Income", s.AnnualizedGrossIncome.String()},
			{"Annualized Expenses", s.AnnualizedExpenses.String()},
			{md.Bold("Net Operating Income"), md.Bold(s.NetOperatingIncome.SignedString())},
			{"ROI", s.ROI.SignedString()},
			{"Collected Rent", s.TotalCollectedIncome.String()},
			{"Pending Payments", s.PendingPayments.String()},
		},
	})

	if len(agg.CostByCategory) > 0 {
		doc.H2("Cost by Category")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Category", "Cost"},
			Rows:      [][]string{},
		}
		for _, t := range slices.Sorted(maps.Keys(agg.CostByCategory)) {
			table.Rows = append(table.Rows, []string{string(t), agg.CostByCategory[t].String()})
		}
		doc.Table(table)
	}

	if len(agg.CountByPaymentStatus) > 0 {
		doc.H2("Payment Status")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Status", "Properties"},
			Rows:      [][]string{},
		}
		for _, st := range slices.Sorted(maps.Keys(agg.CountByPaymentStatus)) {
			table.Rows = append(table.Rows, []string{string(st), fmt.Sprint(agg.CountByPaymentStatus[st])})
		}
		doc.Table(table)
	}

	return doc.String()
}
