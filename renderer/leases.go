package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/realty"
	md "github.com/nao1215/markdown"
)

// LeasesMarkdown renders the standalone leases with their payment totals.
func LeasesMarkdown(views []realty.LeaseView) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Leases")
	if len(views) == 0 {
		doc.PlainText("No lease recorded.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"ID", "Property", "Tenant", "Term", "Rent", "Collected", "Pending"},
		Rows:   [][]string{},
	}
	for _, v := range views {
		table.Rows = append(table.Rows, []string{
			v.ID,
			v.PropertyName,
			v.TenantName,
			fmt.Sprintf("%s (%s)", v.Term(), v.Status),
			v.MonthlyRent.String(),
			v.Collected.String(),
			v.Pending.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// ScheduleMarkdown renders payments of a lease, typically a post-dated check
// schedule.
func ScheduleMarkdown(title string, payments []realty.Payment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(payments) == 0 {
		doc.PlainText("No payment.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Date", "Amount", "Type", "Method", "Status"},
		Rows:      [][]string{},
	}
	var total realty.Money
	for _, p := range payments {
		if total.SameCurrency(p.Amount) {
			total = total.Add(p.Amount)
		}
		table.Rows = append(table.Rows, []string{p.Date.String(), p.Amount.String(), p.Type, p.Method, string(p.State)})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(total.String()), "", "", ""})
	doc.Table(table)
	return doc.String()
}
