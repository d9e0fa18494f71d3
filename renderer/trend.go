package renderer

import (
	"bytes"
	"strings"

	"github.com/etnz/realty"
	md "github.com/nao1215/markdown"
)

const barWidth = 30

// TrendMarkdown renders the market value trend with a text bar per point,
// scaled to the highest value.
func TrendMarkdown(points []realty.TrendPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Value Trend")
	var highest realty.Money
	for _, p := range points {
		if p.Value.GreaterThan(highest) {
			highest = p.Value
		}
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Period", "Value", ""},
		Rows:      [][]string{},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{p.Label, p.Value.String(), bar(p.Value, highest)})
	}
	doc.Table(table)
	return doc.String()
}

func bar(v, highest realty.Money) string {
	if !highest.IsPositive() {
		return ""
	}
	n := int(v.AsFloat() / highest.AsFloat() * barWidth)
	return strings.Repeat("█", n)
}
