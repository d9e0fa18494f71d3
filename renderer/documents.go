package renderer

import (
	"bytes"

	"github.com/etnz/realty"
	md "github.com/nao1215/markdown"
)

// DocumentsMarkdown renders a document list.
func DocumentsMarkdown(title string, docs []realty.Document) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(docs) == 0 {
		doc.PlainText("No document.")
		return doc.String()
	}
	table := md.TableSet{
		Header: []string{"Document", "Type", "Property", "State", "Priority", "Due"},
		Rows:   [][]string{},
	}
	for _, d := range docs {
		name := d.Name()
		if d.URL != "" && d.URL != "#" {
			name = md.Link(name, d.URL)
		}
		due := ""
		if !d.DueDate.IsZero() {
			due = d.DueDate.String()
		}
		table.Rows = append(table.Rows, []string{name, string(d.Type), d.PropertyName, string(d.EffectiveState()), string(d.Priority), due})
	}
	doc.Table(table)
	return doc.String()
}
