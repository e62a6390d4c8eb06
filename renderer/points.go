// Package renderer turns pricing results into markdown reports.
//
// Report types are plain structs carrying display-ready values (Money,
// Quantity, Date), so they marshal to json as-is and render through
// text/template without further formatting logic.
package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/pahli/equate"
)

// Points is the reference-point report: one row per priced economic event,
// valued in the currently selected display currency.
type Points struct {

	// Company whose plan the activity belongs to, empty when unknown.
	Company string `json:"company,omitempty"`
	// SourceCurrency is the currency the activity records were reported in.
	SourceCurrency string `json:"sourceCurrency"`
	// CurrentCurrency is the display currency of the Value column.
	CurrentCurrency string `json:"currentCurrency"`
	// Rows is one row per reference point, in chronological order.
	Rows []PointRow `json:"rows"`
	// TotalValue is the sum of all row values in the display currency.
	TotalValue equate.Money `json:"totalValue"`
	// Degraded counts the rows priced in their source currency only.
	Degraded int `json:"degraded,omitempty"`
}

// PointRow is a single reference point prepared for display.
type PointRow struct {
	Date     equate.Date      `json:"date"`
	Kind     equate.PointKind `json:"kind"`
	Category equate.Category  `json:"category"`
	Quantity equate.Quantity  `json:"quantity"`
	Price    equate.Money     `json:"price"`
	Value    equate.Money     `json:"value"`
	Degraded bool             `json:"degraded,omitempty"`
}

// NewPoints creates the report from a built point list.
func NewPoints(points []*equate.ReferencePoint, sourceCurrency, company string) *Points {
	r := &Points{
		Company:        company,
		SourceCurrency: sourceCurrency,
		Rows:           make([]PointRow, 0, len(points)),
	}
	for _, p := range points {
		r.CurrentCurrency = p.CurrentCurrency
		row := PointRow{
			Date:     p.Date,
			Kind:     p.Kind,
			Category: p.Category,
			Quantity: p.Quantity,
			Price:    equate.M(p.CurrentPrice, p.CurrentCurrency),
			Value:    p.Value(),
			Degraded: p.Degraded(),
		}
		if row.Degraded {
			r.Degraded++
		}
		r.Rows = append(r.Rows, row)
		r.TotalValue = r.TotalValue.Add(row.Value)
	}
	return r
}

// pointsMarkdownTemplate is the template for rendering a Points report in Markdown.
const pointsMarkdownTemplate = `# Reference Points{{ if .Company }} for {{ .Company }}{{ end }}

Displayed in **{{ .CurrentCurrency }}** (source {{ .SourceCurrency }})

| Date | Kind | Category | Quantity | Price | Value |
|:---|:---|:---|---:|---:|---:|
{{- range .Rows }}
| {{ .Date }} | {{ .Kind }} | {{ .Category }} | {{ .Quantity }} | {{ .Price }}{{ if .Degraded }} * | {{ else }} | {{ end }}{{ .Value.SignedString }} |
{{- end }}
| **Total** | | | | | **{{ .TotalValue.SignedString }}** |
{{- if .Degraded }}

*{{ .Degraded }} point(s) could not be converted and keep their source-currency price.*
{{- end }}
`

// RenderPoints renders the Points report to a markdown string.
func RenderPoints(r *Points) string {
	tmpl := template.Must(template.New("points").Parse(pointsMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
