package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/pahli/equate"
)

// Timeline is the daily price report for one display currency.
type Timeline struct {
	// Currency is the display currency of the series.
	Currency string `json:"currency"`
	// From and To bound the series, inclusive.
	From equate.Date `json:"from"`
	To   equate.Date `json:"to"`
	// Days is one entry per calendar day.
	Days []TimelineDay `json:"days"`
	// First and Last are the series boundary prices.
	First equate.Money `json:"first"`
	Last  equate.Money `json:"last"`
}

// TimelineDay is a single day of the series.
type TimelineDay struct {
	Date  equate.Date  `json:"date"`
	Price equate.Money `json:"price"`
}

// NewTimeline creates the report from a daily price series.
func NewTimeline(series []equate.DailyPrice, currency string) *Timeline {
	r := &Timeline{
		Currency: currency,
		Days:     make([]TimelineDay, 0, len(series)),
	}
	for _, d := range series {
		r.Days = append(r.Days, TimelineDay{Date: d.Date, Price: equate.M(d.Price, currency)})
	}
	if len(r.Days) > 0 {
		r.From = r.Days[0].Date
		r.To = r.Days[len(r.Days)-1].Date
		r.First = r.Days[0].Price
		r.Last = r.Days[len(r.Days)-1].Price
	}
	return r
}

const timelineMarkdownTemplate = `# Daily Prices in {{ .Currency }}
{{- if .Days }}

From {{ .From }} ({{ .First }}) to {{ .To }} ({{ .Last }})

| Date | Price |
|:---|---:|
{{- range .Days }}
| {{ .Date }} | {{ .Price }} |
{{- end }}
{{- else }}

No priced days.
{{- end }}
`

// RenderTimeline renders the Timeline report to a markdown string.
func RenderTimeline(r *Timeline) string {
	tmpl := template.Must(template.New("timeline").Parse(timelineMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
