// Package meta renders the <head> fragment of a page and audits it by
// parsing the rendered markup back.
package meta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/polishpages/models"
)

// Length bounds checked by Audit.
const (
	MaxTitleLength          = 60
	MinDescriptionLength    = 120
	MaxDescriptionLength    = 160
	expectedStructuredBlock = 2
)

// Finding severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

var headTemplate = template.Must(template.New("head").Parse(`<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
<link rel="canonical" href="{{.Canonical}}">
<meta name="keywords" content="{{.Keywords}}">
{{range .StructuredData}}<script type="application/ld+json">{{.}}</script>
{{end}}</head>
`))

type head struct {
	Title          string
	Description    string
	Canonical      string
	Keywords       string
	StructuredData []template.JS
}

// Finding is one audit observation.
type Finding struct {
	URL      string `yaml:"url"`
	Severity string `yaml:"severity"`
	Message  string `yaml:"message"`
}

// RenderHead returns the <head> fragment of rec.
func RenderHead(rec models.PageRecord) (string, error) {
	h := head{
		Title:       rec.Title,
		Description: rec.MetaDescription,
		Canonical:   rec.CanonicalURL,
		Keywords:    strings.Join(append([]string{rec.PrimaryKeyword}, rec.SecondaryKeywords...), ", "),
	}
	for _, obj := range []map[string]any{rec.Schema.LocalBusiness, rec.Schema.Service} {
		if len(obj) == 0 {
			continue
		}
		data, err := json.Marshal(obj)
		if err != nil {
			return "", fmt.Errorf("failed to marshal structured data for %s: %w", rec.URL, err)
		}
		h.StructuredData = append(h.StructuredData, template.JS(data))
	}

	var buf bytes.Buffer
	if err := headTemplate.Execute(&buf, h); err != nil {
		return "", fmt.Errorf("failed to render head for %s: %w", rec.URL, err)
	}
	return buf.String(), nil
}

// Audit parses a rendered head fragment and checks it against rec.
func Audit(rec models.PageRecord, origin, html string) ([]Finding, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse head for %s: %w", rec.URL, err)
	}

	var findings []Finding
	add := func(severity, format string, args ...any) {
		findings = append(findings, Finding{URL: rec.URL, Severity: severity, Message: fmt.Sprintf(format, args...)})
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		add(SeverityError, "missing <title>")
	case n > MaxTitleLength:
		add(SeverityWarning, "title is %d characters, over %d", n, MaxTitleLength)
	}

	desc, ok := doc.Find(`meta[name="description"]`).Attr("content")
	switch n := utf8.RuneCountInString(desc); {
	case !ok || n == 0:
		add(SeverityError, "missing meta description")
	case n < MinDescriptionLength || n > MaxDescriptionLength:
		add(SeverityWarning, "meta description is %d characters, outside %d-%d", n, MinDescriptionLength, MaxDescriptionLength)
	}

	want := strings.TrimRight(origin, "/") + rec.URL
	if canonical := doc.Find(`link[rel="canonical"]`).AttrOr("href", ""); canonical != want {
		add(SeverityError, "canonical is %q, want %q", canonical, want)
	}

	blocks := 0
	doc.Find(`script[type="application/ld+json"]`).Each(func(i int, s *goquery.Selection) {
		blocks++
		if !json.Valid([]byte(s.Text())) {
			add(SeverityError, "structured data block %d is not valid JSON", i)
		}
	})
	if blocks < expectedStructuredBlock {
		add(SeverityError, "found %d structured data blocks, want %d", blocks, expectedStructuredBlock)
	}

	return findings, nil
}

// AuditRecords renders and audits every record.
func AuditRecords(records []models.PageRecord, origin string) ([]Finding, error) {
	var all []Finding
	for _, r := range records {
		html, err := RenderHead(r)
		if err != nil {
			return nil, err
		}
		findings, err := Audit(r, origin, html)
		if err != nil {
			return nil, err
		}
		all = append(all, findings...)
	}
	return all, nil
}

// Count returns the number of findings with the given severity.
func Count(findings []Finding, severity string) int {
	n := 0
	for _, f := range findings {
		if f.Severity == severity {
			n++
		}
	}
	return n
}
