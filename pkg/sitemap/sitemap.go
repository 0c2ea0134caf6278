// Package sitemap renders sitemap.xml and robots.txt for a corpus.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/dtnitsch/polishpages/models"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Home page entry values.
const (
	homePriority   = 1.0
	homeChangeFreq = "daily"
)

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Options controls the values stamped into every entry.
type Options struct {
	Origin     string
	LastMod    string // YYYY-MM-DD
	ChangeFreq string // used when a record carries no hint
}

// Build returns the urlset for the home page followed by every record in
// corpus order.
func Build(records []models.PageRecord, opts Options) URLSet {
	origin := strings.TrimRight(opts.Origin, "/")
	set := URLSet{XMLNS: xmlns, URLs: make([]URL, 0, len(records)+1)}

	set.URLs = append(set.URLs, URL{
		Loc:        origin + "/",
		LastMod:    opts.LastMod,
		ChangeFreq: homeChangeFreq,
		Priority:   formatPriority(homePriority),
	})
	for _, r := range records {
		freq := r.ChangeFreq
		if freq == "" {
			freq = opts.ChangeFreq
		}
		u := URL{Loc: origin + r.URL, LastMod: opts.LastMod, ChangeFreq: freq}
		if r.Priority > 0 {
			u.Priority = formatPriority(r.Priority)
		}
		set.URLs = append(set.URLs, u)
	}
	return set
}

func formatPriority(p float64) string {
	return fmt.Sprintf("%.1f", p)
}

// Marshal renders the urlset as an indented XML document.
func Marshal(set URLSet) ([]byte, error) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// Robots returns a robots.txt allowing everything except the API and
// pointing at the sitemap.
func Robots(origin string) string {
	origin = strings.TrimRight(origin, "/")
	var sb strings.Builder
	sb.WriteString("User-agent: *\n")
	sb.WriteString("Allow: /\n")
	sb.WriteString("Disallow: /api/\n\n")
	sb.WriteString("Sitemap: " + origin + "/sitemap.xml\n")
	return sb.String()
}
