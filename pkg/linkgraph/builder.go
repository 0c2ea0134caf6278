// Package linkgraph computes the related-page links of a generated corpus
// and answers read-only graph-health queries over it.
package linkgraph

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/catalog"
)

// Link count bounds.
const (
	DefaultMinLinks = 3
	DefaultMaxLinks = 12
)

// Each related category yields two candidates whose variations are picked
// at these offsets from the category's position in its affinity row. The
// offsets must differ modulo the number of variations so the two
// candidates never collapse into one.
const (
	primaryVariationOffset   = 0
	secondaryVariationOffset = 2
)

// Candidate is an abstract link target before resolution.
type Candidate struct {
	CategoryID string
	Variation  models.VariationType
}

// Candidates returns the ordered link candidates for a category: one pass
// over its affinity row at the primary offset, then one at the secondary.
func Candidates(categoryID string) []Candidate {
	variations := catalog.Variations()
	related := Affinity(categoryID)

	out := make([]Candidate, 0, 2*len(related))
	for _, offset := range []int{primaryVariationOffset, secondaryVariationOffset} {
		for i, rel := range related {
			v := variations[(i+offset)%len(variations)]
			out = append(out, Candidate{CategoryID: rel, Variation: v.Type})
		}
	}
	return out
}

type pageKey struct {
	category  string
	variation models.VariationType
	location  string
}

// Index is a read-only lookup over a frozen corpus.
type Index struct {
	byKey      map[pageKey]string
	names      map[string]string
	generic    string
	variations []models.VariationType
}

// NewIndex indexes records by (category, variation, location). When two
// records share a key the first one wins.
func NewIndex(records []models.PageRecord, genericLocation string) *Index {
	idx := &Index{
		byKey:   make(map[pageKey]string, len(records)),
		names:   make(map[string]string, len(records)),
		generic: genericLocation,
	}
	for _, v := range catalog.Variations() {
		idx.variations = append(idx.variations, v.Type)
	}
	for _, r := range records {
		k := pageKey{category: r.ServiceCategory, variation: r.TitleVariation, location: r.Location}
		if _, dup := idx.byKey[k]; !dup {
			idx.byKey[k] = r.URL
		}
		idx.names[r.URL] = r.ServiceName + " in " + r.Location
	}
	return idx
}

// Has reports whether url belongs to the indexed corpus.
func (idx *Index) Has(url string) bool {
	_, ok := idx.names[url]
	return ok
}

func (idx *Index) lookup(category string, variation models.VariationType, location string) (string, bool) {
	url, ok := idx.byKey[pageKey{category: category, variation: variation, location: location}]
	return url, ok
}

// Resolve turns a candidate into an existing URL for a page in location:
// same location first, then the generic page with the same variation, then
// the generic page in any variation (catalog order).
func (idx *Index) Resolve(c Candidate, location string) (string, bool) {
	if url, ok := idx.lookup(c.CategoryID, c.Variation, location); ok {
		return url, true
	}
	if url, ok := idx.lookup(c.CategoryID, c.Variation, idx.generic); ok {
		return url, true
	}
	for _, v := range idx.variations {
		if url, ok := idx.lookup(c.CategoryID, v, idx.generic); ok {
			return url, true
		}
	}
	return "", false
}

// Builder computes related links against an Index.
type Builder struct {
	index    *Index
	minLinks int
	maxLinks int
}

// NewBuilder returns a Builder; non-positive bounds take the defaults.
func NewBuilder(index *Index, minLinks, maxLinks int) *Builder {
	if minLinks <= 0 {
		minLinks = DefaultMinLinks
	}
	if maxLinks <= 0 {
		maxLinks = DefaultMaxLinks
	}
	return &Builder{index: index, minLinks: minLinks, maxLinks: maxLinks}
}

// Links returns the related links for rec. Every returned URL exists in
// the index, differs from rec.URL and appears once.
func (b *Builder) Links(rec models.PageRecord) []models.RelatedLink {
	used := map[string]bool{rec.URL: true}
	var links []models.RelatedLink

	add := func(url string) {
		if used[url] || len(links) >= b.maxLinks {
			return
		}
		used[url] = true
		links = append(links, models.RelatedLink{Name: b.index.names[url], URL: url})
	}

	for _, c := range Candidates(rec.ServiceCategory) {
		if url, ok := b.index.Resolve(c, rec.Location); ok {
			add(url)
		}
	}

	// Widen the generic-any-variation tier: try every variation of every
	// related category instead of only the first one that exists.
	if len(links) < b.minLinks {
		for _, rel := range Affinity(rec.ServiceCategory) {
			for _, v := range b.index.variations {
				if len(links) >= b.minLinks {
					break
				}
				if url, ok := b.index.lookup(rel, v, b.index.generic); ok {
					add(url)
				}
			}
		}
	}

	return links
}

// Options configures Relink.
type Options struct {
	GenericLocation string
	MinLinks        int
	MaxLinks        int
	Workers         int
	Logger          *slog.Logger
}

// Report summarises a Relink pass.
type Report struct {
	Pages       int      `yaml:"pages"`
	TotalLinks  int      `yaml:"total_links"`
	UnderLinked []string `yaml:"under_linked,omitempty"`
}

// Relink rewrites RelatedServices of every record against the complete
// corpus. It only reads the index, and each worker writes a disjoint
// record, so Workers > 1 runs the pass in parallel.
func Relink(ctx context.Context, records []models.PageRecord, opts Options) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	generic := opts.GenericLocation
	if generic == "" {
		generic = catalog.Generic().Name
	}

	b := NewBuilder(NewIndex(records, generic), opts.MinLinks, opts.MaxLinks)

	if opts.Workers <= 1 {
		for i := range records {
			if err := ctx.Err(); err != nil {
				return Report{}, fmt.Errorf("relink cancelled: %w", err)
			}
			records[i].RelatedServices = b.Links(records[i])
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for i := range records {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				records[i].RelatedServices = b.Links(records[i])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Report{}, fmt.Errorf("relink cancelled: %w", err)
		}
	}

	report := Report{Pages: len(records)}
	for _, r := range records {
		report.TotalLinks += len(r.RelatedServices)
		if len(r.RelatedServices) < b.minLinks {
			report.UnderLinked = append(report.UnderLinked, r.URL)
			logger.Warn("page is under-linked", "url", r.URL, "links", len(r.RelatedServices), "min", b.minLinks)
		}
	}
	logger.Info("Relink complete", "pages", report.Pages, "links", report.TotalLinks, "under_linked", len(report.UnderLinked))

	return report, nil
}
