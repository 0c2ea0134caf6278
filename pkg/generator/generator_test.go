package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/catalog"
	"github.com/dtnitsch/polishpages/pkg/linkgraph"
	"github.com/dtnitsch/polishpages/pkg/slug"
)

func generate(t *testing.T, cfg models.Config) *Corpus {
	t.Helper()
	corpus, err := New(cfg, nil).GenerateAll(context.Background())
	require.NoError(t, err)
	return corpus
}

func TestAssemble(t *testing.T) {
	category, _ := catalog.CategoryByID("teak-wood-polishing")
	location, _ := catalog.LocationByName("Andheri West")
	variation, _ := catalog.VariationByType(models.VariationBest)

	reg := slug.NewRegistry()
	rec := Assembler{SiteOrigin: "https://example.in/"}.Assemble(category, location, variation, reg)

	assert.Equal(t, "/services/best-teak-wood-polishing-andheri-west", rec.URL)
	assert.Equal(t, "https://example.in"+rec.URL, rec.CanonicalURL)
	assert.Equal(t, "Best Teak Wood Polishing", rec.ServiceName)
	assert.Equal(t, "Best Teak Wood Polishing in Andheri West | Top Rated Polishers", rec.Title)
	assert.Equal(t, "Best Teak Wood Polishing in Andheri West", rec.H1)
	assert.Contains(t, rec.MetaDescription, "Best Teak Wood Polishing in Andheri West")
	assert.NotContains(t, rec.MetaDescription, "%!")
	assert.Equal(t, "teak-wood-polishing", rec.ServiceCategory)
	assert.Equal(t, "Andheri West", rec.Location)
	assert.Equal(t, models.VariationBest, rec.TitleVariation)

	assert.Equal(t, "teak wood polishing andheri west", rec.PrimaryKeyword)
	assert.Contains(t, rec.SecondaryKeywords, "teak wood polishing near me")
	assert.Contains(t, rec.SecondaryKeywords, "best teak wood polishing in andheri west")

	assert.NotNil(t, rec.RelatedServices)
	assert.Empty(t, rec.RelatedServices)
	assert.NotEmpty(t, rec.Schema.LocalBusiness)
	assert.NotEmpty(t, rec.Schema.Service)
	assert.Equal(t, localPriority, rec.Priority)
	assert.True(t, reg.Has(rec.URL))

	again := Assembler{SiteOrigin: "https://example.in"}.Assemble(category, location, variation, reg)
	assert.Equal(t, rec.URL+"-1", again.URL)
}

func TestPrimaryKeyword(t *testing.T) {
	tests := []struct {
		service  string
		location string
		want     string
	}{
		{"Affordable Furniture Polishing", "Mumbai", "furniture polishing mumbai"},
		{"Professional PU Polishing", "Powai", "pu polishing powai"},
		{"Quick Door Polishing", "Navi Mumbai", "door polishing navi mumbai"},
		{"Top-Rated Duco Paint Polishing", "Juhu", "duco paint polishing juhu"},
		{"Sofa Frame Polishing", "Juhu", "sofa frame polishing juhu"},
	}
	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			assert.Equal(t, tt.want, PrimaryKeyword(tt.service, tt.location))
		})
	}
}

func TestExpectedTotal(t *testing.T) {
	assert.Equal(t, 150, ExpectedTotal(models.DefaultConfig()))

	cfg := models.DefaultConfig()
	cfg.Phase2Counts = []int{2}
	assert.Equal(t, 80+40, ExpectedTotal(cfg))
}

func TestGenerateAllDefault(t *testing.T) {
	cfg := models.DefaultConfig()
	corpus := generate(t, cfg)

	require.Len(t, corpus.Records, 150)
	assert.Equal(t, 80, corpus.PhaseCounts[PhaseGeneric])
	assert.Equal(t, 70, corpus.PhaseCounts[PhasePriority])
	assert.Equal(t, 150, corpus.Registry.Len())
	assert.NotEmpty(t, corpus.RunID)
	assert.Empty(t, corpus.Links.UnderLinked)

	urls := map[string]bool{}
	for _, r := range corpus.Records {
		assert.False(t, urls[r.URL], "duplicate url %s", r.URL)
		urls[r.URL] = true
		assert.True(t, strings.HasPrefix(r.URL, slug.PathPrefix), r.URL)
	}

	for _, r := range corpus.Records {
		assert.GreaterOrEqual(t, len(r.RelatedServices), cfg.MinLinks, r.URL)
		assert.LessOrEqual(t, len(r.RelatedServices), cfg.MaxLinks, r.URL)
		seen := map[string]bool{}
		for _, l := range r.RelatedServices {
			assert.True(t, urls[l.URL], "dangling %s -> %s", r.URL, l.URL)
			assert.NotEqual(t, r.URL, l.URL)
			assert.False(t, seen[l.URL], "duplicate link %s -> %s", r.URL, l.URL)
			seen[l.URL] = true
		}
	}
	assert.Empty(t, linkgraph.Dangling(corpus.Records))
}

func TestPhase1CoversEveryCategoryAndVariation(t *testing.T) {
	g := New(models.DefaultConfig(), nil)
	records := g.GeneratePhase1(slug.NewRegistry())
	require.Len(t, records, 80)

	pairs := map[string]bool{}
	for _, r := range records {
		assert.Equal(t, catalog.Generic().Name, r.Location)
		assert.Equal(t, genericChangeFreq, r.ChangeFreq)
		pairs[r.ServiceCategory+"/"+string(r.TitleVariation)] = true
	}
	assert.Len(t, pairs, 80)
}

func TestPhase2Rotation(t *testing.T) {
	cfg := models.DefaultConfig()
	g := New(cfg, nil)
	records := g.GeneratePhase2(slug.NewRegistry())
	require.Len(t, records, 70)

	locations := catalog.PriorityLocations(cfg.Phase2Priorities...)
	variations := catalog.Variations()
	categories := catalog.Categories()

	// First category: four pages from location 0 onward.
	for k := 0; k < 4; k++ {
		assert.Equal(t, categories[0].ID, records[k].ServiceCategory)
		assert.Equal(t, locations[k].Name, records[k].Location)
		assert.Equal(t, variations[k%4].Type, records[k].TitleVariation)
	}
	// Second category starts at index stride with three pages.
	assert.Equal(t, categories[1].ID, records[4].ServiceCategory)
	assert.Equal(t, locations[cfg.Phase2Stride].Name, records[4].Location)
	assert.Equal(t, categories[2].ID, records[7].ServiceCategory)

	perCategory := map[string]map[string]bool{}
	for _, r := range records {
		assert.NotEqual(t, catalog.Generic().Name, r.Location)
		if perCategory[r.ServiceCategory] == nil {
			perCategory[r.ServiceCategory] = map[string]bool{}
		}
		assert.False(t, perCategory[r.ServiceCategory][r.Location], "repeated location for %s", r.ServiceCategory)
		perCategory[r.ServiceCategory][r.Location] = true
	}
	for i, c := range categories {
		assert.Len(t, perCategory[c.ID], cfg.Phase2Counts[i%2], c.ID)
	}
}

func TestGenerateAllDeterministic(t *testing.T) {
	a := generate(t, models.DefaultConfig())
	b := generate(t, models.DefaultConfig())
	assert.Equal(t, a.Records, b.Records)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestGenerateAllParallelRelink(t *testing.T) {
	cfg := models.DefaultConfig()
	seq := generate(t, cfg)

	cfg.RelinkWorkers = 4
	par := generate(t, cfg)
	assert.Equal(t, seq.Records, par.Records)
}

func TestGenerateAllRejectsOversizedPhase2Count(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Phase2Counts = []int{4, 35}
	_, err := New(cfg, nil).GenerateAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds the 34 priority locations")

	cfg.Phase2Counts = []int{1}
	corpus, err := New(cfg, nil).GenerateAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, corpus.Records, 100)
	assert.Equal(t, ExpectedTotal(cfg), len(corpus.Records))
}

func TestGenerateAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(models.DefaultConfig(), nil).GenerateAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
