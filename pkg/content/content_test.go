package content

import (
	"strings"
	"testing"

	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntroductionPerVariation(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range catalog.Variations() {
		intro := Introduction(v.Type, "Best Wood Polishing", "Powai")
		assert.Contains(t, intro, "Best Wood Polishing", v.Type)
		assert.Contains(t, intro, "Powai", v.Type)
		assert.NotContains(t, intro, "%!", "unfilled verb for %s", v.Type)
		seen[intro] = true
	}
	assert.Len(t, seen, 4, "each variation has its own template")

	assert.Equal(t,
		Introduction(models.VariationAffordable, "X", "Y"),
		Introduction("unknown", "X", "Y"))
}

func TestServicesFallBackToDefault(t *testing.T) {
	def := Services(catalog.DefaultCategoryID)
	require.Len(t, def, 6)

	assert.NotPanics(t, func() {
		got := Services("no-such-category")
		assert.Equal(t, def, got)
	})

	for _, c := range catalog.Categories() {
		assert.Len(t, Services(c.ID), 6, c.ID)
	}
	assert.NotEqual(t, def, Services("pu-polishing"))
}

func TestServicesReturnsCopy(t *testing.T) {
	list := Services("pu-polishing")
	list[0].Name = "changed"
	assert.NotEqual(t, "changed", Services("pu-polishing")[0].Name)
}

func TestProcess(t *testing.T) {
	steps := Process("Quick Door Polishing")
	require.Len(t, steps, 5)
	for i, s := range steps {
		assert.Equal(t, i+1, s.Step)
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Description)
		assert.True(t, strings.HasPrefix(s.Image, "/images/"))
	}
	assert.Contains(t, steps[0].Description, "Quick Door Polishing")
}

func TestPricingMonotonicAcrossVariations(t *testing.T) {
	for _, c := range catalog.Categories() {
		prev := 0
		for _, v := range catalog.Variations() {
			p := Pricing(c.ID, v.Type)
			assert.GreaterOrEqual(t, p.StartingPrice, prev, "%s/%s", c.ID, v.Type)
			assert.Less(t, p.StartingPrice, p.MaxPrice)
			prev = p.StartingPrice
		}

		affordable := Pricing(c.ID, models.VariationAffordable)
		best := Pricing(c.ID, models.VariationBest)
		assert.GreaterOrEqual(t, best.StartingPrice, affordable.StartingPrice, c.ID)
	}
}

func TestPricingScaling(t *testing.T) {
	base := Pricing("furniture-polishing", models.VariationAffordable)
	assert.Equal(t, 1500, base.StartingPrice)
	assert.Equal(t, 4000, base.MaxPrice)

	expert := Pricing("furniture-polishing", models.VariationExpert)
	assert.Equal(t, 2025, expert.StartingPrice)
	assert.Equal(t, 5400, expert.MaxPrice)

	assert.True(t, strings.HasPrefix(base.PriceRange, "₹"), base.PriceRange)
	assert.Contains(t, base.PriceRange, " - ")
	assert.NotEmpty(t, base.Factors)
}

func TestPricingUnknownCategoryUsesDefaultBand(t *testing.T) {
	assert.Equal(t,
		Pricing(catalog.DefaultCategoryID, models.VariationBest),
		Pricing("unmapped", models.VariationBest))
}

func TestFAQs(t *testing.T) {
	faqs := FAQs("Teak Wood Polishing", "Bandra West")
	require.Len(t, faqs, 8)
	for _, f := range faqs {
		assert.NotEmpty(t, f.Question)
		assert.NotEmpty(t, f.Answer)
	}
	assert.Contains(t, faqs[0].Question, "teak wood polishing")
	assert.Contains(t, faqs[0].Question, "Bandra West")
}

func TestWhyChooseUs(t *testing.T) {
	benefits := WhyChooseUs("Juhu")
	require.Len(t, benefits, 6)
	assert.Contains(t, benefits[3].Title, "Juhu")
}

func TestLocationAreas(t *testing.T) {
	generic := LocationAreas(catalog.Generic())
	assert.Len(t, generic, 20)

	andheri, ok := catalog.LocationByName("Andheri West")
	require.True(t, ok)
	assert.Contains(t, LocationAreas(andheri), "Lokhandwala")

	sion, ok := catalog.LocationByName("Sion")
	require.True(t, ok)
	assert.Equal(t, mumbaiWide, LocationAreas(sion))
}

func TestServiceAreaDescription(t *testing.T) {
	generic := catalog.Generic()
	desc := ServiceAreaDescription("Best PU Polishing", generic, LocationAreas(generic))
	assert.Contains(t, desc, "Mumbai")
	assert.Contains(t, desc, "Andheri, Bandra")

	powai, _ := catalog.LocationByName("Powai")
	desc = ServiceAreaDescription("Best PU Polishing", powai, []string{"A"})
	assert.Contains(t, desc, "nearby areas of A.")

	assert.Equal(t, "the surrounding localities", joinAreas(nil, 3))
	assert.Equal(t, "A, B and C", joinAreas([]string{"A", "B", "C", "D"}, 3))
}
