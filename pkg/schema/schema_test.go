package schema

import (
	"testing"

	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	cat, ok := catalog.CategoryByID("door-polishing")
	require.True(t, ok)
	loc, ok := catalog.LocationByName("Khar")
	require.True(t, ok)

	s := Build(Input{
		ServiceName: "Best Door Polishing",
		Category:    cat,
		Location:    loc,
		URL:         "https://example.com/services/best-door-polishing-khar",
		Services:    []models.ServiceItem{{Name: "A", Description: "a"}, {Name: "B", Description: "b"}},
		Pricing:     models.Pricing{StartingPrice: 100, MaxPrice: 200, PriceRange: "₹100 - ₹200"},
	})

	assert.Equal(t, "https://schema.org", s.LocalBusiness["@context"])
	assert.Equal(t, "https://example.com/services/best-door-polishing-khar", s.LocalBusiness["url"])
	assert.Equal(t, "Best Door Polishing", s.Service["name"])

	area := s.Service["areaServed"].(map[string]any)
	assert.Equal(t, "Khar, Mumbai", area["name"])

	offers := s.Service["hasOfferCatalog"].(map[string]any)["itemListElement"].([]any)
	assert.Len(t, offers, 2)
}

func TestBuildGenericLocation(t *testing.T) {
	s := Build(Input{Location: catalog.Generic()})
	area := s.LocalBusiness["areaServed"].(map[string]any)
	assert.Equal(t, "City", area["@type"])
}
