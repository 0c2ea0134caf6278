package generator

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/content"
	"github.com/dtnitsch/polishpages/pkg/schema"
	"github.com/dtnitsch/polishpages/pkg/slug"
)

// marketingPrefixes are stripped from a service name to get its keyword.
var marketingPrefixes = []string{"Affordable", "Best", "Top-Rated", "Professional", "Quick", "Expert"}

var secondaryTemplates = []string{
	"%[1]s near me",
	"%[1]s %[2]s price",
	"%[1]s services %[2]s",
	"best %[1]s in %[2]s",
	"%[1]s cost",
}

// Sitemap hints per page kind.
const (
	genericPriority   = 0.8
	localPriority     = 0.6
	genericChangeFreq = "weekly"
	localChangeFreq   = "monthly"
)

// Assembler turns one (category, location, variation) triple into a page.
type Assembler struct {
	SiteOrigin string
}

// Assemble builds a page record and registers its URL in reg. The
// returned record has no related links yet.
func (a Assembler) Assemble(category models.ServiceCategory, location models.Location, variation models.TitleVariation, reg *slug.Registry) models.PageRecord {
	serviceName := variation.Prefix + " " + category.Name
	url := slug.Allocate(serviceName, location.Name, reg)
	canonical := strings.TrimRight(a.SiteOrigin, "/") + url

	areas := content.LocationAreas(location)
	services := content.Services(category.ID)
	pricing := content.Pricing(category.ID, variation.Type)

	rec := models.PageRecord{
		URL:             url,
		Title:           fmt.Sprintf("%s in %s | %s", serviceName, location.Name, variation.Suffix),
		MetaDescription: fmt.Sprintf(variation.Description, serviceName, location.Name),
		H1:              fmt.Sprintf("%s in %s", serviceName, location.Name),
		CanonicalURL:    canonical,

		ServiceCategory: category.ID,
		ServiceName:     serviceName,
		Location:        location.Name,
		TitleVariation:  variation.Type,

		Introduction:           content.Introduction(variation.Type, serviceName, location.Name),
		Services:               services,
		Process:                content.Process(serviceName),
		LocationAreas:          areas,
		ServiceAreaDescription: content.ServiceAreaDescription(serviceName, location, areas),
		Pricing:                pricing,
		WhyChooseUs:            content.WhyChooseUs(location.Name),
		FAQs:                   content.FAQs(category.Name, location.Name),
		RelatedServices:        []models.RelatedLink{},

		Schema: schema.Build(schema.Input{
			ServiceName: serviceName,
			Category:    category,
			Location:    location,
			URL:         canonical,
			Services:    services,
			Pricing:     pricing,
		}),
		PrimaryKeyword:    PrimaryKeyword(serviceName, location.Name),
		SecondaryKeywords: SecondaryKeywords(serviceName, location.Name),
	}

	if location.IsGeneric() {
		rec.Priority, rec.ChangeFreq = genericPriority, genericChangeFreq
	} else {
		rec.Priority, rec.ChangeFreq = localPriority, localChangeFreq
	}
	return rec
}

// baseService strips marketing prefixes and lowercases the service name.
func baseService(serviceName string) string {
	name := serviceName
	for _, p := range marketingPrefixes {
		if rest, ok := strings.CutPrefix(name, p+" "); ok {
			name = rest
			break
		}
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// PrimaryKeyword returns e.g. "wood polishing andheri west".
func PrimaryKeyword(serviceName, locationName string) string {
	return baseService(serviceName) + " " + strings.ToLower(locationName)
}

// SecondaryKeywords expands the fixed keyword templates.
func SecondaryKeywords(serviceName, locationName string) []string {
	base := baseService(serviceName)
	loc := strings.ToLower(locationName)
	out := make([]string, 0, len(secondaryTemplates))
	for _, t := range secondaryTemplates {
		out = append(out, fmt.Sprintf(t, base, loc))
	}
	return out
}
