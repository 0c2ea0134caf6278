// Package schema builds the JSON-LD structured data attached to each page.
package schema

import "github.com/dtnitsch/polishpages/models"

// Business identity used in every LocalBusiness object.
const (
	BusinessName  = "Mumbai Furniture Polish"
	BusinessPhone = "+91-98200-00000"
)

// Input is everything the builder needs from an assembled page.
type Input struct {
	ServiceName string
	Category    models.ServiceCategory
	Location    models.Location
	URL         string // absolute canonical URL
	Services    []models.ServiceItem
	Pricing     models.Pricing
}

// Build returns the LocalBusiness and Service objects for a page.
func Build(in Input) models.Schema {
	offers := make([]any, 0, len(in.Services))
	for _, s := range in.Services {
		offers = append(offers, map[string]any{
			"@type": "Offer",
			"itemOffered": map[string]any{
				"@type":       "Service",
				"name":        s.Name,
				"description": s.Description,
			},
		})
	}

	area := map[string]any{"@type": "City", "name": "Mumbai"}
	if !in.Location.IsGeneric() {
		area = map[string]any{
			"@type":            "Place",
			"name":             in.Location.Name + ", Mumbai",
			"containedInPlace": map[string]any{"@type": "City", "name": "Mumbai"},
		}
	}

	localBusiness := map[string]any{
		"@context":   "https://schema.org",
		"@type":      "HomeAndConstructionBusiness",
		"name":       BusinessName,
		"url":        in.URL,
		"telephone":  BusinessPhone,
		"priceRange": in.Pricing.PriceRange,
		"areaServed": area,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": in.Location.Name,
			"addressRegion":   "Maharashtra",
			"addressCountry":  "IN",
		},
	}

	service := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        in.ServiceName,
		"serviceType": in.Category.Name,
		"url":         in.URL,
		"areaServed":  area,
		"provider": map[string]any{
			"@type": "LocalBusiness",
			"name":  BusinessName,
		},
		"offers": map[string]any{
			"@type":         "AggregateOffer",
			"priceCurrency": "INR",
			"lowPrice":      in.Pricing.StartingPrice,
			"highPrice":     in.Pricing.MaxPrice,
		},
		"hasOfferCatalog": map[string]any{
			"@type":           "OfferCatalog",
			"name":            in.Category.Name,
			"itemListElement": offers,
		},
	}

	return models.Schema{LocalBusiness: localBusiness, Service: service}
}
