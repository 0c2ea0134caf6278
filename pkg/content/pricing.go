package content

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/catalog"
)

type priceBand struct {
	min, max int
}

// basePrices are per-job rupee bands before the variation multiplier.
var basePrices = map[string]priceBand{
	"furniture-polishing":        {1500, 4000},
	"wood-polishing":             {1200, 3500},
	"teak-wood-polishing":        {2000, 5500},
	"melamine-polishing":         {1800, 4500},
	"pu-polishing":               {2500, 7000},
	"duco-polishing":             {3000, 8000},
	"french-polishing":           {2500, 6500},
	"antique-restoration":        {5000, 15000},
	"door-polishing":             {1200, 3000},
	"wardrobe-polishing":         {2500, 6000},
	"dining-table-polishing":     {2000, 5000},
	"bed-polishing":              {1800, 4500},
	"sofa-frame-polishing":       {1200, 3500},
	"kitchen-cabinet-polishing":  {3500, 9000},
	"wooden-floor-polishing":     {4000, 12000},
	"office-furniture-polishing": {3000, 10000},
	"lacquer-polishing":          {2200, 6000},
	"veneer-polishing":           {1800, 5000},
	"furniture-repair":           {800, 2500},
	"staircase-polishing":        {4500, 12000},
}

// variationMultipliers are non-decreasing in catalog variation order.
var variationMultipliers = map[models.VariationType]float64{
	models.VariationAffordable: 1.00,
	models.VariationBest:       1.15,
	models.VariationQuick:      1.25,
	models.VariationExpert:     1.35,
}

var priceFactors = []string{
	"Type and condition of the wood",
	"Size and number of furniture pieces",
	"Choice of finish such as melamine, PU or duco",
	"Amount of repair work needed before polishing",
	"Carvings, mouldings and other intricate detailing",
}

var priceLocale = language.MustParse("en-IN")

// Multiplier returns the price multiplier for a variation; unknown
// variations are priced at baseline.
func Multiplier(variation models.VariationType) float64 {
	if m, ok := variationMultipliers[variation]; ok {
		return m
	}
	return 1.0
}

// Pricing returns the price block for a category and variation.
// Unmapped categories use the default category's band.
func Pricing(categoryID string, variation models.VariationType) models.Pricing {
	band, ok := basePrices[categoryID]
	if !ok {
		band = basePrices[catalog.DefaultCategoryID]
	}

	m := Multiplier(variation)
	start := int(math.Round(float64(band.min) * m))
	maxPrice := int(math.Round(float64(band.max) * m))

	factors := make([]string, len(priceFactors))
	copy(factors, priceFactors)

	return models.Pricing{
		StartingPrice: start,
		MaxPrice:      maxPrice,
		PriceRange:    FormatPriceRange(start, maxPrice),
		Factors:       factors,
	}
}

// FormatPriceRange renders two rupee amounts with Indian digit grouping.
func FormatPriceRange(lo, hi int) string {
	p := message.NewPrinter(priceLocale)
	return p.Sprintf("₹%d - ₹%d", lo, hi)
}
