// Package catalog holds the static axes the generator expands: service
// categories, locations and title variations.
package catalog

import "github.com/dtnitsch/polishpages/models"

// GenericLocationID identifies the city-wide catchall location.
const GenericLocationID = "mumbai"

// DefaultCategoryID is the category whose data backs unmapped lookups.
const DefaultCategoryID = "furniture-polishing"

var categories = []models.ServiceCategory{
	{ID: "furniture-polishing", Name: "Furniture Polishing", Slug: "furniture-polishing"},
	{ID: "wood-polishing", Name: "Wood Polishing", Slug: "wood-polishing"},
	{ID: "teak-wood-polishing", Name: "Teak Wood Polishing", Slug: "teak-wood-polishing"},
	{ID: "melamine-polishing", Name: "Melamine Polishing", Slug: "melamine-polishing"},
	{ID: "pu-polishing", Name: "PU Polishing", Slug: "pu-polishing"},
	{ID: "duco-polishing", Name: "Duco Paint Polishing", Slug: "duco-polishing"},
	{ID: "french-polishing", Name: "French Polishing", Slug: "french-polishing"},
	{ID: "antique-restoration", Name: "Antique Furniture Restoration", Slug: "antique-restoration"},
	{ID: "door-polishing", Name: "Door Polishing", Slug: "door-polishing"},
	{ID: "wardrobe-polishing", Name: "Wardrobe Polishing", Slug: "wardrobe-polishing"},
	{ID: "dining-table-polishing", Name: "Dining Table Polishing", Slug: "dining-table-polishing"},
	{ID: "bed-polishing", Name: "Bed Polishing", Slug: "bed-polishing"},
	{ID: "sofa-frame-polishing", Name: "Sofa Frame Polishing", Slug: "sofa-frame-polishing"},
	{ID: "kitchen-cabinet-polishing", Name: "Kitchen Cabinet Polishing", Slug: "kitchen-cabinet-polishing"},
	{ID: "wooden-floor-polishing", Name: "Wooden Floor Polishing", Slug: "wooden-floor-polishing"},
	{ID: "office-furniture-polishing", Name: "Office Furniture Polishing", Slug: "office-furniture-polishing"},
	{ID: "lacquer-polishing", Name: "Lacquer Polishing", Slug: "lacquer-polishing"},
	{ID: "veneer-polishing", Name: "Veneer Polishing", Slug: "veneer-polishing"},
	{ID: "furniture-repair", Name: "Furniture Repair and Touch-Up", Slug: "furniture-repair"},
	{ID: "staircase-polishing", Name: "Wooden Staircase Polishing", Slug: "staircase-polishing"},
}

var locations = []models.Location{
	{ID: GenericLocationID, Name: "Mumbai", Slug: "mumbai", Zone: models.ZoneAll, Priority: models.PriorityGeneric},

	// Western suburbs
	{ID: "andheri-west", Name: "Andheri West", Slug: "andheri-west", Zone: models.ZoneWestern, Priority: 1},
	{ID: "andheri-east", Name: "Andheri East", Slug: "andheri-east", Zone: models.ZoneWestern, Priority: 1},
	{ID: "bandra-west", Name: "Bandra West", Slug: "bandra-west", Zone: models.ZoneWestern, Priority: 1},
	{ID: "bandra-east", Name: "Bandra East", Slug: "bandra-east", Zone: models.ZoneWestern, Priority: 2},
	{ID: "juhu", Name: "Juhu", Slug: "juhu", Zone: models.ZoneWestern, Priority: 1},
	{ID: "santacruz", Name: "Santacruz", Slug: "santacruz", Zone: models.ZoneWestern, Priority: 2},
	{ID: "vile-parle", Name: "Vile Parle", Slug: "vile-parle", Zone: models.ZoneWestern, Priority: 2},
	{ID: "khar", Name: "Khar", Slug: "khar", Zone: models.ZoneWestern, Priority: 2},
	{ID: "goregaon", Name: "Goregaon", Slug: "goregaon", Zone: models.ZoneWestern, Priority: 1},
	{ID: "malad", Name: "Malad", Slug: "malad", Zone: models.ZoneWestern, Priority: 1},
	{ID: "kandivali", Name: "Kandivali", Slug: "kandivali", Zone: models.ZoneWestern, Priority: 2},
	{ID: "borivali", Name: "Borivali", Slug: "borivali", Zone: models.ZoneWestern, Priority: 1},
	{ID: "dahisar", Name: "Dahisar", Slug: "dahisar", Zone: models.ZoneWestern, Priority: 3},
	{ID: "jogeshwari", Name: "Jogeshwari", Slug: "jogeshwari", Zone: models.ZoneWestern, Priority: 3},
	{ID: "versova", Name: "Versova", Slug: "versova", Zone: models.ZoneWestern, Priority: 2},
	{ID: "lokhandwala", Name: "Lokhandwala", Slug: "lokhandwala", Zone: models.ZoneWestern, Priority: 2},

	// Central line
	{ID: "powai", Name: "Powai", Slug: "powai", Zone: models.ZoneCentral, Priority: 1},
	{ID: "ghatkopar", Name: "Ghatkopar", Slug: "ghatkopar", Zone: models.ZoneCentral, Priority: 1},
	{ID: "vikhroli", Name: "Vikhroli", Slug: "vikhroli", Zone: models.ZoneCentral, Priority: 3},
	{ID: "kurla", Name: "Kurla", Slug: "kurla", Zone: models.ZoneCentral, Priority: 2},
	{ID: "mulund", Name: "Mulund", Slug: "mulund", Zone: models.ZoneCentral, Priority: 2},
	{ID: "bhandup", Name: "Bhandup", Slug: "bhandup", Zone: models.ZoneCentral, Priority: 3},
	{ID: "dadar", Name: "Dadar", Slug: "dadar", Zone: models.ZoneCentral, Priority: 1},
	{ID: "parel", Name: "Parel", Slug: "parel", Zone: models.ZoneCentral, Priority: 2},
	{ID: "lower-parel", Name: "Lower Parel", Slug: "lower-parel", Zone: models.ZoneCentral, Priority: 1},
	{ID: "sion", Name: "Sion", Slug: "sion", Zone: models.ZoneCentral, Priority: 2},
	{ID: "matunga", Name: "Matunga", Slug: "matunga", Zone: models.ZoneCentral, Priority: 2},
	{ID: "thane", Name: "Thane", Slug: "thane", Zone: models.ZoneCentral, Priority: 1},

	// Harbour line
	{ID: "chembur", Name: "Chembur", Slug: "chembur", Zone: models.ZoneHarbour, Priority: 1},
	{ID: "wadala", Name: "Wadala", Slug: "wadala", Zone: models.ZoneHarbour, Priority: 2},
	{ID: "govandi", Name: "Govandi", Slug: "govandi", Zone: models.ZoneHarbour, Priority: 3},
	{ID: "mankhurd", Name: "Mankhurd", Slug: "mankhurd", Zone: models.ZoneHarbour, Priority: 3},
	{ID: "navi-mumbai", Name: "Navi Mumbai", Slug: "navi-mumbai", Zone: models.ZoneHarbour, Priority: 2},

	// South Mumbai and the rest
	{ID: "worli", Name: "Worli", Slug: "worli", Zone: models.ZoneOther, Priority: 1},
	{ID: "colaba", Name: "Colaba", Slug: "colaba", Zone: models.ZoneOther, Priority: 1},
	{ID: "malabar-hill", Name: "Malabar Hill", Slug: "malabar-hill", Zone: models.ZoneOther, Priority: 1},
	{ID: "cuffe-parade", Name: "Cuffe Parade", Slug: "cuffe-parade", Zone: models.ZoneOther, Priority: 2},
	{ID: "churchgate", Name: "Churchgate", Slug: "churchgate", Zone: models.ZoneOther, Priority: 2},
	{ID: "breach-candy", Name: "Breach Candy", Slug: "breach-candy", Zone: models.ZoneOther, Priority: 2},
	{ID: "prabhadevi", Name: "Prabhadevi", Slug: "prabhadevi", Zone: models.ZoneOther, Priority: 2},
	{ID: "tardeo", Name: "Tardeo", Slug: "tardeo", Zone: models.ZoneOther, Priority: 3},
}

var variations = []models.TitleVariation{
	{
		Type:        models.VariationAffordable,
		Prefix:      "Affordable",
		Suffix:      "Budget-Friendly Rates",
		Description: "Get %[1]s in %[2]s at honest, upfront prices. Free inspection, quality materials and a finish that lasts. Book your visit today.",
	},
	{
		Type:        models.VariationBest,
		Prefix:      "Best",
		Suffix:      "Top Rated Polishers",
		Description: "Looking for the %[1]s in %[2]s? Our top rated craftsmen deliver flawless finishes with trusted materials and a workmanship guarantee.",
	},
	{
		Type:        models.VariationQuick,
		Prefix:      "Quick",
		Suffix:      "Same-Day Service",
		Description: "Need %[1]s in %[2]s fast? Same-day visits, quick-drying coats and on-time completion without cutting corners. Call us now.",
	},
	{
		Type:        models.VariationExpert,
		Prefix:      "Professional",
		Suffix:      "Certified Craftsmen",
		Description: "%[1]s in %[2]s by certified craftsmen with 15+ years of experience in fine wood finishes. Premium materials, expert results.",
	},
}

// Categories returns the service categories in catalog order.
func Categories() []models.ServiceCategory {
	out := make([]models.ServiceCategory, len(categories))
	copy(out, categories)
	return out
}

// Locations returns every location, the generic one first.
func Locations() []models.Location {
	out := make([]models.Location, len(locations))
	copy(out, locations)
	return out
}

// Variations returns the title variations in catalog order.
func Variations() []models.TitleVariation {
	out := make([]models.TitleVariation, len(variations))
	copy(out, variations)
	return out
}

// Generic returns the city-wide catchall location.
func Generic() models.Location {
	for _, l := range locations {
		if l.IsGeneric() {
			return l
		}
	}
	return locations[0]
}

// PriorityLocations returns the non-generic locations whose priority is
// one of levels, in catalog order.
func PriorityLocations(levels ...int) []models.Location {
	want := make(map[int]bool, len(levels))
	for _, lv := range levels {
		want[lv] = true
	}
	var out []models.Location
	for _, l := range locations {
		if !l.IsGeneric() && want[l.Priority] {
			out = append(out, l)
		}
	}
	return out
}

// CategoryByID looks up a category.
func CategoryByID(id string) (models.ServiceCategory, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.ServiceCategory{}, false
}

// LocationByName looks up a location by its display name.
func LocationByName(name string) (models.Location, bool) {
	for _, l := range locations {
		if l.Name == name {
			return l, true
		}
	}
	return models.Location{}, false
}

// VariationByType looks up a title variation.
func VariationByType(t models.VariationType) (models.TitleVariation, bool) {
	for _, v := range variations {
		if v.Type == t {
			return v, true
		}
	}
	return models.TitleVariation{}, false
}

// VariationIndex returns the catalog position of t, or -1.
func VariationIndex(t models.VariationType) int {
	for i, v := range variations {
		if v.Type == t {
			return i
		}
	}
	return -1
}
