package linkgraph

import "github.com/dtnitsch/polishpages/pkg/catalog"

// RelatedPerCategory is the width of every affinity row.
const RelatedPerCategory = 6

// affinity maps a category to six hand-picked related categories. Rows are
// not required to be symmetric and never contain the category itself.
var affinity = map[string][RelatedPerCategory]string{
	"furniture-polishing":        {"wood-polishing", "sofa-frame-polishing", "wardrobe-polishing", "dining-table-polishing", "bed-polishing", "furniture-repair"},
	"wood-polishing":             {"furniture-polishing", "teak-wood-polishing", "door-polishing", "wooden-floor-polishing", "veneer-polishing", "staircase-polishing"},
	"teak-wood-polishing":        {"wood-polishing", "french-polishing", "antique-restoration", "door-polishing", "dining-table-polishing", "furniture-polishing"},
	"melamine-polishing":         {"pu-polishing", "lacquer-polishing", "furniture-polishing", "wardrobe-polishing", "bed-polishing", "kitchen-cabinet-polishing"},
	"pu-polishing":               {"melamine-polishing", "duco-polishing", "lacquer-polishing", "kitchen-cabinet-polishing", "wardrobe-polishing", "office-furniture-polishing"},
	"duco-polishing":             {"pu-polishing", "lacquer-polishing", "kitchen-cabinet-polishing", "door-polishing", "wardrobe-polishing", "melamine-polishing"},
	"french-polishing":           {"antique-restoration", "teak-wood-polishing", "dining-table-polishing", "lacquer-polishing", "furniture-polishing", "veneer-polishing"},
	"antique-restoration":        {"french-polishing", "furniture-repair", "teak-wood-polishing", "veneer-polishing", "wood-polishing", "dining-table-polishing"},
	"door-polishing":             {"wood-polishing", "teak-wood-polishing", "duco-polishing", "wardrobe-polishing", "staircase-polishing", "pu-polishing"},
	"wardrobe-polishing":         {"bed-polishing", "furniture-polishing", "melamine-polishing", "pu-polishing", "kitchen-cabinet-polishing", "door-polishing"},
	"dining-table-polishing":     {"furniture-polishing", "sofa-frame-polishing", "french-polishing", "teak-wood-polishing", "furniture-repair", "melamine-polishing"},
	"bed-polishing":              {"wardrobe-polishing", "furniture-polishing", "sofa-frame-polishing", "melamine-polishing", "furniture-repair", "wood-polishing"},
	"sofa-frame-polishing":       {"furniture-polishing", "dining-table-polishing", "bed-polishing", "furniture-repair", "wood-polishing", "teak-wood-polishing"},
	"kitchen-cabinet-polishing":  {"pu-polishing", "duco-polishing", "melamine-polishing", "wardrobe-polishing", "lacquer-polishing", "veneer-polishing"},
	"wooden-floor-polishing":     {"staircase-polishing", "wood-polishing", "lacquer-polishing", "pu-polishing", "teak-wood-polishing", "furniture-polishing"},
	"office-furniture-polishing": {"furniture-polishing", "pu-polishing", "veneer-polishing", "furniture-repair", "melamine-polishing", "lacquer-polishing"},
	"lacquer-polishing":          {"pu-polishing", "duco-polishing", "melamine-polishing", "french-polishing", "wooden-floor-polishing", "kitchen-cabinet-polishing"},
	"veneer-polishing":           {"wood-polishing", "melamine-polishing", "office-furniture-polishing", "antique-restoration", "kitchen-cabinet-polishing", "pu-polishing"},
	"furniture-repair":           {"furniture-polishing", "antique-restoration", "sofa-frame-polishing", "bed-polishing", "dining-table-polishing", "wardrobe-polishing"},
	"staircase-polishing":        {"wooden-floor-polishing", "wood-polishing", "door-polishing", "teak-wood-polishing", "pu-polishing", "lacquer-polishing"},
}

// Affinity returns the related categories of categoryID. Unknown categories
// get the default category's row.
func Affinity(categoryID string) []string {
	row, ok := affinity[categoryID]
	if !ok {
		row = affinity[catalog.DefaultCategoryID]
	}
	out := make([]string, len(row))
	copy(out, row[:])
	return out
}
