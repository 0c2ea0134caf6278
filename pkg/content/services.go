package content

import (
	"fmt"

	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/catalog"
)

// serviceLists maps a category ID to its six service entries. Categories
// without an entry use the catalog.DefaultCategoryID list.
var serviceLists = map[string][]models.ServiceItem{
	"furniture-polishing": {
		{Name: "Sofa and Chair Polishing", Description: "Sanding, staining and sealing of wooden sofa frames, arms and chair legs for an even, scratch resistant finish."},
		{Name: "Bed and Wardrobe Polishing", Description: "Complete refinishing of beds, wardrobes and side tables including handles, edges and inner shelves."},
		{Name: "Dining Set Polishing", Description: "Heat and stain resistant coats for dining tables and chairs that face daily spills and cleaning."},
		{Name: "Door and Window Polishing", Description: "Weather resistant polish for main doors, room doors and window frames exposed to sun and humidity."},
		{Name: "Scratch and Dent Repair", Description: "Filling, colour matching and blending of scratches, dents and water marks before the final coat."},
		{Name: "Colour Change Polishing", Description: "Stripping the old finish and applying a new stain or shade to match your updated interiors."},
	},
	"wood-polishing": {
		{Name: "Natural Wood Finish", Description: "Clear sealers and oils that highlight the natural grain without changing the colour of the timber."},
		{Name: "Stain and Tint Polishing", Description: "Custom stains from light oak to dark walnut, mixed and tested on a hidden area before application."},
		{Name: "Wood Sealing and Protection", Description: "Penetrating sealers that protect wood from moisture, termites and seasonal swelling."},
		{Name: "Panel and Cladding Polishing", Description: "Even coats on wall panels, ceilings and cladding using spray equipment and careful masking."},
		{Name: "Outdoor Wood Polishing", Description: "UV resistant finishes for balcony furniture, pergolas and wooden decks that face the monsoon."},
		{Name: "Wood Surface Restoration", Description: "Removing grey, weathered layers and rebuilding a smooth surface ready for fresh polish."},
	},
	"teak-wood-polishing": {
		{Name: "Teak Furniture Refinishing", Description: "Gentle sanding and teak oil or melamine coats that bring back the warm golden tone of teak."},
		{Name: "Teak Door Polishing", Description: "Durable polish for heavy teak main doors, including carvings, beading and hardware cleanup."},
		{Name: "Teak Heirloom Care", Description: "Careful cleaning and hand polishing of old teak pieces that need to keep their original patina."},
		{Name: "Teak Oil Treatment", Description: "Deep nourishing oil treatment that prevents drying, cracking and fading of solid teak."},
		{Name: "Teak Colour Correction", Description: "Evening out blotchy or faded areas so every panel of the piece matches in tone."},
		{Name: "Teak Gloss and Matte Finishes", Description: "Your choice of high gloss, satin or matte sheen applied in multiple thin coats."},
	},
	"pu-polishing": {
		{Name: "High Gloss PU Finish", Description: "Mirror like polyurethane coats for modern furniture, applied with spray guns in a dust controlled setup."},
		{Name: "Matte PU Finish", Description: "Soft touch matte polyurethane that hides fingerprints and suits contemporary interiors."},
		{Name: "PU Sealer Coating", Description: "Sanding sealer base coats that fill the grain and give the top coat a perfectly smooth surface."},
		{Name: "PU Colour Coating", Description: "Opaque or transparent tinted PU coats in the shade of your choice, matched to samples."},
		{Name: "PU Touch-Up Work", Description: "Repair of chipped or scratched PU surfaces with invisible blending into the existing finish."},
		{Name: "PU for Kitchens and Wardrobes", Description: "Hard wearing PU systems for shutters and panels that are cleaned and handled every day."},
	},
	"french-polishing": {
		{Name: "Traditional Shellac Polishing", Description: "Hand applied shellac built up in many thin layers with a cotton pad for a deep, warm lustre."},
		{Name: "Antique French Polish Repair", Description: "Repairing cloudy, ring marked or worn French polish without stripping the original finish."},
		{Name: "Piano and Cabinet Polishing", Description: "High gloss French polish for pianos, display cabinets and other statement pieces."},
		{Name: "Colour Matched Shellac", Description: "Blending pigments into shellac to match the tone of surrounding panels and inlays."},
		{Name: "Wax Finishing", Description: "A final coat of hard wax that protects the French polish and adds a soft sheen."},
		{Name: "Carved Surface Polishing", Description: "Detailed brush work that reaches into carvings and mouldings without pooling or drips."},
	},
	"antique-restoration": {
		{Name: "Antique Assessment", Description: "A detailed inspection of timber, joints, hardware and finish before any restoration starts."},
		{Name: "Structural Repair", Description: "Re-gluing loose joints, replacing broken rails and strengthening legs with matching wood."},
		{Name: "Veneer and Inlay Repair", Description: "Lifting, re-laying and patching veneer or brass inlays that have bubbled or gone missing."},
		{Name: "Finish Revival", Description: "Cleaning decades of grime and reviving the original finish wherever it can be saved."},
		{Name: "Hardware Restoration", Description: "Cleaning and polishing original brass handles, hinges and locks instead of replacing them."},
		{Name: "Protective Conservation Coat", Description: "A reversible protective coat that keeps the antique safe without hiding its age."},
	},
	"kitchen-cabinet-polishing": {
		{Name: "Cabinet Shutter Polishing", Description: "Polishing kitchen shutters with grease resistant coatings that wipe clean easily."},
		{Name: "Cabinet Carcass Sealing", Description: "Sealing inner carcass surfaces to keep moisture from the sink area out of the boards."},
		{Name: "Laminate and Veneer Refresh", Description: "Cleaning and coating laminate or veneer fronts to restore their colour and sheen."},
		{Name: "Edge and Corner Repair", Description: "Fixing swollen edges, chipped corners and peeling tape before the new finish goes on."},
		{Name: "Handle Area Touch-Up", Description: "Rebuilding finish around handles where hands and oil wear through the coating fastest."},
		{Name: "Kitchen Colour Makeover", Description: "A complete colour change of cabinet shutters without replacing the cabinets themselves."},
	},
	"wooden-floor-polishing": {
		{Name: "Floor Sanding", Description: "Dust controlled drum and edge sanding that removes scratches, stains and old coatings."},
		{Name: "Floor Staining", Description: "Even staining across large floor areas so the whole room reads as one consistent shade."},
		{Name: "Floor Lacquer Coating", Description: "Hard wearing lacquer coats designed for heavy foot traffic and rolling chairs."},
		{Name: "Gap and Crack Filling", Description: "Filling gaps between planks with matching filler so dirt and moisture cannot collect."},
		{Name: "Deck and Parquet Polishing", Description: "Specialised care for parquet patterns and wooden decks that need careful direction sanding."},
		{Name: "Floor Maintenance Coats", Description: "Light buff and recoat service that extends the life of an existing floor finish."},
	},
	"office-furniture-polishing": {
		{Name: "Workstation Polishing", Description: "Polishing desks and workstations after hours or on weekends so work is never disturbed."},
		{Name: "Conference Table Refinishing", Description: "Restoring large conference tables to a flawless, even finish that impresses clients."},
		{Name: "Reception Counter Polishing", Description: "Refinishing reception desks and counters that form the first impression of your office."},
		{Name: "Cabinet and Storage Polishing", Description: "Coating filing cabinets, bookshelves and storage units with durable finishes."},
		{Name: "Executive Furniture Care", Description: "Careful polishing of executive desks, chairs and panels in premium veneers."},
		{Name: "Annual Maintenance Contracts", Description: "Scheduled polishing visits that keep every piece of office furniture looking new."},
	},
	"duco-polishing": {
		{Name: "Duco Paint Finish", Description: "Smooth, opaque duco paint finishes in any shade for a modern lacquered look."},
		{Name: "Glossy Duco Coating", Description: "High gloss duco coats that reflect light and make furniture stand out."},
		{Name: "Matte Duco Coating", Description: "Elegant matte duco finishes for minimal and contemporary interiors."},
		{Name: "Duco Surface Preparation", Description: "Putty, primer and sanding work that creates a flawless base for duco paint."},
		{Name: "Duco Repair and Recoat", Description: "Fixing chips and cracks in existing duco work and recoating for a uniform look."},
		{Name: "Duco for Doors and Panels", Description: "Durable duco finishes for doors, partitions and decorative wall panels."},
	},
}

// Services returns the six service entries for a category. Unknown
// categories get the default category's list.
func Services(categoryID string) []models.ServiceItem {
	list, ok := serviceLists[categoryID]
	if !ok {
		list = serviceLists[catalog.DefaultCategoryID]
	}
	out := make([]models.ServiceItem, len(list))
	copy(out, list)
	return out
}

// Process returns the five-step work process for a service.
func Process(serviceName string) []models.ProcessStep {
	return []models.ProcessStep{
		{
			Step:        1,
			Title:       "Free Inspection",
			Description: fmt.Sprintf("A supervisor visits your home to inspect the furniture, understand the finish you want and explain the %s options that suit your wood.", serviceName),
			Image:       "/images/process/inspection.webp",
		},
		{
			Step:        2,
			Title:       "Transparent Quote",
			Description: "You receive a written quote that lists materials, number of coats, timelines and the total cost, with no hidden charges added later.",
			Image:       "/images/process/quote.webp",
		},
		{
			Step:        3,
			Title:       "Surface Preparation",
			Description: "We protect floors and walls, clean the surfaces, repair scratches and sand the old finish so the new coats bond evenly.",
			Image:       "/images/process/preparation.webp",
		},
		{
			Step:        4,
			Title:       "Polishing and Coating",
			Description: "Stain, sealer and top coats are applied in thin, controlled layers with the drying time each product needs between coats.",
			Image:       "/images/process/polishing.webp",
		},
		{
			Step:        5,
			Title:       "Final Inspection and Cleanup",
			Description: "We inspect every surface with you, fix anything you are not happy with, and leave the room clean and ready to use.",
			Image:       "/images/process/handover.webp",
		},
	}
}
