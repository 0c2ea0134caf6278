package content

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/polishpages/models"
)

// FAQs returns the eight question/answer pairs for a category and location.
// The content does not depend on the title variation.
func FAQs(categoryName, locationName string) []models.FAQ {
	service := strings.ToLower(categoryName)
	return []models.FAQ{
		{
			Question: fmt.Sprintf("How much does %s cost in %s?", service, locationName),
			Answer: fmt.Sprintf("The cost of %s in %s depends on the type of wood, the size of each piece, the finish you choose and how much repair work is needed. "+
				"We give a free written quote after inspecting the furniture, so the price you agree to is the price you pay.", service, locationName),
		},
		{
			Question: fmt.Sprintf("How long does %s take?", service),
			Answer: "Most single pieces are finished within a day, while a full room usually takes two to four days. " +
				"Larger projects and finishes that need several coats can take longer, and we share a clear timeline before starting.",
		},
		{
			Question: "Do I need to move out of my home during polishing?",
			Answer: "No, you can stay at home while we work. We cover floors and nearby furniture, keep the work area ventilated and use low odour products wherever possible. " +
				"We also plan the work room by room so the rest of your home stays usable.",
		},
		{
			Question: fmt.Sprintf("Which finishes do you offer for %s?", service),
			Answer: "We offer melamine, PU, duco, French polish, lacquer and natural oil finishes in gloss, satin and matte sheens. " +
				"During the inspection we recommend the finish that best suits your wood, your budget and how the furniture is used.",
		},
		{
			Question: fmt.Sprintf("Do you provide %s services on weekends in %s?", service, locationName),
			Answer: fmt.Sprintf("Yes, our teams in %s work on weekends and public holidays on request. "+
				"Weekend slots fill up quickly, so we recommend booking a few days in advance.", locationName),
		},
		{
			Question: "Is there a warranty on your polishing work?",
			Answer: "Yes, every job comes with a workmanship warranty. " +
				"If the finish peels, bubbles or fades unevenly within the warranty period because of our work, we will fix it free of charge.",
		},
		{
			Question: "Can you repair scratches and water marks before polishing?",
			Answer: "Yes, surface repair is part of our preparation process. " +
				"We fill scratches and dents, remove water rings and white marks where possible and colour match the repairs so they blend in under the new coat.",
		},
		{
			Question: fmt.Sprintf("How do I book %s in %s?", service, locationName),
			Answer: "Call us, send a WhatsApp message or fill in the enquiry form with your address and a few photos of the furniture. " +
				"We will confirm an inspection slot, usually on the same or the next day.",
		},
	}
}

// WhyChooseUs returns the six benefit entries shown on every page.
func WhyChooseUs(locationName string) []models.Benefit {
	return []models.Benefit{
		{Title: "Experienced Craftsmen", Description: "Our polishers have years of hands-on experience with teak, sheesham, plywood, veneer and laminate furniture."},
		{Title: "Branded Materials", Description: "We only use branded sealers, stains and top coats from trusted manufacturers, never cheap local substitutes."},
		{Title: "Transparent Pricing", Description: "You get a detailed written quote after a free inspection, with no hidden charges added at the end."},
		{Title: fmt.Sprintf("Local Teams in %s", locationName), Description: fmt.Sprintf("Our teams are based close to %s, so we arrive on time and can return quickly for any touch-ups.", locationName)},
		{Title: "Clean and Safe Work", Description: "We cover floors and walls, control sanding dust and clean up completely before we leave your home."},
		{Title: "Workmanship Warranty", Description: "Every job is backed by a warranty, and we fix any finish defect caused by our work at no extra cost."},
	}
}
