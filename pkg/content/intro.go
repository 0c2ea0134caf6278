// Package content synthesizes the textual fields of a landing page from
// fixed, parametrised templates. Every function is deterministic and total:
// unmapped keys resolve to documented defaults instead of failing.
package content

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/polishpages/models"
)

// introTemplates take the service name and the location name, in that order.
var introTemplates = map[models.VariationType]string{
	models.VariationAffordable: "Looking for %[1]s in %[2]s that does not stretch your budget? " +
		"We restore the shine of your wooden furniture at honest, upfront prices with no hidden charges. " +
		"Every job starts with a free inspection at your home in %[2]s, followed by a written quote that covers materials, labour and cleanup. " +
		"Our polishers use branded sealers and lacquers, protect your floors and walls while they work, and leave every room tidy. " +
		"Whether it is a single chair or a full living room, %[1]s with us means quality work that respects your wallet.",
	models.VariationBest: "Homeowners across %[2]s rate us among the most trusted names for %[1]s. " +
		"Our craftsmen have refinished thousands of sofas, beds, wardrobes and dining sets, and hundreds of families leave five star reviews after every project. " +
		"We combine careful surface preparation, premium branded finishes and strict quality checks at every stage of the job. " +
		"From the first inspection visit to the final buffing, a dedicated supervisor stays responsible for your order. " +
		"If you want the best %[1]s in %[2]s, you are in the right place.",
	models.VariationQuick: "Need %[1]s in %[2]s done quickly? Our teams are stationed across the city so we can usually visit on the same day you call. " +
		"We plan each job around quick drying sealers and efficient sanding equipment, which means most rooms are ready to use again within one or two days. " +
		"Speed never replaces care: every coat still gets the drying time it needs and every surface is inspected before we pack up. " +
		"Tell us your deadline, whether it is a festival, a family function or a move, and we will schedule the work to meet it.",
	models.VariationExpert: "Our %[1]s team in %[2]s brings more than fifteen years of experience with fine wood finishes, from solid teak heirlooms to modern veneer and laminate furniture. " +
		"Each craftsman is trained in traditional hand polishing as well as spray applied PU, melamine and duco systems. " +
		"We study the wood grain, the existing finish and the way you use each piece before recommending a treatment. " +
		"The result is a durable, even finish that protects the timber and brings out its natural character. " +
		"Choose certified specialists when the furniture really matters to you.",
}

// Introduction returns the opening paragraph for a page. The prose is
// fixed per variation; unknown variations use the affordable template.
func Introduction(variation models.VariationType, serviceName, locationName string) string {
	tmpl, ok := introTemplates[variation]
	if !ok {
		tmpl = introTemplates[models.VariationAffordable]
	}
	return fmt.Sprintf(tmpl, serviceName, locationName)
}

// ServiceAreaDescription describes where the service is offered.
func ServiceAreaDescription(serviceName string, location models.Location, areas []string) string {
	if location.IsGeneric() {
		return fmt.Sprintf("We provide %s across all of %s, from the western suburbs to the central and harbour lines and South Mumbai. "+
			"Our teams regularly work in %s and many more neighbourhoods, so help is never far away. "+
			"Share your address when you call and we will confirm the earliest visit slot for your area.",
			serviceName, location.Name, joinAreas(areas, 6))
	}
	return fmt.Sprintf("Our %s team serves every building and society in %s, including the nearby areas of %s. "+
		"Because our craftsmen live and work close by, we can reach you quickly for inspections, polishing work and follow up touch-ups. "+
		"If your locality is not listed, call us anyway because we cover the whole of Mumbai.",
		serviceName, location.Name, joinAreas(areas, 5))
}

func joinAreas(areas []string, limit int) string {
	if len(areas) > limit {
		areas = areas[:limit]
	}
	switch len(areas) {
	case 0:
		return "the surrounding localities"
	case 1:
		return areas[0]
	}
	return strings.Join(areas[:len(areas)-1], ", ") + " and " + areas[len(areas)-1]
}
