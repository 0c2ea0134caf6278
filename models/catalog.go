// Package models defines data structures for configuration, the catalog axes
// and the generated page records.
package models

// Zone groups neighbourhoods for reporting.
type Zone string

const (
	ZoneWestern Zone = "western"
	ZoneCentral Zone = "central"
	ZoneHarbour Zone = "harbour"
	ZoneOther   Zone = "other"
	ZoneAll     Zone = "all" // generic catchall location only
)

// Location priorities. PriorityGeneric marks the city-wide catchall page.
const (
	PriorityGeneric = 0
	PriorityHigh    = 1
	PriorityMedium  = 2
	PriorityLow     = 3
)

// ServiceCategory is one service axis entry. Identity is ID.
type ServiceCategory struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

// Location is one location axis entry. Identity is ID.
type Location struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Slug     string `json:"slug" yaml:"slug"`
	Zone     Zone   `json:"zone" yaml:"zone"`
	Priority int    `json:"priority" yaml:"priority"`
}

// IsGeneric reports whether l is the city-wide catchall location.
func (l Location) IsGeneric() bool {
	return l.Priority == PriorityGeneric
}

// VariationType names a marketing angle.
type VariationType string

const (
	VariationAffordable VariationType = "affordable" // budget-focused
	VariationBest       VariationType = "best"       // rating-focused
	VariationQuick      VariationType = "quick"      // turnaround-focused
	VariationExpert     VariationType = "expert"     // expertise-focused
)

// TitleVariation is one of the fixed marketing-angle templates. Identity is Type.
type TitleVariation struct {
	Type        VariationType `json:"type" yaml:"type"`
	Prefix      string        `json:"prefix" yaml:"prefix"`
	Suffix      string        `json:"suffix" yaml:"suffix"`
	Description string        `json:"description" yaml:"description"`
}
