package models

import "strings"

// ServiceItem is one entry of a page's service list.
type ServiceItem struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// ProcessStep is one step of the work process shown on a page.
type ProcessStep struct {
	Step        int    `json:"step" yaml:"step"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
}

// Pricing is the price block of a page. Bounds are in rupees.
type Pricing struct {
	StartingPrice int      `json:"startingPrice" yaml:"starting_price"`
	MaxPrice      int      `json:"maxPrice" yaml:"max_price"`
	PriceRange    string   `json:"priceRange" yaml:"price_range"`
	Factors       []string `json:"factors" yaml:"factors"`
}

// Benefit is one "why choose us" entry.
type Benefit struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// FAQ is one question/answer pair.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// RelatedLink points at another page of the same corpus.
type RelatedLink struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Schema holds the structured-data objects attached to a page. The
// generator stores and forwards them without interpreting their contents.
type Schema struct {
	LocalBusiness map[string]any `json:"localBusiness" yaml:"local_business"`
	Service       map[string]any `json:"service" yaml:"service"`
}

// PageRecord is one generated landing page.
//
// RelatedServices is provisional (empty) after assembly and is rewritten
// exactly once by the link graph pass; every other field is fixed at
// assembly time.
type PageRecord struct {
	URL             string `json:"url"`
	Title           string `json:"title"`
	MetaDescription string `json:"metaDescription"`
	H1              string `json:"h1"`
	CanonicalURL    string `json:"canonicalUrl"`

	ServiceCategory string        `json:"serviceCategory"` // ServiceCategory.ID
	ServiceName     string        `json:"serviceName"`
	Location        string        `json:"location"` // Location.Name
	TitleVariation  VariationType `json:"titleVariation"`

	Introduction           string        `json:"introduction"`
	Services               []ServiceItem `json:"services"`
	Process                []ProcessStep `json:"process"`
	LocationAreas          []string      `json:"locationAreas"`
	ServiceAreaDescription string        `json:"serviceAreaDescription"`
	Pricing                Pricing       `json:"pricing"`
	WhyChooseUs            []Benefit     `json:"whyChooseUs"`
	FAQs                   []FAQ         `json:"faqs"`
	RelatedServices        []RelatedLink `json:"relatedServices"`

	Schema            Schema   `json:"schema"`
	PrimaryKeyword    string   `json:"primaryKeyword"`
	SecondaryKeywords []string `json:"secondaryKeywords"`

	// Sitemap hints
	Priority   float64 `json:"priority,omitempty"`
	ChangeFreq string  `json:"changeFreq,omitempty"`
}

// ToPlainText concatenates the natural-language fields of the record,
// one field per line. Markup, URLs and numbers are not included.
func (p *PageRecord) ToPlainText() string {
	var parts []string
	parts = append(parts, p.Introduction)
	for _, s := range p.Services {
		parts = append(parts, s.Name, s.Description)
	}
	for _, s := range p.Process {
		parts = append(parts, s.Title, s.Description)
	}
	parts = append(parts, p.ServiceAreaDescription)
	parts = append(parts, p.Pricing.Factors...)
	for _, b := range p.WhyChooseUs {
		parts = append(parts, b.Title, b.Description)
	}
	for _, f := range p.FAQs {
		parts = append(parts, f.Question, f.Answer)
	}

	var sb strings.Builder
	for _, s := range parts {
		sb.WriteString(s)
		sb.WriteString("\n")
	}
	return sb.String()
}
