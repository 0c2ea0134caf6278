package manifest

import "github.com/dtnitsch/polishpages/pkg/linkgraph"

// FileName is the manifest written at the root of the output directory.
const FileName = "manifest.yaml"

// BuildManifest is a lightweight overview of one generation run: counts
// per axis, link-graph health, keywords and the validation outcome.
type BuildManifest struct {
	RunID             string            `yaml:"run_id"`
	GeneratedAt       string            `yaml:"generated_at"`
	SiteOrigin        string            `yaml:"site_origin"`
	TotalPages        int               `yaml:"total_pages"`
	Phases            map[string]int    `yaml:"phases"`
	Variations        map[string]int    `yaml:"variations"`
	Zones             map[string]int    `yaml:"zones"`
	Categories        map[string]int    `yaml:"categories"`
	Locations         map[string]int    `yaml:"locations"`
	Links             linkgraph.Stats   `yaml:"links"`
	AggregateKeywords []string          `yaml:"aggregate_keywords"`
	Validation        ValidationSummary `yaml:"validation"`
	Pages             []PageSummary     `yaml:"pages"`
}

// ValidationSummary mirrors the validator result.
type ValidationSummary struct {
	Valid    bool     `yaml:"valid"`
	Errors   []string `yaml:"errors,omitempty"`
	Warnings []string `yaml:"warnings,omitempty"`
}

// PageSummary represents summary information for a single page.
type PageSummary struct {
	URL         string   `yaml:"url"`
	FilePath    string   `yaml:"file_path,omitempty"`
	WordCount   int      `yaml:"word_count"`
	Links       int      `yaml:"links"`
	TopKeywords []string `yaml:"top_keywords,omitempty"`
}
