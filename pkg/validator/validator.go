// Package validator checks a generated corpus against its structural
// invariants. Every violation is collected; nothing stops at the first.
package validator

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/linkgraph"
)

// Defaults applied when a Validator field is zero.
const (
	DefaultSampleSize = 10
	DefaultMinWords   = 500
	DefaultMaxWords   = 2500
)

// Validator holds the thresholds of one validation pass.
type Validator struct {
	ExpectedTotal int
	SampleSize    int
	MinWords      int
	MaxWords      int
	MinLinks      int
}

// New builds a Validator from the run configuration. expected is the
// corpus size the generator is supposed to have produced.
func New(cfg models.Config, expected int) Validator {
	if cfg.TargetTotal > 0 {
		expected = cfg.TargetTotal
	}
	return Validator{
		ExpectedTotal: expected,
		SampleSize:    cfg.SampleSize,
		MinWords:      cfg.WordBand.Min,
		MaxWords:      cfg.WordBand.Max,
		MinLinks:      cfg.MinLinks,
	}
}

// Result is the outcome of Validate.
type Result struct {
	IsValid  bool     `json:"isValid" yaml:"is_valid"`
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// Error carries every message of a failed validation.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("corpus validation failed with %d error(s):\n  - %s",
		len(e.Messages), strings.Join(e.Messages, "\n  - "))
}

// Err returns nil for a valid result and *Error otherwise.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	return &Error{Messages: r.Errors}
}

// WordCount counts the whitespace-separated tokens of the record's plain
// text rendering.
func WordCount(rec models.PageRecord) int {
	return len(strings.Fields(rec.ToPlainText()))
}

// Validate runs every check over records.
func (v Validator) Validate(records []models.PageRecord) Result {
	sample := v.SampleSize
	if sample <= 0 {
		sample = DefaultSampleSize
	}
	minWords, maxWords := v.MinWords, v.MaxWords
	if minWords == 0 && maxWords == 0 {
		minWords, maxWords = DefaultMinWords, DefaultMaxWords
	}
	minLinks := v.MinLinks
	if minLinks == 0 {
		minLinks = linkgraph.DefaultMinLinks
	}

	var errs, warnings []string

	if len(records) != v.ExpectedTotal {
		errs = append(errs, fmt.Sprintf("expected %d pages, got %d", v.ExpectedTotal, len(records)))
	}

	seen := make(map[string]int, len(records))
	for i, r := range records {
		if first, dup := seen[r.URL]; dup {
			errs = append(errs, fmt.Sprintf("duplicate url %q at index %d (first seen at %d)", r.URL, i, first))
			continue
		}
		seen[r.URL] = i
	}

	for i, r := range records {
		for _, field := range missingFields(r) {
			errs = append(errs, fmt.Sprintf("page %d (%s): missing required field %s", i, r.URL, field))
		}
	}

	for i := 0; i < sample && i < len(records); i++ {
		n := WordCount(records[i])
		if n < minWords || n > maxWords {
			errs = append(errs, fmt.Sprintf("page %d (%s): word count %d outside %d-%d", i, records[i].URL, n, minWords, maxWords))
		}
	}

	for _, d := range linkgraph.Dangling(records) {
		errs = append(errs, fmt.Sprintf("page %s links to unknown url %s", d.Source, d.Target))
	}
	for _, url := range linkgraph.OutDegreeBelow(records, minLinks) {
		errs = append(errs, fmt.Sprintf("page %s has fewer than %d related links", url, minLinks))
	}
	for _, url := range linkgraph.Orphans(records) {
		warnings = append(warnings, fmt.Sprintf("page %s has no incoming links", url))
	}

	return Result{IsValid: len(errs) == 0, Errors: errs, Warnings: warnings}
}

// missingFields lists the required fields that are empty, in a fixed order.
func missingFields(r models.PageRecord) []string {
	var out []string
	check := func(name string, empty bool) {
		if empty {
			out = append(out, name)
		}
	}
	check("url", r.URL == "")
	check("title", r.Title == "")
	check("metaDescription", r.MetaDescription == "")
	check("h1", r.H1 == "")
	check("introduction", r.Introduction == "")
	check("services", len(r.Services) == 0)
	check("process", len(r.Process) == 0)
	check("whyChooseUs", len(r.WhyChooseUs) == 0)
	check("faqs", len(r.FAQs) == 0)
	return out
}
