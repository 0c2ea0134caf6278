package validator

import (
	"fmt"

	"github.com/pemistahl/lingua-go"

	"github.com/dtnitsch/polishpages/models"
)

// LanguageCheck verifies that page copy reads as English. Detection is
// limited to the languages a Mumbai page could plausibly drift into.
type LanguageCheck struct {
	detector lingua.LanguageDetector
}

// NewLanguageCheck builds the detector. Loading the language models is
// slow, so build one and reuse it.
func NewLanguageCheck() *LanguageCheck {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Hindi, lingua.Marathi).
		Build()
	return &LanguageCheck{detector: detector}
}

// Check returns one warning per sampled record whose introduction is not
// detected as English.
func (lc *LanguageCheck) Check(records []models.PageRecord, sample int) []string {
	if sample <= 0 {
		sample = DefaultSampleSize
	}
	var warnings []string
	for i := 0; i < sample && i < len(records); i++ {
		lang, ok := lc.detector.DetectLanguageOf(records[i].Introduction)
		switch {
		case !ok:
			warnings = append(warnings, fmt.Sprintf("page %d (%s): language of introduction could not be detected", i, records[i].URL))
		case lang != lingua.English:
			warnings = append(warnings, fmt.Sprintf("page %d (%s): introduction detected as %s", i, records[i].URL, lang))
		}
	}
	return warnings
}
