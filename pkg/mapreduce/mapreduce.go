// Package mapreduce aggregates word frequencies across the corpus.
package mapreduce

import (
	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/analytics"
)

// Map generates a word frequency map for a single page's copy.
func Map(rec models.PageRecord, a *analytics.Analytics) map[string]int {
	return a.WordFrequency(rec.ToPlainText())
}

// MapAll runs Map over every record, keeping corpus order.
func MapAll(records []models.PageRecord, a *analytics.Analytics) []map[string]int {
	out := make([]map[string]int, len(records))
	for i, r := range records {
		out[i] = Map(r, a)
	}
	return out
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)
	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}
	return finalResults
}
