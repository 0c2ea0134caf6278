// Package analytics computes term statistics over page copy.
package analytics

import (
	"sort"
	"strings"
)

type Analytics struct{}

// stopwords are ignored in frequency analysis. The tail of the list is
// boilerplate that appears on every landing page and says nothing about
// what a page is about.
var stopwords = wordSet(`
a about above after again against all also am an and any are as at
be because been before being below between both but by
can could did do does doing down during each few for from further
had has have having he her here hers him his how i if in into is it its itself
just me more most my no nor not now of off on once only or other our ours out over own
same she should so some such than that the their theirs them then there these they this those through to too
under until up us very was we were what when where which while who whom why will with would you your yours
call calls get gets help our ourselves service services us we'll we're
`)

func wordSet(list string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(list) {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword checks if a word is a common stopword that should be filtered out.
func IsStopword(word string) bool {
	_, exists := stopwords[strings.ToLower(word)]
	return exists
}

// tokens lowercases text and strips punctuation from both ends of each
// word. Inner hyphens survive so "same-day" stays one token.
func tokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := fields[:0]
	for _, w := range fields {
		w = strings.TrimFunc(w, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// WordFrequency counts the non-stopword tokens of text.
func (a *Analytics) WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)
	for _, word := range tokens(text) {
		if _, skip := stopwords[word]; skip {
			continue
		}
		frequencies[word]++
	}
	return frequencies
}

type wordCount struct {
	Word  string
	Count int
}

// TopNWords returns the n most frequent words, ties broken alphabetically.
func (a *Analytics) TopNWords(text string, n int) []string {
	frequencies := a.WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, wordCount{k, v})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})

	limit := min(n, len(counts))
	topN := make([]string, limit)
	for i := 0; i < limit; i++ {
		topN[i] = counts[i].Word
	}
	return topN
}

// KeywordDensity returns the share of text's tokens covered by occurrences
// of phrase, as a percentage. Occurrences may not overlap.
func (a *Analytics) KeywordDensity(text, phrase string) float64 {
	words := tokens(text)
	target := tokens(phrase)
	if len(words) == 0 || len(target) == 0 {
		return 0
	}

	hits := 0
	for i := 0; i+len(target) <= len(words); {
		match := true
		for j, t := range target {
			if words[i+j] != t {
				match = false
				break
			}
		}
		if match {
			hits++
			i += len(target)
			continue
		}
		i++
	}
	return 100 * float64(hits*len(target)) / float64(len(words))
}
