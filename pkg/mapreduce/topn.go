package mapreduce

import (
	"fmt"
	"io"
	"sort"
)

type kv struct {
	Key   string
	Value int
}

// ranked sorts counts by value descending, then key ascending.
func ranked(wordCounts map[string]int, n int) []kv {
	ss := make([]kv, 0, len(wordCounts))
	for k, v := range wordCounts {
		ss = append(ss, kv{k, v})
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})
	return ss[:max(0, min(n, len(ss)))]
}

// TopKeywords returns the top N keywords formatted as "word:count"
// (e.g., "polishing:1153").
func TopKeywords(wordCounts map[string]int, n int) []string {
	top := ranked(wordCounts, n)
	keywords := make([]string, len(top))
	for i, e := range top {
		keywords[i] = fmt.Sprintf("%s:%d", e.Key, e.Value)
	}
	return keywords
}

// PrintTopKeywords writes the top N keywords as a numbered list.
func PrintTopKeywords(w io.Writer, wordCounts map[string]int, n int) {
	for i, e := range ranked(wordCounts, n) {
		fmt.Fprintf(w, "%d. %s: %d\n", i+1, e.Key, e.Value)
	}
}
