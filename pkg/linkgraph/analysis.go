package linkgraph

import (
	"sort"

	"github.com/dtnitsch/polishpages/models"
)

// DanglingLink is a related link whose target is not in the corpus.
type DanglingLink struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// Stats summarises the shape of the link graph.
type Stats struct {
	Pages       int     `yaml:"pages"`
	Links       int     `yaml:"links"`
	MinOut      int     `yaml:"min_out"`
	MaxOut      int     `yaml:"max_out"`
	AvgOut      float64 `yaml:"avg_out"`
	MaxIn       int     `yaml:"max_in"`
	Orphans     int     `yaml:"orphans"`
	MutualPairs int     `yaml:"mutual_pairs"`
	Cycles      int     `yaml:"cycles"`
	Dangling    int     `yaml:"dangling"`
	UnderLinked int     `yaml:"under_linked"`
}

// ReverseIndex maps each target URL to the pages linking to it, in corpus
// order. Self links are ignored.
func ReverseIndex(records []models.PageRecord) map[string][]string {
	rev := make(map[string][]string)
	for _, r := range records {
		for _, l := range r.RelatedServices {
			if l.URL == r.URL {
				continue
			}
			rev[l.URL] = append(rev[l.URL], r.URL)
		}
	}
	return rev
}

// Orphans returns the pages no other page links to, in corpus order.
func Orphans(records []models.PageRecord) []string {
	rev := ReverseIndex(records)
	var out []string
	for _, r := range records {
		if len(rev[r.URL]) == 0 {
			out = append(out, r.URL)
		}
	}
	return out
}

// MutualPairs returns every unordered pair of pages that link to each
// other. The lexically smaller URL comes first and pairs are sorted.
func MutualPairs(records []models.PageRecord) [][2]string {
	edges := edgeSet(records)
	var out [][2]string
	for from, targets := range edges {
		for to := range targets {
			if from < to && edges[to][from] {
				out = append(out, [2]string{from, to})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// Dangling returns links whose target is not a page of the corpus.
func Dangling(records []models.PageRecord) []DanglingLink {
	known := make(map[string]bool, len(records))
	for _, r := range records {
		known[r.URL] = true
	}
	var out []DanglingLink
	for _, r := range records {
		for _, l := range r.RelatedServices {
			if !known[l.URL] {
				out = append(out, DanglingLink{Source: r.URL, Target: l.URL})
			}
		}
	}
	return out
}

// OutDegreeBelow returns the pages with fewer than floor related links.
func OutDegreeBelow(records []models.PageRecord, floor int) []string {
	var out []string
	for _, r := range records {
		if len(r.RelatedServices) < floor {
			out = append(out, r.URL)
		}
	}
	return out
}

// FindCycles returns the strongly connected components with more than one
// page. Members of a component are sorted; components are ordered by their
// first member.
func FindCycles(records []models.PageRecord) [][]string {
	edges := edgeSet(records)

	// Tarjan's algorithm over the corpus order for stable output.
	var (
		index   = make(map[string]int, len(records))
		lowlink = make(map[string]int, len(records))
		onStack = make(map[string]bool, len(records))
		stack   []string
		next    int
		out     [][]string
	)

	var strongConnect func(v string)
	strongConnect = func(v string) {
		index[v] = next
		lowlink[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		targets := make([]string, 0, len(edges[v]))
		for w := range edges[v] {
			targets = append(targets, w)
		}
		sort.Strings(targets)

		for _, w := range targets {
			if _, seen := index[w]; !seen {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], index[w])
			}
		}

		if lowlink[v] == index[v] {
			var comp []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			if len(comp) > 1 {
				sort.Strings(comp)
				out = append(out, comp)
			}
		}
	}

	for _, r := range records {
		if _, seen := index[r.URL]; !seen {
			strongConnect(r.URL)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// ComputeStats gathers degree and health counts for the corpus.
func ComputeStats(records []models.PageRecord, minLinks int) Stats {
	s := Stats{Pages: len(records)}
	if len(records) == 0 {
		return s
	}

	s.MinOut = len(records[0].RelatedServices)
	for _, r := range records {
		n := len(r.RelatedServices)
		s.Links += n
		s.MinOut = min(s.MinOut, n)
		s.MaxOut = max(s.MaxOut, n)
	}
	s.AvgOut = float64(s.Links) / float64(len(records))

	for _, sources := range ReverseIndex(records) {
		s.MaxIn = max(s.MaxIn, len(sources))
	}
	s.Orphans = len(Orphans(records))
	s.MutualPairs = len(MutualPairs(records))
	s.Cycles = len(FindCycles(records))
	s.Dangling = len(Dangling(records))
	s.UnderLinked = len(OutDegreeBelow(records, minLinks))
	return s
}

// edgeSet returns the adjacency of the graph restricted to corpus pages,
// without self loops.
func edgeSet(records []models.PageRecord) map[string]map[string]bool {
	known := make(map[string]bool, len(records))
	for _, r := range records {
		known[r.URL] = true
	}
	edges := make(map[string]map[string]bool, len(records))
	for _, r := range records {
		targets := make(map[string]bool, len(r.RelatedServices))
		for _, l := range r.RelatedServices {
			if l.URL != r.URL && known[l.URL] {
				targets[l.URL] = true
			}
		}
		edges[r.URL] = targets
	}
	return edges
}
