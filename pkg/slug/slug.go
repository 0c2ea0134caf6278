// Package slug builds canonical page paths and keeps them unique.
package slug

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PathPrefix is the directory every generated page lives under.
const PathPrefix = "/services/"

var (
	disallowed = regexp.MustCompile(`[^a-z0-9\s_-]+`)
	separators = regexp.MustCompile(`[\s_-]+`)
	diacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify lowercases s, drops everything outside [a-z0-9], whitespace,
// underscores and hyphens, and collapses separator runs into one hyphen.
func Slugify(s string) string {
	folded, _, err := transform.String(diacritics, s)
	if err != nil {
		folded = s
	}
	out := strings.ToLower(folded)
	out = disallowed.ReplaceAllString(out, "")
	out = separators.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// BuildURL returns the canonical path for a service offered in a location.
func BuildURL(serviceName, locationName string) string {
	return PathPrefix + Slugify(serviceName) + "-" + Slugify(locationName)
}

// EnsureUnique returns path if reg does not hold it yet, otherwise the first
// free path-1, path-2, ... The caller must Add the result before asking
// for the next one.
func EnsureUnique(path string, reg *Registry) string {
	if !reg.Has(path) {
		return path
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", path, n)
		if !reg.Has(candidate) {
			return candidate
		}
	}
}

// Allocate builds, uniquifies and registers the path for a service and
// location in one step.
func Allocate(serviceName, locationName string, reg *Registry) string {
	path := EnsureUnique(BuildURL(serviceName, locationName), reg)
	reg.Add(path)
	return path
}

// Registry is the set of paths allocated so far in one generation run.
// It has a single owner and is not safe for concurrent mutation.
type Registry struct {
	paths map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{paths: make(map[string]struct{})}
}

// Add records path as taken.
func (r *Registry) Add(path string) {
	r.paths[path] = struct{}{}
}

// Has reports whether path is taken.
func (r *Registry) Has(path string) bool {
	_, ok := r.paths[path]
	return ok
}

// Len returns the number of taken paths.
func (r *Registry) Len() int {
	return len(r.paths)
}

// URLs returns the taken paths in sorted order.
func (r *Registry) URLs() []string {
	out := make([]string, 0, len(r.paths))
	for p := range r.paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
