// Package distribution parses distribution specification strings such as
// "Exponential 2.0" into typed descriptors, validated against a fixed registry
// of supported distributions and their argument counts.
package distribution

import (
	"sort"

	"github.com/leapstack-labs/netparams/pkg/core"
)

// registry maps each supported distribution name to its required argument count.
var registry = map[string]int{
	"Exponential":       1,
	"Uniform":           2,
	"Deterministic":     1,
	"Triangular":        3,
	"Gamma":             2,
	"Lognormal":         2,
	"Weibull":           1,
	core.NoArrivalsName: 0,
}

// Entry describes one registered distribution.
type Entry struct {
	Name string `json:"name"`
	Args int    `json:"args"`
}

// Lookup returns the argument count for a distribution name.
func Lookup(name string) (int, bool) {
	n, ok := registry[name]
	return n, ok
}

// List returns all registered distribution names (sorted).
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns every registered distribution with its argument count, sorted by name.
func Entries() []Entry {
	names := List()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Args: registry[name]})
	}
	return entries
}
