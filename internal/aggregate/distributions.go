// Package aggregate folds per-station, per-class results into network-wide
// per-class sequences and edge lists.
package aggregate

import (
	"fmt"

	"github.com/leapstack-labs/netparams/pkg/core"
)

// Sequences maps each class to its node-indexed distribution sequence.
// Position i holds the distribution at node i+1.
type Sequences map[core.ClassKey][]core.Distribution

// MergeDistributions folds the distributions of the station at 1-based index
// node into existing and returns the result.
//
// A class seen for the first time is padded with NoArrivals for nodes
// 1..node-1 before its value is appended. A class known from earlier stations
// but absent here gets a trailing NoArrivals. Afterwards every sequence has
// length node.
func MergeDistributions(existing Sequences, incoming map[core.ClassKey]core.Distribution, node int) Sequences {
	if existing == nil {
		existing = make(Sequences, len(incoming))
	}

	for key, d := range incoming {
		seq, ok := existing[key]
		if !ok {
			seq = make([]core.Distribution, 0, node)
			for i := 1; i < node; i++ {
				seq = append(seq, core.NoArrivals)
			}
		}
		existing[key] = append(seq, d)
	}

	for key, seq := range existing {
		if len(seq) != node {
			existing[key] = append(seq, core.NoArrivals)
		}
	}

	return existing
}

// CheckAligned verifies that every sequence has exactly n entries.
func (s Sequences) CheckAligned(n int) error {
	for _, key := range core.SortedClassKeys(s) {
		if got := len(s[key]); got != n {
			return fmt.Errorf("%s has %d entries after %d stations", key, got, n)
		}
	}
	return nil
}
