package aggregate

import "github.com/leapstack-labs/netparams/pkg/core"

// Connections maps each class to its network-wide edge list.
type Connections map[core.ClassKey][]core.Edge

// MergeConnections appends each incoming class's edges to existing, in order.
// Edges are never deduplicated; repeated pairs are summed later by the
// transition matrix builder. A class with no edges is still recorded.
func MergeConnections(existing Connections, incoming map[core.ClassKey][]core.Edge) Connections {
	if existing == nil {
		existing = make(Connections, len(incoming))
	}

	for key, edges := range incoming {
		merged := existing[key]
		if merged == nil {
			merged = make([]core.Edge, 0, len(edges))
		}
		existing[key] = append(merged, edges...)
	}

	return existing
}
