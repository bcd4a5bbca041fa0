package station

import (
	"math"

	"github.com/leapstack-labs/netparams/pkg/core"
)

// ParseConnections converts the routing targets of one class at one station
// into edge records, preserving input order.
//
// Each probability must lie in [0, 1] and the summed probability must not
// exceed 1 (exactly 1 is legal: the class never leaves the network from this
// station). A positive tolerance relaxes the sum bound to 1+tolerance; zero
// gives the strict check.
func ParseConnections(routes []core.RouteSpec, current string, tolerance float64) ([]core.Edge, error) {
	total := 0.0
	edges := make([]core.Edge, 0, len(routes))

	for _, r := range routes {
		if math.IsNaN(r.Prob) || r.Prob < 0 || r.Prob > 1 {
			return nil, &core.InvalidProbabilityError{Station: current, Target: r.Target, Prob: r.Prob}
		}
		total += r.Prob
		edges = append(edges, core.Edge{
			From:        current,
			To:          r.Target,
			Probability: r.Prob,
		})
	}

	if total > 1.0+tolerance {
		return nil, &core.ProbabilityOverflowError{Station: current, Total: total}
	}

	return edges, nil
}
