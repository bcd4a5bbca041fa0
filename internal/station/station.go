// Package station parses the customer class definitions of a single station
// into per-class arrival distributions, service distributions, and outbound
// routing edges, keyed uniformly by class key.
package station

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/netparams/pkg/core"
	"github.com/leapstack-labs/netparams/pkg/distribution"
)

// Options controls station parsing.
type Options struct {
	// ProbabilityTolerance relaxes the outbound probability bound to 1+tolerance.
	ProbabilityTolerance float64
	// Logger receives recovered-arrival and duplicate-class notices (nil discards).
	Logger *slog.Logger
}

// Parse parses one station record.
//
// Arrivals are optional: a missing or malformed arrival specification becomes
// core.NoArrivals, since a station may be a pass-through node for a class it
// does not originate. A missing or malformed service specification is fatal.
// If a class is defined more than once at the same station the last
// definition wins.
func Parse(spec core.StationSpec, opts Options) (*core.Station, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	st := &core.Station{
		Name:        spec.Name,
		Capacity:    spec.Capacity,
		Servers:     spec.Servers,
		Arrivals:    make(map[core.ClassKey]core.Distribution, len(spec.Customers)),
		Service:     make(map[core.ClassKey]core.Distribution, len(spec.Customers)),
		Connections: make(map[core.ClassKey][]core.Edge, len(spec.Customers)),
	}

	for _, c := range spec.Customers {
		key := core.ClassKeyFor(c.Class)

		if _, dup := st.Service[key]; dup {
			logger.Warn("class defined more than once at station, last definition wins",
				"station", spec.Name, "class", key)
		}

		arrival, err := distribution.Parse(c.Arrival)
		if err != nil {
			if c.Arrival != "" {
				logger.Debug("arrival specification not usable, class does not originate here",
					"station", spec.Name, "class", key, "spec", c.Arrival, "error", err)
			}
			arrival = core.NoArrivals
		}
		st.Arrivals[key] = arrival

		service, err := distribution.Parse(c.Service)
		if err != nil {
			return nil, &core.MalformedServiceError{
				Station: spec.Name,
				Class:   key,
				Spec:    c.Service,
				Err:     err,
			}
		}
		st.Service[key] = service

		var edges []core.Edge
		if c.Connections != nil {
			edges, err = ParseConnections(c.Connections, spec.Name, opts.ProbabilityTolerance)
			if err != nil {
				var overflow *core.ProbabilityOverflowError
				if errors.As(err, &overflow) {
					overflow.Class = key
					return nil, overflow
				}
				var invalid *core.InvalidProbabilityError
				if errors.As(err, &invalid) {
					invalid.Class = key
					return nil, invalid
				}
				return nil, fmt.Errorf("station %q, %s: %w", spec.Name, key, err)
			}
		}
		st.Connections[key] = edges
	}

	return st, nil
}
