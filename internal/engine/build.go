package engine

// build.go - station loop and parameter model assembly

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leapstack-labs/netparams/internal/aggregate"
	"github.com/leapstack-labs/netparams/internal/loader"
	"github.com/leapstack-labs/netparams/internal/station"
	"github.com/leapstack-labs/netparams/internal/transition"
	"github.com/leapstack-labs/netparams/pkg/core"
)

// Build assembles the parameter model for stations, in declaration order.
// Station i (0-based) becomes node i+1. The first error aborts the build and
// no partial model is returned.
func (e *Engine) Build(stations []core.StationSpec) (*core.NetworkParams, error) {
	start := time.Now()
	log := e.logger.With("build_id", uuid.New().String())
	log.Debug("building network parameters", "stations", len(stations))

	n := len(stations)
	index := make(core.NodeIndex, n)
	names := make([]string, 0, n)
	servers := make([]int, 0, n)
	capacities := make([]core.Capacity, 0, n)

	arrivals := make(aggregate.Sequences)
	service := make(aggregate.Sequences)
	connections := make(aggregate.Connections)

	for i, spec := range stations {
		node := i + 1

		if first, dup := index[spec.Name]; dup {
			return nil, &core.DuplicateStationNameError{Name: spec.Name, First: first, Node: node}
		}

		st, err := station.Parse(spec, station.Options{
			ProbabilityTolerance: e.tolerance,
			Logger:               log,
		})
		if err != nil {
			return nil, err
		}

		index[st.Name] = node
		names = append(names, st.Name)
		servers = append(servers, st.Servers)
		capacities = append(capacities, st.Capacity)

		arrivals = aggregate.MergeDistributions(arrivals, st.Arrivals, node)
		if err := arrivals.CheckAligned(node); err != nil {
			return nil, fmt.Errorf("arrival distributions misaligned at node %d: %w", node, err)
		}
		service = aggregate.MergeDistributions(service, st.Service, node)
		if err := service.CheckAligned(node); err != nil {
			return nil, fmt.Errorf("service distributions misaligned at node %d: %w", node, err)
		}
		connections = aggregate.MergeConnections(connections, st.Connections)

		log.Debug("station folded", "node", node, "station", st.Name, "classes", len(st.Service))
	}

	matrices := make(map[core.ClassKey][][]float64, len(connections))
	for _, key := range core.SortedClassKeys(connections) {
		m, err := transition.Build(key, connections[key], index, n)
		if err != nil {
			return nil, err
		}
		matrices[key] = m
	}

	params := &core.NetworkParams{
		ArrivalDistributions: arrivals,
		NumberOfNodes:        n,
		NumberOfServers:      servers,
		QueueCapacities:      capacities,
		ServiceDistributions: service,
		TransitionMatrices:   matrices,
		NodeNames:            names,
	}

	log.Info("built network parameters",
		"nodes", n,
		"classes", len(matrices),
		"duration", time.Since(start).Round(time.Microsecond))

	return params, nil
}

// BuildFile loads a network description file and builds its parameter model.
func (e *Engine) BuildFile(path string) (*core.NetworkParams, error) {
	stations, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("loaded network description", "path", path, "stations", len(stations))
	return e.Build(stations)
}
