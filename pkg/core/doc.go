// Package core defines the shared language of the netparams system.
//
// This package contains:
//   - Input records decoded from a network description (StationSpec, CustomerSpec, RouteSpec)
//   - Parsed domain entities (Distribution, Edge, Station, NodeIndex)
//   - The assembled output model (NetworkParams)
//   - Typed build errors
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
