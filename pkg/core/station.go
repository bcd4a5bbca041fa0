package core

// =============================================================================
// Input records
// =============================================================================

// RouteSpec is one outbound routing target of a customer class.
type RouteSpec struct {
	Target string  `mapstructure:"target" validate:"required"`
	Prob   float64 `mapstructure:"prob" validate:"gte=0"`
}

// CustomerSpec is a customer class definition at one station.
// Arrival is optional; Service is required but checked by the station parser
// so that a missing service surfaces as a MalformedServiceError.
type CustomerSpec struct {
	Class       int         `mapstructure:"class" validate:"gte=0"`
	Arrival     string      `mapstructure:"dist"`
	Service     string      `mapstructure:"service"`
	Connections []RouteSpec `mapstructure:"connections" validate:"dive"`
}

// StationSpec is a station record as decoded from a network description.
type StationSpec struct {
	Name      string         `mapstructure:"name" validate:"required"`
	Capacity  Capacity       `mapstructure:"capacity"`
	Servers   int            `mapstructure:"servers" validate:"gte=1"`
	Customers []CustomerSpec `mapstructure:"customers" validate:"dive"`
}

// =============================================================================
// Parsed records
// =============================================================================

// Edge is a routing edge for one customer class. Node names are resolved to
// indices only at network assembly time.
type Edge struct {
	From        string
	To          string
	Probability float64
}

// Station is a parsed station: its resources plus the per-class mappings
// produced by the station parser.
type Station struct {
	Name        string
	Capacity    Capacity
	Servers     int
	Arrivals    map[ClassKey]Distribution
	Service     map[ClassKey]Distribution
	Connections map[ClassKey][]Edge
}

// NodeIndex maps station names to 1-based node indices in declaration order.
type NodeIndex map[string]int

// Resolve returns the node index for a station name.
func (n NodeIndex) Resolve(name string) (int, bool) {
	idx, ok := n[name]
	return idx, ok
}
