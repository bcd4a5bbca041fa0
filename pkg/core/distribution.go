package core

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NoArrivalsName is the registry name of the sentinel distribution.
const NoArrivalsName = "NoArrivals"

// Distribution is a parsed distribution descriptor: a registry name followed
// by its numeric parameters. The zero value is not meaningful; use
// NewDistribution or NoArrivals.
type Distribution struct {
	name   string
	params []float64
}

// NoArrivals is the sentinel meaning a class never originates at a station.
var NoArrivals = Distribution{name: NoArrivalsName}

// NewDistribution creates a descriptor. Params are copied.
func NewDistribution(name string, params ...float64) Distribution {
	if name == NoArrivalsName {
		return NoArrivals
	}
	cp := make([]float64, len(params))
	copy(cp, params)
	return Distribution{name: name, params: cp}
}

// Name returns the registry name.
func (d Distribution) Name() string {
	return d.name
}

// Params returns a copy of the numeric parameters.
func (d Distribution) Params() []float64 {
	cp := make([]float64, len(d.params))
	copy(cp, d.params)
	return cp
}

// IsNoArrivals reports whether d is the NoArrivals sentinel.
func (d Distribution) IsNoArrivals() bool {
	return d.name == NoArrivalsName
}

// Equal reports whether two descriptors have the same name and parameters.
func (d Distribution) Equal(other Distribution) bool {
	if d.name != other.name || len(d.params) != len(other.params) {
		return false
	}
	for i, p := range d.params {
		if p != other.params[i] {
			return false
		}
	}
	return true
}

// String renders the descriptor in specification form ("Gamma 2 0.5").
// Parameters use the shortest representation that parses back exactly.
func (d Distribution) String() string {
	if len(d.params) == 0 {
		return d.name
	}
	parts := make([]string, 0, len(d.params)+1)
	parts = append(parts, d.name)
	for _, p := range d.params {
		parts = append(parts, strconv.FormatFloat(p, 'g', -1, 64))
	}
	return strings.Join(parts, " ")
}

// wireValue is the simulator representation: "NoArrivals" or [name, p1, ...].
func (d Distribution) wireValue() any {
	if d.IsNoArrivals() {
		return NoArrivalsName
	}
	v := make([]any, 0, len(d.params)+1)
	v = append(v, d.name)
	for _, p := range d.params {
		v = append(v, p)
	}
	return v
}

// MarshalJSON implements json.Marshaler.
func (d Distribution) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wireValue())
}

// MarshalYAML implements yaml.Marshaler.
func (d Distribution) MarshalYAML() (any, error) {
	return d.wireValue(), nil
}
