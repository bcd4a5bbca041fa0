package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnboundedCapacity is the rendered form of an unbounded queue capacity.
const UnboundedCapacity = "Inf"

// Capacity is a station queue capacity. The zero value is unbounded.
type Capacity struct {
	Limit   int `validate:"gte=0"`
	Bounded bool
}

// Limited returns a bounded capacity.
func Limited(n int) Capacity {
	return Capacity{Limit: n, Bounded: true}
}

// Unbounded returns the unbounded capacity sentinel.
func Unbounded() Capacity {
	return Capacity{}
}

// ParseCapacity converts a decoded capacity value (an integer, an integral
// float, or an unbounded marker string) into a Capacity.
func ParseCapacity(v any) (Capacity, error) {
	switch c := v.(type) {
	case nil:
		return Unbounded(), nil
	case Capacity:
		return c, nil
	case int:
		return Limited(c), nil
	case int64:
		return Limited(int(c)), nil
	case uint64:
		return Limited(int(c)), nil
	case float64:
		if c != float64(int(c)) {
			return Capacity{}, fmt.Errorf("capacity must be an integer, got %v", c)
		}
		return Limited(int(c)), nil
	case string:
		switch strings.ToLower(strings.TrimSpace(c)) {
		case "inf", "infinite", "infinity", "unbounded":
			return Unbounded(), nil
		}
		return Capacity{}, fmt.Errorf("capacity must be an integer or %q, got %q", UnboundedCapacity, c)
	default:
		return Capacity{}, fmt.Errorf("capacity must be an integer or %q, got %T", UnboundedCapacity, v)
	}
}

// String returns the integer limit or "Inf".
func (c Capacity) String() string {
	if !c.Bounded {
		return UnboundedCapacity
	}
	return fmt.Sprintf("%d", c.Limit)
}

func (c Capacity) wireValue() any {
	if !c.Bounded {
		return UnboundedCapacity
	}
	return c.Limit
}

// MarshalJSON implements json.Marshaler.
func (c Capacity) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.wireValue())
}

// MarshalYAML implements yaml.Marshaler.
func (c Capacity) MarshalYAML() (any, error) {
	return c.wireValue(), nil
}
