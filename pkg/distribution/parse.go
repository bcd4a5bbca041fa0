package distribution

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/netparams/pkg/core"
)

// Parse parses a specification of the form "<Name> [args...]".
//
// The name must be registered and followed by exactly the registered number
// of numeric arguments. "NoArrivals" yields core.NoArrivals.
func Parse(spec string) (core.Distribution, error) {
	fields := strings.Fields(spec)

	var name string
	var args []string
	if len(fields) > 0 {
		name, args = fields[0], fields[1:]
	}

	want, ok := Lookup(name)
	if !ok {
		return core.Distribution{}, &core.UnsupportedDistributionError{
			Name:      name,
			Available: List(),
		}
	}

	if len(args) != want {
		return core.Distribution{}, &core.ArgumentCountError{
			Name: name,
			Want: want,
			Got:  len(args),
		}
	}

	if name == core.NoArrivalsName {
		return core.NoArrivals, nil
	}

	params := make([]float64, len(args))
	for i, tok := range args {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return core.Distribution{}, &core.InvalidArgumentError{Name: name, Token: tok, Err: err}
		}
		params[i] = v
	}

	return core.NewDistribution(name, params...), nil
}
