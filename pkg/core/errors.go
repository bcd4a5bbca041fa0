package core

import (
	"fmt"
	"strings"
)

// UnsupportedDistributionError is returned when a distribution name is not in the registry.
type UnsupportedDistributionError struct {
	Name      string
	Available []string
}

func (e *UnsupportedDistributionError) Error() string {
	return fmt.Sprintf("unsupported distribution %q\nAvailable distributions: %s", e.Name, strings.Join(e.Available, ", "))
}

// ArgumentCountError is returned when a distribution is given the wrong number of arguments.
type ArgumentCountError struct {
	Name string
	Want int
	Got  int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("%s distribution supports %d argument(s) (%d given)", e.Name, e.Want, e.Got)
}

// InvalidArgumentError is returned when a distribution argument is not a number.
type InvalidArgumentError struct {
	Name  string
	Token string
	Err   error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s distribution argument %q is not a number", e.Name, e.Token)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// MalformedServiceError is returned when a class at a station has a missing
// or invalid service distribution. Every class present at a station must be served.
type MalformedServiceError struct {
	Station string
	Class   ClassKey
	Spec    string
	Err     error
}

func (e *MalformedServiceError) Error() string {
	if e.Spec == "" {
		return fmt.Sprintf("station %q: %s has no service distribution", e.Station, e.Class)
	}
	return fmt.Sprintf("station %q: %s has an invalid service distribution %q: %v", e.Station, e.Class, e.Spec, e.Err)
}

func (e *MalformedServiceError) Unwrap() error {
	return e.Err
}

// ProbabilityOverflowError is returned when the outbound routing probability
// of a class at one station exceeds 1.
type ProbabilityOverflowError struct {
	Station string
	Class   ClassKey
	Total   float64
}

func (e *ProbabilityOverflowError) Error() string {
	msg := fmt.Sprintf("total probability cannot exceed 1 for any customer class (issue in node: %s", e.Station)
	if e.Class != "" {
		msg += ", " + string(e.Class)
	}
	return msg + fmt.Sprintf(", total %g)", e.Total)
}

// InvalidProbabilityError is returned when a single routing probability is
// not a number in [0, 1].
type InvalidProbabilityError struct {
	Station string
	Class   ClassKey
	Target  string
	Prob    float64
}

func (e *InvalidProbabilityError) Error() string {
	where := e.Station
	if e.Class != "" {
		where += ", " + string(e.Class)
	}
	return fmt.Sprintf("routing probability to %q must be between 0 and 1, got %g (issue in node: %s)", e.Target, e.Prob, where)
}

// DuplicateStationNameError is returned when two stations share a name.
type DuplicateStationNameError struct {
	Name  string
	First int
	Node  int
}

func (e *DuplicateStationNameError) Error() string {
	return fmt.Sprintf("a node with the name %q has already been defined (node %d, redefined at node %d)\nHint: station names must be unique", e.Name, e.First, e.Node)
}

// UndefinedStationError is returned when a routing edge references a station
// that was never declared.
type UndefinedStationError struct {
	Name  string
	From  string
	Class ClassKey
}

func (e *UndefinedStationError) Error() string {
	return fmt.Sprintf("%s routes from %q to undefined station %q", e.Class, e.From, e.Name)
}

// InvalidNetworkError is returned when a network description cannot be
// decoded or fails structural validation.
type InvalidNetworkError struct {
	Source string
	Err    error
}

func (e *InvalidNetworkError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid network description: %v", e.Err)
	}
	return fmt.Sprintf("invalid network description %s: %v", e.Source, e.Err)
}

func (e *InvalidNetworkError) Unwrap() error {
	return e.Err
}
