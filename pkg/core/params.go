package core

// NetworkParams is the assembled parameter model handed to the simulator.
// It is built once and not mutated afterwards.
type NetworkParams struct {
	ArrivalDistributions map[ClassKey][]Distribution `json:"Arrival_distributions" yaml:"Arrival_distributions"`
	NumberOfNodes        int                         `json:"Number_of_nodes" yaml:"Number_of_nodes"`
	NumberOfServers      []int                       `json:"Number_of_servers" yaml:"Number_of_servers"`
	QueueCapacities      []Capacity                  `json:"Queue_capacities" yaml:"Queue_capacities"`
	ServiceDistributions map[ClassKey][]Distribution `json:"Service_distributions" yaml:"Service_distributions"`
	TransitionMatrices   map[ClassKey][][]float64    `json:"Transition_matrices" yaml:"Transition_matrices"`

	// NodeNames lists station names in node-index order. Not serialized.
	NodeNames []string `json:"-" yaml:"-"`
}

// Classes returns every class key present in the model, in class order.
func (p *NetworkParams) Classes() []ClassKey {
	seen := make(map[ClassKey]struct{})
	for k := range p.ArrivalDistributions {
		seen[k] = struct{}{}
	}
	for k := range p.ServiceDistributions {
		seen[k] = struct{}{}
	}
	for k := range p.TransitionMatrices {
		seen[k] = struct{}{}
	}
	return SortedClassKeys(seen)
}
