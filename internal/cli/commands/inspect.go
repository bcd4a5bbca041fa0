package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/netparams/internal/cli/output"
	"github.com/leapstack-labs/netparams/internal/transition"
	"github.com/leapstack-labs/netparams/pkg/core"
)

// InspectOptions holds options for the inspect command.
type InspectOptions struct {
	Class string // Restrict output to one class
}

// InspectOutput is the JSON output structure for the inspect command.
type InspectOutput struct {
	Network string      `json:"network"`
	Nodes   []NodeInfo  `json:"nodes"`
	Classes []ClassInfo `json:"classes"`
}

// NodeInfo describes one node.
type NodeInfo struct {
	Index    int           `json:"index"`
	Name     string        `json:"name"`
	Servers  int           `json:"servers"`
	Capacity core.Capacity `json:"capacity"`
}

// ClassInfo describes one customer class across all nodes.
type ClassInfo struct {
	Class       core.ClassKey       `json:"class"`
	Arrivals    []core.Distribution `json:"arrivals"`
	Service     []core.Distribution `json:"service"`
	Transitions [][]float64         `json:"transitions"`
	Exit        []float64           `json:"exit"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect [network-file]",
		Short: "Show the parameter model of a network",
		Long: `Build a network description and render its parameter model: the node table,
per-class arrival and service distributions, and per-class transition
matrices with the probability of leaving the network after each node.

Output adapts to environment:
  - Terminal: Styled tables
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Inspect the configured network
  netparams inspect

  # Inspect one class of a specific file
  netparams inspect lab.yml --class 1

  # Output as JSON
  netparams inspect lab.yml -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Class, "class", "c", "", "Only show this class (e.g. 1 or \"Class 1\")")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	path, err := cmdCtx.NetworkPath(args)
	if err != nil {
		return err
	}

	params, err := cmdCtx.Engine.BuildFile(path)
	if err != nil {
		return err
	}

	classes, err := selectClasses(params, opts.Class)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(buildInspectOutput(path, params, classes))
	}
	renderInspectTables(r, params, classes)
	return nil
}

// selectClasses returns the classes to show, in class order.
func selectClasses(params *core.NetworkParams, filter string) ([]core.ClassKey, error) {
	all := params.Classes()
	if filter == "" {
		return all, nil
	}

	want := core.ClassKey(filter)
	if id, err := strconv.Atoi(filter); err == nil {
		want = core.ClassKeyFor(id)
	}
	for _, k := range all {
		if k == want {
			return []core.ClassKey{k}, nil
		}
	}
	return nil, fmt.Errorf("class %q not found\nAvailable classes: %s", filter, strings.Join(classNames(all), ", "))
}

func buildInspectOutput(path string, params *core.NetworkParams, classes []core.ClassKey) InspectOutput {
	out := InspectOutput{
		Network: path,
		Nodes:   make([]NodeInfo, 0, params.NumberOfNodes),
		Classes: make([]ClassInfo, 0, len(classes)),
	}

	for i := 0; i < params.NumberOfNodes; i++ {
		out.Nodes = append(out.Nodes, NodeInfo{
			Index:    i + 1,
			Name:     nodeName(params, i),
			Servers:  params.NumberOfServers[i],
			Capacity: params.QueueCapacities[i],
		})
	}

	for _, key := range classes {
		rows := params.TransitionMatrices[key]
		out.Classes = append(out.Classes, ClassInfo{
			Class:       key,
			Arrivals:    params.ArrivalDistributions[key],
			Service:     params.ServiceDistributions[key],
			Transitions: rows,
			Exit:        transition.ExitProbabilities(rows),
		})
	}

	return out
}

func renderInspectTables(r *output.Renderer, params *core.NetworkParams, classes []core.ClassKey) {
	r.Header(1, fmt.Sprintf("Nodes (%d total)", params.NumberOfNodes))

	nodeRows := make([][]string, 0, params.NumberOfNodes)
	for i := 0; i < params.NumberOfNodes; i++ {
		nodeRows = append(nodeRows, []string{
			strconv.Itoa(i + 1),
			nodeName(params, i),
			strconv.Itoa(params.NumberOfServers[i]),
			params.QueueCapacities[i].String(),
		})
	}
	r.Table([]string{"Node", "Name", "Servers", "Capacity"}, nodeRows)

	for _, key := range classes {
		r.Header(2, string(key))

		arrivals := params.ArrivalDistributions[key]
		service := params.ServiceDistributions[key]
		distRows := make([][]string, 0, params.NumberOfNodes)
		for i := 0; i < params.NumberOfNodes; i++ {
			distRows = append(distRows, []string{
				nodeName(params, i),
				distributionAt(arrivals, i),
				distributionAt(service, i),
			})
		}
		r.Table([]string{"Node", "Arrival", "Service"}, distRows)

		rows := params.TransitionMatrices[key]
		exit := transition.ExitProbabilities(rows)

		header := make([]string, 0, params.NumberOfNodes+2)
		header = append(header, "From \\ To")
		for i := 0; i < params.NumberOfNodes; i++ {
			header = append(header, nodeName(params, i))
		}
		header = append(header, "Exit")

		matrixRows := make([][]string, 0, len(rows))
		for i, row := range rows {
			cells := make([]string, 0, len(row)+2)
			cells = append(cells, nodeName(params, i))
			for _, p := range row {
				cells = append(cells, formatProbability(p))
			}
			cells = append(cells, formatProbability(exit[i]))
			matrixRows = append(matrixRows, cells)
		}
		r.Table(header, matrixRows)
	}
}

// nodeName returns the station name at 0-based position i, or its 1-based
// index when names are not available.
func nodeName(params *core.NetworkParams, i int) string {
	if i < len(params.NodeNames) {
		return params.NodeNames[i]
	}
	return strconv.Itoa(i + 1)
}

func distributionAt(seq []core.Distribution, i int) string {
	if i >= len(seq) {
		return core.NoArrivalsName
	}
	return seq[i].String()
}

func formatProbability(p float64) string {
	if p == 0 {
		return "0"
	}
	return strconv.FormatFloat(p, 'f', 4, 64)
}
