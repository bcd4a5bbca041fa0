// Package transition converts a class's network-wide routing edges into a
// dense node-indexed transition probability matrix.
package transition

import (
	"gonum.org/v1/gonum/mat"

	"github.com/leapstack-labs/netparams/pkg/core"
)

// pair is a (source, target) pair of 0-based node positions.
type pair struct {
	from, to int
}

// Build returns the n×n routing matrix for one class. Entry [i][j] is the
// probability that a customer of the class finishing service at node i+1
// moves to node j+1. Repeated edges between the same pair are summed. Rows
// need not sum to 1; the remainder is the probability of leaving the network.
//
// Every edge endpoint must resolve through index.
func Build(class core.ClassKey, edges []core.Edge, index core.NodeIndex, n int) ([][]float64, error) {
	weights := make(map[pair]float64, len(edges))

	for _, e := range edges {
		from, ok := index.Resolve(e.From)
		if !ok {
			return nil, &core.UndefinedStationError{Name: e.From, From: e.From, Class: class}
		}
		to, ok := index.Resolve(e.To)
		if !ok {
			return nil, &core.UndefinedStationError{Name: e.To, From: e.From, Class: class}
		}

		weights[pair{from: from - 1, to: to - 1}] += e.Probability
	}

	if n == 0 {
		return [][]float64{}, nil
	}

	m := mat.NewDense(n, n, nil)
	for p, w := range weights {
		m.Set(p.from, p.to, w)
	}

	return ToRows(m), nil
}

// ToRows copies a matrix into row slices.
func ToRows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}
	return rows
}

// ExitProbabilities returns, per node, the probability that a customer leaves
// the network after service there (1 minus the row sum).
func ExitProbabilities(rows [][]float64) []float64 {
	n := len(rows)
	if n == 0 {
		return []float64{}
	}

	m := mat.NewDense(n, n, nil)
	for i, row := range rows {
		m.SetRow(i, row)
	}

	ones := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		ones.SetVec(i, 1)
	}

	var sums mat.VecDense
	sums.MulVec(m, ones)

	exit := make([]float64, n)
	for i := range exit {
		exit[i] = 1 - sums.AtVec(i)
	}
	return exit
}
