package transition

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/netparams/pkg/core"
)

var class1 = core.ClassKeyFor(1)

func TestBuild(t *testing.T) {
	index := core.NodeIndex{"A": 1, "B": 2}
	edges := []core.Edge{{From: "A", To: "B", Probability: 0.8}}

	m, err := Build(class1, edges, index, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0.8}, {0, 0}}, m)
}

func TestBuild_SumsDuplicateEdges(t *testing.T) {
	index := core.NodeIndex{"A": 1, "B": 2, "C": 3}
	edges := []core.Edge{
		{From: "A", To: "B", Probability: 0.3},
		{From: "A", To: "C", Probability: 0.1},
		{From: "A", To: "B", Probability: 0.2},
		{From: "C", To: "C", Probability: 0.4},
	}

	m, err := Build(class1, edges, index, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, m[0][1], 1e-12)
	assert.InDelta(t, 0.1, m[0][2], 1e-12)
	assert.InDelta(t, 0.4, m[2][2], 1e-12, "self-loops are legal")
	assert.Equal(t, []float64{0, 0, 0}, m[1])
}

func TestBuild_NoEdges(t *testing.T) {
	index := core.NodeIndex{"A": 1, "B": 2, "C": 3}

	m, err := Build(class1, nil, index, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, m)
}

func TestBuild_DimensionIgnoresTouchedSubset(t *testing.T) {
	index := core.NodeIndex{"A": 1, "B": 2, "C": 3, "D": 4}
	edges := []core.Edge{{From: "B", To: "C", Probability: 1}}

	m, err := Build(class1, edges, index, 4)
	require.NoError(t, err)
	require.Len(t, m, 4)
	for _, row := range m {
		assert.Len(t, row, 4)
	}
	assert.Equal(t, 1.0, m[1][2])
}

func TestBuild_UndefinedStation(t *testing.T) {
	index := core.NodeIndex{"A": 1}

	tests := []struct {
		name string
		edge core.Edge
		want string
	}{
		{name: "unknown target", edge: core.Edge{From: "A", To: "Z", Probability: 0.5}, want: "Z"},
		{name: "unknown source", edge: core.Edge{From: "Y", To: "A", Probability: 0.5}, want: "Y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Build(class1, []core.Edge{tt.edge}, index, 1)
			assert.Nil(t, m)

			var undef *core.UndefinedStationError
			require.True(t, errors.As(err, &undef))
			assert.Equal(t, tt.want, undef.Name)
			assert.Equal(t, class1, undef.Class)
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	m, err := Build(class1, nil, core.NodeIndex{}, 0)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestExitProbabilities(t *testing.T) {
	exit := ExitProbabilities([][]float64{{0, 0.8}, {0, 0}})
	require.Len(t, exit, 2)
	assert.InDelta(t, 0.2, exit[0], 1e-12)
	assert.InDelta(t, 1.0, exit[1], 1e-12)

	assert.Empty(t, ExitProbabilities(nil))
}

func TestBuild_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	names := []string{"A", "B", "C", "D", "E"}
	index := core.NodeIndex{"A": 1, "B": 2, "C": 3, "D": 4, "E": 5}

	genEdge := gopter.CombineGens(
		gen.IntRange(0, len(names)-1),
		gen.IntRange(0, len(names)-1),
		gen.Float64Range(0, 1),
	).Map(func(v []interface{}) core.Edge {
		return core.Edge{From: names[v[0].(int)], To: names[v[1].(int)], Probability: v[2].(float64)}
	})

	properties.Property("matrix is always N×N and non-negative", prop.ForAll(
		func(edges []core.Edge) bool {
			m, err := Build(class1, edges, index, len(names))
			if err != nil || len(m) != len(names) {
				return false
			}
			for _, row := range m {
				if len(row) != len(names) {
					return false
				}
				for _, v := range row {
					if v < 0 {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(genEdge),
	))

	properties.Property("entry equals the sum of matching edge weights", prop.ForAll(
		func(edges []core.Edge) bool {
			m, err := Build(class1, edges, index, len(names))
			if err != nil {
				return false
			}
			want := make([][]float64, len(names))
			for i := range want {
				want[i] = make([]float64, len(names))
			}
			for _, e := range edges {
				want[index[e.From]-1][index[e.To]-1] += e.Probability
			}
			for i := range want {
				for j := range want[i] {
					d := want[i][j] - m[i][j]
					if d > 1e-9 || d < -1e-9 {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(genEdge),
	))

	properties.TestingRun(t)
}
