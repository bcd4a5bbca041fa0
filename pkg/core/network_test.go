package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassKey(t *testing.T) {
	k := ClassKeyFor(3)
	assert.Equal(t, ClassKey("Class 3"), k)

	id, ok := k.ID()
	require.True(t, ok)
	assert.Equal(t, 3, id)

	_, ok = ClassKey("Customers").ID()
	assert.False(t, ok)
}

func TestSortClassKeys(t *testing.T) {
	keys := []ClassKey{"Class 10", "zeta", "Class 2", "Class 0", "alpha"}
	SortClassKeys(keys)
	assert.Equal(t, []ClassKey{"Class 0", "Class 2", "Class 10", "alpha", "zeta"}, keys)
}

func TestDistribution_JSON(t *testing.T) {
	data, err := json.Marshal([]Distribution{NewDistribution("Exponential", 2), NoArrivals})
	require.NoError(t, err)
	assert.JSONEq(t, `[["Exponential", 2.0], "NoArrivals"]`, string(data))
}

func TestDistribution_Immutable(t *testing.T) {
	params := []float64{1, 2}
	d := NewDistribution("Uniform", params...)
	params[0] = 99

	got := d.Params()
	assert.Equal(t, []float64{1, 2}, got)

	got[1] = 42
	assert.Equal(t, []float64{1, 2}, d.Params())
}

func TestDistribution_String(t *testing.T) {
	assert.Equal(t, "NoArrivals", NoArrivals.String())
	assert.Equal(t, "Triangular 0.5 1 2.25", NewDistribution("Triangular", 0.5, 1, 2.25).String())
	assert.True(t, NewDistribution(NoArrivalsName).IsNoArrivals())
}

func TestParseCapacity(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    Capacity
		wantErr bool
	}{
		{name: "int", in: 10, want: Limited(10)},
		{name: "integral float", in: 5.0, want: Limited(5)},
		{name: "fractional float", in: 5.5, wantErr: true},
		{name: "Inf", in: "Inf", want: Unbounded()},
		{name: "unbounded", in: "unbounded", want: Unbounded()},
		{name: "nil", in: nil, want: Unbounded()},
		{name: "bad string", in: "lots", wantErr: true},
		{name: "bool", in: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCapacity(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCapacity_JSON(t *testing.T) {
	data, err := json.Marshal([]Capacity{Limited(10), Unbounded(), Limited(0)})
	require.NoError(t, err)
	assert.JSONEq(t, `[10, "Inf", 0]`, string(data))
}

func TestNetworkParams_Classes(t *testing.T) {
	p := &NetworkParams{
		ArrivalDistributions: map[ClassKey][]Distribution{"Class 2": nil},
		ServiceDistributions: map[ClassKey][]Distribution{"Class 2": nil, "Class 1": nil},
		TransitionMatrices:   map[ClassKey][][]float64{"Class 1": nil},
	}
	assert.Equal(t, []ClassKey{"Class 1", "Class 2"}, p.Classes())
}

func TestErrorMessages(t *testing.T) {
	err := &ProbabilityOverflowError{Station: "A", Class: "Class 1", Total: 1.5}
	assert.Contains(t, err.Error(), "A")
	assert.Contains(t, err.Error(), "Class 1")

	dup := &DuplicateStationNameError{Name: "A", First: 1, Node: 3}
	assert.Contains(t, dup.Error(), `"A"`)

	undef := &UndefinedStationError{Name: "Z", From: "A", Class: "Class 1"}
	assert.Contains(t, undef.Error(), `"Z"`)

	invalid := &InvalidProbabilityError{Station: "A", Class: "Class 1", Target: "B", Prob: -0.5}
	assert.Equal(t, `routing probability to "B" must be between 0 and 1, got -0.5 (issue in node: A, Class 1)`, invalid.Error())
}
