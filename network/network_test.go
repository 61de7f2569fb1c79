package network_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/sortnet/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// c is a short constructor for comparators in table literals.
func c(a, b int) network.Comparator { return network.Comparator{A: a, B: b} }

// TestNew_Validation checks every rejection class of New.
func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		layers []network.Layer
		want   error
	}{
		{"zero size", 0, nil, network.ErrInvalidSize},
		{"negative size", -3, nil, network.ErrInvalidSize},
		{"index too high", 2, []network.Layer{{c(0, 2)}}, network.ErrIndexOutOfRange},
		{"negative index", 2, []network.Layer{{c(-1, 1)}}, network.ErrIndexOutOfRange},
		{"self comparator", 3, []network.Layer{{c(1, 1)}}, network.ErrSelfComparator},
		{"overlap", 4, []network.Layer{{c(0, 1), c(1, 2)}}, network.ErrLayerOverlap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := network.New(tt.n, tt.layers)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

// TestNew_DropsEmptyLayers ensures empty layers never reach the network.
func TestNew_DropsEmptyLayers(t *testing.T) {
	nw, err := network.New(4, []network.Layer{{}, {c(0, 1), c(2, 3)}, nil, {c(1, 2)}})
	require.NoError(t, err)
	assert.Equal(t, 2, nw.Depth())
	assert.Equal(t, 3, nw.Size())
	assert.Equal(t, 4, nw.N())

	single, err := network.New(1, []network.Layer{{}})
	require.NoError(t, err)
	assert.Zero(t, single.Depth(), "n=1 is the identity network")
}

// TestNew_CopiesInput verifies that mutating the caller's layers later does
// not change the network.
func TestNew_CopiesInput(t *testing.T) {
	layers := []network.Layer{{c(0, 1)}}
	nw, err := network.New(2, layers)
	require.NoError(t, err)

	layers[0][0] = c(1, 0)
	assert.Equal(t, c(0, 1), nw.Layer(0)[0])

	out := nw.Layers()
	out[0][0] = c(1, 0)
	assert.Equal(t, c(0, 1), nw.Comparators()[0])
}

// TestFromComparators_ASAP checks the layer placement of an insertion cascade:
// comparators sharing a position keep their order, independent ones are
// pulled into earlier layers.
func TestFromComparators_ASAP(t *testing.T) {
	seq := []network.Comparator{c(0, 1), c(1, 2), c(0, 1), c(2, 3), c(1, 2), c(0, 1)}
	nw, err := network.FromComparators(4, seq)
	require.NoError(t, err)

	want := []network.Layer{
		{c(0, 1)},
		{c(1, 2)},
		{c(0, 1), c(2, 3)},
		{c(1, 2)},
		{c(0, 1)},
	}
	assert.Equal(t, want, nw.Layers())
	assert.Equal(t, len(seq), nw.Size())
	require.NoError(t, nw.Validate())
}

// TestFromComparators_Errors covers size and comparator validation.
func TestFromComparators_Errors(t *testing.T) {
	_, err := network.FromComparators(0, nil)
	require.ErrorIs(t, err, network.ErrInvalidSize)

	_, err = network.FromComparators(3, []network.Comparator{c(0, 1), c(2, 3)})
	require.ErrorIs(t, err, network.ErrIndexOutOfRange)

	_, err = network.FromComparators(3, []network.Comparator{c(2, 2)})
	require.ErrorIs(t, err, network.ErrSelfComparator)
}

// TestComparator_Helpers covers Lo/Hi/Descending/String.
func TestComparator_Helpers(t *testing.T) {
	d := c(5, 2)
	assert.Equal(t, 2, d.Lo())
	assert.Equal(t, 5, d.Hi())
	assert.True(t, d.Descending())
	assert.False(t, c(2, 5).Descending())
	assert.Equal(t, "(5,2)", d.String())
}

// TestNetwork_StringAndEqual checks the summary form and structural equality.
func TestNetwork_StringAndEqual(t *testing.T) {
	a, err := network.FromComparators(3, []network.Comparator{c(1, 2), c(0, 2), c(0, 1)})
	require.NoError(t, err)
	b, err := network.New(3, []network.Layer{{c(1, 2)}, {c(0, 2)}, {c(0, 1)}})
	require.NoError(t, err)

	assert.Equal(t, "n=3 size=3 depth=3 [(1,2)] [(0,2)] [(0,1)]", a.String())
	assert.True(t, a.Equal(b))

	other, err := network.New(3, []network.Layer{{c(0, 1)}, {c(1, 2)}, {c(0, 1)}})
	require.NoError(t, err)
	assert.False(t, a.Equal(other))
	assert.False(t, a.Equal(nil))
}

// TestNetwork_JSONRoundTrip checks the wire form and that decoding validates.
func TestNetwork_JSONRoundTrip(t *testing.T) {
	nw, err := network.New(4, []network.Layer{{c(0, 1), c(2, 3)}, {c(0, 2), c(1, 3)}, {c(1, 2)}})
	require.NoError(t, err)

	raw, err := json.Marshal(nw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":4,"layers":[[[0,1],[2,3]],[[0,2],[1,3]],[[1,2]]]}`, string(raw))

	var back network.Network
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, nw.Equal(&back))

	err = json.Unmarshal([]byte(`{"n":3,"layers":[[[0,1],[1,2]]]}`), &back)
	require.ErrorIs(t, err, network.ErrLayerOverlap)
}
