package network

import (
	"encoding/json"
	"fmt"
)

// wireNetwork is the JSON form: {"n":4,"layers":[[[0,1],[2,3]],[[0,2],[1,3]]]}.
type wireNetwork struct {
	N      int        `json:"n"`
	Layers [][][2]int `json:"layers"`
}

// MarshalJSON encodes the network as its size and layers of [A,B] pairs.
func (nw *Network) MarshalJSON() ([]byte, error) {
	w := wireNetwork{N: nw.n, Layers: make([][][2]int, len(nw.layers))}
	for i, layer := range nw.layers {
		pairs := make([][2]int, len(layer))
		for j, c := range layer {
			pairs[j] = [2]int{c.A, c.B}
		}
		w.Layers[i] = pairs
	}

	return json.Marshal(w)
}

// UnmarshalJSON decodes the form written by MarshalJSON and validates it
// with the same rules as New.
func (nw *Network) UnmarshalJSON(data []byte) error {
	var w wireNetwork
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%s: %w", methodUnmarshal, err)
	}
	layers := make([]Layer, len(w.Layers))
	for i, pairs := range w.Layers {
		layer := make(Layer, len(pairs))
		for j, p := range pairs {
			layer[j] = Comparator{A: p[0], B: p[1]}
		}
		layers[i] = layer
	}
	decoded, err := New(w.N, layers)
	if err != nil {
		return fmt.Errorf("%s: %w", methodUnmarshal, err)
	}
	*nw = *decoded

	return nil
}
