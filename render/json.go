package render

import (
	"encoding/json"

	"github.com/katalvlaran/sortnet/network"
)

// document is the JSON form written by JSON.
type document struct {
	Title  string          `json:"title,omitempty"`
	N      int             `json:"n"`
	Size   int             `json:"size"`
	Depth  int             `json:"depth"`
	Layers []network.Layer `json:"layers"`
}

// JSON returns an indented document with the statistics and layers of nw.
// Comparators appear as {"A":a,"B":b} objects.
func JSON(nw *network.Network, opts Options) ([]byte, error) {
	doc := document{
		Title:  opts.Title,
		N:      nw.N(),
		Size:   nw.Size(),
		Depth:  nw.Depth(),
		Layers: nw.Layers(),
	}
	if doc.Layers == nil {
		doc.Layers = []network.Layer{}
	}

	return json.MarshalIndent(doc, "", "  ")
}
