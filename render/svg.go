package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/sortnet/network"
)

// SVG renders DOT(nw, opts) to SVG with Graphviz.
func SVG(ctx context.Context, nw *network.Network, opts Options) ([]byte, error) {
	return RenderDOT(ctx, DOT(nw, opts))
}

// RenderDOT renders Graphviz source to SVG.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
