package render_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/sortnet/generate"
	"github.com/katalvlaran/sortnet/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz runtime start-up is slow")
	}
	nw, err := generate.BoseNelson(4)
	require.NoError(t, err)

	svg, err := render.SVG(context.Background(), nw, render.Options{Title: "bose-nelson 4"})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "(0,1)")
}

func TestRenderDOT_Invalid(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz runtime start-up is slow")
	}
	_, err := render.RenderDOT(context.Background(), "digraph {")
	require.Error(t, err)
}
