package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"graphlens/domain/graph"
	"graphlens/engine/layout"
	"graphlens/engine/scene"
	"graphlens/engine/viewport"
)

func TestRenderFixtureScene(t *testing.T) {
	model := graph.Fixture()
	positioned := layout.Compute(model.Nodes(), model.ResolvedEdges(), 1200, 800, 42, zap.NewNop())
	s := scene.Build(positioned, model.ResolvedEdges(), false)

	vc := viewport.NewController()
	vc.PointerDown(0, 0)
	vc.PointerMove(25, -10)
	vc.SetScale(2)

	var buf bytes.Buffer
	err := Render(&buf, s, vc.Transform(), 1200, 800)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "translate(25.00,-10.00) scale(2.0000)")
	assert.Equal(t, model.NodeCount(), strings.Count(out, "<circle"))
	assert.Equal(t, 6, strings.Count(out, "<line"))
	assert.Contains(t, out, "ALEX CHEN")
}

func TestRenderNilScene(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, nil, viewport.Transform{Scale: 1}, 800, 600)
	assert.Error(t, err)
}
