package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"graphlens/domain/graph"
)

func hubGraph() ([]graph.Node, []graph.Edge) {
	nodes := []graph.Node{
		{ID: "HUB", Label: "HUB", Type: graph.TypePerson},
		{ID: "A", Label: "A", Type: graph.TypeOther},
		{ID: "B", Label: "B", Type: graph.TypeOther},
		{ID: "C", Label: "C", Type: graph.TypeOther},
		{ID: "LONER", Label: "LONER", Type: graph.TypeOther},
	}
	edges := []graph.Edge{
		{Source: "HUB", Target: "A"},
		{Source: "HUB", Target: "B"},
		{Source: "C", Target: "HUB"},
	}
	return nodes, edges
}

func TestComputeIsDeterministicForFixedSeed(t *testing.T) {
	nodes, edges := hubGraph()

	first := Compute(nodes, edges, 1200, 800, 42, zap.NewNop())
	second := Compute(nodes, edges, 1200, 800, 42, zap.NewNop())

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].X, second[i].X)
		assert.Equal(t, first[i].Y, second[i].Y)
	}
}

func TestComputeDiffersAcrossSeeds(t *testing.T) {
	nodes, edges := hubGraph()

	a := Compute(nodes, edges, 1200, 800, 1, zap.NewNop())
	b := Compute(nodes, edges, 1200, 800, 2, zap.NewNop())

	moved := false
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y {
			moved = true
			break
		}
	}
	assert.True(t, moved, "different seeds should produce different positions")
}

func TestComputeRespectsCanvasBounds(t *testing.T) {
	// Crowd a small canvas so the placement budget gets exercised too.
	var nodes []graph.Node
	for i := 0; i < 60; i++ {
		nodes = append(nodes, graph.Node{ID: fmt.Sprintf("N%02d", i)})
	}

	width, height := 400.0, 300.0
	positioned := Compute(nodes, nil, width, height, 7, zap.NewNop())

	require.Len(t, positioned, len(nodes))
	for _, p := range positioned {
		assert.GreaterOrEqual(t, p.X, CanvasMargin, "node %s x", p.ID)
		assert.LessOrEqual(t, p.X, width-CanvasMargin, "node %s x", p.ID)
		assert.GreaterOrEqual(t, p.Y, CanvasMargin, "node %s y", p.ID)
		assert.LessOrEqual(t, p.Y, height-CanvasMargin, "node %s y", p.ID)
	}
}

func TestComputeTierRadii(t *testing.T) {
	nodes, edges := hubGraph()

	width, height := 1000.0, 1000.0
	bound := math.Min(width, height)
	cx, cy := width/2, height/2

	positioned := Compute(nodes, edges, width, height, 3, zap.NewNop())

	byID := make(map[string]PositionedNode)
	for _, p := range positioned {
		byID[p.ID] = p
	}

	distFromCenter := func(p PositionedNode) float64 {
		return math.Hypot(p.X-cx, p.Y-cy)
	}

	// Degree 3: inside the central disk.
	assert.LessOrEqual(t, distFromCenter(byID["HUB"]), 0.2*bound+1e-9)

	// Degree 1-2: inside the annulus.
	for _, id := range []string{"A", "B", "C"} {
		d := distFromCenter(byID[id])
		assert.GreaterOrEqual(t, d, 0.25*bound-1e-9, "node %s", id)
		assert.LessOrEqual(t, d, 0.4*bound+1e-9, "node %s", id)
	}
}

func TestComputeIgnoresDanglingEdgesForDegree(t *testing.T) {
	nodes := []graph.Node{
		{ID: "REAL"},
	}
	// Three edges to absent nodes must not promote REAL to the hub tier.
	edges := []graph.Edge{
		{Source: "REAL", Target: "GHOST1"},
		{Source: "REAL", Target: "GHOST2"},
		{Source: "GHOST3", Target: "REAL"},
	}

	width, height := 1000.0, 1000.0
	positioned := Compute(nodes, edges, width, height, 11, zap.NewNop())
	require.Len(t, positioned, 1)

	// With no resolved edges the node is isolated: the sample space is
	// the padded canvas, not the 200-unit central disk. Verify across
	// seeds that it escapes the disk at least once.
	escaped := false
	for seed := int64(0); seed < 10; seed++ {
		p := Compute(nodes, edges, width, height, seed, zap.NewNop())[0]
		if math.Hypot(p.X-width/2, p.Y-height/2) > 0.2*math.Min(width, height) {
			escaped = true
			break
		}
	}
	assert.True(t, escaped, "node with only dangling edges should place as isolated")
}

func TestComputeStableOrderOnDegreeTies(t *testing.T) {
	nodes := []graph.Node{
		{ID: "FIRST"},
		{ID: "SECOND"},
		{ID: "THIRD"},
	}

	positioned := Compute(nodes, nil, 800, 600, 5, zap.NewNop())

	require.Len(t, positioned, 3)
	assert.Equal(t, "FIRST", positioned[0].ID)
	assert.Equal(t, "SECOND", positioned[1].ID)
	assert.Equal(t, "THIRD", positioned[2].ID)
}
