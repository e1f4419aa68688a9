package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"graphlens/domain/graph"
)

func newFixtureEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(Options{Width: 1200, Height: 800, Seed: 42}, zap.NewNop())
	e.Load(graph.Fixture())
	return e
}

func TestDrawBeforeLoadFails(t *testing.T) {
	e := New(Options{Width: 800, Height: 600}, zap.NewNop())

	_, err := e.Draw()
	assert.Error(t, err)
}

func TestSearchBeforeDrawFails(t *testing.T) {
	e := newFixtureEngine(t)

	_, err := e.Search("alex")
	assert.Error(t, err)
}

func TestLayoutRunsExactlyOncePerModel(t *testing.T) {
	e := newFixtureEngine(t)

	s1, err := e.Draw()
	require.NoError(t, err)
	first := e.Positions()

	// Unrelated state changes must not recompute the layout.
	_, err = e.Search("alex")
	require.NoError(t, err)
	e.SetTheme(true)
	e.Viewport().PointerDown(0, 0)
	e.Viewport().PointerMove(40, 40)

	s2, err := e.Draw()
	require.NoError(t, err)
	assert.Same(t, s1, s2, "repeat Draw must return the committed scene")

	second := e.Positions()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].X, second[i].X)
		assert.Equal(t, first[i].Y, second[i].Y)
	}
}

func TestReloadInvalidatesDerivedState(t *testing.T) {
	e := newFixtureEngine(t)

	_, err := e.Draw()
	require.NoError(t, err)
	_, err = e.Search("alex")
	require.NoError(t, err)
	e.Viewport().PointerDown(0, 0)
	e.Viewport().PointerMove(100, 50)

	e.Load(graph.Fixture())

	assert.Nil(t, e.Scene())
	assert.Empty(t, e.Positions())
	tr := e.Viewport().Transform()
	assert.Equal(t, 0.0, tr.PanX)
	assert.Equal(t, 1.0, tr.Scale)

	// The new model draws fresh.
	_, err = e.Draw()
	require.NoError(t, err)
}

func TestSearchThenClearRestoresScene(t *testing.T) {
	e := newFixtureEngine(t)
	s, err := e.Draw()
	require.NoError(t, err)

	state, err := e.Search("alex")
	require.NoError(t, err)
	assert.Len(t, state.VisibleIDs, 3)

	_, err = e.Search("")
	require.NoError(t, err)
	for _, n := range s.Nodes {
		assert.Equal(t, 1.0, n.Opacity)
	}
}

func TestThemeToggleKeepsPositions(t *testing.T) {
	e := newFixtureEngine(t)
	s, err := e.Draw()
	require.NoError(t, err)

	before := make(map[string][2]float64)
	for _, n := range s.Nodes {
		before[n.ID] = [2]float64{n.X, n.Y}
	}

	e.SetTheme(true)
	e.SetTheme(false)
	e.SetTheme(true)

	assert.True(t, s.Dark())
	for _, n := range s.Nodes {
		assert.Equal(t, before[n.ID][0], n.X)
		assert.Equal(t, before[n.ID][1], n.Y)
	}
}

func TestThemeBeforeDrawIsRemembered(t *testing.T) {
	e := New(Options{Width: 800, Height: 600, Seed: 1, Dark: false}, zap.NewNop())
	e.Load(graph.Fixture())

	e.SetTheme(true)
	s, err := e.Draw()
	require.NoError(t, err)
	assert.True(t, s.Dark())
}
