// Package layout places graph nodes into 2-D space, once per loaded
// model. Placement is tiered by connectivity: hubs cluster near the
// center, connected nodes ring them, isolated nodes scatter across the
// whole canvas. A seeded random source makes the result reproducible.
package layout

import (
	"math"
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"graphlens/domain/graph"
	pkgerrors "graphlens/pkg/errors"
)

const (
	// MinNodeDistance is the occupancy grid cell size in canvas units.
	MinNodeDistance = 80.0

	// MaxPlacementAttempts bounds resampling for a collision-free cell.
	// When the budget runs out the node keeps its last sample anyway:
	// degradation over deadlock.
	MaxPlacementAttempts = 100

	// CanvasMargin keeps every node inside the visible canvas edge.
	CanvasMargin = 50.0

	highDegreeThreshold = 3
)

// PositionedNode is a node with its computed canvas position. Positions
// are computed exactly once per model and are read-only afterward.
type PositionedNode struct {
	graph.Node
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// tier is the connectivity bucket driving placement radius.
type tier int

const (
	tierHigh tier = iota
	tierMedium
	tierIsolated
)

// Compute places every node on a width x height canvas. The same seed
// and the same graph always produce the same positions. Edges with an
// endpoint missing from nodes contribute nothing to connectivity.
func Compute(nodes []graph.Node, edges []graph.Edge, width, height float64, seed int64, logger *zap.Logger) []PositionedNode {
	if logger == nil {
		logger = zap.NewNop()
	}

	present := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		present[n.ID] = true
	}

	degree := make(map[string]int, len(nodes))
	for _, e := range edges {
		if !present[e.Source] || !present[e.Target] {
			continue
		}
		degree[e.Source]++
		degree[e.Target]++
	}

	// Hubs are placed first so they win the contested center cells.
	// The sort is stable: equal degrees keep the model's load order,
	// which keeps placement deterministic.
	ordered := make([]graph.Node, len(nodes))
	copy(ordered, nodes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return degree[ordered[i].ID] > degree[ordered[j].ID]
	})

	rng := rand.New(rand.NewSource(seed))
	grid := newOccupancyGrid(MinNodeDistance)
	bound := math.Min(width, height)
	cx, cy := width/2, height/2

	positioned := make([]PositionedNode, 0, len(ordered))
	exhausted := 0

	for _, n := range ordered {
		t := tierFor(degree[n.ID])

		var x, y float64
		placed := false
		for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
			x, y = sample(rng, t, cx, cy, bound, width, height)
			x = clamp(x, CanvasMargin, width-CanvasMargin)
			y = clamp(y, CanvasMargin, height-CanvasMargin)
			if grid.Free(x, y) {
				placed = true
				break
			}
		}

		if !placed {
			// Accept an arbitrary uniform position rather than loop
			// unboundedly on a crowded canvas.
			x = clamp(CanvasMargin+rng.Float64()*(width-2*CanvasMargin), CanvasMargin, width-CanvasMargin)
			y = clamp(CanvasMargin+rng.Float64()*(height-2*CanvasMargin), CanvasMargin, height-CanvasMargin)
			exhausted++
			logger.Warn("Placement attempts exhausted, accepting fallback position",
				zap.Error(pkgerrors.NewLayoutExhaustedError(n.ID, MaxPlacementAttempts)),
			)
		}

		grid.Claim(x, y)
		positioned = append(positioned, PositionedNode{Node: n, X: x, Y: y})
	}

	logger.Info("Layout computed",
		zap.Int("nodes", len(positioned)),
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Int64("seed", seed),
		zap.Int("fallback_positions", exhausted),
	)

	return positioned
}

func tierFor(deg int) tier {
	switch {
	case deg >= highDegreeThreshold:
		return tierHigh
	case deg >= 1:
		return tierMedium
	default:
		return tierIsolated
	}
}

// sample draws one candidate position for a node in the given tier.
func sample(rng *rand.Rand, t tier, cx, cy, bound, width, height float64) (float64, float64) {
	switch t {
	case tierHigh:
		// Uniform over a disk of radius 0.2*bound around the center.
		r := 0.2 * bound * math.Sqrt(rng.Float64())
		theta := rng.Float64() * 2 * math.Pi
		return cx + r*math.Cos(theta), cy + r*math.Sin(theta)
	case tierMedium:
		// Uniform over the annulus between 0.25*bound and 0.4*bound.
		inner, outer := 0.25*bound, 0.4*bound
		r := math.Sqrt(inner*inner + (outer*outer-inner*inner)*rng.Float64())
		theta := rng.Float64() * 2 * math.Pi
		return cx + r*math.Cos(theta), cy + r*math.Sin(theta)
	default:
		// Isolated nodes go anywhere on the padded canvas.
		x := CanvasMargin + rng.Float64()*(width-2*CanvasMargin)
		y := CanvasMargin + rng.Float64()*(height-2*CanvasMargin)
		return x, y
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
