package layout

import "math"

// cellKey addresses one cell of the occupancy grid.
type cellKey struct {
	col, row int
}

// occupancyGrid is a spatial hash used to keep nodes at least one cell
// apart during placement. Cell size equals the minimum inter-node
// distance, so two nodes in distinct cells never overlap badly.
type occupancyGrid struct {
	cellSize float64
	occupied map[cellKey]bool
}

func newOccupancyGrid(cellSize float64) *occupancyGrid {
	return &occupancyGrid{
		cellSize: cellSize,
		occupied: make(map[cellKey]bool),
	}
}

func (g *occupancyGrid) keyFor(x, y float64) cellKey {
	return cellKey{
		col: int(math.Floor(x / g.cellSize)),
		row: int(math.Floor(y / g.cellSize)),
	}
}

// Free reports whether the cell containing (x, y) is unoccupied.
func (g *occupancyGrid) Free(x, y float64) bool {
	return !g.occupied[g.keyFor(x, y)]
}

// Claim marks the cell containing (x, y) as occupied.
func (g *occupancyGrid) Claim(x, y float64) {
	g.occupied[g.keyFor(x, y)] = true
}
