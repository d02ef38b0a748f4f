package courier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridBoundaryIsClosedRoadLoop(t *testing.T) {

	grid := Grid{HalfSize: 8, TileSize: 6}
	rng := NewRand("boundary")
	chances := Chances{TSplit: 0.2, Crossing: 0.1, Plaza: 0.2}

	corners := map[[2]int]float64{}

	for i := -grid.HalfSize; i <= grid.HalfSize; i++ {
		for j := -grid.HalfSize; j <= grid.HalfSize; j++ {

			cell := grid.Classify(i, j, chances, rng)

			if !grid.IsBoundary(i, j) {
				assert.NotEqual(t, RoleCornerRoad, cell.Role, "(%d, %d)", i, j)
				assert.NotEqual(t, RoleEdgeRoad, cell.Role, "(%d, %d)", i, j)
				continue
			}

			require.True(t, cell.Role.IsRoad(), "boundary cell (%d, %d) must be road, got %s", i, j, cell.Role)

			if cell.Role == RoleCornerRoad {
				corners[[2]int{i, j}] = cell.Rotation
			} else {
				assert.Equal(t, RoleEdgeRoad, cell.Role)
			}

		}
	}

	g := grid.HalfSize
	assert.Equal(t, map[[2]int]float64{
		{-g, -g}: 0,
		{g, -g}:  -math.Pi / 2,
		{g, g}:   math.Pi,
		{-g, g}:  math.Pi / 2,
	}, corners)

}

func TestGridEdgeRotationsFaceInwards(t *testing.T) {

	grid := Grid{HalfSize: 8, TileSize: 6}
	rng := NewRand("edges")

	tests := []struct {
		i, j int
		want float64
	}{
		{0, -8, -math.Pi / 2},
		{3, 8, math.Pi / 2},
		{-8, 5, 0},
		{8, -1, math.Pi},
	}

	for _, tt := range tests {
		cell := grid.Classify(tt.i, tt.j, Chances{}, rng)
		assert.Equal(t, RoleEdgeRoad, cell.Role)
		assert.InDelta(t, tt.want, cell.Rotation, 1e-12, "(%d, %d)", tt.i, tt.j)
	}

}

func TestGridInteriorParity(t *testing.T) {

	grid := Grid{HalfSize: 8, TileSize: 6}
	rng := NewRand("parity")

	// With no chances, every tie goes to the plain variant.
	never := Chances{}

	assert.Equal(t, RoleJunction, grid.Classify(2, -4, never, rng).Role)
	assert.Equal(t, RoleJunction, grid.Classify(0, 0, never, rng).Role)

	straight := grid.Classify(2, -3, never, rng)
	assert.Equal(t, RoleStraightRoad, straight.Role)
	assert.Equal(t, 0.0, straight.Rotation)

	crossStreet := grid.Classify(-3, 4, never, rng)
	assert.Equal(t, RoleStraightRoad, crossStreet.Role)
	assert.InDelta(t, math.Pi/2, crossStreet.Rotation, 1e-12)

	assert.Equal(t, RoleBuilding, grid.Classify(-7, 5, never, rng).Role)

	// With certain chances, the first variant always wins.
	always := Chances{TSplit: 1, Crossing: 1, Plaza: 1}
	assert.Equal(t, RoleTSplit, grid.Classify(4, 1, always, rng).Role)
	assert.Equal(t, RolePlaza, grid.Classify(1, 1, always, rng).Role)
	assert.Equal(t, RoleCrossing, grid.Classify(4, 1, Chances{Crossing: 1}, rng).Role)

}

func TestGridCellWorldRoundTrip(t *testing.T) {

	grid := Grid{HalfSize: 8, TileSize: 6}

	for i := -grid.HalfSize; i <= grid.HalfSize; i++ {
		for j := -grid.HalfSize; j <= grid.HalfSize; j++ {
			gotI, gotJ := grid.WorldToCell(grid.CellToWorld(i, j))
			require.Equal(t, [2]int{i, j}, [2]int{gotI, gotJ})
			require.True(t, grid.InBounds(gotI, gotJ))
		}
	}

	assert.False(t, grid.InBounds(9, 0))

}
