package courier

import (
	"math"
	"math/rand/v2"

	"github.com/parcelrun/courier/geom"
)

// Grid is the square placement lattice under the city. Cells (i, j) run from -HalfSize to HalfSize on both axes, and each
// cell is a TileSize square centered on (i*TileSize, 0, j*TileSize).
type Grid struct {
	HalfSize int     `yaml:"half_size"`
	TileSize float64 `yaml:"tile_size"`
}

// Role is what a grid cell holds. Every cell has exactly one Role.
type Role int

const (
	RoleCornerRoad   Role = iota // One of the four corners of the boundary loop
	RoleEdgeRoad                 // The rest of the boundary loop; T-splits facing into the city
	RoleJunction                 // Interior crossing of two roads
	RoleTSplit                   // Interior road with a T-split
	RoleCrossing                 // Interior road with a pedestrian crossing and a speed bump
	RoleStraightRoad             // Plain interior road
	RoleBuilding                 // A building block
	RolePlaza                    // A paved plaza with a few decorations
)

func (role Role) String() string {
	switch role {
	case RoleCornerRoad:
		return "corner road"
	case RoleEdgeRoad:
		return "edge road"
	case RoleJunction:
		return "junction"
	case RoleTSplit:
		return "t-split"
	case RoleCrossing:
		return "crossing"
	case RoleStraightRoad:
		return "straight road"
	case RoleBuilding:
		return "building"
	case RolePlaza:
		return "plaza"
	}
	return "unknown"
}

// IsRoad returns if the Role is drivable road.
func (role Role) IsRoad() bool {
	return role <= RoleStraightRoad
}

// ModelName returns the name of the road model for road Roles, "base" for plazas, and an empty string for buildings,
// which pick their model at random.
func (role Role) ModelName() string {
	switch role {
	case RoleCornerRoad:
		return "road_corner"
	case RoleEdgeRoad, RoleTSplit:
		return "road_tsplit"
	case RoleJunction:
		return "road_junction"
	case RoleCrossing:
		return "road_straight_crossing"
	case RoleStraightRoad:
		return "road_straight"
	case RolePlaza:
		return "base"
	}
	return ""
}

// Cell is a classified grid cell. Rotation is the yaw, in radians, its model is placed with.
type Cell struct {
	I, J     int
	Role     Role
	Rotation float64
}

// Chances are the probabilities used to break ties between cell variants.
type Chances struct {
	TSplit   float64 // An interior road running along Z becomes a T-split
	Crossing float64 // Otherwise, it becomes a crossing
	Plaza    float64 // A block becomes a plaza instead of a building
}

// InBounds returns if (i, j) is a cell of the Grid.
func (grid Grid) InBounds(i, j int) bool {
	return i >= -grid.HalfSize && i <= grid.HalfSize && j >= -grid.HalfSize && j <= grid.HalfSize
}

// IsBoundary returns if (i, j) lies on the outer ring of the Grid.
func (grid Grid) IsBoundary(i, j int) bool {
	g := grid.HalfSize
	return i == -g || i == g || j == -g || j == g
}

// CellToWorld returns the world position of the center of cell (i, j).
func (grid Grid) CellToWorld(i, j int) geom.Vector {
	return geom.NewVector(float64(i)*grid.TileSize, 0, float64(j)*grid.TileSize)
}

// WorldToCell returns the cell whose center is closest to the world position given, ignoring height.
func (grid Grid) WorldToCell(position geom.Vector) (i, j int) {
	return int(math.Round(position.X / grid.TileSize)), int(math.Round(position.Z / grid.TileSize))
}

// Classify assigns the Role of cell (i, j). The boundary ring and the parity of interior cells decide the Role; rng only breaks
// ties between road variants and between buildings and plazas.
func (grid Grid) Classify(i, j int, chances Chances, rng *rand.Rand) Cell {

	g := grid.HalfSize
	cell := Cell{I: i, J: j}

	onX := i == -g || i == g
	onZ := j == -g || j == g

	switch {

	case onX && onZ:
		cell.Role = RoleCornerRoad
		switch {
		case i == -g && j == -g:
			cell.Rotation = 0
		case i == g && j == -g:
			cell.Rotation = -math.Pi / 2
		case i == g && j == g:
			cell.Rotation = math.Pi
		default:
			cell.Rotation = math.Pi / 2
		}

	// Edge T-splits face into the city
	case onZ:
		cell.Role = RoleEdgeRoad
		if j == -g {
			cell.Rotation = -math.Pi / 2
		} else {
			cell.Rotation = math.Pi / 2
		}

	case onX:
		cell.Role = RoleEdgeRoad
		if i == -g {
			cell.Rotation = 0
		} else {
			cell.Rotation = math.Pi
		}

	case i%2 == 0 && j%2 == 0:
		cell.Role = RoleJunction

	case i%2 == 0:
		switch {
		case rng.Float64() < chances.TSplit:
			cell.Role = RoleTSplit
		case rng.Float64() < chances.Crossing:
			cell.Role = RoleCrossing
		default:
			cell.Role = RoleStraightRoad
		}

	case j%2 == 0:
		cell.Role = RoleStraightRoad
		cell.Rotation = math.Pi / 2

	default:
		if rng.Float64() < chances.Plaza {
			cell.Role = RolePlaza
		} else {
			cell.Role = RoleBuilding
		}

	}

	return cell

}
