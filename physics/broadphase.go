package physics

import (
	"math"

	"github.com/parcelrun/courier/geom"
)

// Broadphase is a uniform grid over the XZ plane that buckets static colliders, so that a moving body only
// needs finer testing against the colliders sharing the cells its bounding box touches.
// Colliders are never removed; the grid only grows.
type Broadphase struct {
	CellSize float64
	cells    map[[2]int][]int

	// stamp-based dedupe for colliders spanning multiple cells
	stamps []uint32
	stamp  uint32
}

// NewBroadphase returns a new Broadphase using cells of the size given (in world units).
func NewBroadphase(cellSize float64) *Broadphase {
	if cellSize <= 0 {
		cellSize = 8
	}
	return &Broadphase{
		CellSize: cellSize,
		cells:    map[[2]int][]int{},
	}
}

func (b *Broadphase) cellRange(box geom.AABB) (minX, minZ, maxX, maxZ int) {
	minX = int(math.Floor(box.Min.X / b.CellSize))
	minZ = int(math.Floor(box.Min.Z / b.CellSize))
	maxX = int(math.Floor(box.Max.X / b.CellSize))
	maxZ = int(math.Floor(box.Max.Z / b.CellSize))
	return
}

// Insert adds the collider index to every cell the box covers.
func (b *Broadphase) Insert(index int, box geom.AABB) {
	minX, minZ, maxX, maxZ := b.cellRange(box)
	for x := minX; x <= maxX; x++ {
		for z := minZ; z <= maxZ; z++ {
			key := [2]int{x, z}
			b.cells[key] = append(b.cells[key], index)
		}
	}
	for len(b.stamps) <= index {
		b.stamps = append(b.stamps, 0)
	}
}

// ForEachCandidate calls forEach once for every collider index sharing a cell with the box given.
// If forEach returns false, iteration stops.
func (b *Broadphase) ForEachCandidate(box geom.AABB, forEach func(index int) bool) {

	b.stamp++
	if b.stamp == 0 {
		for i := range b.stamps {
			b.stamps[i] = 0
		}
		b.stamp = 1
	}

	minX, minZ, maxX, maxZ := b.cellRange(box)
	for x := minX; x <= maxX; x++ {
		for z := minZ; z <= maxZ; z++ {
			for _, index := range b.cells[[2]int{x, z}] {
				if b.stamps[index] == b.stamp {
					continue
				}
				b.stamps[index] = b.stamp
				if !forEach(index) {
					return
				}
			}
		}
	}

}

// CellCount returns how many grid cells hold at least one collider.
func (b *Broadphase) CellCount() int {
	return len(b.cells)
}
