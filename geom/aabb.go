package geom

import "math"

// AABB represents an axis-aligned bounding box by its minimum and maximum corners.
type AABB struct {
	Min, Max Vector
}

// NewAABB returns an AABB spanning the two corners given, in any order.
func NewAABB(a, b Vector) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// NewAABBFromCenter returns an AABB centered on center, extending halfExtents along each axis.
func NewAABBFromCenter(center, halfExtents Vector) AABB {
	half := halfExtents.Abs()
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// NewEmptyAABB returns an inverted AABB that contains nothing; expanding it by any point yields a box around that point.
func NewEmptyAABB() AABB {
	return AABB{
		Min: Uniform(math.MaxFloat64),
		Max: Uniform(-math.MaxFloat64),
	}
}

// IsEmpty returns true if the AABB contains no points.
func (box AABB) IsEmpty() bool {
	return box.Min.X > box.Max.X || box.Min.Y > box.Max.Y || box.Min.Z > box.Max.Z
}

// Expand returns a copy of the AABB grown to contain the point given.
func (box AABB) Expand(point Vector) AABB {
	box.Min = box.Min.Min(point)
	box.Max = box.Max.Max(point)
	return box
}

// Union returns the smallest AABB containing both boxes.
func (box AABB) Union(other AABB) AABB {
	if other.IsEmpty() {
		return box
	}
	if box.IsEmpty() {
		return other
	}
	return AABB{Min: box.Min.Min(other.Min), Max: box.Max.Max(other.Max)}
}

// Center returns the center point of the AABB.
func (box AABB) Center() Vector {
	return box.Min.Add(box.Max).Scale(0.5)
}

// Size returns the width, height and depth of the AABB.
func (box AABB) Size() Vector {
	return box.Max.Sub(box.Min)
}

// HalfExtents returns half of the AABB's size.
func (box AABB) HalfExtents() Vector {
	return box.Size().Scale(0.5)
}

// Translated returns a copy of the AABB moved by the offset given.
func (box AABB) Translated(offset Vector) AABB {
	box.Min = box.Min.Add(offset)
	box.Max = box.Max.Add(offset)
	return box
}

// Transformed returns the axis-aligned box enclosing all eight corners of the AABB after being transformed by the Matrix4.
func (box AABB) Transformed(matrix Matrix4) AABB {
	if box.IsEmpty() {
		return box
	}
	out := NewEmptyAABB()
	for i := 0; i < 8; i++ {
		corner := box.Min
		if i&1 != 0 {
			corner.X = box.Max.X
		}
		if i&2 != 0 {
			corner.Y = box.Max.Y
		}
		if i&4 != 0 {
			corner.Z = box.Max.Z
		}
		out = out.Expand(matrix.MultVec(corner))
	}
	return out
}

// PointInside returns true if the point lies inside or on the surface of the AABB.
func (box AABB) PointInside(point Vector) bool {
	return point.X >= box.Min.X && point.X <= box.Max.X &&
		point.Y >= box.Min.Y && point.Y <= box.Max.Y &&
		point.Z >= box.Min.Z && point.Z <= box.Max.Z
}

// ClosestPoint returns the closest point, to the point given, on the inside or surface of the AABB.
func (box AABB) ClosestPoint(point Vector) Vector {
	return Vector{
		X: Clamp(point.X, box.Min.X, box.Max.X),
		Y: Clamp(point.Y, box.Min.Y, box.Max.Y),
		Z: Clamp(point.Z, box.Min.Z, box.Max.Z),
	}
}

// Overlaps returns true if the two boxes intersect with a positive volume; boxes that only touch do not overlap.
func (box AABB) Overlaps(other AABB) bool {
	return box.Min.X < other.Max.X && box.Max.X > other.Min.X &&
		box.Min.Y < other.Max.Y && box.Max.Y > other.Min.Y &&
		box.Min.Z < other.Max.Z && box.Max.Z > other.Min.Z
}

// Penetration returns the minimum translation that, added to the calling box, separates it from the other box.
// The returned normal is the unit axis of that translation and depth is its length. ok is false when the boxes don't overlap.
func (box AABB) Penetration(other AABB) (normal Vector, depth float64, ok bool) {

	if !box.Overlaps(other) {
		return Vector{}, 0, false
	}

	center := box.Center()
	otherCenter := other.Center()

	dx := math.Min(box.Max.X, other.Max.X) - math.Max(box.Min.X, other.Min.X)
	dy := math.Min(box.Max.Y, other.Max.Y) - math.Max(box.Min.Y, other.Min.Y)
	dz := math.Min(box.Max.Z, other.Max.Z) - math.Max(box.Min.Z, other.Min.Z)

	sign := func(a, b float64) float64 {
		if a < b {
			return -1
		}
		return 1
	}

	switch {
	case dy <= dx && dy <= dz:
		return Vector{Y: sign(center.Y, otherCenter.Y)}, dy, true
	case dx <= dz:
		return Vector{X: sign(center.X, otherCenter.X)}, dx, true
	default:
		return Vector{Z: sign(center.Z, otherCenter.Z)}, dz, true
	}

}
