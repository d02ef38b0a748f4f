package courier

import (
	"math"

	"github.com/parcelrun/courier/colors"
	"github.com/parcelrun/courier/geom"
)

// Triangle is a single face of a Mesh. A, B and C index the Mesh's Positions; each Triangle is flat-shaded with its own Color.
type Triangle struct {
	A, B, C int
	Color   colors.Color
}

// Mesh is a triangle soup in model space, as loaded from a glTF file or generated procedurally.
type Mesh struct {
	Name       string
	Positions  []geom.Vector
	Triangles  []Triangle
	Dimensions geom.AABB // The model-space bounding box of every position in the Mesh
}

// NewMesh returns a new, empty Mesh. If you provide positions, the number must be divisible by 3, and each consecutive three
// form a triangle colored with White; otherwise NewMesh will panic.
func NewMesh(name string, positions ...geom.Vector) *Mesh {

	mesh := &Mesh{
		Name:       name,
		Dimensions: geom.NewEmptyAABB(),
	}

	if len(positions)%3 != 0 {
		panic("Error: NewMesh() has not been given a correct number of positions to constitute triangles (it needs to be divisible by 3).")
	}

	if len(positions) > 0 {
		start := mesh.AddPositions(positions...)
		for i := 0; i < len(positions); i += 3 {
			mesh.AddTriangles(colors.White(), start+i, start+i+1, start+i+2)
		}
	}

	return mesh

}

// Clone returns a deep copy of the Mesh.
func (mesh *Mesh) Clone() *Mesh {
	newMesh := &Mesh{
		Name:       mesh.Name,
		Positions:  append([]geom.Vector(nil), mesh.Positions...),
		Triangles:  append([]Triangle(nil), mesh.Triangles...),
		Dimensions: mesh.Dimensions,
	}
	return newMesh
}

// AddPositions appends vertex positions to the Mesh and returns the index of the first one added.
func (mesh *Mesh) AddPositions(positions ...geom.Vector) int {
	start := len(mesh.Positions)
	mesh.Positions = append(mesh.Positions, positions...)
	for _, p := range positions {
		mesh.Dimensions = mesh.Dimensions.Expand(p)
	}
	return start
}

// AddTriangles adds triangles of the color given, built from consecutive triples of position indices. You must provide a number of
// indices divisible by 3, each of which must refer to an existing position, or AddTriangles will panic.
func (mesh *Mesh) AddTriangles(color colors.Color, indices ...int) {

	if len(indices) == 0 || len(indices)%3 != 0 {
		panic("Error: AddTriangles() has not been given a correct number of indices to constitute triangles (it needs to be greater than 0 and divisible by 3).")
	}

	for _, index := range indices {
		if index < 0 || index >= len(mesh.Positions) {
			panic("Error: AddTriangles() has been given an index outside of the Mesh's positions.")
		}
	}

	for i := 0; i < len(indices); i += 3 {
		mesh.Triangles = append(mesh.Triangles, Triangle{A: indices[i], B: indices[i+1], C: indices[i+2], Color: color})
	}

}

// AddMesh appends every triangle of other, transformed by the matrix given, to the Mesh.
func (mesh *Mesh) AddMesh(other *Mesh, matrix geom.Matrix4) {

	offset := len(mesh.Positions)

	for _, p := range other.Positions {
		mesh.AddPositions(matrix.MultVec(p))
	}

	for _, tri := range other.Triangles {
		mesh.Triangles = append(mesh.Triangles, Triangle{A: tri.A + offset, B: tri.B + offset, C: tri.C + offset, Color: tri.Color})
	}

}

// SetColor sets the color of every triangle in the Mesh.
func (mesh *Mesh) SetColor(color colors.Color) {
	for i := range mesh.Triangles {
		mesh.Triangles[i].Color = color
	}
}

// ApplyMatrix applies the Matrix provided to all positions of the Mesh. You can use this to, for example, move all vertices of a Mesh
// up so that it rests on its origin ( mesh.ApplyMatrix(geom.NewMatrix4Translate(0, 1, 0)) ).
func (mesh *Mesh) ApplyMatrix(matrix geom.Matrix4) {
	for i, p := range mesh.Positions {
		mesh.Positions[i] = matrix.MultVec(p)
	}
	mesh.UpdateBounds()
}

// UpdateBounds updates the Mesh's dimensions; call this after manually changing vertex positions.
func (mesh *Mesh) UpdateBounds() {
	mesh.Dimensions = geom.NewEmptyAABB()
	for _, p := range mesh.Positions {
		mesh.Dimensions = mesh.Dimensions.Expand(p)
	}
}

// Normal returns the face normal of the triangle, following counter-clockwise winding.
func (mesh *Mesh) Normal(tri Triangle) geom.Vector {
	a := mesh.Positions[tri.A]
	return mesh.Positions[tri.B].Sub(a).Cross(mesh.Positions[tri.C].Sub(a)).Unit()
}

// NewBoxMesh creates a box Mesh of the size given, centered on the origin, with every face in the color provided.
func NewBoxMesh(name string, size geom.Vector, color colors.Color) *Mesh {

	mesh := NewMesh(name)

	h := size.Scale(0.5)

	mesh.AddPositions(
		geom.NewVector(-h.X, -h.Y, -h.Z),
		geom.NewVector(h.X, -h.Y, -h.Z),
		geom.NewVector(h.X, h.Y, -h.Z),
		geom.NewVector(-h.X, h.Y, -h.Z),
		geom.NewVector(-h.X, -h.Y, h.Z),
		geom.NewVector(h.X, -h.Y, h.Z),
		geom.NewVector(h.X, h.Y, h.Z),
		geom.NewVector(-h.X, h.Y, h.Z),
	)

	mesh.AddTriangles(color,
		// Top
		3, 7, 6, 3, 6, 2,
		// Bottom
		0, 1, 5, 0, 5, 4,
		// Front
		4, 5, 6, 4, 6, 7,
		// Back
		1, 0, 3, 1, 3, 2,
		// Right
		5, 1, 2, 5, 2, 6,
		// Left
		0, 4, 7, 0, 7, 3,
	)

	return mesh

}

// NewPlaneMesh creates a flat Mesh lying on the XZ plane, facing up, with the width (X) and depth (Z) given.
func NewPlaneMesh(name string, width, depth float64, color colors.Color) *Mesh {

	mesh := NewMesh(name)

	w := width / 2
	d := depth / 2

	mesh.AddPositions(
		geom.NewVector(w, 0, -d),
		geom.NewVector(-w, 0, -d),
		geom.NewVector(w, 0, d),
		geom.NewVector(-w, 0, d),
	)

	mesh.AddTriangles(color, 0, 1, 3, 0, 3, 2)

	return mesh

}

// NewDiscMesh creates a flat, upward-facing disc of the radius given on the XZ plane, split into the number of segments provided
// (at least 3).
func NewDiscMesh(name string, radius float64, segments int, color colors.Color) *Mesh {

	if segments < 3 {
		segments = 3
	}

	mesh := NewMesh(name)

	center := mesh.AddPositions(geom.Vector{})

	for i := 0; i < segments; i++ {
		angle := float64(i) / float64(segments) * math.Pi * 2
		mesh.AddPositions(geom.NewVector(math.Cos(angle)*radius, 0, math.Sin(angle)*radius))
	}

	for i := 0; i < segments; i++ {
		a := center + 1 + i
		b := center + 1 + (i+1)%segments
		mesh.AddTriangles(color, center, b, a)
	}

	return mesh

}
