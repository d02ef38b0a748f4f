package courier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parcelrun/courier/colors"
	"github.com/parcelrun/courier/geom"
)

func TestBoxMeshFacesOutwards(t *testing.T) {

	box := NewBoxMesh("box", geom.NewVector(2, 4, 6), colors.Gray())

	require.Len(t, box.Positions, 8)
	require.Len(t, box.Triangles, 12)
	assert.Equal(t, geom.NewAABB(geom.NewVector(-1, -2, -3), geom.NewVector(1, 2, 3)), box.Dimensions)

	for _, tri := range box.Triangles {
		center := box.Positions[tri.A].Add(box.Positions[tri.B]).Add(box.Positions[tri.C]).Scale(1.0 / 3)
		assert.Greater(t, box.Normal(tri).Dot(center), 0.0, "triangle %v faces inwards", tri)
	}

}

func TestFlatMeshesFaceUp(t *testing.T) {

	disc := NewDiscMesh("disc", 4, 16, colors.Red())
	assert.Len(t, disc.Triangles, 16)
	assert.Len(t, disc.Positions, 17)

	plane := NewPlaneMesh("plane", 10, 20, colors.Grass())
	assert.Equal(t, geom.NewVector(10, 0, 20), plane.Dimensions.Size())

	for _, mesh := range []*Mesh{disc, plane} {
		for _, tri := range mesh.Triangles {
			assert.True(t, geom.VecY.Equals(mesh.Normal(tri)), mesh.Name)
		}
	}

	assert.Len(t, NewDiscMesh("tiny", 1, 1, colors.Red()).Triangles, 3)

}

func TestMeshEditing(t *testing.T) {

	mesh := NewMesh("tri", geom.NewVector(0, 0, 0), geom.NewVector(1, 0, 0), geom.NewVector(0, 0, 1))
	require.Len(t, mesh.Triangles, 1)

	mesh.AddMesh(mesh.Clone(), geom.NewMatrix4Translate(0, 5, 0))
	assert.Len(t, mesh.Triangles, 2)
	assert.Equal(t, Triangle{A: 3, B: 4, C: 5, Color: colors.White()}, mesh.Triangles[1])
	assert.Equal(t, 5.0, mesh.Dimensions.Max.Y)

	mesh.ApplyMatrix(geom.NewMatrix4Translate(0, -5, 0))
	assert.Equal(t, -5.0, mesh.Dimensions.Min.Y)

	mesh.SetColor(colors.Red())
	for _, tri := range mesh.Triangles {
		assert.Equal(t, colors.Red(), tri.Color)
	}

	assert.Panics(t, func() { NewMesh("bad", geom.Vector{}, geom.Vector{}) })
	assert.Panics(t, func() { mesh.AddTriangles(colors.Red(), 0, 1, 99) })

}
