package courier

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parcelrun/courier/colors"
	"github.com/parcelrun/courier/geom"
)

func TestLoadGLTFFileAppliesNodeTransforms(t *testing.T) {

	model, err := LoadGLTFFile("testdata/triangle.gltf", "triangle")
	require.NoError(t, err)

	assert.Equal(t, "triangle", model.Name)
	assert.Equal(t, "testdata/triangle.gltf", model.Source)
	require.Len(t, model.Mesh.Triangles, 1)
	require.Len(t, model.Mesh.Positions, 3)

	// The child node doubles the triangle; its parent lifts it by one.
	assert.True(t, geom.NewVector(0, 1, 0).Equals(model.Mesh.Positions[0]))
	assert.True(t, geom.NewVector(2, 1, 0).Equals(model.Mesh.Positions[1]))
	assert.True(t, geom.NewVector(0, 1, 2).Equals(model.Mesh.Positions[2]))

	bounds := model.Bounds()
	assert.True(t, geom.NewVector(0, 1, 0).Equals(bounds.Min))
	assert.True(t, geom.NewVector(2, 1, 2).Equals(bounds.Max))

	assert.Equal(t, colors.Red(), model.Mesh.Triangles[0].Color)

}

func TestLoadGLTFFileReadsExternalBuffers(t *testing.T) {

	model, err := LoadGLTFFile("testdata/quad.gltf", "quad")
	require.NoError(t, err)

	assert.Equal(t, "testdata/quad.gltf", model.Source)
	require.Len(t, model.Mesh.Triangles, 2)
	require.Len(t, model.Mesh.Positions, 4)
	assert.True(t, geom.NewVector(4, 0, 1).Equals(model.Mesh.Positions[2]))
	assert.Equal(t, colors.White(), model.Mesh.Triangles[0].Color)

	// Loaded from memory, there's no directory to find quad.bin in.
	data, err := os.ReadFile("testdata/quad.gltf")
	require.NoError(t, err)
	_, err = LoadGLTFData(data, "quad")
	assert.Error(t, err)

}

func TestLoadGLTFFileErrors(t *testing.T) {

	_, err := LoadGLTFFile("testdata/missing.gltf", "missing")
	assert.Error(t, err)

	_, err = LoadGLTFFile("testdata/broken.gltf", "broken")
	assert.Error(t, err)

	_, err = LoadGLTFFile("testdata/empty.gltf", "empty")
	assert.ErrorIs(t, err, ErrNoMeshes)

}

func BenchmarkLoadGLTFData(b *testing.B) {

	data, err := os.ReadFile("testdata/triangle.gltf")
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := LoadGLTFData(data, "triangle"); err != nil {
			b.Fatal(err)
		}
	}

}
