package courier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parcelrun/courier/colors"
)

func TestLoadModels(t *testing.T) {

	manifest := Manifest{
		Dir:     "testdata",
		Workers: 2,
		Models: map[string]ModelSpec{
			"triangle": {Path: "triangle.gltf"},
			"crate":    {Size: Vec3{1, 2, 3}, Color: colors.Red()},
			"gone":     {Path: "missing.gltf"},
			"flat":     {Size: Vec3{1, 0, 1}},
		},
	}

	lib, results, err := LoadModels(context.Background(), manifest, nil)
	require.NoError(t, err)

	require.Len(t, results, 4)
	names := []string{}
	for _, result := range results {
		names = append(names, result.Name)
	}
	assert.Equal(t, []string{"crate", "flat", "gone", "triangle"}, names)

	crate := results[0]
	assert.True(t, crate.OK())
	assert.True(t, crate.Procedural)
	assert.Equal(t, 12, crate.Triangles)

	assert.False(t, results[1].OK())
	assert.False(t, results[2].OK())
	assert.Equal(t, "testdata/missing.gltf", results[2].Path)

	triangle := results[3]
	assert.True(t, triangle.OK())
	assert.False(t, triangle.Procedural)
	assert.Equal(t, 1, triangle.Triangles)

	assert.Equal(t, []string{"crate", "triangle"}, lib.Names())
	assert.Equal(t, "testdata/triangle.gltf", lib.Find("triangle").Source)

}

func TestProceduralModelRestsOnOrigin(t *testing.T) {

	model, err := NewProceduralModel("crate", ModelSpec{Size: Vec3{2, 4, 6}})
	require.NoError(t, err)

	bounds := model.Bounds()
	assert.Equal(t, 0.0, bounds.Min.Y)
	assert.Equal(t, 4.0, bounds.Max.Y)
	assert.Equal(t, -1.0, bounds.Min.X)
	assert.Equal(t, 3.0, bounds.Max.Z)
	assert.Equal(t, colors.White(), model.Mesh.Triangles[0].Color)

}

func TestLoadModelsCancelled(t *testing.T) {

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := LoadModels(ctx, DefaultConfig().Assets, nil)
	assert.ErrorIs(t, err, context.Canceled)

}

func TestRequireModels(t *testing.T) {

	lib := defaultModels(t)
	assert.NoError(t, RequireModels(lib, "Bike", "cloud"))

	err := RequireModels(lib, "Bike", "hovercraft", "zeppelin")
	assert.ErrorIs(t, err, ErrUnplayable)
	assert.EqualError(t, err, "minimum playable scene unavailable: missing hovercraft, zeppelin")

}

func TestModelLibrary(t *testing.T) {

	lib := NewModelLibrary()
	assert.Nil(t, lib.Find("bench"))

	var none *ModelLibrary
	assert.Nil(t, none.Find("bench"))

	bench := NewModel(NewBoxMesh("bench", Vec3{1, 1, 1}.Vector(), colors.White()), "bench")
	lib.Add(bench)
	assert.Same(t, bench, lib.Find("bench"))
	assert.True(t, lib.Has("bench"))
	assert.Equal(t, 1, lib.Len())

	tinted := bench.Tinted(colors.Red())
	assert.Equal(t, colors.Red(), tinted.Color)
	assert.Equal(t, colors.White(), bench.Color)
	assert.Same(t, bench.Mesh, tinted.Mesh)

}
