package courier

import (
	"github.com/parcelrun/courier/colors"
	"github.com/parcelrun/courier/geom"
)

// Model is a named, reusable piece of geometry that can be placed any number of times into a scene. A Model contains the mesh
// information (what to draw); a Transform passed alongside it says where and how to draw each placement.
type Model struct {
	Name   string
	Mesh   *Mesh
	Source string       // The file the Model was loaded from; empty for procedural models
	Color  colors.Color // The overall color of the Model, multiplied with each triangle's color when drawn
}

// NewModel creates a new Model of the Mesh and name provided.
func NewModel(mesh *Mesh, name string) *Model {
	return &Model{
		Name:  name,
		Mesh:  mesh,
		Color: colors.White(),
	}
}

// Clone creates a clone of the Model. The Mesh is shared between both.
func (model *Model) Clone() *Model {
	newModel := *model
	return &newModel
}

// Tinted returns a clone of the Model drawn with the color given instead of its own.
func (model *Model) Tinted(color colors.Color) *Model {
	newModel := model.Clone()
	newModel.Color = color
	return newModel
}

// Bounds returns the Model's bounding box in model space.
func (model *Model) Bounds() geom.AABB {
	if model.Mesh == nil {
		return geom.NewEmptyAABB()
	}
	return model.Mesh.Dimensions
}

// PlacedBounds returns the world-space bounding box of the Model when drawn with the Transform given.
func (model *Model) PlacedBounds(transform Transform) geom.AABB {
	bounds := model.Bounds()
	if bounds.IsEmpty() {
		return bounds
	}
	return bounds.Transformed(transform.Matrix())
}
