package courier

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/parcelrun/courier/colors"
	"github.com/parcelrun/courier/geom"
)

// ErrNoMeshes is returned when a glTF document doesn't contain any triangle geometry.
var ErrNoMeshes = errors.New("no triangle meshes found")

// LoadGLTFFile loads a .gltf or .glb file from the filepath given into a single Model with the name provided.
// Every mesh in the document's default scene is flattened into the Model's Mesh with its node transform applied.
// External buffers are read relative to the file's directory.
func LoadGLTFFile(path string, name string) (*Model, error) {

	doc, err := gltf.Open(path)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	model, err := modelFromDocument(doc, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	model.Source = path

	return model, nil

}

// LoadGLTFData loads .gltf or .glb data into a single Model with the name given. There's no directory to resolve external
// buffers against, so buffers must be embedded (.glb) or data URIs; use LoadGLTFFile otherwise.
func LoadGLTFData(data []byte, name string) (*Model, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := new(gltf.Document)

	if err := decoder.Decode(doc); err != nil {
		return nil, err
	}

	return modelFromDocument(doc, name)

}

func modelFromDocument(doc *gltf.Document, name string) (*Model, error) {

	mesh := NewMesh(name)

	var walk func(index int, parent geom.Matrix4) error

	walk = func(index int, parent geom.Matrix4) error {

		if index < 0 || index >= len(doc.Nodes) {
			return fmt.Errorf("node index %d out of range", index)
		}

		node := doc.Nodes[index]
		world := nodeMatrix(node).Mult(parent)

		if node.Mesh != nil {
			if err := appendGLTFMesh(doc, int(*node.Mesh), world, mesh); err != nil {
				return err
			}
		}

		for _, child := range node.Children {
			if err := walk(int(child), world); err != nil {
				return err
			}
		}

		return nil

	}

	for _, root := range sceneRoots(doc) {
		if err := walk(root, geom.NewMatrix4()); err != nil {
			return nil, err
		}
	}

	if len(mesh.Triangles) == 0 {
		return nil, ErrNoMeshes
	}

	return NewModel(mesh, name), nil

}

// sceneRoots returns the root nodes of the document's default scene; documents without scenes use every node no other node parents.
func sceneRoots(doc *gltf.Document) []int {

	if len(doc.Scenes) > 0 {
		scene := 0
		if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
			scene = int(*doc.Scene)
		}
		roots := make([]int, 0, len(doc.Scenes[scene].Nodes))
		for _, n := range doc.Scenes[scene].Nodes {
			roots = append(roots, int(n))
		}
		return roots
	}

	parented := map[int]bool{}
	for _, node := range doc.Nodes {
		for _, child := range node.Children {
			parented[int(child)] = true
		}
	}

	roots := []int{}
	for i := range doc.Nodes {
		if !parented[i] {
			roots = append(roots, i)
		}
	}
	return roots

}

// nodeMatrix returns the node's local transform, from its matrix if it has one or from its translation, rotation and scale otherwise.
func nodeMatrix(node *gltf.Node) geom.Matrix4 {

	mtData := node.Matrix

	matrix := geom.Matrix4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			matrix[row][col] = float64(mtData[row*4+col])
		}
	}

	if matrix != (geom.Matrix4{}) && !matrix.IsIdentity() {
		return matrix
	}

	scale := geom.NewVector(float64(node.Scale[0]), float64(node.Scale[1]), float64(node.Scale[2]))
	if scale.IsZero() {
		scale = geom.Uniform(1)
	}

	rotation := geom.NewQuaternion(float64(node.Rotation[0]), float64(node.Rotation[1]), float64(node.Rotation[2]), float64(node.Rotation[3]))

	return geom.NewMatrix4Scale(scale.X, scale.Y, scale.Z).
		Mult(rotation.Normalized().ToMatrix4()).
		Mult(geom.NewMatrix4Translate(float64(node.Translation[0]), float64(node.Translation[1]), float64(node.Translation[2])))

}

func appendGLTFMesh(doc *gltf.Document, index int, matrix geom.Matrix4, mesh *Mesh) error {

	if index < 0 || index >= len(doc.Meshes) {
		return fmt.Errorf("mesh index %d out of range", index)
	}

	for _, prim := range doc.Meshes[index].Primitives {

		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}

		posAccessor, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		posBuffer := [][3]float32{}
		vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], posBuffer)

		if err != nil {
			return err
		}

		var indices []uint32

		if prim.Indices != nil {
			indexBuffer := []uint32{}
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], indexBuffer)
			if err != nil {
				return err
			}
		} else {
			indices = make([]uint32, len(vertPos))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		if len(indices) < 3 {
			continue
		}

		color := colors.White()

		if prim.Material != nil && int(*prim.Material) < len(doc.Materials) {
			if pbr := doc.Materials[*prim.Material].PBRMetallicRoughness; pbr != nil {
				factor := pbr.BaseColorFactorOrDefault()
				color = colors.NewColor(toSRGB(factor[0]), toSRGB(factor[1]), toSRGB(factor[2]), float32(factor[3]))
			}
		}

		start := len(mesh.Positions)
		for _, p := range vertPos {
			mesh.AddPositions(matrix.MultVec(geom.NewVector(float64(p[0]), float64(p[1]), float64(p[2]))))
		}

		triIndices := make([]int, 0, len(indices)-len(indices)%3)
		for _, j := range indices[:len(indices)-len(indices)%3] {
			if int(j) >= len(vertPos) {
				return fmt.Errorf("mesh %d: vertex index %d out of range", index, j)
			}
			triIndices = append(triIndices, start+int(j))
		}

		mesh.AddTriangles(color, triIndices...)

	}

	return nil

}

// glTF color factors are linear, while the renderer works with sRGB colors.
func toSRGB(linear float64) float32 {
	return float32(math.Pow(geom.Clamp(linear, 0, 1), 1/2.2))
}
