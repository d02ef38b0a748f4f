package render

import (
	"github.com/parcelrun/courier"
	"github.com/parcelrun/courier/geom"
)

// Node is a single placement of a Model in a Scene.
type Node struct {
	Model     *courier.Model
	Transform courier.Transform
	Visible   bool

	matrix      geom.Matrix4
	matrixDirty bool
}

// Matrix returns the Node's model-to-world matrix, recomputing it only after the Transform changes.
func (node *Node) Matrix() geom.Matrix4 {
	if node.matrixDirty {
		node.matrix = node.Transform.Matrix()
		node.matrixDirty = false
	}
	return node.matrix
}

// Scene is a flat list of placed Models. It implements courier.SceneSink, so a Session builds its city straight into it.
type Scene struct {
	Name  string
	nodes []*Node
}

var _ courier.SceneSink = (*Scene)(nil)

// NewScene creates a new, empty Scene.
func NewScene(name string) *Scene {
	return &Scene{Name: name}
}

// Add places the Model into the Scene and returns the new Node's ID.
func (scene *Scene) Add(model *courier.Model, transform courier.Transform) courier.NodeID {
	scene.nodes = append(scene.nodes, &Node{
		Model:       model,
		Transform:   transform,
		Visible:     true,
		matrixDirty: true,
	})
	return courier.NodeID(len(scene.nodes) - 1)
}

// SetTransform moves the Node with the ID given. Unknown IDs are ignored.
func (scene *Scene) SetTransform(id courier.NodeID, transform courier.Transform) {
	if node := scene.Node(id); node != nil {
		node.Transform = transform
		node.matrixDirty = true
	}
}

// Transform returns the Transform of the Node with the ID given, and false if there's no such Node.
func (scene *Scene) Transform(id courier.NodeID) (courier.Transform, bool) {
	if node := scene.Node(id); node != nil {
		return node.Transform, true
	}
	return courier.Transform{}, false
}

// Node returns the Node with the ID given, or nil.
func (scene *Scene) Node(id courier.NodeID) *Node {
	if id < 0 || int(id) >= len(scene.nodes) {
		return nil
	}
	return scene.nodes[id]
}

// Nodes returns every Node in the Scene, in the order they were added.
func (scene *Scene) Nodes() []*Node {
	return scene.nodes
}

// Len returns the number of Nodes in the Scene.
func (scene *Scene) Len() int {
	return len(scene.nodes)
}

// TriangleCount returns the number of triangles of every visible Node in the Scene.
func (scene *Scene) TriangleCount() int {
	count := 0
	for _, node := range scene.nodes {
		if node.Visible && node.Model != nil && node.Model.Mesh != nil {
			count += len(node.Model.Mesh.Triangles)
		}
	}
	return count
}
