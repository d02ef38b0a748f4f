package courier

import (
	"github.com/parcelrun/courier/geom"
	"github.com/parcelrun/courier/physics"
)

// NodeID identifies a placement added to a SceneSink.
type NodeID int

// NoNode is used by components that have nothing placed in the scene.
const NoNode NodeID = -1

// Transform is the position, euler rotation (in radians) and scale of a placed Model.
type Transform struct {
	Position geom.Vector
	Rotation geom.Vector
	Scale    geom.Vector
}

// NewTransform returns a Transform at the position given, with a rotation around Y only.
func NewTransform(position geom.Vector, yaw float64, scale geom.Vector) Transform {
	return Transform{
		Position: position,
		Rotation: geom.NewVector(0, yaw, 0),
		Scale:    scale,
	}
}

// Matrix returns the model-to-world matrix of the Transform: scale, then rotation, then translation.
func (t Transform) Matrix() geom.Matrix4 {
	return geom.NewMatrix4Compose(t.Position, t.Rotation, t.Scale)
}

// SceneSink is where the game places what it wants drawn. Placements live for as long as the SceneSink does;
// only their transforms may change afterwards.
type SceneSink interface {
	// Add places the Model into the scene with the Transform given, returning an ID for later updates.
	Add(model *Model, transform Transform) NodeID
	// SetTransform moves a placement made with Add. Unknown IDs are ignored.
	SetTransform(id NodeID, transform Transform)
}

// PhysicsWorld is the part of a rigid-body simulation the game drives. *physics.World implements it.
type PhysicsWorld interface {
	CreateStaticCollider(desc physics.ColliderDesc)
	CreateBody(desc physics.BodyDesc, collider physics.ColliderDesc) physics.BodyID
	Step()
	Translation(id physics.BodyID) geom.Vector
	SetTranslation(id physics.BodyID, v geom.Vector)
	LinearVelocity(id physics.BodyID) geom.Vector
	SetLinearVelocity(id physics.BodyID, v geom.Vector)
	SetNextKinematicTranslation(id physics.BodyID, v geom.Vector)
	SetNextKinematicRotation(id physics.BodyID, q geom.Quaternion)
}

var _ PhysicsWorld = (*physics.World)(nil)
