package physics

import "github.com/parcelrun/courier/geom"

// BodyKind indicates how a body's transform is decided every step.
type BodyKind int

const (
	// Static bodies never move.
	Static BodyKind = iota
	// KinematicPositionBased bodies move only to the poses queued with SetNextKinematicTranslation / SetNextKinematicRotation.
	// They push dynamic bodies around, but are never pushed themselves.
	KinematicPositionBased
	// Dynamic bodies are integrated by the World from their velocity, gravity and contacts.
	Dynamic
)

func (kind BodyKind) String() string {
	switch kind {
	case Static:
		return "static"
	case KinematicPositionBased:
		return "kinematic"
	case Dynamic:
		return "dynamic"
	}
	return "unknown"
}

// BodyID identifies a body created in a World. Negative IDs never refer to a body.
type BodyID int

// NoBody is returned when a body couldn't be created.
const NoBody BodyID = -1

// BodyDesc describes a rigid body to be created with World.CreateBody.
type BodyDesc struct {
	Kind           BodyKind
	Translation    geom.Vector
	Rotation       geom.Quaternion
	LinearDamping  float64
	AngularDamping float64
}

// NewDynamicBodyDesc returns a BodyDesc for a dynamic body at the origin.
func NewDynamicBodyDesc() BodyDesc {
	return BodyDesc{Kind: Dynamic, Rotation: geom.NewQuaternionIdentity()}
}

// NewKinematicBodyDesc returns a BodyDesc for a position-based kinematic body at the origin.
func NewKinematicBodyDesc() BodyDesc {
	return BodyDesc{Kind: KinematicPositionBased, Rotation: geom.NewQuaternionIdentity()}
}

// SetTranslation returns a copy of the BodyDesc starting at the position given.
func (desc BodyDesc) SetTranslation(v geom.Vector) BodyDesc {
	desc.Translation = v
	return desc
}

// SetLinearDamping returns a copy of the BodyDesc with the linear damping given.
func (desc BodyDesc) SetLinearDamping(damping float64) BodyDesc {
	desc.LinearDamping = damping
	return desc
}

// SetAngularDamping returns a copy of the BodyDesc with the angular damping given.
func (desc BodyDesc) SetAngularDamping(damping float64) BodyDesc {
	desc.AngularDamping = damping
	return desc
}

// ColliderDesc describes a cuboid collider. Offset is relative to the owning body (or the world origin for static colliders).
type ColliderDesc struct {
	HalfExtents geom.Vector
	Offset      geom.Vector
	Restitution float64
	Friction    float64
}

// Cuboid returns a ColliderDesc for a box with the half extents given, with the default friction of 0.5.
func Cuboid(hx, hy, hz float64) ColliderDesc {
	return ColliderDesc{
		HalfExtents: geom.NewVector(hx, hy, hz).Abs(),
		Friction:    0.5,
	}
}

// SetTranslation returns a copy of the ColliderDesc offset by the vector given.
func (desc ColliderDesc) SetTranslation(v geom.Vector) ColliderDesc {
	desc.Offset = v
	return desc
}

// SetRestitution returns a copy of the ColliderDesc with the restitution (bounciness) given.
func (desc ColliderDesc) SetRestitution(restitution float64) ColliderDesc {
	desc.Restitution = restitution
	return desc
}

// SetFriction returns a copy of the ColliderDesc with the friction coefficient given.
func (desc ColliderDesc) SetFriction(friction float64) ColliderDesc {
	desc.Friction = friction
	return desc
}

type body struct {
	id       BodyID
	kind     BodyKind
	collider ColliderDesc

	translation     geom.Vector
	rotation        geom.Quaternion
	velocity        geom.Vector
	angularVelocity float64 // around +Y

	linearDamping  float64
	angularDamping float64

	nextTranslation    geom.Vector
	nextRotation       geom.Quaternion
	hasNextTranslation bool
	hasNextRotation    bool
}

// bounds returns the world-space box the body's collider occupies.
func (b *body) bounds() geom.AABB {
	local := geom.NewAABBFromCenter(b.collider.Offset, b.collider.HalfExtents)
	if b.rotation.Y != 0 || b.rotation.X != 0 || b.rotation.Z != 0 {
		local = local.Transformed(b.rotation.ToMatrix4())
	}
	return local.Translated(b.translation)
}

type staticCollider struct {
	box         geom.AABB
	restitution float64
	friction    float64
}
