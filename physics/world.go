// Package physics implements a small box-only rigid body world: static colliders, position-based kinematic bodies and
// dynamic bodies integrated with gravity, damping, restitution and friction. Every collider is an axis-aligned cuboid;
// rotated kinematic bodies collide with the box enclosing their rotated cuboid.
package physics

import (
	"github.com/parcelrun/courier/geom"
)

// DefaultTimestep is the fixed step used by World.Step unless changed.
const DefaultTimestep = 1.0 / 60.0

// Contacts slower than this along the contact normal don't bounce.
const restitutionThreshold = 1.0

const solverIterations = 4

// World holds every body and collider and advances them together with Step.
type World struct {
	Gravity  geom.Vector
	Timestep float64

	bodies     []*body
	statics    []staticCollider
	broadphase *Broadphase
}

// NewWorld creates a new World with the gravity given, stepping at DefaultTimestep.
func NewWorld(gravity geom.Vector) *World {
	return &World{
		Gravity:    gravity,
		Timestep:   DefaultTimestep,
		broadphase: NewBroadphase(8),
	}
}

// CreateStaticCollider adds a fixed cuboid collider centered on desc.Offset.
func (world *World) CreateStaticCollider(desc ColliderDesc) {
	collider := staticCollider{
		box:         geom.NewAABBFromCenter(desc.Offset, desc.HalfExtents),
		restitution: desc.Restitution,
		friction:    desc.Friction,
	}
	world.statics = append(world.statics, collider)
	world.broadphase.Insert(len(world.statics)-1, collider.box)
}

// CreateBody creates a body from the BodyDesc, with the cuboid collider given attached, and returns its ID.
// A Static BodyDesc creates a static collider and returns NoBody.
func (world *World) CreateBody(desc BodyDesc, collider ColliderDesc) BodyID {

	if desc.Kind == Static {
		collider.Offset = collider.Offset.Add(desc.Translation)
		world.CreateStaticCollider(collider)
		return NoBody
	}

	rotation := desc.Rotation
	if rotation == (geom.Quaternion{}) {
		rotation = geom.NewQuaternionIdentity()
	}

	b := &body{
		id:             BodyID(len(world.bodies)),
		kind:           desc.Kind,
		collider:       collider,
		translation:    desc.Translation,
		rotation:       rotation,
		linearDamping:  desc.LinearDamping,
		angularDamping: desc.AngularDamping,
	}
	world.bodies = append(world.bodies, b)
	return b.id

}

func (world *World) body(id BodyID) *body {
	if id < 0 || int(id) >= len(world.bodies) {
		return nil
	}
	return world.bodies[id]
}

// Translation returns the body's current position, or a zero vector for an unknown body.
func (world *World) Translation(id BodyID) geom.Vector {
	if b := world.body(id); b != nil {
		return b.translation
	}
	return geom.Vector{}
}

// SetTranslation teleports the body to the position given.
func (world *World) SetTranslation(id BodyID, v geom.Vector) {
	if b := world.body(id); b != nil {
		b.translation = v
	}
}

// Rotation returns the body's current rotation, or identity for an unknown body.
func (world *World) Rotation(id BodyID) geom.Quaternion {
	if b := world.body(id); b != nil {
		return b.rotation
	}
	return geom.NewQuaternionIdentity()
}

// LinearVelocity returns the body's velocity, or a zero vector for an unknown body.
func (world *World) LinearVelocity(id BodyID) geom.Vector {
	if b := world.body(id); b != nil {
		return b.velocity
	}
	return geom.Vector{}
}

// SetLinearVelocity sets the velocity of a dynamic body. It has no effect on kinematic bodies, whose velocity comes from their poses.
func (world *World) SetLinearVelocity(id BodyID, v geom.Vector) {
	if b := world.body(id); b != nil && b.kind == Dynamic {
		b.velocity = v
	}
}

// SetAngularVelocity sets the yaw rate (radians per second around +Y) of a dynamic body.
func (world *World) SetAngularVelocity(id BodyID, radians float64) {
	if b := world.body(id); b != nil && b.kind == Dynamic {
		b.angularVelocity = radians
	}
}

// SetNextKinematicTranslation queues the position a kinematic body will move to on the next Step.
func (world *World) SetNextKinematicTranslation(id BodyID, v geom.Vector) {
	if b := world.body(id); b != nil && b.kind == KinematicPositionBased {
		b.nextTranslation = v
		b.hasNextTranslation = true
	}
}

// SetNextKinematicRotation queues the rotation a kinematic body will take on the next Step.
func (world *World) SetNextKinematicRotation(id BodyID, q geom.Quaternion) {
	if b := world.body(id); b != nil && b.kind == KinematicPositionBased {
		b.nextRotation = q.Normalized()
		b.hasNextRotation = true
	}
}

// Bounds returns the world-space box of the body's collider.
func (world *World) Bounds(id BodyID) geom.AABB {
	if b := world.body(id); b != nil {
		return b.bounds()
	}
	return geom.NewEmptyAABB()
}

// BodyCount returns the number of kinematic and dynamic bodies in the World.
func (world *World) BodyCount() int {
	return len(world.bodies)
}

// ColliderCount returns the number of colliders in the World, static ones included.
func (world *World) ColliderCount() int {
	return len(world.statics) + len(world.bodies)
}

// Step advances the simulation by one fixed Timestep. Kinematic bodies move to their queued poses first, then dynamic bodies
// are integrated and pushed out of anything they overlap.
func (world *World) Step() {

	dt := world.Timestep
	if dt <= 0 {
		dt = DefaultTimestep
	}

	for _, b := range world.bodies {
		if b.kind != KinematicPositionBased {
			continue
		}
		if b.hasNextTranslation {
			b.velocity = b.nextTranslation.Sub(b.translation).Scale(1 / dt)
			b.translation = b.nextTranslation
			b.hasNextTranslation = false
		} else {
			b.velocity = geom.Vector{}
		}
		if b.hasNextRotation {
			b.rotation = b.nextRotation
			b.hasNextRotation = false
		}
	}

	for _, b := range world.bodies {
		if b.kind != Dynamic {
			continue
		}

		b.velocity = b.velocity.Add(world.Gravity.Scale(dt))
		b.velocity = b.velocity.Scale(1 / (1 + dt*b.linearDamping))
		b.angularVelocity *= 1 / (1 + dt*b.angularDamping)

		b.translation = b.translation.Add(b.velocity.Scale(dt))
		if b.angularVelocity != 0 {
			b.rotation = geom.NewQuaternionYaw(b.rotation.Yaw() + b.angularVelocity*dt)
		}

		world.resolve(b)
	}

}

// resolve pushes a dynamic body out of every collider it overlaps and applies the contact response to its velocity.
func (world *World) resolve(b *body) {

	for i := 0; i < solverIterations; i++ {

		resolved := false

		world.broadphase.ForEachCandidate(b.bounds(), func(index int) bool {
			other := world.statics[index]
			if world.respond(b, other.box, geom.Vector{}, other.restitution, other.friction) {
				resolved = true
			}
			return true
		})

		for _, other := range world.bodies {
			if other == b {
				continue
			}
			if other.kind == Dynamic {
				// Equal masses: each side takes half of the separation.
				normal, depth, ok := b.bounds().Penetration(other.bounds())
				if !ok {
					continue
				}
				b.translation = b.translation.Add(normal.Scale(depth / 2))
				other.translation = other.translation.Sub(normal.Scale(depth / 2))
				vn := b.velocity.Sub(other.velocity).Dot(normal)
				if vn < 0 {
					impulse := normal.Scale(-vn * (1 + combine(b.collider.Restitution, other.collider.Restitution, -vn)) / 2)
					b.velocity = b.velocity.Add(impulse)
					other.velocity = other.velocity.Sub(impulse)
				}
				resolved = true
				continue
			}
			if world.respond(b, other.bounds(), other.velocity, other.collider.Restitution, other.collider.Friction) {
				resolved = true
			}
		}

		if !resolved {
			return
		}

	}

}

// respond separates b from an immovable box moving at otherVelocity. It returns false if they don't overlap.
func (world *World) respond(b *body, box geom.AABB, otherVelocity geom.Vector, restitution, friction float64) bool {

	normal, depth, ok := b.bounds().Penetration(box)
	if !ok {
		return false
	}

	b.translation = b.translation.Add(normal.Scale(depth))

	relative := b.velocity.Sub(otherVelocity)
	vn := relative.Dot(normal)
	if vn >= 0 {
		return true
	}

	e := combine(b.collider.Restitution, restitution, -vn)
	dvn := -(1 + e) * vn
	b.velocity = b.velocity.Add(normal.Scale(dvn))

	// Coulomb friction: the tangential change is bounded by the normal one.
	relative = b.velocity.Sub(otherVelocity)
	tangent := relative.Sub(normal.Scale(relative.Dot(normal)))
	mu := (b.collider.Friction + friction) / 2
	maxTangent := mu * dvn
	if speed := tangent.Magnitude(); speed <= maxTangent {
		b.velocity = b.velocity.Sub(tangent)
	} else if speed > 0 {
		b.velocity = b.velocity.Sub(tangent.Scale(maxTangent / speed))
	}

	return true

}

// combine averages two restitution coefficients; slow contacts don't bounce at all.
func combine(a, b, contactSpeed float64) float64 {
	if contactSpeed < restitutionThreshold {
		return 0
	}
	return (a + b) / 2
}
