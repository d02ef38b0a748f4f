package courier

import (
	"math"

	"github.com/parcelrun/courier/geom"
	"github.com/parcelrun/courier/physics"
)

// Bounds is the rectangle of the XZ plane the player has to stay in.
type Bounds struct {
	MinX, MaxX, MinZ, MaxZ float64
}

// NewSquareBounds returns Bounds from -extent to extent on both axes.
func NewSquareBounds(extent float64) Bounds {
	return Bounds{MinX: -extent, MaxX: extent, MinZ: -extent, MaxZ: extent}
}

// Clamp returns the position with X and Z clamped into the Bounds, and if anything changed.
func (bounds Bounds) Clamp(position geom.Vector) (geom.Vector, bool) {
	x := geom.Clamp(position.X, bounds.MinX, bounds.MaxX)
	z := geom.Clamp(position.Z, bounds.MinZ, bounds.MaxZ)
	clamped := x != position.X || z != position.Z
	return geom.NewVector(x, position.Y, z), clamped
}

// Contains returns if the position lies within the Bounds on X and Z.
func (bounds Bounds) Contains(position geom.Vector) bool {
	return position.X >= bounds.MinX && position.X <= bounds.MaxX && position.Z >= bounds.MinZ && position.Z <= bounds.MaxZ
}

// Player is the courier's vehicle. Steering turns the model directly; driving sets the velocity of a dynamic body, whose
// simulated position is copied back onto the model after every physics step.
type Player struct {
	Node     NodeID
	Body     physics.BodyID
	Yaw      float64
	Position geom.Vector // Where the model is drawn
	Bounds   Bounds

	config PlayerConfig
	scene  SceneSink
	world  PhysicsWorld
}

// NewPlayer places the player's model and creates its dynamic body when world is non-nil.
func NewPlayer(scene SceneSink, world PhysicsWorld, model *Model, config PlayerConfig) *Player {

	spawn := config.Spawn.Vector()

	player := &Player{
		Body:     physics.NoBody,
		Yaw:      config.Yaw,
		Position: spawn.Sub(geom.NewVector(0, config.VisualOffset, 0)),
		Bounds:   NewSquareBounds(config.Bounds),
		config:   config,
		scene:    scene,
		world:    world,
	}

	player.Node = scene.Add(model, player.Transform())

	if world != nil {
		half := config.HalfExtents.Vector()
		player.Body = world.CreateBody(
			physics.NewDynamicBodyDesc().
				SetTranslation(spawn).
				SetLinearDamping(config.LinearDamping).
				SetAngularDamping(config.AngularDamping),
			physics.Cuboid(half.X, half.Y, half.Z).SetRestitution(config.Restitution),
		)
	}

	return player

}

// Transform returns the Transform the player's model is drawn with.
func (player *Player) Transform() Transform {
	return NewTransform(player.Position, player.Yaw, geom.Uniform(player.config.Scale))
}

// Forward returns the unit vector the player faces.
func (player *Player) Forward() geom.Vector {
	return geom.NewVector(math.Sin(player.Yaw), 0, math.Cos(player.Yaw))
}

// Update applies one frame of held controls: Left and Right turn the model by the turn rate, while Up (or Down, in reverse
// at a reduced speed) overwrites the body's velocity along the facing direction. With neither held, the body keeps its
// damped velocity.
func (player *Player) Update(keys KeyState) {

	turn := geom.DegToRad(player.config.TurnRate)

	if keys.Held(KeyLeft) {
		player.Yaw += turn
	}
	if keys.Held(KeyRight) {
		player.Yaw -= turn
	}

	if keys.Held(KeyUp) || keys.Held(KeyDown) {
		direction := player.Forward()
		if !keys.Held(KeyUp) {
			direction = direction.Scale(-player.config.ReverseFactor)
		}
		if player.world != nil {
			player.world.SetLinearVelocity(player.Body, direction.Scale(player.config.Speed))
		}
	}

	player.scene.SetTransform(player.Node, player.Transform())

}

// Sync copies the body's simulated position onto the model after a physics step. A body that left the Bounds is put back on
// the edge and stopped dead. Sync returns true if that happened.
func (player *Player) Sync() bool {

	if player.world == nil {
		return false
	}

	position, clamped := player.Bounds.Clamp(player.world.Translation(player.Body))

	if clamped {
		player.world.SetTranslation(player.Body, position)
		player.world.SetLinearVelocity(player.Body, geom.Vector{})
	}

	player.Position = position.Sub(geom.NewVector(0, player.config.VisualOffset, 0))
	player.scene.SetTransform(player.Node, player.Transform())

	return clamped

}

// Velocity returns the body's current velocity.
func (player *Player) Velocity() geom.Vector {
	if player.world == nil {
		return geom.Vector{}
	}
	return player.world.LinearVelocity(player.Body)
}
