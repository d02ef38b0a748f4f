package courier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parcelrun/courier/geom"
	"github.com/parcelrun/courier/physics"
)

type fakeNode struct {
	Model     *Model
	Transform Transform
	Updates   int
}

type fakeScene struct {
	Nodes []*fakeNode
}

func (scene *fakeScene) Add(model *Model, transform Transform) NodeID {
	scene.Nodes = append(scene.Nodes, &fakeNode{Model: model, Transform: transform})
	return NodeID(len(scene.Nodes) - 1)
}

func (scene *fakeScene) SetTransform(id NodeID, transform Transform) {
	if id < 0 || int(id) >= len(scene.Nodes) {
		return
	}
	scene.Nodes[id].Transform = transform
	scene.Nodes[id].Updates++
}

func (scene *fakeScene) Node(id NodeID) *fakeNode {
	return scene.Nodes[id]
}

// CountModel returns how many placements use the named model.
func (scene *fakeScene) CountModel(name string) int {
	count := 0
	for _, n := range scene.Nodes {
		if n.Model.Name == name {
			count++
		}
	}
	return count
}

type fakeBody struct {
	Desc            physics.BodyDesc
	Collider        physics.ColliderDesc
	Translation     geom.Vector
	Velocity        geom.Vector
	NextTranslation *geom.Vector
	NextRotation    *geom.Quaternion
	Rotation        geom.Quaternion
}

// fakeWorld moves kinematic bodies to their queued poses and dynamic bodies by their velocity, and collides nothing.
type fakeWorld struct {
	Statics []physics.ColliderDesc
	Bodies  []*fakeBody
	Steps   int
}

func (world *fakeWorld) CreateStaticCollider(desc physics.ColliderDesc) {
	world.Statics = append(world.Statics, desc)
}

func (world *fakeWorld) CreateBody(desc physics.BodyDesc, collider physics.ColliderDesc) physics.BodyID {
	world.Bodies = append(world.Bodies, &fakeBody{Desc: desc, Collider: collider, Translation: desc.Translation, Rotation: desc.Rotation})
	return physics.BodyID(len(world.Bodies) - 1)
}

func (world *fakeWorld) body(id physics.BodyID) *fakeBody {
	if id < 0 || int(id) >= len(world.Bodies) {
		return nil
	}
	return world.Bodies[id]
}

func (world *fakeWorld) Step() {
	world.Steps++
	for _, b := range world.Bodies {
		switch b.Desc.Kind {
		case physics.KinematicPositionBased:
			if b.NextTranslation != nil {
				b.Translation = *b.NextTranslation
				b.NextTranslation = nil
			}
			if b.NextRotation != nil {
				b.Rotation = *b.NextRotation
				b.NextRotation = nil
			}
		case physics.Dynamic:
			b.Translation = b.Translation.Add(b.Velocity.Scale(physics.DefaultTimestep))
		}
	}
}

func (world *fakeWorld) Translation(id physics.BodyID) geom.Vector {
	if b := world.body(id); b != nil {
		return b.Translation
	}
	return geom.Vector{}
}

func (world *fakeWorld) SetTranslation(id physics.BodyID, v geom.Vector) {
	if b := world.body(id); b != nil {
		b.Translation = v
	}
}

func (world *fakeWorld) LinearVelocity(id physics.BodyID) geom.Vector {
	if b := world.body(id); b != nil {
		return b.Velocity
	}
	return geom.Vector{}
}

func (world *fakeWorld) SetLinearVelocity(id physics.BodyID, v geom.Vector) {
	if b := world.body(id); b != nil {
		b.Velocity = v
	}
}

func (world *fakeWorld) SetNextKinematicTranslation(id physics.BodyID, v geom.Vector) {
	if b := world.body(id); b != nil {
		b.NextTranslation = &v
	}
}

func (world *fakeWorld) SetNextKinematicRotation(id physics.BodyID, q geom.Quaternion) {
	if b := world.body(id); b != nil {
		b.NextRotation = &q
	}
}

// defaultModels loads the procedural models of the default manifest.
func defaultModels(t testing.TB) *ModelLibrary {
	t.Helper()
	lib, results, err := LoadModels(context.Background(), DefaultConfig().Assets, nil)
	require.NoError(t, err)
	for _, result := range results {
		require.NoError(t, result.Err, result.Name)
	}
	return lib
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = "test-city"
	return cfg
}
