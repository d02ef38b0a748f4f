package courier

import (
	"go.uber.org/zap"

	"github.com/parcelrun/courier/geom"
	"github.com/parcelrun/courier/physics"
)

// AICar drives a Model around a closed route. The path decides where the car is; the car's kinematic body is moved to match,
// so the player collides with it but can never push it.
type AICar struct {
	Path *PathFollower
	Node NodeID
	Body physics.BodyID

	scene SceneSink
	world PhysicsWorld
	scale float64
	lift  float64
}

// NewAICar places the Model at the start of the route, and creates its kinematic body when world is non-nil.
func NewAICar(scene SceneSink, world PhysicsWorld, model *Model, route Route, config TrafficConfig) *AICar {

	points := make([]geom.Vector, 0, len(route.Points))
	for _, p := range route.Points {
		points = append(points, p.Vector())
	}

	car := &AICar{
		Path:  NewPathFollower(points, route.Speed),
		Body:  physics.NoBody,
		scene: scene,
		world: world,
		scale: config.Scale,
		lift:  config.BodyLift,
	}

	start := car.Path.Current()

	car.Node = scene.Add(model, Transform{Position: start, Scale: geom.Uniform(car.scale)})

	if world != nil {
		half := config.HalfExtents.Vector()
		car.Body = world.CreateBody(
			physics.NewKinematicBodyDesc().SetTranslation(start.Add(geom.NewVector(0, car.lift, 0))),
			physics.Cuboid(half.X, half.Y, half.Z).SetFriction(config.Friction).SetRestitution(config.Restitution),
		)
	}

	return car

}

// Update advances the car along its route, moving its model and queueing the same pose on its body.
func (car *AICar) Update() {

	if !car.Path.Moving() {
		return
	}

	car.Path.Advance()

	pos := car.Path.Position()
	yaw := car.Path.Yaw()

	car.scene.SetTransform(car.Node, NewTransform(pos, yaw, geom.Uniform(car.scale)))

	if car.world != nil && car.Body != physics.NoBody {
		car.world.SetNextKinematicTranslation(car.Body, pos.Add(geom.NewVector(0, car.lift, 0)))
		car.world.SetNextKinematicRotation(car.Body, geom.NewQuaternionYaw(yaw))
	}

}

// Traffic is every AI car in the city.
type Traffic struct {
	Cars []*AICar
}

// NewTraffic creates one AICar per route. Routes whose model isn't loaded are skipped.
func NewTraffic(scene SceneSink, world PhysicsWorld, models *ModelLibrary, config TrafficConfig, logger *zap.Logger) *Traffic {

	logger = loggerOrNop(logger)

	traffic := &Traffic{}

	for i, route := range config.Routes {
		model := models.Find(route.Model)
		if model == nil {
			logger.Warn("car model not loaded, skipping route", zap.Int("route", i), zap.String("model", route.Model))
			continue
		}
		traffic.Cars = append(traffic.Cars, NewAICar(scene, world, model, route, config))
	}

	return traffic

}

// Update moves every car one step along its route.
func (traffic *Traffic) Update() {
	for _, car := range traffic.Cars {
		car.Update()
	}
}

// Len returns the number of cars.
func (traffic *Traffic) Len() int {
	return len(traffic.Cars)
}
