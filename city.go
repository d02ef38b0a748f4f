package courier

import (
	"math"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/parcelrun/courier/geom"
	"github.com/parcelrun/courier/physics"
)

var (
	buildingModels     = []string{"building_A", "building_B", "building_C", "building_D", "building_E", "building_F", "building_G", "building_H"}
	decorationModels   = []string{"bench", "box_A", "box_B", "bush"}
	trafficLightModels = []string{"trafficlight_A", "trafficlight_B"}
)

// Ground collider, sized well beyond the city so nothing falls off the edge of the world.
var (
	groundHalfExtents = geom.NewVector(200, 0.1, 200)
	groundCenter      = geom.NewVector(0, -0.1, 0)
)

// CityStats counts what a CityBuilder placed.
type CityStats struct {
	Placed        int
	Skipped       int
	Colliders     int
	Roads         int
	Buildings     int
	Plazas        int
	Decorations   int
	TrafficLights int
	SpeedBumps    int
	Clouds        int
}

// CityBuilder places Models onto a SceneSink according to the city's procedural rules, and registers a static collider for
// every placement when it has a PhysicsWorld. Placements are never removed.
type CityBuilder struct {
	Scene  SceneSink
	World  PhysicsWorld // Optional; without one, nothing collides
	Models *ModelLibrary
	Config CityConfig

	logger        *zap.Logger
	grid          Grid
	cells         []Cell
	roadPositions map[[2]float64]bool
	buildings     []geom.Vector
	stats         CityStats
}

// NewCityBuilder creates a new CityBuilder placing Models from the library given.
func NewCityBuilder(scene SceneSink, world PhysicsWorld, models *ModelLibrary, config CityConfig, logger *zap.Logger) *CityBuilder {
	return &CityBuilder{
		Scene:         scene,
		World:         world,
		Models:        models,
		Config:        config,
		logger:        loggerOrNop(logger),
		roadPositions: map[[2]float64]bool{},
	}
}

// Place adds the named Model at pos with the euler rotation and scale given, lifted so that its lowest point rests at pos.Y.
// Roads are remembered for IsNearRoad, and buildings become delivery candidates. Place returns false, doing nothing else,
// if the Model isn't loaded.
func (city *CityBuilder) Place(name string, pos, rotation, scale geom.Vector, isRoad bool) bool {

	model := city.Models.Find(name)

	if model == nil {
		city.logger.Debug("model not loaded, skipping placement", zap.String("model", name), zap.Stringer("position", pos))
		city.stats.Skipped++
		return false
	}

	city.place(model, name, pos, rotation, scale, isRoad)

	return true

}

func (city *CityBuilder) place(model *Model, name string, pos, rotation, scale geom.Vector, isRoad bool) NodeID {

	transform := Transform{Rotation: rotation, Scale: scale}

	box := model.PlacedBounds(transform)

	yOffset := 0.0
	if !box.IsEmpty() {
		yOffset = -box.Min.Y
	}

	transform.Position = geom.NewVector(pos.X, pos.Y+yOffset, pos.Z)

	if isRoad {
		city.roadPositions[[2]float64{pos.X, pos.Z}] = true
	}

	if strings.HasPrefix(name, "building_") {
		city.buildings = append(city.buildings, geom.NewVector(pos.X, 0, pos.Z))
	}

	id := city.Scene.Add(model, transform)
	city.stats.Placed++

	if city.World != nil && !box.IsEmpty() {
		box = box.Translated(transform.Position)
		half := box.HalfExtents()
		city.World.CreateStaticCollider(physics.Cuboid(half.X, half.Y, half.Z).SetTranslation(box.Center()))
		city.stats.Colliders++
	}

	return id

}

// Generate lays out the whole city on the grid given: the boundary road loop, interior roads and junctions with their
// traffic lights and speed bumps, buildings and plazas, clouds, and the ground.
func (city *CityBuilder) Generate(grid Grid, rng *rand.Rand) {

	city.grid = grid

	chances := Chances{
		TSplit:   city.Config.TSplitChance,
		Crossing: city.Config.CrossingChance,
		Plaza:    city.Config.PlazaChance,
	}

	for i := -grid.HalfSize; i <= grid.HalfSize; i++ {
		for j := -grid.HalfSize; j <= grid.HalfSize; j++ {
			cell := grid.Classify(i, j, chances, rng)
			city.cells = append(city.cells, cell)
			city.placeCell(cell, rng)
		}
	}

	city.placeClouds(rng)

	city.Scene.Add(
		NewModel(NewPlaneMesh("ground", groundHalfExtents.X*2, groundHalfExtents.Z*2, city.Config.GroundColor), "ground"),
		Transform{Position: geom.NewVector(0, -0.01, 0), Scale: geom.Uniform(1)},
	)

	if city.World != nil {
		city.World.CreateStaticCollider(physics.Cuboid(groundHalfExtents.X, groundHalfExtents.Y, groundHalfExtents.Z).SetTranslation(groundCenter))
		city.stats.Colliders++
	}

	city.logger.Info("city generated",
		zap.Int("cells", len(city.cells)),
		zap.Int("placed", city.stats.Placed),
		zap.Int("skipped", city.stats.Skipped),
		zap.Int("colliders", city.stats.Colliders),
		zap.Int("delivery_candidates", len(city.DeliveryCandidates())),
	)

}

func (city *CityBuilder) placeCell(cell Cell, rng *rand.Rand) {

	pos := city.grid.CellToWorld(cell.I, cell.J)
	tile := city.grid.TileSize
	propScale := geom.Uniform(city.Config.PropScale)

	if cell.Role.IsRoad() {
		if city.Place(cell.Role.ModelName(), pos, geom.NewVector(0, cell.Rotation, 0), geom.Uniform(city.Config.RoadScale), true) {
			city.stats.Roads++
		}
	}

	switch cell.Role {

	case RoleJunction:

		// A traffic light may stand on each corner of the junction, facing the road
		for d := 0; d < 4; d++ {
			if rng.Float64() >= city.Config.TrafficLightChance {
				continue
			}
			angle := float64(d) * math.Pi / 2
			offset := tile * 0.45
			lightPos := geom.NewVector(pos.X+math.Cos(angle+math.Pi/4)*offset, 0, pos.Z+math.Sin(angle+math.Pi/4)*offset)
			lightType := trafficLightModels[rng.IntN(len(trafficLightModels))]
			if city.Place(lightType, lightPos, geom.NewVector(0, angle+math.Pi, 0), geom.Uniform(city.Config.TrafficLightScale), false) {
				city.stats.TrafficLights++
			}
		}

	case RoleCrossing:

		roadWidth := tile * 0.8
		bumpHalfWidth := 0.5
		bumpOffset := roadWidth/2 - bumpHalfWidth
		crosswalkGap := tile * 0.4

		bumpPos := geom.NewVector(pos.X-bumpOffset, 0.15, pos.Z-crosswalkGap)
		if city.Place("speed_bump", bumpPos, geom.Vector{}, geom.NewVector(0.3, 1, 1), false) {
			city.stats.SpeedBumps++
		}

	case RolePlaza:

		if city.Place("base", pos, geom.Vector{}, propScale, false) {
			city.stats.Plazas++
		}

		count := rng.IntN(city.Config.MaxDecorations) + 1

		for k := 0; k < count; k++ {
			name := decorationModels[rng.IntN(len(decorationModels))]
			offsetX := (rng.Float64() - 0.5) * tile * 0.6
			offsetZ := (rng.Float64() - 0.5) * tile * 0.6
			yaw := rng.Float64() * math.Pi * 2
			if city.Place(name, geom.NewVector(pos.X+offsetX, 0.3, pos.Z+offsetZ), geom.NewVector(0, yaw, 0), propScale, false) {
				city.stats.Decorations++
			}
		}

	case RoleBuilding:

		name := buildingModels[rng.IntN(len(buildingModels))]
		if city.Place(name, pos, geom.Vector{}, propScale, false) {
			city.stats.Buildings++
		}

	}

}

// placeClouds scatters clouds in a ring above the city.
func (city *CityBuilder) placeClouds(rng *rand.Rand) {

	cloud := city.Models.Find("cloud")

	if cloud == nil {
		if city.Config.CloudCount > 0 {
			city.logger.Debug("model not loaded, skipping clouds", zap.String("model", "cloud"))
			city.stats.Skipped += city.Config.CloudCount
		}
		return
	}

	if !city.Config.CloudColor.IsZero() {
		cloud = cloud.Tinted(city.Config.CloudColor)
	}

	extent := float64(city.grid.HalfSize) * city.grid.TileSize

	for i := 0; i < city.Config.CloudCount; i++ {
		angle := rng.Float64() * math.Pi * 2
		radius := extent * (0.7 + rng.Float64()*0.5)
		y := 20 + rng.Float64()*10
		scale := 0.015 + rng.Float64()*0.002
		yaw := rng.Float64() * math.Pi * 2
		city.place(cloud, "cloud", geom.NewVector(math.Cos(angle)*radius, y, math.Sin(angle)*radius), geom.NewVector(0, yaw, 0), geom.Uniform(scale), false)
		city.stats.Clouds++
	}

}

// IsNearRoad returns true when a road was placed within maxDistance tiles (on both axes) of the world position (x, z).
func (city *CityBuilder) IsNearRoad(x, z float64, maxDistance int) bool {

	tile := city.grid.TileSize
	if tile <= 0 {
		return false
	}

	for dx := -maxDistance; dx <= maxDistance; dx++ {
		for dz := -maxDistance; dz <= maxDistance; dz++ {
			checkX := math.Round((x+float64(dx)*tile)/tile) * tile
			checkZ := math.Round((z+float64(dz)*tile)/tile) * tile
			if city.roadPositions[[2]float64{checkX, checkZ}] {
				return true
			}
		}
	}

	return false

}

// DeliveryCandidates returns the positions of every placed building that lies within Config.NearRoadDistance tiles of a
// road. A negative NearRoadDistance skips the road check and returns every building.
func (city *CityBuilder) DeliveryCandidates() []geom.Vector {
	candidates := make([]geom.Vector, 0, len(city.buildings))
	for _, b := range city.buildings {
		if city.Config.NearRoadDistance < 0 || city.IsNearRoad(b.X, b.Z, city.Config.NearRoadDistance) {
			candidates = append(candidates, b)
		}
	}
	return candidates
}

// Cells returns every cell classified by Generate, in placement order.
func (city *CityBuilder) Cells() []Cell {
	return city.cells
}

// Grid returns the Grid the city was generated on.
func (city *CityBuilder) Grid() Grid {
	return city.grid
}

// Stats returns the placement counters.
func (city *CityBuilder) Stats() CityStats {
	return city.stats
}
