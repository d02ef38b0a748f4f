package courier

import (
	"math/rand/v2"

	"github.com/parcelrun/courier/geom"
)

// DeliveryState is the state of an Objective.
type DeliveryState int

const (
	NoTarget     DeliveryState = iota // Nothing to deliver to, either before Start or because there are no candidates
	TargetActive                      // A target is waiting for a delivery
)

func (state DeliveryState) String() string {
	switch state {
	case NoTarget:
		return "no target"
	case TargetActive:
		return "target active"
	}
	return "unknown"
}

// Objective hands out delivery targets picked uniformly from a set of candidates. Reaching the active target scores a
// delivery and immediately picks the next one; targets never expire.
type Objective struct {
	State  DeliveryState
	Radius float64 // A delivery succeeds strictly within this planar distance of the target

	candidates []geom.Vector
	target     geom.Vector
	score      int
	rng        *rand.Rand

	scene        SceneSink
	marker       *Model
	markerNode   NodeID
	markerHeight float64

	listeners []func(score int, next geom.Vector)
}

// NewObjective creates a new Objective choosing among the candidates given.
func NewObjective(candidates []geom.Vector, radius float64, rng *rand.Rand) *Objective {
	return &Objective{
		State:      NoTarget,
		Radius:     radius,
		candidates: append([]geom.Vector(nil), candidates...),
		rng:        rng,
		markerNode: NoNode,
	}
}

// SetMarker has the Objective show its target with the Model given, height units above the ground.
// The marker is placed when the first target is picked.
func (obj *Objective) SetMarker(scene SceneSink, model *Model, height float64) {
	obj.scene = scene
	obj.marker = model
	obj.markerHeight = height
}

// OnDelivered registers a function called after each successful delivery with the new score and the next target.
func (obj *Objective) OnDelivered(listener func(score int, next geom.Vector)) {
	obj.listeners = append(obj.listeners, listener)
}

// Start picks the first target. With no candidates, the Objective stays in NoTarget.
func (obj *Objective) Start() {
	obj.retarget()
}

func (obj *Objective) retarget() {

	if len(obj.candidates) == 0 {
		obj.State = NoTarget
		return
	}

	obj.target = obj.candidates[obj.rng.IntN(len(obj.candidates))]
	obj.State = TargetActive

	if obj.scene == nil || obj.marker == nil {
		return
	}

	transform := Transform{Position: obj.target.SetY(obj.markerHeight), Scale: geom.Uniform(1)}

	if obj.markerNode == NoNode {
		obj.markerNode = obj.scene.Add(obj.marker, transform)
	} else {
		obj.scene.SetTransform(obj.markerNode, transform)
	}

}

// Check scores a delivery if position is strictly within Radius of the active target, ignoring height, and returns true if so.
func (obj *Objective) Check(position geom.Vector) bool {

	if obj.State != TargetActive {
		return false
	}

	if position.PlanarDistance(obj.target) >= obj.Radius {
		return false
	}

	obj.score++
	obj.retarget()

	for _, listener := range obj.listeners {
		listener(obj.score, obj.target)
	}

	return true

}

// Target returns the active target, and false if there isn't one.
func (obj *Objective) Target() (geom.Vector, bool) {
	return obj.target, obj.State == TargetActive
}

// Score returns the number of deliveries made.
func (obj *Objective) Score() int {
	return obj.score
}

// Candidates returns how many targets the Objective can choose from.
func (obj *Objective) Candidates() int {
	return len(obj.candidates)
}
