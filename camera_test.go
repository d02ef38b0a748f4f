package courier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parcelrun/courier/geom"
)

func TestFollowCameraSitsBehindTarget(t *testing.T) {

	cam := NewFollowCamera(DefaultConfig().Camera)
	assert.Equal(t, geom.NewVector(50, 50, 50), cam.Position)

	// Facing +Z, behind is -Z.
	assert.True(t, geom.NewVector(0, 4, -7).Equals(cam.Goal(geom.Vector{}, 0)))
	// Facing +X, behind is -X.
	assert.True(t, geom.NewVector(-7, 4, 0).Equals(cam.Goal(geom.Vector{}, math.Pi/2)))

}

func TestFollowCameraConverges(t *testing.T) {

	cam := NewFollowCamera(DefaultConfig().Camera)
	target := geom.NewVector(10, 0, 10)

	previous := cam.Position.Distance(cam.Goal(target, 0))
	cam.Follow(target, 0)
	first := cam.Position.Distance(cam.Goal(target, 0))
	assert.InDelta(t, previous*0.9, first, 1e-9)

	for i := 0; i < 300; i++ {
		cam.Follow(target, 0)
	}

	assert.InDelta(t, 0, cam.Position.Distance(cam.Goal(target, 0)), 1e-6)
	assert.Equal(t, geom.NewVector(10, 1.5, 10), cam.LookAt)

}
