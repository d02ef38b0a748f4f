package courier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parcelrun/courier/geom"
)

var squareLoop = []geom.Vector{
	geom.NewVector(-11, 0.3, -11),
	geom.NewVector(11, 0.3, -11),
	geom.NewVector(11, 0.3, 11),
	geom.NewVector(-11, 0.3, 11),
}

func TestPathPositionAtSegmentStartIsWaypoint(t *testing.T) {

	path := NewPathFollower(squareLoop, 0.25)

	for i := 0; i < len(squareLoop)*2; i++ {
		assert.Equal(t, 0.0, path.Progress)
		assert.Equal(t, squareLoop[path.Index], path.Position())
		// Four advances of 0.25 finish a segment.
		for k := 0; k < 4; k++ {
			path.Advance()
		}
	}

}

func TestPathApproachesNextWaypoint(t *testing.T) {

	path := NewPathFollower(squareLoop, 0.001)
	for i := 0; i < 999; i++ {
		path.Advance()
	}

	assert.Equal(t, 0, path.Index)
	assert.InDelta(t, 0, path.Position().Distance(squareLoop[1]), 0.05)

}

func TestPathIndexCyclesWithPathLength(t *testing.T) {

	path := NewPathFollower(squareLoop, 0.5)

	seen := []int{}
	for i := 0; i < 16; i++ {
		path.Advance()
		if path.Progress == 0 {
			seen = append(seen, path.Index)
		}
	}

	assert.Equal(t, []int{1, 2, 3, 0, 1, 2, 3, 0}, seen)

}

func TestPathWrapUsesNewSegment(t *testing.T) {

	path := NewPathFollower(squareLoop, 0.5)
	path.Advance()
	path.Advance()

	// The frame that completes a segment is drawn on the new one, not snapped back to the old start.
	assert.Equal(t, 1, path.Index)
	assert.Equal(t, squareLoop[1], path.Position())
	assert.InDelta(t, 0, path.Yaw(), 1e-12, "second segment heads down +Z")

}

func TestPathYawFacesSegment(t *testing.T) {

	path := NewPathFollower(squareLoop, 0.1)
	assert.InDelta(t, math.Pi/2, path.Yaw(), 1e-12, "first segment heads down +X")

	path.Index = 2
	assert.InDelta(t, -math.Pi/2, path.Yaw(), 1e-12)

	path.Index = 3
	assert.InDelta(t, math.Pi, math.Abs(path.Yaw()), 1e-12)

}

func TestPathTooShortNeverMoves(t *testing.T) {

	single := NewPathFollower([]geom.Vector{geom.NewVector(1, 2, 3)}, 0.5)
	single.Advance()
	single.Advance()
	assert.False(t, single.Moving())
	assert.Equal(t, 0, single.Index)
	assert.Equal(t, 0.0, single.Progress)
	assert.Equal(t, geom.NewVector(1, 2, 3), single.Position())

	empty := NewPathFollower(nil, 0.5)
	empty.Advance()
	assert.Equal(t, geom.Vector{}, empty.Position())

}
