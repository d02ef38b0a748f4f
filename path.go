package courier

import (
	"math"

	"github.com/parcelrun/courier/geom"
)

// PathFollower moves along a closed loop of waypoints at a constant speed, forever. Index is the waypoint the current segment
// starts from, and Progress (in [0, 1)) how far along the segment the follower is.
type PathFollower struct {
	Points   []geom.Vector
	Speed    float64 // Fraction of a segment covered per Advance
	Index    int
	Progress float64
}

// NewPathFollower creates a new PathFollower starting at the first of the points given.
func NewPathFollower(points []geom.Vector, speed float64) *PathFollower {
	return &PathFollower{
		Points: append([]geom.Vector(nil), points...),
		Speed:  speed,
	}
}

// Moving returns if the path has enough points to move along.
func (path *PathFollower) Moving() bool {
	return len(path.Points) >= 2
}

// Advance moves the follower along by Speed. When the end of a segment is reached, Progress restarts at 0 on the next segment,
// wrapping around to the first waypoint after the last.
func (path *PathFollower) Advance() {

	if !path.Moving() {
		return
	}

	path.Progress += path.Speed

	if path.Progress >= 1 {
		path.Progress = 0
		path.Index = (path.Index + 1) % len(path.Points)
	}

}

// Current returns the waypoint the current segment starts from.
func (path *PathFollower) Current() geom.Vector {
	if len(path.Points) == 0 {
		return geom.Vector{}
	}
	return path.Points[path.Index]
}

// Next returns the waypoint the current segment ends at.
func (path *PathFollower) Next() geom.Vector {
	if len(path.Points) == 0 {
		return geom.Vector{}
	}
	return path.Points[(path.Index+1)%len(path.Points)]
}

// Position returns the follower's position, interpolated along the current segment.
func (path *PathFollower) Position() geom.Vector {
	return path.Current().Lerp(path.Next(), path.Progress)
}

// Direction returns the unit direction of the current segment.
func (path *PathFollower) Direction() geom.Vector {
	return path.Next().Sub(path.Current()).Unit()
}

// Yaw returns the rotation around +Y that faces +Z down the current segment.
func (path *PathFollower) Yaw() float64 {
	dir := path.Direction()
	return math.Atan2(dir.X, dir.Z)
}
