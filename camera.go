package courier

import "github.com/parcelrun/courier/geom"

// FollowCamera chases a target from behind: each frame it moves a fraction of the way towards an offset rotated by the target's
// yaw, and looks at a point above the target.
type FollowCamera struct {
	Position   geom.Vector
	LookAt     geom.Vector
	Offset     geom.Vector
	Smoothing  float64
	LookHeight float64
}

// NewFollowCamera creates a new FollowCamera at the configured start position, looking at the origin.
func NewFollowCamera(config CameraConfig) *FollowCamera {
	return &FollowCamera{
		Position:   config.Start.Vector(),
		Offset:     config.Offset.Vector(),
		Smoothing:  config.Smoothing,
		LookHeight: config.LookHeight,
	}
}

// Goal returns where the camera wants to be for a target at position facing yaw.
func (cam *FollowCamera) Goal(position geom.Vector, yaw float64) geom.Vector {
	return position.Add(cam.Offset.RotateY(yaw))
}

// Follow moves the camera one frame closer to its goal behind the target.
func (cam *FollowCamera) Follow(position geom.Vector, yaw float64) {
	cam.Position = cam.Position.Lerp(cam.Goal(position, yaw), cam.Smoothing)
	cam.LookAt = position.Add(geom.NewVector(0, cam.LookHeight, 0))
}
