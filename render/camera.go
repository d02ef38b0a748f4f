package render

import (
	"math"

	"github.com/parcelrun/courier"
	"github.com/parcelrun/courier/geom"
)

// Camera is a perspective camera. It looks from Position towards Target, with +Y up; view space looks down -Z.
type Camera struct {
	Width, Height int
	FieldOfView   float64 // Vertical field of view, in degrees
	Near, Far     float64

	Position geom.Vector
	Target   geom.Vector

	view geom.Matrix4
}

// NewCamera creates a new Camera of the size given, taking its field of view and clipping planes from the config.
func NewCamera(width, height int, config courier.CameraConfig) *Camera {
	cam := &Camera{
		Width:       width,
		Height:      height,
		FieldOfView: config.FOV,
		Near:        config.Near,
		Far:         config.Far,
	}
	cam.LookAt(config.Start.Vector(), geom.Vector{})
	return cam
}

// LookAt places the Camera at from, looking at to.
func (camera *Camera) LookAt(from, to geom.Vector) {
	camera.Position = from
	camera.Target = to
	camera.view = geom.NewViewMatrix(from, to, geom.VecY)
}

// Follow points the Camera the way a courier.FollowCamera says.
func (camera *Camera) Follow(follow *courier.FollowCamera) {
	camera.LookAt(follow.Position, follow.LookAt)
}

// Resize changes the size of the image the Camera projects onto.
func (camera *Camera) Resize(width, height int) {
	camera.Width = width
	camera.Height = height
}

// ViewMatrix returns the matrix taking world-space positions into the Camera's view space.
func (camera *Camera) ViewMatrix() geom.Matrix4 {
	return camera.view
}

// AspectRatio returns the Camera's width divided by its height.
func (camera *Camera) AspectRatio() float64 {
	if camera.Height == 0 {
		return 1
	}
	return float64(camera.Width) / float64(camera.Height)
}

// ToView transforms a world-space position into view space.
func (camera *Camera) ToView(world geom.Vector) geom.Vector {
	return camera.view.MultVec(world)
}

// ViewToScreen projects a view-space position (in front of the Camera) onto the screen. X and Y are in pixels from the
// top-left corner; Z is the distance in front of the Camera.
func (camera *Camera) ViewToScreen(view geom.Vector) geom.Vector {

	depth := -view.Z
	if depth <= 0 {
		depth = 1e-6
	}

	f := 1 / math.Tan(geom.DegToRad(camera.FieldOfView)/2)

	ndcX := f / camera.AspectRatio() * view.X / depth
	ndcY := f * view.Y / depth

	width, height := float64(camera.Width), float64(camera.Height)

	return geom.NewVector(
		(ndcX+1)/2*width,
		(1-ndcY)/2*height,
		depth,
	)

}

// WorldToScreenPixels projects a world-space position onto the screen in pixels, as ViewToScreen does. It returns false
// if the position lies outside of the Camera's near and far planes.
func (camera *Camera) WorldToScreenPixels(world geom.Vector) (geom.Vector, bool) {
	view := camera.ToView(world)
	depth := -view.Z
	if depth < camera.Near || depth > camera.Far {
		return geom.Vector{}, false
	}
	return camera.ViewToScreen(view), true
}

// WorldToScreen projects a world-space position onto the screen, with X and Y ranging from -1 to 1 across it.
func (camera *Camera) WorldToScreen(world geom.Vector) (geom.Vector, bool) {
	v, ok := camera.WorldToScreenPixels(world)
	if !ok {
		return v, false
	}
	v.X = v.X/(float64(camera.Width)/2) - 1
	v.Y = v.Y/(float64(camera.Height)/2) - 1
	return v, true
}
