package render

import (
	"math"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/parcelrun/courier"
	"github.com/parcelrun/courier/colors"
	"github.com/parcelrun/courier/geom"
)

// MaxBatchTriangles is the most triangles a single DrawTriangles call can take with 16-bit indices.
const MaxBatchTriangles = (1<<16 - 1) / 3

// DebugInfo holds statistics of the last frame a Renderer drew.
type DebugInfo struct {
	FrameTime time.Duration // Time spent transforming, sorting and submitting triangles
	TotalTris int
	DrawnTris int
	DrawCalls int
}

// ScreenTriangle is a triangle ready to draw: Points are in screen pixels, with Z holding the distance from the camera.
type ScreenTriangle struct {
	Points [3]geom.Vector
	Color  colors.Color
	Depth  float64
}

// Renderer draws a Scene through a Camera with flat shading from a single point light and back-to-front triangle sorting.
type Renderer struct {
	LightPosition geom.Vector
	Ambient       float64 // Light level of faces turned away from the light, from 0 to 1
	ClearColor    colors.Color
	DebugInfo     DebugInfo

	triangles []ScreenTriangle
	polygon   []geom.Vector
	vertices  []ebiten.Vertex
	indices   []uint16
	white     *ebiten.Image
}

// NewRenderer creates a new Renderer lit as configured.
func NewRenderer(light courier.LightConfig, clear colors.Color) *Renderer {
	return &Renderer{
		LightPosition: light.Position.Vector(),
		Ambient:       light.Ambient,
		ClearColor:    clear,
	}
}

// Shade returns the light level of a face with the normal given, centered on center.
func (renderer *Renderer) Shade(center, normal geom.Vector) float64 {
	toLight := renderer.LightPosition.Sub(center).Unit()
	// Faces are drawn from both sides.
	lambert := math.Abs(normal.Dot(toLight))
	return renderer.Ambient + (1-renderer.Ambient)*lambert
}

// Prepare transforms, lights, clips and sorts every visible triangle of the Scene for the Camera given. The returned slice
// is ordered from the farthest triangle to the nearest and is reused by the next call.
func (renderer *Renderer) Prepare(scene *Scene, camera *Camera) []ScreenTriangle {

	renderer.triangles = renderer.triangles[:0]
	renderer.DebugInfo.TotalTris = 0

	for _, node := range scene.Nodes() {

		if !node.Visible || node.Model == nil || node.Model.Mesh == nil {
			continue
		}

		mesh := node.Model.Mesh
		matrix := node.Matrix()
		tint := node.Model.Color

		renderer.DebugInfo.TotalTris += len(mesh.Triangles)

		for _, tri := range mesh.Triangles {

			a := matrix.MultVec(mesh.Positions[tri.A])
			b := matrix.MultVec(mesh.Positions[tri.B])
			c := matrix.MultVec(mesh.Positions[tri.C])

			normal := b.Sub(a).Cross(c.Sub(a))
			if normal.IsZero() {
				continue
			}
			normal = normal.Unit()

			center := a.Add(b).Add(c).Scale(1.0 / 3)
			color := tint.Mult(tri.Color).Shaded(float32(renderer.Shade(center, normal)))

			if color.A <= 0 {
				continue
			}

			renderer.polygon = clipNear(renderer.polygon[:0], camera.Near, camera.ToView(a), camera.ToView(b), camera.ToView(c))

			if len(renderer.polygon) < 3 {
				continue
			}

			depth := 0.0
			for _, v := range renderer.polygon {
				depth += -v.Z
			}
			depth /= float64(len(renderer.polygon))

			if depth > camera.Far {
				continue
			}

			first := camera.ViewToScreen(renderer.polygon[0])

			for i := 1; i < len(renderer.polygon)-1; i++ {
				renderer.triangles = append(renderer.triangles, ScreenTriangle{
					Points: [3]geom.Vector{first, camera.ViewToScreen(renderer.polygon[i]), camera.ViewToScreen(renderer.polygon[i+1])},
					Color:  color,
					Depth:  depth,
				})
			}

		}

	}

	sort.SliceStable(renderer.triangles, func(i, j int) bool {
		return renderer.triangles[i].Depth > renderer.triangles[j].Depth
	})

	renderer.DebugInfo.DrawnTris = len(renderer.triangles)

	return renderer.triangles

}

// clipNear clips the view-space triangle a, b, c against the plane near units in front of the camera, appending the
// resulting polygon (zero, three or four points) to out.
func clipNear(out []geom.Vector, near float64, a, b, c geom.Vector) []geom.Vector {

	points := [3]geom.Vector{a, b, c}
	plane := -near

	for i := range points {

		current := points[i]
		next := points[(i+1)%3]

		currentIn := current.Z <= plane
		nextIn := next.Z <= plane

		if currentIn {
			out = append(out, current)
		}

		if currentIn != nextIn {
			t := (plane - current.Z) / (next.Z - current.Z)
			out = append(out, current.Lerp(next, t))
		}

	}

	return out

}

// Draw clears the screen to the ClearColor and draws the Scene onto it through the Camera, resizing the Camera to the screen
// first if need be.
func (renderer *Renderer) Draw(screen *ebiten.Image, scene *Scene, camera *Camera) {

	start := time.Now()

	size := screen.Bounds().Size()
	if camera.Width != size.X || camera.Height != size.Y {
		camera.Resize(size.X, size.Y)
	}

	screen.Fill(renderer.ClearColor.ToNRGBA())

	if renderer.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(colors.White().ToNRGBA())
		renderer.white = img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
	}

	triangles := renderer.Prepare(scene, camera)

	renderer.DebugInfo.DrawCalls = 0

	for batchStart := 0; batchStart < len(triangles); batchStart += MaxBatchTriangles {

		batchEnd := min(batchStart+MaxBatchTriangles, len(triangles))

		renderer.vertices = renderer.vertices[:0]
		renderer.indices = renderer.indices[:0]

		for _, tri := range triangles[batchStart:batchEnd] {
			for _, p := range tri.Points {
				renderer.indices = append(renderer.indices, uint16(len(renderer.vertices)))
				renderer.vertices = append(renderer.vertices, ebiten.Vertex{
					DstX:   float32(p.X),
					DstY:   float32(p.Y),
					SrcX:   1,
					SrcY:   1,
					ColorR: tri.Color.R,
					ColorG: tri.Color.G,
					ColorB: tri.Color.B,
					ColorA: tri.Color.A,
				})
			}
		}

		screen.DrawTriangles(renderer.vertices, renderer.indices, renderer.white, &ebiten.DrawTrianglesOptions{})
		renderer.DebugInfo.DrawCalls++

	}

	renderer.DebugInfo.FrameTime = time.Since(start)

}
