package geom

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorRotateYMatchesForward(t *testing.T) {
	for _, angle := range []float64{0, math.Pi / 2, math.Pi, -math.Pi / 3, 2.5} {
		rotated := VecZ.RotateY(angle)
		assert.InDelta(t, math.Sin(angle), rotated.X, 1e-12)
		assert.InDelta(t, 0, rotated.Y, 1e-12)
		assert.InDelta(t, math.Cos(angle), rotated.Z, 1e-12)
	}
}

func TestVectorPlanarDistanceIgnoresHeight(t *testing.T) {
	a := NewVector(0, 100, 0)
	b := NewVector(3, -7, 4)
	assert.InDelta(t, 5, a.PlanarDistance(b), 1e-12)
	assert.Greater(t, a.Distance(b), 5.0)
}

func TestVectorLerpEndpoints(t *testing.T) {
	a := NewVector(-11, 0.3, -11)
	b := NewVector(11, 0.3, -11)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.True(t, b.Equals(a.Lerp(b, 1)))
	assert.True(t, NewVector(0, 0.3, -11).Equals(a.Lerp(b, 0.5)))
}

func TestVectorUnitOfZeroIsZero(t *testing.T) {
	assert.Equal(t, Vector{}, Vector{}.Unit())
	assert.InDelta(t, 1, NewVector(3, 4, 12).Unit().Magnitude(), 1e-12)
}

func TestQuaternionYawRoundTrip(t *testing.T) {
	for _, angle := range []float64{0, 0.3, math.Pi / 2, -2.9} {
		q := NewQuaternionYaw(angle)
		assert.InDelta(t, 1, q.Magnitude(), 1e-12)
		assert.InDelta(t, angle, q.Yaw(), 1e-12)

		v := NewVector(1, 2, 3)
		assert.True(t, v.RotateY(angle).Equals(q.RotateVector(v)), "angle %f", angle)
		assert.True(t, v.RotateY(angle).Equals(q.ToMatrix4().MultVec(v)), "angle %f", angle)
	}
}

func TestMatrixRotateYAgreesWithVector(t *testing.T) {
	mat := NewMatrix4Rotate(0, 1, 0, 0.7)
	v := NewVector(2, 1, -1)
	assert.True(t, v.RotateY(0.7).Equals(mat.MultVec(v)))
	assert.True(t, mat.Equals(NewMatrix4RotateFromEuler(NewVector(0, 0.7, 0))))
}

func TestMatrixComposeOrder(t *testing.T) {
	mat := NewMatrix4Compose(NewVector(10, 0, 0), NewVector(0, math.Pi/2, 0), NewVector(2, 2, 2))
	// (0,0,1) scaled to (0,0,2), rotated to (2,0,0), then translated.
	assert.True(t, NewVector(12, 0, 0).Equals(mat.MultVec(VecZ)))
}

func TestMatrixMultIdentity(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	var mat Matrix4
	for i := range mat {
		for j := range mat[i] {
			mat[i][j] = r.Float64()
		}
	}
	assert.True(t, mat.Mult(NewMatrix4()).Equals(mat))
	assert.True(t, NewMatrix4().Mult(mat).Equals(mat))
	assert.True(t, mat.Transposed().Transposed().Equals(mat))
}

func TestViewMatrixLooksDownNegativeZ(t *testing.T) {
	view := NewViewMatrix(NewVector(0, 0, 10), Vector{}, VecY)
	p := view.MultVec(Vector{})
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
	assert.InDelta(t, -10, p.Z, 1e-9)

	up := view.MultVec(NewVector(0, 1, 0))
	assert.InDelta(t, 1, up.Y, 1e-9)

	right := view.MultVec(NewVector(1, 0, 0))
	assert.InDelta(t, 1, right.X, 1e-9)

	// Looking straight down still yields a usable basis.
	down := NewViewMatrix(NewVector(0, 10, 0), Vector{}, VecY)
	assert.InDelta(t, -10, down.MultVec(Vector{}).Z, 1e-9)
}

func TestAABBPenetrationPrefersSmallestAxis(t *testing.T) {
	ground := NewAABBFromCenter(NewVector(0, -0.1, 0), NewVector(200, 0.1, 200))
	body := NewAABBFromCenter(NewVector(0, 0.03, 0), NewVector(0.3, 0.05, 0.2))

	normal, depth, ok := body.Penetration(ground)
	require.True(t, ok)
	assert.Equal(t, VecY, normal)
	assert.InDelta(t, 0.02, depth, 1e-12)

	wall := NewAABBFromCenter(NewVector(1, 0, 0), NewVector(0.5, 5, 5))
	side := NewAABBFromCenter(NewVector(0.2, 0, 0), NewVector(0.4, 0.4, 0.4))
	normal, depth, ok = side.Penetration(wall)
	require.True(t, ok)
	assert.Equal(t, NewVector(-1, 0, 0), normal)
	assert.InDelta(t, 0.1, depth, 1e-12)

	_, _, ok = side.Penetration(NewAABBFromCenter(NewVector(10, 0, 0), Uniform(1)))
	assert.False(t, ok)
}

func TestAABBTouchingDoesNotOverlap(t *testing.T) {
	a := NewAABB(Vector{}, Uniform(1))
	b := NewAABB(NewVector(1, 0, 0), NewVector(2, 1, 1))
	assert.False(t, a.Overlaps(b))
}

func TestAABBTransformedByYaw(t *testing.T) {
	box := NewAABBFromCenter(Vector{}, NewVector(2, 1, 0.5))
	rotated := box.Transformed(NewMatrix4Rotate(0, 1, 0, math.Pi/2))
	assert.InDelta(t, 0.5, rotated.HalfExtents().X, 1e-9)
	assert.InDelta(t, 1, rotated.HalfExtents().Y, 1e-9)
	assert.InDelta(t, 2, rotated.HalfExtents().Z, 1e-9)

	assert.True(t, NewEmptyAABB().IsEmpty())
	assert.True(t, NewEmptyAABB().Transformed(NewMatrix4()).IsEmpty())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, -50.0, Clamp(-51, -50, 50))
	assert.Equal(t, 50.0, Clamp(50.5, -50, 50))
	assert.Equal(t, 3.0, Clamp(3, -50, 50))
}
