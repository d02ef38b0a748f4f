package geom

import (
	"math"
	"strconv"
)

// VecX, VecY and VecZ are unit vectors along the world axes of the right-handed coordinate system (X right, Y up, Z towards the viewer).
var (
	VecX = NewVector(1, 0, 0)
	VecY = NewVector(0, 1, 0)
	VecZ = NewVector(0, 0, 1)
)

// Vector represents a 3D Vector used for positions, directions, velocities and scales.
// Vector functions that modify the calling Vector return modified copies, so calls can be chained:
// `pos := NewVector(1, 0, 0).Scale(3).Add(VecY)`.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Uniform returns a Vector with all three components set to v; useful for isotropic scales.
func Uniform(v float64) Vector {
	return Vector{X: v, Y: v, Z: v}
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale returns a copy of the Vector with every component multiplied by the scalar given.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// MultComp returns a copy of the Vector multiplied component-wise by the other Vector.
func (vec Vector) MultComp(other Vector) Vector {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// Invert returns a copy of the Vector pointing the opposite way.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Cross returns the cross product of the calling Vector and the other Vector.
func (vec Vector) Cross(other Vector) Vector {
	return Vector{
		X: vec.Y*other.Z - vec.Z*other.Y,
		Y: vec.Z*other.X - vec.X*other.Z,
		Z: vec.X*other.Y - vec.Y*other.X,
	}
}

// Dot returns the dot product of the calling Vector and the other Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the distance between the two Vectors.
func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// PlanarDistance returns the distance between the two Vectors on the XZ ground plane, ignoring height.
func (vec Vector) PlanarDistance(other Vector) float64 {
	dx := vec.X - other.X
	dz := vec.Z - other.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
// A (near) zero-length Vector is returned unchanged.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Lerp returns the Vector linearly interpolated between the calling Vector (percent 0) and the other Vector (percent 1).
func (vec Vector) Lerp(other Vector, percent float64) Vector {
	vec.X += (other.X - vec.X) * percent
	vec.Y += (other.Y - vec.Y) * percent
	vec.Z += (other.Z - vec.Z) * percent
	return vec
}

// RotateY returns a copy of the Vector rotated counter-clockwise around +Y by the angle given in radians.
// With this convention, rotating VecZ by angle a gives (sin a, 0, cos a).
func (vec Vector) RotateY(angle float64) Vector {
	s, c := math.Sincos(angle)
	return Vector{
		X: c*vec.X + s*vec.Z,
		Y: vec.Y,
		Z: -s*vec.X + c*vec.Z,
	}
}

// SetX returns a copy of the Vector with the X component set to the value provided.
func (vec Vector) SetX(x float64) Vector {
	vec.X = x
	return vec
}

// SetY returns a copy of the Vector with the Y component set to the value provided.
func (vec Vector) SetY(y float64) Vector {
	vec.Y = y
	return vec
}

// SetZ returns a copy of the Vector with the Z component set to the value provided.
func (vec Vector) SetZ(z float64) Vector {
	vec.Z = z
	return vec
}

// Abs returns a copy of the Vector with every component made positive.
func (vec Vector) Abs() Vector {
	return Vector{math.Abs(vec.X), math.Abs(vec.Y), math.Abs(vec.Z)}
}

// Min returns the component-wise minimum of the two Vectors.
func (vec Vector) Min(other Vector) Vector {
	return Vector{math.Min(vec.X, other.X), math.Min(vec.Y, other.Y), math.Min(vec.Z, other.Z)}
}

// Max returns the component-wise maximum of the two Vectors.
func (vec Vector) Max(other Vector) Vector {
	return Vector{math.Max(vec.X, other.X), math.Max(vec.Y, other.Y), math.Max(vec.Z, other.Z)}
}

// IsZero returns if every component of the Vector is exactly zero.
func (vec Vector) IsZero() bool {
	return vec.X == 0 && vec.Y == 0 && vec.Z == 0
}

// Equals returns if the two Vectors are equal within a small tolerance.
func (vec Vector) Equals(other Vector) bool {
	const eps = 1e-9
	return math.Abs(vec.X-other.X) <= eps && math.Abs(vec.Y-other.Y) <= eps && math.Abs(vec.Z-other.Z) <= eps
}

// String returns a string representation of the Vector, excellent for debugging purposes.
func (vec Vector) String() string {
	s := "{"
	s += strconv.FormatFloat(vec.X, 'f', -1, 64) + ", "
	s += strconv.FormatFloat(vec.Y, 'f', -1, 64) + ", "
	s += strconv.FormatFloat(vec.Z, 'f', -1, 64) + "}"
	return s
}

// Clamp returns the value clamped between min and max.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}
