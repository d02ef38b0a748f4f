package geom

import "math"

// Quaternion represents a rotation. Only unit quaternions are meaningful as rotations.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion returns a new Quaternion with the components given.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuaternionIdentity returns the Quaternion representing no rotation.
func NewQuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// NewQuaternionYaw returns the half-angle Quaternion for a rotation of angle radians around +Y: (0, sin(a/2), 0, cos(a/2)).
func NewQuaternionYaw(angle float64) Quaternion {
	s, c := math.Sincos(angle / 2)
	return Quaternion{X: 0, Y: s, Z: 0, W: c}
}

// Yaw returns the rotation angle around +Y that the Quaternion represents, assuming it only rotates around Y.
func (quat Quaternion) Yaw() float64 {
	return 2 * math.Atan2(quat.Y, quat.W)
}

// Dot returns the dot product of the two Quaternions.
func (quat Quaternion) Dot(other Quaternion) float64 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// Magnitude returns the length of the Quaternion.
func (quat Quaternion) Magnitude() float64 {
	return math.Sqrt(quat.Dot(quat))
}

// Normalized returns a unit-length copy of the Quaternion. A zero Quaternion normalizes to identity.
func (quat Quaternion) Normalized() Quaternion {
	m := quat.Magnitude()
	if m == 0 {
		return NewQuaternionIdentity()
	}
	return Quaternion{quat.X / m, quat.Y / m, quat.Z / m, quat.W / m}
}

// RotateVector rotates the Vector given by the Quaternion.
func (quat Quaternion) RotateVector(vec Vector) Vector {
	// v' = v + 2w(q x v) + 2(q x (q x v))
	q := Vector{quat.X, quat.Y, quat.Z}
	t := q.Cross(vec).Scale(2)
	return vec.Add(t.Scale(quat.W)).Add(q.Cross(t))
}

// ToMatrix4 returns a rotation Matrix4 equivalent to the Quaternion.
func (quat Quaternion) ToMatrix4() Matrix4 {
	q := quat.Normalized()
	x, y, z, w := q.X, q.Y, q.Z, q.W

	mat := NewMatrix4()

	mat[0][0] = 1 - 2*(y*y+z*z)
	mat[0][1] = 2 * (x*y + z*w)
	mat[0][2] = 2 * (x*z - y*w)

	mat[1][0] = 2 * (x*y - z*w)
	mat[1][1] = 1 - 2*(x*x+z*z)
	mat[1][2] = 2 * (y*z + x*w)

	mat[2][0] = 2 * (x*z + y*w)
	mat[2][1] = 2 * (y*z - x*w)
	mat[2][2] = 1 - 2*(x*x+y*y)

	return mat
}
