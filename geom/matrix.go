package geom

import (
	"math"
	"strconv"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation. A Matrix4 is row-major and multiplies row vectors
// (i.e. the X axis is matrix[0] and the translation lives in matrix[3]), so A.Mult(B) applies A first, then B.
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// This rotation works as though you pierced the object through by the axis, and then rotated it counter-clockwise by the angle.
func NewMatrix4Rotate(x, y, z, angle float64) Matrix4 {

	// Default to spinning on +Y axis if there is no valid axis
	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	mat := NewMatrix4()
	axis := Vector{X: x, Y: y, Z: z}.Unit()
	s, c := math.Sincos(angle)
	m := 1 - c

	mat[0][0] = m*axis.X*axis.X + c
	mat[0][1] = m*axis.X*axis.Y + axis.Z*s
	mat[0][2] = m*axis.Z*axis.X - axis.Y*s

	mat[1][0] = m*axis.X*axis.Y - axis.Z*s
	mat[1][1] = m*axis.Y*axis.Y + c
	mat[1][2] = m*axis.Y*axis.Z + axis.X*s

	mat[2][0] = m*axis.Z*axis.X + axis.Y*s
	mat[2][1] = m*axis.Y*axis.Z - axis.X*s
	mat[2][2] = m*axis.Z*axis.Z + c

	return mat

}

// NewMatrix4RotateFromEuler creates a rotation Matrix4 from the euler angles (in radians) contained within the Vector.
// The rotation order matches the common XYZ convention: a vertex is rotated around Z first, then Y, then X.
func NewMatrix4RotateFromEuler(euler Vector) Matrix4 {
	mat := NewMatrix4()
	if euler.Z != 0 {
		mat = mat.Mult(NewMatrix4Rotate(0, 0, 1, euler.Z))
	}
	if euler.Y != 0 {
		mat = mat.Mult(NewMatrix4Rotate(0, 1, 0, euler.Y))
	}
	if euler.X != 0 {
		mat = mat.Mult(NewMatrix4Rotate(1, 0, 0, euler.X))
	}
	return mat
}

// NewMatrix4Compose returns the Matrix4 that scales, then rotates (by euler angles), then translates.
func NewMatrix4Compose(position, rotation, scale Vector) Matrix4 {
	return NewMatrix4Scale(scale.X, scale.Y, scale.Z).
		Mult(NewMatrix4RotateFromEuler(rotation)).
		Mult(NewMatrix4Translate(position.X, position.Y, position.Z))
}

// NewViewMatrix returns the Matrix4 that takes world-space positions into the view space of an eye at from looking at to.
// View space looks down -Z with +Y up, as in OpenGL.
func NewViewMatrix(from, to, up Vector) Matrix4 {

	forward := to.Sub(from).Unit()

	// If forward and up are parallel the basis is unusable, so swap up out for another axis
	if math.Abs(forward.Dot(up.Unit())) > 0.9999 {
		up = VecZ
	}

	right := forward.Cross(up).Unit()
	camUp := right.Cross(forward)

	return Matrix4{
		{right.X, camUp.X, -forward.X, 0},
		{right.Y, camUp.Y, -forward.Y, 0},
		{right.Z, camUp.Z, -forward.Z, 0},
		{-right.Dot(from), -camUp.Dot(from), forward.Dot(from), 1},
	}

}

// MultVec multiplies the vector provided by the Matrix4, giving a vector that has been rotated, scaled, or translated as desired.
func (matrix Matrix4) MultVec(vect Vector) Vector {
	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}
}

// MultVecNoTranslation multiplies the direction provided by the Matrix4's rotation and scale only.
func (matrix Matrix4) MultVecNoTranslation(vect Vector) Vector {
	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z,
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z,
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z,
	}
}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {
	var newMat Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			newMat[i][j] = matrix[i][0]*other[0][j] + matrix[i][1]*other[1][j] + matrix[i][2]*other[2][j] + matrix[i][3]*other[3][j]
		}
	}
	return newMat
}

// Transposed returns a transposed copy of the Matrix4.
func (matrix Matrix4) Transposed() Matrix4 {
	var newMat Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			newMat[i][j] = matrix[j][i]
		}
	}
	return newMat
}

// Equals returns true if the two matrices are equal within a small tolerance.
func (matrix Matrix4) Equals(other Matrix4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(matrix[i][j]-other[i][j]) > 1e-9 {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(NewMatrix4())
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, row := range matrix {
		for j, value := range row {
			s += strconv.FormatFloat(value, 'f', 3, 64)
			if j < 3 {
				s += ", "
			}
		}
		if i < 3 {
			s += "\n "
		}
	}
	return s + "}"
}
