// vecmath.go - Vector and Matrix Primitives
//
// Small fixed-size vector/matrix types for the software rendering
// pipeline: Vec3, Vec4 (homogeneous point), and Mat4 (row-major 4x4).
// The multiplication convention throughout this package is right
// multiply: applying a transform to the current matrix is written
// `current = current.Mul(transform)`, matching the way the state
// machine chains Translatef/Scalef/Rotatef calls onto the active
// matrix stack.

package fakegl

import "math"

// Vec3 is a three-component vector or point.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}
func (v Vec3) Length() float32 { return float32(math.Sqrt(float64(v.Dot(v)))) }

// Normalize returns a unit vector, or the zero vector if v is zero-length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Vec4 is a homogeneous point or direction.
type Vec4 struct {
	X, Y, Z, W float32
}

func (v Vec4) Point() Vec3 {
	if v.W == 0 || v.W == 1 {
		return Vec3{v.X, v.Y, v.Z}
	}
	inv := 1 / v.W
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

func (v Vec4) Vector() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Mat4 is a row-major 4x4 matrix: m[row][col].
type Mat4 [4][4]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns m * o (right multiply), the convention used when chaining
// a new transform onto the currently active matrix.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row][k] * o[k][col]
			}
			r[row][col] = sum
		}
	}
	return r
}

// MulVec4 transforms a homogeneous vector by m.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// MulPoint transforms a Vec3 as a point (w=1).
func (m Mat4) MulPoint(v Vec3) Vec3 { return m.MulVec4(Vec4{v.X, v.Y, v.Z, 1}).Point() }

// MulDir transforms a Vec3 as a direction (w=0).
func (m Mat4) MulDir(v Vec3) Vec3 { return m.MulVec4(Vec4{v.X, v.Y, v.Z, 0}).Vector() }

func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row][col] = m[col][row]
		}
	}
	return r
}

// Inverse computes the matrix inverse via the classical adjugate method.
// If the determinant is (near) zero the matrix is returned unchanged,
// matching the source's fallback for degenerate model-view matrices.
func (m Mat4) Inverse() Mat4 {
	a0 := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	a1 := m[0][0]*m[1][2] - m[0][2]*m[1][0]
	a2 := m[0][0]*m[1][3] - m[0][3]*m[1][0]
	a3 := m[0][1]*m[1][2] - m[0][2]*m[1][1]
	a4 := m[0][1]*m[1][3] - m[0][3]*m[1][1]
	a5 := m[0][2]*m[1][3] - m[0][3]*m[1][2]
	b0 := m[2][0]*m[3][1] - m[2][1]*m[3][0]
	b1 := m[2][0]*m[3][2] - m[2][2]*m[3][0]
	b2 := m[2][0]*m[3][3] - m[2][3]*m[3][0]
	b3 := m[2][1]*m[3][2] - m[2][2]*m[3][1]
	b4 := m[2][1]*m[3][3] - m[2][3]*m[3][1]
	b5 := m[2][2]*m[3][3] - m[2][3]*m[3][2]

	det := a0*b5 - a1*b4 + a2*b3 + a3*b2 - a4*b1 + a5*b0
	if det > -1e-9 && det < 1e-9 {
		return m
	}
	invDet := 1 / det

	var r Mat4
	r[0][0] = (m[1][1]*b5 - m[1][2]*b4 + m[1][3]*b3) * invDet
	r[0][1] = (-m[0][1]*b5 + m[0][2]*b4 - m[0][3]*b3) * invDet
	r[0][2] = (m[3][1]*a5 - m[3][2]*a4 + m[3][3]*a3) * invDet
	r[0][3] = (-m[2][1]*a5 + m[2][2]*a4 - m[2][3]*a3) * invDet

	r[1][0] = (-m[1][0]*b5 + m[1][2]*b2 - m[1][3]*b1) * invDet
	r[1][1] = (m[0][0]*b5 - m[0][2]*b2 + m[0][3]*b1) * invDet
	r[1][2] = (-m[3][0]*a5 + m[3][2]*a2 - m[3][3]*a1) * invDet
	r[1][3] = (m[2][0]*a5 - m[2][2]*a2 + m[2][3]*a1) * invDet

	r[2][0] = (m[1][0]*b4 - m[1][1]*b2 + m[1][3]*b0) * invDet
	r[2][1] = (-m[0][0]*b4 + m[0][1]*b2 - m[0][3]*b0) * invDet
	r[2][2] = (m[3][0]*a4 - m[3][1]*a2 + m[3][3]*a0) * invDet
	r[2][3] = (-m[2][0]*a4 + m[2][1]*a2 - m[2][3]*a0) * invDet

	r[3][0] = (-m[1][0]*b3 + m[1][1]*b1 - m[1][2]*b0) * invDet
	r[3][1] = (m[0][0]*b3 - m[0][1]*b1 + m[0][2]*b0) * invDet
	r[3][2] = (-m[3][0]*a3 + m[3][1]*a1 - m[3][2]*a0) * invDet
	r[3][3] = (m[2][0]*a3 - m[2][1]*a1 + m[2][2]*a0) * invDet
	return r
}

// ColumnMajor exports m in column-major order, for consumers expecting
// the classic OpenGL float[16] layout.
func (m Mat4) ColumnMajor() [16]float32 {
	var out [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[4*col+row] = m[row][col]
		}
	}
	return out
}

func Translation(x, y, z float32) Mat4 {
	m := Identity4()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

func Scaling(x, y, z float32) Mat4 {
	m := Identity4()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// Rotation builds a rotation matrix for a right-handed rotation of
// angleRadians about axis, via the standard axis-angle (Rodrigues) form.
func Rotation(axis Vec3, angleRadians float32) Mat4 {
	a := axis.Normalize()
	s := float32(math.Sin(float64(angleRadians)))
	c := float32(math.Cos(float64(angleRadians)))
	t := 1 - c

	m := Identity4()
	m[0][0] = t*a.X*a.X + c
	m[0][1] = t*a.X*a.Y - s*a.Z
	m[0][2] = t*a.X*a.Z + s*a.Y

	m[1][0] = t*a.X*a.Y + s*a.Z
	m[1][1] = t*a.Y*a.Y + c
	m[1][2] = t*a.Y*a.Z - s*a.X

	m[2][0] = t*a.X*a.Z - s*a.Y
	m[2][1] = t*a.Y*a.Z + s*a.X
	m[2][2] = t*a.Z*a.Z + c
	return m
}

// Frustum builds a perspective projection matrix from six clip planes.
func Frustum(left, right, bottom, top, near, far float32) Mat4 {
	var m Mat4
	m[0][0] = 2 * near / (right - left)
	m[0][2] = (right + left) / (right - left)
	m[1][1] = 2 * near / (top - bottom)
	m[1][2] = (top + bottom) / (top - bottom)
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -2 * far * near / (far - near)
	m[3][2] = -1
	return m
}

// Ortho builds an orthographic projection matrix from six clip planes.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	m := Identity4()
	m[0][0] = 2 / (right - left)
	m[0][3] = -(right + left) / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[1][3] = -(top + bottom) / (top - bottom)
	m[2][2] = -2 / (far - near)
	m[2][3] = -(far + near) / (far - near)
	return m
}

func lerpFloat32(a, b, t float32) float32 { return a + (b-a)*t }

func lerpVec3(a, b Vec3, t float32) Vec3 {
	return Vec3{lerpFloat32(a.X, b.X, t), lerpFloat32(a.Y, b.Y, t), lerpFloat32(a.Z, b.Z, t)}
}
