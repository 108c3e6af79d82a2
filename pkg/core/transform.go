package core

import "github.com/go-gl/mathgl/mgl64"

// Transform places an object-space shape in the world.
// The matrix is built as T * Rx * Ry * Rz * S; rotation angles are in degrees.
type Transform struct {
	Translation Vec3
	Rotation    Vec3
	Scale       Vec3

	matrix       mgl64.Mat4
	inverse      mgl64.Mat4
	invTranspose mgl64.Mat4
}

// NewTransform builds a transform and caches its inverse and inverse-transpose
func NewTransform(translation, rotation, scale Vec3) Transform {
	m := mgl64.Translate3D(translation.X, translation.Y, translation.Z).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(rotation.X))).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(rotation.Y))).
		Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(rotation.Z))).
		Mul4(mgl64.Scale3D(scale.X, scale.Y, scale.Z))

	inv := m.Inv()
	return Transform{
		Translation:  translation,
		Rotation:     rotation,
		Scale:        scale,
		matrix:       m,
		inverse:      inv,
		invTranspose: inv.Transpose(),
	}
}

// Identity returns the identity transform
func Identity() Transform {
	return NewTransform(Vec3{}, Vec3{}, NewVec3(1, 1, 1))
}

// Matrix returns the object-to-world matrix
func (t Transform) Matrix() mgl64.Mat4 {
	return t.matrix
}

// InverseTranspose returns the matrix used to carry normals to world space
func (t Transform) InverseTranspose() mgl64.Mat4 {
	return t.invTranspose
}

// Point maps an object-space point to world space
func (t Transform) Point(p Vec3) Vec3 {
	return Vec3FromMgl(t.matrix.Mul4x1(p.Vec4(1)).Vec3())
}

// Vector maps an object-space direction to world space (no translation, not normalized)
func (t Transform) Vector(v Vec3) Vec3 {
	return Vec3FromMgl(t.matrix.Mul4x1(v.Vec4(0)).Vec3())
}

// Normal maps an object-space normal to a normalized world-space normal
func (t Transform) Normal(n Vec3) Vec3 {
	return Vec3FromMgl(t.invTranspose.Mul4x1(n.Vec4(0)).Vec3()).Normalize()
}

// InversePoint maps a world-space point to object space
func (t Transform) InversePoint(p Vec3) Vec3 {
	return Vec3FromMgl(t.inverse.Mul4x1(p.Vec4(1)).Vec3())
}

// InverseVector maps a world-space direction to object space (not normalized)
func (t Transform) InverseVector(v Vec3) Vec3 {
	return Vec3FromMgl(t.inverse.Mul4x1(v.Vec4(0)).Vec3())
}
