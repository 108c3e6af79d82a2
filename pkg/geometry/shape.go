package geometry

import "github.com/df07/go-pathtrace-shading/pkg/core"

// ShapeType identifies a Shape variant
type ShapeType uint8

const (
	SphereShape ShapeType = iota
	BoxShape
)

// String returns the shape name
func (s ShapeType) String() string {
	switch s {
	case SphereShape:
		return "sphere"
	case BoxShape:
		return "box"
	default:
		return "unknown"
	}
}

// Shape is the closed set of object-space shapes a Primitive can carry.
// Adding a shape means adding a variant with its own intersect test; the
// scene scan in Intersect does not change.
type Shape interface {
	Type() ShapeType
	intersect(ray core.Ray, transform core.Transform) (shapeHit, bool)
}

// shapeHit is the world-space result of a single shape test
type shapeHit struct {
	t       float64
	normal  core.Vec3
	tangent core.Vec3
	outside bool
}

// objectRay carries a world ray into object space with a unit direction
func objectRay(ray core.Ray, transform core.Transform) core.Ray {
	return core.NewRay(
		transform.InversePoint(ray.Origin),
		transform.InverseVector(ray.Direction).Normalize(),
	)
}

// worldHit maps an object-space hit back to world space.
// t is the world distance from the ray origin to the hit point.
func worldHit(ray core.Ray, transform core.Transform, localPoint, localNormal, localTangent core.Vec3, outside bool) shapeHit {
	point := transform.Point(localPoint)
	return shapeHit{
		t:       ray.Origin.Subtract(point).Length(),
		normal:  transform.Normal(localNormal),
		tangent: transform.Vector(localTangent).Normalize(),
		outside: outside,
	}
}
