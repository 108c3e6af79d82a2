package geometry

import (
	"math"

	"github.com/df07/go-pathtrace-shading/pkg/core"
)

// sphereRadius is the object-space radius; world size comes from the transform scale
const sphereRadius = 0.5

// Sphere is a sphere of diameter 1 centred on the object-space origin
type Sphere struct{}

// Type implements Shape
func (Sphere) Type() ShapeType {
	return SphereShape
}

// intersect solves the ray/sphere quadratic in object space.
// Both roots behind the origin is a miss; one root behind means the ray starts inside.
func (Sphere) intersect(ray core.Ray, transform core.Transform) (shapeHit, bool) {
	local := objectRay(ray, transform)
	if local.Direction.IsZero() {
		return shapeHit{}, false
	}

	vDotDirection := local.Origin.Dot(local.Direction)
	radicand := vDotDirection*vDotDirection - (local.Origin.Dot(local.Origin) - sphereRadius*sphereRadius)
	if radicand < 0 {
		return shapeHit{}, false
	}

	squareRoot := math.Sqrt(radicand)
	t1 := -vDotDirection + squareRoot
	t2 := -vDotDirection - squareRoot

	var t float64
	var outside bool
	switch {
	case t1 < 0 && t2 < 0:
		return shapeHit{}, false
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
		outside = true
	default:
		t = math.Max(t1, t2)
		outside = false
	}

	p := local.At(t)
	return worldHit(ray, transform, p, p, sphereTangent(p), outside), true
}

// sphereTangent returns the azimuthal tangent at an object-space surface point
func sphereTangent(p core.Vec3) core.Vec3 {
	tangent := core.NewVec3(0, 1, 0).Cross(p)
	if tangent.LengthSquared() < 1e-12 {
		return core.NewVec3(1, 0, 0)
	}
	return tangent.Normalize()
}
