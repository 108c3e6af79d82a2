package geometry

import (
	"math"

	"github.com/df07/go-pathtrace-shading/pkg/core"
)

// boxHalfExtent is the object-space half size; world size comes from the transform scale
const boxHalfExtent = 0.5

// Box is the unit cube [-0.5, 0.5]³ in object space
type Box struct{}

// Type implements Shape
func (Box) Type() ShapeType {
	return BoxShape
}

// intersect runs the slab test in object space.
// If the entry distance is not positive the ray starts inside and the exit face is reported.
func (Box) intersect(ray core.Ray, transform core.Transform) (shapeHit, bool) {
	local := objectRay(ray, transform)
	if local.Direction.IsZero() {
		return shapeHit{}, false
	}

	tMin, tMax := math.Inf(-1), math.Inf(1)
	var tMinAxis, tMaxAxis int
	var tMinSign, tMaxSign float64

	for axis := 0; axis < 3; axis++ {
		o := local.Origin.Component(axis)
		d := local.Direction.Component(axis)

		// Parallel to this slab: either always inside it or never
		if d == 0 {
			if o < -boxHalfExtent || o > boxHalfExtent {
				return shapeHit{}, false
			}
			continue
		}

		t1 := (-boxHalfExtent - o) / d
		t2 := (boxHalfExtent - o) / d
		ta, tb := math.Min(t1, t2), math.Max(t1, t2)

		// Entering through the face the ray travels against, leaving through the other
		dirSign := math.Copysign(1, d)
		if ta > 0 && ta > tMin {
			tMin, tMinAxis, tMinSign = ta, axis, -dirSign
		}
		if tb < tMax {
			tMax, tMaxAxis, tMaxSign = tb, axis, dirSign
		}
	}

	if tMax < tMin || tMax <= 0 {
		return shapeHit{}, false
	}

	t, axis, sign, outside := tMin, tMinAxis, tMinSign, true
	if tMin <= 0 {
		t, axis, sign, outside = tMax, tMaxAxis, tMaxSign, false
	}

	p := local.At(t)
	return worldHit(ray, transform, p, faceNormal(axis, sign), faceTangent(axis), outside), true
}

// faceNormal returns the outward object-space normal of a box face
func faceNormal(axis int, sign float64) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}

// faceTangent returns an object-space axis lying in the face
func faceTangent(axis int) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(0, 1, 0)
	case 1:
		return core.NewVec3(0, 0, 1)
	default:
		return core.NewVec3(1, 0, 0)
	}
}
