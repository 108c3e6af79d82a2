package geometry

import (
	"math"

	"github.com/df07/go-pathtrace-shading/pkg/core"
)

// Primitive is a shape placed in the scene with a material.
// Primitives are read-only while a frame is being sampled.
type Primitive struct {
	ID         int            // Scene-unique identifier
	Shape      Shape          // Object-space shape
	Transform  core.Transform // Object-to-world transform
	MaterialID int            // Index into the scene material list
}

// NewPrimitive creates a primitive
func NewPrimitive(id int, shape Shape, transform core.Transform, materialID int) Primitive {
	return Primitive{
		ID:         id,
		Shape:      shape,
		Transform:  transform,
		MaterialID: materialID,
	}
}

// Intersection records the nearest hit of a ray against the scene.
// T is -1 on a miss; the ids are then -1 and the vectors are zero.
type Intersection struct {
	T          float64   // World distance from the ray origin to the hit point
	MaterialID int       // Material of the hit primitive
	GeometryID int       // ID of the hit primitive
	Normal     core.Vec3 // World-space outward surface normal
	Tangent    core.Vec3 // World-space surface tangent
	Outside    bool      // Whether the ray started outside the primitive
}

// Miss returns the miss sentinel
func Miss() Intersection {
	return Intersection{T: -1, MaterialID: -1, GeometryID: -1}
}

// Hit reports whether the record describes a hit
func (i Intersection) Hit() bool {
	return i.T > 0
}

// Point returns the world-space hit point along ray
func (i Intersection) Point(ray core.Ray) core.Vec3 {
	return ray.Origin.Add(ray.Direction.Normalize().Multiply(i.T))
}

// Intersect returns the nearest positive hit of ray against every primitive.
// Exact ties keep the earliest primitive. Primitives without a shape are skipped.
func Intersect(ray core.Ray, prims []Primitive) Intersection {
	tMin := math.MaxFloat64
	hitIndex := -1
	var best shapeHit

	for i := range prims {
		prim := &prims[i]
		if prim.Shape == nil {
			continue
		}

		hit, ok := prim.Shape.intersect(ray, prim.Transform)
		if !ok {
			continue
		}

		if hit.t > 0 && tMin > hit.t {
			tMin = hit.t
			hitIndex = i
			best = hit
		}
	}

	if hitIndex == -1 {
		return Miss()
	}

	return Intersection{
		T:          tMin,
		MaterialID: prims[hitIndex].MaterialID,
		GeometryID: prims[hitIndex].ID,
		Normal:     best.normal,
		Tangent:    best.tangent,
		Outside:    best.outside,
	}
}
