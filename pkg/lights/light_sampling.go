package lights

import (
	"math"

	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/df07/go-pathtrace-shading/pkg/geometry"
)

const (
	// ShadowRayOffset pushes shadow ray origins off the shading surface
	ShadowRayOffset = 0.01

	// edgeOnCosine is the smallest |cos| at the light surface that still carries light
	edgeOnCosine = 1e-8
)

// lightUp is the emitting face normal of a box light in object space
var lightUp = core.NewVec3(0, 1, 0)

// SampleLight picks one light uniformly and samples a point on it as seen from point.
// The returned PDF is a solid-angle density that already includes the 1/numLights
// selection probability. Radiance is zero when the shadow ray is blocked.
//
// Draws: 1 for the light choice, plus 2 for the point when the light is a box area light.
func SampleLight(sc Scene, point, normal core.Vec3, sampler core.Sampler) LightSample {
	lights := sc.Lights()
	if len(lights) == 0 {
		return LightSample{Index: -1}
	}

	index := int(sampler.Get1D() * float64(len(lights)))
	if index >= len(lights) {
		index = len(lights) - 1
	}
	if index < 0 {
		index = 0
	}

	var sample LightSample
	switch light := lights[index].(type) {
	case AreaLight:
		sample = sampleAreaLight(sc, light, point, len(lights), sampler)
	default:
		// Unhandled light kinds contribute nothing
	}

	sample.Light = lights[index]
	sample.Index = index
	return sample
}

// sampleAreaLight samples the +Y face of a unit box light
func sampleAreaLight(sc Scene, light AreaLight, point core.Vec3, numLights int, sampler core.Sampler) LightSample {
	prim, ok := findPrimitive(sc.Primitives(), light.GeometryID)
	if !ok || prim.Shape == nil || prim.Shape.Type() != geometry.BoxShape {
		return LightSample{}
	}

	uv := sampler.Get2D()
	lightPoint := prim.Transform.Point(core.NewVec3(uv.X-0.5, 0, uv.Y-0.5))

	toLight := lightPoint.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return LightSample{Point: lightPoint}
	}
	wi := toLight.Multiply(1 / distance)

	sample := LightSample{Wi: wi, Point: lightPoint, Distance: distance}

	pdf := areaPDF(prim, wi, distance, numLights)
	if pdf == 0 {
		return sample
	}
	sample.PDF = pdf

	shadowRay := core.NewRay(point.Add(wi.Multiply(ShadowRayOffset)), wi)
	hit := geometry.Intersect(shadowRay, sc.Primitives())
	if !hit.Hit() || hit.GeometryID != light.GeometryID {
		return sample
	}

	materials := sc.Materials()
	if hit.MaterialID >= 0 && hit.MaterialID < len(materials) {
		sample.Radiance = materials[hit.MaterialID].Emitted()
	}
	return sample
}

// PDF returns the density with which SampleLight would have chosen direction ray.Direction
// from origin, given that the ray hit isect. It is zero unless the hit geometry is a box
// area light.
func PDF(sc Scene, origin core.Vec3, ray core.Ray, isect geometry.Intersection) float64 {
	lights := sc.Lights()
	if !isect.Hit() || len(lights) == 0 {
		return 0
	}

	for _, l := range lights {
		light, ok := l.(AreaLight)
		if !ok || light.GeometryID != isect.GeometryID {
			continue
		}

		prim, ok := findPrimitive(sc.Primitives(), light.GeometryID)
		if !ok || prim.Shape == nil || prim.Shape.Type() != geometry.BoxShape {
			return 0
		}

		// Samples lie on the mid-plane of the slab, so measure the distance to where
		// the ray crosses that plane rather than to the outer face it hit.
		wi := ray.Direction.Normalize()
		lightNormal := prim.Transform.Normal(lightUp)
		denom := wi.Dot(lightNormal)
		if math.Abs(denom) < edgeOnCosine {
			return 0
		}
		distance := prim.Transform.Point(core.Vec3{}).Subtract(origin).Dot(lightNormal) / denom
		if distance <= 0 {
			return 0
		}
		return areaPDF(prim, wi, distance, len(lights))
	}
	return 0
}

// areaPDF converts the uniform area density of the light face to solid angle
func areaPDF(prim geometry.Primitive, wi core.Vec3, distance float64, numLights int) float64 {
	lightNormal := prim.Transform.Normal(lightUp)
	cosTheta := math.Abs(wi.Negate().Dot(lightNormal))
	if cosTheta < edgeOnCosine {
		return 0
	}

	area := math.Abs(prim.Transform.Scale.X * prim.Transform.Scale.Z)
	if area == 0 {
		return 0
	}
	return distance * distance / (cosTheta * area * float64(numLights))
}

// findPrimitive looks a primitive up by id. Builders assign ids by position, so the
// direct index is tried first.
func findPrimitive(prims []geometry.Primitive, id int) (geometry.Primitive, bool) {
	if id >= 0 && id < len(prims) && prims[id].ID == id {
		return prims[id], true
	}
	for _, p := range prims {
		if p.ID == id {
			return p, true
		}
	}
	return geometry.Primitive{}, false
}
