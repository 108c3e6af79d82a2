package lights

import (
	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/df07/go-pathtrace-shading/pkg/geometry"
	"github.com/df07/go-pathtrace-shading/pkg/material"
)

type LightType uint8

const (
	LightTypeArea LightType = iota
	LightTypePoint
	LightTypeEnvironment
)

func (t LightType) String() string {
	switch t {
	case LightTypeArea:
		return "area"
	case LightTypePoint:
		return "point"
	case LightTypeEnvironment:
		return "environment"
	default:
		return "unknown"
	}
}

// Light is a closed set of light kinds. New kinds are added in this package and
// handled by SampleLight; anything it does not recognise contributes no light.
type Light interface {
	Type() LightType
	isLight()
}

// AreaLight turns the emissive geometry with the given id into a light
type AreaLight struct {
	GeometryID int
}

// NewAreaLight creates an area light over a scene primitive
func NewAreaLight(geometryID int) AreaLight {
	return AreaLight{GeometryID: geometryID}
}

func (AreaLight) Type() LightType { return LightTypeArea }
func (AreaLight) isLight()        {}

// Scene is the read-only view of a scene that light sampling needs
type Scene interface {
	Primitives() []geometry.Primitive
	Materials() []material.Material
	Lights() []Light
}

// LightSample is the result of sampling one light toward a shading point
type LightSample struct {
	Wi       core.Vec3 // Unit direction from the shading point to the light point
	PDF      float64   // Solid-angle density, including the light selection probability
	Radiance core.Vec3 // Emitted radiance, zero when occluded
	Light    Light     // Light that was selected, nil when the scene has none
	Index    int       // Index of the selected light, -1 when the scene has none
	Point    core.Vec3 // Sampled point on the light
	Distance float64   // Distance from the shading point to Point
}
