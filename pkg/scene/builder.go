package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/df07/go-pathtrace-shading/pkg/geometry"
	"github.com/df07/go-pathtrace-shading/pkg/lights"
	"github.com/df07/go-pathtrace-shading/pkg/log"
	"github.com/df07/go-pathtrace-shading/pkg/material"
)

var (
	ErrUnknownMaterial = errors.New("scene: unknown material")
	ErrUnknownGeometry = errors.New("scene: unknown geometry")
	ErrNilShape        = errors.New("scene: primitive has no shape")
	ErrInvalidSampling = errors.New("scene: invalid sampling config")
)

var logger = log.New("scene")

// Builder accumulates materials, primitives and lights. Ids returned by the Add methods
// are indices into the built scene.
type Builder struct {
	name       string
	camera     CameraConfig
	sampling   SamplingConfig
	primitives []geometry.Primitive
	materials  []material.Material
	lights     []lights.Light
}

// NewBuilder starts an empty scene
func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		camera: CameraConfig{
			Center: core.NewVec3(0, 0, 0),
			LookAt: core.NewVec3(0, 0, -1),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   45,
		},
		sampling: SamplingConfig{
			Width:                     400,
			Height:                    400,
			SamplesPerPixel:           64,
			MaxDepth:                  10,
			RussianRouletteMinBounces: 3,
		},
	}
}

func (b *Builder) SetCamera(config CameraConfig) *Builder {
	b.camera = config
	return b
}

func (b *Builder) SetSampling(config SamplingConfig) *Builder {
	b.sampling = config
	return b
}

// AddMaterial returns the new material's id
func (b *Builder) AddMaterial(m material.Material) int {
	b.materials = append(b.materials, m)
	return len(b.materials) - 1
}

// AddPrimitive returns the new primitive's geometry id
func (b *Builder) AddPrimitive(shape geometry.Shape, transform core.Transform, materialID int) int {
	id := len(b.primitives)
	b.primitives = append(b.primitives, geometry.NewPrimitive(id, shape, transform, materialID))
	return id
}

// AddSphere adds a sphere of the given world radius
func (b *Builder) AddSphere(center core.Vec3, radius float64, materialID int) int {
	d := 2 * radius
	return b.AddPrimitive(geometry.Sphere{}, core.NewTransform(center, core.Vec3{}, core.NewVec3(d, d, d)), materialID)
}

// AddBox adds a box spanning size around center, rotated by rotation degrees
func (b *Builder) AddBox(center, rotation, size core.Vec3, materialID int) int {
	return b.AddPrimitive(geometry.Box{}, core.NewTransform(center, rotation, size), materialID)
}

// AddAreaLight turns an existing primitive into a sampled light and returns the light index
func (b *Builder) AddAreaLight(geometryID int) int {
	b.lights = append(b.lights, lights.NewAreaLight(geometryID))
	return len(b.lights) - 1
}

// AddBoxLight adds an axis-aligned emissive box and registers it as an area light.
// Light samples are drawn over its horizontal mid-plane, so keep it thin.
func (b *Builder) AddBoxLight(center, size core.Vec3, materialID int) int {
	id := b.AddBox(center, core.Vec3{}, size, materialID)
	b.AddAreaLight(id)
	return id
}

// Build validates references and returns an immutable snapshot
func (b *Builder) Build() (*Scene, error) {
	s := b.sampling
	if s.Width <= 0 || s.Height <= 0 || s.SamplesPerPixel <= 0 || s.MaxDepth <= 0 {
		return nil, fmt.Errorf("%w: %dx%d, %d spp, depth %d", ErrInvalidSampling, s.Width, s.Height, s.SamplesPerPixel, s.MaxDepth)
	}

	for _, p := range b.primitives {
		if p.Shape == nil {
			return nil, fmt.Errorf("primitive %d: %w", p.ID, ErrNilShape)
		}
		if p.MaterialID < 0 || p.MaterialID >= len(b.materials) {
			return nil, fmt.Errorf("primitive %d references material %d: %w", p.ID, p.MaterialID, ErrUnknownMaterial)
		}
	}

	lit := make(map[int]bool)
	for i, l := range b.lights {
		area, ok := l.(lights.AreaLight)
		if !ok {
			continue
		}
		if area.GeometryID < 0 || area.GeometryID >= len(b.primitives) {
			return nil, fmt.Errorf("light %d references geometry %d: %w", i, area.GeometryID, ErrUnknownGeometry)
		}
		lit[area.GeometryID] = true

		prim := b.primitives[area.GeometryID]
		if prim.Shape.Type() != geometry.BoxShape {
			logger.Warningf("scene %q: light %d is a %s, only box lights are sampled", b.name, i, prim.Shape.Type())
		}
		if !b.materials[prim.MaterialID].IsEmissive() {
			logger.Warningf("scene %q: light %d has a non-emissive material", b.name, i)
		}
	}

	for _, p := range b.primitives {
		if b.materials[p.MaterialID].IsEmissive() && !lit[p.ID] {
			logger.Warningf("scene %q: emissive primitive %d is not a light and is only reached by chance", b.name, p.ID)
		}
	}
	if len(b.lights) == 0 {
		logger.Warningf("scene %q has no lights", b.name)
	}

	return &Scene{
		Name:           b.name,
		CameraConfig:   b.camera,
		SamplingConfig: b.sampling,
		primitives:     append([]geometry.Primitive(nil), b.primitives...),
		materials:      append([]material.Material(nil), b.materials...),
		lights:         append([]lights.Light(nil), b.lights...),
	}, nil
}
