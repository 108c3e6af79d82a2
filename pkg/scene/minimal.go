package scene

import (
	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/df07/go-pathtrace-shading/pkg/material"
)

// NewMinimalScene is a single diffuse sphere on a floor under one panel light.
// It renders quickly and is used for smoke tests.
func NewMinimalScene() (*Scene, error) {
	b := NewBuilder("minimal")
	b.SetCamera(CameraConfig{
		Center: core.NewVec3(0, 1, 4),
		LookAt: core.NewVec3(0, 0.5, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45,
	})
	b.SetSampling(SamplingConfig{
		Width:                     64,
		Height:                    48,
		SamplesPerPixel:           16,
		MaxDepth:                  8,
		RussianRouletteMinBounces: 3,
	})

	floor := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	orange := b.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.4, 0.1)))
	light := b.AddMaterial(material.NewEmissive(core.NewVec3(1, 1, 1), 10))

	b.AddBox(core.NewVec3(0, -0.5, 0), core.Vec3{}, core.NewVec3(10, 1, 10), floor)
	b.AddSphere(core.NewVec3(0, 0.5, 0), 0.5, orange)
	b.AddBoxLight(core.NewVec3(0, 3, 0), core.NewVec3(1.5, 0.05, 1.5), light)

	return b.Build()
}
