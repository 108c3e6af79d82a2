package scene

import (
	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/df07/go-pathtrace-shading/pkg/material"
)

// NewCausticGlassScene focuses a small hot light through a glass ball onto a diffuse floor
func NewCausticGlassScene() (*Scene, error) {
	b := NewBuilder("caustic-glass")
	b.SetCamera(CameraConfig{
		Center: core.NewVec3(-5.5, 7, -5.5),
		LookAt: core.NewVec3(-0.5, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   30,
	})
	b.SetSampling(SamplingConfig{
		Width:                     400,
		Height:                    400,
		SamplesPerPixel:           256,
		MaxDepth:                  30,
		RussianRouletteMinBounces: 5,
	})

	floor := b.AddMaterial(material.NewLambertian(core.NewVec3(0.64, 0.64, 0.64)))
	glass := b.AddMaterial(material.NewGlass(core.NewVec3(1, 1, 1), 1.5))
	water := b.AddMaterial(material.NewTransmissive(core.NewVec3(0.9, 0.95, 1.0), 1.33))
	light := b.AddMaterial(material.NewEmissive(core.NewVec3(1.0, 0.85, 0.75), 120))

	b.AddBox(core.NewVec3(0, -0.5, 0), core.Vec3{}, core.NewVec3(40, 1, 40), floor)
	b.AddSphere(core.NewVec3(0, 1.2, 0), 1.2, glass)
	b.AddBox(core.NewVec3(-2.5, 0.5, 1.5), core.NewVec3(0, 30, 0), core.NewVec3(1, 1, 1), water)

	b.AddBoxLight(core.NewVec3(0, 5, 3), core.NewVec3(0.6, 0.05, 0.6), light)

	return b.Build()
}
