package scene

import (
	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/df07/go-pathtrace-shading/pkg/material"
)

// NewDefaultScene creates a row of spheres on a large ground slab lit by an overhead panel
func NewDefaultScene() (*Scene, error) {
	b := NewBuilder("default")
	b.SetCamera(CameraConfig{
		Center: core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt: core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
	})
	b.SetSampling(SamplingConfig{
		Width:                     400,
		Height:                    225,
		SamplesPerPixel:           64,
		MaxDepth:                  25,
		RussianRouletteMinBounces: 3,
	})

	ground := b.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6)))
	blue := b.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	red := b.AddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2)))
	silver := b.AddMaterial(material.NewMirror(core.NewVec3(0.8, 0.8, 0.8)))
	gold := b.AddMaterial(material.NewMirror(core.NewVec3(0.8, 0.6, 0.2)))
	glass := b.AddMaterial(material.NewGlass(core.NewVec3(1, 1, 1), 1.5))
	light := b.AddMaterial(material.NewEmissive(core.NewVec3(1.0, 0.93, 0.87), 15))

	b.AddBox(core.NewVec3(0, -0.5, 0), core.Vec3{}, core.NewVec3(100, 1, 100), ground)

	b.AddSphere(core.NewVec3(0, 0.5, -1), 0.5, red)
	b.AddSphere(core.NewVec3(-1, 0.5, -1), 0.5, silver)
	b.AddSphere(core.NewVec3(1, 0.5, -1), 0.5, gold)
	b.AddSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass)

	// Glass shell around a blue core
	b.AddSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass)
	b.AddSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, blue)

	b.AddBoxLight(core.NewVec3(0, 6, 1), core.NewVec3(4, 0.1, 4), light)

	return b.Build()
}
