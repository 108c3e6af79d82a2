package scene

import (
	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/df07/go-pathtrace-shading/pkg/material"
)

// NewCornellScene creates a classic Cornell box with a ceiling panel light, a rotated
// tall block, a mirror sphere and a glass sphere
func NewCornellScene() (*Scene, error) {
	const (
		boxSize   = 555.0
		wall      = 10.0
		lightSize = 130.0
	)
	half := boxSize / 2

	b := NewBuilder("cornell")
	b.SetCamera(CameraConfig{
		Center: core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt: core.NewVec3(278, 278, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
	})
	b.SetSampling(SamplingConfig{
		Width:                     400,
		Height:                    400,
		SamplesPerPixel:           150,
		MaxDepth:                  40,
		RussianRouletteMinBounces: 4,
	})

	white := b.AddMaterial(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	red := b.AddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05)))
	green := b.AddMaterial(material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15)))
	mirror := b.AddMaterial(material.NewMirror(core.NewVec3(0.8, 0.8, 0.9)))
	glass := b.AddMaterial(material.NewGlass(core.NewVec3(1, 1, 1), 1.5))
	light := b.AddMaterial(material.NewEmissive(core.NewVec3(1, 1, 1), 15))

	// Walls are slabs whose inner faces sit on the 555 cube
	span := boxSize + 2*wall
	// Floor
	b.AddBox(core.NewVec3(half, -wall/2, half), core.Vec3{}, core.NewVec3(span, wall, span), white)
	// Ceiling
	b.AddBox(core.NewVec3(half, boxSize+wall/2, half), core.Vec3{}, core.NewVec3(span, wall, span), white)
	// Back
	b.AddBox(core.NewVec3(half, half, boxSize+wall/2), core.Vec3{}, core.NewVec3(span, span, wall), white)
	// Left
	b.AddBox(core.NewVec3(-wall/2, half, half), core.Vec3{}, core.NewVec3(wall, span, span), red)
	// Right
	b.AddBox(core.NewVec3(boxSize+wall/2, half, half), core.Vec3{}, core.NewVec3(wall, span, span), green)

	// Ceiling panel hangs just below the ceiling
	b.AddBoxLight(core.NewVec3(half, boxSize-1, half), core.NewVec3(lightSize, 2, lightSize), light)

	b.AddBox(core.NewVec3(368, 165, 351), core.NewVec3(0, 15, 0), core.NewVec3(165, 330, 165), white)

	b.AddSphere(core.NewVec3(185, 82.5, 169), 82.5, mirror)
	b.AddSphere(core.NewVec3(370, 90, 150), 90, glass)

	return b.Build()
}
