package scene

import (
	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/df07/go-pathtrace-shading/pkg/geometry"
	"github.com/df07/go-pathtrace-shading/pkg/lights"
	"github.com/df07/go-pathtrace-shading/pkg/material"
)

// Scene is an immutable snapshot of everything a render reads. It is safe to share
// between workers; use a Builder to make one.
type Scene struct {
	Name           string
	CameraConfig   CameraConfig
	SamplingConfig SamplingConfig

	primitives []geometry.Primitive
	materials  []material.Material
	lights     []lights.Light
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width                     int   // Image width
	Height                    int   // Image height
	SamplesPerPixel           int   // Number of rays per pixel
	MaxDepth                  int   // Maximum ray bounce depth
	RussianRouletteMinBounces int   // Minimum bounces before Russian Roulette can activate
	Seed                      int64 // Base seed for per-row random streams
}

// CameraConfig describes a thin-lens camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter, 0 for a pinhole
	FocusDistance float64   // 0 focuses on LookAt
}

func (s *Scene) Primitives() []geometry.Primitive { return s.primitives }
func (s *Scene) Materials() []material.Material   { return s.materials }
func (s *Scene) Lights() []lights.Light           { return s.lights }

// Material returns the material with the given id, or nil if there is none
func (s *Scene) Material(id int) *material.Material {
	if id < 0 || id >= len(s.materials) {
		return nil
	}
	return &s.materials[id]
}

// GetPrimitiveCount returns the total number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.primitives)
}

var _ lights.Scene = (*Scene)(nil)
