package material

import "github.com/df07/go-pathtrace-shading/pkg/core"

// Material describes how a surface scatters and emits light.
// Reflective and Refractive are weights; the BSDF picks one lobe by precedence
// rather than summing them.
type Material struct {
	Color             core.Vec3 // Diffuse base color, also the emitted color of lights
	SpecularColor     core.Vec3 // Tint of mirror reflection and transmission
	SpecularExponent  float64   // Glossy exponent, unused by the perfect-specular lobes
	Reflective        float64   // > 0 enables mirror reflection
	Refractive        float64   // > 0 enables transmission
	IndexOfRefraction float64   // Interior index; the exterior medium is 1.0
	Emittance         float64   // Radiance scale when the material is a light
}

// NewLambertian creates a purely diffuse material
func NewLambertian(color core.Vec3) Material {
	return Material{Color: color}
}

// NewMirror creates a perfect specular reflector
func NewMirror(specular core.Vec3) Material {
	return Material{SpecularColor: specular, Reflective: 1}
}

// NewGlass creates a Fresnel-blended dielectric
func NewGlass(specular core.Vec3, ior float64) Material {
	return Material{
		SpecularColor:     specular,
		Reflective:        1,
		Refractive:        1,
		IndexOfRefraction: ior,
	}
}

// NewTransmissive creates a material that always refracts (or reflects on total internal reflection)
func NewTransmissive(specular core.Vec3, ior float64) Material {
	return Material{
		SpecularColor:     specular,
		Refractive:        1,
		IndexOfRefraction: ior,
	}
}

// NewEmissive creates a light material
func NewEmissive(color core.Vec3, emittance float64) Material {
	return Material{Color: color, Emittance: emittance}
}

// IsEmissive reports whether the material emits light
func (m *Material) IsEmissive() bool {
	return m.Emittance > 0
}

// Emitted returns the radiance leaving an emissive surface
func (m *Material) Emitted() core.Vec3 {
	return m.Color.Multiply(m.Emittance)
}

// IsSpecular reports whether every lobe of the material is a delta distribution
func (m *Material) IsSpecular() bool {
	return m.Reflective > 0 || m.Refractive > 0
}
