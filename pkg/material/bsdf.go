package material

import (
	"math"

	"github.com/df07/go-pathtrace-shading/pkg/core"
)

// exteriorIOR is the index of the medium outside every object
const exteriorIOR = 1.0

// BSDFSample is one sampled scattering direction.
//
// For specular lobes F already carries a division by |cos(Wi, n)| and PDF is 1, so
// the generic throughput update F·|cos|/PDF reduces to the specular color.
type BSDFSample struct {
	Wi       core.Vec3 // Unit direction the path continues in
	F        core.Vec3 // BSDF value for Wi
	PDF      float64   // Density of Wi (1 for delta lobes)
	Specular bool      // Wi was chosen by a delta distribution
}

// Sample draws a scattering direction for a ray travelling along wo that hit a surface
// with the given outward normal and tangent. Lobes are chosen by precedence:
//
//   - reflective and refractive: Fresnel-weighted choice between mirror and transmission (1 draw)
//   - reflective: perfect mirror (0 draws)
//   - refractive: perfect transmission, mirror on total internal reflection (0 draws)
//   - otherwise: cosine-weighted diffuse (2 draws, polar angle first)
//
// The tangent completes the shading frame; the current lobes only need the normal.
func (m *Material) Sample(normal, tangent, wo core.Vec3, sampler core.Sampler) BSDFSample {
	wo = wo.Normalize()

	switch {
	case m.Reflective > 0 && m.Refractive > 0:
		return m.sampleFresnelSpecular(normal, wo, sampler)
	case m.Reflective > 0:
		return m.sampleSpecularReflect(normal, wo)
	case m.Refractive > 0:
		return m.sampleSpecularTransmit(normal, wo)
	default:
		return m.sampleDiffuse(normal, wo, sampler)
	}
}

// sampleSpecularReflect mirrors wo about the normal
func (m *Material) sampleSpecularReflect(normal, wo core.Vec3) BSDFSample {
	wi := Reflect(wo, normal).Normalize()
	return BSDFSample{
		Wi:       wi,
		F:        specularValue(m.SpecularColor, wi, normal),
		PDF:      1,
		Specular: true,
	}
}

// sampleSpecularTransmit refracts wo with Snell's law between the exterior medium and
// the material. The side is taken from the sign of dot(wo, normal).
func (m *Material) sampleSpecularTransmit(normal, wo core.Vec3) BSDFSample {
	ni := wo.Dot(normal)
	n := normal

	etaI, etaT := exteriorIOR, m.IndexOfRefraction
	if ni >= 0 {
		// Leaving the interior
		etaI, etaT = etaT, etaI
		n = normal.Negate()
	}
	eta := etaI / etaT

	var wi core.Vec3
	if eta*math.Sqrt(math.Max(0, 1-ni*ni)) > 1 {
		wi = Reflect(wo, n).Normalize()
	} else if refracted, ok := Refract(wo, n, eta); ok {
		wi = refracted.Normalize()
	} else {
		wi = Reflect(wo, n).Normalize()
	}

	return BSDFSample{
		Wi:       wi,
		F:        specularValue(m.SpecularColor, wi, n),
		PDF:      1,
		Specular: true,
	}
}

// sampleFresnelSpecular picks reflection with probability equal to the Fresnel
// reflectance and transmission otherwise. The branch probability cancels the
// Fresnel weight, so the sample keeps PDF 1.
func (m *Material) sampleFresnelSpecular(normal, wo core.Vec3, sampler core.Sampler) BSDFSample {
	f := FresnelDielectric(wo.Dot(normal), exteriorIOR, m.IndexOfRefraction)
	if sampler.Get1D() < f {
		return m.sampleSpecularReflect(normal, wo)
	}
	return m.sampleSpecularTransmit(normal, wo)
}

// sampleDiffuse draws a cosine-weighted direction on the side of the surface wo arrived from
func (m *Material) sampleDiffuse(normal, wo core.Vec3, sampler core.Sampler) BSDFSample {
	n := normal
	if wo.Dot(n) > 0 {
		n = n.Negate()
	}

	wi, pdf := core.SampleCosineHemisphere(n, sampler.Get2D())
	return BSDFSample{
		Wi:       wi,
		F:        m.Color.Multiply(1 / math.Pi),
		PDF:      pdf,
		Specular: false,
	}
}

// specularValue divides the specular color by |cos(wi, n)|. Grazing directions give zero.
func specularValue(color, wi, n core.Vec3) core.Vec3 {
	cosTheta := math.Abs(wi.Dot(n))
	if cosTheta == 0 {
		return core.Vec3{}
	}
	return core.NewVec3(color.X/cosTheta, color.Y/cosTheta, color.Z/cosTheta)
}
