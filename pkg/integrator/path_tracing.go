package integrator

import (
	"math"

	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/df07/go-pathtrace-shading/pkg/geometry"
	"github.com/df07/go-pathtrace-shading/pkg/lights"
	"github.com/df07/go-pathtrace-shading/pkg/material"
	"github.com/df07/go-pathtrace-shading/pkg/scene"
)

// PathTracer implements unidirectional path tracing with next-event estimation
type PathTracer struct {
	config scene.SamplingConfig
}

// NewPathTracer creates a new path tracer
func NewPathTracer(config scene.SamplingConfig) *PathTracer {
	return &PathTracer{config: config}
}

// Trace follows seg bounce by bounce. Direct light at diffuse hits is estimated by sampling
// a light and by the BSDF-sampled continuation, combined with the power heuristic.
//
// Draws per diffuse bounce: 1 light choice + 2 light point, then 2 for the BSDF, then 1
// for Russian roulette once it is active.
func (pt *PathTracer) Trace(seg *PathSegment, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	var radiance core.Vec3

	specularBounce := true // camera rays see emitters at full weight
	var prevPoint core.Vec3
	var prevPDF float64

	for bounce := 0; seg.RemainingBounces > 0; bounce++ {
		if seg.Throughput.IsZero() {
			break
		}

		ray := seg.Ray
		isect := geometry.Intersect(ray, sc.Primitives())
		if !isect.Hit() {
			break
		}
		m := sc.Material(isect.MaterialID)
		if m == nil {
			break
		}
		point := isect.Point(ray)

		if m.IsEmissive() {
			emitted := seg.Throughput.MultiplyVec(m.Emitted())
			if !specularBounce {
				lightPDF := lights.PDF(sc, prevPoint, ray, isect)
				emitted = emitted.Multiply(core.PowerHeuristic(1, prevPDF, 1, lightPDF))
			}
			radiance = radiance.Add(emitted)
			break
		}

		if !m.IsSpecular() {
			radiance = radiance.Add(pt.directLight(seg, sc, point, isect.Normal, m, sampler))
		}

		bsdf := ScatterRay(seg, point, isect.Normal, isect.Tangent, m, sampler)
		specularBounce = bsdf.Specular
		prevPDF = bsdf.PDF
		prevPoint = point

		if bounce+1 >= pt.config.RussianRouletteMinBounces && seg.RemainingBounces > 0 && !seg.Throughput.IsZero() {
			if !pt.applyRussianRoulette(seg, sampler) {
				break
			}
		}
	}

	return radiance
}

// directLight samples one light from a diffuse hit, weighted against the BSDF strategy
func (pt *PathTracer) directLight(seg *PathSegment, sc *scene.Scene, point, normal core.Vec3, m *material.Material, sampler core.Sampler) core.Vec3 {
	// Shade the side the path arrived from
	n := normal
	if seg.Ray.Direction.Dot(n) > 0 {
		n = n.Negate()
	}

	ls := lights.SampleLight(sc, point, n, sampler)
	if ls.PDF <= 0 || ls.Radiance.IsZero() {
		return core.Vec3{}
	}

	cosine := ls.Wi.Dot(n)
	if cosine <= 0 {
		return core.Vec3{}
	}

	bsdfPDF := cosine / math.Pi
	misWeight := core.PowerHeuristic(1, ls.PDF, 1, bsdfPDF)

	brdf := m.Color.Multiply(1 / math.Pi)
	return seg.Throughput.MultiplyVec(brdf).MultiplyVec(ls.Radiance).Multiply(cosine * misWeight / ls.PDF)
}

// applyRussianRoulette reports whether the path survives, compensating its throughput if so
func (pt *PathTracer) applyRussianRoulette(seg *PathSegment, sampler core.Sampler) bool {
	// Conservative bounds keep the compensation between 1.05x and 2x
	survivalProb := math.Min(0.95, math.Max(0.5, seg.Throughput.Luminance()))

	if sampler.Get1D() > survivalProb {
		seg.Throughput = core.Vec3{}
		return false
	}
	seg.Throughput = seg.Throughput.Multiply(1 / survivalProb)
	return true
}

var _ Integrator = (*PathTracer)(nil)
