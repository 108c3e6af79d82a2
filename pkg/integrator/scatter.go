package integrator

import (
	"math"

	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/df07/go-pathtrace-shading/pkg/material"
)

// ScatterOffset moves continuation rays off the surface they leave
const ScatterOffset = 0.001

// ScatterRay samples the material at a hit and advances seg to the continuation ray.
// The throughput is multiplied by F·|cos|/pdf; a non-positive pdf kills the path.
// Termination is left to the caller.
func ScatterRay(seg *PathSegment, point, normal, tangent core.Vec3, m *material.Material, sampler core.Sampler) material.BSDFSample {
	bsdf := m.Sample(normal, tangent, seg.Ray.Direction, sampler)

	if bsdf.PDF > 0 {
		cosTheta := math.Abs(bsdf.Wi.Normalize().Dot(normal))
		seg.Throughput = seg.Throughput.MultiplyVec(bsdf.F).Multiply(cosTheta / bsdf.PDF)
	} else {
		seg.Throughput = core.Vec3{}
	}

	seg.RemainingBounces--
	seg.Ray = core.NewRay(point.Add(bsdf.Wi.Multiply(ScatterOffset)), bsdf.Wi)
	return bsdf
}
