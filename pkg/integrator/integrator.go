package integrator

import (
	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/df07/go-pathtrace-shading/pkg/scene"
)

// PathSegment is the state of one light path between bounces
type PathSegment struct {
	Ray              core.Ray  // Ray to trace next
	Throughput       core.Vec3 // Product of BSDF·cos/pdf weights so far
	RemainingBounces int       // Bounces left before the path is cut
	PixelIndex       int       // Pixel this path contributes to
}

// NewPathSegment starts a camera path with unit throughput
func NewPathSegment(ray core.Ray, maxDepth, pixelIndex int) PathSegment {
	return PathSegment{
		Ray:              ray,
		Throughput:       core.NewVec3(1, 1, 1),
		RemainingBounces: maxDepth,
		PixelIndex:       pixelIndex,
	}
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Trace follows seg until it terminates and returns the radiance it carries back
	Trace(seg *PathSegment, sc *scene.Scene, sampler core.Sampler) core.Vec3
}
