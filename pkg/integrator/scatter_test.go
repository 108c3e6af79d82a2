package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/df07/go-pathtrace-shading/pkg/material"
	"github.com/stretchr/testify/assert"
)

var (
	up      = core.NewVec3(0, 1, 0)
	tangent = core.NewVec3(1, 0, 0)
)

func TestScatterRay_Diffuse(t *testing.T) {
	color := core.NewVec3(0.8, 0.4, 0.2)
	m := material.NewLambertian(color)
	seg := PathSegment{
		Ray:              core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)),
		Throughput:       core.NewVec3(0.5, 1, 2),
		RemainingBounces: 5,
	}
	point := core.Vec3{}

	bsdf := ScatterRay(&seg, point, up, tangent, &m, core.NewSequenceSampler(0.25, 0.1))

	assert.Equal(t, 4, seg.RemainingBounces)
	assert.False(t, bsdf.Specular)

	// throughput · (color/π) · cosθ / (cosθ/π) = throughput · color
	cosTheta := bsdf.Wi.Dot(up)
	assert.InDelta(t, 0.5, cosTheta, 1e-12)
	expected := core.NewVec3(0.5, 1, 2).MultiplyVec(bsdf.F).Multiply(cosTheta / bsdf.PDF)
	assertVecNear(t, expected, seg.Throughput, 1e-12)
	assertVecNear(t, core.NewVec3(0.4, 0.4, 0.4), seg.Throughput, 1e-12)

	assert.Equal(t, bsdf.Wi, seg.Ray.Direction)
	assertVecNear(t, point.Add(bsdf.Wi.Multiply(ScatterOffset)), seg.Ray.Origin, 1e-15)
}

func TestScatterRay_MirrorKeepsSpecularColor(t *testing.T) {
	m := material.NewMirror(core.NewVec3(0.9, 0.8, 0.7))
	seg := NewPathSegment(core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0)), 3, 0)

	bsdf := ScatterRay(&seg, core.Vec3{}, up, tangent, &m, core.NewSequenceSampler())

	assert.True(t, bsdf.Specular)
	assertVecNear(t, core.NewVec3(0.9, 0.8, 0.7), seg.Throughput, 1e-12)
	assertVecNear(t, core.NewVec3(1, 1, 0).Normalize(), seg.Ray.Direction, 1e-12)
	assert.Equal(t, 2, seg.RemainingBounces)
}

func TestScatterRay_GlassEnteringKeepsSpecularColor(t *testing.T) {
	m := material.NewTransmissive(core.NewVec3(0.9, 0.9, 0.9), 1.5)
	seg := NewPathSegment(core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0)), 3, 0)

	ScatterRay(&seg, core.Vec3{}, up, tangent, &m, core.NewSequenceSampler())

	assertVecNear(t, core.NewVec3(0.9, 0.9, 0.9), seg.Throughput, 1e-12)
	assert.Less(t, seg.Ray.Direction.Y, 0.0)
}

func TestScatterRay_ZeroPDFKillsPath(t *testing.T) {
	m := material.NewLambertian(core.NewVec3(1, 1, 1))
	seg := NewPathSegment(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), 2, 0)

	// u1 = 0 samples the horizon where the cosine pdf is zero
	bsdf := ScatterRay(&seg, core.Vec3{}, up, tangent, &m, core.NewSequenceSampler(0, 0.3))

	assert.Equal(t, 0.0, bsdf.PDF)
	assert.Equal(t, core.Vec3{}, seg.Throughput)
	assert.False(t, math.IsNaN(seg.Throughput.X))
	assert.Equal(t, 1, seg.RemainingBounces)
}

func assertVecNear(t *testing.T, expected, actual core.Vec3, tolerance float64) {
	t.Helper()
	if expected.Subtract(actual).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}
