package core

import (
	"math"
	"math/rand"
)

// sqrtOneThird is the component magnitude of a unit vector with equal components
const sqrtOneThird = 0.5773502691896257645091487805019574556476

// Sampler provides uniform [0, 1) draws to the sampling routines.
// Callers own the sampler exclusively for the duration of a call; every routine
// documents how many values it draws and in what order, so a replayed sequence
// reproduces the same result.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	x := r.random.Float64()
	y := r.random.Float64()
	return NewVec2(x, y)
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	x := r.random.Float64()
	y := r.random.Float64()
	z := r.random.Float64()
	return NewVec3(x, y, z)
}

// SequenceSampler replays a fixed list of values, wrapping around at the end.
// Draws counts how many values have been consumed.
type SequenceSampler struct {
	Values []float64
	Draws  int
}

// NewSequenceSampler creates a sampler that replays values in order
func NewSequenceSampler(values ...float64) *SequenceSampler {
	return &SequenceSampler{Values: values}
}

// Get1D returns the next value of the sequence, or 0 for an empty sequence
func (s *SequenceSampler) Get1D() float64 {
	if len(s.Values) == 0 {
		s.Draws++
		return 0
	}
	v := s.Values[s.Draws%len(s.Values)]
	s.Draws++
	return v
}

// Get2D returns the next two values of the sequence
func (s *SequenceSampler) Get2D() Vec2 {
	x := s.Get1D()
	y := s.Get1D()
	return NewVec2(x, y)
}

// Get3D returns the next three values of the sequence
func (s *SequenceSampler) Get3D() Vec3 {
	x := s.Get1D()
	y := s.Get1D()
	z := s.Get1D()
	return NewVec3(x, y, z)
}

// SampleCosineHemisphere generates a cosine-weighted direction in the hemisphere around normal.
// sample.X selects the polar angle (cosθ = sqrt(sample.X)), sample.Y the azimuth (φ = 2π·sample.Y).
// Returns the unit direction and its density cosθ/π.
func SampleCosineHemisphere(normal Vec3, sample Vec2) (Vec3, float64) {
	up := math.Sqrt(sample.X)          // cos(theta)
	over := math.Sqrt(1 - up*up)       // sin(theta)
	around := sample.Y * 2.0 * math.Pi // phi

	// Pick an axis that is guaranteed not to be parallel to the normal
	var notNormal Vec3
	if math.Abs(normal.X) < sqrtOneThird {
		notNormal = NewVec3(1, 0, 0)
	} else if math.Abs(normal.Y) < sqrtOneThird {
		notNormal = NewVec3(0, 1, 0)
	} else {
		notNormal = NewVec3(0, 0, 1)
	}

	perpendicular1 := normal.Cross(notNormal).Normalize()
	perpendicular2 := normal.Cross(perpendicular1).Normalize()

	direction := normal.Multiply(up).
		Add(perpendicular1.Multiply(math.Cos(around) * over)).
		Add(perpendicular2.Multiply(math.Sin(around) * over))

	return direction.Normalize(), up / math.Pi
}

// SamplePointInUnitDisk generates a random point in a unit disk using concentric mapping
// This avoids rejection sampling by mapping a square uniformly to a disk
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec3(0, 0, 0)
	}

	// Apply concentric mapping to point
	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}

// PowerHeuristic returns the exponent-2 multiple importance sampling weight for
// strategy f when combined with strategy g.
func PowerHeuristic(nf int, fPdf float64, ng int, gPdf float64) float64 {
	f := float64(nf) * fPdf
	g := float64(ng) * gPdf
	denom := f*f + g*g
	if denom == 0 {
		return 0
	}
	return (f * f) / denom
}
