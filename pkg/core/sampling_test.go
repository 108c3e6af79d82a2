package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		nf       int
		fPdf     float64
		ng       int
		gPdf     float64
		expected float64
	}{
		{
			name:     "Equal PDFs",
			nf:       1,
			fPdf:     0.5,
			ng:       1,
			gPdf:     0.5,
			expected: 0.5,
		},
		{
			name:     "Equal weighted PDFs",
			nf:       3,
			fPdf:     2.5,
			ng:       3,
			gPdf:     2.5,
			expected: 0.5,
		},
		{
			name:     "First PDF zero",
			nf:       1,
			fPdf:     0.0,
			ng:       1,
			gPdf:     0.5,
			expected: 0.0,
		},
		{
			name:     "Second PDF zero",
			nf:       1,
			fPdf:     0.5,
			ng:       1,
			gPdf:     0.0,
			expected: 1.0,
		},
		{
			name:     "Both PDFs zero",
			nf:       1,
			fPdf:     0.0,
			ng:       1,
			gPdf:     0.0,
			expected: 0.0,
		},
		{
			name:     "First PDF higher",
			nf:       1,
			fPdf:     0.8,
			ng:       1,
			gPdf:     0.2,
			expected: 0.941176, // (0.8²) / (0.8² + 0.2²)
		},
		{
			name:     "Sample counts scale the weight",
			nf:       2,
			fPdf:     0.5,
			ng:       1,
			gPdf:     0.5,
			expected: 0.8, // 1² / (1² + 0.5²)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PowerHeuristic(tt.nf, tt.fPdf, tt.ng, tt.gPdf)
			assert.InDelta(t, tt.expected, result, 1e-5)
		})
	}

	// Equal weighted PDFs must be exactly one half, not approximately
	assert.Equal(t, 0.5, PowerHeuristic(4, 0.3, 4, 0.3))
}

func TestSampleCosineHemisphere_PDFMatchesCosine(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 1).Normalize(),
		NewVec3(-0.3, 0.2, 0.9).Normalize(),
	}

	random := rand.New(rand.NewSource(42))
	for _, normal := range normals {
		for i := 0; i < 200; i++ {
			dir, pdf := SampleCosineHemisphere(normal, NewVec2(random.Float64(), random.Float64()))

			assert.InDelta(t, 1.0, dir.Length(), 1e-9, "direction should be unit length")
			cosTheta := dir.Dot(normal)
			assert.GreaterOrEqual(t, cosTheta, -1e-9, "direction should be in the normal's hemisphere")
			assert.InDelta(t, cosTheta/math.Pi, pdf, 1e-9)
		}
	}
}

func TestSampleCosineHemisphere_Distribution(t *testing.T) {
	// For cosine-weighted sampling cos²θ is uniform on [0,1], so the
	// mean of cosθ is 2/3 and the fraction with cosθ < 0.5 is 1/4.
	const n = 20000
	normal := NewVec3(0, 0, 1)
	random := rand.New(rand.NewSource(7))

	var sumCos float64
	below := 0
	bins := make([]int, 10)
	for i := 0; i < n; i++ {
		dir, _ := SampleCosineHemisphere(normal, NewVec2(random.Float64(), random.Float64()))
		c := dir.Dot(normal)
		sumCos += c
		if c < 0.5 {
			below++
		}
		bin := int(c * c * float64(len(bins)))
		if bin == len(bins) {
			bin--
		}
		bins[bin]++
	}

	assert.InDelta(t, 2.0/3.0, sumCos/n, 0.01)
	assert.InDelta(t, 0.25, float64(below)/n, 0.015)

	// cos²θ histogram should be flat
	for i, count := range bins {
		assert.InDelta(t, float64(n)/float64(len(bins)), float64(count), 0.1*float64(n)/float64(len(bins)), "bin %d", i)
	}
}

func TestSampleCosineHemisphere_SampleMapping(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	// First value 1 gives cosθ = 1: the direction is the normal itself
	dir, pdf := SampleCosineHemisphere(normal, NewVec2(1, 0.3))
	assert.InDelta(t, 0, dir.Subtract(normal).Length(), 1e-9)
	assert.InDelta(t, 1/math.Pi, pdf, 1e-12)

	// First value 0.25 gives cosθ = 0.5 regardless of the azimuth
	for _, u2 := range []float64{0, 0.25, 0.5, 0.9} {
		dir, pdf = SampleCosineHemisphere(normal, NewVec2(0.25, u2))
		assert.InDelta(t, 0.5, dir.Dot(normal), 1e-9)
		assert.InDelta(t, 0.5/math.Pi, pdf, 1e-9)
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	// Centre of the sample square maps to the origin
	assert.Equal(t, NewVec3(0, 0, 0), SamplePointInUnitDisk(NewVec2(0.5, 0.5)))

	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(NewVec2(random.Float64(), random.Float64()))
		require.LessOrEqual(t, p.Length(), 1.0+1e-9)
		require.Equal(t, 0.0, p.Z)
	}

	// Corners of the square land on the unit circle
	corner := SamplePointInUnitDisk(NewVec2(1, 1))
	assert.InDelta(t, 1.0, corner.Length(), 1e-9)
}

func TestSequenceSampler(t *testing.T) {
	s := NewSequenceSampler(0.1, 0.2, 0.3)

	assert.Equal(t, 0.1, s.Get1D())
	assert.Equal(t, NewVec2(0.2, 0.3), s.Get2D())
	assert.Equal(t, NewVec3(0.1, 0.2, 0.3), s.Get3D())
	assert.Equal(t, 6, s.Draws)

	empty := NewSequenceSampler()
	assert.Equal(t, 0.0, empty.Get1D())
	assert.Equal(t, 1, empty.Draws)
}

func TestRandomSamplerDeterministic(t *testing.T) {
	a := NewRandomSampler(rand.New(rand.NewSource(42)))
	b := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Get1D(), b.Get1D())
		assert.Equal(t, a.Get2D(), b.Get2D())
	}
}
