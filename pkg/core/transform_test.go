package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVecNear(t *testing.T, expected, actual Vec3, tolerance float64) {
	t.Helper()
	if expected.Subtract(actual).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name      string
		transform Transform
		input     Vec3
		expected  Vec3
	}{
		{
			name:      "Identity",
			transform: Identity(),
			input:     NewVec3(1, 2, 3),
			expected:  NewVec3(1, 2, 3),
		},
		{
			name:      "Translate and scale",
			transform: NewTransform(NewVec3(10, 0, 0), NewVec3(0, 0, 0), NewVec3(2, 3, 4)),
			input:     NewVec3(0.5, 0.5, 0.5),
			expected:  NewVec3(11, 1.5, 2),
		},
		{
			name:      "90 degrees around Z",
			transform: NewTransform(NewVec3(0, 0, 0), NewVec3(0, 0, 90), NewVec3(1, 1, 1)),
			input:     NewVec3(1, 0, 0),
			expected:  NewVec3(0, 1, 0),
		},
		{
			name:      "90 degrees around X",
			transform: NewTransform(NewVec3(0, 0, 0), NewVec3(90, 0, 0), NewVec3(1, 1, 1)),
			input:     NewVec3(0, 1, 0),
			expected:  NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := tt.transform.Point(tt.input)
			assertVecNear(t, tt.expected, world, 1e-9)
			assertVecNear(t, tt.input, tt.transform.InversePoint(world), 1e-9)
		})
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	tr := NewTransform(NewVec3(5, 5, 5), NewVec3(0, 0, 0), NewVec3(2, 2, 2))
	assertVecNear(t, NewVec3(2, 0, 0), tr.Vector(NewVec3(1, 0, 0)), 1e-12)
	assertVecNear(t, NewVec3(0.5, 0, 0), tr.InverseVector(NewVec3(1, 0, 0)), 1e-12)
}

func TestTransformNormalNonUniformScale(t *testing.T) {
	// A plane x + y = 0 squashed along X keeps its normal perpendicular to the surface
	tr := NewTransform(NewVec3(0, 0, 0), NewVec3(0, 0, 0), NewVec3(4, 1, 1))
	localNormal := NewVec3(1, 1, 0).Normalize()
	localTangent := NewVec3(1, -1, 0)

	worldNormal := tr.Normal(localNormal)
	worldTangent := tr.Vector(localTangent)

	assert.InDelta(t, 1.0, worldNormal.Length(), 1e-12)
	assert.InDelta(t, 0.0, worldNormal.Dot(worldTangent), 1e-12)
	assert.Greater(t, math.Abs(worldNormal.Y), math.Abs(worldNormal.X))
}

func TestTransformKeepsComponents(t *testing.T) {
	tr := NewTransform(NewVec3(1, 2, 3), NewVec3(10, 20, 30), NewVec3(4, 5, 6))
	assert.Equal(t, NewVec3(1, 2, 3), tr.Translation)
	assert.Equal(t, NewVec3(10, 20, 30), tr.Rotation)
	assert.Equal(t, NewVec3(4, 5, 6), tr.Scale)

	product := tr.Matrix().Mul4(tr.InverseTranspose().Transpose())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, product.At(i, j), 1e-9)
		}
	}
}
