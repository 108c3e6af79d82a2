package geometry

import (
	"testing"

	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox_Hit(t *testing.T) {
	cube := core.NewTransform(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2))

	tests := []struct {
		name            string
		transform       core.Transform
		rayOrigin       core.Vec3
		rayDirection    core.Vec3
		expectedT       float64
		expectedOutside bool
		expectedNormal  core.Vec3
	}{
		{
			name:            "front face",
			transform:       cube,
			rayOrigin:       core.NewVec3(0, 0, 5),
			rayDirection:    core.NewVec3(0, 0, -1),
			expectedT:       4,
			expectedOutside: true,
			expectedNormal:  core.NewVec3(0, 0, 1),
		},
		{
			name:            "bottom face from below",
			transform:       cube,
			rayOrigin:       core.NewVec3(0.2, -3, 0.1),
			rayDirection:    core.NewVec3(0, 1, 0),
			expectedT:       2,
			expectedOutside: true,
			expectedNormal:  core.NewVec3(0, -1, 0),
		},
		{
			name:            "from inside reports exit face",
			transform:       cube,
			rayOrigin:       core.NewVec3(0, 0, 0),
			rayDirection:    core.NewVec3(1, 0, 0),
			expectedT:       1,
			expectedOutside: false,
			expectedNormal:  core.NewVec3(1, 0, 0),
		},
		{
			name:            "parallel ray inside the slab",
			transform:       cube,
			rayOrigin:       core.NewVec3(0.5, 0.5, 5),
			rayDirection:    core.NewVec3(0, 0, -1),
			expectedT:       4,
			expectedOutside: true,
			expectedNormal:  core.NewVec3(0, 0, 1),
		},
		{
			name:            "offset hit on side face",
			transform:       cube,
			rayOrigin:       core.NewVec3(-3, 0, 0.5),
			rayDirection:    core.NewVec3(1, 0, 0),
			expectedT:       2,
			expectedOutside: true,
			expectedNormal:  core.NewVec3(-1, 0, 0),
		},
		{
			name:            "rotated and stretched",
			transform:       core.NewTransform(core.NewVec3(0, 0, 0), core.NewVec3(0, 90, 0), core.NewVec3(4, 1, 1)),
			rayOrigin:       core.NewVec3(0, 0, 5),
			rayDirection:    core.NewVec3(0, 0, -1),
			expectedT:       3,
			expectedOutside: true,
			expectedNormal:  core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, ok := Box{}.intersect(ray, tt.transform)
			require.True(t, ok, "expected hit")

			assert.InDelta(t, tt.expectedT, hit.t, 1e-9)
			assert.Equal(t, tt.expectedOutside, hit.outside)
			assertVecNear(t, tt.expectedNormal, hit.normal, 1e-9)
			assert.InDelta(t, 0, hit.normal.Dot(hit.tangent), 1e-9, "tangent should lie in the face")
		})
	}
}

func TestBox_Miss(t *testing.T) {
	cube := core.NewTransform(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2))

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
	}{
		{"parallel ray outside slab", core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1)},
		{"box behind ray", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)},
		{"passes beside", core.NewVec3(3, 3, 5), core.NewVec3(0, 0, -1)},
		{"oblique miss", core.NewVec3(-5, 0, 3), core.NewVec3(1, 0, 0.1)},
		{"zero direction", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Box{}.intersect(core.NewRay(tt.origin, tt.dir), cube)
			assert.False(t, ok)
		})
	}
}

func TestShapeTypes(t *testing.T) {
	assert.Equal(t, SphereShape, Sphere{}.Type())
	assert.Equal(t, BoxShape, Box{}.Type())
	assert.Equal(t, "sphere", SphereShape.String())
	assert.Equal(t, "box", BoxShape.String())
	assert.Equal(t, "unknown", ShapeType(99).String())
}
