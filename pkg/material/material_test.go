package material

import (
	"testing"

	"github.com/df07/go-pathtrace-shading/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestEmissive(t *testing.T) {
	light := NewEmissive(core.NewVec3(1, 0.5, 0.25), 4)
	assert.True(t, light.IsEmissive())
	assert.Equal(t, core.NewVec3(4, 2, 1), light.Emitted())

	wall := NewLambertian(core.NewVec3(0.7, 0.7, 0.7))
	assert.False(t, wall.IsEmissive())
	assert.Equal(t, core.Vec3{}, wall.Emitted())
}

func TestConstructors(t *testing.T) {
	glass := NewGlass(core.NewVec3(1, 1, 1), 1.5)
	assert.Greater(t, glass.Reflective, 0.0)
	assert.Greater(t, glass.Refractive, 0.0)
	assert.Equal(t, 1.5, glass.IndexOfRefraction)

	mirror := NewMirror(core.NewVec3(0.9, 0.9, 0.9))
	assert.Greater(t, mirror.Reflective, 0.0)
	assert.Equal(t, 0.0, mirror.Refractive)

	water := NewTransmissive(core.NewVec3(1, 1, 1), 1.33)
	assert.Equal(t, 0.0, water.Reflective)
	assert.Greater(t, water.Refractive, 0.0)
}
