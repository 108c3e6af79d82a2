package scene

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	create      func() (*Scene, error)
}

var builtinScenes = []SceneInfo{
	{"cornell", "Cornell box with a panel light, mirror and glass spheres", NewCornellScene},
	{"default", "Diffuse, mirror and glass spheres on a ground slab", NewDefaultScene},
	{"caustic-glass", "Glass ball focusing a small light onto the floor", NewCausticGlassScene},
	{"minimal", "One diffuse sphere under one light, for quick checks", NewMinimalScene},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := append([]SceneInfo(nil), builtinScenes...)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Load builds the named built-in scene
func Load(name string) (*Scene, error) {
	for _, info := range builtinScenes {
		if info.Name == name {
			s, err := info.create()
			if err != nil {
				return nil, fmt.Errorf("building scene %q: %w", name, err)
			}
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}
