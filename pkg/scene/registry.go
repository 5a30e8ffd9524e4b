package scene

import (
	"fmt"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Short description
}

type builtinScene struct {
	info SceneInfo
	new  func() *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default",
			Description: "Analytic sphere, ray-marched sphere and ground sphere",
		},
		new: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "primitives",
			DisplayName: "Primitives",
			Description: "Default scene plus centre sphere, plane and box",
		},
		new: NewPrimitivesScene,
	},
}

// New creates the built-in scene with the given id
func New(id string) (*Scene, error) {
	for _, s := range builtinScenes {
		if s.info.ID == id {
			return s.new(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene: %q", id)
}

// List returns metadata for all built-in scenes in a stable order
func List() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, s := range builtinScenes {
		infos[i] = s.info
	}
	return infos
}
