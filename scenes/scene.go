package scenes

import "github.com/automoto/rotr/systems"

// SceneChanger interface for changing scenes
type SceneChanger = systems.SceneChanger
