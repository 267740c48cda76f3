// Package scenes 实现各页面的场景，并把场景和图层注册到 SpaceGame
package scenes

import (
	"github.com/decker502/spacegame/pkg/game"
)

// Scene is a type alias for game.Scene.
// Every page registered by Install implements it.
type Scene = game.Scene

var (
	_ Scene = (*TextPageScene)(nil)
	_ Scene = (*GameScene)(nil)
)
