package game

import (
	"github.com/decker502/spacegame/pkg/input"
	"github.com/decker502/spacegame/pkg/render"
)

// Layer 与页面无关、每帧都会更新和绘制的图层（背景星空、HUD）
type Layer interface {
	// Update updates the layer based on the elapsed time in seconds.
	Update(deltaTime float64)

	// Draw renders the layer.
	Draw(ctx render.Context2D)
}

// Scene represents one page of the game (intro, help, playing, game over).
// Each scene has its own update, rendering and input logic.
type Scene interface {
	Layer

	// HandleAction reacts to a translated input action while the scene is active.
	// Escape is handled globally and never reaches the scene.
	HandleAction(action input.Action)
}
