package systems

import (
	"github.com/decker502/spacegame/pkg/components"
	"github.com/decker502/spacegame/pkg/ecs"
	"github.com/decker502/spacegame/pkg/game"
	"github.com/decker502/spacegame/pkg/render"
)

// RenderSystem 绘制游戏中的飞船、子弹和障碍物
type RenderSystem struct {
	state    *game.GameState
	ship     render.Asset
	obstacle render.Asset
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(state *game.GameState, ship, obstacle render.Asset) *RenderSystem {
	return &RenderSystem{state: state, ship: ship, obstacle: obstacle}
}

// Draw 先画飞船和子弹，再画障碍物
func (s *RenderSystem) Draw(ctx render.Context2D) {
	gs := s.state
	em := gs.Entities

	if gs.Player != nil {
		ctx.DrawImage(s.ship, gs.Player.X, gs.Player.Y)
	}

	for _, id := range gs.Projectiles() {
		box, ok := entityRect(em, id)
		if !ok {
			continue
		}
		ctx.FillRect(box.X, box.Y, box.W, box.H, render.White)
	}

	for _, id := range gs.Obstacles() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		ctx.DrawImage(s.obstacle, pos.X, pos.Y)
	}
}
