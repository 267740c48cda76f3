package systems

import (
	"fmt"

	"github.com/decker502/spacegame/pkg/game"
	"github.com/decker502/spacegame/pkg/render"
)

// HUDSystem 分数和生命图层，在所有页面上绘制
//
// 分数右对齐在画布右上角；左上角是 "Lifes:" 标签和每条生命一个缩小的飞船图标。
type HUDSystem struct {
	state *game.GameState
	ship  render.Asset
}

// NewHUDSystem 创建 HUD 系统
func NewHUDSystem(state *game.GameState, ship render.Asset) *HUDSystem {
	return &HUDSystem{state: state, ship: ship}
}

// Update HUD 没有自己的状态
func (s *HUDSystem) Update(deltaTime float64) {}

// Draw 绘制分数和生命
func (s *HUDSystem) Draw(ctx render.Context2D) {
	hud := s.state.Config.HUD
	score, lives := s.state.HUDValues()

	text := fmt.Sprintf("Score: %d", score)
	width := ctx.MeasureText(text, hud.FontSize)
	ctx.FillText(text, ctx.Width()-width-hud.Margin, hud.Baseline, hud.FontSize, render.White)

	ctx.FillText(hud.LivesLabel, hud.Margin, hud.Baseline, hud.FontSize, render.White)
	for i := 0; i < lives; i++ {
		x := hud.LivesSpacing*float64(i) + hud.LivesX
		ctx.DrawImageScaled(s.ship, x, hud.LivesY, hud.LivesIcon, hud.LivesIcon)
	}
}
