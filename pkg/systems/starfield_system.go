package systems

import (
	"log"

	"github.com/decker502/spacegame/pkg/components"
	"github.com/decker502/spacegame/pkg/ecs"
	"github.com/decker502/spacegame/pkg/entities"
	"github.com/decker502/spacegame/pkg/game"
	"github.com/decker502/spacegame/pkg/render"
)

// StarfieldSystem 背景星空图层，在所有页面上更新和绘制
//
// 星空第一次生成时星星随机分布在整个画布上，之后补充的星星从右边缘出现。
// 星星移出左边缘后在原实体上重生：回到右边缘，重新随机 y 和亮度。
type StarfieldSystem struct {
	state *game.GameState
}

// NewStarfieldSystem 创建星空系统
func NewStarfieldSystem(state *game.GameState) *StarfieldSystem {
	return &StarfieldSystem{state: state}
}

// Update 补齐星星数量并移动星星
func (s *StarfieldSystem) Update(deltaTime float64) {
	s.fill()

	em := s.state.Entities
	for _, id := range s.state.Stars() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
			pos.X += vel.VX
			pos.Y += vel.VY
		}
		if pos.X < 0 {
			s.respawn(id, pos)
		}
	}
}

// fill 把星星补齐到 starfield.count
func (s *StarfieldSystem) fill() {
	gs := s.state
	existing := len(gs.Stars())
	missing := gs.Config.Starfield.Count - existing
	if missing <= 0 {
		return
	}

	wasEmpty := existing == 0
	for i := 0; i < missing; i++ {
		x := gs.CanvasWidth
		if wasEmpty {
			x = gs.Rand.Float64() * gs.CanvasWidth
		}
		y := gs.Rand.Float64() * gs.CanvasHeight
		if _, err := entities.NewStar(gs.Entities, x, y, s.brightness(), gs.Config.Speeds.Star); err != nil {
			log.Printf("[StarfieldSystem] Failed to create star: %v", err)
			return
		}
	}
}

func (s *StarfieldSystem) respawn(id ecs.EntityID, pos *components.PositionComponent) {
	gs := s.state
	pos.X = gs.CanvasWidth
	pos.Y = gs.Rand.Float64() * gs.CanvasHeight
	if star, ok := ecs.GetComponent[*components.StarComponent](gs.Entities, id); ok {
		star.Brightness = s.brightness()
	}
}

// brightness 在 [minBrightness, minBrightness+brightnessRange) 内随机
func (s *StarfieldSystem) brightness() float64 {
	cfg := s.state.Config.Starfield
	return cfg.MinBrightness + s.state.Rand.Float64()*cfg.BrightnessRange
}

// Draw 绘制黑色背景和星星
func (s *StarfieldSystem) Draw(ctx render.Context2D) {
	ctx.FillRect(0, 0, ctx.Width(), ctx.Height(), render.Black)

	em := s.state.Entities
	size := s.state.Config.Starfield.Size
	for _, id := range s.state.Stars() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		star, ok := ecs.GetComponent[*components.StarComponent](em, id)
		if !ok {
			continue
		}
		ctx.FillRect(pos.X, pos.Y, size, size, render.StarColor(star.Brightness))
	}
}
