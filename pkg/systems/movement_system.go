package systems

import (
	"github.com/decker502/spacegame/pkg/components"
	"github.com/decker502/spacegame/pkg/ecs"
	"github.com/decker502/spacegame/pkg/game"
)

// MovementSystem 移动障碍物，删除完全离开画布左侧的障碍物
type MovementSystem struct {
	state *game.GameState
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(state *game.GameState) *MovementSystem {
	return &MovementSystem{state: state}
}

// Update 每帧移动一次
func (s *MovementSystem) Update(deltaTime float64) {
	em := s.state.Entities
	for _, id := range s.state.Obstacles() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
			pos.X += vel.VX
			pos.Y += vel.VY
		}

		width := s.state.ObstacleWidth
		if box, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
			width = box.Width
		}
		if pos.X+width < 0 {
			em.DestroyEntity(id)
		}
	}
}
