package systems

import (
	"github.com/decker502/spacegame/pkg/components"
	"github.com/decker502/spacegame/pkg/ecs"
	"github.com/decker502/spacegame/pkg/game"
)

// ProjectileSystem 移动子弹，并删除已经到达画布右边界的子弹
// 先判断再移动：刚越过右边界的子弹还能存活一帧，可以击中刚生成在右边缘的障碍物
type ProjectileSystem struct {
	state *game.GameState
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(state *game.GameState) *ProjectileSystem {
	return &ProjectileSystem{state: state}
}

// Update 每帧调用一次；速度单位是每帧，deltaTime 不参与计算
func (s *ProjectileSystem) Update(deltaTime float64) {
	em := s.state.Entities
	for _, id := range s.state.Projectiles() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		if pos.X >= s.state.CanvasWidth {
			em.DestroyEntity(id)
			continue
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
			pos.X += vel.VX
			pos.Y += vel.VY
		}
	}
}
