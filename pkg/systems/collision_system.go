package systems

import (
	"github.com/decker502/spacegame/pkg/ecs"
	"github.com/decker502/spacegame/pkg/game"
)

// CollisionSystem 处理玩家与障碍物、子弹与障碍物的碰撞
//
// 按创建顺序遍历障碍物快照：
//   - 与玩家重叠：删除障碍物并扣除生命，生命耗尽时切换到 GameOver，然后继续检查后续障碍物
//   - 否则与第一个重叠的子弹同归于尽，玩家加分
//
// 一颗子弹在同一帧内只能击毁一个障碍物。
// 删除只做标记，由场景在本帧所有系统执行完后统一清理。
type CollisionSystem struct {
	state *game.GameState
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(state *game.GameState) *CollisionSystem {
	return &CollisionSystem{state: state}
}

// Update 执行一轮碰撞检测
func (s *CollisionSystem) Update(deltaTime float64) {
	gs := s.state
	if gs.Player == nil {
		return
	}
	em := gs.Entities

	projectiles := gs.Projectiles()
	consumed := make(map[ecs.EntityID]bool)

	for _, obstacle := range gs.Obstacles() {
		obstacleBox, ok := entityRect(em, obstacle)
		if !ok {
			continue
		}

		// 玩家被击中后会回到出生点，所以每次都重新取玩家位置
		px, py, pw, ph := gs.Player.Bounds()
		if Overlaps(Rect{X: px, Y: py, W: pw, H: ph}, obstacleBox) {
			em.DestroyEntity(obstacle)
			if !gs.Player.Damage() {
				gs.SetPage(game.PageGameOver)
			}
			continue
		}

		for _, projectile := range projectiles {
			if consumed[projectile] {
				continue
			}
			projectileBox, ok := entityRect(em, projectile)
			if !ok || !Overlaps(projectileBox, obstacleBox) {
				continue
			}
			em.DestroyEntity(obstacle)
			em.DestroyEntity(projectile)
			consumed[projectile] = true
			gs.Player.AddScore(gs.Config.Scoring.PerObstacle)
			break
		}
	}
}
