package scenes

import (
	"github.com/decker502/spacegame/pkg/game"
	"github.com/decker502/spacegame/pkg/input"
	"github.com/decker502/spacegame/pkg/render"
	"github.com/decker502/spacegame/pkg/systems"
)

// GameScene represents the Playing page.
// It runs the simulation systems each frame and draws the ship, projectiles and obstacles.
type GameScene struct {
	state *game.GameState

	projectileSystem *systems.ProjectileSystem
	spawnSystem      *systems.SpawnSystem
	collisionSystem  *systems.CollisionSystem
	movementSystem   *systems.MovementSystem
	renderSystem     *systems.RenderSystem
}

// NewGameScene 创建游戏场景
func NewGameScene(state *game.GameState, ship, obstacle render.Asset) *GameScene {
	return &GameScene{
		state:            state,
		projectileSystem: systems.NewProjectileSystem(state),
		spawnSystem:      systems.NewSpawnSystem(state),
		collisionSystem:  systems.NewCollisionSystem(state),
		movementSystem:   systems.NewMovementSystem(state),
		renderSystem:     systems.NewRenderSystem(state, ship, obstacle),
	}
}

// Update 执行一帧模拟
// 顺序：子弹移动 -> 生成障碍物 -> 碰撞 -> 障碍物移动，最后统一清理被删除的实体
func (s *GameScene) Update(deltaTime float64) {
	s.projectileSystem.Update(deltaTime)
	s.spawnSystem.Update(deltaTime)
	s.collisionSystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)

	s.state.Entities.RemoveMarkedEntities()
}

// Draw 绘制飞船、子弹和障碍物
func (s *GameScene) Draw(ctx render.Context2D) {
	s.renderSystem.Draw(ctx)
}

// HandleAction 方向键移动飞船，空格发射
func (s *GameScene) HandleAction(action input.Action) {
	player := s.state.Player
	if player == nil {
		return
	}
	step := s.state.Config.Player.Step

	switch action {
	case input.ActionLeft:
		player.Move(-step, 0)
	case input.ActionRight:
		player.Move(step, 0)
	case input.ActionUp:
		player.Move(0, -step)
	case input.ActionDown:
		player.Move(0, step)
	case input.ActionFire:
		player.Fire()
	}
}
