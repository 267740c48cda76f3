package systems

import (
	"log"

	"github.com/decker502/spacegame/pkg/entities"
	"github.com/decker502/spacegame/pkg/game"
)

// SpawnSystem 随机生成障碍物
//
// 每帧以 1/spawn.obstacleOneIn 的概率在画布右边缘生成一个障碍物，
// 垂直位置在 [0, 画布高度) 内均匀分布（障碍物可能有一部分在画布下方）。
type SpawnSystem struct {
	state *game.GameState
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(state *game.GameState) *SpawnSystem {
	return &SpawnSystem{state: state}
}

// Update 每帧最多生成一个障碍物
func (s *SpawnSystem) Update(deltaTime float64) {
	gs := s.state
	if gs.Rand.Intn(gs.Config.Spawn.ObstacleOneIn) != 0 {
		return
	}
	s.Spawn(gs.Rand.Float64() * gs.CanvasHeight)
}

// Spawn 在画布右边缘的 y 处生成一个障碍物
func (s *SpawnSystem) Spawn(y float64) {
	gs := s.state
	_, err := entities.NewObstacle(gs.Entities, gs.CanvasWidth, y,
		gs.ObstacleWidth, gs.ObstacleHeight, gs.Config.Speeds.Obstacle)
	if err != nil {
		log.Printf("[SpawnSystem] Failed to spawn obstacle: %v", err)
	}
}
