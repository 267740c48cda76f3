package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/spacegame/pkg/components"
	"github.com/decker502/spacegame/pkg/config"
	"github.com/decker502/spacegame/pkg/ecs"
	"github.com/decker502/spacegame/pkg/entities"
	"github.com/decker502/spacegame/pkg/game"
	"github.com/decker502/spacegame/pkg/utils"
)

// newPlayingState 640x480 画布，32x16 飞船，10x10 障碍物，已进入 Playing
func newPlayingState(t *testing.T) *game.GameState {
	t.Helper()
	clock := utils.NewMockClock(time.Unix(1000, 0))
	gs := game.NewGameState(config.DefaultGameConfig(), rand.New(rand.NewSource(42)), utils.NewScheduler(clock))
	gs.ShipWidth, gs.ShipHeight = 32, 16
	gs.ObstacleWidth, gs.ObstacleHeight = 10, 10
	gs.SetPage(game.PagePlaying)
	return gs
}

func addObstacle(t *testing.T, gs *game.GameState, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewObstacle(gs.Entities, x, y, gs.ObstacleWidth, gs.ObstacleHeight, gs.Config.Speeds.Obstacle)
	if err != nil {
		t.Fatalf("NewObstacle() error: %v", err)
	}
	return id
}

func addProjectile(t *testing.T, gs *game.GameState, x, y float64) ecs.EntityID {
	t.Helper()
	spec := entities.ProjectileSpec{Width: 3, Height: 2, Speed: gs.Config.Speeds.Projectile}
	id, err := entities.NewProjectile(gs.Entities, spec, x, y)
	if err != nil {
		t.Fatalf("NewProjectile() error: %v", err)
	}
	return id
}

func positionOf(t *testing.T, gs *game.GameState, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](gs.Entities, id)
	if !ok {
		t.Fatalf("entity %d has no position", id)
	}
	return pos
}
