package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/spacegame/pkg/config"
	"github.com/decker502/spacegame/pkg/utils"
)

// newTestState 640x480 画布，32x16 飞船，10x10 障碍物
func newTestState(t *testing.T) (*GameState, *utils.MockClock) {
	t.Helper()
	clock := utils.NewMockClock(time.Unix(1000, 0))
	gs := NewGameState(config.DefaultGameConfig(), rand.New(rand.NewSource(1)), utils.NewScheduler(clock))
	gs.ShipWidth, gs.ShipHeight = 32, 16
	gs.ObstacleWidth, gs.ObstacleHeight = 10, 10
	return gs, clock
}
