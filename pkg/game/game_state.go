package game

import (
	"log"
	"math/rand"

	"github.com/decker502/spacegame/pkg/components"
	"github.com/decker502/spacegame/pkg/config"
	"github.com/decker502/spacegame/pkg/ecs"
	"github.com/decker502/spacegame/pkg/utils"
)

// GameState 游戏的共享状态
//
// 所有系统和场景都通过同一个 GameState 读写状态，没有全局单例。
// 障碍物、子弹、星星都是 Entities 中的实体，玩家是普通结构体，
// 只在 Playing / GameOver 页面存在。
type GameState struct {
	Page   Page
	Player *Player

	Entities *ecs.EntityManager

	CanvasWidth    float64
	CanvasHeight   float64
	ShipWidth      float64
	ShipHeight     float64
	ObstacleWidth  float64
	ObstacleHeight float64

	Config    *config.GameConfig
	Rand      *rand.Rand
	Scheduler *utils.Scheduler
}

// NewGameState 创建初始状态（Intro 页面，没有玩家）
func NewGameState(cfg *config.GameConfig, rng *rand.Rand, scheduler *utils.Scheduler) *GameState {
	return &GameState{
		Page:         PageIntro,
		Entities:     ecs.NewEntityManager(),
		CanvasWidth:  float64(cfg.Canvas.Width),
		CanvasHeight: float64(cfg.Canvas.Height),
		Config:       cfg,
		Rand:         rng,
		Scheduler:    scheduler,
	}
}

// SetPage 切换页面
//
// 进入 Playing 时创建新玩家并清空障碍物和子弹；
// 进入 Intro / Help 时丢弃玩家；GameOver 保留玩家以便显示最终分数。
// 切换到当前页面不做任何事。
func (gs *GameState) SetPage(page Page) {
	if page == gs.Page {
		return
	}
	from := gs.Page
	gs.Page = page

	switch page {
	case PagePlaying:
		gs.Player = newPlayer(gs)
		obstacles := ecs.DestroyAllWith[*components.ObstacleComponent](gs.Entities)
		projectiles := ecs.DestroyAllWith[*components.ProjectileComponent](gs.Entities)
		gs.Entities.RemoveMarkedEntities()
		log.Printf("[GameState] New round: cleared %d obstacles, %d projectiles", obstacles, projectiles)
	case PageIntro, PageHelp:
		gs.Player = nil
	}

	log.Printf("[GameState] Page %s -> %s (%d entities, %d timers)",
		from, page, gs.Entities.EntityCount(), gs.Scheduler.Pending())
}

// Obstacles 返回存活的障碍物（按创建顺序）
func (gs *GameState) Obstacles() []ecs.EntityID {
	return gs.alive(ecs.GetEntitiesWith1[*components.ObstacleComponent](gs.Entities))
}

// Projectiles 返回存活的子弹（按创建顺序）
func (gs *GameState) Projectiles() []ecs.EntityID {
	return gs.alive(ecs.GetEntitiesWith1[*components.ProjectileComponent](gs.Entities))
}

// Stars 返回所有星星（按创建顺序）
func (gs *GameState) Stars() []ecs.EntityID {
	return gs.alive(ecs.GetEntitiesWith1[*components.StarComponent](gs.Entities))
}

// alive 过滤掉已标记删除的实体
func (gs *GameState) alive(ids []ecs.EntityID) []ecs.EntityID {
	result := ids[:0]
	for _, id := range ids {
		if !gs.Entities.IsMarkedForDestroy(id) {
			result = append(result, id)
		}
	}
	return result
}

// HUDValues 返回 HUD 显示的分数和生命
// 没有玩家时（Intro / Help）显示一局开始时的数值
func (gs *GameState) HUDValues() (score, lives int) {
	if gs.Player == nil {
		return 0, gs.Config.Player.Lives
	}
	return gs.Player.Score, gs.Player.Lives
}
