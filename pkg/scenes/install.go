package scenes

import (
	"log"

	"github.com/decker502/spacegame/pkg/game"
	"github.com/decker502/spacegame/pkg/systems"
)

// Install 为 SpaceGame 注册所有页面场景、背景星空和 HUD
// 在 game.NewSpaceGame 之后、第一帧之前调用
func Install(g *game.SpaceGame) {
	state := g.State()
	sm := g.Scenes()

	sm.Register(game.PageIntro, NewIntroScene(state))
	sm.Register(game.PageHelp, NewHelpScene(state))
	sm.Register(game.PagePlaying, NewGameScene(state, g.Ship(), g.Obstacle()))
	sm.Register(game.PageGameOver, NewGameOverScene(state))

	sm.SetBackground(systems.NewStarfieldSystem(state))
	sm.SetOverlay(systems.NewHUDSystem(state, g.Ship()))

	log.Printf("[Scenes] Installed %d pages", 4)
}
