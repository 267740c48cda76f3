package main

import (
	"github.com/decker502/spacegame/pkg/components"
	"github.com/decker502/spacegame/pkg/ecs"
	"github.com/decker502/spacegame/pkg/game"
	"github.com/decker502/spacegame/pkg/input"
)

// lookAhead 飞船前方需要躲避的距离
const lookAhead = 160

// autopilot 模拟按键：一直按住空格射击，前方有障碍物时上下躲避
type autopilot struct {
	g    *game.SpaceGame
	held input.KeyCode
}

func newAutopilot(g *game.SpaceGame) *autopilot {
	return &autopilot{g: g}
}

// Step 根据当前局面更新按住的按键
func (a *autopilot) Step() {
	state := a.g.State()
	if state.Page != game.PagePlaying || state.Player == nil {
		a.hold(0)
		return
	}
	// 按住空格，冷却结束后由按键重复继续射击
	a.g.KeyDown(input.KeySpace)
	a.hold(a.decide(state))
}

// decide 返回需要按住的方向键，0 表示不移动
func (a *autopilot) decide(state *game.GameState) input.KeyCode {
	px, py, pw, ph := state.Player.Bounds()
	center := py + ph/2

	for _, id := range state.Obstacles() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](state.Entities, id)
		if !ok {
			continue
		}
		if pos.X+state.ObstacleWidth < px || pos.X > px+pw+lookAhead {
			continue
		}
		if pos.Y+state.ObstacleHeight < py || pos.Y > py+ph {
			continue
		}

		// 往离障碍物中心更远、且未贴边的方向躲
		obstacleCenter := pos.Y + state.ObstacleHeight/2
		if obstacleCenter >= center && py > 0 {
			return input.KeyUp
		}
		if py+ph < state.CanvasHeight {
			return input.KeyDown
		}
		return input.KeyUp
	}
	return 0
}

func (a *autopilot) hold(code input.KeyCode) {
	if a.held == code {
		return
	}
	if a.held != 0 {
		a.g.KeyUp(a.held)
	}
	if code != 0 {
		a.g.KeyDown(code)
	}
	a.held = code
}
