package scenes

import (
	"github.com/decker502/spacegame/pkg/game"
	"github.com/decker502/spacegame/pkg/input"
	"github.com/decker502/spacegame/pkg/render"
)

// TextPageScene 只显示说明文字的静态页面（Intro / Help / GameOver）
//
// 每个页面可以把部分动作映射为页面切换，其他动作忽略。
type TextPageScene struct {
	state       *game.GameState
	text        string
	transitions map[input.Action]game.Page
}

// NewTextPageScene 创建文字页面
func NewTextPageScene(state *game.GameState, text string, transitions map[input.Action]game.Page) *TextPageScene {
	if transitions == nil {
		transitions = map[input.Action]game.Page{}
	}
	return &TextPageScene{state: state, text: text, transitions: transitions}
}

// NewIntroScene 初始页面：帮助键进入帮助页，确认键开始游戏
func NewIntroScene(state *game.GameState) *TextPageScene {
	return NewTextPageScene(state, state.Config.Pages.Intro, map[input.Action]game.Page{
		input.ActionHelp:    game.PageHelp,
		input.ActionConfirm: game.PagePlaying,
	})
}

// NewHelpScene 帮助页，只能用 Escape 返回
func NewHelpScene(state *game.GameState) *TextPageScene {
	return NewTextPageScene(state, state.Config.Pages.Help, nil)
}

// NewGameOverScene 游戏结束页，只能用 Escape 返回
func NewGameOverScene(state *game.GameState) *TextPageScene {
	return NewTextPageScene(state, state.Config.Pages.GameOver, nil)
}

// Update 静态页面没有逻辑
func (s *TextPageScene) Update(deltaTime float64) {}

// Draw 逐行居中绘制页面文字
func (s *TextPageScene) Draw(ctx render.Context2D) {
	pages := s.state.Config.Pages
	render.DrawPageText(ctx, s.text, pages.FontSize, pages.Top, pages.LineHeight, render.White)
}

// HandleAction 按映射切换页面
func (s *TextPageScene) HandleAction(action input.Action) {
	if page, ok := s.transitions[action]; ok {
		s.state.SetPage(page)
	}
}
