package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/spacegame/pkg/config"
	"github.com/decker502/spacegame/pkg/input"
	"github.com/decker502/spacegame/pkg/render"
	"github.com/decker502/spacegame/pkg/utils"
)

// ErrMissingResource 构造时缺少必需的资源
var ErrMissingResource = errors.New("missing required resource")

// Resources 启动游戏必需的三项资源
type Resources struct {
	Surface  render.Surface
	Ship     render.Asset
	Obstacle render.Asset
}

// Option 可选构造参数
type Option func(*SpaceGame)

// WithClock 替换实时时钟（测试中使用 utils.MockClock）
func WithClock(clock utils.Clock) Option {
	return func(g *SpaceGame) {
		g.clock = clock
	}
}

// WithRand 指定随机数源，用于复现一局游戏
func WithRand(rng *rand.Rand) Option {
	return func(g *SpaceGame) {
		g.rng = rng
	}
}

// WithTranslator 覆盖配置中的组合键翻译器
func WithTranslator(translator input.Translator) Option {
	return func(g *SpaceGame) {
		g.translator = translator
	}
}

// SpaceGame 游戏控制器
//
// 持有共享的 GameState、场景管理器和输入映射器。
// 前端负责每帧调用 Update / Draw（或 Frame），并把按键事件转交 KeyDown / KeyUp。
// 所有方法都应在同一个 goroutine 中调用。
type SpaceGame struct {
	config   *config.GameConfig
	state    *GameState
	scenes   *SceneManager
	mapper   *input.Mapper
	surface  render.Surface
	ship     render.Asset
	obstacle render.Asset

	clock      utils.Clock
	rng        *rand.Rand
	translator input.Translator

	running    bool
	lastUpdate time.Time
	frames     uint64
}

// NewSpaceGame 创建游戏
//
// 参数:
//   - res: 绘图表面、飞船图片、障碍物图片，缺一不可
//   - cfg: 游戏配置，nil 时使用默认配置
//   - opts: 可选参数
//
// 返回:
//   - 缺少资源时返回包装了 ErrMissingResource 的错误，不会创建任何状态
//   - 绘图表面不支持二维绘制时返回的游戏不会运行（Running() 为 false），这不是错误
func NewSpaceGame(res Resources, cfg *config.GameConfig, opts ...Option) (*SpaceGame, error) {
	switch {
	case res.Surface == nil:
		return nil, fmt.Errorf("%w: drawing surface", ErrMissingResource)
	case res.Ship == nil:
		return nil, fmt.Errorf("%w: ship image", ErrMissingResource)
	case res.Obstacle == nil:
		return nil, fmt.Errorf("%w: obstacle image", ErrMissingResource)
	}
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}

	g := &SpaceGame{
		config:   cfg,
		surface:  res.Surface,
		ship:     res.Ship,
		obstacle: res.Obstacle,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = utils.NewSystemClock()
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.translator == nil {
		g.translator = input.NewTranslator(cfg.Input.LegacyHelpChord)
	}

	scheduler := utils.NewScheduler(g.clock)
	g.state = NewGameState(cfg, g.rng, scheduler)
	g.scenes = NewSceneManager(g.state)
	g.mapper = input.NewMapper(scheduler, cfg.RepeatInterval(), g.translator, g.HandleAction)

	shipW, shipH := res.Ship.Size()
	obstacleW, obstacleH := res.Obstacle.Size()
	g.state.ShipWidth, g.state.ShipHeight = float64(shipW), float64(shipH)
	g.state.ObstacleWidth, g.state.ObstacleHeight = float64(obstacleW), float64(obstacleH)

	ctx, ok := res.Surface.Context2D()
	if !ok {
		log.Printf("[SpaceGame] 2D drawing is not supported, game will not start")
		return g, nil
	}
	g.state.CanvasWidth, g.state.CanvasHeight = ctx.Width(), ctx.Height()
	g.running = true
	g.lastUpdate = g.clock.Now()

	log.Printf("[SpaceGame] Started: canvas %.0fx%.0f, ship %dx%d, obstacle %dx%d",
		g.state.CanvasWidth, g.state.CanvasHeight, shipW, shipH, obstacleW, obstacleH)
	return g, nil
}

// Running 游戏循环是否在运行
func (g *SpaceGame) Running() bool {
	return g.running
}

// Config 返回游戏配置
func (g *SpaceGame) Config() *config.GameConfig {
	return g.config
}

// State 返回共享游戏状态
func (g *SpaceGame) State() *GameState {
	return g.state
}

// Scenes 返回场景管理器
func (g *SpaceGame) Scenes() *SceneManager {
	return g.scenes
}

// Ship 返回飞船图片
func (g *SpaceGame) Ship() render.Asset {
	return g.ship
}

// Obstacle 返回障碍物图片
func (g *SpaceGame) Obstacle() render.Asset {
	return g.obstacle
}

// Frames 返回已执行的帧数
func (g *SpaceGame) Frames() uint64 {
	return g.frames
}

// Frame 执行完整的一帧：更新后绘制
func (g *SpaceGame) Frame() {
	if !g.running {
		return
	}
	g.Update()
	g.Draw()
}

// Update 推进一帧的逻辑
// 先触发到期的计时任务（按键重复、射击冷却），再更新背景和当前页面
func (g *SpaceGame) Update() {
	if !g.running {
		return
	}
	now := g.clock.Now()
	deltaTime := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	g.state.Scheduler.Advance(now)
	g.scenes.Update(deltaTime)
	g.frames++
}

// Draw 清空画布并绘制背景、当前页面和 HUD
func (g *SpaceGame) Draw() {
	if !g.running {
		return
	}
	ctx, ok := g.surface.Context2D()
	if !ok {
		return
	}
	ctx.Clear()
	g.scenes.Draw(ctx)
}

// KeyDown 按键按下
func (g *SpaceGame) KeyDown(code input.KeyCode) {
	if !g.running {
		return
	}
	g.mapper.KeyDown(code)
}

// KeyUp 按键松开
func (g *SpaceGame) KeyUp(code input.KeyCode) {
	if !g.running {
		return
	}
	g.mapper.KeyUp(code)
}

// ReleaseAllKeys 松开所有按键
func (g *SpaceGame) ReleaseAllKeys() {
	g.mapper.ReleaseAll()
}

// HandleAction 应用一个动作
// Escape 在任何页面都回到 Intro，其他动作交给当前页面
func (g *SpaceGame) HandleAction(action input.Action) {
	if action == input.ActionEscape {
		g.state.SetPage(PageIntro)
		return
	}
	g.scenes.HandleAction(action)
}
