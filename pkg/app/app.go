// Package app 提供 Ebitengine 窗口前端
//
// App 实现 ebiten.Game：每个 tick 读取按键并推进 SpaceGame，每帧把 SpaceGame 绘制到屏幕。
// 调用 NewApp 前必须先调用 embedded.Init() 初始化嵌入资源。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"

	"github.com/decker502/spacegame/pkg/config"
	"github.com/decker502/spacegame/pkg/game"
	"github.com/decker502/spacegame/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Game 游戏配置，nil 时使用默认配置
	Game *config.GameConfig
	// Rand 随机数源，nil 时按当前时间播种
	Rand *rand.Rand
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	game    *game.SpaceGame
	surface *ScreenSurface
	keys    *KeySource
	config  *config.GameConfig
	focused bool
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig := cfg.Game
	if gameConfig == nil {
		gameConfig = config.DefaultGameConfig()
	}

	resourceManager := NewResourceManager()
	ship, err := resourceManager.LoadImage(gameConfig.Assets.Ship)
	if err != nil {
		return nil, fmt.Errorf("飞船图片加载失败: %w", err)
	}
	obstacle, err := resourceManager.LoadImage(gameConfig.Assets.Obstacle)
	if err != nil {
		return nil, fmt.Errorf("障碍物图片加载失败: %w", err)
	}

	surface := NewScreenSurface(gameConfig.Canvas.Width, gameConfig.Canvas.Height, resourceManager)

	opts := []game.Option{}
	if cfg.Rand != nil {
		opts = append(opts, game.WithRand(cfg.Rand))
	}
	spaceGame, err := game.NewSpaceGame(game.Resources{
		Surface:  surface,
		Ship:     ship,
		Obstacle: obstacle,
	}, gameConfig, opts...)
	if err != nil {
		return nil, err
	}
	scenes.Install(spaceGame)
	log.Printf("[App] SpaceGame initialized")

	return &App{
		game:    spaceGame,
		surface: surface,
		keys:    NewKeySource(gameConfig.Input.LegacyHelpChord),
		config:  gameConfig,
		focused: true,
	}, nil
}

// Run 设置窗口并进入 Ebitengine 主循环，窗口关闭后返回
func (a *App) Run() error {
	w := int(float64(a.config.Canvas.Width) * a.config.Window.Scale)
	h := int(float64(a.config.Canvas.Height) * a.config.Window.Scale)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(a.config.Window.Title)
	ebiten.SetTPS(a.config.FrameRate)

	log.Printf("[App] Window %dx%d, %d TPS", w, h, a.config.FrameRate)
	return ebiten.RunGame(a)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（TPS 与配置的帧率一致）
func (a *App) Update() error {
	// 失去焦点时收不到松开事件，直接松开所有按键
	focused := ebiten.IsFocused()
	if a.focused && !focused {
		a.keys.Reset()
		a.game.ReleaseAllKeys()
	}
	a.focused = focused

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.keys.Poll(a.game)
	a.game.Update()
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.SetTarget(screen)
	a.game.Draw()
	a.surface.SetTarget(nil)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧留黑边
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.config.Canvas.Width, a.config.Canvas.Height
}

// Game 返回游戏控制器
func (a *App) Game() *game.SpaceGame {
	return a.game
}
