package terminal

import (
	"context"
	"log"
	"math/rand"

	"github.com/decker502/spacegame/pkg/config"
	"github.com/decker502/spacegame/pkg/game"
	"github.com/decker502/spacegame/pkg/input"
	"github.com/decker502/spacegame/pkg/render"
	"github.com/decker502/spacegame/pkg/scenes"
	"github.com/gdamore/tcell/v2"
)

// inboxSize 事件通道缓冲，输入突发时不阻塞读取 goroutine
const inboxSize = 64

var (
	shipGlyph     = Glyph{Rune: '>', Color: tcell.ColorLime}
	obstacleGlyph = Glyph{Rune: '@', Color: tcell.ColorSilver}
)

// NewGame 在终端上创建并装配游戏
//
// 参数:
//   - screen: 已 Init 的 tcell 屏幕
//   - cfg: 游戏配置
//   - ship, obstacle: 飞船与障碍物图片，只使用其尺寸
//   - rng: 随机数源，nil 时按时间播种
//
// 返回:
//   - 终端颜色不足时返回的游戏不会运行，由调用方决定如何提示
func NewGame(screen tcell.Screen, cfg *config.GameConfig, ship, obstacle render.Asset, rng *rand.Rand) (*game.SpaceGame, error) {
	surface := NewSurface(screen, cfg.Canvas.Width, cfg.Canvas.Height)
	if ship != nil {
		surface.SetGlyph(ship, shipGlyph)
	}
	if obstacle != nil {
		surface.SetGlyph(obstacle, obstacleGlyph)
	}

	opts := []game.Option{game.WithTranslator(input.PlainTranslator{})}
	if rng != nil {
		opts = append(opts, game.WithRand(rng))
	}
	g, err := game.NewSpaceGame(game.Resources{
		Surface:  surface,
		Ship:     ship,
		Obstacle: obstacle,
	}, cfg, opts...)
	if err != nil {
		return nil, err
	}
	scenes.Install(g)
	return g, nil
}

// Run 在终端中运行游戏，直到 ctx 结束或按下 Ctrl+C
//
// 按键事件由单独的 goroutine 读取，经通道交给帧循环执行，游戏状态只在帧循环中修改。
// 按 Ctrl+C 退出时返回 nil，ctx 结束时返回 ctx.Err()。
// 调用方负责在返回后调用 screen.Fini()，以结束读取 goroutine。
func Run(ctx context.Context, screen tcell.Screen, g *game.SpaceGame) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	inbox := make(chan func(), inboxSize)
	go pumpEvents(runCtx, screen, g, inbox, cancel)

	frames := game.NewFrameScheduler(g.Config().FrameInterval(), func() {
		g.Frame()
		screen.Show()
	})
	log.Printf("[Terminal] Frame loop started")
	err := frames.Run(runCtx, inbox)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	log.Printf("[Terminal] Quit after %d frames", g.Frames())
	if err == context.Canceled {
		return nil
	}
	return err
}

// pumpEvents 阻塞读取终端事件并转发到 inbox
func pumpEvents(ctx context.Context, screen tcell.Screen, sink KeySink, inbox chan<- func(), quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// 屏幕已关闭
			return
		}

		var event func()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				quit()
				return
			}
			event = func() { Dispatch(ev, sink) }
		case *tcell.EventResize:
			event = screen.Sync
		default:
			continue
		}

		select {
		case inbox <- event:
		case <-ctx.Done():
			return
		}
	}
}
