// simulate 以无窗口方式运行 SpaceGame，用自动驾驶输入验证整局流程
//
// 使用模拟时钟，每帧固定推进一个帧间隔，同一种子的结果完全一致。
//
// 用法:
//
//	go run ./cmd/simulate --frames 1800 --seed 42
//	go run ./cmd/simulate --config data/game.yaml --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/decker502/spacegame/pkg/config"
	"github.com/decker502/spacegame/pkg/game"
	"github.com/decker502/spacegame/pkg/input"
	"github.com/decker502/spacegame/pkg/render"
	"github.com/decker502/spacegame/pkg/scenes"
	"github.com/decker502/spacegame/pkg/utils"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	frames     = flag.Int("frames", 1800, "最多运行的帧数")
	seed       = flag.Int64("seed", 1, "随机种子")
	configPath = flag.String("config", "data/game.yaml", "游戏配置文件路径")
	assetsRoot = flag.String("root", ".", "资源根目录（包含 assets/）")
	idle       = flag.Bool("idle", false, "不操作飞船，只按回车开始")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	ship, err := loadImage(cfg.Assets.Ship)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	obstacle, err := loadImage(cfg.Assets.Obstacle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	clock := utils.NewMockClock(time.Unix(0, 0))
	surface := render.NewRecorder(float64(cfg.Canvas.Width), float64(cfg.Canvas.Height))
	g, err := game.NewSpaceGame(game.Resources{
		Surface:  surface,
		Ship:     ship,
		Obstacle: obstacle,
	}, cfg, game.WithClock(clock), game.WithRand(rand.New(rand.NewSource(*seed))))
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}
	scenes.Install(g)

	result := simulate(g, clock, surface, *frames, !*idle)
	result.Seed = *seed
	result.Print(os.Stdout)
}

func loadImage(path string) (*render.ImageAsset, error) {
	data, err := os.ReadFile(filepath.Join(*assetsRoot, path))
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	return render.DecodeImage(path, data)
}

// Result 一局模拟的统计
type Result struct {
	Seed        int64
	Frames      int
	Page        game.Page
	Score       int
	Lives       int
	MaxOnScreen int
	HUD         []string
}

// Print 输出统计结果
func (r Result) Print(w io.Writer) {
	fmt.Fprintln(w, "=== SpaceGame simulation ===")
	fmt.Fprintf(w, "seed:         %d\n", r.Seed)
	fmt.Fprintf(w, "frames:       %d\n", r.Frames)
	fmt.Fprintf(w, "final page:   %s\n", r.Page)
	fmt.Fprintf(w, "score:        %d\n", r.Score)
	fmt.Fprintf(w, "lives:        %d\n", r.Lives)
	fmt.Fprintf(w, "max obstacles on screen: %d\n", r.MaxOnScreen)
	for _, line := range r.HUD {
		fmt.Fprintf(w, "hud: %q\n", line)
	}
}

// simulate 按回车开始一局，然后逐帧运行直到游戏结束或达到帧数上限
func simulate(g *game.SpaceGame, clock *utils.MockClock, surface *render.Recorder, maxFrames int, steer bool) Result {
	state := g.State()
	interval := g.Config().FrameInterval()
	pilot := newAutopilot(g)

	g.KeyDown(input.KeyReturn)
	g.KeyUp(input.KeyReturn)

	var result Result
	for result.Frames < maxFrames {
		if steer {
			pilot.Step()
		}

		clock.Advance(interval)
		surface.Reset()
		g.Frame()
		result.Frames++

		if n := len(state.Obstacles()); n > result.MaxOnScreen {
			result.MaxOnScreen = n
		}
		if state.Page == game.PageGameOver {
			log.Printf("[Simulate] Game over at frame %d", result.Frames)
			break
		}
	}

	result.Page = state.Page
	result.Score, result.Lives = state.HUDValues()
	result.HUD = surface.Texts()
	return result
}
