package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/decker502/spacegame/pkg/app"
	"github.com/decker502/spacegame/pkg/config"
	"github.com/decker502/spacegame/pkg/embedded"
	"github.com/decker502/spacegame/pkg/terminal"
	"github.com/gdamore/tcell/v2"
)

const (
	frontendWindow   = "window"
	frontendTerminal = "terminal"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置的 data/game.yaml）")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示按当前时间播种")
	scale      = flag.Float64("scale", 0, "窗口缩放倍数，0 表示使用配置文件中的值")
	frontend   = flag.String("frontend", frontendWindow, "前端类型: window 或 terminal")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	if *scale > 0 {
		cfg.Window.Scale = *scale
	}
	if err := checkAssets(cfg); err != nil {
		log.Fatalf("资源检查失败: %v", err)
	}

	switch *frontend {
	case frontendWindow:
		err = runWindow(cfg)
	case frontendTerminal:
		err = runTerminal(cfg)
	default:
		err = fmt.Errorf("unknown frontend %q (want %s or %s)", *frontend, frontendWindow, frontendTerminal)
	}
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏运行失败: %v", err)
	}
}

// loadConfig 读取配置：指定了路径时从磁盘读取，否则使用嵌入的默认配置
func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	data, err := embedded.ReadFile(config.DefaultGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return config.ParseGameConfig(data)
}

// checkAssets 确认配置引用的图片都打包进了二进制
func checkAssets(cfg *config.GameConfig) error {
	for _, path := range []string{cfg.Assets.Ship, cfg.Assets.Obstacle} {
		if !embedded.Exists(path) {
			return fmt.Errorf("embedded asset %q not found", path)
		}
	}
	return nil
}

func newRand() *rand.Rand {
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Printf("[Main] Random seed %d", s)
	return rand.New(rand.NewSource(s))
}

func runWindow(cfg *config.GameConfig) error {
	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Game:    cfg,
		Rand:    newRand(),
	})
	if err != nil {
		return fmt.Errorf("游戏初始化失败: %w", err)
	}
	if !gameApp.Game().Running() {
		// 不支持二维绘制时静默退出，状态码为 0
		log.Printf("[Main] 2D drawing is not supported, exiting")
		return nil
	}
	return gameApp.Run()
}

func runTerminal(cfg *config.GameConfig) error {
	// 终端画面占用标准输出，日志只在 verbose 时写到标准错误
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	rm := app.NewResourceManager()
	ship, err := rm.LoadImage(cfg.Assets.Ship)
	if err != nil {
		return err
	}
	obstacle, err := rm.LoadImage(cfg.Assets.Obstacle)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	g, err := terminal.NewGame(screen, cfg, ship, obstacle, newRand())
	if err != nil {
		return err
	}
	if !g.Running() {
		log.Printf("[Main] 2D drawing is not supported, exiting")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := terminal.Run(ctx, screen, g); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
