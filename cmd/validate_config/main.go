// validate_config 检查游戏配置文件和其引用的图片资源
//
// 用法:
//
//	go run ./cmd/validate_config
//	go run ./cmd/validate_config --config my_game.yaml --root .
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/decker502/spacegame/pkg/config"
	"github.com/decker502/spacegame/pkg/render"
)

var (
	configPath = flag.String("config", "data/game.yaml", "游戏配置文件路径")
	assetsRoot = flag.String("root", ".", "资源根目录（包含 assets/）")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Printf("❌ 配置无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ YAML 格式正确: %s\n", *configPath)
	fmt.Printf("✅ 画布 %dx%d, %d 帧/秒, %d 条生命\n",
		cfg.Canvas.Width, cfg.Canvas.Height, cfg.FrameRate, cfg.Player.Lives)

	failed := 0
	for _, path := range []string{cfg.Assets.Ship, cfg.Assets.Obstacle} {
		w, h, err := checkImage(filepath.Join(*assetsRoot, path))
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			failed++
			continue
		}
		fmt.Printf("✅ %s (%dx%d)\n", path, w, h)
	}

	if failed > 0 {
		fmt.Printf("❌ 有 %d 个资源无法加载\n", failed)
		os.Exit(1)
	}
}

// checkImage 读取并解码图片，返回尺寸
func checkImage(path string) (int, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("读取图片失败: %w", err)
	}
	asset, err := render.DecodeImage(path, data)
	if err != nil {
		return 0, 0, err
	}
	if w, h := asset.Size(); w > 0 && h > 0 {
		return w, h, nil
	}
	return 0, 0, fmt.Errorf("图片尺寸为零: %s", path)
}
