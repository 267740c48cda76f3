package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 嵌入资源中的默认配置路径
const DefaultGameConfigPath = "data/game.yaml"

// GameConfig 游戏全局配置
// 长度单位是逻辑像素，速度单位是逻辑像素 / 帧
type GameConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Canvas    CanvasConfig    `yaml:"canvas"`
	FrameRate int             `yaml:"frameRate"` // 每秒帧数
	Assets    AssetsConfig    `yaml:"assets"`
	Player    PlayerConfig    `yaml:"player"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Speeds    SpeedsConfig    `yaml:"speeds"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Input     InputConfig     `yaml:"input"`
	HUD       HUDConfig       `yaml:"hud"`
	Pages     PagesConfig     `yaml:"pages"`
}

// WindowConfig 桌面窗口设置
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"` // 窗口相对画布的缩放倍数
}

// CanvasConfig 逻辑画布尺寸
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AssetsConfig 图片资源路径（相对于嵌入资源根目录）
type AssetsConfig struct {
	Ship     string `yaml:"ship"`
	Obstacle string `yaml:"obstacle"`
}

// PlayerConfig 玩家飞船参数
type PlayerConfig struct {
	Lives            int     `yaml:"lives"`            // 初始生命数
	Step             float64 `yaml:"step"`             // 每次方向键移动的距离
	SpawnX           float64 `yaml:"spawnX"`           // 出生点 X，Y 固定为画布高度的一半
	FireCooldownMs   int     `yaml:"fireCooldownMs"`   // 射击冷却（毫秒，实时）
	ProjectileWidth  float64 `yaml:"projectileWidth"`  // 子弹宽度
	ProjectileHeight float64 `yaml:"projectileHeight"` // 子弹高度
}

// SpawnConfig 障碍物生成规则
type SpawnConfig struct {
	ObstacleOneIn int `yaml:"obstacleOneIn"` // 每帧以 1/N 的概率生成一个障碍物
}

// SpeedsConfig 各类实体每帧移动距离
type SpeedsConfig struct {
	Obstacle   float64 `yaml:"obstacle"`
	Projectile float64 `yaml:"projectile"`
	Star       float64 `yaml:"star"`
}

// StarfieldConfig 背景星空
type StarfieldConfig struct {
	Count           int     `yaml:"count"`
	Size            float64 `yaml:"size"`
	MinBrightness   float64 `yaml:"minBrightness"`
	BrightnessRange float64 `yaml:"brightnessRange"`
}

// ScoringConfig 计分规则
type ScoringConfig struct {
	PerObstacle int `yaml:"perObstacle"`
}

// InputConfig 键盘输入
type InputConfig struct {
	RepeatIntervalMs int `yaml:"repeatIntervalMs"` // 按住按键时重复触发的间隔
	// LegacyHelpChord 为 true 时按住 Shift 再按 "/" 键打开帮助页（兼容旧版键盘事件）
	LegacyHelpChord bool `yaml:"legacyHelpChord"`
}

// HUDConfig 分数与生命显示
type HUDConfig struct {
	FontSize     float64 `yaml:"fontSize"`
	Margin       float64 `yaml:"margin"`     // 分数右边距、"Lifes:" 左边距
	Baseline     float64 `yaml:"baseline"`   // 文字基线 Y
	LivesLabel   string  `yaml:"livesLabel"` // 沿用 "Lifes:" 的拼写
	LivesX       float64 `yaml:"livesX"`     // 第一个生命图标的 X
	LivesY       float64 `yaml:"livesY"`
	LivesSpacing float64 `yaml:"livesSpacing"`
	LivesIcon    float64 `yaml:"livesIcon"` // 生命图标边长
}

// PagesConfig 静态说明页
type PagesConfig struct {
	FontSize   float64 `yaml:"fontSize"`
	Top        float64 `yaml:"top"`        // 第一行基线 Y
	LineHeight float64 `yaml:"lineHeight"` // 行距
	Intro      string  `yaml:"intro"`
	Help       string  `yaml:"help"`
	GameOver   string  `yaml:"gameOver"`
}

// FireCooldown 射击冷却时长
func (c *GameConfig) FireCooldown() time.Duration {
	return time.Duration(c.Player.FireCooldownMs) * time.Millisecond
}

// RepeatInterval 按键重复间隔
func (c *GameConfig) RepeatInterval() time.Duration {
	return time.Duration(c.Input.RepeatIntervalMs) * time.Millisecond
}

// FrameInterval 两帧之间的目标间隔
func (c *GameConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// DefaultGameConfig 返回默认配置
// 嵌入的 data/game.yaml 与此保持一致，测试中直接使用本函数
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window:    WindowConfig{Title: "SpaceGame", Scale: 1},
		Canvas:    CanvasConfig{Width: 640, Height: 480},
		FrameRate: 30,
		Assets: AssetsConfig{
			Ship:     "assets/images/ship.png",
			Obstacle: "assets/images/asteroid.png",
		},
		Player: PlayerConfig{
			Lives:            3,
			Step:             4,
			SpawnX:           10,
			FireCooldownMs:   500,
			ProjectileWidth:  3,
			ProjectileHeight: 2,
		},
		Spawn:     SpawnConfig{ObstacleOneIn: 30},
		Speeds:    SpeedsConfig{Obstacle: 1, Projectile: 4, Star: 2},
		Starfield: StarfieldConfig{Count: 20, Size: 2, MinBrightness: 0.4, BrightnessRange: 1},
		Scoring:   ScoringConfig{PerObstacle: 100},
		Input:     InputConfig{RepeatIntervalMs: 40, LegacyHelpChord: true},
		HUD: HUDConfig{
			FontSize:     13,
			Margin:       20,
			Baseline:     20,
			LivesLabel:   "Lifes:",
			LivesX:       60,
			LivesY:       12,
			LivesSpacing: 20,
			LivesIcon:    10,
		},
		Pages: PagesConfig{
			FontSize:   26,
			Top:        50,
			LineHeight: 50,
			Intro:      "\nPress Enter\nTo begin your mission\n\n Press ? for help",
			Help:       "Help:\n Your goal is to survive as long as you can!\n Use the directional keys to control your spaceship\nSPACE to shoot\n ESC to return to the main screen",
			GameOver:   "\nGame Over \n Press ESC to go back to the main screen",
		},
	}
}

// LoadGameConfig 从 YAML 文件加载游戏配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 配置
// 未出现在 YAML 中的字段保留默认值，因此配置文件可以只覆盖部分参数
func ParseGameConfig(data []byte) (*GameConfig, error) {
	config := DefaultGameConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validateGameConfig(config); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return config, nil
}

// validateGameConfig 验证配置的有效性
func validateGameConfig(config *GameConfig) error {
	if config.Canvas.Width <= 0 || config.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", config.Canvas.Width, config.Canvas.Height)
	}
	if config.FrameRate <= 0 {
		return fmt.Errorf("frameRate must be > 0, got %d", config.FrameRate)
	}
	if config.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be > 0, got %v", config.Window.Scale)
	}
	if config.Assets.Ship == "" || config.Assets.Obstacle == "" {
		return fmt.Errorf("assets.ship and assets.obstacle are required")
	}

	// 玩家
	if config.Player.Lives < 1 {
		return fmt.Errorf("player.lives must be >= 1, got %d", config.Player.Lives)
	}
	if config.Player.Step <= 0 {
		return fmt.Errorf("player.step must be > 0, got %v", config.Player.Step)
	}
	if config.Player.FireCooldownMs < 0 {
		return fmt.Errorf("player.fireCooldownMs must be >= 0, got %d", config.Player.FireCooldownMs)
	}
	if config.Player.ProjectileWidth <= 0 || config.Player.ProjectileHeight <= 0 {
		return fmt.Errorf("projectile size must be positive")
	}

	// 生成与移动
	if config.Spawn.ObstacleOneIn < 1 {
		return fmt.Errorf("spawn.obstacleOneIn must be >= 1, got %d", config.Spawn.ObstacleOneIn)
	}
	if config.Speeds.Obstacle < 0 || config.Speeds.Projectile <= 0 || config.Speeds.Star < 0 {
		return fmt.Errorf("invalid speeds: obstacle=%v projectile=%v star=%v",
			config.Speeds.Obstacle, config.Speeds.Projectile, config.Speeds.Star)
	}
	if config.Starfield.Count < 0 {
		return fmt.Errorf("starfield.count must be >= 0, got %d", config.Starfield.Count)
	}
	if config.Starfield.BrightnessRange < 0 {
		return fmt.Errorf("starfield.brightnessRange must be >= 0")
	}

	// 输入
	if config.Input.RepeatIntervalMs <= 0 {
		return fmt.Errorf("input.repeatIntervalMs must be > 0, got %d", config.Input.RepeatIntervalMs)
	}

	// 文字
	if config.HUD.FontSize <= 0 || config.Pages.FontSize <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}
	if config.Pages.LineHeight <= 0 {
		return fmt.Errorf("pages.lineHeight must be > 0, got %v", config.Pages.LineHeight)
	}

	return nil
}
