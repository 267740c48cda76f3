package game

import (
	"log"

	"github.com/decker502/spacegame/pkg/entities"
)

// Player 玩家飞船
// 子弹是 GameState.Entities 中带 ProjectileComponent 的实体
type Player struct {
	X, Y    float64
	Lives   int
	Score   int
	CanFire bool

	state *GameState
}

func newPlayer(gs *GameState) *Player {
	p := &Player{
		Lives:   gs.Config.Player.Lives,
		CanFire: true,
		state:   gs,
	}
	p.resetPosition()
	return p
}

func (p *Player) resetPosition() {
	p.X = p.state.Config.Player.SpawnX
	p.Y = p.state.CanvasHeight / 2
}

// Damage 扣除一条生命并回到出生点
// 返回是否还有剩余生命；生命不会小于 0
func (p *Player) Damage() bool {
	if p.Lives > 0 {
		p.Lives--
	}
	p.resetPosition()
	log.Printf("[Player] Hit, %d lives left", p.Lives)
	return p.Lives > 0
}

// Fire 发射一颗子弹
//
// 子弹出现在飞船右侧、垂直居中的位置。
// 发射后进入冷却，冷却由调度器按实际时间计时，与帧率无关。
// 冷却中调用不产生子弹，返回 false。
func (p *Player) Fire() bool {
	if !p.CanFire {
		return false
	}

	cfg := p.state.Config
	spec := entities.ProjectileSpec{
		Width:  cfg.Player.ProjectileWidth,
		Height: cfg.Player.ProjectileHeight,
		Speed:  cfg.Speeds.Projectile,
	}
	x := p.X + p.state.ShipWidth + 1
	y := p.Y + p.state.ShipHeight/2
	if _, err := entities.NewProjectile(p.state.Entities, spec, x, y); err != nil {
		log.Printf("[Player] Failed to create projectile: %v", err)
		return false
	}

	p.CanFire = false
	p.state.Scheduler.After(cfg.FireCooldown(), func() {
		p.CanFire = true
	})
	return true
}

// Move 移动飞船，结果限制在 [0, 画布尺寸 - 飞船尺寸] 内
func (p *Player) Move(dx, dy float64) {
	p.X = clamp(p.X+dx, 0, p.state.CanvasWidth-p.state.ShipWidth)
	p.Y = clamp(p.Y+dy, 0, p.state.CanvasHeight-p.state.ShipHeight)
}

// AddScore 增加分数
func (p *Player) AddScore(points int) {
	if points > 0 {
		p.Score += points
	}
}

// Bounds 返回飞船包围盒
func (p *Player) Bounds() (x, y, w, h float64) {
	return p.X, p.Y, p.state.ShipWidth, p.state.ShipHeight
}

// clamp 上界小于下界时（飞船比画布大）取下界
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
