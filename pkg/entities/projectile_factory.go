package entities

import (
	"fmt"

	"github.com/decker502/spacegame/pkg/components"
	"github.com/decker502/spacegame/pkg/ecs"
)

// ProjectileSpec 子弹的固定参数（来自配置）
type ProjectileSpec struct {
	Width  float64 // 子弹宽度，默认为 3
	Height float64 // 子弹高度，默认为 2
	Speed  float64 // 每帧向右移动的距离，默认为 4
}

// NewProjectile 创建玩家子弹实体
// 子弹从飞船右侧发射，以恒定速度向右移动
//
// 参数:
//   - em: 实体管理器
//   - spec: 子弹尺寸与速度
//   - startX, startY: 子弹左上角的起始坐标
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewProjectile(em *ecs.EntityManager, spec ProjectileSpec, startX, startY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: startX, Y: startY})
	em.AddComponent(entityID, &components.VelocityComponent{VX: spec.Speed})
	em.AddComponent(entityID, &components.CollisionComponent{Width: spec.Width, Height: spec.Height})
	em.AddComponent(entityID, &components.ProjectileComponent{})

	return entityID, nil
}
