package entities

import (
	"fmt"

	"github.com/decker502/spacegame/pkg/components"
	"github.com/decker502/spacegame/pkg/ecs"
)

// NewObstacle 创建障碍物（小行星）实体
// 碰撞盒尺寸与障碍物图片尺寸一致，速度为负值表示向左移动
//
// 参数:
//   - em: 实体管理器
//   - x, y: 左上角坐标，通常 x 为画布右边界
//   - width, height: 障碍物图片尺寸
//   - speed: 每帧向左移动的距离（正数）
func NewObstacle(em *ecs.EntityManager, x, y, width, height, speed float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("invalid obstacle size %.0fx%.0f", width, height)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.VelocityComponent{VX: -speed})
	em.AddComponent(entityID, &components.CollisionComponent{Width: width, Height: height})
	em.AddComponent(entityID, &components.ObstacleComponent{})

	return entityID, nil
}
