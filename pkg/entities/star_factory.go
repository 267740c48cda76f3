package entities

import (
	"fmt"

	"github.com/decker502/spacegame/pkg/components"
	"github.com/decker502/spacegame/pkg/ecs"
)

// NewStar 创建背景星星实体
// 星星没有碰撞组件，只参与移动和绘制
func NewStar(em *ecs.EntityManager, x, y, brightness, speed float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.VelocityComponent{VX: -speed})
	em.AddComponent(entityID, &components.StarComponent{Brightness: brightness})

	return entityID, nil
}
