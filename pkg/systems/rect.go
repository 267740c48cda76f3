package systems

import (
	"github.com/decker502/spacegame/pkg/components"
	"github.com/decker502/spacegame/pkg/ecs"
)

// Rect 轴对齐矩形，(X, Y) 为左上角
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps AABB 重叠检测
// 区间为半开区间，两个矩形仅边缘接触不算重叠；结果与参数顺序无关
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// entityRect 根据位置和碰撞组件计算实体包围盒
func entityRect(em *ecs.EntityManager, id ecs.EntityID) (Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return Rect{}, false
	}
	box, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return Rect{}, false
	}
	return Rect{X: pos.X, Y: pos.Y, W: box.Width, H: box.Height}, true
}
