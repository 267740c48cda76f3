package components

// CollisionComponent 定义实体的碰撞检测边界框
// 边界框以 PositionComponent 为左上角，向右下延伸 Width x Height
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（逻辑单位）
	Height float64 // 碰撞盒高度（逻辑单位）
}
