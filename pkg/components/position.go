package components

// PositionComponent 存储实体在画布上的位置
// X, Y 是实体包围盒左上角的逻辑坐标
type PositionComponent struct {
	X float64
	Y float64
}
