package components

// VelocityComponent 存储实体的速度
// 单位是每帧移动的逻辑单位，而不是每秒
type VelocityComponent struct {
	VX float64
	VY float64
}
