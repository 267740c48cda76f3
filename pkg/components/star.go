package components

// StarComponent 背景星星
// 纯装饰，不参与碰撞
type StarComponent struct {
	Brightness float64 // 亮度（绘制时作为透明度），范围 [0.4, 1.4)，超过 1 的部分按 1 绘制
}
