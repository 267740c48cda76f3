package components

// ProjectileComponent 标记玩家发射的子弹实体
// 子弹匀速向右移动，飞出画布右边界后被移除
type ProjectileComponent struct{}
