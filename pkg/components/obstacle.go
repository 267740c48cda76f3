package components

// ObstacleComponent 标记障碍物（小行星）实体
// 障碍物匀速向左移动，与飞船或子弹碰撞时被销毁
type ObstacleComponent struct{}
