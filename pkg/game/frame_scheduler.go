package game

import (
	"context"
	"time"
)

// FrameScheduler 固定节奏驱动帧函数
//
// 每帧结束后才重新设置下一帧的定时器，帧耗时过长时只会推迟下一帧，不会重叠或补帧。
// inbox 中的事件在两帧之间、同一个 goroutine 上执行，因此事件和帧不会并发修改状态。
type FrameScheduler struct {
	interval time.Duration
	frame    func()
}

// NewFrameScheduler 创建帧调度器
func NewFrameScheduler(interval time.Duration, frame func()) *FrameScheduler {
	if interval <= 0 {
		interval = time.Second / 30
	}
	return &FrameScheduler{interval: interval, frame: frame}
}

// Run 立即执行第一帧，之后每隔 interval 执行一帧，直到 ctx 结束
// inbox 关闭后不再读取，帧循环继续运行
func (f *FrameScheduler) Run(ctx context.Context, inbox <-chan func()) error {
	f.frame()

	timer := time.NewTimer(f.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-inbox:
			if !ok {
				inbox = nil
				continue
			}
			event()
		case <-timer.C:
			f.frame()
			timer.Reset(f.interval)
		}
	}
}
