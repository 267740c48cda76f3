package utils

import "time"

// Clock 提供当前时间
// 游戏中所有实时计时器（按键重复、射击冷却）都通过 Clock 取时间，测试时可替换为 MockClock
type Clock interface {
	Now() time.Time
}

// SystemClock 使用系统单调时钟
type SystemClock struct{}

// NewSystemClock 创建系统时钟
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now 返回当前系统时间
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock 可手动推进的时钟，用于测试
// 游戏循环是单线程的，因此不加锁
type MockClock struct {
	current time.Time
}

// NewMockClock 创建从 start 开始的模拟时钟
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

// Now 返回模拟的当前时间
func (m *MockClock) Now() time.Time {
	return m.current
}

// Advance 将模拟时间向前推进 d
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
