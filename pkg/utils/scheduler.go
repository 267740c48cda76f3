package utils

import (
	"sort"
	"time"
)

// TaskID 计时任务的取消令牌，0 表示无效任务
type TaskID uint64

type scheduledTask struct {
	id       TaskID
	due      time.Time
	interval time.Duration // 0 表示一次性任务
	fn       func()
	seq      uint64 // 注册顺序，同一时刻到期的任务按注册顺序执行
}

// Scheduler 单线程计时任务调度器
//
// 提供 "延迟执行一次" 和 "按间隔重复执行" 两类任务，并支持取消。
// 任务不会自行触发：由游戏循环在每帧调用 Advance(now)，
// 所有到期任务在 Advance 内按到期时间顺序依次执行完毕，
// 因此回调之间不会交错，也不需要加锁。
//
// 重复任务如果错过了多个周期（例如某一帧耗时过长），会在同一次 Advance 中补发，
// 每次补发都按各自的到期时间排序。
type Scheduler struct {
	clock  Clock
	nextID TaskID
	seq    uint64
	tasks  map[TaskID]*scheduledTask
	now    time.Time

	advancing bool // Advance 执行回调期间为 true
}

// NewScheduler 创建调度器，当前时间取自 clock
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{
		clock:  clock,
		nextID: 1,
		tasks:  make(map[TaskID]*scheduledTask),
		now:    clock.Now(),
	}
}

// Now 返回调度器最后一次推进到的时间
func (s *Scheduler) Now() time.Time {
	return s.now
}

// After 注册一次性任务，在 delay 之后执行
func (s *Scheduler) After(delay time.Duration, fn func()) TaskID {
	return s.add(delay, 0, fn)
}

// Every 注册重复任务，每隔 interval 执行一次，直到被取消
// 第一次执行在 interval 之后
func (s *Scheduler) Every(interval time.Duration, fn func()) TaskID {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) TaskID {
	id := s.nextID
	s.nextID++
	s.seq++
	s.tasks[id] = &scheduledTask{
		id:       id,
		due:      s.base().Add(delay),
		interval: interval,
		fn:       fn,
		seq:      s.seq,
	}
	return id
}

// base 新任务的计时起点
// 在回调中注册的任务以触发该回调的到期时间为起点，其余情况取时钟当前时间（不早于已推进到的时间）
func (s *Scheduler) base() time.Time {
	if s.advancing {
		return s.now
	}
	now := s.clock.Now()
	if now.Before(s.now) {
		return s.now
	}
	return now
}

// Cancel 取消任务；任务不存在或已执行完毕时返回 false
func (s *Scheduler) Cancel(id TaskID) bool {
	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// Pending 返回尚未执行（或仍在重复）的任务数量
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance 推进到 now 并执行所有到期任务，返回执行的回调次数
// 回调中可以安全地注册或取消任务
func (s *Scheduler) Advance(now time.Time) int {
	if now.Before(s.now) {
		now = s.now
	}
	s.advancing = true
	defer func() { s.advancing = false }()

	fired := 0
	for {
		task := s.nextDue(now)
		if task == nil {
			break
		}
		s.now = task.due
		if task.interval > 0 {
			task.due = task.due.Add(task.interval)
			s.seq++
			task.seq = s.seq
		} else {
			delete(s.tasks, task.id)
		}
		task.fn()
		fired++
	}
	s.now = now
	return fired
}

// nextDue 找到最早到期的任务
func (s *Scheduler) nextDue(now time.Time) *scheduledTask {
	due := make([]*scheduledTask, 0)
	for _, task := range s.tasks {
		if !task.due.After(now) {
			due = append(due, task)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	return due[0]
}
