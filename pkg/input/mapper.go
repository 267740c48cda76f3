package input

import (
	"log"
	"sort"
	"time"

	"github.com/decker502/spacegame/pkg/utils"
)

// Handler 接收翻译后的动作
type Handler func(Action)

// Mapper 将按下/松开事件翻译为动作，并实现按住重复
//
// 按下一个尚未按下的按键时立即发出一次动作，
// 之后每隔 repeatInterval 由调度器重复发出，直到松开。
// 所有按键都会被记录（包括没有绑定动作的 Shift），组合键翻译需要查询它们的状态。
type Mapper struct {
	scheduler      *utils.Scheduler
	repeatInterval time.Duration
	translator     Translator
	handler        Handler

	// 按键 -> 重复任务ID；没有绑定动作的按键记录为 0
	pressed map[KeyCode]utils.TaskID
}

// NewMapper 创建输入映射器
// 参数:
//   - scheduler: 用于注册按键重复任务
//   - repeatInterval: 按住时的重复间隔
//   - translator: 组合键翻译器，nil 时使用 PlainTranslator
//   - handler: 动作回调
func NewMapper(scheduler *utils.Scheduler, repeatInterval time.Duration, translator Translator, handler Handler) *Mapper {
	if translator == nil {
		translator = PlainTranslator{}
	}
	return &Mapper{
		scheduler:      scheduler,
		repeatInterval: repeatInterval,
		translator:     translator,
		handler:        handler,
		pressed:        make(map[KeyCode]utils.TaskID),
	}
}

// KeyDown 处理按键按下
// 平台的自动重复（同一按键连续按下事件）会被忽略，重复由调度器负责
func (m *Mapper) KeyDown(code KeyCode) {
	if action, handled := m.translator.Translate(code, m.IsPressed); handled {
		m.emit(action)
		return
	}

	if _, already := m.pressed[code]; already {
		return
	}

	action := ActionFor(code)
	if action == ActionNone {
		m.pressed[code] = 0
		return
	}

	m.emit(action)
	m.pressed[code] = m.scheduler.Every(m.repeatInterval, func() {
		m.emit(action)
	})
}

// KeyUp 处理按键松开，只取消该按键自己的重复任务
func (m *Mapper) KeyUp(code KeyCode) {
	taskID, ok := m.pressed[code]
	if !ok {
		return
	}
	if taskID != 0 {
		m.scheduler.Cancel(taskID)
	}
	delete(m.pressed, code)
}

// ReleaseAll 松开所有按键（窗口失去焦点、退出时调用）
func (m *Mapper) ReleaseAll() {
	keys := m.PressedKeys()
	for _, code := range keys {
		m.KeyUp(code)
	}
	log.Printf("[Input] Released %d keys %v", len(keys), keys)
}

// IsPressed 查询按键是否处于按下状态
func (m *Mapper) IsPressed(code KeyCode) bool {
	_, ok := m.pressed[code]
	return ok
}

// PressedKeys 返回当前按下的按键（按键码升序）
func (m *Mapper) PressedKeys() []KeyCode {
	keys := make([]KeyCode, 0, len(m.pressed))
	for code := range m.pressed {
		keys = append(keys, code)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (m *Mapper) emit(action Action) {
	if action == ActionNone || m.handler == nil {
		return
	}
	m.handler(action)
}
