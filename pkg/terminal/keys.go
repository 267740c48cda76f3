package terminal

import (
	"github.com/decker502/spacegame/pkg/input"
	"github.com/gdamore/tcell/v2"
)

// KeySink 接收平台无关的按键事件（*game.SpaceGame 实现了它）
type KeySink interface {
	KeyDown(code input.KeyCode)
	KeyUp(code input.KeyCode)
}

// translateKey 把终端按键映射为 input.KeyCode
// 终端直接送来 "?" 字符，因此不需要 Shift + / 组合键
func translateKey(ev *tcell.EventKey) (input.KeyCode, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return input.KeyReturn, true
	case tcell.KeyEscape:
		return input.KeyEscape, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return input.KeySpace, true
		case '?':
			return input.KeyQuestion, true
		}
	}
	return 0, false
}

// Dispatch 把一次终端按键作为按下并立即松开转交给 sink
// 返回 false 表示该按键与游戏无关
func Dispatch(ev *tcell.EventKey, sink KeySink) bool {
	code, ok := translateKey(ev)
	if !ok {
		return false
	}
	sink.KeyDown(code)
	sink.KeyUp(code)
	return true
}
