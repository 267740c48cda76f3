package app

import (
	"github.com/decker502/spacegame/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeySink 接收平台无关的按键事件（*game.SpaceGame 实现了它）
type KeySink interface {
	KeyDown(code input.KeyCode)
	KeyUp(code input.KeyCode)
}

// KeySource 每帧读取 Ebitengine 的按键变化并转交给游戏
//
// 启用旧版组合键时，"/" 键作为 KeySlash 上报，由 input.LegacyHelpChord 结合 Shift 判断；
// 否则 "?" 由输入字符得到，作为一次 KeyQuestion 按下+松开上报。
//
// 左右两个 Shift 合并为一个 KeyShift：第一个按下时上报按下，最后一个松开时才上报松开。
type KeySource struct {
	legacyHelpChord bool
	shiftHeld       int

	pressed  []ebiten.Key
	released []ebiten.Key
	chars    []rune
}

// NewKeySource 创建按键源
func NewKeySource(legacyHelpChord bool) *KeySource {
	return &KeySource{legacyHelpChord: legacyHelpChord}
}

// Poll 读取本帧的按键变化
func (k *KeySource) Poll(sink KeySink) {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	k.chars = ebiten.AppendInputChars(k.chars[:0])
	k.dispatch(k.pressed, k.released, k.chars, sink)
}

// Reset 清空按键源记录的 Shift 状态，配合 ReleaseAllKeys 使用
func (k *KeySource) Reset() {
	k.shiftHeld = 0
}

func (k *KeySource) dispatch(pressed, released []ebiten.Key, chars []rune, sink KeySink) {
	for _, key := range pressed {
		code, ok := k.translate(key)
		if !ok {
			continue
		}
		if code == input.KeyShift {
			k.shiftHeld++
			if k.shiftHeld > 1 {
				continue
			}
		}
		sink.KeyDown(code)
	}
	for _, key := range released {
		code, ok := k.translate(key)
		if !ok {
			continue
		}
		if code == input.KeyShift {
			if k.shiftHeld == 0 {
				continue
			}
			k.shiftHeld--
			if k.shiftHeld > 0 {
				continue
			}
		}
		sink.KeyUp(code)
	}
	if k.legacyHelpChord {
		return
	}
	for _, r := range chars {
		if r == '?' {
			sink.KeyDown(input.KeyQuestion)
			sink.KeyUp(input.KeyQuestion)
		}
	}
}

// translate 把 Ebitengine 按键映射为 input.KeyCode
func (k *KeySource) translate(key ebiten.Key) (input.KeyCode, bool) {
	switch key {
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return input.KeyReturn, true
	case ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight:
		return input.KeyShift, true
	case ebiten.KeyEscape:
		return input.KeyEscape, true
	case ebiten.KeySpace:
		return input.KeySpace, true
	case ebiten.KeyArrowLeft:
		return input.KeyLeft, true
	case ebiten.KeyArrowUp:
		return input.KeyUp, true
	case ebiten.KeyArrowRight:
		return input.KeyRight, true
	case ebiten.KeyArrowDown:
		return input.KeyDown, true
	case ebiten.KeySlash:
		if k.legacyHelpChord {
			return input.KeySlash, true
		}
	}
	return 0, false
}
