// Package input 将原始按键事件翻译为游戏动作
//
// 键码沿用浏览器 DOM keyCode 编号，窗口前端和终端前端都先把各自的按键映射到这里的 KeyCode，
// 之后的按键重复、组合键等逻辑与具体平台无关。
package input

import "fmt"

// KeyCode 平台无关的按键编号
type KeyCode int

// 游戏使用到的按键
const (
	KeyReturn   KeyCode = 13
	KeyShift    KeyCode = 16
	KeyEscape   KeyCode = 27
	KeySpace    KeyCode = 32
	KeyLeft     KeyCode = 37
	KeyUp       KeyCode = 38
	KeyRight    KeyCode = 39
	KeyDown     KeyCode = 40
	KeyQuestion KeyCode = 63
	KeySlash    KeyCode = 191
)

var keyNames = map[KeyCode]string{
	KeyReturn:   "Return",
	KeyShift:    "Shift",
	KeyEscape:   "Escape",
	KeySpace:    "Space",
	KeyLeft:     "Left",
	KeyUp:       "Up",
	KeyRight:    "Right",
	KeyDown:     "Down",
	KeyQuestion: "Question",
	KeySlash:    "Slash",
}

func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}
