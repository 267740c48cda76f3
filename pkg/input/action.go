package input

// Action 按键翻译后的游戏动作
// 动作本身与页面无关，由当前页面决定如何响应
type Action int

const (
	ActionNone Action = iota
	ActionEscape
	ActionHelp
	ActionConfirm
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionFire
)

func (a Action) String() string {
	switch a {
	case ActionEscape:
		return "Escape"
	case ActionHelp:
		return "Help"
	case ActionConfirm:
		return "Confirm"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	default:
		return "None"
	}
}

// ActionFor 返回按键的默认动作，没有绑定动作的按键返回 ActionNone
func ActionFor(code KeyCode) Action {
	switch code {
	case KeyEscape:
		return ActionEscape
	case KeyQuestion:
		return ActionHelp
	case KeyReturn:
		return ActionConfirm
	case KeyLeft:
		return ActionLeft
	case KeyRight:
		return ActionRight
	case KeyUp:
		return ActionUp
	case KeyDown:
		return ActionDown
	case KeySpace:
		return ActionFire
	default:
		return ActionNone
	}
}
