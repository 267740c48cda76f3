package input

// Translator 在默认映射之前拦截按键
//
// Translate 返回 handled=true 时，Mapper 直接发出返回的动作，
// 不记录按下状态，也不注册重复计时器。
// held 用于查询某个按键当前是否处于按下状态。
type Translator interface {
	Translate(code KeyCode, held func(KeyCode) bool) (action Action, handled bool)
}

// LegacyHelpChord 兼容旧版键盘事件的组合键：按住 Shift 时按下 "/" 键视为 "?"，打开帮助页
//
// 旧环境只上报物理键码，"?" 需要从 Shift + 191 推断出来。
// 该组合只触发一次，不会按住重复。
type LegacyHelpChord struct{}

// Translate 实现 Translator
func (LegacyHelpChord) Translate(code KeyCode, held func(KeyCode) bool) (Action, bool) {
	if code == KeySlash && held(KeyShift) {
		return ActionHelp, true
	}
	return ActionNone, false
}

// PlainTranslator 不做任何拦截，"?" 由前端直接作为 KeyQuestion 上报
type PlainTranslator struct{}

// Translate 实现 Translator
func (PlainTranslator) Translate(KeyCode, func(KeyCode) bool) (Action, bool) {
	return ActionNone, false
}

// NewTranslator 根据配置选择翻译器
func NewTranslator(legacyHelpChord bool) Translator {
	if legacyHelpChord {
		return LegacyHelpChord{}
	}
	return PlainTranslator{}
}
