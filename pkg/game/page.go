package game

// Page 当前显示的顶层页面
type Page int

const (
	// PageIntro 初始页面
	PageIntro Page = iota
	PageHelp
	PagePlaying
	PageGameOver
)

func (p Page) String() string {
	switch p {
	case PageIntro:
		return "Intro"
	case PageHelp:
		return "Help"
	case PagePlaying:
		return "Playing"
	case PageGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
