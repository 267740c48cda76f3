// Package terminal 提供基于 tcell 的终端前端
//
// 逻辑画布按比例映射到终端字符格：矩形和图片画成色块，文字逐字符写入。
// 终端没有按键松开事件，按键在按下后立即松开，按住时依靠终端自身的自动重复。
package terminal

import (
	"image"
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/decker502/spacegame/pkg/render"
	"github.com/gdamore/tcell/v2"
)

// minColors 终端至少支持的颜色数，低于此值视为无法二维绘制
const minColors = 8

const (
	blockRune = '█'
	dotRune   = '*'
)

// Glyph 图片在终端中的显示方式
type Glyph struct {
	Rune  rune
	Color tcell.Color
}

// Surface 把 render.Context2D 的绘制命令写到 tcell.Screen
// 写入的内容在调用 screen.Show() 后才会显示
type Surface struct {
	screen tcell.Screen
	width  float64
	height float64
	glyphs map[render.Asset]Glyph
}

// NewSurface 创建终端绘图表面
// width/height 是逻辑画布尺寸，终端的行列数在每次绘制时读取
func NewSurface(screen tcell.Screen, width, height int) *Surface {
	return &Surface{
		screen: screen,
		width:  float64(width),
		height: float64(height),
		glyphs: make(map[render.Asset]Glyph),
	}
}

// SetGlyph 指定图片的显示字符和颜色
func (s *Surface) SetGlyph(a render.Asset, g Glyph) {
	s.glyphs[a] = g
}

// Context2D 实现 render.Surface
func (s *Surface) Context2D() (render.Context2D, bool) {
	if s.screen.Colors() < minColors {
		return nil, false
	}
	return s, true
}

// Width 逻辑画布宽度
func (s *Surface) Width() float64 { return s.width }

// Height 逻辑画布高度
func (s *Surface) Height() float64 { return s.height }

// scale 返回逻辑像素到字符格的缩放比例
func (s *Surface) scale() (sx, sy float64) {
	cols, rows := s.screen.Size()
	return float64(cols) / s.width, float64(rows) / s.height
}

// cells 返回矩形覆盖的字符格范围 [c0,c1) × [r0,r1)
// 不足一格的矩形至少占一格
func (s *Surface) cells(x, y, w, h float64) (c0, r0, c1, r1 int) {
	sx, sy := s.scale()
	c0 = int(math.Floor(x * sx))
	r0 = int(math.Floor(y * sy))
	c1 = int(math.Ceil((x + w) * sx))
	r1 = int(math.Ceil((y + h) * sy))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return c0, r0, c1, r1
}

func (s *Surface) fill(c0, r0, c1, r1 int, ch rune, style tcell.Style) {
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			// 超出屏幕的坐标由 SetContent 忽略
			s.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// Clear 用黑色填满屏幕
func (s *Surface) Clear() {
	s.screen.Fill(' ', backgroundStyle())
}

// FillRect 填充矩形
// 接近黑色的矩形画成空白格，小于一格的矩形画成星号
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	c0, r0, c1, r1 := s.cells(x, y, w, h)
	if isDark(c) {
		s.fill(c0, r0, c1, r1, ' ', backgroundStyle())
		return
	}

	sx, sy := s.scale()
	ch := rune(blockRune)
	if w*sx < 1 && h*sy < 1 {
		ch = dotRune
	}
	s.fill(c0, r0, c1, r1, ch, backgroundStyle().Foreground(toColor(c)))
}

// FillText 从 (x, y) 开始逐字符写入文字，y 是基线，文字写在基线所在行的上一行
func (s *Surface) FillText(text string, x, y, size float64, c color.Color) {
	sx, sy := s.scale()
	col := int(math.Floor(x * sx))
	row := int(math.Ceil(y*sy)) - 1
	if row < 0 {
		row = 0
	}

	style := backgroundStyle().Foreground(toColor(c))
	for _, r := range text {
		s.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// MeasureText 返回文字占用的逻辑宽度，每个字符一格，与字号无关
func (s *Surface) MeasureText(text string, size float64) float64 {
	sx, _ := s.scale()
	if sx == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(text)) / sx
}

// DrawImage 按原始尺寸绘制图片
func (s *Surface) DrawImage(a render.Asset, x, y float64) {
	w, h := a.Size()
	s.DrawImageScaled(a, x, y, float64(w), float64(h))
}

// DrawImageScaled 用图片对应的字符填满目标区域
func (s *Surface) DrawImageScaled(a render.Asset, x, y, w, h float64) {
	g := s.glyphFor(a)
	c0, r0, c1, r1 := s.cells(x, y, w, h)
	s.fill(c0, r0, c1, r1, g.Rune, backgroundStyle().Foreground(g.Color))
}

// glyphFor 未指定字符的图片用实心块，颜色取图片不透明像素的平均色
func (s *Surface) glyphFor(a render.Asset) Glyph {
	if g, ok := s.glyphs[a]; ok {
		return g
	}
	g := Glyph{Rune: blockRune, Color: tcell.ColorWhite}
	if img, ok := a.(*render.ImageAsset); ok {
		if avg, ok := averageColor(img.Image()); ok {
			g.Color = toColor(avg)
		}
	}
	s.glyphs[a] = g
	return g
}

func backgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(tcell.ColorBlack)
}

// toColor 把颜色叠加到黑色背景后转换为终端真彩色
func toColor(c color.Color) tcell.Color {
	// RGBA 返回预乘 alpha 的值，正好等于叠加到黑色上的结果
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	const threshold = 0x1000
	return r < threshold && g < threshold && b < threshold
}

// averageColor 计算不透明像素的平均颜色，全透明图片返回 false
func averageColor(img image.Image) (color.Color, bool) {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			if pa < 0x8000 {
				continue
			}
			r += uint64(pr)
			g += uint64(pg)
			b += uint64(pb)
			n++
		}
	}
	if n == 0 {
		return nil, false
	}
	return color.RGBA64{R: uint16(r / n), G: uint16(g / n), B: uint16(b / n), A: 0xffff}, true
}
