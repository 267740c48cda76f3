package app

import (
	"image/color"
	"log"

	"github.com/decker502/spacegame/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenSurface 把 render.Context2D 的绘图调用转成 Ebitengine 绘图
//
// Ebitengine 每帧传入新的 screen，App.Draw 在调用游戏绘制前通过 SetTarget 更新目标。
// 没有目标时所有绘图调用都被忽略。
type ScreenSurface struct {
	width, height float64
	rm            *ResourceManager
	target        *ebiten.Image
}

// NewScreenSurface 创建逻辑尺寸为 width x height 的绘图表面
func NewScreenSurface(width, height int, rm *ResourceManager) *ScreenSurface {
	return &ScreenSurface{width: float64(width), height: float64(height), rm: rm}
}

// SetTarget 设置本帧的绘制目标
func (s *ScreenSurface) SetTarget(screen *ebiten.Image) {
	s.target = screen
}

// Context2D 实现 render.Surface，Ebitengine 总是支持二维绘制
func (s *ScreenSurface) Context2D() (render.Context2D, bool) {
	return s, true
}

func (s *ScreenSurface) Width() float64  { return s.width }
func (s *ScreenSurface) Height() float64 { return s.height }

func (s *ScreenSurface) Clear() {
	if s.target != nil {
		s.target.Clear()
	}
}

func (s *ScreenSurface) FillRect(x, y, w, h float64, c color.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

// FillText y 是基线，Ebitengine 以行顶为原点，需要减去上升高度
func (s *ScreenSurface) FillText(str string, x, y, size float64, c color.Color) {
	if s.target == nil || str == "" {
		return
	}
	face := s.face(size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.target, str, face, op)
}

func (s *ScreenSurface) MeasureText(str string, size float64) float64 {
	face := s.face(size)
	if face == nil {
		return 0
	}
	return text.Advance(str, face)
}

func (s *ScreenSurface) DrawImage(a render.Asset, x, y float64) {
	w, h := a.Size()
	s.DrawImageScaled(a, x, y, float64(w), float64(h))
}

func (s *ScreenSurface) DrawImageScaled(a render.Asset, x, y, w, h float64) {
	if s.target == nil {
		return
	}
	img := s.rm.EbitenImage(a)
	if img == nil {
		// 没有像素数据的资源画成白色方块
		s.FillRect(x, y, w, h, render.White)
		return
	}
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	s.target.DrawImage(img, op)
}

func (s *ScreenSurface) face(size float64) *text.GoTextFace {
	face, err := s.rm.LoadFont(size)
	if err != nil {
		log.Printf("[ScreenSurface] Failed to load font: %v", err)
		return nil
	}
	return face
}
