package render

import (
	"image/color"
	"unicode/utf8"
)

// OpKind 绘图操作类型
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpFillText
	OpDrawImage
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "Clear"
	case OpFillRect:
		return "FillRect"
	case OpFillText:
		return "FillText"
	case OpDrawImage:
		return "DrawImage"
	default:
		return "Unknown"
	}
}

// Op 一次绘图操作
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	Size  float64
	Text  string
	Color color.Color
	Asset Asset
}

// Recorder 记录绘图操作的 Surface 实现，用于测试
//
// 文字宽度按 "字符数 × 字号 × 0.5" 估算，结果可预测。
type Recorder struct {
	W, H        float64
	Unsupported bool

	Ops []Op
}

// NewRecorder 创建指定尺寸的记录器
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

// Context2D 实现 Surface
func (r *Recorder) Context2D() (Context2D, bool) {
	if r.Unsupported {
		return nil, false
	}
	return r, true
}

// Reset 清空已记录的操作
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// OpsOf 返回指定类型的操作
func (r *Recorder) OpsOf(kind OpKind) []Op {
	result := make([]Op, 0)
	for _, op := range r.Ops {
		if op.Kind == kind {
			result = append(result, op)
		}
	}
	return result
}

// Texts 返回所有绘制过的文字
func (r *Recorder) Texts() []string {
	texts := make([]string, 0)
	for _, op := range r.OpsOf(OpFillText) {
		texts = append(texts, op.Text)
	}
	return texts
}

func (r *Recorder) Width() float64  { return r.W }
func (r *Recorder) Height() float64 { return r.H }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear, W: r.W, H: r.H})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillText(s string, x, y, size float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillText, Text: s, X: x, Y: y, Size: size, Color: c})
}

func (r *Recorder) MeasureText(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * 0.5
}

func (r *Recorder) DrawImage(a Asset, x, y float64) {
	w, h := a.Size()
	r.DrawImageScaled(a, x, y, float64(w), float64(h))
}

func (r *Recorder) DrawImageScaled(a Asset, x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawImage, X: x, Y: y, W: w, H: h, Asset: a})
}
