// Package render 定义游戏核心使用的绘图接口
//
// 游戏逻辑只依赖 Surface / Context2D / Asset 三个接口，
// 具体实现由前端提供（Ebitengine 窗口、tcell 终端、测试用的 Recorder）。
// 坐标单位是逻辑像素，原点在左上角。
package render

import "image/color"

// Asset 已加载的图片资源
type Asset interface {
	// Size 返回图片的像素尺寸
	Size() (w, h int)
}

// Context2D 二维绘图上下文
type Context2D interface {
	Width() float64
	Height() float64

	// Clear 清空整个画布
	Clear()
	// FillRect 填充矩形
	FillRect(x, y, w, h float64, c color.Color)
	// FillText 绘制单行文字，y 是基线位置
	FillText(s string, x, y, size float64, c color.Color)
	// MeasureText 返回文字宽度
	MeasureText(s string, size float64) float64
	// DrawImage 按原始尺寸绘制图片，(x, y) 为左上角
	DrawImage(a Asset, x, y float64)
	// DrawImageScaled 把图片缩放到 w×h 绘制
	DrawImageScaled(a Asset, x, y, w, h float64)
}

// Surface 绘图表面
type Surface interface {
	// Context2D 返回二维绘图上下文；环境不支持二维绘制时 ok 为 false
	Context2D() (ctx Context2D, ok bool)
}

var (
	// White 默认填充色
	White color.Color = color.White
	// Black 背景色
	Black color.Color = color.Black
)

// StarColor 返回指定亮度的白色
// 亮度超过 1 按 1 处理（与画布的 alpha 截断一致）
func StarColor(brightness float64) color.Color {
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 1 {
		brightness = 1
	}
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(brightness * 0xff)}
}
