package render

import (
	"image/color"
	"strings"
)

// PageLines 把页面文字按 "\n" 拆成行，空行保留
func PageLines(text string) []string {
	return strings.Split(text, "\n")
}

// DrawPageText 绘制整页说明文字
//
// 每行水平居中（按测量宽度计算），第 i 行的基线位于 top + i*lineHeight。
// 文字超出画布不会换行。
func DrawPageText(ctx Context2D, text string, size, top, lineHeight float64, c color.Color) {
	for i, line := range PageLines(text) {
		x := (ctx.Width() - ctx.MeasureText(line, size)) / 2
		y := top + float64(i)*lineHeight
		ctx.FillText(line, x, y, size, c)
	}
}
