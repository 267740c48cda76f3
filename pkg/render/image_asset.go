package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // 注册 PNG 解码器
)

// ImageAsset 基于 image.Image 的图片资源
type ImageAsset struct {
	name string
	img  image.Image
}

// NewImageAsset 包装已解码的图片
func NewImageAsset(name string, img image.Image) *ImageAsset {
	return &ImageAsset{name: name, img: img}
}

// DecodeImage 解码 PNG 图片数据
func DecodeImage(name string, data []byte) (*ImageAsset, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	return NewImageAsset(name, img), nil
}

// Name 资源路径
func (a *ImageAsset) Name() string {
	return a.name
}

// Image 返回底层图片
func (a *ImageAsset) Image() image.Image {
	return a.img
}

// Size 实现 Asset
func (a *ImageAsset) Size() (int, int) {
	b := a.img.Bounds()
	return b.Dx(), b.Dy()
}

// RectAsset 只有尺寸没有像素的资源，用于测试和无法显示图片的前端
type RectAsset struct {
	W, H int
}

// Size 实现 Asset
func (a RectAsset) Size() (int, int) {
	return a.W, a.H
}
