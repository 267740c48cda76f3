package app

import (
	"bytes"
	"fmt"
	"log"

	"github.com/decker502/spacegame/pkg/embedded"
	"github.com/decker502/spacegame/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager loads and caches the images and font faces used by the window frontend.
//
// Images are decoded once into render.ImageAsset (the form the game core understands)
// and converted lazily into *ebiten.Image the first time they are drawn.
type ResourceManager struct {
	imageCache    map[string]*render.ImageAsset
	ebitenImages  map[*render.ImageAsset]*ebiten.Image
	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace
}

// NewResourceManager creates an empty resource manager.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*render.ImageAsset),
		ebitenImages:  make(map[*render.ImageAsset]*ebiten.Image),
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadImage loads a PNG from the embedded resources.
//
// Parameters:
//   - path: resource path, must start with "assets/"
//
// Returns:
//   - the decoded image, cached by path
//   - an error if the resource is missing or cannot be decoded
func (rm *ResourceManager) LoadImage(path string) (*render.ImageAsset, error) {
	if cached, exists := rm.imageCache[path]; exists {
		return cached, nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}

	asset, err := render.DecodeImage(path, data)
	if err != nil {
		return nil, err
	}

	rm.imageCache[path] = asset
	w, h := asset.Size()
	log.Printf("[ResourceManager] Loaded image %s (%dx%d)", path, w, h)
	return asset, nil
}

// EbitenImage returns the GPU image for an asset, converting it on first use.
// Assets without pixel data (render.RectAsset) return nil.
func (rm *ResourceManager) EbitenImage(asset render.Asset) *ebiten.Image {
	imageAsset, ok := asset.(*render.ImageAsset)
	if !ok || imageAsset == nil {
		return nil
	}
	if img, exists := rm.ebitenImages[imageAsset]; exists {
		return img
	}
	img := ebiten.NewImageFromImage(imageAsset.Image())
	rm.ebitenImages[imageAsset] = img
	log.Printf("[ResourceManager] Created GPU image for %s", imageAsset.Name())
	return img
}

// LoadFont returns the Go Regular face at the given pixel size.
// The font source is parsed once; faces are cached per size.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if face, exists := rm.fontFaceCache[size]; exists {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
