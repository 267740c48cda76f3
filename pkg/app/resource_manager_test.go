package app

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/decker502/spacegame/pkg/embedded"
	"github.com/decker502/spacegame/pkg/render"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error: %v", err)
	}
	return buf.Bytes()
}

func TestResourceManagerLoadImage(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"assets/images/ship.png":   {Data: encodePNG(t, 32, 16)},
		"assets/images/broken.png": {Data: []byte("not a png")},
	}, fstest.MapFS{})

	rm := NewResourceManager()

	ship, err := rm.LoadImage("assets/images/ship.png")
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	if w, h := ship.Size(); w != 32 || h != 16 {
		t.Errorf("size = %dx%d, want 32x16", w, h)
	}

	again, err := rm.LoadImage("assets/images/ship.png")
	if err != nil || again != ship {
		t.Errorf("second LoadImage() should return the cached asset")
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", "assets/images/missing.png"},
		{"undecodable", "assets/images/broken.png"},
		{"unknown prefix", "images/ship.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := rm.LoadImage(tt.path); err == nil {
				t.Errorf("LoadImage(%q) should fail", tt.path)
			}
		})
	}
}

func TestEbitenImageWithoutPixels(t *testing.T) {
	rm := NewResourceManager()
	if img := rm.EbitenImage(render.RectAsset{W: 4, H: 4}); img != nil {
		t.Error("EbitenImage() of a RectAsset should be nil")
	}
}

func TestLoadFontCachesFaces(t *testing.T) {
	rm := NewResourceManager()

	face, err := rm.LoadFont(13)
	if err != nil {
		t.Fatalf("LoadFont() error: %v", err)
	}
	if face.Size != 13 {
		t.Errorf("face size = %v, want 13", face.Size)
	}
	again, _ := rm.LoadFont(13)
	if again != face {
		t.Error("LoadFont() should cache faces per size")
	}
	other, _ := rm.LoadFont(26)
	if other == face || other.Source != face.Source {
		t.Error("faces of different sizes should share one font source")
	}
}
