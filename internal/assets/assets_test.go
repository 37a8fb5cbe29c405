package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writeImage(t *testing.T, name string, encode func(f *os.File, img image.Image) error) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(3, 2, color.RGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoadSpriteBMP(t *testing.T) {
	path := writeImage(t, "bird.bmp", func(f *os.File, img image.Image) error {
		return bmp.Encode(f, img)
	})

	img, err := LoadSprite(path)
	if err != nil {
		t.Fatalf("LoadSprite() error: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("bounds = %v, expected 8x6", img.Bounds())
	}
	r, g, _, _ := img.At(3, 2).RGBA()
	if r>>8 != 255 || g != 0 {
		t.Errorf("pixel (3, 2) = %v, expected pure red", img.At(3, 2))
	}
}

func TestLoadSpritePNG(t *testing.T) {
	path := writeImage(t, "bird.png", func(f *os.File, img image.Image) error {
		return png.Encode(f, img)
	})

	if _, err := LoadSprite(path); err != nil {
		t.Fatalf("LoadSprite() error: %v", err)
	}
}

func TestLoadShippedSprite(t *testing.T) {
	img, err := LoadSprite(filepath.Join("..", "..", DefaultSpritePath))
	if err != nil {
		t.Fatalf("shipped sprite should load: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 40 {
		t.Errorf("shipped sprite is %v, expected 40x40", img.Bounds())
	}
}

func TestLoadSpriteMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.bmp")
	_, err := LoadSprite(path)
	if err == nil {
		t.Fatal("LoadSprite() should fail for a missing file")
	}
	if !errors.Is(err, ErrResourceLoad) {
		t.Errorf("error should be a resource load failure, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap the not-exist cause, got %v", err)
	}

	var le *LoadError
	if !errors.As(err, &le) || le.Path != path {
		t.Errorf("error should carry the path, got %#v", err)
	}
}

func TestLoadSpriteCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bird.bmp")
	if err := os.WriteFile(path, []byte("not a bitmap"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadSprite(path)
	if !errors.Is(err, ErrResourceLoad) {
		t.Errorf("corrupt file should be a resource load failure, got %v", err)
	}
}
