package core

import (
	"image"
	"image/color"
	"testing"
)

var (
	sky   = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	green = color.RGBA{G: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func solidSprite(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(64, 36)

	w, h := c.Size()
	if w != 64 || h != 36 {
		t.Errorf("Size() = %dx%d, expected 64x36", w, h)
	}
	if len(c.Texts()) != 0 {
		t.Errorf("new canvas should have no text ops, got %d", len(c.Texts()))
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawText(0, 0, "x", red)
	c.Clear(sky)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c.At(x, y) != sky {
				t.Fatalf("After Clear, expected sky at (%d, %d), got %v", x, y, c.At(x, y))
			}
		}
	}
	if len(c.Texts()) != 0 {
		t.Error("Clear should drop recorded text")
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(sky)
	c.FillRect(NewRect(2, 2, 3, 3), green)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c.At(x, y) != green {
				t.Errorf("FillRect: expected green at (%d, %d), got %v", x, y, c.At(x, y))
			}
		}
	}
	if c.At(1, 1) != sky || c.At(5, 5) != sky {
		t.Error("FillRect should not affect outside area")
	}
}

func TestCanvasFillRectClips(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(sky)

	// Should not panic and should paint only the visible part
	c.FillRect(NewRect(-5, 8, 8, 10), green)
	if c.At(0, 9) != green || c.At(2, 8) != green {
		t.Error("visible part of clipped rect should be painted")
	}
	if c.At(3, 8) != sky {
		t.Error("clipped rect should stop at its right edge")
	}

	// Negative sizes are ignored
	c.FillRect(NewRect(5, 5, -3, 2), red)
	if c.At(4, 5) == red || c.At(5, 5) == red {
		t.Error("empty rect should not paint")
	}
}

func TestCanvasDrawSpriteUnrotated(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(sky)
	c.DrawSprite(solidSprite(2, 2, red), NewRect(5, 5, 4, 4), 0)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			inside := x >= 5 && x < 9 && y >= 5 && y < 9
			got := c.At(x, y)
			if inside && got != red {
				t.Errorf("expected sprite pixel at (%d, %d), got %v", x, y, got)
			}
			if !inside && got != sky {
				t.Errorf("expected sky at (%d, %d), got %v", x, y, got)
			}
		}
	}
}

func TestCanvasDrawSpriteRotatedKeepsCenter(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Clear(sky)
	c.DrawSprite(solidSprite(10, 2, red), NewRect(10, 19, 20, 2), 1.5707963267948966)

	// A wide, flat bar turned a quarter turn becomes a tall, thin bar.
	if c.At(20, 12) != red || c.At(20, 27) != red {
		t.Error("rotated bar should extend vertically through the center")
	}
	if c.At(12, 20) != sky || c.At(27, 20) != sky {
		t.Error("rotated bar should no longer extend horizontally")
	}
}

func TestCanvasDrawSpriteSkipsTransparent(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(sky)
	c.DrawSprite(solidSprite(4, 4, color.RGBA{}), NewRect(0, 0, 4, 4), 0)

	if c.At(1, 1) != sky {
		t.Errorf("transparent sprite pixels should be skipped, got %v", c.At(1, 1))
	}
}

func TestCanvasDrawText(t *testing.T) {
	c := NewCanvas(100, 20)
	c.Clear(sky)
	c.DrawText(2, 1, "Score: 3", color.Black)

	ops := c.Texts()
	if len(ops) != 1 {
		t.Fatalf("expected 1 text op, got %d", len(ops))
	}
	if ops[0].X != 2 || ops[0].Y != 1 || ops[0].Text != "Score: 3" {
		t.Errorf("unexpected text op %+v", ops[0])
	}

	painted := false
	for y := 0; y < 20 && !painted; y++ {
		for x := 0; x < 100; x++ {
			if c.At(x, y) != sky {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("raster text should paint glyph pixels")
	}
}

func TestCanvasDrawTextWithoutRaster(t *testing.T) {
	c := NewCanvas(100, 20)
	c.SetRasterText(false)
	c.Clear(sky)
	c.DrawText(2, 1, "Score: 3", color.Black)

	if len(c.Texts()) != 1 {
		t.Fatalf("text should still be recorded, got %d ops", len(c.Texts()))
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 100; x++ {
			if c.At(x, y) != sky {
				t.Fatalf("no glyphs expected with raster text off, found %v at (%d, %d)", c.At(x, y), x, y)
			}
		}
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("abc"); got != 21 {
		t.Errorf("TextWidth(\"abc\") = %d, expected 21", got)
	}
	if got := TextWidth(""); got != 0 {
		t.Errorf("TextWidth(\"\") = %d, expected 0", got)
	}
}
