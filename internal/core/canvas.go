package core

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var _ Surface = (*Canvas)(nil)

// TextOp records one DrawText call so that cell-based frontends can place the
// text as real characters instead of scaled-down pixels.
type TextOp struct {
	X, Y  int
	Text  string
	Color color.Color
}

// Canvas is a software Surface backed by an RGBA image.
// Terminal frontends render into it and then sample it into cells.
type Canvas struct {
	img        *image.RGBA
	texts      []TextOp
	rasterText bool
}

// NewCanvas creates a canvas with the given logical size.
// Text is rasterized into the image by default.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		texts:      make([]TextOp, 0, 4),
		rasterText: true,
	}
}

// SetRasterText controls whether DrawText also paints glyphs into the image.
// Text operations are recorded either way.
func (c *Canvas) SetRasterText(on bool) {
	c.rasterText = on
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the backing image. It is reused across frames.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Texts returns the text operations recorded since the last Clear.
func (c *Canvas) Texts() []TextOp {
	return c.texts
}

// At returns the color of the pixel at (x, y).
// Out-of-bounds coordinates return the zero color.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Clear fills the whole canvas with col and forgets recorded text.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	c.texts = c.texts[:0]
}

// FillRect paints a solid rectangle, clipped to the canvas.
func (c *Canvas) FillRect(r Rect, col color.Color) {
	if r.Empty() {
		return
	}
	area := image.Rect(r.X, r.Y, r.Right(), r.Bottom()).Intersect(c.img.Bounds())
	if area.Empty() {
		return
	}
	draw.Draw(c.img, area, image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawSprite scales img into dst and rotates it around the center of dst.
// Every canvas pixel in the rotated footprint is mapped back into sprite space
// with the inverse transform; fully transparent sprite pixels are skipped.
func (c *Canvas) DrawSprite(img image.Image, dst Rect, angle float64) {
	if img == nil || dst.Empty() {
		return
	}
	src := img.Bounds()
	if src.Empty() {
		return
	}

	cx, cy := dst.Center()
	inv := Rotation(angle, cx, cy).Invert()

	halfW := float64(dst.W) / 2
	halfH := float64(dst.H) / 2
	radius := math.Ceil(math.Hypot(halfW, halfH))

	footprint := image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius)), int(math.Ceil(cy+radius)),
	).Intersect(c.img.Bounds())

	scaleX := float64(src.Dx()) / float64(dst.W)
	scaleY := float64(src.Dy()) / float64(dst.H)

	for py := footprint.Min.Y; py < footprint.Max.Y; py++ {
		for px := footprint.Min.X; px < footprint.Max.X; px++ {
			lx, ly := inv.Apply(float64(px)+0.5, float64(py)+0.5)
			if lx < -halfW || lx >= halfW || ly < -halfH || ly >= halfH {
				continue
			}
			sx := src.Min.X + Clamp(int((lx+halfW)*scaleX), 0, src.Dx()-1)
			sy := src.Min.Y + Clamp(int((ly+halfH)*scaleY), 0, src.Dy()-1)

			col := img.At(sx, sy)
			if _, _, _, a := col.RGBA(); a == 0 {
				continue
			}
			c.img.Set(px, py, col)
		}
	}
}

// DrawText records the text and, when raster text is enabled, draws it with
// the 7x13 bitmap face so that screenshots carry the HUD.
func (c *Canvas) DrawText(x, y int, text string, col color.Color) {
	c.texts = append(c.texts, TextOp{X: x, Y: y, Text: text, Color: col})
	if !c.rasterText {
		return
	}
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}

// TextWidth returns the advance of text in the bitmap face, in pixels.
func TextWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}
