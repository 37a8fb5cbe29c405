package core

import (
	"image"
	"image/color"
)

// Surface is the drawing target handed to the renderer once per frame.
// Frontends implement it on top of their own backends (a software canvas for
// terminals, an ebiten image for the desktop window).
type Surface interface {
	// Size returns the logical surface size in screen units.
	Size() (w, h int)

	// FillRect paints a solid rectangle. Parts outside the surface are clipped.
	FillRect(r Rect, c color.Color)

	// DrawSprite scales img into dst and rotates it by angle radians around
	// the center of dst.
	DrawSprite(img image.Image, dst Rect, angle float64)

	// DrawText writes a single line of text with its top-left corner at (x, y).
	DrawText(x, y int, text string, c color.Color)
}
