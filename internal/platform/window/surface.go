package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/flappy-xp/internal/core"
)

var _ core.Surface = (*Surface)(nil)

// Surface draws onto an ebiten image. Sprites are uploaded to the GPU once
// and reused.
type Surface struct {
	dst     *ebiten.Image
	sprites map[image.Image]*ebiten.Image
	face    text.Face
}

// NewSurface creates a surface with an empty sprite cache.
func NewSurface() *Surface {
	return &Surface{
		sprites: make(map[image.Image]*ebiten.Image),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Target sets the image drawn to by the next calls.
func (s *Surface) Target(dst *ebiten.Image) *Surface {
	s.dst = dst
	return s
}

// Size returns the target dimensions.
func (s *Surface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect paints a solid rectangle, blending translucent colors.
func (s *Surface) FillRect(r core.Rect, col color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}

// DrawSprite scales img into dst and rotates it by angle around the center of dst.
func (s *Surface) DrawSprite(img image.Image, dst core.Rect, angle float64) {
	if img == nil || dst.Empty() {
		return
	}
	sprite, ok := s.sprites[img]
	if !ok {
		sprite = ebiten.NewImageFromImage(img)
		s.sprites[img] = sprite
	}

	b := sprite.Bounds()
	cx, cy := dst.Center()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(b.Dx()), float64(dst.H)/float64(b.Dy()))
	op.GeoM.Translate(-float64(dst.W)/2, -float64(dst.H)/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(sprite, op)
}

// DrawText draws text with its top-left corner at (x, y) in the 7x13 face
// used for layout.
func (s *Surface) DrawText(x, y int, str string, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(s.dst, str, s.face, op)
}
