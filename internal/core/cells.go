package core

import "image/color"

// HalfBlock paints the upper half of a terminal cell with the foreground
// color and the lower half with the background, giving two pixels per cell.
const HalfBlock = '▀'

// Cell is one terminal cell sampled from a canvas.
type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// Cells samples the canvas into a rows x cols grid of half-block cells and
// overlays the recorded text, unscaled, at the cell under its pixel origin.
// Text keeps the background of the cells it covers and is cut at the right
// edge.
func (c *Canvas) Cells(cols, rows int) [][]Cell {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	w, h := c.Size()

	grid := make([][]Cell, rows)
	for y := range rows {
		grid[y] = make([]Cell, cols)
		top := (2 * y) * h / (2 * rows)
		bottom := (2*y + 1) * h / (2 * rows)
		for x := range cols {
			px := x * w / cols
			grid[y][x] = Cell{
				Rune: HalfBlock,
				FG:   c.At(px, top),
				BG:   c.At(px, bottom),
			}
		}
	}

	for _, op := range c.texts {
		y := op.Y * rows / h
		if y < 0 || y >= rows {
			continue
		}
		fg := RGBA(op.Color)
		x := op.X * cols / w
		for _, r := range op.Text {
			if x >= cols {
				break
			}
			if x >= 0 {
				grid[y][x] = Cell{Rune: r, FG: fg, BG: grid[y][x].BG}
			}
			x++
		}
	}
	return grid
}

// RGBA converts any color to 8-bit RGBA. A nil color is transparent black.
func RGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
